package dsl

import (
	"reflect"

	jod "github.com/M1tsumi/Jod"
	"github.com/M1tsumi/Jod/i18n"
)

// customRule is one user-supplied predicate with its verbatim failure
// message. Failing predicates surface as CUSTOM violations.
type customRule[T any] struct {
	pred    func(T) bool
	message string
}

// appendRule copies the rule list before appending so reconfigured schema
// nodes never share a mutable backing array with their originals.
func appendRule[T any](rules []customRule[T], pred func(T) bool, message string) []customRule[T] {
	out := make([]customRule[T], len(rules)+1)
	copy(out, rules)
	out[len(rules)] = customRule[T]{pred: pred, message: message}
	return out
}

// isNil reports whether v is null for validation purposes: the untyped nil
// interface or a nil pointer/map/slice boxed into one.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// nullResult implements the shared null handling of every node: one REQUIRED
// violation when the node is required, success with an absent value
// otherwise. No other rule runs on null input.
func nullResult[T any](required bool) jod.Result[T] {
	if required {
		return jod.Failure[T](jod.NewError(jod.CodeRequired, i18n.T(jod.CodeRequired, nil), nil))
	}
	return jod.SuccessNull[T]()
}

// ruleError builds a violation at the root path with its message resolved
// through the i18n catalog.
func ruleError(code string, rejected any, params map[string]any) jod.Error {
	return jod.Error{
		Code:     code,
		Message:  i18n.T(code, params),
		Path:     jod.RootPath,
		Rejected: rejected,
		Params:   params,
	}
}

// customError builds a CUSTOM violation carrying the registered message
// verbatim.
func customError(message string, rejected any) jod.Error {
	return jod.Error{Code: jod.CodeCustom, Message: message, Path: jod.RootPath, Rejected: rejected}
}

// invalidType builds the structural violation for an input of the wrong
// dynamic type.
func invalidType(rejected any) jod.Error {
	return ruleError(jod.CodeInvalidType, rejected, nil)
}

func ptr[T any](v T) *T { return &v }
