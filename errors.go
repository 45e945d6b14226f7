package jod

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired    = "REQUIRED"
	CodeInvalidType = "INVALID_TYPE"

	// String constraints
	CodeMinLength = "MIN_LENGTH"
	CodeMaxLength = "MAX_LENGTH"
	CodePattern   = "PATTERN"

	// Format predicates carry dedicated codes rather than CUSTOM so that
	// machine consumers can tell them apart; see the format package.
	CodeEmail      = "EMAIL"
	CodeUUID       = "UUID"
	CodeURL        = "URL"
	CodePhone      = "PHONE"
	CodeCreditCard = "CREDIT_CARD"
	CodePostalCode = "POSTAL_CODE"

	// Membership
	CodeOneOf = "ONE_OF"

	// Numeric constraints
	CodeMinValue    = "MIN_VALUE"
	CodeMaxValue    = "MAX_VALUE"
	CodePositive    = "POSITIVE"
	CodeNonNegative = "NON_NEGATIVE"
	CodeFinite      = "FINITE"

	// Boolean exact match
	CodeExpectedValue = "EXPECTED_VALUE"

	// Collection constraints
	CodeMinSize = "MIN_SIZE"
	CodeMaxSize = "MAX_SIZE"

	// Temporal constraints
	CodeMinDate     = "MIN_DATE"
	CodeMaxDate     = "MAX_DATE"
	CodeMinDateTime = "MIN_DATE_TIME"
	CodeMaxDateTime = "MAX_DATE_TIME"
	CodeMinTime     = "MIN_TIME"
	CodeMaxTime     = "MAX_TIME"

	// Aggregation and escape hatches
	CodeUnionFailed        = "UNION_FAILED"
	CodeCustom             = "CUSTOM"
	CodeConstructionFailed = "CONSTRUCTION_FAILED"

	// Boundary helpers (decoding raw bytes, codecs)
	CodeParseError    = "PARSE_ERROR"
	CodeInvalidFormat = "INVALID_FORMAT"
)

// Error is one immutable validation violation: a machine-readable code, a
// human message, the root-relative path where it occurred, and the rejected
// input value. Path rewriting during composition produces new records via
// AtField/AtIndex; an Error is never mutated in place.
type Error struct {
	Code     string
	Message  string
	Path     string // root-relative, e.g. "$.items.[2].price"
	Rejected any    // the offending input value; nil when the input was null
	// Params carries structured parameters (e.g., {"min":1, "max":10})
	// for i18n and observability.
	Params map[string]any
}

// NewError creates an Error at the root path "$".
func NewError(code, message string, rejected any) Error {
	return Error{Code: code, Message: message, Path: RootPath, Rejected: rejected}
}

// ErrorAt creates an Error at the given root-relative path.
func ErrorAt(code, message, path string, rejected any) Error {
	return Error{Code: code, Message: message, Path: path, Rejected: rejected}
}

// AtField returns a copy of the error whose path is nested under the given
// object field, inserting ".name" immediately after the root marker.
func (e Error) AtField(name string) Error {
	e.Path = nestPath("."+name, e.Path)
	return e
}

// AtIndex returns a copy of the error whose path is nested under the given
// list index, inserting ".[i]" immediately after the root marker.
func (e Error) AtIndex(i int) Error {
	e.Path = nestPath(fmt.Sprintf(".[%d]", i), e.Path)
	return e
}

// Errors is a collection of validation violations that implements error so
// boundary helpers (decoding, codecs) can surface failures through ordinary
// Go error returns. Inside the core, violations travel inside Result values.
type Errors []Error

// Error summarizes the first few violations.
func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(es)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		e := es[i]
		// e.g. MIN_LENGTH at $.name
		fmt.Fprintf(b, "%s at %s", e.Code, e.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendErrors appends violations to the destination, initializing the slice
// when needed.
func AppendErrors(dst Errors, more ...Error) Errors {
	if dst == nil {
		dst = Errors{}
	}
	dst = append(dst, more...)
	return dst
}

// AsErrors extracts Errors from an error using errors.As internally.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var es Errors
	if errors.As(err, &es) {
		return es, true
	}
	return nil, false
}
