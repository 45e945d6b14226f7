package dsl

import (
	"context"

	jod "github.com/M1tsumi/Jod"
)

// UnionSchema tries its alternatives in declaration order and commits to the
// first one that succeeds; later alternatives never run. When every
// alternative fails, the result carries one UNION_FAILED violation followed
// by every alternative's violations in declaration order.
type UnionSchema[T any] struct {
	alts     []jod.Schema[T]
	required bool
	custom   []customRule[T]
	fn       func(T) T
}

var (
	_ jod.Schema[string] = UnionSchema[string]{}
	_ jod.AnySchema      = UnionSchema[string]{}
)

// Union creates a schema accepting input matched by any of the alternatives.
func Union[T any](alts ...jod.Schema[T]) UnionSchema[T] {
	if len(alts) == 0 {
		panic("dsl: Union requires at least one alternative")
	}
	out := make([]jod.Schema[T], len(alts))
	copy(out, alts)
	return UnionSchema[T]{alts: out}
}

// Required marks the schema as rejecting null input.
func (s UnionSchema[T]) Required() UnionSchema[T] {
	s.required = true
	return s
}

// Optional marks the schema as accepting null input.
func (s UnionSchema[T]) Optional() UnionSchema[T] {
	s.required = false
	return s
}

// Custom appends a user predicate applied to the matched alternative's value
// with its verbatim failure message.
func (s UnionSchema[T]) Custom(pred func(T) bool, message string) UnionSchema[T] {
	s.custom = appendRule(s.custom, pred, message)
	return s
}

// Transform attaches a function applied once to the matched value on
// overall success.
func (s UnionSchema[T]) Transform(fn func(T) T) UnionSchema[T] {
	s.fn = fn
	return s
}

func (s UnionSchema[T]) Validate(ctx context.Context, v any) jod.Result[T] {
	return s.ValidateNullable(ctx, v)
}

func (s UnionSchema[T]) ValidateNullable(ctx context.Context, v any) jod.Result[T] {
	if isNil(v) {
		return nullResult[T](s.required)
	}

	var all jod.Errors
	for _, alt := range s.alts {
		r := alt.ValidateNullable(ctx, v)
		if !r.IsValid() {
			all = append(all, r.Errors()...)
			continue
		}
		val, present := r.Value()
		if !present {
			return jod.SuccessNull[T]()
		}
		var errs jod.Errors
		for _, c := range s.custom {
			if !c.pred(val) {
				errs = jod.AppendErrors(errs, customError(c.message, v))
			}
		}
		if len(errs) > 0 {
			return jod.Failure[T](errs...)
		}
		if s.fn != nil {
			val = s.fn(val)
		}
		return jod.Success(val)
	}

	errs := make(jod.Errors, 0, len(all)+1)
	errs = append(errs, ruleError(jod.CodeUnionFailed, v, nil))
	errs = append(errs, all...)
	return jod.Failure[T](errs...)
}

func (s UnionSchema[T]) ValidateNullableAny(ctx context.Context, v any) jod.Result[any] {
	return jod.WidenResult(s.ValidateNullable(ctx, v))
}
