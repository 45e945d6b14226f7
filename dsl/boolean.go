package dsl

import (
	"context"

	jod "github.com/M1tsumi/Jod"
)

// BooleanSchema validates boolean values, optionally pinned to an expected
// value via True or False.
type BooleanSchema struct {
	required bool
	expected *bool
	custom   []customRule[bool]
	fn       func(bool) bool
}

var (
	_ jod.Schema[bool] = BooleanSchema{}
	_ jod.AnySchema    = BooleanSchema{}
)

// Boolean creates a schema for boolean values.
func Boolean() BooleanSchema { return BooleanSchema{} }

// True requires the value to be true.
func (s BooleanSchema) True() BooleanSchema {
	s.expected = ptr(true)
	return s
}

// False requires the value to be false.
func (s BooleanSchema) False() BooleanSchema {
	s.expected = ptr(false)
	return s
}

// Required marks the schema as rejecting null input.
func (s BooleanSchema) Required() BooleanSchema {
	s.required = true
	return s
}

// Optional marks the schema as accepting null input.
func (s BooleanSchema) Optional() BooleanSchema {
	s.required = false
	return s
}

// Custom appends a user predicate with its verbatim failure message.
func (s BooleanSchema) Custom(pred func(bool) bool, message string) BooleanSchema {
	s.custom = appendRule(s.custom, pred, message)
	return s
}

// Transform attaches a function applied once to the validated value on
// overall success.
func (s BooleanSchema) Transform(fn func(bool) bool) BooleanSchema {
	s.fn = fn
	return s
}

func (s BooleanSchema) Validate(ctx context.Context, v any) jod.Result[bool] {
	return s.ValidateNullable(ctx, v)
}

func (s BooleanSchema) ValidateNullable(ctx context.Context, v any) jod.Result[bool] {
	if isNil(v) {
		return nullResult[bool](s.required)
	}
	b, ok := v.(bool)
	if !ok {
		return jod.Failure[bool](invalidType(v))
	}

	var errs jod.Errors
	if s.expected != nil && b != *s.expected {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeExpectedValue, b, map[string]any{"expected": *s.expected}))
	}
	for _, r := range s.custom {
		if !r.pred(b) {
			errs = jod.AppendErrors(errs, customError(r.message, b))
		}
	}
	if len(errs) > 0 {
		return jod.Failure[bool](errs...)
	}
	if s.fn != nil {
		b = s.fn(b)
	}
	return jod.Success(b)
}

func (s BooleanSchema) ValidateNullableAny(ctx context.Context, v any) jod.Result[any] {
	return jod.WidenResult(s.ValidateNullable(ctx, v))
}
