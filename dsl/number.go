package dsl

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	jod "github.com/M1tsumi/Jod"
)

// asInt64 widens the numeric shapes a deserialization layer can produce
// (Go ints, json.Number, integral float64) into int64. The bool reports
// whether v was an integral number representable in 64 bits.
func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		if uint64(t) > math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		if t > math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case float64:
		if math.Trunc(t) != t || t < math.MinInt64 || t >= math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	default:
		return 0, false
	}
}

// asFloat64 widens numeric input shapes into float64.
func asFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		if i, ok := asInt64(v); ok {
			return float64(i), true
		}
		return 0, false
	}
}

// IntegerSchema validates 32-bit integer values. Inputs may arrive as any Go
// integer kind, json.Number, or an integral float64; anything outside the
// int32 range is an INVALID_TYPE violation.
type IntegerSchema struct {
	required    bool
	min         *int32
	max         *int32
	positive    bool
	nonNegative bool
	custom      []customRule[int32]
	fn          func(int32) int32
}

var (
	_ jod.Schema[int32] = IntegerSchema{}
	_ jod.AnySchema     = IntegerSchema{}
)

// Integer creates a schema for 32-bit integer values.
func Integer() IntegerSchema { return IntegerSchema{} }

// Min sets the minimum value (inclusive).
func (s IntegerSchema) Min(n int32) IntegerSchema {
	s.min = ptr(n)
	return s
}

// Max sets the maximum value (inclusive).
func (s IntegerSchema) Max(n int32) IntegerSchema {
	s.max = ptr(n)
	return s
}

// Range sets both minimum and maximum value.
func (s IntegerSchema) Range(min, max int32) IntegerSchema {
	return s.Min(min).Max(max)
}

// Positive requires the value to be > 0.
func (s IntegerSchema) Positive() IntegerSchema {
	s.positive = true
	return s
}

// NonNegative requires the value to be >= 0.
func (s IntegerSchema) NonNegative() IntegerSchema {
	s.nonNegative = true
	return s
}

// Required marks the schema as rejecting null input.
func (s IntegerSchema) Required() IntegerSchema {
	s.required = true
	return s
}

// Optional marks the schema as accepting null input.
func (s IntegerSchema) Optional() IntegerSchema {
	s.required = false
	return s
}

// Custom appends a user predicate with its verbatim failure message.
func (s IntegerSchema) Custom(pred func(int32) bool, message string) IntegerSchema {
	s.custom = appendRule(s.custom, pred, message)
	return s
}

// Transform attaches a function applied once to the validated value on
// overall success.
func (s IntegerSchema) Transform(fn func(int32) int32) IntegerSchema {
	s.fn = fn
	return s
}

func (s IntegerSchema) Validate(ctx context.Context, v any) jod.Result[int32] {
	return s.ValidateNullable(ctx, v)
}

func (s IntegerSchema) ValidateNullable(ctx context.Context, v any) jod.Result[int32] {
	if isNil(v) {
		return nullResult[int32](s.required)
	}
	i64, ok := asInt64(v)
	if !ok || i64 < math.MinInt32 || i64 > math.MaxInt32 {
		return jod.Failure[int32](invalidType(v))
	}
	n := int32(i64)

	var errs jod.Errors
	if s.min != nil && n < *s.min {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMinValue, n, map[string]any{"min": *s.min}))
	}
	if s.max != nil && n > *s.max {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMaxValue, n, map[string]any{"max": *s.max}))
	}
	if s.positive && n <= 0 {
		errs = jod.AppendErrors(errs, ruleError(jod.CodePositive, n, nil))
	}
	if s.nonNegative && n < 0 {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeNonNegative, n, nil))
	}
	for _, r := range s.custom {
		if !r.pred(n) {
			errs = jod.AppendErrors(errs, customError(r.message, n))
		}
	}
	if len(errs) > 0 {
		return jod.Failure[int32](errs...)
	}
	if s.fn != nil {
		n = s.fn(n)
	}
	return jod.Success(n)
}

func (s IntegerSchema) ValidateNullableAny(ctx context.Context, v any) jod.Result[any] {
	return jod.WidenResult(s.ValidateNullable(ctx, v))
}

// LongSchema validates 64-bit integer values.
type LongSchema struct {
	required    bool
	min         *int64
	max         *int64
	positive    bool
	nonNegative bool
	custom      []customRule[int64]
	fn          func(int64) int64
}

var (
	_ jod.Schema[int64] = LongSchema{}
	_ jod.AnySchema     = LongSchema{}
)

// Long creates a schema for 64-bit integer values.
func Long() LongSchema { return LongSchema{} }

// Min sets the minimum value (inclusive).
func (s LongSchema) Min(n int64) LongSchema {
	s.min = ptr(n)
	return s
}

// Max sets the maximum value (inclusive).
func (s LongSchema) Max(n int64) LongSchema {
	s.max = ptr(n)
	return s
}

// Range sets both minimum and maximum value.
func (s LongSchema) Range(min, max int64) LongSchema {
	return s.Min(min).Max(max)
}

// Positive requires the value to be > 0.
func (s LongSchema) Positive() LongSchema {
	s.positive = true
	return s
}

// NonNegative requires the value to be >= 0.
func (s LongSchema) NonNegative() LongSchema {
	s.nonNegative = true
	return s
}

// Required marks the schema as rejecting null input.
func (s LongSchema) Required() LongSchema {
	s.required = true
	return s
}

// Optional marks the schema as accepting null input.
func (s LongSchema) Optional() LongSchema {
	s.required = false
	return s
}

// Custom appends a user predicate with its verbatim failure message.
func (s LongSchema) Custom(pred func(int64) bool, message string) LongSchema {
	s.custom = appendRule(s.custom, pred, message)
	return s
}

// Transform attaches a function applied once to the validated value on
// overall success.
func (s LongSchema) Transform(fn func(int64) int64) LongSchema {
	s.fn = fn
	return s
}

func (s LongSchema) Validate(ctx context.Context, v any) jod.Result[int64] {
	return s.ValidateNullable(ctx, v)
}

func (s LongSchema) ValidateNullable(ctx context.Context, v any) jod.Result[int64] {
	if isNil(v) {
		return nullResult[int64](s.required)
	}
	n, ok := asInt64(v)
	if !ok {
		return jod.Failure[int64](invalidType(v))
	}

	var errs jod.Errors
	if s.min != nil && n < *s.min {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMinValue, n, map[string]any{"min": *s.min}))
	}
	if s.max != nil && n > *s.max {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMaxValue, n, map[string]any{"max": *s.max}))
	}
	if s.positive && n <= 0 {
		errs = jod.AppendErrors(errs, ruleError(jod.CodePositive, n, nil))
	}
	if s.nonNegative && n < 0 {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeNonNegative, n, nil))
	}
	for _, r := range s.custom {
		if !r.pred(n) {
			errs = jod.AppendErrors(errs, customError(r.message, n))
		}
	}
	if len(errs) > 0 {
		return jod.Failure[int64](errs...)
	}
	if s.fn != nil {
		n = s.fn(n)
	}
	return jod.Success(n)
}

func (s LongSchema) ValidateNullableAny(ctx context.Context, v any) jod.Result[any] {
	return jod.WidenResult(s.ValidateNullable(ctx, v))
}

// FloatSchema validates float64 (double-precision) values.
type FloatSchema struct {
	required    bool
	min         *float64
	max         *float64
	positive    bool
	nonNegative bool
	finite      bool
	custom      []customRule[float64]
	fn          func(float64) float64
}

var (
	_ jod.Schema[float64] = FloatSchema{}
	_ jod.AnySchema       = FloatSchema{}
)

// Float creates a schema for double-precision floating point values.
func Float() FloatSchema { return FloatSchema{} }

// Min sets the minimum value (inclusive).
func (s FloatSchema) Min(n float64) FloatSchema {
	s.min = ptr(n)
	return s
}

// Max sets the maximum value (inclusive).
func (s FloatSchema) Max(n float64) FloatSchema {
	s.max = ptr(n)
	return s
}

// Range sets both minimum and maximum value.
func (s FloatSchema) Range(min, max float64) FloatSchema {
	return s.Min(min).Max(max)
}

// Positive requires the value to be > 0.
func (s FloatSchema) Positive() FloatSchema {
	s.positive = true
	return s
}

// NonNegative requires the value to be >= 0.
func (s FloatSchema) NonNegative() FloatSchema {
	s.nonNegative = true
	return s
}

// Finite requires the value to be neither NaN nor infinite.
func (s FloatSchema) Finite() FloatSchema {
	s.finite = true
	return s
}

// Required marks the schema as rejecting null input.
func (s FloatSchema) Required() FloatSchema {
	s.required = true
	return s
}

// Optional marks the schema as accepting null input.
func (s FloatSchema) Optional() FloatSchema {
	s.required = false
	return s
}

// Custom appends a user predicate with its verbatim failure message.
func (s FloatSchema) Custom(pred func(float64) bool, message string) FloatSchema {
	s.custom = appendRule(s.custom, pred, message)
	return s
}

// Transform attaches a function applied once to the validated value on
// overall success.
func (s FloatSchema) Transform(fn func(float64) float64) FloatSchema {
	s.fn = fn
	return s
}

func (s FloatSchema) Validate(ctx context.Context, v any) jod.Result[float64] {
	return s.ValidateNullable(ctx, v)
}

func (s FloatSchema) ValidateNullable(ctx context.Context, v any) jod.Result[float64] {
	if isNil(v) {
		return nullResult[float64](s.required)
	}
	f, ok := asFloat64(v)
	if !ok {
		return jod.Failure[float64](invalidType(v))
	}

	var errs jod.Errors
	if s.min != nil && f < *s.min {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMinValue, f, map[string]any{"min": *s.min}))
	}
	if s.max != nil && f > *s.max {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMaxValue, f, map[string]any{"max": *s.max}))
	}
	if s.positive && f <= 0 {
		errs = jod.AppendErrors(errs, ruleError(jod.CodePositive, f, nil))
	}
	if s.nonNegative && f < 0 {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeNonNegative, f, nil))
	}
	if s.finite && (math.IsNaN(f) || math.IsInf(f, 0)) {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeFinite, f, nil))
	}
	for _, r := range s.custom {
		if !r.pred(f) {
			errs = jod.AppendErrors(errs, customError(r.message, f))
		}
	}
	if len(errs) > 0 {
		return jod.Failure[float64](errs...)
	}
	if s.fn != nil {
		f = s.fn(f)
	}
	return jod.Success(f)
}

func (s FloatSchema) ValidateNullableAny(ctx context.Context, v any) jod.Result[any] {
	return jod.WidenResult(s.ValidateNullable(ctx, v))
}
