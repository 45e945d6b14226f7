package dsl

import (
	"context"
	"encoding/json"
	"math/big"

	jod "github.com/M1tsumi/Jod"
)

// asBigInt widens integer-shaped input into *big.Int. Strings are accepted
// deliberately: arbitrary-precision values are usually serialized as strings
// to avoid precision loss in transit.
func asBigInt(v any) (*big.Int, bool) {
	switch t := v.(type) {
	case *big.Int:
		return new(big.Int).Set(t), true
	case string:
		n, ok := new(big.Int).SetString(t, 10)
		return n, ok
	case json.Number:
		n, ok := new(big.Int).SetString(t.String(), 10)
		return n, ok
	default:
		if i, ok := asInt64(v); ok {
			return big.NewInt(i), true
		}
		return nil, false
	}
}

// BigIntSchema validates arbitrary-precision integers. Accepted input shapes
// are *big.Int, decimal strings, json.Number, and any Go integer kind.
// Validated values are defensive copies; callers may mutate the result.
type BigIntSchema struct {
	required    bool
	min         *big.Int
	max         *big.Int
	positive    bool
	nonNegative bool
	custom      []customRule[*big.Int]
	fn          func(*big.Int) *big.Int
}

var (
	_ jod.Schema[*big.Int] = BigIntSchema{}
	_ jod.AnySchema        = BigIntSchema{}
)

// BigInt creates a schema for arbitrary-precision integer values.
func BigInt() BigIntSchema { return BigIntSchema{} }

// Min sets the minimum value (inclusive). The bound is copied.
func (s BigIntSchema) Min(n *big.Int) BigIntSchema {
	s.min = new(big.Int).Set(n)
	return s
}

// Max sets the maximum value (inclusive). The bound is copied.
func (s BigIntSchema) Max(n *big.Int) BigIntSchema {
	s.max = new(big.Int).Set(n)
	return s
}

// Range sets both minimum and maximum value.
func (s BigIntSchema) Range(min, max *big.Int) BigIntSchema {
	return s.Min(min).Max(max)
}

// Positive requires the value to be > 0.
func (s BigIntSchema) Positive() BigIntSchema {
	s.positive = true
	return s
}

// NonNegative requires the value to be >= 0.
func (s BigIntSchema) NonNegative() BigIntSchema {
	s.nonNegative = true
	return s
}

// Required marks the schema as rejecting null input.
func (s BigIntSchema) Required() BigIntSchema {
	s.required = true
	return s
}

// Optional marks the schema as accepting null input.
func (s BigIntSchema) Optional() BigIntSchema {
	s.required = false
	return s
}

// Custom appends a user predicate with its verbatim failure message.
func (s BigIntSchema) Custom(pred func(*big.Int) bool, message string) BigIntSchema {
	s.custom = appendRule(s.custom, pred, message)
	return s
}

// Transform attaches a function applied once to the validated value on
// overall success.
func (s BigIntSchema) Transform(fn func(*big.Int) *big.Int) BigIntSchema {
	s.fn = fn
	return s
}

func (s BigIntSchema) Validate(ctx context.Context, v any) jod.Result[*big.Int] {
	return s.ValidateNullable(ctx, v)
}

func (s BigIntSchema) ValidateNullable(ctx context.Context, v any) jod.Result[*big.Int] {
	if isNil(v) {
		return nullResult[*big.Int](s.required)
	}
	n, ok := asBigInt(v)
	if !ok {
		return jod.Failure[*big.Int](invalidType(v))
	}

	var errs jod.Errors
	if s.min != nil && n.Cmp(s.min) < 0 {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMinValue, n.String(), map[string]any{"min": s.min.String()}))
	}
	if s.max != nil && n.Cmp(s.max) > 0 {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMaxValue, n.String(), map[string]any{"max": s.max.String()}))
	}
	if s.positive && n.Sign() <= 0 {
		errs = jod.AppendErrors(errs, ruleError(jod.CodePositive, n.String(), nil))
	}
	if s.nonNegative && n.Sign() < 0 {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeNonNegative, n.String(), nil))
	}
	for _, r := range s.custom {
		if !r.pred(n) {
			errs = jod.AppendErrors(errs, customError(r.message, n.String()))
		}
	}
	if len(errs) > 0 {
		return jod.Failure[*big.Int](errs...)
	}
	if s.fn != nil {
		n = s.fn(n)
	}
	return jod.Success(n)
}

func (s BigIntSchema) ValidateNullableAny(ctx context.Context, v any) jod.Result[any] {
	return jod.WidenResult(s.ValidateNullable(ctx, v))
}
