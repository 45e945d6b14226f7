package dsl

import (
	"context"
	"errors"
	"fmt"

	jod "github.com/M1tsumi/Jod"
)

// objectField is one declared field: its input key and the type-erased
// schema validating it.
type objectField struct {
	name   string
	schema jod.AnySchema
}

// ObjectBuilder accumulates the field layout and constructor of an
// ObjectSchema. Like the schemas, every method returns a reconfigured copy,
// so a partially-built builder can safely fork.
type ObjectBuilder[T any] struct {
	fields   []objectField
	required bool
	custom   []customRule[map[string]any]
	ctor     func(map[string]any) (T, error)
	fn       func(T) T
}

// Object starts building an object schema producing T.
func Object[T any]() ObjectBuilder[T] { return ObjectBuilder[T]{} }

// Field declares a field validated by schema. Declaration order is the order
// field violations are reported in.
func (b ObjectBuilder[T]) Field(name string, schema jod.AnySchema) ObjectBuilder[T] {
	if schema == nil {
		panic("dsl: nil field schema")
	}
	out := make([]objectField, len(b.fields)+1)
	copy(out, b.fields)
	out[len(b.fields)] = objectField{name: name, schema: schema}
	b.fields = out
	return b
}

// Required marks the object itself as rejecting null input.
func (b ObjectBuilder[T]) Required() ObjectBuilder[T] {
	b.required = true
	return b
}

// Optional marks the object itself as accepting null input.
func (b ObjectBuilder[T]) Optional() ObjectBuilder[T] {
	b.required = false
	return b
}

// Custom appends a cross-field predicate over the raw input map with its
// verbatim failure message.
func (b ObjectBuilder[T]) Custom(pred func(map[string]any) bool, message string) ObjectBuilder[T] {
	b.custom = appendRule(b.custom, pred, message)
	return b
}

// Builds sets the constructor invoked with the validated field values,
// keyed by field name. Fields that validated to null are absent from the
// map. A constructor error or panic surfaces as CONSTRUCTION_FAILED.
func (b ObjectBuilder[T]) Builds(ctor func(map[string]any) (T, error)) ObjectBuilder[T] {
	b.ctor = ctor
	return b
}

// Transform attaches a function applied once to the constructed value on
// overall success.
func (b ObjectBuilder[T]) Transform(fn func(T) T) ObjectBuilder[T] {
	b.fn = fn
	return b
}

// Build finalizes the schema. It errors when no constructor was set.
func (b ObjectBuilder[T]) Build() (ObjectSchema[T], error) {
	if b.ctor == nil {
		return ObjectSchema[T]{}, errors.New("dsl: object schema needs a constructor; call Builds before Build")
	}
	return ObjectSchema[T]{
		fields:   b.fields,
		required: b.required,
		custom:   b.custom,
		ctor:     b.ctor,
		fn:       b.fn,
	}, nil
}

// MustBuild is Build panicking on error, for package-level schema variables.
func (b ObjectBuilder[T]) MustBuild() ObjectSchema[T] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// ObjectSchema validates map input field by field and constructs a T from
// the validated values. Unknown input keys are ignored; every declared field
// is validated and all violations are reported together, each prefixed with
// its field name.
type ObjectSchema[T any] struct {
	fields   []objectField
	required bool
	custom   []customRule[map[string]any]
	ctor     func(map[string]any) (T, error)
	fn       func(T) T
}

var (
	_ jod.Schema[struct{}] = ObjectSchema[struct{}]{}
	_ jod.AnySchema        = ObjectSchema[struct{}]{}
)

func (s ObjectSchema[T]) Validate(ctx context.Context, v any) jod.Result[T] {
	return s.ValidateNullable(ctx, v)
}

func (s ObjectSchema[T]) ValidateNullable(ctx context.Context, v any) jod.Result[T] {
	if isNil(v) {
		return nullResult[T](s.required)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return jod.Failure[T](invalidType(v))
	}

	var errs jod.Errors
	validated := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		r := f.schema.ValidateNullableAny(ctx, m[f.name])
		if !r.IsValid() {
			for _, e := range r.Errors() {
				errs = jod.AppendErrors(errs, e.AtField(f.name))
			}
			continue
		}
		if fv, present := r.Value(); present {
			validated[f.name] = fv
		}
	}
	for _, r := range s.custom {
		if !r.pred(m) {
			errs = jod.AppendErrors(errs, customError(r.message, v))
		}
	}
	if len(errs) > 0 {
		return jod.Failure[T](errs...)
	}

	out, err := s.construct(validated)
	if err != nil {
		return jod.Failure[T](ruleError(jod.CodeConstructionFailed, v, map[string]any{"cause": err.Error()}))
	}
	if s.fn != nil {
		out = s.fn(out)
	}
	return jod.Success(out)
}

// construct invokes the constructor, converting a panic into an error so a
// throwing constructor cannot escape the Result contract.
func (s ObjectSchema[T]) construct(validated map[string]any) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return s.ctor(validated)
}

func (s ObjectSchema[T]) ValidateNullableAny(ctx context.Context, v any) jod.Result[any] {
	return jod.WidenResult(s.ValidateNullable(ctx, v))
}

// FieldString reads a validated string field from the constructor map,
// returning the zero value when the field is absent.
func FieldString(m map[string]any, name string) string { return fieldAs[string](m, name) }

// FieldInt32 reads a validated int32 field from the constructor map.
func FieldInt32(m map[string]any, name string) int32 { return fieldAs[int32](m, name) }

// FieldInt64 reads a validated int64 field from the constructor map.
func FieldInt64(m map[string]any, name string) int64 { return fieldAs[int64](m, name) }

// FieldFloat64 reads a validated float64 field from the constructor map.
func FieldFloat64(m map[string]any, name string) float64 { return fieldAs[float64](m, name) }

// FieldBool reads a validated bool field from the constructor map.
func FieldBool(m map[string]any, name string) bool { return fieldAs[bool](m, name) }

// Field reads a validated field of any type from the constructor map. The
// bool reports whether the field was present with that type.
func Field[V any](m map[string]any, name string) (V, bool) {
	v, ok := m[name].(V)
	return v, ok
}

func fieldAs[V any](m map[string]any, name string) V {
	v, _ := m[name].(V)
	return v
}
