package dsl

import (
	"context"

	jod "github.com/M1tsumi/Jod"
)

// ListSchema validates homogeneous lists by running an element schema over
// every entry. Element violations keep their origin: a failure in entry i is
// reported at "$.[i]" with the element's own sub-path appended.
type ListSchema[E any] struct {
	elem     jod.Schema[E]
	required bool
	minSize  *int
	maxSize  *int
	custom   []customRule[[]any]
	fn       func([]E) []E
}

var (
	_ jod.Schema[[]string] = ListSchema[string]{}
	_ jod.AnySchema        = ListSchema[string]{}
)

// List creates a schema validating each element with elem.
func List[E any](elem jod.Schema[E]) ListSchema[E] {
	if elem == nil {
		panic("dsl: List requires an element schema")
	}
	return ListSchema[E]{elem: elem}
}

// MinSize sets the minimum number of elements (inclusive).
func (s ListSchema[E]) MinSize(n int) ListSchema[E] {
	if n < 0 {
		panic("dsl: negative min size")
	}
	s.minSize = ptr(n)
	return s
}

// MaxSize sets the maximum number of elements (inclusive).
func (s ListSchema[E]) MaxSize(n int) ListSchema[E] {
	if n < 0 {
		panic("dsl: negative max size")
	}
	s.maxSize = ptr(n)
	return s
}

// Size sets both minimum and maximum number of elements.
func (s ListSchema[E]) Size(min, max int) ListSchema[E] {
	return s.MinSize(min).MaxSize(max)
}

// NonEmpty requires at least one element.
func (s ListSchema[E]) NonEmpty() ListSchema[E] {
	return s.MinSize(1)
}

// Required marks the schema as rejecting null input.
func (s ListSchema[E]) Required() ListSchema[E] {
	s.required = true
	return s
}

// Optional marks the schema as accepting null input.
func (s ListSchema[E]) Optional() ListSchema[E] {
	s.required = false
	return s
}

// Custom appends a user predicate over the raw input elements with its
// verbatim failure message. Predicates run after per-element validation,
// whether or not elements failed, so their violations aggregate with the
// element violations.
func (s ListSchema[E]) Custom(pred func([]any) bool, message string) ListSchema[E] {
	s.custom = appendRule(s.custom, pred, message)
	return s
}

// Transform attaches a function applied once to the validated list on
// overall success.
func (s ListSchema[E]) Transform(fn func([]E) []E) ListSchema[E] {
	s.fn = fn
	return s
}

// asElements accepts either the generic []any a decoder produces or an
// already-typed []E, normalized to []any for per-element dispatch.
func (s ListSchema[E]) asElements(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	typed, ok := v.([]E)
	if !ok {
		return nil, false
	}
	items := make([]any, len(typed))
	for i, e := range typed {
		items[i] = e
	}
	return items, true
}

func (s ListSchema[E]) Validate(ctx context.Context, v any) jod.Result[[]E] {
	return s.ValidateNullable(ctx, v)
}

func (s ListSchema[E]) ValidateNullable(ctx context.Context, v any) jod.Result[[]E] {
	if isNil(v) {
		return nullResult[[]E](s.required)
	}
	items, ok := s.asElements(v)
	if !ok {
		return jod.Failure[[]E](invalidType(v))
	}

	var errs jod.Errors
	if s.minSize != nil && len(items) < *s.minSize {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMinSize, len(items), map[string]any{"min": *s.minSize}))
	}
	if s.maxSize != nil && len(items) > *s.maxSize {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMaxSize, len(items), map[string]any{"max": *s.maxSize}))
	}

	out := make([]E, 0, len(items))
	for i, item := range items {
		r := s.elem.ValidateNullable(ctx, item)
		if !r.IsValid() {
			for _, e := range r.Errors() {
				errs = jod.AppendErrors(errs, e.AtIndex(i))
			}
			continue
		}
		if ev, present := r.Value(); present {
			out = append(out, ev)
		}
	}

	for _, r := range s.custom {
		if !r.pred(items) {
			errs = jod.AppendErrors(errs, customError(r.message, v))
		}
	}
	if len(errs) > 0 {
		return jod.Failure[[]E](errs...)
	}
	if s.fn != nil {
		out = s.fn(out)
	}
	return jod.Success(out)
}

func (s ListSchema[E]) ValidateNullableAny(ctx context.Context, v any) jod.Result[any] {
	return jod.WidenResult(s.ValidateNullable(ctx, v))
}
