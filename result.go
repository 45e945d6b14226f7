package jod

// Result is the outcome of one validation call: either success carrying the
// produced value, or failure carrying a non-empty list of violations.
// Exactly one variant is inhabited; the constructors below are the only way
// to build one, which keeps the both-present/both-absent states
// unrepresentable. A Result is never mutated after construction.
type Result[T any] struct {
	valid   bool
	present bool // false when the schema allowed null and the input was null
	value   T
	errs    Errors
}

// Success creates a successful result carrying a present value.
func Success[T any](v T) Result[T] {
	return Result[T]{valid: true, present: true, value: v}
}

// SuccessNull creates a successful result for an allowed-null input. The
// carried value is absent; Value reports present=false.
func SuccessNull[T any]() Result[T] {
	return Result[T]{valid: true}
}

// Failure creates a failed result. At least one violation is required; a
// failure with no errors is a programming error and panics.
func Failure[T any](errs ...Error) Result[T] {
	if len(errs) == 0 {
		panic("jod: Failure requires at least one Error")
	}
	return Result[T]{errs: errs}
}

// IsValid reports whether the validation succeeded.
func (r Result[T]) IsValid() bool { return r.valid }

// Value returns the validated (possibly transformed) value and whether it is
// present. A successful nullable validation of null yields present=false.
func (r Result[T]) Value() (T, bool) {
	if !r.valid {
		var zero T
		return zero, false
	}
	return r.value, r.present
}

// Errors returns the violations of a failed result, empty on success. The
// returned slice must not be mutated.
func (r Result[T]) Errors() Errors {
	if r.valid {
		return nil
	}
	return r.errs
}

// Err bridges the Result algebra to Go's error convention: nil on success,
// the Errors collection otherwise.
func (r Result[T]) Err() error {
	if r.valid {
		return nil
	}
	return r.errs
}

// WidenResult converts a Result[T] into a Result[any], preserving the
// variant, presence, and error list. Composite schemas use it to hold
// heterogeneous child results behind the AnySchema view.
func WidenResult[T any](r Result[T]) Result[any] {
	if !r.valid {
		return Result[any]{errs: r.errs}
	}
	if !r.present {
		return SuccessNull[any]()
	}
	return Success[any](r.value)
}
