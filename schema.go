package jod

import "context"

// Schema is the contract every validator node implements, scalar or
// composite. A node is an immutable configuration: fluent reconfiguration
// methods on the concrete builder types (dsl package) always return new
// nodes, so one schema tree may be validated concurrently from any number of
// goroutines without synchronization.
//
// Validation never blocks and never returns a Go error: every outcome,
// including violations in user-supplied predicates and constructors, is
// expressed through the Result algebra. The context is threaded through for
// house-style symmetry with the rest of the module's APIs; the core never
// suspends on it.
type Schema[T any] interface {
	// Validate is the common entry point; identical contract to
	// ValidateNullable.
	Validate(ctx context.Context, v any) Result[T]

	// ValidateNullable validates a candidate value that may be nil. A nil
	// input short-circuits every other rule: it fails with one REQUIRED
	// violation when the node is required, and succeeds with an absent
	// value otherwise.
	ValidateNullable(ctx context.Context, v any) Result[T]
}

// AnySchema is the type-erased view of a Schema. Composite schemas hold
// heterogeneous children through it (object fields, union alternatives over
// mixed value types) without any reflection on the input; every node in the
// dsl package implements it by widening its typed Result.
type AnySchema interface {
	ValidateNullableAny(ctx context.Context, v any) Result[any]
}
