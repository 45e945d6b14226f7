// Package dsl provides the fluent schema builders.
//
//   - Scalars: String, Integer, Long, Float, BigInt, Boolean, Date,
//     DateTime, TimeOfDay.
//   - Composites: List, Object (builder with Field/Builds/Build), Union.
//
// Every builder method returns a reconfigured copy; configured schemas are
// immutable and safe for concurrent use. Validation reports every failed
// rule of a node together, with paths rooted at "$" and rewritten as results
// propagate through objects ("$.name") and lists ("$.[0]").
package dsl
