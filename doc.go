// Package jod provides:
//
//   - Composable validation of untyped inputs via immutable Schema trees
//   - A sealed Result algebra (success-with-value vs failure-with-errors)
//   - A stable error model via Error/Errors (root-relative path, code, message)
//   - Boundary helpers decoding JSON/YAML bytes into the shapes the core consumes
//
// Design policy:
//
//   - Keep only the public contract in the root package (Schema, Result, Error,
//     path composition); put the fluent builders under dsl/.
//   - Place format predicates under format/, wire codecs under codec/, and the
//     message catalog under i18n/.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	user := dsl.Object[User]().
//		Field("email", dsl.String().Email().Required()).
//		Field("age", dsl.Integer().Min(18).Required()).
//		Builds(buildUser).
//		MustBuild()
//
//	res := user.ValidateNullable(ctx, input)
//	if !res.IsValid() {
//		render(res.Errors())
//	}
//
// Every schema node is immutable after construction; a single tree may be
// validated concurrently from any number of goroutines.
package jod
