package dsl

import (
	"context"
	"regexp"
	"slices"
	"unicode/utf8"

	jod "github.com/M1tsumi/Jod"
	"github.com/M1tsumi/Jod/format"
)

// StringSchema validates string values. The zero value accepts any string
// and allows null; every fluent method returns a reconfigured copy.
type StringSchema struct {
	required bool
	minLen   *int
	maxLen   *int
	pattern  *regexp.Regexp
	formats  []formatRule
	allowed  []string
	custom   []customRule[string]
	fn       func(string) string
}

// formatRule pairs a dedicated error code with its pluggable predicate.
// Predicates default to the format package but any func(string) bool with
// the same contract can be swapped in via Format.
type formatRule struct {
	code   string
	pred   func(string) bool
	params map[string]any
}

var (
	_ jod.Schema[string] = StringSchema{}
	_ jod.AnySchema      = StringSchema{}
)

// String creates a schema for string values.
func String() StringSchema { return StringSchema{} }

// Min sets the minimum length (in runes, inclusive).
func (s StringSchema) Min(n int) StringSchema {
	if n < 0 {
		panic("dsl: negative min length")
	}
	s.minLen = ptr(n)
	return s
}

// Max sets the maximum length (in runes, inclusive).
func (s StringSchema) Max(n int) StringSchema {
	if n < 0 {
		panic("dsl: negative max length")
	}
	s.maxLen = ptr(n)
	return s
}

// Length sets both minimum and maximum length.
func (s StringSchema) Length(min, max int) StringSchema {
	return s.Min(min).Max(max)
}

// Regex requires the string to match the given pattern. An invalid pattern
// is a configuration error and panics immediately.
func (s StringSchema) Regex(expr string) StringSchema {
	s.pattern = regexp.MustCompile(expr)
	return s
}

// Email requires the string to be a valid email address.
func (s StringSchema) Email() StringSchema {
	return s.Format(jod.CodeEmail, format.Email)
}

// UUID requires the string to be a canonical RFC 4122 UUID.
func (s StringSchema) UUID() StringSchema {
	return s.Format(jod.CodeUUID, format.UUID)
}

// URL requires the string to be an absolute URL.
func (s StringSchema) URL() StringSchema {
	return s.Format(jod.CodeURL, format.URL)
}

// Phone requires the string to be a plausible international phone number.
func (s StringSchema) Phone() StringSchema {
	return s.Format(jod.CodePhone, format.Phone)
}

// CreditCard requires the string to pass the Luhn checksum.
func (s StringSchema) CreditCard() StringSchema {
	return s.Format(jod.CodeCreditCard, format.CreditCard)
}

// PostalCode requires the string to be a postal code for the given country.
func (s StringSchema) PostalCode(country string) StringSchema {
	return s.format(formatRule{
		code:   jod.CodePostalCode,
		pred:   func(v string) bool { return format.PostalCode(v, country) },
		params: map[string]any{"country": country},
	})
}

// Format attaches an arbitrary format predicate under the given error code.
// This is the swap point for callers that need stricter or looser checks
// than the format package defaults.
func (s StringSchema) Format(code string, pred func(string) bool) StringSchema {
	return s.format(formatRule{code: code, pred: pred})
}

func (s StringSchema) format(r formatRule) StringSchema {
	if r.pred == nil {
		panic("dsl: nil format predicate")
	}
	out := make([]formatRule, len(s.formats)+1)
	copy(out, s.formats)
	out[len(s.formats)] = r
	s.formats = out
	return s
}

// OneOf requires the string to be one of the allowed values.
func (s StringSchema) OneOf(values ...string) StringSchema {
	if len(values) == 0 {
		panic("dsl: OneOf requires at least one value")
	}
	s.allowed = slices.Clone(values)
	return s
}

// Required marks the schema as rejecting null input.
func (s StringSchema) Required() StringSchema {
	s.required = true
	return s
}

// Optional marks the schema as accepting null input.
func (s StringSchema) Optional() StringSchema {
	s.required = false
	return s
}

// Custom appends a user predicate; message is attached verbatim to the
// resulting CUSTOM violation.
func (s StringSchema) Custom(pred func(string) bool, message string) StringSchema {
	s.custom = appendRule(s.custom, pred, message)
	return s
}

// Transform attaches a function applied exactly once to the validated value
// on overall success. It never runs when any rule failed.
func (s StringSchema) Transform(fn func(string) string) StringSchema {
	s.fn = fn
	return s
}

func (s StringSchema) Validate(ctx context.Context, v any) jod.Result[string] {
	return s.ValidateNullable(ctx, v)
}

func (s StringSchema) ValidateNullable(ctx context.Context, v any) jod.Result[string] {
	if isNil(v) {
		return nullResult[string](s.required)
	}
	str, ok := v.(string)
	if !ok {
		return jod.Failure[string](invalidType(v))
	}

	var errs jod.Errors
	n := utf8.RuneCountInString(str)
	if s.minLen != nil && n < *s.minLen {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMinLength, str, map[string]any{"min": *s.minLen}))
	}
	if s.maxLen != nil && n > *s.maxLen {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMaxLength, str, map[string]any{"max": *s.maxLen}))
	}
	if s.pattern != nil && !s.pattern.MatchString(str) {
		errs = jod.AppendErrors(errs, ruleError(jod.CodePattern, str, map[string]any{"pattern": s.pattern.String()}))
	}
	for _, f := range s.formats {
		if !f.pred(str) {
			errs = jod.AppendErrors(errs, ruleError(f.code, str, f.params))
		}
	}
	if s.allowed != nil && !slices.Contains(s.allowed, str) {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeOneOf, str, map[string]any{"allowed": s.allowed}))
	}
	for _, r := range s.custom {
		if !r.pred(str) {
			errs = jod.AppendErrors(errs, customError(r.message, str))
		}
	}
	if len(errs) > 0 {
		return jod.Failure[string](errs...)
	}
	out := str
	if s.fn != nil {
		out = s.fn(out)
	}
	return jod.Success(out)
}

func (s StringSchema) ValidateNullableAny(ctx context.Context, v any) jod.Result[any] {
	return jod.WidenResult(s.ValidateNullable(ctx, v))
}
