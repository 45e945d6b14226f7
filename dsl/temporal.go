package dsl

import (
	"context"
	"time"

	jod "github.com/M1tsumi/Jod"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// dateOnly truncates t to its civil date, normalized to UTC midnight so two
// instants on the same calendar day always compare equal.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// clockOf reduces t to its time-of-day as an offset from midnight.
func clockOf(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

// asTime accepts time.Time directly or a string parsed with layout.
func asTime(v any, layout string) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(layout, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}

// DateSchema validates calendar dates. Inputs may be time.Time values or
// "2006-01-02" strings; the time-of-day portion of an input is ignored, and
// validated values normalize to UTC midnight.
type DateSchema struct {
	required bool
	min      *time.Time
	max      *time.Time
	custom   []customRule[time.Time]
	fn       func(time.Time) time.Time
	now      func() time.Time
}

var (
	_ jod.Schema[time.Time] = DateSchema{}
	_ jod.AnySchema         = DateSchema{}
)

// Date creates a schema for calendar date values.
func Date() DateSchema { return DateSchema{now: time.Now} }

// Min sets the earliest allowed date (inclusive, compared by civil date).
func (s DateSchema) Min(t time.Time) DateSchema {
	s.min = ptr(dateOnly(t))
	return s
}

// Max sets the latest allowed date (inclusive, compared by civil date).
func (s DateSchema) Max(t time.Time) DateSchema {
	s.max = ptr(dateOnly(t))
	return s
}

// Range sets both earliest and latest allowed date.
func (s DateSchema) Range(min, max time.Time) DateSchema {
	return s.Min(min).Max(max)
}

// Past requires the date to be strictly before today.
func (s DateSchema) Past() DateSchema {
	now := s.now
	return s.Custom(func(t time.Time) bool {
		return dateOnly(t).Before(dateOnly(now()))
	}, "Date must be in the past")
}

// Future requires the date to be strictly after today.
func (s DateSchema) Future() DateSchema {
	now := s.now
	return s.Custom(func(t time.Time) bool {
		return dateOnly(t).After(dateOnly(now()))
	}, "Date must be in the future")
}

// Required marks the schema as rejecting null input.
func (s DateSchema) Required() DateSchema {
	s.required = true
	return s
}

// Optional marks the schema as accepting null input.
func (s DateSchema) Optional() DateSchema {
	s.required = false
	return s
}

// Custom appends a user predicate with its verbatim failure message.
func (s DateSchema) Custom(pred func(time.Time) bool, message string) DateSchema {
	s.custom = appendRule(s.custom, pred, message)
	return s
}

// Transform attaches a function applied once to the validated value on
// overall success.
func (s DateSchema) Transform(fn func(time.Time) time.Time) DateSchema {
	s.fn = fn
	return s
}

// Clock replaces the reference clock Past and Future consult. Tests use this
// to pin "today".
func (s DateSchema) Clock(now func() time.Time) DateSchema {
	s.now = now
	return s
}

func (s DateSchema) Validate(ctx context.Context, v any) jod.Result[time.Time] {
	return s.ValidateNullable(ctx, v)
}

func (s DateSchema) ValidateNullable(ctx context.Context, v any) jod.Result[time.Time] {
	if isNil(v) {
		return nullResult[time.Time](s.required)
	}
	raw, ok := asTime(v, dateLayout)
	if !ok {
		return jod.Failure[time.Time](invalidType(v))
	}
	d := dateOnly(raw)

	var errs jod.Errors
	if s.min != nil && d.Before(*s.min) {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMinDate, d.Format(dateLayout),
			map[string]any{"min": s.min.Format(dateLayout)}))
	}
	if s.max != nil && d.After(*s.max) {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMaxDate, d.Format(dateLayout),
			map[string]any{"max": s.max.Format(dateLayout)}))
	}
	for _, r := range s.custom {
		if !r.pred(d) {
			errs = jod.AppendErrors(errs, customError(r.message, d.Format(dateLayout)))
		}
	}
	if len(errs) > 0 {
		return jod.Failure[time.Time](errs...)
	}
	if s.fn != nil {
		d = s.fn(d)
	}
	return jod.Success(d)
}

func (s DateSchema) ValidateNullableAny(ctx context.Context, v any) jod.Result[any] {
	return jod.WidenResult(s.ValidateNullable(ctx, v))
}

// DateTimeSchema validates instants. Inputs may be time.Time values or
// RFC 3339 strings; comparisons use instant ordering, so bounds in different
// time zones behave as expected.
type DateTimeSchema struct {
	required bool
	min      *time.Time
	max      *time.Time
	custom   []customRule[time.Time]
	fn       func(time.Time) time.Time
	now      func() time.Time
}

var (
	_ jod.Schema[time.Time] = DateTimeSchema{}
	_ jod.AnySchema         = DateTimeSchema{}
)

// DateTime creates a schema for instant (date and time) values.
func DateTime() DateTimeSchema { return DateTimeSchema{now: time.Now} }

// Min sets the earliest allowed instant (inclusive).
func (s DateTimeSchema) Min(t time.Time) DateTimeSchema {
	s.min = ptr(t)
	return s
}

// Max sets the latest allowed instant (inclusive).
func (s DateTimeSchema) Max(t time.Time) DateTimeSchema {
	s.max = ptr(t)
	return s
}

// Range sets both earliest and latest allowed instant.
func (s DateTimeSchema) Range(min, max time.Time) DateTimeSchema {
	return s.Min(min).Max(max)
}

// Past requires the instant to be strictly before now.
func (s DateTimeSchema) Past() DateTimeSchema {
	now := s.now
	return s.Custom(func(t time.Time) bool { return t.Before(now()) },
		"DateTime must be in the past")
}

// Future requires the instant to be strictly after now.
func (s DateTimeSchema) Future() DateTimeSchema {
	now := s.now
	return s.Custom(func(t time.Time) bool { return t.After(now()) },
		"DateTime must be in the future")
}

// Required marks the schema as rejecting null input.
func (s DateTimeSchema) Required() DateTimeSchema {
	s.required = true
	return s
}

// Optional marks the schema as accepting null input.
func (s DateTimeSchema) Optional() DateTimeSchema {
	s.required = false
	return s
}

// Custom appends a user predicate with its verbatim failure message.
func (s DateTimeSchema) Custom(pred func(time.Time) bool, message string) DateTimeSchema {
	s.custom = appendRule(s.custom, pred, message)
	return s
}

// Transform attaches a function applied once to the validated value on
// overall success.
func (s DateTimeSchema) Transform(fn func(time.Time) time.Time) DateTimeSchema {
	s.fn = fn
	return s
}

// Clock replaces the reference clock Past and Future consult.
func (s DateTimeSchema) Clock(now func() time.Time) DateTimeSchema {
	s.now = now
	return s
}

func (s DateTimeSchema) Validate(ctx context.Context, v any) jod.Result[time.Time] {
	return s.ValidateNullable(ctx, v)
}

func (s DateTimeSchema) ValidateNullable(ctx context.Context, v any) jod.Result[time.Time] {
	if isNil(v) {
		return nullResult[time.Time](s.required)
	}
	t, ok := asTime(v, time.RFC3339)
	if !ok {
		return jod.Failure[time.Time](invalidType(v))
	}

	var errs jod.Errors
	if s.min != nil && t.Before(*s.min) {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMinDateTime, t.Format(time.RFC3339),
			map[string]any{"min": s.min.Format(time.RFC3339)}))
	}
	if s.max != nil && t.After(*s.max) {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMaxDateTime, t.Format(time.RFC3339),
			map[string]any{"max": s.max.Format(time.RFC3339)}))
	}
	for _, r := range s.custom {
		if !r.pred(t) {
			errs = jod.AppendErrors(errs, customError(r.message, t.Format(time.RFC3339)))
		}
	}
	if len(errs) > 0 {
		return jod.Failure[time.Time](errs...)
	}
	if s.fn != nil {
		t = s.fn(t)
	}
	return jod.Success(t)
}

func (s DateTimeSchema) ValidateNullableAny(ctx context.Context, v any) jod.Result[any] {
	return jod.WidenResult(s.ValidateNullable(ctx, v))
}

// TimeOfDaySchema validates wall-clock times with no date component. Inputs
// may be time.Time values (only the clock is read) or "15:04:05" strings.
// Comparisons use the offset from midnight.
type TimeOfDaySchema struct {
	required bool
	min      *time.Time
	max      *time.Time
	custom   []customRule[time.Time]
	fn       func(time.Time) time.Time
}

var (
	_ jod.Schema[time.Time] = TimeOfDaySchema{}
	_ jod.AnySchema         = TimeOfDaySchema{}
)

// TimeOfDay creates a schema for wall-clock time values.
func TimeOfDay() TimeOfDaySchema { return TimeOfDaySchema{} }

// Min sets the earliest allowed time of day (inclusive).
func (s TimeOfDaySchema) Min(t time.Time) TimeOfDaySchema {
	s.min = ptr(t)
	return s
}

// Max sets the latest allowed time of day (inclusive).
func (s TimeOfDaySchema) Max(t time.Time) TimeOfDaySchema {
	s.max = ptr(t)
	return s
}

// Range sets both earliest and latest allowed time of day.
func (s TimeOfDaySchema) Range(min, max time.Time) TimeOfDaySchema {
	return s.Min(min).Max(max)
}

// Required marks the schema as rejecting null input.
func (s TimeOfDaySchema) Required() TimeOfDaySchema {
	s.required = true
	return s
}

// Optional marks the schema as accepting null input.
func (s TimeOfDaySchema) Optional() TimeOfDaySchema {
	s.required = false
	return s
}

// Custom appends a user predicate with its verbatim failure message.
func (s TimeOfDaySchema) Custom(pred func(time.Time) bool, message string) TimeOfDaySchema {
	s.custom = appendRule(s.custom, pred, message)
	return s
}

// Transform attaches a function applied once to the validated value on
// overall success.
func (s TimeOfDaySchema) Transform(fn func(time.Time) time.Time) TimeOfDaySchema {
	s.fn = fn
	return s
}

func (s TimeOfDaySchema) Validate(ctx context.Context, v any) jod.Result[time.Time] {
	return s.ValidateNullable(ctx, v)
}

func (s TimeOfDaySchema) ValidateNullable(ctx context.Context, v any) jod.Result[time.Time] {
	if isNil(v) {
		return nullResult[time.Time](s.required)
	}
	t, ok := asTime(v, timeLayout)
	if !ok {
		return jod.Failure[time.Time](invalidType(v))
	}
	c := clockOf(t)

	var errs jod.Errors
	if s.min != nil && c < clockOf(*s.min) {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMinTime, t.Format(timeLayout),
			map[string]any{"min": s.min.Format(timeLayout)}))
	}
	if s.max != nil && c > clockOf(*s.max) {
		errs = jod.AppendErrors(errs, ruleError(jod.CodeMaxTime, t.Format(timeLayout),
			map[string]any{"max": s.max.Format(timeLayout)}))
	}
	for _, r := range s.custom {
		if !r.pred(t) {
			errs = jod.AppendErrors(errs, customError(r.message, t.Format(timeLayout)))
		}
	}
	if len(errs) > 0 {
		return jod.Failure[time.Time](errs...)
	}
	if s.fn != nil {
		t = s.fn(t)
	}
	return jod.Success(t)
}

func (s TimeOfDaySchema) ValidateNullableAny(ctx context.Context, v any) jod.Result[any] {
	return jod.WidenResult(s.ValidateNullable(ctx, v))
}
