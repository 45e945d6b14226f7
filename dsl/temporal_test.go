package dsl_test

import (
	"context"
	"testing"
	"time"

	jod "github.com/M1tsumi/Jod"
	"github.com/M1tsumi/Jod/dsl"
)

func TestDateComparesByCivilDate(t *testing.T) {
	ctx := context.Background()
	min := time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)
	s := dsl.Date().Min(min)

	// Same calendar day, earlier clock: the time-of-day portion is ignored.
	r := s.ValidateNullable(ctx, time.Date(2024, 1, 15, 0, 0, 1, 0, time.UTC))
	if !r.IsValid() {
		t.Fatalf("same-day input rejected: %v", r.Errors())
	}

	r = s.ValidateNullable(ctx, "2024-01-14")
	errs := r.Errors()
	if len(errs) != 1 || errs[0].Code != jod.CodeMinDate {
		t.Fatalf("errors = %v; want MIN_DATE", errs)
	}
}

func TestDateAcceptsStringsAndNormalizes(t *testing.T) {
	ctx := context.Background()
	r := dsl.Date().ValidateNullable(ctx, "2024-06-01")
	v, _ := r.Value()
	if !r.IsValid() || !v.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("value = %v (errs %v)", v, r.Errors())
	}

	r = dsl.Date().ValidateNullable(ctx, "01/06/2024")
	if r.IsValid() || r.Errors()[0].Code != jod.CodeInvalidType {
		t.Fatalf("wrong layout must be INVALID_TYPE: %v", r.Errors())
	}
}

func TestDatePastFuture(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return today }

	past := dsl.Date().Clock(clock).Past()
	if r := past.ValidateNullable(ctx, "2024-06-14"); !r.IsValid() {
		t.Fatalf("yesterday rejected: %v", r.Errors())
	}
	// Today is not in the past.
	r := past.ValidateNullable(ctx, "2024-06-15")
	if r.IsValid() || r.Errors()[0].Message != "Date must be in the past" {
		t.Fatalf("errors = %v", r.Errors())
	}

	future := dsl.Date().Clock(clock).Future()
	if r := future.ValidateNullable(ctx, "2024-06-16"); !r.IsValid() {
		t.Fatalf("tomorrow rejected: %v", r.Errors())
	}
	if r := future.ValidateNullable(ctx, "2024-06-15"); r.IsValid() {
		t.Fatalf("today accepted as future")
	}
}

func TestDateTimeComparesInstants(t *testing.T) {
	ctx := context.Background()
	min := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := dsl.DateTime().Min(min)

	// 13:00+02:00 is 11:00 UTC, before the bound even though the wall clock
	// reads later.
	r := s.ValidateNullable(ctx, "2024-01-01T13:00:00+02:00")
	errs := r.Errors()
	if len(errs) != 1 || errs[0].Code != jod.CodeMinDateTime {
		t.Fatalf("errors = %v; want MIN_DATE_TIME", errs)
	}

	if r := s.ValidateNullable(ctx, "2024-01-01T12:00:00Z"); !r.IsValid() {
		t.Fatalf("inclusive bound rejected: %v", r.Errors())
	}
}

func TestDateTimeRange(t *testing.T) {
	ctx := context.Background()
	s := dsl.DateTime().Range(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
	)
	r := s.ValidateNullable(ctx, "2025-01-01T00:00:00Z")
	if r.Errors()[0].Code != jod.CodeMaxDateTime {
		t.Fatalf("errors = %v", r.Errors())
	}
}

func TestTimeOfDayComparesClock(t *testing.T) {
	ctx := context.Background()
	opens := time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)
	closes := time.Date(0, 1, 1, 17, 0, 0, 0, time.UTC)
	s := dsl.TimeOfDay().Range(opens, closes)

	if r := s.ValidateNullable(ctx, "12:30:00"); !r.IsValid() {
		t.Fatalf("midday rejected: %v", r.Errors())
	}
	r := s.ValidateNullable(ctx, "08:59:59")
	if r.Errors()[0].Code != jod.CodeMinTime {
		t.Fatalf("errors = %v", r.Errors())
	}
	r = s.ValidateNullable(ctx, "17:00:01")
	if r.Errors()[0].Code != jod.CodeMaxTime {
		t.Fatalf("errors = %v", r.Errors())
	}

	// The date portion of a time.Time input is irrelevant.
	late := time.Date(1999, 12, 31, 18, 0, 0, 0, time.UTC)
	if r := s.ValidateNullable(ctx, late); r.IsValid() {
		t.Fatalf("18:00 accepted")
	}
}

func TestTemporalNullHandling(t *testing.T) {
	ctx := context.Background()
	if r := dsl.DateTime().Required().ValidateNullable(ctx, nil); r.Errors()[0].Code != jod.CodeRequired {
		t.Fatalf("errors = %v", r.Errors())
	}
	r := dsl.TimeOfDay().ValidateNullable(ctx, nil)
	if _, present := r.Value(); !r.IsValid() || present {
		t.Fatalf("optional nil must be absent")
	}
}
