package jod_test

import (
	"testing"

	jod "github.com/M1tsumi/Jod"
)

func TestSuccessCarriesValue(t *testing.T) {
	r := jod.Success("hello")
	if !r.IsValid() {
		t.Fatalf("expected valid result")
	}
	v, present := r.Value()
	if !present || v != "hello" {
		t.Fatalf("Value() = %q, %v; want \"hello\", true", v, present)
	}
	if r.Err() != nil {
		t.Fatalf("Err() = %v; want nil", r.Err())
	}
	if len(r.Errors()) != 0 {
		t.Fatalf("Errors() = %v; want empty", r.Errors())
	}
}

func TestSuccessNullIsValidButAbsent(t *testing.T) {
	r := jod.SuccessNull[int]()
	if !r.IsValid() {
		t.Fatalf("expected valid result")
	}
	v, present := r.Value()
	if present {
		t.Fatalf("Value() = %v, true; want absent", v)
	}
	if r.Err() != nil {
		t.Fatalf("Err() = %v; want nil", r.Err())
	}
}

func TestFailureCarriesErrors(t *testing.T) {
	e := jod.NewError(jod.CodeMinLength, "too short", "ab")
	r := jod.Failure[string](e)
	if r.IsValid() {
		t.Fatalf("expected invalid result")
	}
	if _, present := r.Value(); present {
		t.Fatalf("failed result must not carry a value")
	}
	errs := r.Errors()
	if len(errs) != 1 || errs[0].Code != jod.CodeMinLength {
		t.Fatalf("Errors() = %v; want one MIN_LENGTH", errs)
	}
	if r.Err() == nil {
		t.Fatalf("Err() = nil; want non-nil")
	}
}

func TestFailureWithoutErrorsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty Failure")
		}
	}()
	jod.Failure[string]()
}

func TestWidenResultPreservesVariants(t *testing.T) {
	w := jod.WidenResult(jod.Success(42))
	v, present := w.Value()
	if !w.IsValid() || !present || v.(int) != 42 {
		t.Fatalf("widened success = (%v, %v, valid=%v)", v, present, w.IsValid())
	}

	w = jod.WidenResult(jod.SuccessNull[int]())
	if _, present := w.Value(); !w.IsValid() || present {
		t.Fatalf("widened null success must stay valid and absent")
	}

	w = jod.WidenResult(jod.Failure[int](jod.NewError(jod.CodeInvalidType, "bad", "x")))
	if w.IsValid() || len(w.Errors()) != 1 {
		t.Fatalf("widened failure = valid=%v errs=%v", w.IsValid(), w.Errors())
	}
}
