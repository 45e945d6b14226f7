package dsl_test

import (
	"context"
	"testing"

	jod "github.com/M1tsumi/Jod"
	"github.com/M1tsumi/Jod/dsl"
)

func TestBooleanExpectedValue(t *testing.T) {
	ctx := context.Background()

	if r := dsl.Boolean().True().ValidateNullable(ctx, true); !r.IsValid() {
		t.Fatalf("true rejected: %v", r.Errors())
	}
	r := dsl.Boolean().True().ValidateNullable(ctx, false)
	errs := r.Errors()
	if len(errs) != 1 || errs[0].Code != jod.CodeExpectedValue {
		t.Fatalf("errors = %v; want EXPECTED_VALUE", errs)
	}
	if errs[0].Params["expected"] != true {
		t.Fatalf("params = %v", errs[0].Params)
	}

	if r := dsl.Boolean().False().ValidateNullable(ctx, false); !r.IsValid() {
		t.Fatalf("false rejected: %v", r.Errors())
	}
}

func TestBooleanTypeAndNull(t *testing.T) {
	ctx := context.Background()

	r := dsl.Boolean().ValidateNullable(ctx, "true")
	if r.Errors()[0].Code != jod.CodeInvalidType {
		t.Fatalf("string input must be INVALID_TYPE: %v", r.Errors())
	}

	if r := dsl.Boolean().Required().ValidateNullable(ctx, nil); r.Errors()[0].Code != jod.CodeRequired {
		t.Fatalf("errors = %v", r.Errors())
	}
	r = dsl.Boolean().ValidateNullable(ctx, nil)
	if _, present := r.Value(); !r.IsValid() || present {
		t.Fatalf("optional nil must be absent")
	}
}

func TestBooleanCustomAndTransform(t *testing.T) {
	ctx := context.Background()
	s := dsl.Boolean().
		Custom(func(b bool) bool { return b }, "consent is required").
		Transform(func(b bool) bool { return !b })

	r := s.ValidateNullable(ctx, false)
	if r.Errors()[0].Message != "consent is required" {
		t.Fatalf("errors = %v", r.Errors())
	}

	r = s.ValidateNullable(ctx, true)
	if v, _ := r.Value(); v != false {
		t.Fatalf("transform skipped: %v", v)
	}
}
