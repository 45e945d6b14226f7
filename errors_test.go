package jod_test

import (
	"fmt"
	"strings"
	"testing"

	jod "github.com/M1tsumi/Jod"
)

func TestErrorsSummarizesFirstThree(t *testing.T) {
	es := jod.Errors{
		jod.ErrorAt(jod.CodeMinLength, "m1", "$.name", "a"),
		jod.ErrorAt(jod.CodeMinValue, "m2", "$.age", 1),
		jod.ErrorAt(jod.CodeRequired, "m3", "$.email", nil),
		jod.ErrorAt(jod.CodePattern, "m4", "$.sku", "!"),
	}
	got := es.Error()
	if !strings.HasPrefix(got, "MIN_LENGTH at $.name; MIN_VALUE at $.age; REQUIRED at $.email") {
		t.Fatalf("summary = %q", got)
	}
	if !strings.Contains(got, "(total 4)") {
		t.Fatalf("summary missing total: %q", got)
	}
}

func TestAsErrorsUnwraps(t *testing.T) {
	es := jod.Errors{jod.NewError(jod.CodeInvalidType, "bad", 1)}
	wrapped := fmt.Errorf("decode: %w", es)

	got, ok := jod.AsErrors(wrapped)
	if !ok || len(got) != 1 || got[0].Code != jod.CodeInvalidType {
		t.Fatalf("AsErrors = %v, %v", got, ok)
	}

	if _, ok := jod.AsErrors(fmt.Errorf("plain")); ok {
		t.Fatalf("plain error must not match")
	}
	if _, ok := jod.AsErrors(nil); ok {
		t.Fatalf("nil error must not match")
	}
}

func TestAppendErrorsInitializes(t *testing.T) {
	var es jod.Errors
	es = jod.AppendErrors(es, jod.NewError(jod.CodeCustom, "nope", "v"))
	if len(es) != 1 {
		t.Fatalf("len = %d", len(es))
	}
}
