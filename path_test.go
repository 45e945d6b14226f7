package jod_test

import (
	"testing"

	jod "github.com/M1tsumi/Jod"
)

func TestAtFieldRewritesRootRelativePath(t *testing.T) {
	e := jod.NewError(jod.CodeMinValue, "too small", 16)
	if got := e.AtField("age").Path; got != "$.age" {
		t.Fatalf("AtField path = %q; want %q", got, "$.age")
	}
	// The original error is untouched.
	if e.Path != "$" {
		t.Fatalf("origin mutated: %q", e.Path)
	}
}

func TestNestingInsertsAfterRoot(t *testing.T) {
	e := jod.NewError(jod.CodeMinValue, "too small", 16).AtField("age")
	// A failure at "$.age" nested under list index 0 reports "$.[0].age",
	// never "$.age.[0]".
	if got := e.AtIndex(0).Path; got != "$.[0].age" {
		t.Fatalf("AtIndex path = %q; want %q", got, "$.[0].age")
	}

	deep := jod.NewError(jod.CodeRequired, "required", nil).
		AtField("sku").AtIndex(2).AtField("items")
	if deep.Path != "$.items.[2].sku" {
		t.Fatalf("deep path = %q; want %q", deep.Path, "$.items.[2].sku")
	}
}

func TestPathBuilder(t *testing.T) {
	if got := jod.Root().String(); got != "$" {
		t.Fatalf("Root() = %q", got)
	}
	p := jod.Root().Field("items").Index(0).Field("sku")
	if got := p.String(); got != "$.items.[0].sku" {
		t.Fatalf("chained path = %q", got)
	}

	e := p.Error(jod.CodePattern, "no match", "x!", "pattern", "^[a-z]+$")
	if e.Path != "$.items.[0].sku" || e.Params["pattern"] != "^[a-z]+$" {
		t.Fatalf("Path.Error = %+v", e)
	}
}
