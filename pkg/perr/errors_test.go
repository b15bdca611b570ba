package perr

import "testing"

func TestErrorMessageIncludesSpan(t *testing.T) {
	err := Parse("unexpected token", Span{Line: 3, Col: 7})
	got := err.Error()
	want := "PARSE: unexpected token at 3:7"
	if got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestErrorMessageWithoutSpan(t *testing.T) {
	err := GeometryError("zero-width rectangle")
	got := err.Error()
	want := "GEOMETRY_ERROR: zero-width rectangle"
	if got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestUndefinedVariableCarriesName(t *testing.T) {
	err := UndefinedVariable("foo", Span{1, 1})
	if err.Name != "foo" {
		t.Fatalf("Name = %q, want foo", err.Name)
	}
	if !Is(err, CodeUndefinedVariable) {
		t.Fatal("Is() should match CodeUndefinedVariable")
	}
}

func TestDisjointGeometryCode(t *testing.T) {
	err := DisjointGeometry(3)
	if err.Code != CodeDisjointGeometry {
		t.Fatalf("Code = %v, want %v", err.Code, CodeDisjointGeometry)
	}
}

func TestIsFalseForOtherCodeAndNil(t *testing.T) {
	var err error = Parse("x", Span{})
	if Is(err, CodeEval) {
		t.Fatal("Is() should not match a different code")
	}
	plain := error(nil)
	if Is(plain, CodeParse) {
		t.Fatal("Is() should be false for a nil error")
	}
}
