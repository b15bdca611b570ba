package numexpr

import (
	"testing"

	"github.com/chazu/panelgo/pkg/perr"
)

func TestEvaluateLiteral(t *testing.T) {
	v, err := Evaluate("5", nil, perr.Span{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 {
		t.Fatalf("got %v, want 5", v)
	}
}

func TestEvaluateArithmeticPrecedence(t *testing.T) {
	v, err := Evaluate("2 + 3 * 4", nil, perr.Span{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 14 {
		t.Fatalf("got %v, want 14", v)
	}
}

func TestEvaluateParenthesization(t *testing.T) {
	v, err := Evaluate("(2 + 3) * 4", nil, perr.Span{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 20 {
		t.Fatalf("got %v, want 20", v)
	}
}

func TestEvaluateIdentifierBinding(t *testing.T) {
	v, err := Evaluate("a + b", map[string]float64{"a": 1.5, "b": 2.5}, perr.Span{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 4 {
		t.Fatalf("got %v, want 4", v)
	}
}

func TestEvaluateUndefinedVariable(t *testing.T) {
	_, err := Evaluate("a + 1", nil, perr.Span{})
	if !perr.Is(err, perr.CodeUndefinedVariable) {
		t.Fatalf("expected CodeUndefinedVariable, got %v", err)
	}
}

func TestEvaluateStaticDivideByZero(t *testing.T) {
	_, err := Evaluate("1 / 0", nil, perr.Span{})
	if !perr.Is(err, perr.CodeEval) {
		t.Fatalf("expected CodeEval, got %v", err)
	}
}

func TestEvaluateUnaryMinus(t *testing.T) {
	v, err := Evaluate("-5 + 2", nil, perr.Span{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -3 {
		t.Fatalf("got %v, want -3", v)
	}
}

func TestEvaluateParseError(t *testing.T) {
	_, err := Evaluate("2 +", nil, perr.Span{})
	if !perr.Is(err, perr.CodeParse) {
		t.Fatalf("expected CodeParse, got %v", err)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	env := map[string]float64{"x": 3, "y": 4}
	a, err1 := Evaluate("x * x + y * y", env, perr.Span{})
	b, err2 := Evaluate("x * x + y * y", env, perr.Span{})
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if a != b || a != 25 {
		t.Fatalf("expected deterministic 25, got %v and %v", a, b)
	}
}

func TestEvaluateHyphenatedIdentifier(t *testing.T) {
	v, err := Evaluate("pin-count * 2", map[string]float64{"pin-count": 4}, perr.Span{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 8 {
		t.Fatalf("got %v, want 8", v)
	}
}
