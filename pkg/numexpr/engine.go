package numexpr

import (
	"fmt"
	"math"
	"strings"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/panelgo/pkg/perr"
)

// EvalTimeout guards against a pathological zygomys evaluation of a
// malformed translated expression. The grammar itself cannot express a
// loop, so this is defensive rather than load-bearing.
const EvalTimeout = 1 * time.Second

// Evaluate computes expr (the contents of a `!{ … }` block) against a
// snapshot of numeric bindings, returning a Scalar or a *perr.Error.
// Each call spawns a fresh zygomys sandbox so results stay
// deterministic and independent of any previous evaluation.
func Evaluate(expr string, bindings map[string]float64, span perr.Span) (float64, error) {
	ast, err := parse(expr)
	if err != nil {
		return 0, perr.Parse(err.Error(), span)
	}

	refs := map[string]bool{}
	identifiers(ast, refs)
	for name := range refs {
		if _, ok := bindings[name]; !ok {
			return 0, perr.UndefinedVariable(name, span)
		}
	}

	if staticDivideByZero(ast) {
		return 0, perr.EvalError("division by zero", span)
	}

	body, err := render(ast)
	if err != nil {
		return 0, perr.EvalError(err.Error(), span)
	}

	source := buildSource(bindings, refs, body)

	ch := make(chan evalOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalOutcome{err: fmt.Errorf("panic during expression evaluation: %v", r)}
			}
		}()
		v, err := runSandboxed(source)
		ch <- evalOutcome{value: v, err: err}
	}()

	select {
	case out := <-ch:
		if out.err != nil {
			return 0, perr.EvalError(out.err.Error(), span)
		}
		if math.IsNaN(out.value) || math.IsInf(out.value, 0) {
			return 0, perr.EvalError("expression did not evaluate to a finite number", span)
		}
		return out.value, nil
	case <-time.After(EvalTimeout):
		return 0, perr.EvalError("expression evaluation timed out", span)
	}
}

type evalOutcome struct {
	value float64
	err   error
}

// buildSource emits one `(def name value)` form per referenced binding
// followed by the translated expression body, so the sandbox only ever
// sees the bindings the expression actually uses.
func buildSource(bindings map[string]float64, refs map[string]bool, body string) string {
	var b strings.Builder
	for name := range refs {
		fmt.Fprintf(&b, "(def %s %s)\n", sanitizeIdent(name), formatFloat(bindings[name]))
	}
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}

// runSandboxed loads and runs source in a fresh sandbox, returning the
// final expression's value as a float64.
func runSandboxed(source string) (float64, error) {
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	if err := env.LoadString(source); err != nil {
		return 0, err
	}
	res, err := env.Run()
	if err != nil {
		return 0, err
	}
	return sexpToFloat(res)
}

func sexpToFloat(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpFloat:
		return v.Val, nil
	case *zygo.SexpInt:
		return float64(v.Val), nil
	default:
		return 0, fmt.Errorf("expression did not evaluate to a number, got %T", s)
	}
}
