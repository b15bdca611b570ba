package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chazu/panelgo/pkg/lang"
	"github.com/chazu/panelgo/pkg/panel"
	"github.com/chazu/panelgo/pkg/perr"
	"github.com/chazu/panelgo/pkg/render"
)

// readSource loads the panel description from path, or stdin when path
// is empty, matching spec.md §6's "-f FILE or stdin" CLI contract.
func readSource(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", exitError{code: exitIO, err: err}
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", exitError{code: exitIO, err: err}
	}
	return string(b), nil
}

// compile runs the full pipeline (parse, resolve, combine) over src and
// returns the rendered panel, or the first error the pipeline produced.
func compile(src string, hull bool) (*render.Rendered, error) {
	prog, err := lang.Parse(src)
	if err != nil {
		return nil, exitError{code: exitSemantic, err: err}
	}

	resolver := panel.NewResolver()
	features, err := resolver.Resolve(prog)
	if err != nil {
		return nil, exitError{code: exitSemantic, err: err}
	}

	combiner := panel.Combiner{ConvexHull: hull}
	rendered, err := combiner.Combine(features)
	if err != nil {
		if perr.Is(err, perr.CodeDisjointGeometry) {
			return nil, exitError{code: exitDisjoint, err: err}
		}
		return nil, exitError{code: exitSemantic, err: err}
	}
	return rendered, nil
}

// Exit codes per spec.md §6: 0 success; 1 parse/semantic error;
// 2 disjoint geometry; 3 I/O error.
const (
	exitOK       = 0
	exitSemantic = 1
	exitDisjoint = 2
	exitIO       = 3
)

// exitError pairs an underlying error with the exit code it should map
// to, so main can report the message and set os.Exit consistently
// across every subcommand.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) Unwrap() error { return e.err }

// exitCodeOf inspects err (an exitError if the pipeline produced it,
// any other error otherwise) and returns the code main should exit
// with.
func exitCodeOf(err error) int {
	if err == nil {
		return exitOK
	}
	if ee, ok := err.(exitError); ok {
		return ee.code
	}
	return exitIO
}

// diagnostic renders err with source context (line:col, when the
// underlying error carries a perr.Span) the way the CLI is asked to
// report the first error in spec.md §7.
func diagnostic(err error) string {
	pe, ok := errAsPanelError(err)
	if !ok {
		return errorStyle.Render(fmt.Sprintf("error: %s", err.Error()))
	}
	if loc := pe.Span.String(); loc != "" {
		return errorStyle.Render(fmt.Sprintf("error [%s] at %s: %s", pe.Code, loc, pe.Message))
	}
	return errorStyle.Render(fmt.Sprintf("error [%s]: %s", pe.Code, pe.Message))
}

func errAsPanelError(err error) (*perr.Error, bool) {
	for err != nil {
		if pe, ok := err.(*perr.Error); ok {
			return pe, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = u.Unwrap()
	}
	return nil, false
}
