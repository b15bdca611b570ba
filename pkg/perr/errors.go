// Package perr defines the user-visible error taxonomy produced by the
// lexer, parser, expression evaluator, feature resolver, and combiner.
// Every error carries enough context (a source span where one exists) for
// the CLI to print a useful diagnostic; none of the pipeline stages
// attempt to recover from or swallow one.
package perr

import "fmt"

// Span locates a point or range in the original source text.
type Span struct {
	Line, Col int
}

func (s Span) String() string {
	if s.Line == 0 {
		return ""
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Col)
}

// Code identifies which member of the taxonomy an error belongs to.
type Code string

const (
	CodeParse             Code = "PARSE"
	CodeUndefinedVariable Code = "UNDEFINED_VARIABLE"
	CodeBadType           Code = "BAD_TYPE"
	CodeEval              Code = "EVAL_ERROR"
	CodeGeometry          Code = "GEOMETRY_ERROR"
	CodeDisjointGeometry  Code = "DISJOINT_GEOMETRY"
)

// Error is the single concrete error type produced anywhere in the
// pipeline. Callers switch on Code rather than on type, mirroring the
// taxonomy's flat enumeration.
type Error struct {
	Code    Code
	Message string
	Span    Span
	Name    string // variable/binding name, when the code names one
}

func (e *Error) Error() string {
	loc := ""
	if s := e.Span.String(); s != "" {
		loc = fmt.Sprintf(" at %s", s)
	}
	return fmt.Sprintf("%s: %s%s", e.Code, e.Message, loc)
}

// Parse reports a lexical or grammatical failure.
func Parse(msg string, span Span) *Error {
	return &Error{Code: CodeParse, Message: msg, Span: span}
}

// UndefinedVariable reports a reference to an unbound $name or
// expression identifier.
func UndefinedVariable(name string, span Span) *Error {
	return &Error{
		Code:    CodeUndefinedVariable,
		Message: fmt.Sprintf("undefined variable %q", name),
		Span:    span,
		Name:    name,
	}
}

// BadType reports a kind mismatch between a binding and its use site
// (e.g. a numeric let used where a feature template is expected).
func BadType(name string, msg string, span Span) *Error {
	return &Error{
		Code:    CodeBadType,
		Message: msg,
		Span:    span,
		Name:    name,
	}
}

// EvalError reports an arithmetic evaluation failure: division by zero,
// a non-numeric result, or an unsupported operation.
func EvalError(msg string, span Span) *Error {
	return &Error{Code: CodeEval, Message: msg, Span: span}
}

// GeometryError reports a zero, negative or missing dimension, or a
// feature node the resolver cannot handle. An empty container is reported
// by the parser as a Parse error instead.
func GeometryError(msg string) *Error {
	return &Error{Code: CodeGeometry, Message: msg}
}

// DisjointGeometry reports that the combined edges did not resolve to a
// single connected region with convex-hull mode disabled.
func DisjointGeometry(componentCount int) *Error {
	return &Error{
		Code:    CodeDisjointGeometry,
		Message: fmt.Sprintf("combined outline has %d disjoint components, convex hull disabled", componentCount),
	}
}

// Is reports whether err is a *Error with the given code, for use with
// errors.Is-style call sites that only care about the taxonomy member.
func Is(err error, code Code) bool {
	pe, ok := err.(*Error)
	return ok && pe.Code == code
}
