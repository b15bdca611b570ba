// Package feature defines the polymorphic feature tree: primitive shapes,
// composite positioners, and the modifiers that combine them. It uses a
// tagged-variant pattern (an interface with an unexported marker method
// restricting implementors to this package) rather than a class hierarchy.
//
// A Feature value may be a template (containing unresolved Numbers or
// VarRef nodes) while it lives in a feature binding, or concrete (every
// Number resolved, every VarRef substituted) once pkg/panel's resolver has
// walked it. Edge, Surfaces, and BBox assume a concrete tree; calling them
// on a template is a programmer error, not a user-facing one, so they
// panic rather than return an error.
package feature

import (
	"fmt"

	"github.com/chazu/panelgo/pkg/geom"
	"github.com/chazu/panelgo/pkg/perr"
)

// Number is either an already-known Scalar or a `!{ … }` expression that
// must be evaluated against the numeric environment before use.
type Number struct {
	Literal float64
	Expr    string
	Span    perr.Span
}

// Lit wraps a plain Scalar as an already-resolved Number.
func Lit(v float64) Number { return Number{Literal: v} }

// IsResolved reports whether n needs no further evaluation.
func (n Number) IsResolved() bool { return n.Expr == "" }

// Direction is used by Array and MountCut. Wrap's top/bottom/left/right
// vocabulary is the separate SideKind type.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Layer tags a surface feature with the fabrication layer it belongs to.
type Layer int

const (
	FrontCopper Layer = iota
	FrontMask
	FrontLegend
	BackCopper
	BackMask
	BackLegend
	FabricationInstructions
	Drill
)

func (l Layer) String() string {
	switch l {
	case FrontCopper:
		return "front-copper"
	case FrontMask:
		return "front-mask"
	case FrontLegend:
		return "front-legend"
	case BackCopper:
		return "back-copper"
	case BackMask:
		return "back-mask"
	case BackLegend:
		return "back-legend"
	case FabricationInstructions:
		return "fabrication-instructions"
	case Drill:
		return "drill"
	default:
		return "unknown"
	}
}

// EdgeContribution splits a feature's contribution to the panel outline
// into additive and subtractive parts. Plain features report only
// Additive; Negative reports the same geometry as Subtractive instead.
// Composite positioners fold their children's contributions into this
// same shape, which is what makes `Negative { Negative { X } }` collapse
// back to X's own contribution without any special-casing at the trace
// site: double-swap is its own inverse.
type EdgeContribution struct {
	Additive    geom.MultiPolygon
	Subtractive geom.MultiPolygon
}

// Swap exchanges additive and subtractive, the operation Negative applies
// to a child's contribution.
func (e EdgeContribution) Swap() EdgeContribution {
	return EdgeContribution{Additive: e.Subtractive, Subtractive: e.Additive}
}

// Translate shifts both halves of the contribution by (dx, dy).
func (e EdgeContribution) Translate(dx, dy float64) EdgeContribution {
	return EdgeContribution{
		Additive:    e.Additive.Translate(dx, dy),
		Subtractive: e.Subtractive.Translate(dx, dy),
	}
}

// Feature is the shared interface every tree node implements: the
// contribution to the outline, the surface features it places in
// absolute coordinates, and its bounding box.
type Feature interface {
	Edge() EdgeContribution
	Surfaces() []SurfaceFeature
	BBox() geom.BoundingBox
	isFeature()
}

func notResolved(kind string) {
	panic(fmt.Sprintf("feature.%s: called before resolution (unresolved Number or VarRef in tree)", kind))
}
