// Package panel walks a parsed program into concrete geometry: Resolver
// evaluates numeric expressions and substitutes feature bindings, and
// Combiner folds the resulting features' edge contributions into a single
// fabrication-ready outline. It mirrors the "walk the tree, accumulate,
// fold" shape of pkg/tessellate, generalized from a mesh walk to a
// feature-tree walk.
package panel

import (
	"fmt"

	"github.com/chazu/panelgo/pkg/feature"
	"github.com/chazu/panelgo/pkg/lang"
	"github.com/chazu/panelgo/pkg/numexpr"
	"github.com/chazu/panelgo/pkg/perr"
)

// Resolver holds the two binding environments a program accumulates as its
// statements run: numeric bindings (evaluated eagerly, per spec) and
// feature bindings (kept as unresolved templates, cloned and resolved
// afresh at every use site).
type Resolver struct {
	numberEnv  map[string]float64
	featureEnv map[string]feature.Feature
}

// NewResolver returns a Resolver with empty environments.
func NewResolver() *Resolver {
	return &Resolver{numberEnv: map[string]float64{}, featureEnv: map[string]feature.Feature{}}
}

// Resolve walks prog's statements in order, binding lets as it goes, and
// returns the concrete features produced by its bare feature_expr
// statements, in source order.
func (r *Resolver) Resolve(prog *lang.Program) ([]feature.Feature, error) {
	var out []feature.Feature
	for _, stmt := range prog.Statements {
		switch stmt.Kind {
		case lang.StmtLetNumber:
			v, err := r.resolveNumber(feature.Number{Expr: stmt.NumberExpr, Span: stmt.Span})
			if err != nil {
				return nil, err
			}
			r.numberEnv[stmt.Name] = v.Literal
		case lang.StmtLetFeature:
			// Feature bindings are lazy templates: store as-is, with any
			// Number.Expr/VarRef still unresolved, and resolve a fresh
			// clone every time a later $name substitutes it in.
			r.featureEnv[stmt.Name] = stmt.Feature
		case lang.StmtFeatureExpr:
			resolved, err := r.resolveFeature(stmt.Feature)
			if err != nil {
				return nil, err
			}
			out = append(out, resolved)
		}
	}
	return out, nil
}

func (r *Resolver) resolveFeature(f feature.Feature) (feature.Feature, error) {
	switch v := f.(type) {
	case feature.Rect:
		w, h, err := r.resolveDims(v.Width, v.Height)
		if err != nil {
			return nil, err
		}
		inner, err := r.resolveSpecs(v.Inner)
		if err != nil {
			return nil, err
		}
		return feature.Rect{Center: v.Center, Width: w, Height: h, Inner: inner}, nil

	case feature.Circle:
		radius, err := r.resolveNumber(v.Radius)
		if err != nil {
			return nil, err
		}
		if radius.Literal <= 0 {
			return nil, perr.GeometryError("Circle requires a positive radius")
		}
		inner, err := r.resolveSpecs(v.Inner)
		if err != nil {
			return nil, err
		}
		return feature.Circle{Center: v.Center, Radius: radius, Inner: inner}, nil

	case feature.Triangle:
		w, err := r.resolveNumber(v.Width)
		if err != nil {
			return nil, err
		}
		if w.Literal <= 0 {
			return nil, perr.GeometryError("Triangle requires a positive width")
		}
		h, err := r.resolveNumber(v.Height)
		if err != nil {
			return nil, err
		}
		if h.Literal == 0 {
			return nil, perr.GeometryError("Triangle requires a non-zero height")
		}
		inner, err := r.resolveSpecs(v.Inner)
		if err != nil {
			return nil, err
		}
		return feature.Triangle{Center: v.Center, Width: w, Height: h, Inner: inner}, nil

	case feature.MountCut:
		length, err := r.resolveNumber(v.Length)
		if err != nil {
			return nil, err
		}
		if length.Literal <= 0 {
			return nil, perr.GeometryError("MountCut requires a positive length")
		}
		return feature.MountCut{Length: length, Facing: v.Facing}, nil

	case feature.Array:
		child, err := r.resolveFeature(v.Child)
		if err != nil {
			return nil, err
		}
		count, err := r.resolveNumber(v.Count)
		if err != nil {
			return nil, err
		}
		return feature.Array{Child: child, Count: count, Direction: v.Direction, VScore: v.VScore}, nil

	case feature.Tuple:
		children, err := r.resolveAll(v.Children)
		if err != nil {
			return nil, err
		}
		return feature.Tuple{Children: children}, nil

	case feature.Column:
		children, err := r.resolveAll(v.Children)
		if err != nil {
			return nil, err
		}
		return feature.Column{Alignment: v.Alignment, Children: children}, nil

	case feature.Wrap:
		center, err := r.resolveFeature(v.Center)
		if err != nil {
			return nil, err
		}
		placements := make([]feature.Placement, len(v.Placements))
		for i, pl := range v.Placements {
			child, err := r.resolveFeature(pl.Child)
			if err != nil {
				return nil, err
			}
			offset, err := r.resolveNumber(pl.Offset)
			if err != nil {
				return nil, err
			}
			placements[i] = feature.Placement{Side: pl.Side, Offset: offset, Alignment: pl.Alignment, Child: child}
		}
		return feature.Wrap{Center: center, Placements: placements}, nil

	case feature.Negative:
		children, err := r.resolveAll(v.Children)
		if err != nil {
			return nil, err
		}
		return feature.Negative{Children: children}, nil

	case feature.Rotate:
		children, err := r.resolveAll(v.Children)
		if err != nil {
			return nil, err
		}
		degrees, err := r.resolveNumber(v.Degrees)
		if err != nil {
			return nil, err
		}
		return feature.Rotate{Degrees: degrees, Children: children}, nil

	case feature.VarRef:
		tmpl, ok := r.featureEnv[v.Name]
		if !ok {
			// pkg/lang already rejects an undeclared $name while parsing;
			// reaching this means the parser's own bookkeeping is wrong.
			panic(fmt.Sprintf("panel: resolver saw undeclared binding %q", v.Name))
		}
		return r.resolveFeature(feature.Clone(tmpl))

	default:
		return nil, perr.GeometryError(fmt.Sprintf("unresolvable feature node %T", f))
	}
}

func (r *Resolver) resolveAll(fs []feature.Feature) ([]feature.Feature, error) {
	out := make([]feature.Feature, len(fs))
	for i, f := range fs {
		resolved, err := r.resolveFeature(f)
		if err != nil {
			return nil, err
		}
		out[i] = resolved
	}
	return out, nil
}

func (r *Resolver) resolveSpecs(specs []feature.SurfaceSpec) ([]feature.SurfaceSpec, error) {
	out := make([]feature.SurfaceSpec, len(specs))
	for i, s := range specs {
		resolved := s
		if s.Diameter.Expr != "" {
			v, err := r.resolveNumber(s.Diameter)
			if err != nil {
				return nil, err
			}
			resolved.Diameter = v
		}
		if s.HasSize {
			w, err := r.resolveNumber(s.Width)
			if err != nil {
				return nil, err
			}
			h, err := r.resolveNumber(s.Height)
			if err != nil {
				return nil, err
			}
			resolved.Width, resolved.Height = w, h
		}
		out[i] = resolved
	}
	return out, nil
}

func (r *Resolver) resolveDims(width, height feature.Number) (feature.Number, feature.Number, error) {
	w, err := r.resolveNumber(width)
	if err != nil {
		return feature.Number{}, feature.Number{}, err
	}
	h, err := r.resolveNumber(height)
	if err != nil {
		return feature.Number{}, feature.Number{}, err
	}
	if w.Literal <= 0 || h.Literal <= 0 {
		return feature.Number{}, feature.Number{}, perr.GeometryError("Rect requires a positive width and height")
	}
	return w, h, nil
}

// resolveNumber evaluates n's !{ … } expression against the current
// numeric environment. If numexpr reports an identifier as unbound but
// that identifier actually names a feature binding, the mismatch is
// reported as BadType instead — pkg/numexpr has no notion of feature
// bindings, so only a caller holding both environments can tell the two
// apart.
func (r *Resolver) resolveNumber(n feature.Number) (feature.Number, error) {
	if n.IsResolved() {
		return n, nil
	}
	v, err := numexpr.Evaluate(n.Expr, r.numberEnv, n.Span)
	if err != nil {
		if pe, ok := err.(*perr.Error); ok && pe.Code == perr.CodeUndefinedVariable {
			if _, isFeature := r.featureEnv[pe.Name]; isFeature {
				return feature.Number{}, perr.BadType(pe.Name, fmt.Sprintf("%q is a feature binding, not a number", pe.Name), n.Span)
			}
		}
		return feature.Number{}, err
	}
	return feature.Lit(v), nil
}
