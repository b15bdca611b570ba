package feature

import "github.com/chazu/panelgo/pkg/geom"

// Negative unions its children's additive contributions and reports the
// result as subtractive instead. It has no surfaces of its own — a
// cut-out carries no drills or legends, only the hole it leaves behind.
type Negative struct {
	Children []Feature
}

func (Negative) isFeature() {}

func (n Negative) childUnion() EdgeContribution {
	var additive, subtractive geom.MultiPolygon
	for _, c := range n.Children {
		e := c.Edge()
		additive = append(additive, e.Additive...)
		subtractive = append(subtractive, e.Subtractive...)
	}
	return EdgeContribution{Additive: geom.Union(additive), Subtractive: geom.Union(subtractive)}
}

func (n Negative) Edge() EdgeContribution {
	return n.childUnion().Swap()
}

func (n Negative) Surfaces() []SurfaceFeature { return nil }

func (n Negative) BBox() geom.BoundingBox {
	box := geom.EmptyBoundingBox
	for _, c := range n.Children {
		box = box.Union(c.BBox())
	}
	return box
}

// Rotate turns its children's edge geometry by Degrees about the origin.
// Surface-feature positions are deliberately left untouched — a
// documented limitation, not a bug, per the grammar's rotate node.
type Rotate struct {
	Degrees  Number
	Children []Feature
}

func (Rotate) isFeature() {}

func (r Rotate) degrees() float64 {
	if !r.Degrees.IsResolved() {
		notResolved("Rotate.Edge")
	}
	return r.Degrees.Literal
}

func (r Rotate) childUnion() EdgeContribution {
	var additive, subtractive geom.MultiPolygon
	for _, c := range r.Children {
		e := c.Edge()
		additive = append(additive, e.Additive...)
		subtractive = append(subtractive, e.Subtractive...)
	}
	return EdgeContribution{Additive: geom.Union(additive), Subtractive: geom.Union(subtractive)}
}

func (r Rotate) Edge() EdgeContribution {
	deg := r.degrees()
	e := r.childUnion()
	return EdgeContribution{
		Additive:    rotateMultiPolygon(e.Additive, deg),
		Subtractive: rotateMultiPolygon(e.Subtractive, deg),
	}
}

func rotateMultiPolygon(mp geom.MultiPolygon, degrees float64) geom.MultiPolygon {
	out := make(geom.MultiPolygon, len(mp))
	for i, p := range mp {
		holes := make([]geom.Ring, len(p.Holes))
		for j, h := range p.Holes {
			holes[j] = h.RotateAboutOrigin(degrees)
		}
		out[i] = geom.Polygon{Exterior: p.Exterior.RotateAboutOrigin(degrees), Holes: holes}
	}
	return out
}

// Surfaces deliberately returns the children's surfaces in their
// original, unrotated positions (§4.5 of the rotate limitation).
func (r Rotate) Surfaces() []SurfaceFeature {
	var out []SurfaceFeature
	for _, c := range r.Children {
		out = append(out, c.Surfaces()...)
	}
	return out
}

func (r Rotate) BBox() geom.BoundingBox {
	return geom.BoxFromMultiPolygon(r.Edge().Additive)
}

// VarRef is a reference to a feature binding, substituted by a deep
// clone of the bound template at evaluation time. It must be resolved
// away before Edge/Surfaces/BBox are called on the surrounding tree;
// pkg/panel's resolver is the only code that is allowed to observe one.
type VarRef struct {
	Name string
}

func (VarRef) isFeature() {}

func (VarRef) Edge() EdgeContribution { notResolved("VarRef.Edge"); return EdgeContribution{} }
func (VarRef) Surfaces() []SurfaceFeature { notResolved("VarRef.Surfaces"); return nil }
func (VarRef) BBox() geom.BoundingBox { notResolved("VarRef.BBox"); return geom.BoundingBox{} }
