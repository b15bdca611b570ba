package feature

import "github.com/chazu/panelgo/pkg/geom"

// Rect is an axis-aligned rectangle centered at Center.
type Rect struct {
	Center       geom.Point
	Width, Height Number
	Inner        []SurfaceSpec
}

func (Rect) isFeature() {}

func (r Rect) rect() geom.Ring {
	if !r.Width.IsResolved() || !r.Height.IsResolved() {
		notResolved("Rect.Edge")
	}
	hw, hh := r.Width.Literal/2, r.Height.Literal/2
	c := r.Center
	return geom.Ring{
		{X: c.X - hw, Y: c.Y - hh},
		{X: c.X + hw, Y: c.Y - hh},
		{X: c.X + hw, Y: c.Y + hh},
		{X: c.X - hw, Y: c.Y + hh},
	}
}

func (r Rect) Edge() EdgeContribution {
	return EdgeContribution{Additive: geom.SingleRing(r.rect())}
}

func (r Rect) Surfaces() []SurfaceFeature {
	out := make([]SurfaceFeature, len(r.Inner))
	for i, s := range r.Inner {
		out[i] = s.Resolve(r.Center)
	}
	return out
}

func (r Rect) BBox() geom.BoundingBox { return geom.BoxFromRing(r.rect()) }

// Circle is centered at Center with the given Radius.
type Circle struct {
	Center geom.Point
	Radius Number
	Inner  []SurfaceSpec
}

func (Circle) isFeature() {}

func (c Circle) ring() geom.Ring {
	if !c.Radius.IsResolved() {
		notResolved("Circle.Edge")
	}
	return circleRing(c.Center, c.Radius.Literal, CircleSegments(c.Radius.Literal))
}

func (c Circle) Edge() EdgeContribution {
	return EdgeContribution{Additive: geom.SingleRing(c.ring())}
}

func (c Circle) Surfaces() []SurfaceFeature {
	out := make([]SurfaceFeature, len(c.Inner))
	for i, s := range c.Inner {
		out[i] = s.Resolve(c.Center)
	}
	return out
}

func (c Circle) BBox() geom.BoundingBox { return geom.BoxFromRing(c.ring()) }

// Triangle is centered at Center; Height is signed — a negative Height
// points the apex down instead of up.
type Triangle struct {
	Center        geom.Point
	Width, Height Number
	Inner         []SurfaceSpec
}

func (Triangle) isFeature() {}

func (tr Triangle) ring() geom.Ring {
	if !tr.Width.IsResolved() || !tr.Height.IsResolved() {
		notResolved("Triangle.Edge")
	}
	w, h := tr.Width.Literal, tr.Height.Literal
	c := tr.Center
	halfW := w / 2
	// Apex and base sit symmetrically about Center so BBox() stays
	// centered on it regardless of sign; a negative Height puts the apex
	// below the base instead of above.
	apexY := c.Y - h/2
	baseY := c.Y + h/2
	return geom.Ring{
		{X: c.X - halfW, Y: baseY},
		{X: c.X + halfW, Y: baseY},
		{X: c.X, Y: apexY},
	}
}

func (tr Triangle) Edge() EdgeContribution {
	return EdgeContribution{Additive: geom.SingleRing(tr.ring())}
}

func (tr Triangle) Surfaces() []SurfaceFeature {
	out := make([]SurfaceFeature, len(tr.Inner))
	for i, s := range tr.Inner {
		out[i] = s.Resolve(tr.Center)
	}
	return out
}

func (tr Triangle) BBox() geom.BoundingBox { return geom.BoxFromRing(tr.ring()) }

// MountCut is a fixed-shape cut-out sized for an M3 fastener seated at a
// right angle, facing one of the four cardinal directions.
type MountCut struct {
	Length Number
	Facing Direction
}

func (MountCut) isFeature() {}

// mountCutWidth is the fixed cross dimension of the M3 clearance slot.
const mountCutWidth = 3.4

func (m MountCut) ring() geom.Ring {
	if !m.Length.IsResolved() {
		notResolved("MountCut.Edge")
	}
	l, w := m.Length.Literal, mountCutWidth
	var rect geom.Ring
	switch m.Facing {
	case Up, Down:
		rect = geom.Ring{{X: -w / 2, Y: -l / 2}, {X: w / 2, Y: -l / 2}, {X: w / 2, Y: l / 2}, {X: -w / 2, Y: l / 2}}
	default:
		rect = geom.Ring{{X: -l / 2, Y: -w / 2}, {X: l / 2, Y: -w / 2}, {X: l / 2, Y: w / 2}, {X: -l / 2, Y: w / 2}}
	}
	return rect
}

func (m MountCut) Edge() EdgeContribution {
	return EdgeContribution{Additive: geom.SingleRing(m.ring())}
}

func (m MountCut) Surfaces() []SurfaceFeature { return nil }

func (m MountCut) BBox() geom.BoundingBox { return geom.BoxFromRing(m.ring()) }
