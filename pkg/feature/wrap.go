package feature

import (
	"math"

	"github.com/chazu/panelgo/pkg/geom"
)

// SideKind enumerates the anchor vocabulary a Placement can use. The
// min-*/max-* family aligns the child's opposite-axis extreme to the
// center's corresponding extreme instead of centering it — e.g. MinLeft
// places the child to the left of center, with the child's top pinned
// to center's top.
type SideKind int

const (
	SideTop SideKind = iota
	SideBottom
	SideLeft
	SideRight
	SideMinTop
	SideMaxTop
	SideMinBottom
	SideMaxBottom
	SideMinLeft
	SideMaxLeft
	SideMinRight
	SideMaxRight
	SideCenter
	SideAngle
)

// Side identifies where around the center feature a placement anchors;
// AngleDegrees is only meaningful when Kind is SideAngle.
type Side struct {
	Kind         SideKind
	AngleDegrees float64
}

// PlacementAlign controls how far a child sits relative to the anchor
// edge: Overlap (default) centers the child exactly on the edge so it
// straddles the boundary; Exterior keeps the child entirely outside,
// flush against the edge; Interior keeps it entirely inside, flush
// against the edge from within.
type PlacementAlign int

const (
	Overlap PlacementAlign = iota
	Interior
	Exterior
)

// Placement is one entry of a Wrap's placement list.
type Placement struct {
	Side      Side
	Offset    Number
	Alignment PlacementAlign
	Child     Feature
}

// Wrap anchors Placements around a Center feature.
type Wrap struct {
	Center     Feature
	Placements []Placement
}

func (Wrap) isFeature() {}

type perpKind int

const (
	perpCenter perpKind = iota
	perpMin
	perpMax
)

type sideAxis struct {
	horizontal bool // true: anchor axis is x (left/right); false: anchor axis is y (top/bottom)
	toward     int  // -1 anchors at the min edge, +1 at the max edge
	perp       perpKind
}

func axisFor(k SideKind) (sideAxis, bool) {
	switch k {
	case SideTop:
		return sideAxis{false, -1, perpCenter}, true
	case SideBottom:
		return sideAxis{false, 1, perpCenter}, true
	case SideLeft:
		return sideAxis{true, -1, perpCenter}, true
	case SideRight:
		return sideAxis{true, 1, perpCenter}, true
	case SideMinTop:
		return sideAxis{false, -1, perpMin}, true
	case SideMaxTop:
		return sideAxis{false, -1, perpMax}, true
	case SideMinBottom:
		return sideAxis{false, 1, perpMin}, true
	case SideMaxBottom:
		return sideAxis{false, 1, perpMax}, true
	case SideMinLeft:
		return sideAxis{true, -1, perpMin}, true
	case SideMaxLeft:
		return sideAxis{true, -1, perpMax}, true
	case SideMinRight:
		return sideAxis{true, 1, perpMin}, true
	case SideMaxRight:
		return sideAxis{true, 1, perpMax}, true
	default:
		return sideAxis{}, false
	}
}

// anchorCenter computes the absolute point a placement's child should be
// centered at, given the resolved center bbox and the child's own bbox.
func anchorCenter(center, child geom.BoundingBox, p Placement) geom.Point {
	offset := 0.0
	if p.Offset.IsResolved() {
		offset = p.Offset.Literal
	}

	if p.Side.Kind == SideCenter {
		return center.Center()
	}
	if p.Side.Kind == SideAngle {
		return anchorAngle(center, child, p.Side.AngleDegrees, offset, p.Alignment)
	}

	axis, ok := axisFor(p.Side.Kind)
	if !ok {
		return center.Center()
	}

	if axis.horizontal {
		along0 := center.MinX
		if axis.toward > 0 {
			along0 = center.MaxX
		}
		half := child.Width() / 2
		shift := alignShift(p.Alignment, half)
		x := along0 + float64(axis.toward)*(shift+offset)
		y := perpCoord(axis.perp, center.MinY, center.MaxY, center.Center().Y, child.Height())
		return geom.Point{X: x, Y: y}
	}

	along0 := center.MinY
	if axis.toward > 0 {
		along0 = center.MaxY
	}
	half := child.Height() / 2
	shift := alignShift(p.Alignment, half)
	y := along0 + float64(axis.toward)*(shift+offset)
	x := perpCoord(axis.perp, center.MinX, center.MaxX, center.Center().X, child.Width())
	return geom.Point{X: x, Y: y}
}

func alignShift(align PlacementAlign, half float64) float64 {
	switch align {
	case Exterior:
		return half
	case Interior:
		return -half
	default:
		return 0
	}
}

func perpCoord(kind perpKind, min, max, center, childExtent float64) float64 {
	switch kind {
	case perpMin:
		return min + childExtent/2
	case perpMax:
		return max - childExtent/2
	default:
		return center
	}
}

// anchorAngle places the child along a ray from center's centroid at
// angleDegrees, using ray-to-box-edge distances for both center and
// child so Overlap straddles the boundary and Interior/Exterior behave
// the same way the axis-aligned sides do.
func anchorAngle(center, child geom.BoundingBox, angleDegrees, offset float64, align PlacementAlign) geom.Point {
	theta := angleDegrees * math.Pi / 180
	dx, dy := math.Cos(theta), math.Sin(theta)
	centerDist := rayToBoxEdge(center.Width()/2, center.Height()/2, dx, dy)
	childDist := rayToBoxEdge(child.Width()/2, child.Height()/2, dx, dy)
	dist := centerDist + alignShift(align, childDist) + offset
	c := center.Center()
	return geom.Point{X: c.X + dist*dx, Y: c.Y + dist*dy}
}

// rayToBoxEdge returns the distance from the origin to the edge of an
// axis-aligned box with half-extents (hw, hh) along direction (dx, dy).
func rayToBoxEdge(hw, hh, dx, dy float64) float64 {
	const big = 1e12
	tx, ty := big, big
	if math.Abs(dx) > 1e-12 {
		tx = hw / math.Abs(dx)
	}
	if math.Abs(dy) > 1e-12 {
		ty = hh / math.Abs(dy)
	}
	if tx < ty {
		return tx
	}
	return ty
}

func (w Wrap) placedDeltas() []geom.Point {
	centerBox := w.Center.BBox()
	deltas := make([]geom.Point, len(w.Placements))
	for i, p := range w.Placements {
		childBox := p.Child.BBox()
		target := anchorCenter(centerBox, childBox, p)
		deltas[i] = target.Sub(childBox.Center())
	}
	return deltas
}

func (w Wrap) Edge() EdgeContribution {
	result := w.Center.Edge()
	deltas := w.placedDeltas()
	for i, p := range w.Placements {
		e := p.Child.Edge().Translate(deltas[i].X, deltas[i].Y)
		result.Additive = append(result.Additive, e.Additive...)
		result.Subtractive = append(result.Subtractive, e.Subtractive...)
	}
	return EdgeContribution{
		Additive:    geom.Union(result.Additive),
		Subtractive: geom.Union(result.Subtractive),
	}
}

func (w Wrap) Surfaces() []SurfaceFeature {
	out := append([]SurfaceFeature{}, w.Center.Surfaces()...)
	deltas := w.placedDeltas()
	for i, p := range w.Placements {
		for _, s := range p.Child.Surfaces() {
			out = append(out, translateSurface(s, deltas[i].X, deltas[i].Y))
		}
	}
	return out
}

func (w Wrap) BBox() geom.BoundingBox {
	box := w.Center.BBox()
	deltas := w.placedDeltas()
	for i, p := range w.Placements {
		box = box.Union(p.Child.BBox().Translate(deltas[i].X, deltas[i].Y))
	}
	return box
}
