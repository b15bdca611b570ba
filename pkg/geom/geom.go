// Package geom provides the 2D point, bounding-box, and polygon types
// used to describe panel geometry, plus the boolean operations needed to
// combine features into a single outline.
//
// Ring/Polygon/MultiPolygon route through github.com/paulmach/orb's plain
// coordinate types so that callers can hand geometry to any orb-aware
// consumer without conversion; the boolean-operation algorithms in
// clip.go are this package's own.
package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// Point is an (x, y) coordinate. x increases right, y increases down,
// matching the panel language's coordinate convention.
type Point struct {
	X, Y float64
}

func (p Point) orb() orb.Point { return orb.Point{p.X, p.Y} }

func fromOrb(p orb.Point) Point { return Point{p[0], p[1]} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Rotate returns p rotated by degrees about the origin using the
// standard counter-clockwise rotation matrix. In the language's
// x-right/y-down convention a positive angle turns +x toward +y, which
// appears clockwise on screen.
func (p Point) Rotate(degrees float64) Point {
	r := degrees * math.Pi / 180
	c, s := math.Cos(r), math.Sin(r)
	return Point{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
	}
}

// BoundingBox is an axis-aligned box, min <= max on both axes.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBoundingBox returns a box that Union()s away to nothing;
// querying it directly (Width/Height) before a Union is an error case
// callers must guard against per spec §3's "querying an empty bbox".
var EmptyBoundingBox = BoundingBox{
	MinX: math.Inf(1), MinY: math.Inf(1),
	MaxX: math.Inf(-1), MaxY: math.Inf(-1),
}

// IsEmpty reports whether the box has never been extended by a point.
func (b BoundingBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Width returns max_x - min_x.
func (b BoundingBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns max_y - min_y.
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Point {
	return Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// ExpandPoint grows the box to include p.
func (b BoundingBox) ExpandPoint(p Point) BoundingBox {
	if b.IsEmpty() {
		return BoundingBox{p.X, p.Y, p.X, p.Y}
	}
	return BoundingBox{
		MinX: math.Min(b.MinX, p.X),
		MinY: math.Min(b.MinY, p.Y),
		MaxX: math.Max(b.MaxX, p.X),
		MaxY: math.Max(b.MaxY, p.Y),
	}
}

// Union returns the smallest box containing both b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return BoundingBox{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Translate shifts the box by (dx, dy).
func (b BoundingBox) Translate(dx, dy float64) BoundingBox {
	return BoundingBox{b.MinX + dx, b.MinY + dy, b.MaxX + dx, b.MaxY + dy}
}

// Overlaps reports whether b and o share any area or boundary.
func (b BoundingBox) Overlaps(o BoundingBox) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX && b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// BoxFromRing computes the exact bounding box of a ring's vertices.
func BoxFromRing(r Ring) BoundingBox {
	box := EmptyBoundingBox
	for _, p := range r {
		box = box.ExpandPoint(p)
	}
	return box
}

// BoxFromPolygon computes the bounding box of a polygon's exterior ring.
func BoxFromPolygon(p Polygon) BoundingBox {
	return BoxFromRing(p.Exterior)
}

// BoxFromMultiPolygon computes the bounding box across all polygons.
func BoxFromMultiPolygon(mp MultiPolygon) BoundingBox {
	box := EmptyBoundingBox
	for _, p := range mp {
		box = box.Union(BoxFromPolygon(p))
	}
	return box
}
