package feature

import (
	"github.com/chazu/panelgo/pkg/geom"
)

// Array places Count copies of Child along Direction at a pitch equal to
// the child's bounding-box extent on that axis, starting with the first
// copy centered at the origin.
type Array struct {
	Child     Feature
	Count     Number
	Direction Direction
	VScore    bool
}

func (Array) isFeature() {}

func (a Array) count() int {
	if !a.Count.IsResolved() {
		notResolved("Array.Edge")
	}
	n := int(a.Count.Literal + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}

// offset returns the per-copy translation for copy index i, given the
// child's own bounding box.
func (a Array) offset(i int, box geom.BoundingBox) (float64, float64) {
	switch a.Direction {
	case Right:
		return float64(i) * box.Width(), 0
	case Left:
		return -float64(i) * box.Width(), 0
	case Down:
		return 0, float64(i) * box.Height()
	case Up:
		return 0, -float64(i) * box.Height()
	default:
		return float64(i) * box.Width(), 0
	}
}

func (a Array) Edge() EdgeContribution {
	n := a.count()
	box := a.Child.BBox()
	var additive, subtractive geom.MultiPolygon
	for i := 0; i < n; i++ {
		dx, dy := a.offset(i, box)
		c := a.Child.Edge().Translate(dx, dy)
		additive = append(additive, c.Additive...)
		subtractive = append(subtractive, c.Subtractive...)
	}
	return EdgeContribution{
		Additive:    geom.Union(additive),
		Subtractive: geom.Union(subtractive),
	}
}

func (a Array) Surfaces() []SurfaceFeature {
	n := a.count()
	box := a.Child.BBox()
	var out []SurfaceFeature
	for i := 0; i < n; i++ {
		dx, dy := a.offset(i, box)
		for _, s := range a.Child.Surfaces() {
			out = append(out, translateSurface(s, dx, dy))
		}
	}
	if a.VScore {
		out = append(out, a.vscoreSegments(n, box)...)
	}
	return out
}

// vscoreSegments reports one FabricationInstructions NamedAnnotation per
// inter-child boundary, placed at the shared edge between consecutive
// copies and spanning the child's perpendicular extent.
func (a Array) vscoreSegments(n int, box geom.BoundingBox) []SurfaceFeature {
	var out []SurfaceFeature
	for i := 0; i < n-1; i++ {
		dx, dy := a.offset(i, box)
		var bounds geom.BoundingBox
		switch a.Direction {
		case Left, Right:
			x := box.Translate(dx, dy).MaxX
			if a.Direction == Left {
				x = box.Translate(dx, dy).MinX
			}
			bounds = geom.BoundingBox{MinX: x, MaxX: x, MinY: box.MinY + dy, MaxY: box.MaxY + dy}
		default:
			y := box.Translate(dx, dy).MaxY
			if a.Direction == Up {
				y = box.Translate(dx, dy).MinY
			}
			bounds = geom.BoundingBox{MinX: box.MinX + dx, MaxX: box.MaxX + dx, MinY: y, MaxY: y}
		}
		out = append(out, NamedAnnotation{Name: "v-score", Bounds: bounds})
	}
	return out
}

func (a Array) BBox() geom.BoundingBox {
	n := a.count()
	box := a.Child.BBox()
	result := geom.EmptyBoundingBox
	for i := 0; i < n; i++ {
		dx, dy := a.offset(i, box)
		result = result.Union(box.Translate(dx, dy))
	}
	return result
}

// Tuple lays children out left-to-right with adjacent edges touching.
// Children are not moved vertically: each keeps its own y position, so
// only children whose bounding boxes are centered on y = 0 (as
// primitives are by default) end up centered on that axis.
type Tuple struct {
	Children []Feature
}

func (Tuple) isFeature() {}

// layoutX returns each child's x-translation (left edges touching,
// running left to right) and the combined bbox.
func (t Tuple) layoutX() ([]float64, geom.BoundingBox) {
	offsets := make([]float64, len(t.Children))
	x := 0.0
	combined := geom.EmptyBoundingBox
	for i, c := range t.Children {
		box := c.BBox()
		offsets[i] = x - box.MinX
		combined = combined.Union(box.Translate(offsets[i], 0))
		x += box.Width()
	}
	return offsets, combined
}

func (t Tuple) Edge() EdgeContribution {
	offsets, _ := t.layoutX()
	var additive, subtractive geom.MultiPolygon
	for i, c := range t.Children {
		e := c.Edge().Translate(offsets[i], 0)
		additive = append(additive, e.Additive...)
		subtractive = append(subtractive, e.Subtractive...)
	}
	return EdgeContribution{Additive: geom.Union(additive), Subtractive: geom.Union(subtractive)}
}

func (t Tuple) Surfaces() []SurfaceFeature {
	offsets, _ := t.layoutX()
	var out []SurfaceFeature
	for i, c := range t.Children {
		for _, s := range c.Surfaces() {
			out = append(out, translateSurface(s, offsets[i], 0))
		}
	}
	return out
}

func (t Tuple) BBox() geom.BoundingBox {
	_, box := t.layoutX()
	return box
}

// ColumnAlign controls how narrower children line up within a Column's
// shared width.
type ColumnAlign int

const (
	ColumnLeft ColumnAlign = iota
	ColumnCenter
	ColumnRight
)

// Column lays children out top-to-bottom with adjacent edges touching,
// aligned per Alignment within the widest child's extent.
type Column struct {
	Alignment ColumnAlign
	Children  []Feature
}

func (Column) isFeature() {}

func (col Column) layoutY() ([]geom.Point, geom.BoundingBox) {
	boxes := make([]geom.BoundingBox, len(col.Children))
	maxWidth := 0.0
	for i, c := range col.Children {
		boxes[i] = c.BBox()
		if w := boxes[i].Width(); w > maxWidth {
			maxWidth = w
		}
	}
	offsets := make([]geom.Point, len(col.Children))
	y := 0.0
	combined := geom.EmptyBoundingBox
	for i, box := range boxes {
		dy := y - box.MinY
		var dx float64
		switch col.Alignment {
		case ColumnLeft:
			dx = -box.MinX
		case ColumnRight:
			dx = maxWidth - box.Width() - box.MinX
		default:
			dx = (maxWidth-box.Width())/2 - box.MinX
		}
		offsets[i] = geom.Point{X: dx, Y: dy}
		combined = combined.Union(box.Translate(dx, dy))
		y += box.Height()
	}
	return offsets, combined
}

func (col Column) Edge() EdgeContribution {
	offsets, _ := col.layoutY()
	var additive, subtractive geom.MultiPolygon
	for i, c := range col.Children {
		e := c.Edge().Translate(offsets[i].X, offsets[i].Y)
		additive = append(additive, e.Additive...)
		subtractive = append(subtractive, e.Subtractive...)
	}
	return EdgeContribution{Additive: geom.Union(additive), Subtractive: geom.Union(subtractive)}
}

func (col Column) Surfaces() []SurfaceFeature {
	offsets, _ := col.layoutY()
	var out []SurfaceFeature
	for i, c := range col.Children {
		for _, s := range c.Surfaces() {
			out = append(out, translateSurface(s, offsets[i].X, offsets[i].Y))
		}
	}
	return out
}

func (col Column) BBox() geom.BoundingBox {
	_, box := col.layoutY()
	return box
}

// translateSurface returns s shifted by (dx, dy), preserving its
// concrete variant.
func translateSurface(s SurfaceFeature, dx, dy float64) SurfaceFeature {
	switch v := s.(type) {
	case DrillHit:
		v.Center = v.Center.Add(geom.Point{X: dx, Y: dy})
		return v
	case SolderPad:
		v.Center = v.Center.Add(geom.Point{X: dx, Y: dy})
		return v
	case Legend:
		v.Center = v.Center.Add(geom.Point{X: dx, Y: dy})
		v.Polygons = v.Polygons.Translate(dx, dy)
		return v
	case NamedAnnotation:
		v.Bounds = v.Bounds.Translate(dx, dy)
		return v
	default:
		return s
	}
}
