package feature

import "github.com/chazu/panelgo/pkg/geom"

// SurfaceFeature is a resolved, absolute-coordinate annotation placed on
// top of the panel outline: a drill hit, a solder pad, rasterized legend
// art, or a named bookkeeping entry for tooling.
type SurfaceFeature interface {
	Layer() Layer
	isSurfaceFeature()
}

// DrillHit is a plated or unplated through-hole.
type DrillHit struct {
	Center   geom.Point
	Diameter float64
}

func (DrillHit) Layer() Layer        { return Drill }
func (DrillHit) isSurfaceFeature()   {}

// DefaultDrillDiameter is used by "h" when no diameter is given.
const DefaultDrillDiameter = 3.0

// SolderPad is a rectangular pad with a centered via, produced by "msp"
// (mechanical solder point).
type SolderPad struct {
	Center geom.Point
	Width  float64
	Height float64
}

func (SolderPad) Layer() Layer      { return FrontCopper }
func (SolderPad) isSurfaceFeature() {}

// DefaultSolderPadSize is used by "msp" when no explicit size is given.
const DefaultSolderPadSize = 2.0

// Legend is rasterized artwork such as "smiley", tagged to a silkscreen
// layer.
type Legend struct {
	Center   geom.Point
	Polygons geom.MultiPolygon
	LayerTag Layer
}

func (l Legend) Layer() Layer      { return l.LayerTag }
func (Legend) isSurfaceFeature()   {}

// NamedAnnotation reports a user-visible name and extent for tooling; it
// contributes nothing to any fabrication layer.
type NamedAnnotation struct {
	Name   string
	Bounds geom.BoundingBox
}

func (NamedAnnotation) Layer() Layer      { return FabricationInstructions }
func (NamedAnnotation) isSurfaceFeature() {}

// SurfaceSpecKind identifies which inner-surface grammar production a
// SurfaceSpec came from: h or hDIAMETER (SpecHole), msp, smiley, or a
// legend text literal.
type SurfaceSpecKind int

const (
	SpecHole SurfaceSpecKind = iota
	SpecSolderPoint
	SpecSmiley
	SpecLegendText
)

// SurfaceSpec is the unresolved, grammar-level description of an inner
// surface annotation attached to a Rect/Circle/Triangle. Resolve() turns
// it into an absolute SurfaceFeature once the parent's center is known.
type SurfaceSpec struct {
	Kind     SurfaceSpecKind
	Diameter Number // SpecHole
	HasSize  bool   // SpecSolderPoint
	Width    Number // SpecSolderPoint, when HasSize
	Height   Number // SpecSolderPoint, when HasSize
	Text     string // SpecLegendText
}

// Resolve turns a concrete (already-numerically-resolved) SurfaceSpec into
// the SurfaceFeature it describes, placed at center — the parent
// feature's own center, since the grammar gives these specs no
// positional offset of their own.
func (s SurfaceSpec) Resolve(center geom.Point) SurfaceFeature {
	switch s.Kind {
	case SpecHole:
		dia := DefaultDrillDiameter
		if s.Diameter.IsResolved() && s.Diameter.Literal != 0 {
			dia = s.Diameter.Literal
		}
		return DrillHit{Center: center, Diameter: dia}
	case SpecSolderPoint:
		w, h := DefaultSolderPadSize, DefaultSolderPadSize
		if s.HasSize {
			w, h = s.Width.Literal, s.Height.Literal
		}
		return SolderPad{Center: center, Width: w, Height: h}
	case SpecSmiley:
		return Legend{Center: center, Polygons: smileyPolygons(center), LayerTag: FrontLegend}
	case SpecLegendText:
		return Legend{Center: center, Polygons: textPolygons(center, s.Text), LayerTag: FrontLegend}
	default:
		panic("feature: unknown SurfaceSpecKind")
	}
}

// smileyPolygons builds a small fixed silkscreen glyph (two eyes and a
// mouth arc approximated as a triangle) centered on p. It exists so
// "smiley" has a concrete, renderable shape rather than a placeholder;
// emitters treat it like any other Legend multipolygon.
func smileyPolygons(p geom.Point) geom.MultiPolygon {
	eye := func(dx, dy float64) geom.Ring {
		r := 0.3
		return circleRing(geom.Point{X: p.X + dx, Y: p.Y + dy}, r, 12)
	}
	mouth := geom.Ring{
		{X: p.X - 1.0, Y: p.Y + 0.5},
		{X: p.X + 1.0, Y: p.Y + 0.5},
		{X: p.X, Y: p.Y + 1.2},
	}
	return geom.MultiPolygon{
		{Exterior: eye(-0.6, -0.4)},
		{Exterior: eye(0.6, -0.4)},
		{Exterior: mouth},
	}
}

// legendCellWidth/Height approximate the 6x8px bitmap font original_source
// blits for silkscreen text, scaled to millimeters. The glyph shapes
// themselves aren't reproduced — no font asset shipped with the pack —
// so each character becomes one cell-sized rectangle, which is enough for
// emitters to reserve legend-layer area and for bbox/placement math.
const (
	legendCellWidth  = 1.2
	legendCellHeight = 1.6
)

func textPolygons(p geom.Point, text string) geom.MultiPolygon {
	n := len([]rune(text))
	if n == 0 {
		return nil
	}
	totalWidth := float64(n) * legendCellWidth
	startX := p.X - totalWidth/2
	out := make(geom.MultiPolygon, n)
	for i := 0; i < n; i++ {
		x0 := startX + float64(i)*legendCellWidth
		x1 := x0 + legendCellWidth
		y0 := p.Y - legendCellHeight/2
		y1 := p.Y + legendCellHeight/2
		out[i] = geom.Polygon{Exterior: geom.Ring{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}}
	}
	return out
}
