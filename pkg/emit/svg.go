// Package emit writes a render.Rendered panel out to the external sinks
// spec.md treats as opaque targets: SVG, Gerber/Excellon, PNG raster,
// a zip fabrication bundle, and (optionally) an extruded STL solid.
// None of these formats are load-bearing to the panel language itself;
// they are consumers of render.Rendered, not part of its evaluation.
package emit

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/chazu/panelgo/pkg/feature"
	"github.com/chazu/panelgo/pkg/geom"
	"github.com/chazu/panelgo/pkg/render"
)

// SVGScale controls how many SVG user units one millimeter of panel
// geometry occupies. svgo's canvas is pixel/unit addressed; panel
// coordinates are millimeters and may be negative, so every point is
// shifted and scaled before it reaches the canvas.
const SVGScale = 10.0

// WriteSVG renders r to w as an SVG document, one polygon per ring and
// one circle/rect per surface feature, colored by layer.
func WriteSVG(w io.Writer, r *render.Rendered) error {
	box := geom.BoxFromRing(r.Outer)
	for _, hole := range r.Inners {
		box = box.Union(geom.BoxFromRing(hole))
	}
	margin := 5.0
	width := int((box.Width() + 2*margin) * SVGScale)
	height := int((box.Height() + 2*margin) * SVGScale)
	originX, originY := box.MinX-margin, box.MinY-margin

	toPx := func(p geom.Point) (int, int) {
		return int((p.X - originX) * SVGScale), int((p.Y - originY) * SVGScale)
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	drawRing(canvas, r.Outer, toPx, "fill:none;stroke:black;stroke-width:1")
	for _, hole := range r.Inners {
		drawRing(canvas, hole, toPx, "fill:none;stroke:#888;stroke-width:0.75")
	}

	for _, sf := range r.SurfaceFeatures {
		drawSurface(canvas, sf, toPx)
	}

	canvas.End()
	return nil
}

func drawRing(canvas *svg.SVG, ring geom.Ring, toPx func(geom.Point) (int, int), style string) {
	if len(ring) == 0 {
		return
	}
	xs := make([]int, len(ring))
	ys := make([]int, len(ring))
	for i, p := range ring {
		xs[i], ys[i] = toPx(p)
	}
	canvas.Polygon(xs, ys, style)
}

func drawSurface(canvas *svg.SVG, sf feature.SurfaceFeature, toPx func(geom.Point) (int, int)) {
	switch v := sf.(type) {
	case feature.DrillHit:
		cx, cy := toPx(v.Center)
		r := int(v.Diameter / 2 * SVGScale)
		canvas.Circle(cx, cy, r, "fill:none;stroke:red;stroke-width:0.5")
	case feature.SolderPad:
		cx, cy := toPx(v.Center)
		w := int(v.Width * SVGScale)
		h := int(v.Height * SVGScale)
		canvas.Rect(cx-w/2, cy-h/2, w, h, "fill:#cc8800;stroke:none")
	case feature.Legend:
		for _, p := range v.Polygons {
			drawRing(canvas, p.Exterior, toPx, fmt.Sprintf("fill:%s;stroke:none", legendColor(v.LayerTag)))
		}
	}
}

func legendColor(l feature.Layer) string {
	switch l {
	case feature.BackLegend:
		return "#2255aa"
	default:
		return "#ffffff"
	}
}
