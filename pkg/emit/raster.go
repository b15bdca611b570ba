package emit

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/draw"

	"github.com/chazu/panelgo/pkg/feature"
	"github.com/chazu/panelgo/pkg/geom"
	"github.com/chazu/panelgo/pkg/render"
)

// WritePNG rasterizes r to a PNG at the given resolution (panel units
// per pixel, matching the CLI's `png --size z:N` flag from spec.md §6).
// The canvas is sized to r's bounding box plus a fixed margin so the
// outline never touches the image edge.
func WritePNG(w io.Writer, r *render.Rendered, unitsPerPixel float64) error {
	box := geom.BoxFromRing(r.Outer)
	for _, hole := range r.Inners {
		box = box.Union(geom.BoxFromRing(hole))
	}
	const marginUnits = 5.0
	scale := 1.0 / unitsPerPixel
	width := int((box.Width() + 2*marginUnits) * scale)
	height := int((box.Height() + 2*marginUnits) * scale)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	originX, originY := box.MinX-marginUnits, box.MinY-marginUnits

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	gc := draw2dimg.NewGraphicContext(img)

	toPx := func(p geom.Point) (float64, float64) {
		return (p.X - originX) * scale, (p.Y - originY) * scale
	}

	strokeRing(gc, r.Outer, toPx, color.Black, 1.5)
	for _, hole := range r.Inners {
		strokeRing(gc, hole, toPx, color.RGBA{R: 120, G: 120, B: 120, A: 255}, 1.0)
	}

	for _, sf := range r.SurfaceFeatures {
		drawSurfaceRaster(gc, sf, toPx, scale)
	}

	return png.Encode(w, img)
}

func strokeRing(gc *draw2dimg.GraphicContext, ring geom.Ring, toPx func(geom.Point) (float64, float64), col color.Color, lineWidth float64) {
	if len(ring) == 0 {
		return
	}
	gc.SetStrokeColor(col)
	gc.SetLineWidth(lineWidth)
	gc.BeginPath()
	x, y := toPx(ring[0])
	gc.MoveTo(x, y)
	for _, p := range ring[1:] {
		px, py := toPx(p)
		gc.LineTo(px, py)
	}
	gc.Close()
	gc.Stroke()
}

func drawSurfaceRaster(gc *draw2dimg.GraphicContext, sf feature.SurfaceFeature, toPx func(geom.Point) (float64, float64), scale float64) {
	switch v := sf.(type) {
	case feature.DrillHit:
		cx, cy := toPx(v.Center)
		radiusPx := v.Diameter / 2 * scale
		gc.SetStrokeColor(color.RGBA{R: 200, A: 255})
		gc.SetLineWidth(1)
		gc.BeginPath()
		gc.ArcTo(cx, cy, radiusPx, radiusPx, 0, 6.28318)
		gc.Close()
		gc.Stroke()
	case feature.SolderPad:
		cx, cy := toPx(v.Center)
		hw, hh := v.Width/2*scale, v.Height/2*scale
		gc.SetFillColor(color.RGBA{R: 200, G: 140, B: 0, A: 255})
		gc.BeginPath()
		gc.MoveTo(cx-hw, cy-hh)
		gc.LineTo(cx+hw, cy-hh)
		gc.LineTo(cx+hw, cy+hh)
		gc.LineTo(cx-hw, cy+hh)
		gc.Close()
		gc.Fill()
	case feature.Legend:
		gc.SetFillColor(color.RGBA{R: 255, G: 255, B: 255, A: 255})
		for _, poly := range v.Polygons {
			if len(poly.Exterior) == 0 {
				continue
			}
			gc.BeginPath()
			x0, y0 := toPx(poly.Exterior[0])
			gc.MoveTo(x0, y0)
			for _, p := range poly.Exterior[1:] {
				px, py := toPx(p)
				gc.LineTo(px, py)
			}
			gc.Close()
			gc.Fill()
		}
	}
}
