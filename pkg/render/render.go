// Package render defines Rendered, the fully combined panel result that
// pkg/panel's Combiner produces and every pkg/emit writer consumes. It
// is the one shape every external sink (SVG, Gerber, raster, STL, the
// CLI's JSON dump) agrees on.
package render

import (
	"encoding/json"

	"github.com/chazu/panelgo/pkg/feature"
	"github.com/chazu/panelgo/pkg/geom"
)

// Rendered is a single outline (possibly with holes) plus every surface
// feature and named annotation that survived inside it, in declaration
// order.
type Rendered struct {
	Outer           geom.Ring
	Inners          []geom.Ring
	SurfaceFeatures []feature.SurfaceFeature
	NamedFeatures   []feature.NamedAnnotation
}

func ringPoints(r geom.Ring) [][2]float64 {
	out := make([][2]float64, len(r))
	for i, p := range r {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

// jsonSurfaceFeature is the language-neutral tagged shape a surface
// feature serializes to: a "kind" discriminator plus whichever of the
// remaining fields that kind uses.
type jsonSurfaceFeature struct {
	Kind     string        `json:"kind"`
	Center   *[2]float64   `json:"center,omitempty"`
	Radius   *float64      `json:"radius,omitempty"`
	Width    *float64      `json:"width,omitempty"`
	Height   *float64      `json:"height,omitempty"`
	Layer    string        `json:"layer,omitempty"`
	Polygons [][][2]float64 `json:"polygons,omitempty"`
}

func toJSONSurface(s feature.SurfaceFeature) jsonSurfaceFeature {
	switch v := s.(type) {
	case feature.DrillHit:
		c := [2]float64{v.Center.X, v.Center.Y}
		r := v.Diameter / 2
		return jsonSurfaceFeature{Kind: "Drill", Center: &c, Radius: &r, Layer: v.Layer().String()}
	case feature.SolderPad:
		c := [2]float64{v.Center.X, v.Center.Y}
		w, h := v.Width, v.Height
		return jsonSurfaceFeature{Kind: "Pad", Center: &c, Width: &w, Height: &h, Layer: v.Layer().String()}
	case feature.Legend:
		c := [2]float64{v.Center.X, v.Center.Y}
		polys := make([][][2]float64, len(v.Polygons))
		for i, p := range v.Polygons {
			polys[i] = ringPoints(p.Exterior)
		}
		return jsonSurfaceFeature{Kind: "Legend", Center: &c, Layer: v.Layer().String(), Polygons: polys}
	default:
		return jsonSurfaceFeature{Kind: "Unknown"}
	}
}

type jsonNamedFeature struct {
	Name   string     `json:"name"`
	Bounds [4]float64 `json:"bounds"`
}

type jsonRendered struct {
	Outer           [][2]float64         `json:"outer"`
	Inners          [][][2]float64       `json:"inners"`
	SurfaceFeatures []jsonSurfaceFeature `json:"surface_features"`
	NamedFeatures   []jsonNamedFeature   `json:"named_features"`
}

// MarshalJSON encodes r in the language-neutral shape every emitter and
// the CLI's --json dump agree on, rather than Go's default struct
// field-by-field encoding (which would leak the internal geom.Ring
// representation).
func (r *Rendered) MarshalJSON() ([]byte, error) {
	jr := jsonRendered{Outer: ringPoints(r.Outer)}
	for _, h := range r.Inners {
		jr.Inners = append(jr.Inners, ringPoints(h))
	}
	for _, s := range r.SurfaceFeatures {
		jr.SurfaceFeatures = append(jr.SurfaceFeatures, toJSONSurface(s))
	}
	for _, n := range r.NamedFeatures {
		jr.NamedFeatures = append(jr.NamedFeatures, jsonNamedFeature{
			Name:   n.Name,
			Bounds: [4]float64{n.Bounds.MinX, n.Bounds.MinY, n.Bounds.MaxX, n.Bounds.MaxY},
		})
	}
	return json.Marshal(jr)
}
