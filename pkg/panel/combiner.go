package panel

import (
	"github.com/chazu/panelgo/pkg/feature"
	"github.com/chazu/panelgo/pkg/geom"
	"github.com/chazu/panelgo/pkg/perr"
	"github.com/chazu/panelgo/pkg/render"
)

// Combiner folds a list of resolved top-level features into a Rendered
// panel, the way pkg/tessellate folds a mesh's faces into a single
// solid: walk every node's contribution, accumulate, fold.
type Combiner struct {
	// ConvexHull replaces the additive union with its convex hull before
	// subtracting negatives, and skips the single-region check: the hull
	// is convex by construction, so the spec treats it as guaranteed
	// connected regardless of what the subtractive pieces do to it.
	ConvexHull bool
}

// Combine partitions each feature's edge contribution into additive and
// subtractive geometry, unions the additive side (or its convex hull),
// subtracts the union of the subtractive side, and requires exactly one
// connected region to remain unless ConvexHull is set.
func (c Combiner) Combine(features []feature.Feature) (*render.Rendered, error) {
	var additive, subtractive geom.MultiPolygon
	var surfaces []feature.SurfaceFeature
	for _, f := range features {
		e := f.Edge()
		additive = append(additive, e.Additive...)
		subtractive = append(subtractive, e.Subtractive...)
		surfaces = append(surfaces, f.Surfaces()...)
	}

	union := geom.Union(additive)
	if c.ConvexHull {
		union = geom.SingleRing(geom.ConvexHull(exteriorPoints(union)))
	}

	final := geom.Difference(union, geom.Union(subtractive))

	if len(final) == 0 {
		return nil, perr.DisjointGeometry(0)
	}
	if !c.ConvexHull && len(final) > 1 {
		return nil, perr.DisjointGeometry(len(final))
	}

	outline := final[0]
	kept, named := filterSurfaces(surfaces, outline)

	return &render.Rendered{
		Outer:           outline.Exterior,
		Inners:          outline.Holes,
		SurfaceFeatures: kept,
		NamedFeatures:   named,
	}, nil
}

func exteriorPoints(mp geom.MultiPolygon) []geom.Point {
	var pts []geom.Point
	for _, p := range mp {
		pts = append(pts, p.Exterior...)
	}
	return pts
}

// filterSurfaces drops any surface feature whose center lies outside
// outline's filled area, including ones inside a hole (spec §9 Q1,
// decided literally: dropped rather than clipped). NamedAnnotation
// entries are additionally split out into their own list, since they
// carry no fabrication layer and exist purely for tooling.
func filterSurfaces(surfaces []feature.SurfaceFeature, outline geom.Polygon) ([]feature.SurfaceFeature, []feature.NamedAnnotation) {
	var kept []feature.SurfaceFeature
	var named []feature.NamedAnnotation
	for _, s := range surfaces {
		if !outline.ContainsPoint(surfaceCenter(s)) {
			continue
		}
		if n, ok := s.(feature.NamedAnnotation); ok {
			named = append(named, n)
			continue
		}
		kept = append(kept, s)
	}
	return kept, named
}

func surfaceCenter(s feature.SurfaceFeature) geom.Point {
	switch v := s.(type) {
	case feature.DrillHit:
		return v.Center
	case feature.SolderPad:
		return v.Center
	case feature.Legend:
		return v.Center
	case feature.NamedAnnotation:
		return v.Bounds.Center()
	default:
		return geom.Point{}
	}
}
