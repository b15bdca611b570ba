package panel

import (
	"testing"

	"github.com/chazu/panelgo/pkg/feature"
	"github.com/chazu/panelgo/pkg/geom"
	"github.com/chazu/panelgo/pkg/lang"
	"github.com/chazu/panelgo/pkg/perr"
	"github.com/chazu/panelgo/pkg/render"
)

func mustRender(t *testing.T, src string) *render.Rendered {
	t.Helper()
	prog, err := lang.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	features, err := NewResolver().Resolve(prog)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	rendered, err := Combiner{}.Combine(features)
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	return rendered
}

func TestCombinePlainSquare(t *testing.T) {
	r := mustRender(t, `R<5>()`)
	box := geom.BoxFromRing(r.Outer)
	if box.MinX != -2.5 || box.MinY != -2.5 || box.MaxX != 2.5 || box.MaxY != 2.5 {
		t.Fatalf("expected 5x5 square centered at origin, got %v", box)
	}
	if len(r.Inners) != 0 {
		t.Fatalf("expected no holes, got %d", len(r.Inners))
	}
	if len(r.SurfaceFeatures) != 0 {
		t.Fatalf("expected no surface features, got %d", len(r.SurfaceFeatures))
	}
}

func TestCombineSquareWithDrill(t *testing.T) {
	r := mustRender(t, `R<5>(h)`)
	if len(r.SurfaceFeatures) != 1 {
		t.Fatalf("expected 1 surface feature, got %d", len(r.SurfaceFeatures))
	}
	d, ok := r.SurfaceFeatures[0].(feature.DrillHit)
	if !ok {
		t.Fatalf("expected DrillHit, got %T", r.SurfaceFeatures[0])
	}
	if d.Center.X != 0 || d.Center.Y != 0 {
		t.Fatalf("expected drill at origin, got %v", d.Center)
	}
	if d.Diameter != feature.DefaultDrillDiameter {
		t.Fatalf("expected default diameter %v, got %v", feature.DefaultDrillDiameter, d.Diameter)
	}
}

func TestCombineArrayBoundingBox(t *testing.T) {
	r := mustRender(t, `[2]R<5>()`)
	box := geom.BoxFromRing(r.Outer)
	if box.MinX != -2.5 || box.MinY != -2.5 || box.MaxX != 7.5 || box.MaxY != 2.5 {
		t.Fatalf("expected 10x5 rectangle from (-2.5,-2.5) to (7.5,2.5), got %v", box)
	}
}

func TestCombineWrapStadiumExtent(t *testing.T) {
	r := mustRender(t, `wrap(R<20>()) with { left => C<10>(), right => C<10>() }`)
	box := geom.BoxFromRing(r.Outer)
	if box.Width() != 40 {
		t.Fatalf("expected x-extent 40, got %v", box.Width())
	}
	if box.Height() != 20 {
		t.Fatalf("expected y-extent 20, got %v", box.Height())
	}
}

func TestCombineNegativeAnnulus(t *testing.T) {
	r := mustRender(t, `negative { C<5>() } C<10>()`)
	box := geom.BoxFromRing(r.Outer)
	if box.Width() != 20 || box.Height() != 20 {
		t.Fatalf("expected outer circle of diameter 20, got box %v", box)
	}
	if len(r.Inners) != 1 {
		t.Fatalf("expected a single hole, got %d", len(r.Inners))
	}
	hole := geom.BoxFromRing(r.Inners[0])
	if hole.Width() != 10 || hole.Height() != 10 {
		t.Fatalf("expected hole of diameter 10, got box %v", hole)
	}
}

func TestCombineColumnOfArraysFiveDrills(t *testing.T) {
	r := mustRender(t, `let s = R<7.5>(h); column center { [3]$s [2]$s }`)
	if len(r.SurfaceFeatures) != 5 {
		t.Fatalf("expected 5 drill hits, got %d", len(r.SurfaceFeatures))
	}
	for _, s := range r.SurfaceFeatures {
		if _, ok := s.(feature.DrillHit); !ok {
			t.Fatalf("expected all surface features to be drills, got %T", s)
		}
	}
}

func TestCombineDisjointWithoutConvexHullErrors(t *testing.T) {
	prog, err := lang.Parse(`R<@(0,0),5>() R<@(100,100),5>()`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	features, err := NewResolver().Resolve(prog)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	_, err = Combiner{}.Combine(features)
	if !perr.Is(err, perr.CodeDisjointGeometry) {
		t.Fatalf("expected DisjointGeometry, got %v", err)
	}
}

func TestCombineDisjointWithConvexHullSucceeds(t *testing.T) {
	prog, err := lang.Parse(`R<@(0,0),5>() R<@(100,100),5>()`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	features, err := NewResolver().Resolve(prog)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	r, err := Combiner{ConvexHull: true}.Combine(features)
	if err != nil {
		t.Fatalf("combine with convex hull: %v", err)
	}
	if len(r.Outer) == 0 {
		t.Fatal("expected a non-empty hull outline")
	}
}

func TestCombineSurfaceInsideHoleIsDropped(t *testing.T) {
	r := mustRender(t, `negative { C<5>() } R<10>(h)`)
	for _, s := range r.SurfaceFeatures {
		if d, ok := s.(feature.DrillHit); ok && d.Center.X == 0 && d.Center.Y == 0 {
			t.Fatal("expected a drill centered inside the cut hole to have been dropped")
		}
	}
	if len(r.SurfaceFeatures) != 0 {
		t.Fatalf("expected the only drill (at the hole's center) to be dropped, got %d surfaces", len(r.SurfaceFeatures))
	}
}
