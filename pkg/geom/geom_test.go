package geom

import (
	"math"
	"testing"
)

func TestBoundingBoxEmpty(t *testing.T) {
	b := EmptyBoundingBox
	if !b.IsEmpty() {
		t.Fatal("expected empty bounding box")
	}
	b = b.ExpandPoint(Point{1, 2})
	if b.IsEmpty() {
		t.Fatal("box should no longer be empty after ExpandPoint")
	}
	if b.Width() != 0 || b.Height() != 0 {
		t.Fatalf("single-point box should have zero extent, got %v", b)
	}
}

func TestBoundingBoxUnion(t *testing.T) {
	a := BoundingBox{0, 0, 10, 5}
	b := BoundingBox{5, -5, 20, 2}
	got := a.Union(b)
	want := BoundingBox{0, -5, 20, 5}
	if got != want {
		t.Fatalf("Union() = %v, want %v", got, want)
	}
}

func TestRingContainsPoint(t *testing.T) {
	square := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if !square.ContainsPoint(Point{5, 5}) {
		t.Fatal("expected center to be inside")
	}
	if square.ContainsPoint(Point{15, 5}) {
		t.Fatal("expected point outside box to be outside ring")
	}
}

func TestRingSignedAreaRectangle(t *testing.T) {
	r := Ring{{0, 0}, {10, 0}, {10, 5}, {0, 5}}
	if got := r.Area(); got != 50 {
		t.Fatalf("Area() = %v, want 50", got)
	}
}

func TestRingRotateAboutOriginIdentity(t *testing.T) {
	r := Ring{{3, 4}, {-1, 2}}
	got := r.RotateAboutOrigin(360)
	for i, p := range got {
		if math.Abs(p.X-r[i].X) > 1e-9 || math.Abs(p.Y-r[i].Y) > 1e-9 {
			t.Fatalf("rotate by 360 should be identity, got %v want %v", p, r[i])
		}
	}
}

func TestConvexHullSquarePlusCenter(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}}
	hull := ConvexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("expected hull to drop the interior point, got %d vertices: %v", len(hull), hull)
	}
}

func TestUnionDisjointStaysSeparate(t *testing.T) {
	a := SingleRing(Ring{{0, 0}, {5, 0}, {5, 5}, {0, 5}})
	b := SingleRing(Ring{{100, 100}, {105, 100}, {105, 105}, {100, 105}})
	out := Union(a, b)
	if len(out) != 2 {
		t.Fatalf("expected 2 disjoint polygons, got %d", len(out))
	}
}

func TestUnionTouchingRectanglesMerge(t *testing.T) {
	a := SingleRing(Ring{{0, 0}, {5, 0}, {5, 5}, {0, 5}})
	b := SingleRing(Ring{{5, 0}, {10, 0}, {10, 5}, {5, 5}})
	out := Union(a, b)
	if len(out) != 1 {
		t.Fatalf("expected the two touching rectangles to merge into one polygon, got %d", len(out))
	}
	box := BoxFromMultiPolygon(out)
	want := BoundingBox{0, 0, 10, 5}
	if box != want {
		t.Fatalf("merged bbox = %v, want %v", box, want)
	}
}

func TestUnionOverlappingRectangles(t *testing.T) {
	a := SingleRing(Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	b := SingleRing(Ring{{5, 5}, {15, 5}, {15, 15}, {5, 15}})
	out := Union(a, b)
	if len(out) != 1 {
		t.Fatalf("expected overlapping rectangles to merge, got %d polygons", len(out))
	}
	if got := out[0].Exterior.Area(); got <= 100 || got >= 200 {
		t.Fatalf("merged area %v should be between the two rectangle areas and their sum", got)
	}
}

func TestDifferenceContainedHole(t *testing.T) {
	outer := SingleRing(Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	inner := SingleRing(Ring{{3, 3}, {7, 3}, {7, 7}, {3, 7}})
	out := Difference(outer, inner)
	if len(out) != 1 {
		t.Fatalf("expected 1 polygon with a hole, got %d", len(out))
	}
	if len(out[0].Holes) != 1 {
		t.Fatalf("expected exactly 1 hole, got %d", len(out[0].Holes))
	}
	if out[0].Exterior.ContainsPoint(Point{5, 5}) && !out[0].Holes[0].ContainsPoint(Point{5, 5}) {
		t.Fatal("hole should cover the subtracted region")
	}
}

func TestDifferenceDoubleNegationIdentity(t *testing.T) {
	// Subtracting the complement of a hole from itself should reproduce
	// the original shape's area: Difference(Difference(outer, hole)) of
	// the equivalent additive/subtractive split matches outer minus hole
	// exactly once, not twice.
	outer := SingleRing(Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	hole := SingleRing(Ring{{2, 2}, {4, 2}, {4, 4}, {2, 4}})
	once := Difference(outer, hole)
	totalArea := 0.0
	for _, p := range once {
		totalArea += p.Exterior.Area()
	}
	if math.Abs(totalArea-100) > 1e-9 {
		t.Fatalf("exterior area should stay 100 (hole tracked separately), got %v", totalArea)
	}
}

func TestDifferenceDisjointUnchanged(t *testing.T) {
	outer := SingleRing(Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	elsewhere := SingleRing(Ring{{100, 100}, {105, 100}, {105, 105}, {100, 105}})
	out := Difference(outer, elsewhere)
	if len(out) != 1 || len(out[0].Holes) != 0 {
		t.Fatalf("expected outer returned unchanged, got %+v", out)
	}
}
