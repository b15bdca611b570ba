package feature

import (
	"math"
	"testing"

	"github.com/chazu/panelgo/pkg/geom"
)

func TestRectBBoxContainsEdgeVertices(t *testing.T) {
	r := Rect{Width: Lit(5), Height: Lit(5)}
	box := r.BBox()
	for _, p := range r.Edge().Additive[0].Exterior {
		if p.X < box.MinX-1e-9 || p.X > box.MaxX+1e-9 || p.Y < box.MinY-1e-9 || p.Y > box.MaxY+1e-9 {
			t.Fatalf("vertex %v outside bbox %v", p, box)
		}
	}
}

func TestRectDefaultSquareCenteredAtOrigin(t *testing.T) {
	r := Rect{Width: Lit(5), Height: Lit(5)}
	box := r.BBox()
	want := geom.BoundingBox{MinX: -2.5, MinY: -2.5, MaxX: 2.5, MaxY: 2.5}
	if box != want {
		t.Fatalf("BBox() = %v, want %v", box, want)
	}
}

func TestRectWithHoleDefaultDiameter(t *testing.T) {
	r := Rect{Width: Lit(5), Height: Lit(5), Inner: []SurfaceSpec{{Kind: SpecHole}}}
	surfaces := r.Surfaces()
	if len(surfaces) != 1 {
		t.Fatalf("expected 1 surface, got %d", len(surfaces))
	}
	drill, ok := surfaces[0].(DrillHit)
	if !ok {
		t.Fatalf("expected DrillHit, got %T", surfaces[0])
	}
	if drill.Center != (geom.Point{}) {
		t.Fatalf("Center = %v, want origin", drill.Center)
	}
	if drill.Diameter != DefaultDrillDiameter {
		t.Fatalf("diameter = %v, want default %v", drill.Diameter, DefaultDrillDiameter)
	}
}

func TestArrayExtentAlongDirection(t *testing.T) {
	child := Rect{Width: Lit(5), Height: Lit(5)}
	a := Array{Child: child, Count: Lit(2), Direction: Right}
	box := a.BBox()
	want := geom.BoundingBox{MinX: -2.5, MinY: -2.5, MaxX: 7.5, MaxY: 2.5}
	if box != want {
		t.Fatalf("Array BBox() = %v, want %v", box, want)
	}
}

func TestArrayPerpendicularExtentMatchesChild(t *testing.T) {
	child := Rect{Width: Lit(3), Height: Lit(7)}
	a := Array{Child: child, Count: Lit(4), Direction: Right}
	box := a.BBox()
	if box.Height() != child.BBox().Height() {
		t.Fatalf("perpendicular extent = %v, want %v", box.Height(), child.BBox().Height())
	}
}

func TestTupleWidthIsSumHeightIsMax(t *testing.T) {
	a := Rect{Width: Lit(4), Height: Lit(2)}
	b := Rect{Width: Lit(6), Height: Lit(10)}
	tup := Tuple{Children: []Feature{a, b}}
	box := tup.BBox()
	if box.Width() != 10 {
		t.Fatalf("width = %v, want 10", box.Width())
	}
	if box.Height() != 10 {
		t.Fatalf("height = %v, want 10", box.Height())
	}
}

func TestColumnHeightIsSumWidthIsMax(t *testing.T) {
	a := Rect{Width: Lit(4), Height: Lit(2)}
	b := Rect{Width: Lit(6), Height: Lit(10)}
	col := Column{Alignment: ColumnCenter, Children: []Feature{a, b}}
	box := col.BBox()
	if box.Height() != 12 {
		t.Fatalf("height = %v, want 12", box.Height())
	}
	if box.Width() != 6 {
		t.Fatalf("width = %v, want 6", box.Width())
	}
}

func TestDoubleNegativeIsIdentity(t *testing.T) {
	c := Circle{Radius: Lit(5)}
	plain := c.Edge()
	doubled := Negative{Children: []Feature{Negative{Children: []Feature{c}}}}.Edge()
	if len(doubled.Subtractive) != 0 {
		t.Fatalf("double negative should have no subtractive contribution, got %d", len(doubled.Subtractive))
	}
	if len(doubled.Additive) != len(plain.Additive) {
		t.Fatalf("double negative additive polygon count = %d, want %d", len(doubled.Additive), len(plain.Additive))
	}
}

func TestRotateByZeroIsIdentity(t *testing.T) {
	r := Rect{Width: Lit(4), Height: Lit(2)}
	rot := Rotate{Degrees: Lit(0), Children: []Feature{r}}
	got := rot.Edge().Additive[0].Exterior
	want := r.Edge().Additive[0].Exterior
	for i := range got {
		if math.Abs(got[i].X-want[i].X) > 1e-9 || math.Abs(got[i].Y-want[i].Y) > 1e-9 {
			t.Fatalf("rotate(0) vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRotateBy360MatchesOriginalArea(t *testing.T) {
	r := Rect{Width: Lit(4), Height: Lit(2)}
	rot := Rotate{Degrees: Lit(360), Children: []Feature{r}}
	gotArea := rot.Edge().Additive[0].Exterior.Area()
	wantArea := r.Edge().Additive[0].Exterior.Area()
	if math.Abs(gotArea-wantArea) > 1e-6 {
		t.Fatalf("rotate(360) area = %v, want %v", gotArea, wantArea)
	}
}

func TestWrapStadiumBBox(t *testing.T) {
	center := Rect{Width: Lit(20), Height: Lit(20)}
	w := Wrap{
		Center: center,
		Placements: []Placement{
			{Side: Side{Kind: SideLeft}, Child: Circle{Radius: Lit(10)}},
			{Side: Side{Kind: SideRight}, Child: Circle{Radius: Lit(10)}},
		},
	}
	box := w.BBox()
	if math.Abs(box.Width()-40) > 1e-6 {
		t.Fatalf("stadium width = %v, want 40", box.Width())
	}
	if math.Abs(box.Height()-20) > 1e-6 {
		t.Fatalf("stadium height = %v, want 20", box.Height())
	}
}

func TestNegativeAnnulus(t *testing.T) {
	outer := Circle{Radius: Lit(10)}
	hole := Negative{Children: []Feature{Circle{Radius: Lit(5)}}}
	edges := []EdgeContribution{outer.Edge(), hole.Edge()}
	additive := edges[0].Additive
	subtractive := edges[1].Subtractive
	if len(additive) != 1 || len(subtractive) != 1 {
		t.Fatalf("expected single additive and subtractive polygon, got %d/%d", len(additive), len(subtractive))
	}
}
