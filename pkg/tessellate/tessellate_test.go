package tessellate_test

import (
	"testing"

	"github.com/chazu/panelgo/pkg/kernel"
	"github.com/chazu/panelgo/pkg/kernel/sdfx"
	"github.com/chazu/panelgo/pkg/tessellate"
)

func newKernel() kernel.Kernel {
	return sdfx.New()
}

func squareOuter(side float64) [][2]float64 {
	return [][2]float64{{0, 0}, {side, 0}, {side, side}, {0, side}}
}

func TestTessellatePanelSingleMesh(t *testing.T) {
	k := newKernel()
	mesh, err := tessellate.TessellatePanel(k, "board", squareOuter(50), nil, 1.6)
	if err != nil {
		t.Fatalf("TessellatePanel failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh should not be empty")
	}
	if mesh.PartName != "board" {
		t.Errorf("PartName = %q, want %q", mesh.PartName, "board")
	}
	if mesh.VertexCount() == 0 {
		t.Error("mesh should have vertices")
	}
	if mesh.TriangleCount() == 0 {
		t.Error("mesh should have triangles")
	}
}

func TestTessellatePanelWithHole(t *testing.T) {
	k := newKernel()
	hole := [][2]float64{{20, 20}, {30, 20}, {30, 30}, {20, 30}}
	mesh, err := tessellate.TessellatePanel(k, "board-with-hole", squareOuter(50), [][][2]float64{hole}, 1.6)
	if err != nil {
		t.Fatalf("TessellatePanel failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh should not be empty")
	}
	if mesh.PartName != "board-with-hole" {
		t.Errorf("PartName = %q, want %q", mesh.PartName, "board-with-hole")
	}
}

func TestTessellateMultiplePartsPreservesOrder(t *testing.T) {
	k := newKernel()
	parts := []tessellate.Part{
		{Name: "front", Solid: k.Extrude(squareOuter(10), nil, 1)},
		{Name: "back", Solid: k.Extrude(squareOuter(20), nil, 1)},
	}
	meshes, err := tessellate.Tessellate(k, parts)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(meshes))
	}
	if meshes[0].PartName != "front" {
		t.Errorf("meshes[0].PartName = %q, want %q", meshes[0].PartName, "front")
	}
	if meshes[1].PartName != "back" {
		t.Errorf("meshes[1].PartName = %q, want %q", meshes[1].PartName, "back")
	}
}

func TestTessellateEmptyPartsList(t *testing.T) {
	k := newKernel()
	meshes, err := tessellate.Tessellate(k, nil)
	if err != nil {
		t.Fatalf("Tessellate failed: %v", err)
	}
	if len(meshes) != 0 {
		t.Fatalf("expected 0 meshes, got %d", len(meshes))
	}
}
