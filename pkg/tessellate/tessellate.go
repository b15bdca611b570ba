// Package tessellate converts geometry kernel solids into triangle
// meshes suitable for STL export, one mesh per named part.
package tessellate

import (
	"fmt"

	"github.com/chazu/panelgo/pkg/kernel"
)

// Part pairs a kernel.Solid with the name it should carry in the
// resulting mesh, matching kernel.Mesh.PartName's role as the STL
// object name.
type Part struct {
	Name  string
	Solid kernel.Solid
}

// Tessellate converts each part's solid to a triangle mesh using k,
// preserving part order. A panel fabrication job typically tessellates
// a single part (the extruded board blank), but the board-plus-fixture
// case needs more than one, so this accepts a slice.
func Tessellate(k kernel.Kernel, parts []Part) ([]*kernel.Mesh, error) {
	meshes := make([]*kernel.Mesh, 0, len(parts))
	for _, p := range parts {
		mesh, err := k.ToMesh(p.Solid)
		if err != nil {
			return nil, fmt.Errorf("tessellate: ToMesh failed for part %q: %w", p.Name, err)
		}
		if p.Name != "" {
			mesh.PartName = p.Name
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

// TessellatePanel extrudes outer/holes to height using k and tessellates
// the result into a single named mesh, the common case for a finished
// panel blank.
func TessellatePanel(k kernel.Kernel, name string, outer [][2]float64, holes [][][2]float64, height float64) (*kernel.Mesh, error) {
	solid := k.Extrude(outer, holes, height)
	meshes, err := Tessellate(k, []Part{{Name: name, Solid: solid}})
	if err != nil {
		return nil, err
	}
	return meshes[0], nil
}
