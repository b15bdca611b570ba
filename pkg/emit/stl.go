package emit

import (
	"io"

	"github.com/hschendel/stl"

	"github.com/chazu/panelgo/pkg/kernel"
)

// WriteSTL writes mesh as a binary STL solid, the optional 3D-extrusion
// sink from spec.md §6.3's supplement. hschendel/stl is a transitive
// dependency of the sdfx kernel backend already in go.mod; nothing else
// in the pack writes STL, so it is promoted to a direct import here
// rather than reimplementing the binary format by hand.
func WriteSTL(w io.Writer, mesh *kernel.Mesh) error {
	solid := &stl.Solid{
		Triangles: make([]stl.Triangle, mesh.TriangleCount()),
	}
	for i := range solid.Triangles {
		var tri stl.Triangle
		tri.Normal = stl.Vec3{
			mesh.Normals[i*9+0], mesh.Normals[i*9+1], mesh.Normals[i*9+2],
		}
		for j := 0; j < 3; j++ {
			idx := mesh.Indices[i*3+j]
			tri.Vertices[j] = stl.Vec3{
				mesh.Vertices[idx*3+0], mesh.Vertices[idx*3+1], mesh.Vertices[idx*3+2],
			}
		}
		solid.Triangles[i] = tri
	}
	return solid.WriteAll(w)
}
