// Package objmesh loads triangle meshes from Wavefront OBJ files.
package objmesh

import "github.com/arl/gobj"

// Mesh is a flat vertex/index buffer: three consecutive float32 per vertex,
// three consecutive int32 indices per triangle.
type Mesh struct {
	Verts []float32
	Tris  []int32
}

// VertCount returns the number of vertices in the mesh.
func (m *Mesh) VertCount() int32 { return int32(len(m.Verts) / 3) }

// TriCount returns the number of triangles in the mesh.
func (m *Mesh) TriCount() int32 { return int32(len(m.Tris) / 3) }

// Load reads an OBJ file and triangulates every face by fanning around its
// first vertex. Faces with fewer than 3 vertices contribute no triangles
// and are silently skipped, rather than treated as an error.
func Load(filename string) (*Mesh, error) {
	obj, err := gobj.Load(filename)
	if err != nil {
		return nil, err
	}

	m := &Mesh{}
	for _, poly := range obj.Polys() {
		if len(poly) < 3 {
			continue
		}
		a := poly[0]
		for i := 2; i < len(poly); i++ {
			b, c := poly[i-1], poly[i]
			base := int32(len(m.Verts) / 3)
			m.Verts = append(m.Verts,
				float32(a.X()), float32(a.Y()), float32(a.Z()),
				float32(b.X()), float32(b.Y()), float32(b.Z()),
				float32(c.X()), float32(c.Y()), float32(c.Z()),
			)
			m.Tris = append(m.Tris, base, base+1, base+2)
		}
	}
	return m, nil
}
