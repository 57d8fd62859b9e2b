package navmesh

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/haktan313/navmesh/recast"
)

// Mesh is a flat vertex/index triangle buffer, the shape objmesh.Load and
// hand-built scenery both produce.
type Mesh struct {
	Verts []float32 // (x,y,z) * n
	Tris  []int32   // (a,b,c) * n, indices into Verts
}

// TriCount returns the number of triangles in the mesh.
func (m *Mesh) TriCount() int32 { return int32(len(m.Tris) / 3) }

// SceneObject places one Mesh in world space through a model matrix. Mesh
// may be shared across multiple SceneObjects (instancing); it is never
// mutated by Scene.Flatten.
type SceneObject struct {
	Name        string
	Mesh        *Mesh
	ModelMatrix mgl32.Mat4
}

// Scene is an ordered list of placed objects. Order determines the order
// triangles appear in Flatten's output, which in turn determines the scan
// order rasterization sees.
type Scene struct {
	Objects []SceneObject
}

// AddObject appends an object to the scene.
func (s *Scene) AddObject(name string, mesh *Mesh, model mgl32.Mat4) {
	s.Objects = append(s.Objects, SceneObject{Name: name, Mesh: mesh, ModelMatrix: model})
}

// Flatten expands every object's local-space triangles into world space by
// multiplying each vertex by the object's model matrix and discarding the
// w-component, then concatenates all objects' triangles into one flat list
// in scene order.
func (s *Scene) Flatten() []recast.Triangle {
	var out []recast.Triangle
	for _, obj := range s.Objects {
		if obj.Mesh == nil {
			continue
		}
		m := obj.ModelMatrix
		tris := obj.Mesh.Tris
		verts := obj.Mesh.Verts
		for i := 0; i+2 < len(tris); i += 3 {
			var t recast.Triangle
			for k := 0; k < 3; k++ {
				vi := tris[i+k]
				local := mgl32.Vec4{verts[vi*3+0], verts[vi*3+1], verts[vi*3+2], 1}
				world := m.Mul4x1(local)
				t.Verts[k] = d3.NewVec3XYZ(world[0], world[1], world[2])
			}
			out = append(out, t)
		}
	}
	return out
}
