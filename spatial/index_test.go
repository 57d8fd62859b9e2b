package spatial

import "testing"

type fakeTri struct {
	verts [3][3]float32
}

func (f fakeTri) Vertex(i int) (x, y, z float32) {
	v := f.verts[i]
	return v[0], v[1], v[2]
}

func quad(cx, cz, half float32) fakeTri {
	return fakeTri{verts: [3][3]float32{
		{cx - half, 0, cz - half},
		{cx + half, 0, cz - half},
		{cx, 0, cz + half},
	}}
}

func TestBuildEmptyMesh(t *testing.T) {
	idx := Build([]fakeTri{}, 0)
	if got := idx.OverlappingAABB([2]float32{-100, -100}, [2]float32{100, 100}); len(got) != 0 {
		t.Errorf("OverlappingAABB() on empty index = %v, want empty", got)
	}
}

func TestBuildOverlappingAABBFindsExpectedTriangles(t *testing.T) {
	tris := []fakeTri{
		quad(0, 0, 1),    // near origin
		quad(50, 50, 1),  // far away
		quad(-50, -50, 1), // far away, other direction
	}
	idx := Build(tris, 1) // force one triangle per leaf

	got := idx.OverlappingAABB([2]float32{-2, -2}, [2]float32{2, 2})
	if len(got) != 1 {
		t.Fatalf("OverlappingAABB() returned %d triangles, want 1", len(got))
	}
	if got[0] != 0 {
		t.Errorf("OverlappingAABB() returned index %d, want 0 (the near-origin triangle)", got[0])
	}
}

func TestBuildOverlappingAABBCoversAll(t *testing.T) {
	var tris []fakeTri
	for i := 0; i < 20; i++ {
		tris = append(tris, quad(float32(i)*3, float32(i)*3, 1))
	}
	idx := Build(tris, 4)

	got := idx.OverlappingAABB([2]float32{-1000, -1000}, [2]float32{1000, 1000})
	if len(got) != len(tris) {
		t.Fatalf("OverlappingAABB() over full range returned %d, want %d", len(got), len(tris))
	}

	seen := make(map[int32]bool)
	for _, i := range got {
		if seen[i] {
			t.Errorf("triangle index %d returned more than once", i)
		}
		seen[i] = true
	}
}

func TestBuildDefaultsMaxTrisPerLeaf(t *testing.T) {
	tris := []fakeTri{quad(0, 0, 1)}
	idx := Build(tris, 0)
	got := idx.OverlappingAABB([2]float32{-2, -2}, [2]float32{2, 2})
	if len(got) != 1 {
		t.Errorf("OverlappingAABB() = %d results, want 1", len(got))
	}
}
