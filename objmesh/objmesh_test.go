package objmesh

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOBJ(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.obj")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() err = %v", err)
	}
	return path
}

func TestLoadSingleTriangle(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 0 1
f 1 2 3
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if m.VertCount() != 3 {
		t.Errorf("VertCount() = %d, want 3", m.VertCount())
	}
	if m.TriCount() != 1 {
		t.Errorf("TriCount() = %d, want 1", m.TriCount())
	}
}

func TestLoadQuadFansIntoTwoTriangles(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 1 0 1
v 0 0 1
f 1 2 3 4
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if m.TriCount() != 2 {
		t.Errorf("TriCount() = %d, want 2 (a quad fans into two triangles)", m.TriCount())
	}
}

func TestLoadSkipsDegenerateFaces(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
f 1 2
`)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if m.TriCount() != 0 {
		t.Errorf("TriCount() = %d, want 0 for a 2-vertex face", m.TriCount())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Errorf("Load() on a missing file returned nil error, want non-nil")
	}
}
