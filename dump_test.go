package navmesh

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/haktan313/navmesh/recast"
)

func TestArtifactsDumpGobRoundTrip(t *testing.T) {
	var s Scene
	s.AddObject("floor", flatFloorMesh(10, 10), mgl32.Ident4())

	var p NavigationPipeline
	artifacts, err := p.Build(recast.NewContext(false), &s, floorConfig())
	if err != nil {
		t.Fatalf("Build() err = %v", err)
	}

	dump := artifacts.Dump()
	if dump.RegionCount != artifacts.RegionCount() {
		t.Errorf("Dump().RegionCount = %d, want %d", dump.RegionCount, artifacts.RegionCount())
	}
	if len(dump.Voxels.Solid) != int(dump.Voxels.W)*int(dump.Voxels.H)*int(dump.Voxels.D) {
		t.Errorf("Dump().Voxels.Solid has %d entries, want W*H*D = %d",
			len(dump.Voxels.Solid), int(dump.Voxels.W)*int(dump.Voxels.H)*int(dump.Voxels.D))
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(dump); err != nil {
		t.Fatalf("gob Encode() err = %v", err)
	}

	var decoded Dump
	if err := gob.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("gob Decode() err = %v", err)
	}
	if decoded.RegionCount != dump.RegionCount {
		t.Errorf("round-tripped RegionCount = %d, want %d", decoded.RegionCount, dump.RegionCount)
	}
	if len(decoded.Spans) != len(dump.Spans) {
		t.Errorf("round-tripped %d spans, want %d", len(decoded.Spans), len(dump.Spans))
	}
}
