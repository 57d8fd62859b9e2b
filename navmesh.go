package navmesh

import (
	"fmt"

	"github.com/arl/gogeo/f32/d3"

	"github.com/haktan313/navmesh/recast"
	"github.com/haktan313/navmesh/spatial"
)

// spatialIndexThreshold is the triangle count above which the orchestrator
// builds a spatial.Index to accelerate the clip pre-filter instead of
// scanning linearly. Chosen as roughly 2x the spatial package's default
// leaf size, so a scene just over the threshold still builds a tree with
// more than one leaf.
const spatialIndexThreshold = 512

// Artifacts bundles everything one Build produced: the populated voxel
// grid, the heightfield with region labels already assigned, and the
// flattened input triangle list. Its exported methods are read-only
// iteration, never field mutation, so a caller holding a DebugView can
// never corrupt a pipeline that's mid-build.
type Artifacts struct {
	grid        *recast.Grid
	hf          *recast.Heightfield
	triangles   []recast.Triangle
	regionCount int32
}

// RegionCount returns the number of regions BuildRegions assigned.
func (a *Artifacts) RegionCount() int32 { return a.regionCount }

// TriangleCount returns the number of input triangles the build consumed.
func (a *Artifacts) TriangleCount() int { return len(a.triangles) }

// IterateTriangles calls fn once per input triangle, in scene order.
func (a *Artifacts) IterateTriangles(fn func(v0, v1, v2 d3.Vec3)) {
	for _, t := range a.triangles {
		fn(t.Verts[0], t.Verts[1], t.Verts[2])
	}
}

// IterateVoxels calls fn once per cell of the occupancy grid.
func (a *Artifacts) IterateVoxels(fn func(x, y, z int32, solid bool)) {
	if a.grid == nil {
		return
	}
	for z := int32(0); z < a.grid.D; z++ {
		for y := int32(0); y < a.grid.H; y++ {
			for x := int32(0); x < a.grid.W; x++ {
				fn(x, y, z, a.grid.Get(x, y, z))
			}
		}
	}
}

// IterateSpans calls fn once per span in the heightfield, column by column.
func (a *Artifacts) IterateSpans(fn func(x, z, spanMin, spanMax int32, areaID uint16)) {
	if a.hf == nil {
		return
	}
	for z := int32(0); z < a.hf.D; z++ {
		for x := int32(0); x < a.hf.W; x++ {
			for i := a.hf.ColumnHead(x, z); i != -1; i = a.hf.Next(a.hf.Span(i)) {
				s := a.hf.Span(i)
				fn(x, z, s.SpanMin, s.SpanMax, s.AreaID)
			}
		}
	}
}

// NavigationPipeline runs the voxelize → height-field → filter → region
// pipeline over a Scene. It is stateless between builds except for the
// last successful Artifacts, retained only so DebugView has something to
// return; a new Build discards it entirely and starts from scratch.
type NavigationPipeline struct {
	last *Artifacts
}

// Build runs one full pipeline pass: flatten the scene to world-space
// triangles, voxelize them, build the height-field, classify walkability,
// then segment regions. It is synchronous and single-threaded; there is no
// partial-success return, and the first stage to fail aborts the rest.
func (p *NavigationPipeline) Build(ctx *recast.Context, scene *Scene, cfg recast.Config) (*Artifacts, error) {
	ctx.StartTimer(recast.TimerTotal)
	defer ctx.StopTimer(recast.TimerTotal)

	tris := scene.Flatten()

	grid, err := recast.NewGrid(cfg.BMin, cfg.BMax, cfg.Cs, cfg.Ch)
	if err != nil {
		return nil, fmt.Errorf("navmesh: %w", err)
	}

	culled := cullToGrid(tris, cfg.BMin, cfg.BMax)

	var buildErr error
	if len(tris) == 0 {
		buildErr = ErrNoInput
	}

	recast.RasterizeTriangles(ctx, culled, grid)
	hf := recast.BuildHeightfield(ctx, grid)
	recast.FilterWalkable(ctx, cfg.AgentHeight, cfg.Ch, hf, grid.H)
	regionCount := recast.BuildRegions(ctx, hf, cfg.MaxClimb, cfg.Ch)

	artifacts := &Artifacts{grid: grid, hf: hf, triangles: tris, regionCount: regionCount}
	p.last = artifacts

	return artifacts, buildErr
}

// DebugView returns the Artifacts from the last successful Build, for a
// visualizer. It returns nil if no build has run yet.
func (p *NavigationPipeline) DebugView() *Artifacts { return p.last }

// cullToGrid discards every triangle whose own XZ footprint doesn't
// overlap [bmin,bmax] — a throughput optimization only; RasterizeTriangles
// would produce the identical grid on the full triangle list, since it
// already clamps per-triangle cell ranges to the grid bounds. Above
// spatialIndexThreshold triangles, the candidates are found with a
// spatial.Index instead of a linear scan, then tested one by one.
func cullToGrid(tris []recast.Triangle, bmin, bmax d3.Vec3) []recast.Triangle {
	clipMin := [2]float32{bmin[0], bmin[2]}
	clipMax := [2]float32{bmax[0], bmax[2]}

	if len(tris) <= spatialIndexThreshold {
		out := make([]recast.Triangle, 0, len(tris))
		for _, t := range tris {
			if triOverlapsXZ(t, clipMin, clipMax) {
				out = append(out, t)
			}
		}
		return out
	}

	idx := spatial.Build(tris, spatial.DefaultMaxTrisPerLeaf)
	indices := idx.OverlappingAABB(clipMin, clipMax)
	out := make([]recast.Triangle, 0, len(indices))
	for _, ti := range indices {
		if triOverlapsXZ(tris[ti], clipMin, clipMax) {
			out = append(out, tris[ti])
		}
	}
	return out
}

func triOverlapsXZ(t recast.Triangle, clipMin, clipMax [2]float32) bool {
	bmin := [2]float32{t.Verts[0][0], t.Verts[0][2]}
	bmax := bmin
	for i := 1; i < 3; i++ {
		v := t.Verts[i]
		if v[0] < bmin[0] {
			bmin[0] = v[0]
		}
		if v[2] < bmin[1] {
			bmin[1] = v[2]
		}
		if v[0] > bmax[0] {
			bmax[0] = v[0]
		}
		if v[2] > bmax[1] {
			bmax[1] = v[2]
		}
	}
	return bmin[0] <= clipMax[0] && bmax[0] >= clipMin[0] && bmin[1] <= clipMax[1] && bmax[1] >= clipMin[1]
}
