package navmesh

// VoxelDump is a gob-encodable snapshot of a Grid's occupancy bitmap.
type VoxelDump struct {
	W, H, D int32
	Solid   []bool
}

// SpanDump is a gob-encodable snapshot of one Heightfield span, with its
// column coordinates folded in since the dump has no arena to look them up
// from.
type SpanDump struct {
	X, Z             int32
	SpanMin, SpanMax int32
	AreaID           uint16
}

// Dump is the exported, gob-encodable form of an Artifacts value. Artifacts
// itself keeps its fields unexported so callers can't mutate a pipeline's
// internal state through a DebugView; Dump is the boundary where a build's
// result crosses into a serialized file.
type Dump struct {
	RegionCount int32
	Voxels      VoxelDump
	Spans       []SpanDump
}

// Dump snapshots a into a Dump value suitable for gob encoding.
func (a *Artifacts) Dump() Dump {
	d := Dump{RegionCount: a.regionCount}
	if a.grid != nil {
		d.Voxels.W, d.Voxels.H, d.Voxels.D = a.grid.W, a.grid.H, a.grid.D
		capacity := int(int64(a.grid.W) * int64(a.grid.H) * int64(a.grid.D))
		d.Voxels.Solid = make([]bool, 0, capacity)
		a.IterateVoxels(func(x, y, z int32, solid bool) {
			d.Voxels.Solid = append(d.Voxels.Solid, solid)
		})
	}
	a.IterateSpans(func(x, z, spanMin, spanMax int32, areaID uint16) {
		d.Spans = append(d.Spans, SpanDump{X: x, Z: z, SpanMin: spanMin, SpanMax: spanMax, AreaID: areaID})
	})
	return d
}
