package recast

import "testing"

// flatFloor builds a w x d grid with a single solid layer at y=0, runs it
// through BuildHeightfield and FilterWalkable so every span starts out
// AreaWalkable, and returns the resulting heightfield.
func flatFloor(t *testing.T, w, d int32) (*Context, *Heightfield) {
	t.Helper()
	var cells [][3]int32
	for z := int32(0); z < d; z++ {
		for x := int32(0); x < w; x++ {
			cells = append(cells, [3]int32{x, 0, z})
		}
	}
	g := buildGrid(t, w, 4, d, cells)
	ctx := NewContext(false)
	hf := BuildHeightfield(ctx, g)
	FilterWalkable(ctx, 2, 1, hf, g.H)
	return ctx, hf
}

func TestBuildRegionsSingleConnectedFloor(t *testing.T) {
	ctx, hf := flatFloor(t, 4, 4)
	count := BuildRegions(ctx, hf, 1, 1)
	if count != 1 {
		t.Errorf("region count = %d, want 1 for a single connected floor", count)
	}

	first := hf.Span(hf.ColumnHead(0, 0)).AreaID
	if first < FirstRegionID {
		t.Fatalf("span AreaID = %d, want >= FirstRegionID (%d)", first, FirstRegionID)
	}
	for z := int32(0); z < hf.D; z++ {
		for x := int32(0); x < hf.W; x++ {
			s := hf.Span(hf.ColumnHead(x, z))
			if s.AreaID != first {
				t.Errorf("span (%d,%d) AreaID = %d, want %d (same region as (0,0))", x, z, s.AreaID, first)
			}
		}
	}
}

func TestBuildRegionsTwoDisconnectedIslands(t *testing.T) {
	// Two 1-cell floor islands far enough apart that they can't be
	// 4-connected: (0,0) and (3,3) on a 4x4 grid with nothing between them.
	g := buildGrid(t, 4, 4, 4, [][3]int32{{0, 0, 0}, {3, 0, 3}})
	ctx := NewContext(false)
	hf := BuildHeightfield(ctx, g)
	FilterWalkable(ctx, 2, 1, hf, g.H)

	count := BuildRegions(ctx, hf, 1, 1)
	if count != 2 {
		t.Errorf("region count = %d, want 2 for two disconnected islands", count)
	}

	r1 := hf.Span(hf.ColumnHead(0, 0)).AreaID
	r2 := hf.Span(hf.ColumnHead(3, 3)).AreaID
	if r1 == r2 {
		t.Errorf("disconnected islands got the same region id %d", r1)
	}
}

func TestBuildRegionsClimbToleranceSplitsRegions(t *testing.T) {
	// Two adjacent columns whose floor heights differ by more than
	// walkableClimb: must not merge into the same region.
	g := buildGrid(t, 2, 10, 1, [][3]int32{{0, 0, 0}, {1, 5, 0}})
	ctx := NewContext(false)
	hf := BuildHeightfield(ctx, g)
	FilterWalkable(ctx, 2, 1, hf, g.H)

	count := BuildRegions(ctx, hf, 1, 1) // maxClimb=1, ch=1 -> walkableClimb=1 cell
	if count != 2 {
		t.Errorf("region count = %d, want 2 when step height exceeds climb tolerance", count)
	}
}

func TestBuildRegionsNoWalkableSpans(t *testing.T) {
	g := buildGrid(t, 2, 4, 2, [][3]int32{{0, 0, 0}, {0, 1, 0}}) // one span [0,1], headroom 3 < walkable height 4
	ctx := NewContext(false)
	hf := BuildHeightfield(ctx, g)
	FilterWalkable(ctx, 4, 1, hf, g.H)

	count := BuildRegions(ctx, hf, 1, 1)
	if count != 0 {
		t.Errorf("region count = %d, want 0 when no span is walkable", count)
	}
}
