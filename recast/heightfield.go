package recast

import "fmt"

// Span is a maximal run of consecutive solid voxels within a single (x,z)
// column. SpanMin and SpanMax are inclusive cell-unit bounds along y.
// AreaID starts at AreaNull and is overwritten in place by later stages
// (FilterWalkable, BuildRegions) — the same arena slot, never a copy.
type Span struct {
	SpanMin, SpanMax int32
	AreaID           uint16
	next             int32 // index into Heightfield.spans, or noSpan
}

// Heightfield is the per-column span representation built from a Grid. The
// span arena is pre-reserved to its worst-case capacity (w*d*h) before
// population, so every Span index handed out remains valid for the life of
// the Heightfield — nothing ever reallocates or moves an existing span.
type Heightfield struct {
	W, D int32 // footprint dimensions, shared with the source Grid

	cols  []int32 // per-column head index into spans, or noSpan
	spans []Span  // arena, append-only
}

func (hf *Heightfield) colIndex(x, z int32) int32 { return x + z*hf.W }

// ColumnHead returns the arena index of the lowest span in column (x,z), or
// noSpan if the column has no spans.
func (hf *Heightfield) ColumnHead(x, z int32) int32 { return hf.cols[hf.colIndex(x, z)] }

// Span returns the span stored at arena index i.
func (hf *Heightfield) Span(i int32) *Span { return &hf.spans[i] }

// Next returns the arena index of the span above s in its column, or
// noSpan if s is the topmost span.
func (hf *Heightfield) Next(s *Span) int32 { return s.next }

// BuildHeightfield scans every column of grid and opens a new Span on every
// empty-to-solid transition, closing it again on the matching solid-to-empty
// transition. It never fails: an all-empty grid simply produces zero spans.
func BuildHeightfield(ctx *Context, grid *Grid) *Heightfield {
	ctx.StartTimer(TimerBuildHeightfield)
	defer ctx.StopTimer(TimerBuildHeightfield)

	capacity := int(int64(grid.W) * int64(grid.D) * int64(grid.H))
	hf := &Heightfield{
		W:     grid.W,
		D:     grid.D,
		cols:  make([]int32, grid.W*grid.D),
		spans: make([]Span, 0, capacity),
	}
	for i := range hf.cols {
		hf.cols[i] = noSpan
	}

	for z := int32(0); z < grid.D; z++ {
		for x := int32(0); x < grid.W; x++ {
			var open bool
			var spanMin, spanMax int32
			var tail int32 = noSpan

			emit := func() {
				idx := int32(len(hf.spans))
				hf.spans = append(hf.spans, Span{SpanMin: spanMin, SpanMax: spanMax, AreaID: AreaNull, next: noSpan})
				if tail == noSpan {
					hf.cols[hf.colIndex(x, z)] = idx
				} else {
					hf.spans[tail].next = idx
				}
				tail = idx
			}

			for y := int32(0); y < grid.H; y++ {
				solid := grid.Get(x, y, z)
				switch {
				case solid && !open:
					open = true
					spanMin, spanMax = y, y
				case solid && open:
					spanMax = y
				case !solid && open:
					emit()
					open = false
				}
			}
			if open {
				emit()
			}
		}
	}

	ctx.Progressf("heightfield: %d columns, %d spans", len(hf.cols), len(hf.spans))
	return hf
}

// checkColumnOrder validates property 2 (span monotonicity): within a
// column, spans must be strictly ordered with a gap between each pair. It
// is used by tests only; no build stage calls it.
func (hf *Heightfield) checkColumnOrder(x, z int32) error {
	prev := int32(-1)
	for i := hf.ColumnHead(x, z); i != noSpan; i = hf.Next(hf.Span(i)) {
		s := hf.Span(i)
		if s.SpanMin <= prev {
			return fmt.Errorf("%w: column (%d,%d): span starting at %d overlaps previous span ending at %d",
				ErrInternalInvariant, x, z, s.SpanMin, prev)
		}
		prev = s.SpanMax
	}
	return nil
}
