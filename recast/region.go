package recast

var dirOffsetX = [4]int32{-1, 0, 1, 0}
var dirOffsetZ = [4]int32{0, 1, 0, -1}

// dirOffset returns the (x,z) column offset for direction dir, dir in
// [0,4). The four directions are axis-aligned; there is no diagonal
// connectivity anywhere in this pipeline.
func dirOffset(dir int32) (dx, dz int32) { return dirOffsetX[dir&3], dirOffsetZ[dir&3] }

func iMin(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func iAbs(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}

// spanCoord pairs a span's arena index with its column, so the queue can
// look up neighbor columns without re-deriving them.
type spanCoord struct {
	span int32
	x, z int32
}

// regionQueue is a plain FIFO of span coordinates. The flood fill doesn't
// need priority ordering, so a slice with a read cursor is all it takes.
type regionQueue struct {
	items []spanCoord
	head  int
}

func (q *regionQueue) push(c spanCoord) { q.items = append(q.items, c) }
func (q *regionQueue) empty() bool      { return q.head >= len(q.items) }
func (q *regionQueue) pop() spanCoord {
	c := q.items[q.head]
	q.head++
	return c
}

// BuildRegions flood-fills walkable spans (AreaID == AreaWalkable) into
// 4-connected regions. maxClimb is in world units and is converted to whole
// cells by rounding down; two adjacent spans merge into the same region
// only if the absolute difference of their SpanMax is at most that many
// cells. Region ids start at FirstRegionID and increase by one per seeded
// flood; the total region count is the number of ids assigned.
//
// Columns are scanned in row-major (z,x) order, so the region a given
// cluster receives — and therefore the final region count reported by
// Progressf — is deterministic for a given input.
func BuildRegions(ctx *Context, hf *Heightfield, maxClimb, ch float32) int32 {
	ctx.StartTimer(TimerBuildRegions)
	defer ctx.StopTimer(TimerBuildRegions)

	walkableClimb := int32(maxClimb / ch)
	if walkableClimb < 0 {
		walkableClimb = 0
	}

	nextID := FirstRegionID
	var q regionQueue

	for z := int32(0); z < hf.D; z++ {
		for x := int32(0); x < hf.W; x++ {
			for i := hf.ColumnHead(x, z); i != noSpan; i = hf.Next(hf.Span(i)) {
				s := hf.Span(i)
				if s.AreaID != AreaWalkable {
					continue
				}

				s.AreaID = nextID
				q.items = q.items[:0]
				q.head = 0
				q.push(spanCoord{span: i, x: x, z: z})

				for !q.empty() {
					cur := q.pop()
					curSpan := hf.Span(cur.span)

					for dir := int32(0); dir < 4; dir++ {
						dx, dz := dirOffset(dir)
						nx, nz := cur.x+dx, cur.z+dz
						if nx < 0 || nz < 0 || nx >= hf.W || nz >= hf.D {
							continue
						}
						for ni := hf.ColumnHead(nx, nz); ni != noSpan; ni = hf.Next(hf.Span(ni)) {
							ns := hf.Span(ni)
							if ns.AreaID != AreaWalkable {
								continue
							}
							if iAbs(ns.SpanMax-curSpan.SpanMax) > walkableClimb {
								continue
							}
							ns.AreaID = nextID
							q.push(spanCoord{span: ni, x: nx, z: nz})
						}
					}
				}

				nextID++
			}
		}
	}

	regionCount := int32(nextID - FirstRegionID)
	ctx.Progressf("regions: %d", regionCount)
	return regionCount
}
