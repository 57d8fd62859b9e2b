package recast

import "github.com/arl/math32"

// FilterWalkable classifies every span by headroom. agentHeight is in world
// units; it is converted to whole cells by rounding up (a partial cell of
// clearance is not enough). Every span starts at AreaWalkable; a span whose
// headroom (the gap to the next span up, or the top of the grid if there is
// none) is smaller than the walkable height is reset to AreaNull.
//
// The comparison is deliberately against the next span's SpanMin, not its
// own SpanMax+1: SpanMin is the floor of the obstruction sitting above, and
// that is the quantity this pipeline was built to match.
func FilterWalkable(ctx *Context, agentHeight, ch float32, hf *Heightfield, gridH int32) {
	ctx.StartTimer(TimerFilterWalkable)
	defer ctx.StopTimer(TimerFilterWalkable)

	walkableHeight := int32(math32.Ceil(agentHeight / ch))

	for z := int32(0); z < hf.D; z++ {
		for x := int32(0); x < hf.W; x++ {
			for i := hf.ColumnHead(x, z); i != noSpan; i = hf.Next(hf.Span(i)) {
				s := hf.Span(i)
				s.AreaID = AreaWalkable

				ceiling := gridH
				if n := hf.Next(s); n != noSpan {
					ceiling = hf.Span(n).SpanMin
				}
				headroom := ceiling - s.SpanMax
				if headroom < walkableHeight {
					s.AreaID = AreaNull
				}
			}
		}
	}
}
