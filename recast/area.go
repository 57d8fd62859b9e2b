package recast

// ErodeWalkableArea would shrink walkable area inward by the agent radius,
// the way the wider Recast family does over a compact heightfield. This
// pipeline never builds a compact heightfield, and agent radius erosion is
// out of scope: Config carries AgentRadius, but neither the orchestrator
// nor any stage reads it, and nothing calls this function.
//
// Kept as a named, documented no-op rather than removed outright, so a
// caller wiring this package into a larger build can see exactly where
// erosion would plug in if a later pass adds it.
func ErodeWalkableArea(ctx *Context, radius int32, hf *Heightfield) {
	ctx.Warningf("ErodeWalkableArea: not implemented, radius=%d ignored", radius)
}
