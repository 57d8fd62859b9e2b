package recast

import "github.com/arl/gogeo/f32/d3"

// Config is the full set of parameters a build accepts. It is deliberately
// small: everything the wider Recast family exposes for contour tracing,
// polygon meshing, and detail meshing has no home here, because this
// pipeline never reaches those stages.
type Config struct {
	// BMin and BMax are the world-space AABB the voxel grid is built over.
	// Anything outside it is clipped away before rasterization.
	BMin, BMax d3.Vec3

	// Cs is the horizontal (xz-plane) cell size, in world units.
	Cs float32

	// Ch is the vertical cell size, in world units.
	Ch float32

	// AgentHeight is the clearance, in world units, required above a span
	// for it to be considered walkable (see FilterWalkable).
	AgentHeight float32

	// AgentRadius is accepted for forward compatibility with an erosion
	// pass but is not consumed anywhere in this package.
	AgentRadius float32

	// MaxClimb is the largest vertical gap, in world units, that two
	// neighboring spans may have and still be merged into one region.
	MaxClimb float32
}
