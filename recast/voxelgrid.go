package recast

import (
	"fmt"

	"github.com/arl/assertgo"
	"github.com/arl/gogeo/f32/d3"
)

// Grid is a dense axis-aligned voxel occupancy bitmap: one bool per cell,
// row-major over the XZ plane and stacked along Y. It is the sole output of
// rasterization and the sole input to height-field construction; nothing
// else in the pipeline reads or writes it.
type Grid struct {
	BMin, BMax d3.Vec3
	Cs, Ch     float32
	W, H, D    int32
	solid      []bool
}

// NewGrid allocates and configures a Grid. It returns ErrInvalidGrid if
// bmin is not componentwise less than bmax, if cs or ch are not strictly
// positive, or if the resulting cell count would overflow a 32-bit count.
func NewGrid(bmin, bmax d3.Vec3, cs, ch float32) (*Grid, error) {
	g := &Grid{}
	if err := g.configure(bmin, bmax, cs, ch); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grid) configure(bmin, bmax d3.Vec3, cs, ch float32) error {
	if bmin[0] >= bmax[0] || bmin[1] >= bmax[1] || bmin[2] >= bmax[2] {
		return fmt.Errorf("recast: %w: bmin must be componentwise less than bmax (bmin=%v, bmax=%v)", ErrInvalidGrid, bmin, bmax)
	}
	if cs <= 0 || ch <= 0 {
		return fmt.Errorf("recast: %w: cell sizes must be positive (cs=%v, ch=%v)", ErrInvalidGrid, cs, ch)
	}

	w := int32((bmax[0] - bmin[0]) / cs)
	d := int32((bmax[2] - bmin[2]) / cs)
	h := int32((bmax[1] - bmin[1]) / ch)
	if w < 1 {
		w = 1
	}
	if d < 1 {
		d = 1
	}
	if h < 1 {
		h = 1
	}

	total := int64(w) * int64(d) * int64(h)
	if total > int64(^uint32(0)>>1) {
		return fmt.Errorf("recast: %w: cell count %d exceeds a 32-bit index", ErrInvalidGrid, total)
	}

	g.BMin, g.BMax = bmin, bmax
	g.Cs, g.Ch = cs, ch
	g.W, g.H, g.D = w, h, d
	g.solid = make([]bool, total)
	return nil
}

// clear resets every cell to empty, reusing the existing backing array.
func (g *Grid) clear() {
	for i := range g.solid {
		g.solid[i] = false
	}
}

func (g *Grid) index(x, y, z int32) int32 {
	return x + z*g.W + y*g.W*g.D
}

// Set marks cell (x,y,z) as solid. x,y,z must be in range; the rasterizer
// clamps before calling, so an out-of-range index here is a programmer
// error, not a runtime condition to recover from.
func (g *Grid) Set(x, y, z int32) {
	assert.True(x >= 0 && x < g.W && y >= 0 && y < g.H && z >= 0 && z < g.D,
		"Grid.Set: (%d,%d,%d) out of range [%d,%d,%d]", x, y, z, g.W, g.H, g.D)
	g.solid[g.index(x, y, z)] = true
}

// Get reports whether cell (x,y,z) is solid.
func (g *Grid) Get(x, y, z int32) bool {
	assert.True(x >= 0 && x < g.W && y >= 0 && y < g.H && z >= 0 && z < g.D,
		"Grid.Get: (%d,%d,%d) out of range [%d,%d,%d]", x, y, z, g.W, g.H, g.D)
	return g.solid[g.index(x, y, z)]
}

// CellCenter returns the world-space center of cell (x,y,z).
func (g *Grid) CellCenter(x, y, z int32) d3.Vec3 {
	return d3.NewVec3XYZ(
		g.BMin[0]+(float32(x)+0.5)*g.Cs,
		g.BMin[1]+(float32(y)+0.5)*g.Ch,
		g.BMin[2]+(float32(z)+0.5)*g.Cs,
	)
}
