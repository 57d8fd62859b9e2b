package recast

import (
	"github.com/arl/gogeo/f32/d3"
)

// RasterizeTriangle voxelizes a single triangle into grid: it clamps the
// triangle's AABB to the grid bounds, converts the clamped box to a closed
// integer cell range, then for every cell in that range (scanned z, y, x)
// tests the triangle against the cell with Overlaps and marks it solid on a
// hit. Cells already solid are skipped without re-testing.
func RasterizeTriangle(ctx *Context, t Triangle, grid *Grid) {
	tmin, tmax := triBounds(t)

	for k := 0; k < 3; k++ {
		if tmin[k] < grid.BMin[k] {
			tmin[k] = grid.BMin[k]
		}
		if tmax[k] > grid.BMax[k] {
			tmax[k] = grid.BMax[k]
		}
	}
	if tmin[0] > tmax[0] || tmin[1] > tmax[1] || tmin[2] > tmax[2] {
		return
	}

	x0 := cellIndex(tmin[0], grid.BMin[0], grid.Cs, grid.W)
	x1 := cellIndex(tmax[0], grid.BMin[0], grid.Cs, grid.W)
	y0 := cellIndex(tmin[1], grid.BMin[1], grid.Ch, grid.H)
	y1 := cellIndex(tmax[1], grid.BMin[1], grid.Ch, grid.H)
	z0 := cellIndex(tmin[2], grid.BMin[2], grid.Cs, grid.D)
	z1 := cellIndex(tmax[2], grid.BMin[2], grid.Cs, grid.D)

	halfSize := d3.NewVec3XYZ(grid.Cs*0.5, grid.Ch*0.5, grid.Cs*0.5)

	for z := z0; z <= z1; z++ {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if grid.Get(x, y, z) {
					continue
				}
				if Overlaps(t, grid.CellCenter(x, y, z), halfSize) {
					grid.Set(x, y, z)
				}
			}
		}
	}
}

// RasterizeTriangles voxelizes every triangle in tris into grid, in order.
func RasterizeTriangles(ctx *Context, tris []Triangle, grid *Grid) {
	ctx.StartTimer(TimerRasterize)
	defer ctx.StopTimer(TimerRasterize)

	for _, t := range tris {
		RasterizeTriangle(ctx, t, grid)
	}
	ctx.Progressf("rasterize: %d triangles", len(tris))
}

// cellIndex converts a world-space coordinate to a clamped cell index along
// one axis.
func cellIndex(coord, bmin, cellSize float32, count int32) int32 {
	i := int32((coord - bmin) / cellSize)
	if i < 0 {
		return 0
	}
	if i >= count {
		return count - 1
	}
	return i
}
