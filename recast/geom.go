package recast

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
)

// Triangle is three points in world space. It carries no stored normal; a
// normal is derived on demand wherever an overlap test needs one.
type Triangle struct {
	Verts [3]d3.Vec3
}

// Vertex returns the i-th vertex's components, satisfying the minimal
// triangle shape the spatial package's AABB index needs.
func (t Triangle) Vertex(i int) (x, y, z float32) {
	v := t.Verts[i]
	return v[0], v[1], v[2]
}

// CalcBounds returns the axis-aligned bounding box of a set of vertices.
func CalcBounds(verts []float32, nv int32) (bmin, bmax [3]float32) {
	copy(bmin[:], verts[:3])
	copy(bmax[:], verts[:3])
	for i := int32(1); i < nv; i++ {
		v := verts[i*3 : i*3+3]
		for k := 0; k < 3; k++ {
			if v[k] < bmin[k] {
				bmin[k] = v[k]
			}
			if v[k] > bmax[k] {
				bmax[k] = v[k]
			}
		}
	}
	return
}

// triBounds returns the tight AABB of a triangle.
func triBounds(t Triangle) (bmin, bmax [3]float32) {
	for k := 0; k < 3; k++ {
		bmin[k] = t.Verts[0][k]
		bmax[k] = t.Verts[0][k]
	}
	for i := 1; i < 3; i++ {
		v := t.Verts[i]
		for k := 0; k < 3; k++ {
			if v[k] < bmin[k] {
				bmin[k] = v[k]
			}
			if v[k] > bmax[k] {
				bmax[k] = v[k]
			}
		}
	}
	return
}

// findMinMax returns the min and max of three scalars.
func findMinMax(a, b, c float32) (min, max float32) {
	min, max = a, a
	if b < min {
		min = b
	}
	if b > max {
		max = b
	}
	if c < min {
		min = c
	}
	if c > max {
		max = c
	}
	return
}

// planeBoxOverlap tests a plane, given by its normal and the signed distance
// of the box center to the plane, against a box of the given half-size,
// using the signed-distance corner trick: the two box corners that are
// extremal along normal's sign are the only ones that can straddle the
// plane, so only those need checking.
func planeBoxOverlap(normal d3.Vec3, d float32, maxBox d3.Vec3) bool {
	var vmin, vmax [3]float32
	for q := 0; q < 3; q++ {
		if normal[q] > 0 {
			vmin[q] = -maxBox[q]
			vmax[q] = maxBox[q]
		} else {
			vmin[q] = maxBox[q]
			vmax[q] = -maxBox[q]
		}
	}
	if normal.Dot(d3.NewVec3XYZ(vmin[0], vmin[1], vmin[2]))+d > 0 {
		return false
	}
	if normal.Dot(d3.NewVec3XYZ(vmax[0], vmax[1], vmax[2]))+d >= 0 {
		return true
	}
	return false
}

// axisTestX, axisTestY and axisTestZ project the triangle and the box onto
// a candidate axis built from an edge of the triangle crossed with a box
// face normal, and report whether that axis separates them. There are nine
// such axes (three edges times three face normals); Recast-family
// implementations name them x01/x02, y02/y12, z12/z0 after which triangle
// edge and which face normal they pair, and that naming (and exactly this
// order) is preserved below because the short-circuit order is part of the
// observable behavior (it determines which axis "blames" a near miss).

func axisTestX(a, b float32, v0, v1 d3.Vec3, fa, fb, boxHalfY, boxHalfZ float32) bool {
	p0 := a*v0[1] - b*v0[2]
	p1 := a*v1[1] - b*v1[2]
	min, max := p0, p1
	if min > max {
		min, max = max, min
	}
	rad := fa*boxHalfY + fb*boxHalfZ
	return !(min > rad || max < -rad)
}

func axisTestY(a, b float32, v0, v1 d3.Vec3, fa, fb, boxHalfX, boxHalfZ float32) bool {
	p0 := -a*v0[0] + b*v0[2]
	p1 := -a*v1[0] + b*v1[2]
	min, max := p0, p1
	if min > max {
		min, max = max, min
	}
	rad := fa*boxHalfX + fb*boxHalfZ
	return !(min > rad || max < -rad)
}

func axisTestZ(a, b float32, v0, v1 d3.Vec3, fa, fb, boxHalfX, boxHalfY float32) bool {
	p0 := a*v0[0] - b*v0[1]
	p1 := a*v1[0] - b*v1[1]
	min, max := p0, p1
	if min > max {
		min, max = max, min
	}
	rad := fa*boxHalfX + fb*boxHalfY
	return !(min > rad || max < -rad)
}

// Overlaps implements the Akenine-Möller triangle-box separating-axis test.
// All work happens in single precision and in the box-centered frame. The
// tests run in a fixed order — the nine edge x axis cross-products, the box
// face normals, then the triangle's own face normal — and never get
// reordered, so the axis that reports a separation first is itself
// observable, reproducible behavior.
func Overlaps(t Triangle, boxCenter, boxHalfSize d3.Vec3) bool {
	var v0, v1, v2 d3.Vec3
	v0 = d3.NewVec3XYZ(t.Verts[0][0]-boxCenter[0], t.Verts[0][1]-boxCenter[1], t.Verts[0][2]-boxCenter[2])
	v1 = d3.NewVec3XYZ(t.Verts[1][0]-boxCenter[0], t.Verts[1][1]-boxCenter[1], t.Verts[1][2]-boxCenter[2])
	v2 = d3.NewVec3XYZ(t.Verts[2][0]-boxCenter[0], t.Verts[2][1]-boxCenter[1], t.Verts[2][2]-boxCenter[2])

	e0 := v1.Sub(v0)
	e1 := v2.Sub(v1)
	e2 := v0.Sub(v2)

	// 9 edge x axis tests.
	fex, fey, fez := math32.Abs(e0[0]), math32.Abs(e0[1]), math32.Abs(e0[2])
	if !axisTestX(e0[2], e0[1], v0, v2, fez, fey, boxHalfSize[1], boxHalfSize[2]) {
		return false
	}
	if !axisTestY(e0[2], e0[0], v0, v2, fez, fex, boxHalfSize[0], boxHalfSize[2]) {
		return false
	}
	if !axisTestZ(e0[1], e0[0], v1, v2, fey, fex, boxHalfSize[0], boxHalfSize[1]) {
		return false
	}

	fex, fey, fez = math32.Abs(e1[0]), math32.Abs(e1[1]), math32.Abs(e1[2])
	if !axisTestX(e1[2], e1[1], v0, v2, fez, fey, boxHalfSize[1], boxHalfSize[2]) {
		return false
	}
	if !axisTestY(e1[2], e1[0], v0, v2, fez, fex, boxHalfSize[0], boxHalfSize[2]) {
		return false
	}
	if !axisTestZ(e1[1], e1[0], v0, v1, fey, fex, boxHalfSize[0], boxHalfSize[1]) {
		return false
	}

	fex, fey, fez = math32.Abs(e2[0]), math32.Abs(e2[1]), math32.Abs(e2[2])
	if !axisTestX(e2[2], e2[1], v0, v1, fez, fey, boxHalfSize[1], boxHalfSize[2]) {
		return false
	}
	if !axisTestY(e2[2], e2[0], v0, v1, fez, fex, boxHalfSize[0], boxHalfSize[2]) {
		return false
	}
	if !axisTestZ(e2[1], e2[0], v1, v2, fey, fex, boxHalfSize[0], boxHalfSize[1]) {
		return false
	}

	// Test the three box face normals (a trivial AABB-AABB test on each
	// axis in turn).
	min, max := findMinMax(v0[0], v1[0], v2[0])
	if min > boxHalfSize[0] || max < -boxHalfSize[0] {
		return false
	}
	min, max = findMinMax(v0[1], v1[1], v2[1])
	if min > boxHalfSize[1] || max < -boxHalfSize[1] {
		return false
	}
	min, max = findMinMax(v0[2], v1[2], v2[2])
	if min > boxHalfSize[2] || max < -boxHalfSize[2] {
		return false
	}

	// Test the triangle's own face normal against the box, via the
	// signed-distance corner trick.
	normal := d3.NewVec3()
	d3.Vec3Cross(normal, e0, e1)
	d := -normal.Dot(v0)
	if !planeBoxOverlap(normal, d, boxHalfSize) {
		return false
	}

	return true
}
