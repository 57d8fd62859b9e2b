// Package spatial accelerates axis-aligned range queries over a flattened
// triangle list, the way the wider Recast family's chunky triangle mesh
// does for its tile-building pass — but keyed on XZ footprints of whole
// Triangle values rather than on flat vertex/index arrays.
package spatial

import "sort"

// Triangle is the minimal shape this package needs from a mesh triangle:
// three vertices it can read an XZ footprint from. recast.Triangle
// satisfies it without either package importing the other.
type Triangle interface {
	Vertex(i int) (x, y, z float32)
}

type node struct {
	bmin, bmax [2]float32
	i, n       int32 // leaf: i = first triangle index, n = count. internal: i = -escape offset.
}

type boundsItem struct {
	bmin, bmax [2]float32
	i          int32
}

// Index is an AABB tree over the XZ footprints of a flattened triangle
// list, built once and queried many times. It never mutates after
// construction.
type Index struct {
	nodes   []node
	tris    []int32 // leaf payload: original triangle indices, grouped by leaf
	maxTris int32   // max triangles held by any single leaf
}

// DefaultMaxTrisPerLeaf matches the leaf size the wider Recast family uses
// for its own chunky triangle mesh.
const DefaultMaxTrisPerLeaf = 256

// Build partitions tris (addressed into mesh by their original index, 0..n)
// into an AABB tree with at most maxTrisPerLeaf triangles per leaf.
func Build[T Triangle](mesh []T, maxTrisPerLeaf int32) *Index {
	n := int32(len(mesh))
	if maxTrisPerLeaf <= 0 {
		maxTrisPerLeaf = DefaultMaxTrisPerLeaf
	}
	idx := &Index{}
	if n == 0 {
		return idx
	}

	items := make([]boundsItem, n)
	for i := int32(0); i < n; i++ {
		x0, _, z0 := mesh[i].Vertex(0)
		bmin := [2]float32{x0, z0}
		bmax := bmin
		for v := 1; v < 3; v++ {
			x, _, z := mesh[i].Vertex(v)
			if x < bmin[0] {
				bmin[0] = x
			}
			if z < bmin[1] {
				bmin[1] = z
			}
			if x > bmax[0] {
				bmax[0] = x
			}
			if z > bmax[1] {
				bmax[1] = z
			}
		}
		items[i] = boundsItem{bmin: bmin, bmax: bmax, i: i}
	}

	nchunks := (n + maxTrisPerLeaf - 1) / maxTrisPerLeaf
	idx.nodes = make([]node, nchunks*4)
	idx.tris = make([]int32, n)

	var curNode, curTri int32
	subdivide(items, 0, n, maxTrisPerLeaf, &curNode, idx.nodes, &curTri, idx.tris)
	idx.nodes = idx.nodes[:curNode]

	for i := range idx.nodes {
		nd := &idx.nodes[i]
		if nd.i >= 0 && nd.n > idx.maxTris {
			idx.maxTris = nd.n
		}
	}
	return idx
}

func calcExtends(items []boundsItem, imin, imax int32) (bmin, bmax [2]float32) {
	bmin, bmax = items[imin].bmin, items[imin].bmax
	for i := imin + 1; i < imax; i++ {
		it := items[i]
		if it.bmin[0] < bmin[0] {
			bmin[0] = it.bmin[0]
		}
		if it.bmin[1] < bmin[1] {
			bmin[1] = it.bmin[1]
		}
		if it.bmax[0] > bmax[0] {
			bmax[0] = it.bmax[0]
		}
		if it.bmax[1] > bmax[1] {
			bmax[1] = it.bmax[1]
		}
	}
	return
}

func longestAxis(w, h float32) int {
	if h > w {
		return 1
	}
	return 0
}

func subdivide(items []boundsItem, imin, imax, trisPerLeaf int32, curNode *int32, nodes []node, curTri *int32, outTris []int32) {
	inum := imax - imin
	icur := *curNode

	nd := &nodes[*curNode]
	*curNode++
	nd.bmin, nd.bmax = calcExtends(items, imin, imax)

	if inum <= trisPerLeaf {
		nd.i = *curTri
		nd.n = inum
		for i := imin; i < imax; i++ {
			outTris[*curTri] = items[i].i
			*curTri++
		}
		return
	}

	axis := longestAxis(nd.bmax[0]-nd.bmin[0], nd.bmax[1]-nd.bmin[1])
	slice := items[imin:imax]
	if axis == 0 {
		sort.SliceStable(slice, func(a, b int) bool { return slice[a].bmin[0] < slice[b].bmin[0] })
	} else {
		sort.SliceStable(slice, func(a, b int) bool { return slice[a].bmin[1] < slice[b].bmin[1] })
	}

	isplit := imin + inum/2
	subdivide(items, imin, isplit, trisPerLeaf, curNode, nodes, curTri, outTris)
	subdivide(items, isplit, imax, trisPerLeaf, curNode, nodes, curTri, outTris)

	nd.i = -(*curNode - icur)
}

func overlapRect(amin, amax, bmin, bmax [2]float32) bool {
	if amin[0] > bmax[0] || amax[0] < bmin[0] {
		return false
	}
	if amin[1] > bmax[1] || amax[1] < bmin[1] {
		return false
	}
	return true
}

// OverlappingAABB returns, in tree order, the original indices of every
// triangle held by a leaf whose XZ bounds overlap [bmin,bmax]. Triangles
// are not tested one by one: a returned triangle's own footprint may lie
// outside the range when its leaf also holds triangles inside it.
func (idx *Index) OverlappingAABB(bmin, bmax [2]float32) []int32 {
	var out []int32
	var i int32
	for i < int32(len(idx.nodes)) {
		nd := &idx.nodes[i]
		isLeaf := nd.i >= 0
		overlap := overlapRect(bmin, bmax, nd.bmin, nd.bmax)

		if isLeaf && overlap {
			out = append(out, idx.tris[nd.i:nd.i+nd.n]...)
		}
		if overlap || isLeaf {
			i++
		} else {
			i += -nd.i
		}
	}
	return out
}
