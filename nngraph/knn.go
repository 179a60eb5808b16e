// SPDX-License-Identifier: MIT
// Package: lvsphere/nngraph
//
// knn.go — exact k-nearest-neighbour search on a gonum kd-tree.
//
// Design:
//   • Every point keeps its original index so results survive the in-place
//     partitioning done by kdtree.New.
//   • Distances are squared Euclidean, which is what the kd-tree pruning
//     expects and what the heat kernel consumes.
//   • The keeper orders candidates by (distance, index), so equidistant
//     neighbours (frequent on symmetric samplings) are chosen
//     deterministically: the lower index wins.

package nngraph

import (
	"container/heap"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
)

// point is a kd-tree Comparable carrying its position in the input cloud.
type point struct {
	idx int
	x   [3]float64
}

var _ kdtree.Comparable = point{}

// Compare implements kdtree.Comparable.
func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.x[d] - c.(point).x[d]
}

// Dims implements kdtree.Comparable.
func (point) Dims() int { return 3 }

// Distance implements kdtree.Comparable; it returns the squared distance.
func (p point) Distance(c kdtree.Comparable) float64 {
	q := c.(point)
	var sum float64
	for d := range p.x {
		diff := p.x[d] - q.x[d]
		sum += diff * diff
	}

	return sum
}

// cloud is a kdtree.Interface over a slice of points.
type cloud []point

var _ kdtree.Interface = cloud(nil)

func (c cloud) Index(i int) kdtree.Comparable         { return c[i] }
func (c cloud) Len() int                              { return len(c) }
func (c cloud) Slice(start, end int) kdtree.Interface { return c[start:end] }
func (c cloud) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(plane{cloud: c, dim: d}, kdtree.MedianOfMedians(plane{cloud: c, dim: d}))
}

// plane sorts a cloud along one dimension for median selection.
type plane struct {
	cloud
	dim kdtree.Dim
}

func (p plane) Less(i, j int) bool { return p.cloud[i].x[p.dim] < p.cloud[j].x[p.dim] }
func (p plane) Swap(i, j int)      { p.cloud[i], p.cloud[j] = p.cloud[j], p.cloud[i] }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.cloud = p.cloud[start:end]
	return p
}

// neighbor is one k-NN result.
type neighbor struct {
	idx  int
	dist float64 // squared distance
}

// farther reports whether a ranks after b.
func farther(a, b kdtree.ComparableDist) bool {
	if a.Dist != b.Dist {
		return a.Dist > b.Dist
	}
	return a.Comparable.(point).idx > b.Comparable.(point).idx
}

// keeper retains the n best candidates in a max-heap keyed by (distance, index).
type keeper struct {
	n    int
	heap []kdtree.ComparableDist
}

var _ kdtree.Keeper = (*keeper)(nil)

func newKeeper(n int) *keeper {
	return &keeper{n: n, heap: make([]kdtree.ComparableDist, 0, n)}
}

func (k *keeper) Len() int           { return len(k.heap) }
func (k *keeper) Less(i, j int) bool { return farther(k.heap[i], k.heap[j]) }
func (k *keeper) Swap(i, j int)      { k.heap[i], k.heap[j] = k.heap[j], k.heap[i] }
func (k *keeper) Push(x interface{}) { k.heap = append(k.heap, x.(kdtree.ComparableDist)) }
func (k *keeper) Pop() interface{} {
	last := k.heap[len(k.heap)-1]
	k.heap = k.heap[:len(k.heap)-1]
	return last
}

// Keep implements kdtree.Keeper.
func (k *keeper) Keep(c kdtree.ComparableDist) {
	if len(k.heap) < k.n {
		heap.Push(k, c)
		return
	}
	if farther(k.heap[0], c) {
		k.heap[0] = c
		heap.Fix(k, 0)
	}
}

// Max implements kdtree.Keeper. Until the keeper is full the search radius
// is unbounded.
func (k *keeper) Max() kdtree.ComparableDist {
	if len(k.heap) < k.n {
		return kdtree.ComparableDist{Dist: math.Inf(1)}
	}
	return k.heap[0]
}

// result returns the kept candidates nearest first.
func (k *keeper) result() []neighbor {
	out := make([]neighbor, 0, len(k.heap))
	for _, c := range k.heap {
		if c.Comparable == nil {
			continue
		}
		out = append(out, neighbor{idx: c.Comparable.(point).idx, dist: c.Dist})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].dist != out[b].dist {
			return out[a].dist < out[b].dist
		}
		return out[a].idx < out[b].idx
	})

	return out
}

// knn returns, for every point, its k nearest other points (nearest first).
// Requires 1 ≤ k < len(pts).
// Complexity: O(N log N) to build the tree plus O(N·k log N) expected queries.
func knn(pts [][3]float64, k int) [][]neighbor {
	c := make(cloud, len(pts))
	for i, x := range pts {
		c[i] = point{idx: i, x: x}
	}
	tree := kdtree.New(c, false)

	out := make([][]neighbor, len(pts))
	for i, x := range pts {
		q := point{idx: i, x: x}
		kp := newKeeper(k + 1)
		tree.NearestSet(kp, q)

		ns := kp.result()
		row := make([]neighbor, 0, k)
		for _, n := range ns {
			if n.idx == i {
				continue
			}
			row = append(row, n)
		}
		// When duplicates of i exist the query may keep i and k others;
		// otherwise i is dropped and k remain.
		if len(row) > k {
			row = row[:k]
		}
		out[i] = row
	}

	return out
}
