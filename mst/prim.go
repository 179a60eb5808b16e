// SPDX-License-Identifier: MIT
// Package: lvsphere/mst
//
// prim.go — Prim with a lazy edge heap.

package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvsphere/core"
)

// Prim grows the MST from root and returns its edges and total length.
func Prim(g *core.Graph, root string, length LengthFunc) ([]core.Edge, float64, error) {
	length, err := lengthOf(g, length)
	if err != nil {
		return nil, 0, err
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("Prim: root %q: %w", root, core.ErrVertexNotFound)
	}
	n := g.VertexCount()

	visited := make(map[string]bool, n)
	tree := make([]core.Edge, 0, n-1)
	var total float64
	pq := &edgePQ{}

	visit := func(u string) error {
		visited[u] = true
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, e := range nbrs {
			v := other(e, u)
			if !visited[v] {
				heap.Push(pq, item{e: e, to: v, l: length(e)})
			}
		}

		return nil
	}
	if err := visit(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(tree) < n-1 {
		it := heap.Pop(pq).(item)
		if visited[it.to] {
			continue
		}
		tree = append(tree, *it.e)
		total += it.l
		if err := visit(it.to); err != nil {
			return nil, 0, err
		}
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// other returns the endpoint of e that is not u.
func other(e *core.Edge, u string) string {
	if e.To == u {
		return e.From
	}

	return e.To
}

// item is a candidate edge leading to the unvisited vertex to.
type item struct {
	e  *core.Edge
	to string
	l  float64
}

// edgePQ is a min-heap of candidate edges ordered by (length, Edge.ID).
type edgePQ []item

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].l != pq[j].l {
		return pq[i].l < pq[j].l
	}

	return pq[i].e.ID < pq[j].e.ID
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(item)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
