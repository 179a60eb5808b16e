// SPDX-License-Identifier: MIT
// Package: lvsphere/bfs
//
// bfs.go — hop-count breadth-first search.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvsphere/core"
)

// BFS explores g from startID in non-decreasing hop distance.
// Weighted graphs are accepted; weights are ignored.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrNeighbors, the context error, or the OnVisit error (wrapped).
//
// Complexity: O(V + E).
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("BFS: %q: %w", startID, ErrStartVertexNotFound)
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	queue := make([]string, 0, n)
	queue = append(queue, startID)
	res.Depth[startID] = 0

	for head := 0; head < len(queue); head++ {
		if err := o.Ctx.Err(); err != nil {
			return res, err
		}
		id := queue[head]
		d := res.Depth[id]
		res.Order = append(res.Order, id)
		if err := o.OnVisit(id, d); err != nil {
			return res, fmt.Errorf("BFS: OnVisit at %q: %w", id, err)
		}
		if o.MaxDepth > 0 && d >= o.MaxDepth {
			continue
		}

		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return res, fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, id, err)
		}
		for _, nb := range nbrs {
			if _, seen := res.Depth[nb]; seen || !o.FilterNeighbor(id, nb) {
				continue
			}
			res.Depth[nb] = d + 1
			res.Parent[nb] = id
			queue = append(queue, nb)
		}
	}

	return res, nil
}
