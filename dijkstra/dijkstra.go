// SPDX-License-Identifier: MIT
// Package: lvsphere/dijkstra
//
// dijkstra.go — lazy decrease-key Dijkstra over core.Graph.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsphere/core"
)

// Dijkstra computes the shortest distance from Options.Source to every vertex
// of g. Unreachable vertices (and vertices beyond MaxDistance) map to +Inf.
// prev is nil unless WithReturnPath is given; prev[v] == "" marks the source
// and unreached vertices.
//
// Validation order: source set, graph non-nil, weights or length function
// available, source present, no negative lengths (O(E) pre-scan).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.Length == nil {
		if !g.Weighted() {
			return nil, nil, ErrUnweightedGraph
		}
		cfg.Length = func(e *core.Edge) float64 { return e.Weight }
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("Dijkstra: %q: %w", cfg.Source, ErrVertexNotFound)
	}

	edges := g.Edges()
	length := make(map[string]float64, len(edges))
	for _, e := range edges {
		l := cfg.Length(e)
		if !(l >= 0) {
			return nil, nil, fmt.Errorf("%w: edge %s→%s length=%g", ErrNegativeWeight, e.From, e.To, l)
		}
		length[e.ID] = l
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		maxDist: cfg.MaxDistance,
		length:  length,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		done:    make(map[string]bool, len(vertices)),
	}
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[cfg.Source] = 0
	heap.Push(&r.pq, nodeItem{id: cfg.Source})

	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of one run.
type runner struct {
	g       *core.Graph
	maxDist float64
	length  map[string]float64 // edge ID → length
	dist    map[string]float64
	prev    map[string]string
	done    map[string]bool
	pq      nodePQ
}

func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.done[item.id] {
			continue // stale entry
		}
		r.done[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the tentative distances of u's neighbours.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}
	for _, e := range edges {
		v := e.To
		if v == u {
			v = e.From
		}
		nd := r.dist[u] + r.length[e.ID]
		if nd > r.maxDist || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})
	}

	return nil
}

// PathTo rebuilds the path source→…→target from a predecessor map returned
// with WithReturnPath. It returns nil when target was not reached.
func PathTo(prev map[string]string, dist map[string]float64, target string) []string {
	d, ok := dist[target]
	if !ok || math.IsInf(d, 1) {
		return nil
	}
	var rev []string
	for v := target; v != ""; v = prev[v] {
		rev = append(rev, v)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// Farthest returns the reached vertex with the largest finite distance,
// breaking ties by the smaller ID. ok is false when dist is empty.
func Farthest(dist map[string]float64) (id string, d float64, ok bool) {
	for v, dv := range dist {
		if math.IsInf(dv, 1) {
			continue
		}
		if !ok || dv > d || (dv == d && v < id) {
			id, d, ok = v, dv, true
		}
	}

	return id, d, ok
}
