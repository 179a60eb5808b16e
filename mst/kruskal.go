// SPDX-License-Identifier: MIT
// Package: lvsphere/mst
//
// kruskal.go — Kruskal with union-find (path halving, union by rank).

package mst

import (
	"sort"

	"github.com/katalvlaran/lvsphere/core"
)

// Kruskal returns the MST edges and their total length.
// A single-vertex graph has an empty tree; an empty graph is disconnected.
func Kruskal(g *core.Graph, length LengthFunc) ([]core.Edge, float64, error) {
	length, err := lengthOf(g, length)
	if err != nil {
		return nil, 0, err
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	type costed struct {
		e *core.Edge
		l float64
	}
	all := g.Edges()
	edges := make([]costed, 0, len(all))
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, costed{e, length(e)})
		}
	}
	// Edges() is sorted by ID, so a stable sort keeps ID order among equal lengths.
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].l < edges[j].l })

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	n := len(vertices)
	tree := make([]core.Edge, 0, n-1)
	var total float64
	for _, c := range edges {
		ru, rv := find(c.e.From), find(c.e.To)
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		tree = append(tree, *c.e)
		total += c.l
		if len(tree) == n-1 {
			break
		}
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
