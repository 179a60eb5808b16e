// SPDX-License-Identifier: MIT
// Package: lvsphere/bfs
//
// components.go — weakly connected components.

package bfs

import (
	"sort"

	"github.com/katalvlaran/lvsphere/core"
)

// Components returns the weakly connected components of g. Edge direction
// is ignored. Each component is sorted by vertex ID and the components are
// ordered by their first ID. A nil graph has no components.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	adj := make(map[string][]string)
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	seen := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		seen[v] = true
		comp := []string{v}
		for head := 0; head < len(comp); head++ {
			for _, nb := range adj[comp[head]] {
				if !seen[nb] {
					seen[nb] = true
					comp = append(comp, nb)
				}
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps
}
