// SPDX-License-Identifier: MIT
//
// Package bfs provides breadth-first search and connected components over a
// core.Graph.
//
// Edge weights are ignored: the search measures hops, which is what
// connectivity and layering questions on k-NN sphere graphs need. Directed
// edges are followed only From→To by BFS; Components treats every edge as
// undirected (weak connectivity).
//
// Determinism: core.NeighborIDs returns neighbours sorted by ID and BFS
// enqueues them in that order, so Order is reproducible. Components lists
// the vertices of each component in ID order and the components by their
// smallest ID.
//
// Usage:
//
//	res, err := bfs.BFS(g, "0", bfs.WithMaxDepth(3))
//	comps := bfs.Components(g) // len(comps) == 1 for a connected graph
//
// Errors:
//
//   - ErrGraphNil             nil graph pointer.
//   - ErrStartVertexNotFound  unknown start vertex.
//   - ErrOptionViolation      invalid option (negative MaxDepth).
//   - ErrNeighbors            neighbour lookup failed.
//   - context errors and wrapped OnVisit hook errors.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
