// SPDX-License-Identifier: MIT
//
// Package mst computes minimum spanning trees of undirected core.Graph
// values with Kruskal's or Prim's algorithm.
//
// Edge cost comes from a LengthFunc; nil means Edge.Weight. On sphere graphs
// pass g.EdgeLength so the tree is the Euclidean minimum spanning tree
// restricted to the k-NN edges, and its total length summarises how densely
// the sphere is covered.
//
// Determinism: Kruskal sorts by (length, Edge.ID); Prim breaks heap ties by
// Edge.ID. Both return edges in the order they joined the tree.
//
// Errors:
//
//   - ErrInvalidGraph   nil, unweighted without a length function, or directed.
//   - ErrEmptyRoot      Prim called without a root.
//   - ErrDisconnected   the graph has more than one component.
//   - core.ErrVertexNotFound  the Prim root is not a vertex.
//
// Complexity: O(E log E) time, O(V + E) memory.
package mst
