// SPDX-License-Identifier: MIT
//
// Package dijkstra computes single-source shortest paths over a core.Graph
// with non-negative edge lengths.
//
// On sphere graphs the stored edge weight is a similarity (exp(-d²/σ)), not a
// length, so callers usually supply WithLength(g.EdgeLength) to measure paths
// by the chord distance between neighbouring vertices. The resulting
// distances approximate great-circle distances from above.
//
// Options:
//
//   - Source(id)             start vertex (required).
//   - WithLength(fn)         edge length function; default is Edge.Weight.
//   - WithReturnPath()       also return the predecessor map.
//   - WithMaxDistance(d)     do not settle vertices farther than d (d ≥ 0).
//
// Errors (sentinel):
//
//   - ErrEmptySource      Source was not set.
//   - ErrNilGraph         nil graph pointer.
//   - ErrUnweightedGraph  unweighted graph and no length function.
//   - ErrVertexNotFound   Source is not a vertex of the graph.
//   - ErrNegativeWeight   an edge length is negative or NaN.
//
// Determinism: the priority queue breaks distance ties by vertex ID, so the
// predecessor map is reproducible.
//
// Complexity: O((V + E) log V) time, O(V + E) memory (lazy decrease-key).
package dijkstra
