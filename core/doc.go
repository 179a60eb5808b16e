// SPDX-License-Identifier: MIT
//
// Package core provides the thread-safe in-memory Graph that every lvsphere
// construction ends up in.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are float64 so that
//     heat-kernel weights exp(-d²/σ) are stored without quantisation
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Vertices carry a Metadata map. Sphere graphs store the pixel index, the 3D
// coordinates and the (colatitude, longitude) pair there, so downstream code can
// recover the sampling geometry from the graph alone.
//
// Core methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                          // O(1)
//	HasVertex(id string) bool                           // O(1)
//	SetMetadata(id, key string, value interface{}) error // O(1)
//	Metadata(id, key string) (interface{}, bool)        // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	HasEdge(from, to string) bool                       // O(1)
//	Weight(from, to string) (float64, error)            // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)               // O(d·log d)
//	NeighborIDs(id string) ([]string, error)            // O(d·log d)
//	Vertices() []string                                 // O(V·log V)
//	Edges() []*Edge                                     // O(E·log E)
//	Degree(id string) (int, error)                      // O(d)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph, or NaN/Inf weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge between the same endpoints
package core
