// SPDX-License-Identifier: MIT
//
// Package nngraph builds k-nearest-neighbour graphs over 3D point clouds.
//
// Given N points, a neighbour count k and a kernel width σ, Build connects
// every point to its k nearest other points (exact search on a gonum
// kd-tree) and weights each connection with the heat kernel
//
//	w(i, j) = exp(-‖xᵢ - xⱼ‖² / σ)
//
// The directed k-NN matrix is kept as Graph.KNN; the final weight matrix
// Graph.W is obtained by symmetrization (Average by default, see
// WithSymmetrize). Both are *Sparse CSR matrices implementing gonum's
// mat.Matrix. Graph.Core mirrors W as a *core.Graph so traversal packages
// (bfs) and the store can consume it.
//
// Plotting metadata is opaque to this package and passed through unchanged.
//
// Errors are sentinels (ErrTooFewPoints, ErrBadNeighborCount,
// ErrBadKernelWidth, ErrBadCoordinate) wrapped with context; use errors.Is.
package nngraph
