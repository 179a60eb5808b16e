// SPDX-License-Identifier: MIT
//
// Package render draws sphere graphs.
//
//   - Scatter3D writes a self-contained HTML page (go-echarts) with the
//     vertices as a rotatable 3D scatter plus three orthographic projections.
//     Marker size and axis ranges come from nngraph.Plotting.
//   - Spy writes a PNG (gonum/plot) marking every non-zero of a matrix, the
//     usual way to eyeball the sparsity pattern of a weight matrix; NESTED
//     orderings show visible block structure, RING orderings banded structure.
package render
