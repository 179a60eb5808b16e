// SPDX-License-Identifier: MIT
// Package: lvsphere/nngraph
//
// build.go — Build: point cloud → k-NN heat-kernel graph.
//
// Pipeline:
//   1. Validate (N ≥ 2, 1 ≤ k < N, σ > 0, finite coordinates).
//   2. Optional centering / rescaling (WithCenter, WithRescale).
//   3. Exact k-NN on a kd-tree, self excluded.
//   4. K[i][j] = exp(-d²/σ) for the k neighbours j of i.
//   5. W = symmetrize(K).
//   6. Mirror W into a *core.Graph with vertex IDs "0".."N-1".

package nngraph

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvsphere/core"
)

// MetaCoords is the vertex metadata key holding the [3]float32 coordinates.
const MetaCoords = "coords"

// Plotting carries rendering hints attached to a graph.
type Plotting struct {
	// VertexSize is the marker size used when drawing vertices.
	VertexSize float64

	// Limits holds the [min, max] view range for x, y and z.
	Limits [3][2]float64
}

// Graph is the result of Build.
type Graph struct {
	// Coords are the input points in vertex order (before any centering or
	// rescaling).
	Coords [][3]float32

	// KNN is the directed k-NN weight matrix; row i holds exactly K entries.
	KNN *Sparse

	// W is the final (by default symmetric) weight matrix.
	W *Sparse

	// Core mirrors W as a core.Graph. It is undirected unless the
	// symmetrization mode is None.
	Core *core.Graph

	// K is the neighbour count and KernelWidth the σ of exp(-d²/σ).
	K           int
	KernelWidth float64

	// Symmetrize records the mode W was built with.
	Symmetrize Symmetrize

	// Plotting is passed through unchanged.
	Plotting Plotting
}

// N returns the number of vertices.
func (g *Graph) N() int { return len(g.Coords) }

// Degree returns the weighted degree Σ_j W[i][j].
func (g *Graph) Degree(i int) float64 { return g.W.RowSum(i) }

// IsSymmetric reports whether W equals its transpose exactly.
func (g *Graph) IsSymmetric() bool {
	sym := true
	g.W.Do(func(i, j int, v float64) {
		if sym && (!g.W.Has(j, i) || g.W.At(j, i) != v) {
			sym = false
		}
	})

	return sym
}

// EdgeLength returns the Euclidean distance between the Coords of the
// endpoints of e. Endpoints that are not vertex indices of g give +Inf.
// It has the shape of dijkstra.LengthFunc.
func (g *Graph) EdgeLength(e *core.Edge) float64 {
	i, errFrom := strconv.Atoi(e.From)
	j, errTo := strconv.Atoi(e.To)
	n := len(g.Coords)
	if errFrom != nil || errTo != nil || i < 0 || j < 0 || i >= n || j >= n {
		return math.Inf(1)
	}
	var s float64
	for a := 0; a < 3; a++ {
		d := float64(g.Coords[i][a]) - float64(g.Coords[j][a])
		s += d * d
	}

	return math.Sqrt(s)
}

// Build assembles a k-nearest-neighbour graph over points with Gaussian
// (heat-kernel) weights exp(-d²/kernelWidth).
//
// Errors:
//   - ErrTooFewPoints: len(points) < 2.
//   - ErrBadNeighborCount: k < 1 or k ≥ len(points).
//   - ErrBadKernelWidth: kernelWidth ≤ 0, NaN or ±Inf.
//   - ErrBadCoordinate: a coordinate is NaN or ±Inf.
//
// Complexity: O(N·k·log N) time, O(N·k) space.
func Build(points [][3]float32, k int, kernelWidth float64, plotting Plotting, opts ...Option) (*Graph, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("Build: %d points: %w", n, ErrTooFewPoints)
	}
	if k < 1 || k >= n {
		return nil, fmt.Errorf("Build: k=%d with %d points: %w", k, n, ErrBadNeighborCount)
	}
	if !(kernelWidth > 0) || math.IsInf(kernelWidth, 1) {
		return nil, fmt.Errorf("Build: kernel width %v: %w", kernelWidth, ErrBadKernelWidth)
	}
	cfg := newConfig(opts)

	xs := make([][3]float64, n)
	for i, p := range points {
		for d := range p {
			v := float64(p[d])
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("Build: point %d: %w", i, ErrBadCoordinate)
			}
			xs[i][d] = v
		}
	}
	if cfg.center {
		center(xs)
	}
	if cfg.rescale {
		rescale(xs)
	}

	es := make([]entry, 0, n*k)
	for i, row := range knn(xs, k) {
		for _, nb := range row {
			es = append(es, entry{i: i, j: nb.idx, v: math.Exp(-nb.dist / kernelWidth)})
		}
	}
	// Distinct neighbours per row, so merge is never called here.
	knnMat := newSparse(n, n, es, func(a, _ float64) float64 { return a })

	g := &Graph{
		Coords:      append([][3]float32(nil), points...),
		KNN:         knnMat,
		W:           symmetrize(knnMat, cfg.symmetrize),
		K:           k,
		KernelWidth: kernelWidth,
		Symmetrize:  cfg.symmetrize,
		Plotting:    plotting,
	}
	cg, err := toCore(g)
	if err != nil {
		return nil, err
	}
	g.Core = cg

	return g, nil
}

// symmetrize derives W from the directed k-NN matrix.
func symmetrize(k *Sparse, mode Symmetrize) *Sparse {
	n, _ := k.Dims()
	switch mode {
	case Maximum:
		es := append(k.triplets(false), k.triplets(true)...)
		return newSparse(n, n, es, math.Max)
	case Fill:
		es := k.triplets(false)
		for _, e := range k.triplets(true) {
			if !k.Has(e.i, e.j) {
				es = append(es, e)
			}
		}
		return newSparse(n, n, es, func(a, _ float64) float64 { return a })
	case None:
		return k
	default: // Average
		es := append(k.triplets(false), k.triplets(true)...)
		for i := range es {
			es[i].v /= 2
		}
		return newSparse(n, n, es, func(a, b float64) float64 { return a + b })
	}
}

// toCore mirrors W into a weighted core.Graph with vertex metadata.
func toCore(g *Graph) (*core.Graph, error) {
	directed := g.Symmetrize == None
	cg := core.NewGraph(core.WithWeighted(), core.WithDirected(directed))
	for i, p := range g.Coords {
		id := strconv.Itoa(i)
		if err := cg.AddVertex(id); err != nil {
			return nil, fmt.Errorf("Build: vertex %s: %w", id, err)
		}
		if err := cg.SetMetadata(id, MetaCoords, p); err != nil {
			return nil, fmt.Errorf("Build: vertex %s: %w", id, err)
		}
	}

	var err error
	g.W.Do(func(i, j int, v float64) {
		if err != nil || (!directed && j <= i) {
			return
		}
		if _, e := cg.AddEdge(strconv.Itoa(i), strconv.Itoa(j), v); e != nil {
			err = fmt.Errorf("Build: edge %d-%d: %w", i, j, e)
		}
	})
	if err != nil {
		return nil, err
	}

	return cg, nil
}

// center subtracts the per-axis mean.
func center(xs [][3]float64) {
	col := make([]float64, len(xs))
	for d := 0; d < 3; d++ {
		for i := range xs {
			col[i] = xs[i][d]
		}
		m := stat.Mean(col, nil)
		for i := range xs {
			xs[i][d] -= m
		}
	}
}

// rescale maps the cloud so that half its bounding-box diagonal becomes
// N^(1/3)/10 (d = 3). A degenerate cloud (all points equal) is left as is.
func rescale(xs [][3]float64) {
	lo := xs[0]
	hi := xs[0]
	for _, x := range xs[1:] {
		for d := range x {
			lo[d] = math.Min(lo[d], x[d])
			hi[d] = math.Max(hi[d], x[d])
		}
	}
	diag := []float64{hi[0] - lo[0], hi[1] - lo[1], hi[2] - lo[2]}
	radius := floats.Norm(diag, 2) / 2
	if radius == 0 {
		return
	}
	scale := math.Pow(float64(len(xs)), 1.0/3) / 10 / radius
	for i := range xs {
		for d := range xs[i] {
			xs[i][d] *= scale
		}
	}
}
