// SPDX-License-Identifier: MIT
// Package: lvsphere/sphere
//
// params.go — resolution-dependent construction parameters and plotting
// metadata.

package sphere

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsphere/nngraph"
)

// ErrParameterLookup is matched (errors.Is) by every *ParameterLookupError.
var ErrParameterLookup = errors.New("sphere: no tuned kernel width known for this resolution")

// ParameterLookupError reports an nside outside the tuned table.
type ParameterLookupError struct {
	Nside int
}

// Error implements error.
func (e *ParameterLookupError) Error() string {
	return fmt.Sprintf("SelectParameters: nside=%d: %v (known: 1, 2, 4, 8, 16, 32)", e.Nside, ErrParameterLookup)
}

// Is lets errors.Is(err, ErrParameterLookup) succeed.
func (e *ParameterLookupError) Is(target error) bool { return target == ErrParameterLookup }

// Parameters are the graph construction parameters for one resolution.
type Parameters struct {
	// NeighborCount is k of the k-NN search.
	NeighborCount int

	// KernelWidth is σ in exp(-d²/σ).
	KernelWidth float64
}

const (
	// kernelScale multiplies the tabulated standard deviation.
	kernelScale = 2

	coarsestNeighbors = 6
	defaultNeighbors  = 8

	// VertexSize is the marker size in PlottingMetadata.
	VertexSize = 80
)

// sigma returns the tuned standard deviation for an exact nside.
func sigma(nside int) (float64, bool) {
	switch nside {
	case 1:
		return 0.5, true
	case 2:
		return 0.15, true
	case 4:
		return 0.05, true
	case 8:
		return 0.0125, true
	case 16:
		return 0.005, true
	case 32:
		return 0.001, true
	default:
		return 0, false
	}
}

// SelectParameters returns k = 6 for nside 1 and 8 otherwise, and a kernel
// width of 2·σ(nside).
//
// Errors:
//   - *ParameterLookupError (ErrParameterLookup) for any nside that is not
//     exactly one of 1, 2, 4, 8, 16, 32.
//
// Complexity: O(1).
func SelectParameters(nside int) (Parameters, error) {
	s, ok := sigma(nside)
	if !ok {
		return Parameters{}, &ParameterLookupError{Nside: nside}
	}
	k := defaultNeighbors
	if nside == 1 {
		k = coarsestNeighbors
	}

	return Parameters{NeighborCount: k, KernelWidth: kernelScale * s}, nil
}

// PlottingMetadata returns the resolution-independent rendering hints: all
// points lie on the unit sphere, so the view is the [-1, 1] cube.
func PlottingMetadata() nngraph.Plotting {
	return nngraph.Plotting{
		VertexSize: VertexSize,
		Limits:     [3][2]float64{{-1, 1}, {-1, 1}, {-1, 1}},
	}
}
