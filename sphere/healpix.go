// SPDX-License-Identifier: MIT
// Package: lvsphere/sphere
//
// healpix.go — NewHealpix, the public constructor.
//
// Steps (each failure returns immediately, nothing is partially built):
//   1. Resolve the scheme (WithScheme, else registry lookup by name).
//   2. PixelCount(nside)            — scheme error returned unchanged.
//   3. SelectParameters(nside)      — *ParameterLookupError.
//   4. SamplePoints / SampleAngles  — same ordering for both.
//   5. nngraph.Build(points, k, kernelWidth, PlottingMetadata(), opts...).
//   6. Attach colatitude, longitude and pixel metadata to every vertex.

package sphere

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvsphere/core"
	"github.com/katalvlaran/lvsphere/nngraph"
	"github.com/katalvlaran/lvsphere/pixelization"
)

// Vertex metadata keys set by NewHealpix.
const (
	MetaColatitude = "colatitude"
	MetaLongitude  = "longitude"
	MetaPixel      = "pixel"
)

// Healpix is a k-NN graph over the pixel centres of one HEALPix resolution.
// Vertex i is pixel i in Ordering.
type Healpix struct {
	*nngraph.Graph

	// Nside is the resolution the graph was sampled at.
	Nside int

	// Ordering is the pixel ordering of Coords and Angles.
	Ordering pixelization.Ordering

	// Angles is index-aligned with Coords.
	Angles []Angle

	// Parameters are the tuned (k, kernel width) used for Build.
	Parameters Parameters
}

// NewHealpix samples the sphere and builds the graph.
//
// Errors:
//   - *pixelization.MissingDependencyError when the named scheme is not
//     registered, regardless of nside.
//   - the scheme's own error, unchanged, when it rejects nside.
//   - *ParameterLookupError when nside has no tuned kernel width.
//   - nngraph errors, wrapped.
//
// Complexity: O(N·k·log N) with N = 12·nside² for HEALPix.
func NewHealpix(opts ...Option) (*Healpix, error) {
	cfg := newConfig(opts)

	scheme := cfg.scheme
	if scheme == nil {
		s, err := pixelization.Lookup(cfg.schemeName)
		if err != nil {
			return nil, err
		}
		scheme = s
	}
	sampler := NewSampler(scheme)

	if _, err := sampler.PixelCount(cfg.nside); err != nil {
		return nil, err
	}
	params, err := SelectParameters(cfg.nside)
	if err != nil {
		return nil, err
	}
	pts, err := sampler.SamplePoints(cfg.nside, cfg.ordering)
	if err != nil {
		return nil, err
	}
	angles, err := sampler.SampleAngles(cfg.nside, cfg.ordering)
	if err != nil {
		return nil, err
	}

	g, err := nngraph.Build(pts, params.NeighborCount, params.KernelWidth, PlottingMetadata(), cfg.graphOpts...)
	if err != nil {
		return nil, fmt.Errorf("NewHealpix: nside=%d: %w", cfg.nside, err)
	}
	for i, a := range angles {
		if err := setVertexMetadata(g.Core, i, a); err != nil {
			return nil, err
		}
	}

	return &Healpix{
		Graph:      g,
		Nside:      cfg.nside,
		Ordering:   cfg.ordering,
		Angles:     angles,
		Parameters: params,
	}, nil
}

// setVertexMetadata records the angles and pixel index of vertex i.
func setVertexMetadata(g *core.Graph, i int, a Angle) error {
	id := strconv.Itoa(i)
	if err := g.SetMetadata(id, MetaColatitude, a.Colatitude); err != nil {
		return fmt.Errorf("NewHealpix: vertex %s: %s: %w", id, MetaColatitude, err)
	}
	if err := g.SetMetadata(id, MetaLongitude, a.Longitude); err != nil {
		return fmt.Errorf("NewHealpix: vertex %s: %s: %w", id, MetaLongitude, err)
	}
	if err := g.SetMetadata(id, MetaPixel, i); err != nil {
		return fmt.Errorf("NewHealpix: vertex %s: %s: %w", id, MetaPixel, err)
	}

	return nil
}
