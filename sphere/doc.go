// SPDX-License-Identifier: MIT
//
// Package sphere samples the unit sphere with an equal-area pixelization and
// turns the samples into a k-nearest-neighbour heat-kernel graph.
//
// Two pieces are composed linearly:
//
//  1. Sampler (and the package-level SelectParameters / PlottingMetadata):
//     given a resolution nside and an ordering, it asks a
//     pixelization.Scheme for the pixel count, the unit vector and the
//     (colatitude, longitude) of every pixel, and looks up the tuned
//     construction parameters (neighbour count k, kernel width).
//  2. nngraph.Build: the generic assembler that searches neighbours and
//     computes weights exp(-d²/kernelWidth).
//
// NewHealpix wires both together:
//
//	g, err := sphere.NewHealpix(sphere.WithNside(8))
//	// g.N() == 768, g.Parameters == {NeighborCount: 8, KernelWidth: 0.025}
//
// Resolution. nside is not validated here. The scheme rejects values it
// cannot pixelize (the HEALPix scheme requires a power of two in NESTED
// ordering) and SelectParameters rejects every nside outside
// {1, 2, 4, 8, 16, 32} with a *ParameterLookupError. There is no
// extrapolation beyond the table; the default nside 1024 therefore fails
// unless the caller picks a tabulated value.
//
// Angles. Colatitude θ ∈ [0, π] is measured from the north pole (not
// geographic latitude) and longitude φ ∈ [0, 2π) is the scheme's raw value,
// not remapped to [-π, π]. Both are stored as vertex metadata only.
//
// Errors:
//   - pixelization.ErrMissingDependency (*pixelization.MissingDependencyError):
//     the scheme is not registered; reported before any other work.
//   - ErrParameterLookup (*ParameterLookupError): no tuned kernel width.
//   - Errors from the scheme itself are returned unchanged.
package sphere
