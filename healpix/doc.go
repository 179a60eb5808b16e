// SPDX-License-Identifier: MIT
//
// Package healpix implements the HEALPix equal-area pixelization of the sphere
// (Górski et al., "HEALPix: A Framework for High-Resolution Discretization and
// Fast Analysis of Data Distributed on the Sphere", ApJ 622, 2005).
//
// The sphere is split into 12 base quadrilaterals; each is subdivided into
// nside×nside pixels of identical area, giving NPix = 12·nside² pixels whose
// centres lie on 4·nside-1 iso-latitude rings.
//
// Two orderings index the same pixels:
//
//	RING   – pixels numbered ring by ring from the north pole, west to east.
//	NESTED – pixels numbered along the quad-tree of each base face;
//	         requires nside to be a power of two.
//
// API surface:
//
//	NSide2NPix(nside) (int, error)                 // 12·nside²
//	Pix2Vec(nside, ipix, ord) ([3]float64, error)  // unit vector of the pixel centre
//	Pix2Ang(nside, ipix, ord) (theta, phi, error)  // colatitude θ∈[0,π], longitude φ∈[0,2π)
//	Nest2Ring / Ring2Nest                          // index conversion, power-of-two nside
//	Scheme{}                                       // pixelization.Scheme adapter
//
// Importing the package registers Scheme{} under the name "healpix" in the
// pixelization registry, which is what sphere.NewHealpix resolves by default:
//
//	import _ "github.com/katalvlaran/lvsphere/healpix"
//
// Complexity: every per-pixel call is O(log nside) at worst (bit interleaving
// for NESTED) and allocation-free.
package healpix
