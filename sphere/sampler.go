// SPDX-License-Identifier: MIT
// Package: lvsphere/sphere
//
// sampler.go — per-pixel coordinates and angles from a pixelization scheme.
//
// Contract:
//   • Results are index-aligned with pixel indices 0..N-1 of the requested
//     ordering.
//   • Scheme errors are returned as is, without wrapping.

package sphere

import "github.com/katalvlaran/lvsphere/pixelization"

// PointCloud is an N×3 array of unit vectors stored as float32.
type PointCloud [][3]float32

// Angle is the angular position of one pixel centre.
type Angle struct {
	// Colatitude θ ∈ [0, π], zero at the north pole.
	Colatitude float64

	// Longitude φ as returned by the scheme, in [0, 2π).
	Longitude float64
}

// Sampler queries a pixelization scheme for a whole resolution at once.
// It holds no mutable state and is safe for concurrent use.
type Sampler struct {
	scheme pixelization.Scheme
}

// NewSampler returns a Sampler over s. Panics on nil.
func NewSampler(s pixelization.Scheme) *Sampler {
	if s == nil {
		panic("sphere: NewSampler(nil)")
	}
	return &Sampler{scheme: s}
}

// PixelCount returns the number of pixels at nside.
func (s *Sampler) PixelCount(nside int) (int, error) {
	return s.scheme.NPix(nside)
}

// SamplePoints returns the unit vector of every pixel centre in ord order.
//
// Complexity: O(N) scheme calls.
func (s *Sampler) SamplePoints(nside int, ord pixelization.Ordering) (PointCloud, error) {
	n, err := s.scheme.NPix(nside)
	if err != nil {
		return nil, err
	}
	pts := make(PointCloud, n)
	for i := range pts {
		v, err := s.scheme.Pix2Vec(nside, i, ord)
		if err != nil {
			return nil, err
		}
		pts[i] = [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
	}

	return pts, nil
}

// SampleAngles returns (colatitude, longitude) of every pixel centre in ord
// order. Pass the same ord as to SamplePoints to keep both aligned.
//
// Complexity: O(N) scheme calls.
func (s *Sampler) SampleAngles(nside int, ord pixelization.Ordering) ([]Angle, error) {
	n, err := s.scheme.NPix(nside)
	if err != nil {
		return nil, err
	}
	out := make([]Angle, n)
	for i := range out {
		theta, phi, err := s.scheme.Pix2Ang(nside, i, ord)
		if err != nil {
			return nil, err
		}
		out[i] = Angle{Colatitude: theta, Longitude: phi}
	}

	return out, nil
}
