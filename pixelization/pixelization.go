// SPDX-License-Identifier: MIT
// Package: lvsphere/pixelization
//
// pixelization.go — the capability interface every spherical pixelization
// scheme exposes to the sphere samplers, plus the pixel Ordering type.
//
// Contract (strict):
//   • A Scheme answers three questions keyed by (nside, pixel index, ordering):
//     how many pixels, where is the pixel centre (unit vector), and at which
//     (colatitude, longitude) it sits.
//   • Schemes validate their own inputs and return their own errors; callers
//     propagate those errors unchanged.
//   • Implementations must be safe for concurrent use (they are stateless in
//     practice).

package pixelization

import "fmt"

// Ordering selects one of the two linear indexings of the same set of pixels.
type Ordering int

const (
	// Nested orders pixels hierarchically: the four children of pixel p at
	// nside are 4p..4p+3 at 2·nside. This is the default ordering.
	Nested Ordering = iota
	// Ring orders pixels along iso-latitude rings from north to south.
	Ring
)

// String returns "nested" or "ring".
func (o Ordering) String() string {
	switch o {
	case Nested:
		return "nested"
	case Ring:
		return "ring"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// ParseOrdering maps "nested"/"nest" and "ring" to an Ordering.
func ParseOrdering(s string) (Ordering, error) {
	switch s {
	case "nested", "nest", "NESTED":
		return Nested, nil
	case "ring", "RING":
		return Ring, nil
	default:
		return Nested, fmt.Errorf("pixelization: unknown ordering %q: %w", s, ErrUnknownOrdering)
	}
}

// Scheme is the capability set consumed by sphere samplers.
//
// Complexity expectations: every method is O(1) per call.
type Scheme interface {
	// NPix returns the total number of pixels for resolution nside.
	NPix(nside int) (int, error)

	// Pix2Vec returns the unit direction vector (x, y, z) of pixel ipix.
	Pix2Vec(nside, ipix int, ord Ordering) ([3]float64, error)

	// Pix2Ang returns the colatitude theta ∈ [0, π] (zero at the north pole)
	// and the longitude phi ∈ [0, 2π) of pixel ipix.
	Pix2Ang(nside, ipix int, ord Ordering) (theta, phi float64, err error)
}
