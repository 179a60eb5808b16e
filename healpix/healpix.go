// SPDX-License-Identifier: MIT
// Package: lvsphere/healpix
//
// healpix.go — resolution validation, pixel counts and the shared geometry
// tables of the 12 base faces.

package healpix

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsphere/pixelization"
)

// MaxNside is the largest resolution supported with 64-bit pixel indices.
const MaxNside = 1 << 29

// Sentinel errors. Wrapped with method context via %w.
var (
	// ErrInvalidNside reports nside ∉ [1, MaxNside], or a non power of two
	// nside used with NESTED ordering.
	ErrInvalidNside = errors.New("healpix: invalid nside")

	// ErrInvalidPixel reports a pixel index outside [0, 12·nside²).
	ErrInvalidPixel = errors.New("healpix: invalid pixel index")

	// ErrInvalidOrdering reports an Ordering value outside {Nested, Ring}.
	ErrInvalidOrdering = errors.New("healpix: invalid ordering")
)

// Base-face tables: jrll is the ring index of the southernmost corner of each
// face in units of nside, jpll the longitude index of that corner in units of π/4.
var (
	jrll = [12]int{2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4}
	jpll = [12]int{1, 3, 5, 7, 0, 2, 4, 6, 1, 3, 5, 7}
)

// IsNsideValid reports whether nside is usable with the given ordering.
// RING accepts any nside in [1, MaxNside]; NESTED additionally requires a power of two.
func IsNsideValid(nside int, ord pixelization.Ordering) bool {
	if nside < 1 || nside > MaxNside {
		return false
	}
	if ord == pixelization.Nested {
		return nside&(nside-1) == 0
	}

	return true
}

// NSide2NPix returns the number of pixels 12·nside².
//
// Errors:
//   - ErrInvalidNside: nside ∉ [1, MaxNside].
//
// Complexity: O(1).
func NSide2NPix(nside int) (int, error) {
	if nside < 1 || nside > MaxNside {
		return 0, fmt.Errorf("NSide2NPix: nside=%d: %w", nside, ErrInvalidNside)
	}

	return 12 * nside * nside, nil
}

// NSide2Order returns log2(nside) for a power-of-two nside.
func NSide2Order(nside int) (int, error) {
	if !IsNsideValid(nside, pixelization.Nested) {
		return 0, fmt.Errorf("NSide2Order: nside=%d is not a power of two: %w", nside, ErrInvalidNside)
	}
	order := 0
	for (1 << order) < nside {
		order++
	}

	return order, nil
}

// PixelArea returns the solid angle of one pixel, 4π/NPix steradians.
func PixelArea(nside int) (float64, error) {
	npix, err := NSide2NPix(nside)
	if err != nil {
		return 0, err
	}

	return 4 * math.Pi / float64(npix), nil
}

// check validates (nside, ipix, ord) and returns npix.
func check(method string, nside, ipix int, ord pixelization.Ordering) (int, error) {
	if ord != pixelization.Nested && ord != pixelization.Ring {
		return 0, fmt.Errorf("%s: %v: %w", method, ord, ErrInvalidOrdering)
	}
	if !IsNsideValid(nside, ord) {
		return 0, fmt.Errorf("%s: nside=%d with %v ordering: %w", method, nside, ord, ErrInvalidNside)
	}
	npix := 12 * nside * nside
	if ipix < 0 || ipix >= npix {
		return 0, fmt.Errorf("%s: ipix=%d not in [0,%d): %w", method, ipix, npix, ErrInvalidPixel)
	}

	return npix, nil
}

// isqrt returns ⌊√v⌋ for v ≥ 0, exact for all 64-bit inputs we produce.
func isqrt(v int) int {
	r := int(math.Sqrt(float64(v) + 0.5))
	for r*r > v {
		r--
	}
	for (r+1)*(r+1) <= v {
		r++
	}

	return r
}
