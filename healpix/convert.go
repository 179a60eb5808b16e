// SPDX-License-Identifier: MIT
// Package: lvsphere/healpix
//
// convert.go — conversions between RING and NESTED indices through the
// (face, x, y) representation.

package healpix

import (
	"fmt"

	"github.com/katalvlaran/lvsphere/pixelization"
)

// Nest2Ring converts a NESTED index to the RING index of the same pixel.
//
// Errors:
//   - ErrInvalidNside: nside is not a power of two in [1, MaxNside].
//   - ErrInvalidPixel: ipix out of range.
//
// Complexity: O(log nside).
func Nest2Ring(nside, ipix int) (int, error) {
	if _, err := check("Nest2Ring", nside, ipix, pixelization.Nested); err != nil {
		return 0, err
	}
	face, ix, iy := nest2xyf(nside, ipix)

	return xyf2ring(nside, ix, iy, face), nil
}

// Ring2Nest converts a RING index to the NESTED index of the same pixel.
//
// Errors:
//   - ErrInvalidNside: nside is not a power of two in [1, MaxNside].
//   - ErrInvalidPixel: ipix out of range.
//
// Complexity: O(log nside).
func Ring2Nest(nside, ipix int) (int, error) {
	if !IsNsideValid(nside, pixelization.Nested) {
		return 0, fmt.Errorf("Ring2Nest: nside=%d: %w", nside, ErrInvalidNside)
	}
	if _, err := check("Ring2Nest", nside, ipix, pixelization.Ring); err != nil {
		return 0, err
	}
	face, ix, iy := ring2xyf(nside, ipix)

	return xyf2nest(nside, ix, iy, face), nil
}

// nest2xyf splits a NESTED index into face number and in-face coordinates.
func nest2xyf(nside, ipix int) (face, ix, iy int) {
	npface := nside * nside
	face = ipix / npface
	p := ipix & (npface - 1)

	return face, compressBits(p), compressBits(p >> 1)
}

// xyf2nest is the inverse of nest2xyf.
func xyf2nest(nside, ix, iy, face int) int {
	return face*nside*nside + spreadBits(ix) + spreadBits(iy)<<1
}

// xyf2ring maps in-face coordinates to a RING index.
func xyf2ring(nside, ix, iy, face int) int {
	nl4 := 4 * nside
	ncap := 2 * nside * (nside - 1)
	npix := 12 * nside * nside
	jr := jrll[face]*nside - ix - iy - 1

	var nr, nBefore, kshift int
	switch {
	case jr < nside:
		nr = jr
		nBefore = 2 * nr * (nr - 1)
	case jr > 3*nside:
		nr = nl4 - jr
		nBefore = npix - 2*(nr+1)*nr
	default:
		nr = nside
		nBefore = ncap + (jr-nside)*nl4
		kshift = (jr - nside) & 1
	}

	jp := (jpll[face]*nr + ix - iy + 1 + kshift) / 2
	if jp > nl4 {
		jp -= nl4
	} else if jp < 1 {
		jp += nl4
	}

	return nBefore + jp - 1
}

// ring2xyf maps a RING index to face number and in-face coordinates.
func ring2xyf(nside, ipix int) (face, ix, iy int) {
	nl2 := 2 * nside
	ncap := 2 * nside * (nside - 1)
	npix := 12 * nside * nside

	var iring, iphi, kshift, nr int
	switch {
	case ipix < ncap: // north polar cap
		iring = (1 + isqrt(1+2*ipix)) >> 1
		iphi = ipix + 1 - 2*iring*(iring-1)
		nr = iring
		face = (iphi - 1) / nr
	case ipix < npix-ncap: // equatorial belt
		ip := ipix - ncap
		tmp := ip / (4 * nside)
		iring = tmp + nside
		iphi = ip - tmp*4*nside + 1
		kshift = (iring + nside) & 1
		nr = nside
		ire := tmp + 1
		irm := nl2 + 1 - tmp
		ifm := (iphi - ire>>1 + nside - 1) / nside
		ifp := (iphi - irm>>1 + nside - 1) / nside
		switch {
		case ifp == ifm:
			face = ifp | 4
		case ifp < ifm:
			face = ifp
		default:
			face = ifm + 8
		}
	default: // south polar cap
		ip := npix - ipix
		iring = (1 + isqrt(2*ip-1)) >> 1
		iphi = 4*iring + 1 - (ip - 2*iring*(iring-1))
		nr = iring
		iring = 2*nl2 - iring
		face = 8 + (iphi-1)/nr
	}

	irt := iring - jrll[face]*nside + 1
	ipt := 2*iphi - jpll[face]*nr - kshift - 1
	if ipt >= nl2 {
		ipt -= 8 * nside
	}

	return face, (ipt - irt) >> 1, (-ipt - irt) >> 1
}

// compressBits gathers the even-position bits of v into a dense integer.
func compressBits(v int) int {
	r := 0
	for i := 0; v>>(2*i) != 0; i++ {
		r |= ((v >> (2 * i)) & 1) << i
	}

	return r
}

// spreadBits is the inverse of compressBits: bit i of v moves to bit 2i.
func spreadBits(v int) int {
	r := 0
	for i := 0; v>>i != 0; i++ {
		r |= ((v >> i) & 1) << (2 * i)
	}

	return r
}
