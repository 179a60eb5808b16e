// SPDX-License-Identifier: MIT
// Package: lvsphere/healpix
//
// pixel.go — pixel index → pixel-centre location for both orderings.
//
// Geometry model:
//   • A location is (z = cos θ, φ). Near the poles (|z| > 0.99) sin θ is also
//     computed directly from the ring index to avoid the cancellation in
//     √(1-z²).
//   • RING: pixel → (ring, index in ring) via the polar-cap/equator split.
//   • NESTED: pixel → (face, x, y) by bit de-interleaving, then → ring.

package healpix

import (
	"math"

	"github.com/katalvlaran/lvsphere/pixelization"
)

const halfPi = math.Pi / 2

// loc is a pixel centre on the unit sphere.
type loc struct {
	z, phi  float64
	sth     float64
	haveSth bool
}

// vec converts a location into a unit vector.
func (l loc) vec() [3]float64 {
	sth := l.sth
	if !l.haveSth {
		sth = math.Sqrt((1 - l.z) * (1 + l.z))
	}

	return [3]float64{sth * math.Cos(l.phi), sth * math.Sin(l.phi), l.z}
}

// ang converts a location into (colatitude, longitude).
func (l loc) ang() (float64, float64) {
	if l.haveSth {
		return math.Atan2(l.sth, l.z), l.phi
	}

	return math.Acos(l.z), l.phi
}

// Pix2Vec returns the unit vector of the centre of pixel ipix.
//
// Errors:
//   - ErrInvalidOrdering, ErrInvalidNside, ErrInvalidPixel.
//
// Complexity: O(1) for RING, O(log nside) for NESTED.
func Pix2Vec(nside, ipix int, ord pixelization.Ordering) ([3]float64, error) {
	l, err := pix2loc("Pix2Vec", nside, ipix, ord)
	if err != nil {
		return [3]float64{}, err
	}

	return l.vec(), nil
}

// Pix2Ang returns the colatitude θ ∈ [0, π] and longitude φ ∈ [0, 2π) of the
// centre of pixel ipix. θ is measured from the north pole; φ is not remapped
// to [-π, π].
//
// Errors:
//   - ErrInvalidOrdering, ErrInvalidNside, ErrInvalidPixel.
func Pix2Ang(nside, ipix int, ord pixelization.Ordering) (theta, phi float64, err error) {
	l, err := pix2loc("Pix2Ang", nside, ipix, ord)
	if err != nil {
		return 0, 0, err
	}
	theta, phi = l.ang()

	return theta, phi, nil
}

// pix2loc validates the request and dispatches on the ordering.
func pix2loc(method string, nside, ipix int, ord pixelization.Ordering) (loc, error) {
	npix, err := check(method, nside, ipix, ord)
	if err != nil {
		return loc{}, err
	}
	if ord == pixelization.Ring {
		return ringLoc(nside, npix, ipix), nil
	}

	return nestLoc(nside, npix, ipix), nil
}

// ringLoc locates a RING-ordered pixel.
func ringLoc(nside, npix, ipix int) loc {
	ncap := 2 * nside * (nside - 1)
	fact2 := 4.0 / float64(npix)
	fact1 := float64(2*nside) * fact2

	var l loc
	switch {
	case ipix < ncap: // north polar cap
		iring := (1 + isqrt(1+2*ipix)) >> 1
		iphi := ipix + 1 - 2*iring*(iring-1)
		tmp := float64(iring*iring) * fact2
		l.z = 1 - tmp
		if l.z > 0.99 {
			l.sth, l.haveSth = math.Sqrt(tmp*(2-tmp)), true
		}
		l.phi = (float64(iphi) - 0.5) * halfPi / float64(iring)

	case ipix < npix-ncap: // equatorial belt
		nl4 := 4 * nside
		ip := ipix - ncap
		tmp := ip / nl4
		iring := tmp + nside
		iphi := ip - nl4*tmp + 1
		fodd := 0.5 // rings with iring+nside even are shifted by half a pixel
		if (iring+nside)&1 == 1 {
			fodd = 1
		}
		l.z = float64(2*nside-iring) * fact1
		l.phi = (float64(iphi) - fodd) * math.Pi * 0.75 * fact1

	default: // south polar cap
		ip := npix - ipix
		iring := (1 + isqrt(2*ip-1)) >> 1
		iphi := 4*iring + 1 - (ip - 2*iring*(iring-1))
		tmp := float64(iring*iring) * fact2
		l.z = tmp - 1
		if l.z < -0.99 {
			l.sth, l.haveSth = math.Sqrt(tmp*(2-tmp)), true
		}
		l.phi = (float64(iphi) - 0.5) * halfPi / float64(iring)
	}

	return l
}

// nestLoc locates a NESTED-ordered pixel; nside must be a power of two.
func nestLoc(nside, npix, ipix int) loc {
	fact2 := 4.0 / float64(npix)
	fact1 := float64(2*nside) * fact2

	face, ix, iy := nest2xyf(nside, ipix)
	jr := jrll[face]*nside - ix - iy - 1

	var (
		l  loc
		nr int
	)
	switch {
	case jr < nside:
		nr = jr
		tmp := float64(nr*nr) * fact2
		l.z = 1 - tmp
		if l.z > 0.99 {
			l.sth, l.haveSth = math.Sqrt(tmp*(2-tmp)), true
		}
	case jr > 3*nside:
		nr = 4*nside - jr
		tmp := float64(nr*nr) * fact2
		l.z = tmp - 1
		if l.z < -0.99 {
			l.sth, l.haveSth = math.Sqrt(tmp*(2-tmp)), true
		}
	default:
		nr = nside
		l.z = float64(2*nside-jr) * fact1
	}

	tmp := jpll[face]*nr + ix - iy
	if tmp < 0 {
		tmp += 8 * nr
	}
	if nr == nside {
		l.phi = 0.75 * halfPi * float64(tmp) * fact1
	} else {
		l.phi = 0.5 * halfPi * float64(tmp) / float64(nr)
	}

	return l
}
