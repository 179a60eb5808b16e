// SPDX-License-Identifier: MIT
// Package: lvsphere/healpix
//
// scheme.go — pixelization.Scheme adapter and registry hook.

package healpix

import "github.com/katalvlaran/lvsphere/pixelization"

// SchemeName is the registry key under which Scheme{} is registered.
const SchemeName = "healpix"

// Scheme adapts the package functions to pixelization.Scheme.
// The zero value is ready to use and safe for concurrent callers.
type Scheme struct{}

var _ pixelization.Scheme = Scheme{}

// NPix implements pixelization.Scheme.
func (Scheme) NPix(nside int) (int, error) { return NSide2NPix(nside) }

// Pix2Vec implements pixelization.Scheme.
func (Scheme) Pix2Vec(nside, ipix int, ord pixelization.Ordering) ([3]float64, error) {
	return Pix2Vec(nside, ipix, ord)
}

// Pix2Ang implements pixelization.Scheme.
func (Scheme) Pix2Ang(nside, ipix int, ord pixelization.Ordering) (float64, float64, error) {
	return Pix2Ang(nside, ipix, ord)
}

func init() {
	pixelization.Register(SchemeName, Scheme{})
}
