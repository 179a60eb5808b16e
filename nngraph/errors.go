// SPDX-License-Identifier: MIT
// Package: lvsphere/nngraph
//
// errors.go — sentinel errors. Callers branch with errors.Is; Build wraps
// them with the offending value.

package nngraph

import "errors"

var (
	// ErrTooFewPoints is returned when fewer than two points are supplied.
	ErrTooFewPoints = errors.New("nngraph: need at least two points")

	// ErrBadNeighborCount is returned when k ∉ [1, N-1].
	ErrBadNeighborCount = errors.New("nngraph: neighbour count out of range")

	// ErrBadKernelWidth is returned for a non-positive or non-finite kernel width.
	ErrBadKernelWidth = errors.New("nngraph: kernel width must be positive and finite")

	// ErrBadCoordinate is returned when a point has a NaN or infinite coordinate.
	ErrBadCoordinate = errors.New("nngraph: non-finite coordinate")

	// ErrBadSymmetrize is returned by ParseSymmetrize for unknown names.
	ErrBadSymmetrize = errors.New("nngraph: unknown symmetrization mode")
)
