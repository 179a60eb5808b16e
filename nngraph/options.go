// SPDX-License-Identifier: MIT
// Package: lvsphere/nngraph
//
// options.go — functional options for Build.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs; Build
//     itself never panics.
//   • Defaults: no centering, no rescaling, Average symmetrization.

package nngraph

import "fmt"

// Symmetrize selects how the directed k-NN weights become the final W.
type Symmetrize int

const (
	// Average sets W = (K + Kᵀ) / 2. One-sided neighbour pairs keep half
	// their weight.
	Average Symmetrize = iota

	// Maximum sets W[i][j] = max(K[i][j], K[j][i]).
	Maximum

	// Fill keeps K and copies K[j][i] into every empty K[i][j].
	Fill

	// None keeps the directed k-NN matrix; the core graph is then directed.
	None
)

// String returns the lower-case name used in job files and the database.
func (s Symmetrize) String() string {
	switch s {
	case Average:
		return "average"
	case Maximum:
		return "maximum"
	case Fill:
		return "fill"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Symmetrize(%d)", int(s))
	}
}

// ParseSymmetrize is the inverse of Symmetrize.String. The empty string maps
// to Average.
func ParseSymmetrize(s string) (Symmetrize, error) {
	switch s {
	case "", "average":
		return Average, nil
	case "maximum", "max":
		return Maximum, nil
	case "fill":
		return Fill, nil
	case "none":
		return None, nil
	default:
		return 0, fmt.Errorf("ParseSymmetrize: %q: %w", s, ErrBadSymmetrize)
	}
}

// Option customizes Build.
type Option func(*config)

type config struct {
	center     bool
	rescale    bool
	symmetrize Symmetrize
}

func newConfig(opts []Option) config {
	cfg := config{symmetrize: Average}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithCenter subtracts the coordinate mean from every point before the
// neighbour search.
func WithCenter() Option {
	return func(c *config) { c.center = true }
}

// WithRescale scales the cloud so that half its bounding-box diagonal equals
// N^(1/min(d,3)) / 10, the normalisation used by classic NN graph builders.
// The kernel width is not adjusted.
func WithRescale() Option {
	return func(c *config) { c.rescale = true }
}

// WithSymmetrize selects the symmetrization mode. Panics on unknown modes.
func WithSymmetrize(s Symmetrize) Option {
	if s < Average || s > None {
		panic(fmt.Sprintf("nngraph: WithSymmetrize(%d)", int(s)))
	}
	return func(c *config) { c.symmetrize = s }
}
