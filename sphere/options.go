// SPDX-License-Identifier: MIT
// Package: lvsphere/sphere
//
// options.go — functional options for NewHealpix.
//
// Contract:
//   • Option constructors panic on meaningless inputs (nil scheme, empty
//     scheme name, unknown ordering, nil graph option). NewHealpix never
//     panics.
//   • nside itself is not checked here; see the package documentation.
//   • Defaults: nside 1024, NESTED ordering, the scheme registered as
//     "healpix", no graph options.

package sphere

import (
	"fmt"

	"github.com/katalvlaran/lvsphere/nngraph"
	"github.com/katalvlaran/lvsphere/pixelization"
)

const (
	// DefaultNside is the resolution used when WithNside is not given.
	DefaultNside = 1024

	// DefaultSchemeName is the registry key looked up when neither WithScheme
	// nor WithSchemeName is given.
	DefaultSchemeName = "healpix"
)

// Option customizes NewHealpix.
type Option func(*config)

type config struct {
	nside      int
	ordering   pixelization.Ordering
	scheme     pixelization.Scheme
	schemeName string
	graphOpts  []nngraph.Option
}

func newConfig(opts []Option) config {
	cfg := config{
		nside:      DefaultNside,
		ordering:   pixelization.Nested,
		schemeName: DefaultSchemeName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithNside sets the resolution.
func WithNside(nside int) Option {
	return func(c *config) { c.nside = nside }
}

// WithOrdering selects the pixel ordering. Panics on values other than
// pixelization.Nested and pixelization.Ring.
func WithOrdering(ord pixelization.Ordering) Option {
	if ord != pixelization.Nested && ord != pixelization.Ring {
		panic(fmt.Sprintf("sphere: WithOrdering(%v)", ord))
	}
	return func(c *config) { c.ordering = ord }
}

// WithNest is WithOrdering(Nested) for true and WithOrdering(Ring) for false.
func WithNest(nest bool) Option {
	if nest {
		return WithOrdering(pixelization.Nested)
	}
	return WithOrdering(pixelization.Ring)
}

// WithScheme injects a scheme directly, bypassing the registry.
// Panics on nil.
func WithScheme(s pixelization.Scheme) Option {
	if s == nil {
		panic("sphere: WithScheme(nil)")
	}
	return func(c *config) { c.scheme = s }
}

// WithSchemeName selects a registered scheme by name. An explicit WithScheme
// takes precedence. Panics on the empty name.
func WithSchemeName(name string) Option {
	if name == "" {
		panic(`sphere: WithSchemeName("")`)
	}
	return func(c *config) { c.schemeName = name }
}

// WithGraphOptions appends options passed unmodified to nngraph.Build.
// Panics on a nil option.
func WithGraphOptions(opts ...nngraph.Option) Option {
	for i, o := range opts {
		if o == nil {
			panic(fmt.Sprintf("sphere: WithGraphOptions: option %d is nil", i))
		}
	}
	return func(c *config) { c.graphOpts = append(c.graphOpts, opts...) }
}
