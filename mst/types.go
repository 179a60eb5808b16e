// SPDX-License-Identifier: MIT
// Package: lvsphere/mst
//
// types.go — sentinel errors, options and Compute.

package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsphere/core"
)

var (
	// ErrInvalidGraph indicates a graph an MST cannot be computed on.
	ErrInvalidGraph = errors.New("mst: requires an undirected graph with weights or a length function")

	// ErrEmptyRoot indicates Prim was called without a root vertex.
	ErrEmptyRoot = errors.New("mst: empty root vertex")

	// ErrDisconnected indicates that no spanning tree exists.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrUnknownMethod indicates an unsupported Options.Method.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// Method names accepted by Compute.
const (
	MethodKruskal = "kruskal"
	MethodPrim    = "prim"
)

// LengthFunc returns the cost of an edge.
type LengthFunc func(e *core.Edge) float64

// Options selects the algorithm and its inputs.
type Options struct {
	Method string     // MethodKruskal (default) or MethodPrim
	Root   string     // Prim start vertex
	Length LengthFunc // nil means Edge.Weight
}

// Option configures Compute.
type Option func(*Options)

// WithMethod selects the algorithm.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the Prim start vertex.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// WithLength sets the edge cost function.
func WithLength(fn LengthFunc) Option {
	return func(o *Options) { o.Length = fn }
}

// DefaultOptions returns Kruskal over Edge.Weight.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// Compute dispatches to Kruskal or Prim.
func Compute(g *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g, o.Length)
	case MethodPrim:
		return Prim(g, o.Root, o.Length)
	default:
		return nil, 0, fmt.Errorf("Compute: %q: %w", o.Method, ErrUnknownMethod)
	}
}

// lengthOf validates g and resolves the cost function.
func lengthOf(g *core.Graph, fn LengthFunc) (LengthFunc, error) {
	if g == nil || g.Directed() {
		return nil, ErrInvalidGraph
	}
	if fn != nil {
		return fn, nil
	}
	if !g.Weighted() {
		return nil, ErrInvalidGraph
	}

	return func(e *core.Edge) float64 { return e.Weight }, nil
}
