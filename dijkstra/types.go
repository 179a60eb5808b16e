// SPDX-License-Identifier: MIT
// Package: lvsphere/dijkstra
//
// types.go — sentinel errors, options and the priority queue.

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvsphere/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that no source vertex was given.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates an unweighted graph without a length function.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted or a length function given")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates a negative or NaN edge length.
	ErrNegativeWeight = errors.New("dijkstra: negative edge length encountered")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// LengthFunc returns the traversal cost of an edge.
type LengthFunc func(e *core.Edge) float64

// Options configures one Dijkstra run.
type Options struct {
	Source      string     // start vertex
	Length      LengthFunc // nil means Edge.Weight
	ReturnPath  bool       // return the predecessor map
	MaxDistance float64    // settle only vertices within this distance
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the start vertex.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithLength sets the edge length function. A nil fn restores Edge.Weight.
func WithLength(fn LengthFunc) Option {
	return func(o *Options) { o.Length = fn }
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration. Panics on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if !(max >= 0) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) { o.MaxDistance = max }
}

// DefaultOptions returns the defaults for source: Edge.Weight lengths, no
// predecessor map and no distance cap.
func DefaultOptions(source string) Options {
	return Options{Source: source, MaxDistance: math.Inf(1)}
}

// nodeItem is a tentative (vertex, distance) pair.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
