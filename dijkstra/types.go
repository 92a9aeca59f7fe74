// Package dijkstra defines core types and configuration options for the
// single-source shortest-path engine.
//
// Options:
//
//	– CancelDistance: search cutoff; vertices farther than this stay +Inf.
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrVertexNotFound    if the source vertex does not exist in the graph.
//	– ErrBufferSize        if a Solver destination has the wrong length.
//	– ErrBadCancelDistance if CancelDistance < 0 or NaN.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/surfdist/surface"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *meshgraph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex is outside the graph.
	ErrVertexNotFound = fmt.Errorf("dijkstra: source vertex not found in graph: %w", surface.ErrVertexOutOfRange)

	// ErrBufferSize indicates a destination slice whose length differs from
	// the graph's vertex count.
	ErrBufferSize = errors.New("dijkstra: destination length does not match vertex count")

	// ErrBadCancelDistance indicates that CancelDistance was set to a negative
	// value or NaN.
	ErrBadCancelDistance = errors.New("dijkstra: CancelDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// CancelDistance – stop expanding beyond this distance. Must be ≥ 0.
// Default is +Inf (no cutoff).
type Options struct {
	CancelDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithCancelDistance sets the cancel distance. Vertices whose shortest
// distance exceeds d are reported as +Inf. Passing math.Inf(1) restores the
// unbounded default. Panics with ErrBadCancelDistance on negative or NaN d.
func WithCancelDistance(d float64) Option {
	if math.IsNaN(d) || d < 0 {
		panic(ErrBadCancelDistance.Error())
	}
	return func(o *Options) {
		o.CancelDistance = d
	}
}

// DefaultOptions returns the defaults: CancelDistance = +Inf.
func DefaultOptions() Options {
	return Options{CancelDistance: math.Inf(1)}
}

// Tree is the result of ShortestPathTree: distances plus predecessors.
type Tree struct {
	Source int       // origin vertex
	Dist   []float64 // Dist[v] = shortest distance, +Inf if unreached
	Prev   []int     // Prev[v] = predecessor on one shortest path, -1 for Source/unreached
}

// PathTo returns the vertex sequence Source → … → target, or nil when target
// was not reached (or is not a vertex).
func (t *Tree) PathTo(target int) []int {
	if target < 0 || target >= len(t.Dist) || math.IsInf(t.Dist[target], 1) {
		return nil
	}
	var rev []int
	for v := target; v != -1; v = t.Prev[v] {
		rev = append(rev, v)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
