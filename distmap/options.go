package distmap

import (
	"math"
	"runtime"

	"github.com/katalvlaran/surfdist/dijkstra"
)

// Options configures a distance matrix computation.
type Options struct {
	// Subset lists the source vertices, one matrix row each, in order.
	// Empty means every vertex.
	Subset []int

	// CancelDistance bounds every single-source search. Default +Inf.
	CancelDistance float64

	// Workers is the number of parallel workers. Default runtime.NumCPU().
	// The effective count never exceeds the number of rows.
	Workers int

	rowHook func(row int) // test seam, called before each row is computed
}

// Option is a functional option for Compute and ComputeGraph.
type Option func(*Options)

// DefaultOptions returns: no subset, unbounded search, one worker per CPU.
func DefaultOptions() Options {
	w := runtime.NumCPU()
	if w < 1 {
		w = 1
	}

	return Options{CancelDistance: math.Inf(1), Workers: w}
}

// WithSubset restricts the rows to the given source vertices. The slice is
// copied. Duplicates are allowed and produce identical rows.
func WithSubset(sources []int) Option {
	cp := append([]int(nil), sources...)
	return func(o *Options) {
		o.Subset = cp
	}
}

// WithCancelDistance sets the search cutoff. Panics on negative or NaN d,
// exactly like dijkstra.WithCancelDistance.
func WithCancelDistance(d float64) Option {
	dijkstra.WithCancelDistance(d) // validates
	return func(o *Options) {
		o.CancelDistance = d
	}
}

// WithWorkers sets the worker count. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}
	return func(o *Options) {
		o.Workers = n
	}
}
