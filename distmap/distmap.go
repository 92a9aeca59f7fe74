// SPDX-License-Identifier: MIT

package distmap

import (
	"fmt"

	"github.com/katalvlaran/surfdist/dijkstra"
	"github.com/katalvlaran/surfdist/matrix"
	"github.com/katalvlaran/surfdist/meshgraph"
	"github.com/katalvlaran/surfdist/surface"
	"golang.org/x/sync/errgroup"
)

// Compute builds the mesh edge graph of s and returns its distance matrix.
//
// MAIN DESCRIPTION:
//   - rows = len(subset), or s.NumVertices() without a subset.
//   - cols = s.NumVertices().
//   - Entry (i, j) is the shortest mesh-edge distance from source[i] to j,
//     +Inf when j is unreachable or farther than the cancel distance.
//
// Errors:
//   - surface.ErrNilSurface / surface.ErrVertexOutOfRange for malformed input.
//   - ErrComputationFailure when a worker fails.
func Compute(s *surface.Surface, opts ...Option) (*matrix.Dense, error) {
	g, err := meshgraph.Build(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCompute, err)
	}

	return ComputeGraph(g, opts...)
}

// ComputeGraph is Compute for a graph that is already built. g is only read,
// so one graph may back any number of concurrent computations.
//
// Steps:
//  1. Resolve the effective sources (subset or all vertices).
//  2. Allocate a rows×n matrix filled with +Inf.
//  3. Split [0, rows) into contiguous chunks, one per worker.
//  4. Each worker runs a dijkstra.Solver per row, writing into the row slice.
//  5. Join; any worker error discards the matrix.
//
// Complexity:
//   - Time O(rows · (V+E) log V) total, divided across workers.
//   - Space O(rows·V) for the result plus O(V+E) scratch per worker.
func ComputeGraph(g *meshgraph.Graph, opts ...Option) (*matrix.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodComputeGraph, meshgraph.ErrNilGraph)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.NumVertices()
	sources, err := resolveSources(cfg.Subset, n)
	if err != nil {
		return nil, err
	}
	rows := len(sources)

	m, err := matrix.NewDistances(rows, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodComputeGraph, ErrComputationFailure, err)
	}
	if rows == 0 || n == 0 {
		return m, nil
	}

	workers := min(max(cfg.Workers, 1), rows)

	var eg errgroup.Group
	for _, c := range partition(rows, workers) {
		c := c
		eg.Go(func() error {
			return fillRows(g, &cfg, sources, m, c)
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}

// resolveSources returns subset (validated against n) or 0..n-1.
func resolveSources(subset []int, n int) ([]int, error) {
	if len(subset) == 0 {
		all := make([]int, n)
		for v := range all {
			all[v] = v
		}

		return all, nil
	}
	for i, v := range subset {
		if err := surface.CheckIndex(v, n); err != nil {
			return nil, fmt.Errorf("%s: subset[%d]: %w", methodComputeGraph, i, err)
		}
	}

	return subset, nil
}

// span is a half-open row range [lo, hi) owned by one worker.
type span struct {
	lo, hi int
}

// partition cuts [0, rows) into workers contiguous spans whose sizes differ
// by at most one; the first rows%workers spans are the larger ones.
// Requires 1 <= workers <= rows.
func partition(rows, workers int) []span {
	out := make([]span, workers)
	base, extra := rows/workers, rows%workers
	lo := 0
	for w := range out {
		size := base
		if w < extra {
			size++
		}
		out[w] = span{lo: lo, hi: lo + size}
		lo += size
	}

	return out
}

// fillRows computes rows [c.lo, c.hi) of m. A panic is turned into
// ErrComputationFailure so one bad worker cannot crash the process.
func fillRows(g *meshgraph.Graph, cfg *Options, sources []int, m *matrix.Dense, c span) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = failuref(c.lo, c.hi, fmt.Errorf("panic: %v", r))
		}
	}()

	solver, err := dijkstra.NewSolver(g, dijkstra.WithCancelDistance(cfg.CancelDistance))
	if err != nil {
		return failuref(c.lo, c.hi, err)
	}
	for i := c.lo; i < c.hi; i++ {
		if cfg.rowHook != nil {
			cfg.rowHook(i)
		}
		row, rerr := m.Row(i)
		if rerr != nil {
			return failuref(c.lo, c.hi, rerr)
		}
		if rerr = solver.Run(sources[i], row); rerr != nil {
			return failuref(c.lo, c.hi, rerr)
		}
	}

	return nil
}
