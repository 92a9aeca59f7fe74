// Package dijkstra implements Dijkstra's shortest-path algorithm on mesh edge graphs.
//
// Notes on implementation choices:
//
//   - Edge weights are Euclidean lengths, non-negative by construction, so no
//     negative-weight pre-scan is needed.
//   - Candidates beyond CancelDistance are never relaxed; the main loop also
//     stops once the smallest frontier entry exceeds it.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries of already settled vertices.
//   - The heap orders by (distance, vertex index), fixing the tie-break.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/katalvlaran/surfdist/meshgraph"
)

// ShortestPaths computes shortest distances from source to all vertices of g.
//
// Returns:
//
//   - dist: dist[v] = minimal distance from source to v along mesh edges,
//     +Inf if v is unreachable or farther than the cancel distance.
//     dist[source] == 0.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in [0, g.NumVertices()) (ErrVertexNotFound).
func ShortestPaths(g *meshgraph.Graph, source int, opts ...Option) ([]float64, error) {
	s, err := NewSolver(g, opts...)
	if err != nil {
		return nil, err
	}
	dist := make([]float64, g.NumVertices())
	if err = s.Run(source, dist); err != nil {
		return nil, err
	}

	return dist, nil
}

// ShortestPathTree is ShortestPaths plus the predecessor array, so individual
// paths can be rebuilt with Tree.PathTo.
func ShortestPathTree(g *meshgraph.Graph, source int, opts ...Option) (*Tree, error) {
	s, err := NewSolver(g, opts...)
	if err != nil {
		return nil, err
	}
	n := g.NumVertices()
	t := &Tree{Source: source, Dist: make([]float64, n), Prev: make([]int, n)}
	if err = s.run(source, t.Dist, t.Prev); err != nil {
		return nil, err
	}

	return t, nil
}

// Solver holds the reusable scratch state for repeated single-source runs on
// one graph. It is not safe for concurrent use.
type Solver struct {
	g       *meshgraph.Graph     // read-only input graph
	options Options              // resolved configuration
	visited []bool               // visited[v] once v's distance is final
	pq      *priorityqueue.Queue // frontier of nodeItem values
}

// NewSolver validates g and resolves options once for many Run calls.
func NewSolver(g *meshgraph.Graph, opts ...Option) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Solver{
		g:       g,
		options: cfg,
		visited: make([]bool, g.NumVertices()),
		pq:      priorityqueue.NewWith(byDistanceThenVertex),
	}, nil
}

// CancelDistance reports the cutoff this solver applies.
func (s *Solver) CancelDistance() float64 { return s.options.CancelDistance }

// Run computes distances from source into dist, which must have length
// g.NumVertices(). Every entry of dist is overwritten.
func (s *Solver) Run(source int, dist []float64) error {
	return s.run(source, dist, nil)
}

func (s *Solver) run(source int, dist []float64, prev []int) error {
	n := s.g.NumVertices()
	if source < 0 || source >= n {
		return fmt.Errorf("source %d (have %d vertices): %w", source, n, ErrVertexNotFound)
	}
	if len(dist) != n {
		return fmt.Errorf("len(dist)=%d, vertices=%d: %w", len(dist), n, ErrBufferSize)
	}

	s.init(source, dist, prev)
	s.process(dist, prev)

	return nil
}

// init resets dist to +Inf, clears visited/prev and seeds the frontier.
func (s *Solver) init(source int, dist []float64, prev []int) {
	inf := math.Inf(1)
	for v := range dist {
		dist[v] = inf
		s.visited[v] = false
	}
	for v := range prev {
		prev[v] = -1
	}
	dist[source] = 0

	s.pq.Clear()
	s.pq.Enqueue(nodeItem{id: source, dist: 0})
}

// process is the core loop: pop the closest unsettled vertex, settle it and
// relax its edges, until the frontier is empty or exceeds CancelDistance.
func (s *Solver) process(dist []float64, prev []int) {
	limit := s.options.CancelDistance
	for !s.pq.Empty() {
		x, _ := s.pq.Dequeue()
		item := x.(nodeItem)

		// Stale heap entry of an already settled vertex.
		if s.visited[item.id] {
			continue
		}
		// Everything left in the heap is at least this far: stop.
		if item.dist > limit {
			break
		}
		s.visited[item.id] = true

		s.relax(item.id, item.dist, limit, dist, prev)
	}
}

// relax improves the tentative distances of u's unsettled neighbors.
func (s *Solver) relax(u int, du, limit float64, dist []float64, prev []int) {
	var nd float64
	for _, nb := range s.g.Neighbors(u) {
		if s.visited[nb.Vertex] {
			continue
		}
		nd = du + nb.Weight
		if nd > limit {
			continue // stays +Inf unless reached by a shorter route
		}
		// Strict improvement only; equal-length alternatives keep the first.
		if nd >= dist[nb.Vertex] {
			continue
		}
		dist[nb.Vertex] = nd
		if prev != nil {
			prev[nb.Vertex] = u
		}
		s.pq.Enqueue(nodeItem{id: nb.Vertex, dist: nd})
	}
}

// nodeItem is one frontier entry.
type nodeItem struct {
	id   int     // vertex index
	dist float64 // tentative distance when pushed
}

// byDistanceThenVertex orders nodeItems by dist, then by vertex index.
func byDistanceThenVertex(a, b interface{}) int {
	x, y := a.(nodeItem), b.(nodeItem)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	case x.id < y.id:
		return -1
	case x.id > y.id:
		return 1
	default:
		return 0
	}
}
