package meshgraph

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/surfdist/matrix"
	"github.com/katalvlaran/surfdist/surface"
)

const methodBuild = "Build"

// ErrNilGraph indicates that a nil *Graph was used.
var ErrNilGraph = errors.New("meshgraph: graph is nil")

// Neighbor is one adjacency entry: the neighboring vertex and the edge length.
type Neighbor struct {
	Vertex int
	Weight float64
}

// Graph is the read-only adjacency structure of a surface's edge graph.
type Graph struct {
	adj   [][]Neighbor // adj[v] = neighbors of v in first-seen order
	edges int          // undirected edge count
}

// Build derives the edge graph of s.
//
// Errors:
//   - surface.ErrNilSurface for a nil surface.
//   - surface.ErrVertexOutOfRange when a triangle references a vertex outside
//     [0, s.NumVertices()); both match surface.ErrConfiguration.
func Build(s *surface.Surface) (*Graph, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, surface.ErrNilSurface)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	g := &Graph{adj: make([][]Neighbor, len(s.Vertices))}
	for _, tri := range s.Triangles {
		g.link(s, tri[0], tri[1])
		g.link(s, tri[1], tri[2])
		g.link(s, tri[2], tri[0])
	}

	return g, nil
}

// link records the undirected edge u-v unless it is a loop or already known.
func (g *Graph) link(s *surface.Surface, u, v int) {
	if u == v || g.has(u, v) {
		return
	}
	w := s.Vertices[u].Sub(s.Vertices[v]).Len()
	g.adj[u] = append(g.adj[u], Neighbor{Vertex: v, Weight: w})
	g.adj[v] = append(g.adj[v], Neighbor{Vertex: u, Weight: w})
	g.edges++
}

func (g *Graph) has(u, v int) bool {
	for _, nb := range g.adj[u] {
		if nb.Vertex == v {
			return true
		}
	}

	return false
}

// NumVertices returns the number of vertices (equal to the surface's).
func (g *Graph) NumVertices() int { return len(g.adj) }

// NumEdges returns the number of distinct undirected edges.
func (g *Graph) NumEdges() int { return g.edges }

// Neighbors returns the adjacency list of v. The slice is shared with the
// graph and must not be modified. v must be a valid vertex.
func (g *Graph) Neighbors(v int) []Neighbor { return g.adj[v] }

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// Weight returns the length of edge u-v and whether the edge exists.
func (g *Graph) Weight(u, v int) (float64, bool) {
	if u < 0 || u >= len(g.adj) {
		return 0, false
	}
	for _, nb := range g.adj[u] {
		if nb.Vertex == v {
			return nb.Weight, true
		}
	}

	return 0, false
}

// Adjacency exports the graph as an n×n distance matrix: 0 on the diagonal,
// the edge weight for adjacent pairs and +Inf elsewhere. The result is the
// input matrix.FloydWarshall expects.
//
// Complexity: O(V² + E) time and O(V²) space; intended for small meshes.
func (g *Graph) Adjacency() (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := len(g.adj)
	m, err := matrix.NewDistances(n, n)
	if err != nil {
		return nil, err
	}
	for u := 0; u < n; u++ {
		row, _ := m.Row(u)
		row[u] = 0
		for _, nb := range g.adj[u] {
			row[nb.Vertex] = math.Min(row[nb.Vertex], nb.Weight)
		}
	}

	return m, nil
}
