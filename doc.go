// Package surfdist computes surface-constrained distances on triangulated
// 3-D meshes: shortest paths along mesh edges between vertices, in parallel,
// with an optional cancel distance, plus the projection of external sensor
// positions onto their nearest mesh vertex.
//
// What is in the box:
//
//	• Surfaces: vertex/triangle lists, OFF and point-list I/O
//	• Mesh edge graph: one undirected edge per triangle side, Euclidean weights
//	• Shortest paths: deterministic Dijkstra with a cancel distance
//	• Distance matrices: one row per source, filled by a worker pool
//	• Sensor projection: nearest vertex by straight-line distance
//	• Test meshes: Platonic solids and planar grids
//
// Packages:
//
//	surface/      Surface type, validation, OFF & point readers/writers
//	meshgraph/    edge graph, components, dense adjacency
//	dijkstra/     single-source shortest paths, reusable Solver
//	distmap/      parallel distance matrix computation
//	projection/   sensor → vertex projection
//	matrix/       dense matrix, validators, Floyd–Warshall, text export
//	builder/      deterministic test meshes
//	config/       YAML run configuration
//	cmd/surfdist  command-line front end
//
// Quick ASCII example:
//
//	    1───2
//	    │ ╲ │
//	    0───3
//
//	two triangles, five edges: d(1,3) = √2 along the diagonal, while
//	d(0,2) = 2 through 1 or 3 because no edge joins 0 and 2.
//
//	m, err := distmap.Compute(s, distmap.WithCancelDistance(40))
//	if err != nil {
//		return err
//	}
//	err = matrix.Dump("distances.txt", m)
package surfdist
