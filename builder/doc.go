// SPDX-License-Identifier: MIT
// Package builder constructs small, deterministic triangulated surfaces with
// real coordinates: the corner tetrahedron, the triangulated Platonic solids
// and planar grids.
//
// The surfaces serve as fixtures for tests, examples and benchmarks and as
// demo input for the surfdist command. Every constructor is deterministic:
// the same arguments always produce bit-identical vertex and triangle lists.
//
// Constructors:
//
//   - CornerTetrahedron(opts...): vertices (0,0,0),(1,0,0),(0,1,0),(0,0,1),
//     four triangles. Edges from vertex 0 have length 1, the others √2.
//   - Platonic(name, opts...): Tetrahedron, Octahedron or Icosahedron inscribed
//     in a sphere of radius 1 (scaled by WithScale). Cube and Dodecahedron have
//     non-triangular faces and are rejected with ErrUnsupportedSolid.
//   - Grid(rows, cols, opts...): rows×cols vertices on the z=0 plane with unit
//     spacing; each cell is split into two triangles along its (r,c)–(r+1,c+1)
//     diagonal.
//
// Options:
//
//   - WithScale(s): multiply every coordinate by s (s > 0, panics otherwise).
//   - WithOffset(v): translate every vertex by v after scaling.
//
// Errors:
//
//   - ErrTooFewVertices: Grid with rows<2 or cols<2.
//   - ErrUnsupportedSolid: Platonic with a solid that has no triangle faces,
//     or an unknown name.
package builder
