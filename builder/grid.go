// SPDX-License-Identifier: MIT
// Package: surfdist/builder
//
// grid.go: planar triangulated grid.
//
// Canonical model:
//   • Vertex (r,c) has id r*cols + c and canonical position (c, r, 0).
//   • Cell (r,c) emits triangles {(r,c),(r,c+1),(r+1,c+1)} and
//     {(r,c),(r+1,c+1),(r+1,c)} in row-major cell order.
//
// Complexity:
//   • Time/Space O(rows*cols).

package builder

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/surfdist/surface"
)

const (
	methodGrid = "Grid"
	minGridDim = 2
)

// Grid returns a rows×cols planar grid surface with unit spacing.
//
// Shortest edge paths on the grid move along axes (length 1) or along the cell
// diagonal (length √2) in the +r+c direction only, which makes expected
// distances easy to state in tests.
//
// Errors:
//   - ErrTooFewVertices if rows < 2 or cols < 2.
func Grid(rows, cols int, opts ...Option) (*surface.Surface, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, builderErrorf(methodGrid, ErrTooFewVertices, "rows=%d cols=%d", rows, cols)
	}
	cfg := newBuilderConfig(opts...)

	verts := make([]mgl64.Vec3, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			verts = append(verts, cfg.place(mgl64.Vec3{float64(c), float64(r), 0}))
		}
	}

	tris := make([]surface.Triangle, 0, 2*(rows-1)*(cols-1))
	id := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			tris = append(tris,
				surface.Triangle{id(r, c), id(r, c+1), id(r+1, c+1)},
				surface.Triangle{id(r, c), id(r+1, c+1), id(r+1, c)},
			)
		}
	}

	return &surface.Surface{Vertices: verts, Triangles: tris}, nil
}
