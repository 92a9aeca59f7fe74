// SPDX-License-Identifier: MIT
// Package: surfdist/builder
//
// platonic.go: canonical triangle meshes for the Platonic solids.
//
// Design:
//   • Single source of truth for vertex positions and face lists.
//   • Solids are inscribed in the unit sphere; options scale/translate them.
//   • Only solids with triangular faces are emitted (Tetrahedron, Octahedron,
//     Icosahedron). Cube/Dodecahedron stay in the enum for completeness.
//
// Determinism:
//   • Vertex order and face order are fixed; icosahedron coordinates are
//     derived once at init from closed-form angles.

package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/surfdist/surface"
)

const (
	methodPlatonic          = "Platonic"
	methodCornerTetrahedron = "CornerTetrahedron"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  F=4 triangles
	Cube                             // V=8,  square faces
	Octahedron                       // V=6,  F=8 triangles
	Dodecahedron                     // V=20, pentagonal faces
	Icosahedron                      // V=12, F=20 triangles
)

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// solid is the canonical geometry of one triangulated solid.
type solid struct {
	vertices []mgl64.Vec3
	faces    []surface.Triangle
}

var platonicSolids = map[PlatonicName]solid{
	// Regular tetrahedron: alternate corners of the cube [-1,1]^3, normalized.
	Tetrahedron: {
		vertices: []mgl64.Vec3{
			mgl64.Vec3{1, 1, 1}.Normalize(),
			mgl64.Vec3{1, -1, -1}.Normalize(),
			mgl64.Vec3{-1, 1, -1}.Normalize(),
			mgl64.Vec3{-1, -1, 1}.Normalize(),
		},
		faces: []surface.Triangle{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	},

	// Octahedron: poles 0 (+z) and 1 (-z), equator ring 2-4-3-5.
	Octahedron: {
		vertices: []mgl64.Vec3{
			{0, 0, 1}, {0, 0, -1},
			{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0},
		},
		faces: []surface.Triangle{
			{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
			{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
		},
	},

	Icosahedron: icosahedron(),
}

// icosahedron builds the "two pentagon rings + poles" layout:
//
//	top pole 0, top ring 1..5 at z=+1/√5, bottom ring 6..10 at z=-1/√5
//	(rotated by -36°), bottom pole 11. Top ring vertex i touches bottom ring
//	vertices i and i+1 (mod 5).
func icosahedron() solid {
	z := 1 / math.Sqrt(5)
	rho := 2 / math.Sqrt(5)
	step := 2 * math.Pi / 5

	v := make([]mgl64.Vec3, 0, 12)
	v = append(v, mgl64.Vec3{0, 0, 1})
	for i := 0; i < 5; i++ {
		a := float64(i) * step
		v = append(v, mgl64.Vec3{rho * math.Cos(a), rho * math.Sin(a), z})
	}
	for i := 0; i < 5; i++ {
		a := float64(i)*step - step/2
		v = append(v, mgl64.Vec3{rho * math.Cos(a), rho * math.Sin(a), -z})
	}
	v = append(v, mgl64.Vec3{0, 0, -1})

	f := make([]surface.Triangle, 0, 20)
	for i := 0; i < 5; i++ {
		t0, t1 := 1+i, 1+(i+1)%5
		b0, b1 := 6+i, 6+(i+1)%5
		f = append(f,
			surface.Triangle{0, t0, t1},
			surface.Triangle{t0, b0, b1},
			surface.Triangle{t0, b1, t1},
			surface.Triangle{11, b1, b0},
		)
	}

	return solid{vertices: v, faces: f}
}

// emit copies a canonical solid through the placement options.
func emit(sd solid, cfg builderConfig) *surface.Surface {
	verts := make([]mgl64.Vec3, len(sd.vertices))
	for i, p := range sd.vertices {
		verts[i] = cfg.place(p)
	}
	faces := make([]surface.Triangle, len(sd.faces))
	copy(faces, sd.faces)

	return &surface.Surface{Vertices: verts, Triangles: faces}
}

// Platonic returns the triangulated solid name inscribed in the unit sphere.
//
// Errors:
//   - ErrUnsupportedSolid for Cube, Dodecahedron and unknown names.
func Platonic(name PlatonicName, opts ...Option) (*surface.Surface, error) {
	sd, ok := platonicSolids[name]
	if !ok {
		return nil, builderErrorf(methodPlatonic, ErrUnsupportedSolid, "solid %s", name)
	}

	return emit(sd, newBuilderConfig(opts...)), nil
}

// cornerTetrahedron is the unit corner tetrahedron at the origin.
var cornerTetrahedron = solid{
	vertices: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
	faces:    []surface.Triangle{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}},
}

// CornerTetrahedron returns the tetrahedron with vertices (0,0,0), (1,0,0),
// (0,1,0), (0,0,1). Every vertex pair shares an edge: the three edges at the
// origin have length 1, the other three √2.
func CornerTetrahedron(opts ...Option) *surface.Surface {
	return emit(cornerTetrahedron, newBuilderConfig(opts...))
}
