// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	methodValidate = "Validate"
	methodMerge    = "Merge"
)

// Triangle is a triple of vertex indices into Surface.Vertices.
type Triangle [3]int

// Surface is an immutable triangulated mesh: vertex coordinates indexed by
// vertex id plus triangles referencing those ids.
//
// Surface is read-only by contract. No package in surfdist mutates the slices,
// so a single Surface can be shared by any number of goroutines.
type Surface struct {
	Vertices  []mgl64.Vec3 // index == vertex id
	Triangles []Triangle   // vertex index triples
}

// New wraps vertices and triangles into a Surface and validates the triangle
// indices. The slices are not copied.
//
// Errors:
//   - ErrVertexOutOfRange if any triangle references a missing vertex.
func New(vertices []mgl64.Vec3, triangles []Triangle) (*Surface, error) {
	s := &Surface{Vertices: vertices, Triangles: triangles}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// NumVertices returns the number of vertices.
func (s *Surface) NumVertices() int { return len(s.Vertices) }

// NumTriangles returns the number of triangles.
func (s *Surface) NumTriangles() int { return len(s.Triangles) }

// Validate checks that every triangle index lies in [0, NumVertices).
// It does not check for degenerate triangles or manifoldness.
func (s *Surface) Validate() error {
	if s == nil {
		return fmt.Errorf("%s: %w", methodValidate, ErrNilSurface)
	}
	n := len(s.Vertices)
	for i, tri := range s.Triangles {
		for _, v := range tri {
			if err := CheckIndex(v, n); err != nil {
				return fmt.Errorf("%s: triangle %d: %w", methodValidate, i, err)
			}
		}
	}

	return nil
}

// CheckVertex reports ErrVertexOutOfRange when v is not a vertex of s.
func (s *Surface) CheckVertex(v int) error {
	return CheckIndex(v, len(s.Vertices))
}

// CheckIndex reports ErrVertexOutOfRange when v is outside [0, n).
func CheckIndex(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("vertex %d (have %d): %w", v, n, ErrVertexOutOfRange)
	}

	return nil
}

// Merge concatenates surfaces into a new one. Vertex ids of the k-th input are
// shifted by the total vertex count of the inputs before it, so the result is
// made of disjoint, mutually unreachable components.
func Merge(parts ...*Surface) (*Surface, error) {
	var nv, nt int
	for i, p := range parts {
		if p == nil {
			return nil, fmt.Errorf("%s: part %d: %w", methodMerge, i, ErrNilSurface)
		}
		nv += len(p.Vertices)
		nt += len(p.Triangles)
	}

	out := &Surface{
		Vertices:  make([]mgl64.Vec3, 0, nv),
		Triangles: make([]Triangle, 0, nt),
	}
	for _, p := range parts {
		offset := len(out.Vertices)
		out.Vertices = append(out.Vertices, p.Vertices...)
		for _, tri := range p.Triangles {
			out.Triangles = append(out.Triangles, Triangle{tri[0] + offset, tri[1] + offset, tri[2] + offset})
		}
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodMerge, err)
	}

	return out, nil
}
