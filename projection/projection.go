// SPDX-License-Identifier: MIT

package projection

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/surfdist/surface"
)

const (
	methodProject = "Project"
	methodNearest = "Nearest"
)

// Project returns, for each sensor, the index of the closest vertex of s.
//
// Errors:
//   - surface.ErrNilSurface for a nil surface.
//   - surface.ErrEmptySurface when s has no vertices.
//
// Complexity:
//   - Time O(len(sensors) · V), Space O(len(sensors)).
func Project(s *surface.Surface, sensors []mgl64.Vec3) ([]int, error) {
	if err := checkSurface(methodProject, s); err != nil {
		return nil, err
	}
	out := make([]int, len(sensors))
	for i, p := range sensors {
		out[i], _ = nearest(s.Vertices, p)
	}

	return out, nil
}

// Nearest returns the index of the vertex of s closest to p and the Euclidean
// distance between them. Same tie-break and errors as Project.
func Nearest(s *surface.Surface, p mgl64.Vec3) (int, float64, error) {
	if err := checkSurface(methodNearest, s); err != nil {
		return -1, 0, err
	}
	idx, d2 := nearest(s.Vertices, p)

	return idx, math.Sqrt(d2), nil
}

func checkSurface(method string, s *surface.Surface) error {
	if s == nil {
		return fmt.Errorf("%s: %w", method, surface.ErrNilSurface)
	}
	if s.NumVertices() == 0 {
		return fmt.Errorf("%s: %w", method, surface.ErrEmptySurface)
	}

	return nil
}

// nearest scans vs in order and returns the first index with the smallest
// squared distance to p. vs must be non-empty.
func nearest(vs []mgl64.Vec3, p mgl64.Vec3) (int, float64) {
	best, bestD2 := 0, dist2(p, vs[0])
	for v := 1; v < len(vs); v++ {
		if d2 := dist2(p, vs[v]); d2 < bestD2 {
			best, bestD2 = v, d2
		}
	}

	return best, bestD2
}

func dist2(a, b mgl64.Vec3) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}
