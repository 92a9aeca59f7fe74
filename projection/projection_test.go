package projection_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/surfdist/builder"
	"github.com/katalvlaran/surfdist/projection"
	"github.com/katalvlaran/surfdist/surface"
	"github.com/stretchr/testify/require"
)

func TestProject_CornerTetrahedron(t *testing.T) {
	s := builder.CornerTetrahedron()
	got, err := projection.Project(s, []mgl64.Vec3{
		{0.1, 0.1, 0.1},
		{0.9, 0.1, 0},
		{0, 0.2, 0.7},
		{5, 5, 5},
	})
	require.NoError(t, err)
	// (5,5,5) is equidistant from 1, 2 and 3; the lowest index wins.
	require.Equal(t, []int{0, 1, 3, 1}, got)
}

func TestProject_ExactVertexMapsToItself(t *testing.T) {
	s, err := builder.Platonic(builder.Icosahedron, builder.WithScale(3), builder.WithOffset(mgl64.Vec3{1, -2, 0.5}))
	require.NoError(t, err)

	got, err := projection.Project(s, s.Vertices)
	require.NoError(t, err)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestProject_TieBreaksToLowestIndex(t *testing.T) {
	// Duplicate coordinates: vertex 1 and 3 coincide.
	s := &surface.Surface{Vertices: []mgl64.Vec3{{5, 0, 0}, {1, 1, 1}, {-5, 0, 0}, {1, 1, 1}}}
	got, err := projection.Project(s, []mgl64.Vec3{{1, 1, 1}, {0, 0, 0}})
	require.NoError(t, err)
	// (0,0,0) is 5 away from both 0 and 2, √3 from 1 and 3.
	require.Equal(t, []int{1, 1}, got)

	s = &surface.Surface{Vertices: []mgl64.Vec3{{1, 0, 0}, {-1, 0, 0}}}
	got, err = projection.Project(s, []mgl64.Vec3{{0, 0, 0}})
	require.NoError(t, err)
	require.Equal(t, []int{0}, got)
}

func TestProject_NoSensors(t *testing.T) {
	got, err := projection.Project(builder.CornerTetrahedron(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestProject_Errors(t *testing.T) {
	_, err := projection.Project(&surface.Surface{}, []mgl64.Vec3{{0, 0, 0}})
	require.ErrorIs(t, err, surface.ErrEmptySurface)
	require.ErrorIs(t, err, surface.ErrConfiguration)

	_, err = projection.Project(nil, nil)
	require.ErrorIs(t, err, surface.ErrNilSurface)

	_, _, err = projection.Nearest(&surface.Surface{}, mgl64.Vec3{})
	require.ErrorIs(t, err, surface.ErrEmptySurface)
}

func TestNearest(t *testing.T) {
	s, err := builder.Grid(3, 3)
	require.NoError(t, err)

	idx, d, err := projection.Nearest(s, mgl64.Vec3{2, 1, 4})
	require.NoError(t, err)
	require.Equal(t, 5, idx)
	require.InDelta(t, 4.0, d, 1e-12)
}
