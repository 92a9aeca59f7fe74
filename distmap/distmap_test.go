package distmap_test

import (
	"math"
	"runtime"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/surfdist/builder"
	"github.com/katalvlaran/surfdist/dijkstra"
	"github.com/katalvlaran/surfdist/distmap"
	"github.com/katalvlaran/surfdist/matrix"
	"github.com/katalvlaran/surfdist/meshgraph"
	"github.com/katalvlaran/surfdist/surface"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func grid(t testing.TB, rows, cols int) *surface.Surface {
	t.Helper()
	s, err := builder.Grid(rows, cols)
	require.NoError(t, err)

	return s
}

func at(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// ------------------------------------------------------------------------
// 1. Concrete scenarios.
// ------------------------------------------------------------------------

func TestCompute_CornerTetrahedron(t *testing.T) {
	m, err := distmap.Compute(builder.CornerTetrahedron())
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 4, m.Cols())

	row0, _ := m.Row(0)
	require.Equal(t, []float64{0, 1, 1, 1}, row0)
	for i := 1; i < 4; i++ {
		for j := 1; j < 4; j++ {
			if i == j {
				require.Zero(t, at(t, m, i, j))
				continue
			}
			require.InDelta(t, math.Sqrt2, at(t, m, i, j), tol)
		}
	}
}

func TestCompute_CornerTetrahedronCancel(t *testing.T) {
	m, err := distmap.Compute(builder.CornerTetrahedron(), distmap.WithCancelDistance(0.5))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				require.Zero(t, at(t, m, i, j))
				continue
			}
			require.True(t, math.IsInf(at(t, m, i, j), 1), "(%d,%d)", i, j)
		}
	}
}

// ------------------------------------------------------------------------
// 2. Matrix properties.
// ------------------------------------------------------------------------

func TestCompute_MetricProperties(t *testing.T) {
	ico, err := builder.Platonic(builder.Icosahedron)
	require.NoError(t, err)

	cases := []struct {
		name string
		s    *surface.Surface
	}{
		{"Icosahedron", ico},
		{"Octahedron", mustPlatonic(t, builder.Octahedron)},
		{"Grid4x5", grid(t, 4, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := distmap.Compute(tc.s)
			require.NoError(t, err)
			require.NoError(t, matrix.ValidateSquare(m))
			require.NoError(t, matrix.ValidateZeroDiagonal(m, 0))
			require.NoError(t, matrix.ValidateSymmetric(m, tol))

			n := m.Rows()
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					for k := 0; k < n; k++ {
						require.LessOrEqual(t, at(t, m, i, k), at(t, m, i, j)+at(t, m, j, k)+tol,
							"d(%d,%d) > d(%d,%d)+d(%d,%d)", i, k, i, j, j, k)
					}
				}
			}
		})
	}
}

func mustPlatonic(t testing.TB, name builder.PlatonicName) *surface.Surface {
	t.Helper()
	s, err := builder.Platonic(name)
	require.NoError(t, err)

	return s
}

func TestCompute_MatchesFloydWarshall(t *testing.T) {
	s := grid(t, 5, 6)
	g, err := meshgraph.Build(s)
	require.NoError(t, err)
	want, err := g.Adjacency()
	require.NoError(t, err)
	require.NoError(t, matrix.FloydWarshall(want))

	got, err := distmap.ComputeGraph(g, distmap.WithWorkers(3))
	require.NoError(t, err)
	for i := 0; i < got.Rows(); i++ {
		w, _ := want.Row(i)
		r, _ := got.Row(i)
		require.InDeltaSlice(t, w, r, tol, "row %d", i)
	}
}

func TestCompute_CancelAgainstUnbounded(t *testing.T) {
	s := grid(t, 6, 6)
	ref, err := distmap.Compute(s)
	require.NoError(t, err)

	for _, cut := range []float64{0, 1, math.Sqrt2, 2.5, 5} {
		m, err := distmap.Compute(s, distmap.WithCancelDistance(cut))
		require.NoError(t, err)
		for i := 0; i < ref.Rows(); i++ {
			for j := 0; j < ref.Cols(); j++ {
				want := at(t, ref, i, j)
				got := at(t, m, i, j)
				if want > cut {
					require.True(t, math.IsInf(got, 1), "cut=%v (%d,%d)", cut, i, j)
				} else {
					require.Equal(t, want, got, "cut=%v (%d,%d)", cut, i, j)
				}
			}
		}
	}
}

func TestCompute_SubsetRowsMatchDirectRuns(t *testing.T) {
	s := grid(t, 4, 4)
	g, err := meshgraph.Build(s)
	require.NoError(t, err)

	subset := []int{7, 0, 15, 7}
	m, err := distmap.ComputeGraph(g, distmap.WithSubset(subset), distmap.WithWorkers(2))
	require.NoError(t, err)
	require.Equal(t, len(subset), m.Rows())
	require.Equal(t, 16, m.Cols())

	for i, src := range subset {
		want, err := dijkstra.ShortestPaths(g, src)
		require.NoError(t, err)
		row, _ := m.Row(i)
		require.Equal(t, want, row, "row %d (source %d)", i, src)
	}
}

func TestCompute_WithSubsetCopiesInput(t *testing.T) {
	subset := []int{1, 2}
	opt := distmap.WithSubset(subset)
	subset[0] = 99 // must not leak into the option

	m, err := distmap.Compute(builder.CornerTetrahedron(), opt)
	require.NoError(t, err)
	require.Equal(t, 1.0, at(t, m, 0, 0))
}

// TestCompute_WorkerCountsAgree: the result must not depend on how rows are
// distributed.
func TestCompute_WorkerCountsAgree(t *testing.T) {
	s := grid(t, 7, 5)
	base, err := distmap.Compute(s, distmap.WithWorkers(1), distmap.WithCancelDistance(3))
	require.NoError(t, err)

	for _, w := range []int{2, 3, runtime.NumCPU(), 64} {
		m, err := distmap.Compute(s, distmap.WithWorkers(w), distmap.WithCancelDistance(3))
		require.NoError(t, err)
		require.Equal(t, base, m, "workers=%d", w)
	}
}

// TestCompute_NonPositiveWorkersRunSerially: a hand-built Option may leave
// Workers at zero or below; the computation falls back to one worker.
func TestCompute_NonPositiveWorkersRunSerially(t *testing.T) {
	tet := builder.CornerTetrahedron()
	base, err := distmap.Compute(tet, distmap.WithWorkers(1))
	require.NoError(t, err)

	for _, w := range []int{0, -3} {
		w := w
		m, err := distmap.Compute(tet, func(o *distmap.Options) { o.Workers = w })
		require.NoError(t, err, "workers=%d", w)
		require.Equal(t, 4, m.Rows())
		require.Equal(t, base, m, "workers=%d", w)
	}
}

// ------------------------------------------------------------------------
// 3. Empty input and errors.
// ------------------------------------------------------------------------

func TestCompute_Empty(t *testing.T) {
	m, err := distmap.Compute(&surface.Surface{})
	require.NoError(t, err)
	require.Zero(t, m.Rows())
	require.Zero(t, m.Cols())

	// An explicitly empty subset means "all vertices".
	m, err = distmap.Compute(builder.CornerTetrahedron(), distmap.WithSubset(nil))
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())

	// Isolated vertices: no triangles, only the diagonal is finite.
	pts := &surface.Surface{Vertices: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}}}
	m, err = distmap.Compute(pts)
	require.NoError(t, err)
	require.Zero(t, at(t, m, 1, 1))
	require.True(t, math.IsInf(at(t, m, 0, 1), 1))
}

func TestCompute_ConfigurationErrors(t *testing.T) {
	_, err := distmap.Compute(nil)
	require.ErrorIs(t, err, surface.ErrNilSurface)
	require.ErrorIs(t, err, surface.ErrConfiguration)

	bad := &surface.Surface{
		Vertices:  []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}},
		Triangles: []surface.Triangle{{0, 1, 2}},
	}
	_, err = distmap.Compute(bad)
	require.ErrorIs(t, err, surface.ErrVertexOutOfRange)

	for _, c := range []struct {
		subset []int
		pos    string
	}{{[]int{-1}, "subset[0]"}, {[]int{0, 4}, "subset[1]"}} {
		m, err := distmap.Compute(builder.CornerTetrahedron(), distmap.WithSubset(c.subset))
		require.Nil(t, m)
		require.ErrorIs(t, err, surface.ErrVertexOutOfRange)
		require.ErrorIs(t, err, surface.ErrConfiguration)
		require.ErrorContains(t, err, c.pos)
	}

	_, err = distmap.Compute(&surface.Surface{}, distmap.WithSubset([]int{0}))
	require.ErrorIs(t, err, surface.ErrConfiguration)

	_, err = distmap.ComputeGraph(nil)
	require.ErrorIs(t, err, meshgraph.ErrNilGraph)
}

func TestCompute_WorkerPanicBecomesFailure(t *testing.T) {
	s := grid(t, 4, 4)
	hook := func(row int) {
		if row == 9 {
			panic("boom")
		}
	}
	m, err := distmap.Compute(s, distmap.WithWorkers(4), distmap.WithRowHook(hook))
	require.Nil(t, m)
	require.ErrorIs(t, err, distmap.ErrComputationFailure)
	require.Contains(t, err.Error(), "boom")
	require.NotErrorIs(t, err, surface.ErrConfiguration)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { distmap.WithWorkers(0) })
	require.Panics(t, func() { distmap.WithWorkers(-3) })
	require.Panics(t, func() { distmap.WithCancelDistance(-0.1) })
	require.Panics(t, func() { distmap.WithCancelDistance(math.NaN()) })
	require.NotPanics(t, func() { distmap.WithCancelDistance(math.Inf(1)) })

	def := distmap.DefaultOptions()
	require.GreaterOrEqual(t, def.Workers, 1)
	require.True(t, math.IsInf(def.CancelDistance, 1))
	require.Empty(t, def.Subset)
}

// ------------------------------------------------------------------------
// 4. Partitioning.
// ------------------------------------------------------------------------

func TestPartition(t *testing.T) {
	cases := []struct {
		rows, workers int
		want          [][2]int
	}{
		{1, 1, [][2]int{{0, 1}}},
		{10, 1, [][2]int{{0, 10}}},
		{10, 3, [][2]int{{0, 4}, {4, 7}, {7, 10}}},
		{10, 4, [][2]int{{0, 3}, {3, 6}, {6, 8}, {8, 10}}},
		{4, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, distmap.Partition(tc.rows, tc.workers), "rows=%d workers=%d", tc.rows, tc.workers)
	}
}
