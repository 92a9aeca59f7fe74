package distmap_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/katalvlaran/surfdist/builder"
	"github.com/katalvlaran/surfdist/distmap"
	"github.com/katalvlaran/surfdist/meshgraph"
)

// BenchmarkComputeGraph measures the full matrix on a 48×48 grid (2304 rows)
// for several worker counts, unbounded and with a cancel distance.
func BenchmarkComputeGraph(b *testing.B) {
	s, err := builder.Grid(48, 48)
	if err != nil {
		b.Fatal(err)
	}
	g, err := meshgraph.Build(s)
	if err != nil {
		b.Fatal(err)
	}

	for _, w := range []int{1, 2, runtime.NumCPU()} {
		for _, cut := range []float64{4, 1e9} {
			b.Run(fmt.Sprintf("Workers%d/Cancel%g", w, cut), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := distmap.ComputeGraph(g, distmap.WithWorkers(w), distmap.WithCancelDistance(cut)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
