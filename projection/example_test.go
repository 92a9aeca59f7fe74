package projection_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/surfdist/builder"
	"github.com/katalvlaran/surfdist/projection"
)

// ExampleProject snaps two sensors onto the corner tetrahedron.
func ExampleProject() {
	s := builder.CornerTetrahedron()
	idx, err := projection.Project(s, []mgl64.Vec3{{0.1, 0.1, 0.1}, {0, 0.8, 0.1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(idx)
	// Output: [0 2]
}

// ExampleNearest reports the distance to the chosen vertex as well.
func ExampleNearest() {
	s, _ := builder.Grid(2, 2)
	v, d, _ := projection.Nearest(s, mgl64.Vec3{1, 1, 3})
	fmt.Printf("vertex %d at %.1f\n", v, d)
	// Output: vertex 3 at 3.0
}
