package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/geomline/matrix"
)

// ExampleMatrix_Mul demonstrates multiplying a point (1×3) by a
// projection matrix (3×2) — the shape used by the spatial renderer.
func ExampleMatrix_Mul() {
	point, _ := matrix.NewFrom(1, 3, []float64{2, 3, 4})
	proj, _ := matrix.NewFrom(3, 2, []float64{
		1, 0,
		0, 1,
		0, 0,
	})

	flat, _ := point.Mul(proj)
	fmt.Print(flat)
	// Output:
	// [2, 3]
}

// ExampleMatrix_Transposed demonstrates the column-major re-read.
func ExampleMatrix_Transposed() {
	m, _ := matrix.NewFrom(2, 3, []int{1, 2, 3, 4, 5, 6})
	fmt.Print(m.Transposed())
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}
