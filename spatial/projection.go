// Package spatial: stock projection matrices.

package spatial

import (
	"math"

	"github.com/katalvlaran/geomline/matrix"
)

// AxonometricProjection builds a 3×2 projection for a view where X runs
// right across the screen, Z runs up, and Y recedes into the depth at
// the given angle (degrees) to the X axis:
//
//	X → (1, 0)
//	Y → (cos θ, −sin θ)
//	Z → (0, −1)
//
// The Y components are negative because screen rows grow downward.
func AxonometricProjection(angleDeg float64) *matrix.Matrix[float64] {
	rad := angleDeg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	proj, _ := matrix.NewFrom(3, 2, []float64{
		1, 0,
		cos, -sin,
		0, -1,
	})

	return proj
}

// FlatProjection builds the trivial 3×2 projection that drops the Z
// coordinate: X → (1, 0), Y → (0, 1), Z → (0, 0). Used by the demo
// animation, which rotates in 3D itself before projecting.
func FlatProjection() *matrix.Matrix[float64] {
	proj, _ := matrix.NewFrom(3, 2, []float64{
		1, 0,
		0, 1,
		0, 0,
	})

	return proj
}
