// Package polyline_test contains unit tests for the geometric
// operations: length, shift, rotation, and isolation-based removal.
package polyline_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geomline/geom"
	"github.com/katalvlaran/geomline/matrix"
	"github.com/katalvlaran/geomline/polyline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// coords flattens a polyline's points into a row-major coordinate slice.
func coords(t *testing.T, p *polyline.Polyline[float64]) []float64 {
	t.Helper()
	out := make([]float64, 0, p.Size()*3)
	for i := 0; i < p.Size(); i++ {
		pt, err := p.Point(i)
		require.NoError(t, err)
		for j := 0; j < 3; j++ {
			c, err := pt.Coord(j)
			require.NoError(t, err)
			out = append(out, c)
		}
	}

	return out
}

// TestLengthRightAngle verifies the spec's exact case: A(0,0,0),
// B(1,0,0), C(1,1,0) has length exactly 2.0.
func TestLengthRightAngle(t *testing.T) {
	p := polyline.New[float64]()
	require.NoError(t, p.AddPoint(geom.NewPoint3(0.0, 0, 0), 'A'))
	require.NoError(t, p.AddPoint(geom.NewPoint3(1.0, 0, 0), 'B'))
	require.NoError(t, p.AddPoint(geom.NewPoint3(1.0, 1, 0), 'C'))

	assert.Equal(t, 2.0, p.Length())
}

// TestLengthDegenerate verifies 0 and 1 points both yield length 0.
func TestLengthDegenerate(t *testing.T) {
	p := polyline.New[float64]()
	assert.Zero(t, p.Length())

	require.NoError(t, p.AddPoint(geom.NewPoint3(3.0, 4, 5), 'A'))
	assert.Zero(t, p.Length())
}

// TestShiftTranslates verifies the spec's shift cases: (0,0,0)→(1,2,3)
// and (1,1,1)→(2,3,4).
func TestShiftTranslates(t *testing.T) {
	p := polyline.New[float64]()
	require.NoError(t, p.AddPoint(geom.NewPoint3(0.0, 0, 0), 'A'))
	require.NoError(t, p.AddPoint(geom.NewPoint3(1.0, 1, 1), 'B'))

	require.NoError(t, p.Shift(geom.NewVector3(1.0, 2, 3)))

	require.Equal(t, []float64{1, 2, 3, 2, 3, 4}, coords(t, p))
}

// TestShiftRoundTrip verifies shift(v) then shift(v.Negated()) restores
// every coordinate within floating-point tolerance.
func TestShiftRoundTrip(t *testing.T) {
	p := polyline.New[float64]()
	require.NoError(t, p.AddPoint(geom.NewPoint3(0.25, -1.5, 3.0), 'A'))
	require.NoError(t, p.AddPoint(geom.NewPoint3(7.0, 0.125, -2.0), 'B'))
	require.NoError(t, p.AddPoint(geom.NewPoint3(-4.5, 9.75, 1.0), 'C'))
	before := coords(t, p)

	v := geom.NewVector3(0.1, -2.7, 13.37)
	require.NoError(t, p.Shift(v))
	require.NoError(t, p.Shift(v.Negated()))

	assert.True(t, floats.EqualApprox(before, coords(t, p), 1e-12),
		"shift round trip must restore coordinates")
}

// TestShiftRejectsWrongDimension ensures only 3D vectors are accepted.
func TestShiftRejectsWrongDimension(t *testing.T) {
	p := polyline.New[float64]()
	v, err := geom.NewVector(1.0, 2.0)
	require.NoError(t, err)

	require.ErrorIs(t, p.Shift(v), matrix.ErrDimensionMismatch)
}

// TestRotateQuarterTurnAroundZ rotates (1,0,0) by π/2 around the z-axis
// and expects (0,1,0).
func TestRotateQuarterTurnAroundZ(t *testing.T) {
	p := polyline.New[float64]()
	require.NoError(t, p.AddPoint(geom.NewPoint3(1.0, 0, 0), 'A'))

	require.NoError(t, p.Rotate(geom.NewVector3(0.0, 0, 1), math.Pi/2))

	assert.True(t, floats.EqualApprox([]float64{0, 1, 0}, coords(t, p), 1e-12))
}

// TestRotateAxisNotNormalized verifies the axis is normalized
// internally: rotating around (0,0,10) matches rotating around (0,0,1).
func TestRotateAxisNotNormalized(t *testing.T) {
	a := polyline.New[float64]()
	b := polyline.New[float64]()
	require.NoError(t, a.AddPoint(geom.NewPoint3(2.0, -1, 0.5), 'A'))
	require.NoError(t, b.AddPoint(geom.NewPoint3(2.0, -1, 0.5), 'A'))

	require.NoError(t, a.Rotate(geom.NewVector3(0.0, 0, 1), 1.0))
	require.NoError(t, b.Rotate(geom.NewVector3(0.0, 0, 10), 1.0))

	assert.True(t, floats.EqualApprox(coords(t, a), coords(t, b), 1e-12))
}

// TestRotateFullTurnRestores verifies a 2π rotation around an arbitrary
// axis restores the original coordinates within tolerance.
func TestRotateFullTurnRestores(t *testing.T) {
	p := polyline.New[float64]()
	require.NoError(t, p.AddPoint(geom.NewPoint3(1.0, 2, 3), 'A'))
	require.NoError(t, p.AddPoint(geom.NewPoint3(-4.0, 0, 2.5), 'B'))
	before := coords(t, p)

	require.NoError(t, p.Rotate(geom.NewVector3(1.0, 1, 1), 2*math.Pi))

	assert.True(t, floats.EqualApprox(before, coords(t, p), 1e-9))
}

// TestRotateZeroAxisPropagatesNaN pins the documented edge case: a
// zero-length axis silently poisons the coordinates with NaN rather
// than reporting an error.
func TestRotateZeroAxisPropagatesNaN(t *testing.T) {
	p := polyline.New[float64]()
	require.NoError(t, p.AddPoint(geom.NewPoint3(1.0, 2, 3), 'A'))

	require.NoError(t, p.Rotate(geom.NewVector3(0.0, 0, 0), 1.0)) // no error by contract

	pt, err := p.Point(0)
	require.NoError(t, err)
	x, err := pt.Coord(0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(x), "zero axis must propagate NaN")
}

// TestRemoveMostIsolatedEndpoint verifies the spec's 3-point case:
// A(0,0,0), B(1,0,0), C(3,0,0) — C is farthest from its nearest
// neighbor and is removed; A and B remain in order.
func TestRemoveMostIsolatedEndpoint(t *testing.T) {
	p := polyline.New[float64]()
	addPoints(t, p, "ABC", 0, 1, 3)

	p.RemoveMostIsolatedPoint()

	require.Equal(t, 2, p.Size())
	for i, want := range []byte{'A', 'B'} {
		name, err := p.PointName(i)
		require.NoError(t, err)
		assert.Equal(t, want, name)
	}
}

// TestRemoveMostIsolatedInterior verifies a genuine interior outlier:
// C sits far from both neighbors while the endpoints hug theirs.
func TestRemoveMostIsolatedInterior(t *testing.T) {
	p := polyline.New[float64]()
	addPoints(t, p, "ABCDE", 0, 1, 10, 19, 20)
	// Scores: A=1, B=min(1,9)=1, C=min(9,9)=9, D=min(9,1)=1, E=1 → C removed.
	p.RemoveMostIsolatedPoint()

	require.Equal(t, 4, p.Size())
	for i, want := range []byte{'A', 'B', 'D', 'E'} {
		name, err := p.PointName(i)
		require.NoError(t, err)
		assert.Equal(t, want, name)
	}
}

// TestRemoveMostIsolatedTieEarliestWins pins the deterministic
// tie-break: equal scores keep the earliest point's claim.
func TestRemoveMostIsolatedTieEarliestWins(t *testing.T) {
	p := polyline.New[float64]()
	addPoints(t, p, "ABCD", 0, 1, 2, 3) // every score is 1

	p.RemoveMostIsolatedPoint()

	require.Equal(t, 3, p.Size())
	name, err := p.PointName(0)
	require.NoError(t, err)
	assert.Equal(t, byte('B'), name) // A, the earliest, was removed
}

// TestRemoveMostIsolatedNoOp verifies polylines of ≤ 2 points are left
// alone.
func TestRemoveMostIsolatedNoOp(t *testing.T) {
	p := polyline.New[float64]()
	addPoints(t, p, "AB", 0, 100)

	p.RemoveMostIsolatedPoint()
	require.Equal(t, 2, p.Size())
}
