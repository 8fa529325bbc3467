// Package polyline_test contains unit tests for the container itself:
// growth, access, equality, cloning.
package polyline_test

import (
	"testing"

	"github.com/katalvlaran/geomline/geom"
	"github.com/katalvlaran/geomline/matrix"
	"github.com/katalvlaran/geomline/polyline"
	"github.com/stretchr/testify/require"
)

// addPoints appends labeled points (x, 0, 0) for each given x.
func addPoints(t *testing.T, p *polyline.Polyline[float64], names string, xs ...float64) {
	t.Helper()
	for i, x := range xs {
		require.NoError(t, p.AddPoint(geom.NewPoint3(x, 0, 0), names[i]))
	}
}

// TestEmptyPolyline verifies the zero state: no points, no capacity,
// zero length.
func TestEmptyPolyline(t *testing.T) {
	p := polyline.New[float64]()

	require.Zero(t, p.Size())
	require.Zero(t, p.Cap())
	require.Zero(t, p.Length())
}

// TestAddPointGrowsByFixedIncrement verifies the +5 growth policy.
func TestAddPointGrowsByFixedIncrement(t *testing.T) {
	p := polyline.New[float64]()

	for i := 0; i < 5; i++ {
		require.NoError(t, p.AddPoint(geom.NewPoint3(float64(i), 0, 0), byte('A'+i)))
		require.Equal(t, 5, p.Cap()) // first growth step: 0 → 5
	}

	require.NoError(t, p.AddPoint(geom.NewPoint3(5.0, 0, 0), 'F'))
	require.Equal(t, 10, p.Cap()) // second growth step: 5 → 10, not 5*2^k
	require.Equal(t, 6, p.Size())
}

// TestAddPointRejectsWrongDimension ensures only 3D points are accepted.
func TestAddPointRejectsWrongDimension(t *testing.T) {
	p := polyline.New[float64]()
	pt, err := geom.NewPoint(1.0, 2.0) // 2D
	require.NoError(t, err)

	err = p.AddPoint(pt, 'A')
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Zero(t, p.Size())
}

// TestPointAndNameAccess verifies indexed access and insertion order.
func TestPointAndNameAccess(t *testing.T) {
	p := polyline.New[float64]()
	addPoints(t, p, "ABC", 0, 1, 2)

	for i, want := range []float64{0, 1, 2} {
		pt, err := p.Point(i)
		require.NoError(t, err)
		x, err := pt.Coord(0)
		require.NoError(t, err)
		require.Equal(t, want, x)

		name, err := p.PointName(i)
		require.NoError(t, err)
		require.Equal(t, byte('A'+i), name)
	}
}

// TestAccessOutOfRange ensures Point and PointName reject index == size.
func TestAccessOutOfRange(t *testing.T) {
	p := polyline.New[float64]()
	addPoints(t, p, "AB", 0, 1)

	_, err := p.Point(2) // index == size
	require.ErrorIs(t, err, polyline.ErrOutOfRange)

	_, err = p.PointName(2)
	require.ErrorIs(t, err, polyline.ErrOutOfRange)

	_, err = p.PointName(-1)
	require.ErrorIs(t, err, polyline.ErrOutOfRange)
}

// TestEqualIgnoresNames verifies equality compares points only.
func TestEqualIgnoresNames(t *testing.T) {
	a := polyline.New[float64]()
	b := polyline.New[float64]()
	addPoints(t, a, "AB", 0, 1)
	addPoints(t, b, "XY", 0, 1) // same points, different names

	require.True(t, a.Equal(b))

	c := polyline.New[float64]()
	addPoints(t, c, "AB", 0, 2) // different point
	require.False(t, a.Equal(c))

	d := polyline.New[float64]()
	addPoints(t, d, "A", 0) // different size
	require.False(t, a.Equal(d))
	require.False(t, a.Equal(nil))
}

// TestCloneIndependence ensures a clone shares no state with the source.
func TestCloneIndependence(t *testing.T) {
	p := polyline.New[float64]()
	addPoints(t, p, "ABC", 0, 1, 2)

	c := p.Clone()
	require.True(t, p.Equal(c))

	require.NoError(t, c.AddPoint(geom.NewPoint3(9.0, 9, 9), 'Z'))
	require.Equal(t, 3, p.Size()) // source untouched
	require.Equal(t, 4, c.Size())

	require.NoError(t, c.Shift(geom.NewVector3(1.0, 0, 0)))
	pt, err := p.Point(0)
	require.NoError(t, err)
	x, err := pt.Coord(0)
	require.NoError(t, err)
	require.Zero(t, x) // mutating the clone never reaches the source
}
