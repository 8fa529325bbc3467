// Package matrix_test contains unit tests for matrix arithmetic:
// Add/Sub, Mul over views, Transposed, and Convert.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/geomline/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// mustFrom builds a matrix from row-major values or fails the test.
func mustFrom[T matrix.Num](t *testing.T, rows, cols int, values []T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.NewFrom(rows, cols, values)
	require.NoError(t, err)

	return m
}

// TestAddSub verifies element-wise addition and subtraction.
func TestAddSub(t *testing.T) {
	a := mustFrom(t, 2, 2, []int{1, 2, 3, 4})
	b := mustFrom(t, 2, 2, []int{10, 20, 30, 40})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []int{11, 22, 33, 44}, sum.Values())

	diff, err := sum.Sub(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(a)) // (a+b)-b == a
}

// TestAddSubDimensionMismatch ensures shape checks reject mismatched operands.
func TestAddSubDimensionMismatch(t *testing.T) {
	a := mustFrom(t, 2, 2, []int{1, 2, 3, 4})
	b := mustFrom(t, 2, 3, []int{1, 2, 3, 4, 5, 6})

	_, err := a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.Sub(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulKnownProduct checks a hand-computed 2x3 · 3x2 product.
func TestMulKnownProduct(t *testing.T) {
	a := mustFrom(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mustFrom(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 2, p.Cols())
	require.Equal(t, []float64{58, 64, 139, 154}, p.Values())
}

// TestMulDimensionMismatch ensures Mul rejects a.Cols != b.Rows.
func TestMulDimensionMismatch(t *testing.T) {
	a := mustFrom(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mustFrom(t, 2, 2, []float64{1, 2, 3, 4})

	_, err := a.Mul(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulAssociativity verifies (A·B)·C == A·(B·C) within floating-point
// tolerance for rectangular shapes.
func TestMulAssociativity(t *testing.T) {
	a := mustFrom(t, 2, 3, []float64{0.5, -1.25, 2, 3.75, 4, -0.5})
	b := mustFrom(t, 3, 4, []float64{1, 2, 3, 4, -5, 6, -7, 8, 9, 0.25, 11, -12})
	c := mustFrom(t, 4, 2, []float64{2, -1, 0.5, 3, -2, 4, 1, 1})

	ab, err := a.Mul(b)
	require.NoError(t, err)
	left, err := ab.Mul(c)
	require.NoError(t, err)

	bc, err := b.Mul(c)
	require.NoError(t, err)
	right, err := a.Mul(bc)
	require.NoError(t, err)

	require.True(t, floats.EqualApprox(left.Values(), right.Values(), 1e-9),
		"matrix multiplication must be associative within tolerance")
}

// TestTransposedInvolution verifies transposed(transposed(M)) == M for a
// spread of shapes, 1×1 included.
func TestTransposedInvolution(t *testing.T) {
	shapes := []struct{ r, c int }{{1, 1}, {1, 4}, {4, 1}, {2, 3}, {3, 3}}
	for _, s := range shapes {
		values := make([]float64, s.r*s.c)
		for i := range values {
			values[i] = float64(i*i) - 3.5 // arbitrary distinct values
		}
		m := mustFrom(t, s.r, s.c, values)

		tt := m.Transposed().Transposed()
		require.True(t, m.Equal(tt), "shape %dx%d", s.r, s.c)
	}
}

// TestTransposedLayout checks the column-major re-read on a concrete case.
func TestTransposedLayout(t *testing.T) {
	m := mustFrom(t, 2, 3, []int{1, 2, 3, 4, 5, 6})

	tr := m.Transposed()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, []int{1, 4, 2, 5, 3, 6}, tr.Values())
}

// TestConvert verifies explicit numeric promotion preserves shape and values.
func TestConvert(t *testing.T) {
	m := mustFrom(t, 2, 2, []int{1, 2, 3, 4})

	f := matrix.Convert[float64](m)
	require.Equal(t, 2, f.Rows())
	require.Equal(t, 2, f.Cols())
	require.Equal(t, []float64{1, 2, 3, 4}, f.Values())
}
