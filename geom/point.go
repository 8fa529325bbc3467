// Package geom: the Point type — positional geometry on a 1×N matrix.

package geom

import (
	"fmt"

	"github.com/katalvlaran/geomline/matrix"
)

// Point is a position in N-dimensional space, stored as a 1×N matrix.
// The zero Point is not usable; construct via NewPoint/NewPoint3.
type Point[T matrix.Num] struct {
	m *matrix.Matrix[T] // 1×N substrate
}

// NewPoint builds a point from its coordinates.
// Returns matrix.ErrInvalidDimensions when no coordinates are given.
func NewPoint[T matrix.Num](coords ...T) (Point[T], error) {
	m, err := matrix.NewFrom(1, len(coords), coords)
	if err != nil {
		return Point[T]{}, err
	}

	return Point[T]{m: m}, nil
}

// NewPoint3 builds a 3D point. It cannot fail and exists because 3D
// points are the common case throughout polyline and spatial.
func NewPoint3[T matrix.Num](x, y, z T) Point[T] {
	m, _ := matrix.NewFrom(1, 3, []T{x, y, z}) // shape is statically valid

	return Point[T]{m: m}
}

// PointFromMatrix wraps an existing 1×N matrix as a Point.
// The matrix is cloned; returns ErrNotRowVector unless it has one row.
func PointFromMatrix[T matrix.Num](m *matrix.Matrix[T]) (Point[T], error) {
	if m.Rows() != 1 {
		return Point[T]{}, fmt.Errorf("PointFromMatrix(%dx%d): %w", m.Rows(), m.Cols(), ErrNotRowVector)
	}

	return Point[T]{m: m.Clone()}, nil
}

// Dim returns the point's dimension. Complexity: O(1).
func (p Point[T]) Dim() int { return p.m.Cols() }

// Coord returns the coordinate at index i, or matrix.ErrOutOfRange.
func (p Point[T]) Coord(i int) (T, error) {
	return p.m.At(0, i)
}

// Mat returns a copy of the underlying 1×N matrix, so callers can run
// arbitrary matrix arithmetic without aliasing the point.
func (p Point[T]) Mat() *matrix.Matrix[T] {
	return p.m.Clone()
}

// Clone returns an independent copy of the point.
func (p Point[T]) Clone() Point[T] {
	return Point[T]{m: p.m.Clone()}
}

// Equal reports whether both points have the same dimension and
// coordinates.
func (p Point[T]) Equal(other Point[T]) bool {
	return p.m.Equal(other.m)
}

// Add translates the point by a vector, returning a new point.
// Returns matrix.ErrDimensionMismatch when dimensions differ.
func (p Point[T]) Add(v Vector[T]) (Point[T], error) {
	m, err := p.m.Add(v.m)
	if err != nil {
		return Point[T]{}, err
	}

	return Point[T]{m: m}, nil
}

// Apply right-multiplies the point by m (1×N · N×K), returning the
// transformed point. Used for rotation (3×3) and projection (3×2).
// Returns matrix.ErrDimensionMismatch when shapes are incompatible.
func (p Point[T]) Apply(m *matrix.Matrix[T]) (Point[T], error) {
	out, err := p.m.Mul(m)
	if err != nil {
		return Point[T]{}, err
	}

	return Point[T]{m: out}, nil
}

// String implements fmt.Stringer: "(x, y, z)".
func (p Point[T]) String() string {
	s := "("
	for j := 0; j < p.m.Cols(); j++ {
		v, _ := p.m.At(0, j)
		if j > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v", v)
	}

	return s + ")"
}
