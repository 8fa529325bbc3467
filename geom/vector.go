// Package geom: the Vector type — directional geometry on a 1×N matrix.

package geom

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geomline/matrix"
)

// Vector is a displacement in N-dimensional space, stored as a 1×N
// matrix. Unlike a Point it carries directional semantics: length,
// normalization, negation.
type Vector[T matrix.Num] struct {
	m *matrix.Matrix[T] // 1×N substrate
}

// NewVector builds a vector from its components.
// Returns matrix.ErrInvalidDimensions when no components are given.
func NewVector[T matrix.Num](comps ...T) (Vector[T], error) {
	m, err := matrix.NewFrom(1, len(comps), comps)
	if err != nil {
		return Vector[T]{}, err
	}

	return Vector[T]{m: m}, nil
}

// NewVector3 builds a 3D vector; it cannot fail.
func NewVector3[T matrix.Num](x, y, z T) Vector[T] {
	m, _ := matrix.NewFrom(1, 3, []T{x, y, z}) // shape is statically valid

	return Vector[T]{m: m}
}

// VectorFromMatrix wraps an existing 1×N matrix as a Vector.
// The matrix is cloned; returns ErrNotRowVector unless it has one row.
func VectorFromMatrix[T matrix.Num](m *matrix.Matrix[T]) (Vector[T], error) {
	if m.Rows() != 1 {
		return Vector[T]{}, fmt.Errorf("VectorFromMatrix(%dx%d): %w", m.Rows(), m.Cols(), ErrNotRowVector)
	}

	return Vector[T]{m: m.Clone()}, nil
}

// Between builds the difference vector from − to.
// The orientation is deliberate (see the package doc); flipping it
// breaks the rotation/shift math downstream.
// Returns matrix.ErrDimensionMismatch when the points' dimensions differ.
func Between[T matrix.Num](from, to Point[T]) (Vector[T], error) {
	m, err := from.m.Sub(to.m)
	if err != nil {
		return Vector[T]{}, err
	}

	return Vector[T]{m: m}, nil
}

// Dim returns the vector's dimension. Complexity: O(1).
func (v Vector[T]) Dim() int { return v.m.Cols() }

// Coord returns the component at index i, or matrix.ErrOutOfRange.
func (v Vector[T]) Coord(i int) (T, error) {
	return v.m.At(0, i)
}

// Mat returns a copy of the underlying 1×N matrix.
func (v Vector[T]) Mat() *matrix.Matrix[T] {
	return v.m.Clone()
}

// Clone returns an independent copy of the vector.
func (v Vector[T]) Clone() Vector[T] {
	return Vector[T]{m: v.m.Clone()}
}

// Equal reports whether both vectors have the same dimension and
// components.
func (v Vector[T]) Equal(other Vector[T]) bool {
	return v.m.Equal(other.m)
}

// Length returns the Euclidean magnitude: sqrt of the scalar from
// self · selfᵀ. Well-defined for any dimension.
// Complexity: O(n).
func (v Vector[T]) Length() float64 {
	prod, _ := v.m.Mul(v.m.Transposed()) // 1×N · N×1 always conforms
	square, _ := prod.At(0, 0)

	return math.Sqrt(float64(square))
}

// Normalize returns a unit-length float64 vector with the same
// direction. A zero-length vector normalizes to the zero vector — by
// contract this is not an error.
// Complexity: O(n).
func (v Vector[T]) Normalize() Vector[float64] {
	out := matrix.Convert[float64](v.m)
	length := v.Length()
	if length == 0 {
		zero, _ := matrix.New[float64](1, v.m.Cols())
		return Vector[float64]{m: zero}
	}
	for j := 0; j < out.Cols(); j++ {
		c, _ := out.At(0, j)
		_ = out.Set(0, j, c/length)
	}

	return Vector[float64]{m: out}
}

// Negated returns the component-wise negation.
// Complexity: O(n).
func (v Vector[T]) Negated() Vector[T] {
	zero, _ := matrix.New[T](1, v.m.Cols())
	m, _ := zero.Sub(v.m) // shapes match by construction

	return Vector[T]{m: m}
}

// String implements fmt.Stringer: "⟨x, y, z⟩".
func (v Vector[T]) String() string {
	s := "⟨"
	for j := 0; j < v.m.Cols(); j++ {
		c, _ := v.m.At(0, j)
		if j > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v", c)
	}

	return s + "⟩"
}
