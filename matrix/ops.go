// Package matrix: arithmetic — element-wise addition/subtraction,
// multiplication over row/column views, transposition, and explicit
// numeric promotion.

package matrix

import "fmt"

// Add returns the element-wise sum as a new matrix.
// Returns ErrDimensionMismatch unless both shapes are identical.
// Complexity: O(rows·cols).
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("Matrix(%dx%d).Add: %w", m.rows, m.cols, ErrDimensionMismatch)
	}
	out := m.Clone()
	for i, v := range other.data {
		out.data[i] += v
	}

	return out, nil
}

// Sub returns the element-wise difference as a new matrix.
// Returns ErrDimensionMismatch unless both shapes are identical.
// Complexity: O(rows·cols).
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("Matrix(%dx%d).Sub: %w", m.rows, m.cols, ErrDimensionMismatch)
	}
	out := m.Clone()
	for i, v := range other.data {
		out.data[i] -= v
	}

	return out, nil
}

// Mul returns the matrix product m·other as a new Rows()×other.Cols()
// matrix. Requires m.Cols() == other.Rows(), else ErrDimensionMismatch.
// Each result element is the dot product of a row view of m against a
// column view of other, traversed in lockstep.
// Complexity: O(rows·cols·other.cols).
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	if other == nil || m.cols != other.rows {
		return nil, fmt.Errorf("Matrix(%dx%d).Mul: %w", m.rows, m.cols, ErrDimensionMismatch)
	}
	out := &Matrix[T]{rows: m.rows, cols: other.cols, data: make([]T, m.rows*other.cols)}

	for i := 0; i < m.rows; i++ {
		row, _ := m.Row(i) // i is in range by construction
		for j := 0; j < other.cols; j++ {
			col, _ := other.Column(j)
			v, _ := Dot(row, col) // lengths match: m.cols == other.rows
			out.data[i*out.cols+j] = v
		}
	}

	return out, nil
}

// Transposed returns a new cols×rows matrix, built by re-reading the
// receiver in column-major order. Works for any shape, 1×1 included.
// Complexity: O(rows·cols).
func (m *Matrix[T]) Transposed() *Matrix[T] {
	out := &Matrix[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}

	idx := 0
	for j := 0; j < m.cols; j++ {
		col, _ := m.Column(j)
		for k := 0; k < col.Len(); k++ {
			v, _ := col.At(k)
			out.data[idx] = v
			idx++
		}
	}

	return out
}

// Convert returns a copy of m with every element converted to To.
// This is the package's explicit numeric promotion: Go generics have no
// implicit common-type arithmetic, so mixed-precision work (e.g. an
// integer point against a float rotation) converts exactly once at the
// call site.
// Complexity: O(rows·cols).
func Convert[To, From Num](m *Matrix[From]) *Matrix[To] {
	out := &Matrix[To]{rows: m.rows, cols: m.cols, data: make([]To, len(m.data))}
	for i, v := range m.data {
		out.data[i] = To(v)
	}

	return out
}
