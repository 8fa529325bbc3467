// Package matrix: row and column views.
// A View is the package's "ordered sequence with random access": rows
// are contiguous (stride 1), columns are strided (stride = Cols()), and
// both expose the same surface so multiplication and transposition are
// written once against it.

package matrix

import "fmt"

// View is a random-access window over n elements of a matrix's backing
// storage, start offset plus k·stride for position k. Views alias the
// matrix they came from: Set writes through.
type View[T Num] struct {
	data   []T // the owning matrix's backing slice, NOT a copy
	start  int // flat offset of position 0
	stride int // flat distance between consecutive positions
	n      int // number of addressable positions
}

// Len returns the number of elements in the view. Complexity: O(1).
func (v View[T]) Len() int { return v.n }

// At returns the element at position k, or ErrOutOfRange.
// Complexity: O(1).
func (v View[T]) At(k int) (T, error) {
	if k < 0 || k >= v.n {
		var zero T
		return zero, fmt.Errorf("View.At(%d) with len %d: %w", k, v.n, ErrOutOfRange)
	}

	return v.data[v.start+k*v.stride], nil
}

// Set writes v at position k through to the underlying matrix, or
// returns ErrOutOfRange. Complexity: O(1).
func (v View[T]) Set(k int, val T) error {
	if k < 0 || k >= v.n {
		return fmt.Errorf("View.Set(%d) with len %d: %w", k, v.n, ErrOutOfRange)
	}
	v.data[v.start+k*v.stride] = val

	return nil
}

// Row returns a contiguous view over row i (stride 1, Cols() elements).
// Returns ErrOutOfRange if i is not a valid row index.
// Complexity: O(1).
func (m *Matrix[T]) Row(i int) (View[T], error) {
	if i < 0 || i >= m.rows {
		return View[T]{}, fmt.Errorf("Matrix(%dx%d).Row(%d): %w", m.rows, m.cols, i, ErrOutOfRange)
	}

	return View[T]{data: m.data, start: i * m.cols, stride: 1, n: m.cols}, nil
}

// Column returns a strided view over column j (stride Cols(), Rows()
// elements). Returns ErrOutOfRange if j is not a valid column index.
// Complexity: O(1).
func (m *Matrix[T]) Column(j int) (View[T], error) {
	if j < 0 || j >= m.cols {
		return View[T]{}, fmt.Errorf("Matrix(%dx%d).Column(%d): %w", m.rows, m.cols, j, ErrOutOfRange)
	}

	return View[T]{data: m.data, start: j, stride: m.cols, n: m.rows}, nil
}

// Dot computes the inner product of two equal-length views, traversing
// them in lockstep. Returns ErrDimensionMismatch when lengths differ.
// Complexity: O(n).
func Dot[T Num](a, b View[T]) (T, error) {
	var sum T
	if a.n != b.n {
		return sum, fmt.Errorf("Dot over lens %d and %d: %w", a.n, b.n, ErrDimensionMismatch)
	}
	for k := 0; k < a.n; k++ {
		sum += a.data[a.start+k*a.stride] * b.data[b.start+k*b.stride]
	}

	return sum, nil
}
