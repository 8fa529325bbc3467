// Package matrix: the Matrix[T] container — construction, element
// access, identity. Arithmetic lives in ops.go, views in view.go.

package matrix

import "fmt"

// Num constrains matrix elements to the built-in numeric types.
// byte (~uint8) is included on purpose: the spatial renderer stores its
// character grid as a Matrix[byte].
type Num interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix is a dense rows×cols matrix of T in row-major order.
// The shape is fixed at construction and immutable for the value's
// lifetime; data holds exactly rows*cols elements.
type Matrix[T Num] struct {
	rows, cols int // shape, fixed at construction
	data       []T // flat backing storage, length == rows*cols
}

// ctxErrorf wraps a sentinel with method context for the error chain.
func ctxErrorf[T Num](m *Matrix[T], method string, i, j int, err error) error {
	return fmt.Errorf("Matrix(%dx%d).%s(%d,%d): %w", m.rows, m.cols, method, i, j, err)
}

// New creates a rows×cols matrix with every element set to T's zero value.
// Returns ErrInvalidDimensions unless rows > 0 and cols > 0.
// Complexity: O(rows·cols).
func New[T Num](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates a rows×cols matrix with every element set to v.
// Complexity: O(rows·cols).
func NewFilled[T Num](rows, cols int, v T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// NewFrom creates a rows×cols matrix from values in row-major order.
// A shorter sequence leaves the remainder zero-valued; a longer one is
// rejected with ErrTooManyValues.
// Complexity: O(rows·cols).
func NewFrom[T Num](rows, cols int, values []T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) > rows*cols {
		return nil, fmt.Errorf("NewFrom(%dx%d) with %d values: %w",
			rows, cols, len(values), ErrTooManyValues)
	}
	copy(m.data, values) // remainder stays zero

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// indexOf computes the flat index for (i, j) or reports ErrOutOfRange.
func (m *Matrix[T]) indexOf(method string, i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, ctxErrorf(m, method, i, j, ErrOutOfRange)
	}

	return i*m.cols + j, nil
}

// At retrieves the element at (i, j).
// Returns ErrOutOfRange if either index is outside its bound.
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) (T, error) {
	idx, err := m.indexOf("At", i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (i, j).
// Returns ErrOutOfRange if either index is outside its bound.
// Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, v T) error {
	idx, err := m.indexOf("Set", i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(rows·cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// Equal reports whether both matrices have the same shape and
// element-wise equal contents.
// Complexity: O(rows·cols).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// Values returns a row-major copy of the matrix contents.
// Complexity: O(rows·cols).
func (m *Matrix[T]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(rows·cols).
func (m *Matrix[T]) String() string {
	var s string
	for i := 0; i < m.rows; i++ {
		s += "["
		for j := 0; j < m.cols; j++ {
			s += fmt.Sprintf("%v", m.data[i*m.cols+j])
			if j < m.cols-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
