// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrTooManyValues indicates that a source sequence is longer than rows*cols.
	// Shorter sequences are legal: the remainder stays zero-valued.
	ErrTooManyValues = errors.New("matrix: too many values for shape")

	// ErrOutOfRange indicates that an index (element, row, column, or view
	// position) is outside valid bounds. Public indexers MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, Mul where a.Cols != b.Rows, or Dot
	// over views of different lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
