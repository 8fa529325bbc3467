package geom

import "errors"

var (
	// ErrNotRowVector indicates a matrix offered as a Point or Vector has
	// more than one row; only 1×N shapes qualify.
	ErrNotRowVector = errors.New("geom: matrix is not a single row")
)
