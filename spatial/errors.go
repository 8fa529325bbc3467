package spatial

import "errors"

var (
	// ErrBadProjection indicates a projection matrix that is not 3×2.
	ErrBadProjection = errors.New("spatial: projection matrix must be 3x2")
)
