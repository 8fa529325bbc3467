package polyline

import "errors"

var (
	// ErrOutOfRange indicates a point or name index at or beyond Size().
	ErrOutOfRange = errors.New("polyline: index out of range")
)
