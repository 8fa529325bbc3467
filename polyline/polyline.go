// Package polyline: the container — storage layout, growth, access.
// Geometry operations live in geometry.go, merging in merge.go.

package polyline

import (
	"fmt"

	"github.com/katalvlaran/geomline/geom"
	"github.com/katalvlaran/geomline/matrix"
)

// growBy is the fixed capacity increment. Growth is deliberately linear,
// not geometric: the container trades amortized constants for tight
// memory, and merge strategies reuse existing buffers wherever possible.
const growBy = 5

// pointDim is the only dimension a polyline stores.
const pointDim = 3

// entry is one record: a 3D point and its single-character name. Points
// and names live in the same buffer so no operation can ever resize or
// shift one without the other.
type entry[T matrix.Num] struct {
	pt   geom.Point[T]
	name byte
}

// Polyline is an ordered, mutable sequence of labeled 3D points.
// Invariant: 0 ≤ size ≤ len(buf); buf[:size] are live records.
// The zero value is an empty polyline ready for use.
type Polyline[T matrix.Num] struct {
	buf  []entry[T] // backing storage; len(buf) is the capacity
	size int        // number of live records
}

// New returns an empty polyline with no allocated capacity.
func New[T matrix.Num]() *Polyline[T] {
	return &Polyline[T]{}
}

// Size returns the number of points. Complexity: O(1).
func (p *Polyline[T]) Size() int { return p.size }

// Cap returns the current capacity in records. Complexity: O(1).
func (p *Polyline[T]) Cap() int { return len(p.buf) }

// grow replaces the backing buffer with one of newCap records,
// preserving live records. The new buffer is fully populated before the
// handle changes, so a failed allocation can never leave the polyline
// half-resized.
// Complexity: O(size).
func (p *Polyline[T]) grow(newCap int) {
	if newCap == len(p.buf) {
		return
	}
	next := make([]entry[T], newCap)
	copy(next, p.buf[:p.size])
	p.buf = next
}

// AddPoint appends a labeled point, growing capacity by the fixed
// increment when full. Returns matrix.ErrDimensionMismatch unless the
// point is 3-dimensional.
// Complexity: O(1) amortized.
func (p *Polyline[T]) AddPoint(pt geom.Point[T], name byte) error {
	if pt.Dim() != pointDim {
		return fmt.Errorf("polyline: AddPoint with %d-dimensional point: %w",
			pt.Dim(), matrix.ErrDimensionMismatch)
	}
	if p.size == len(p.buf) {
		p.grow(len(p.buf) + growBy)
	}
	p.buf[p.size] = entry[T]{pt: pt, name: name}
	p.size++

	return nil
}

// Point returns the point at index i in insertion order.
// Returns ErrOutOfRange when i ≥ Size().
// Complexity: O(1).
func (p *Polyline[T]) Point(i int) (geom.Point[T], error) {
	if i < 0 || i >= p.size {
		return geom.Point[T]{}, fmt.Errorf("polyline: Point(%d) with size %d: %w", i, p.size, ErrOutOfRange)
	}

	return p.buf[i].pt, nil
}

// PointName returns the name of the point at index i.
// Returns ErrOutOfRange when i ≥ Size().
// Complexity: O(1).
func (p *Polyline[T]) PointName(i int) (byte, error) {
	if i < 0 || i >= p.size {
		return 0, fmt.Errorf("polyline: PointName(%d) with size %d: %w", i, p.size, ErrOutOfRange)
	}

	return p.buf[i].name, nil
}

// Equal reports whether both polylines hold the same number of points
// with element-wise equal coordinates. Names are not compared.
// Complexity: O(size).
func (p *Polyline[T]) Equal(other *Polyline[T]) bool {
	if other == nil || p.size != other.size {
		return false
	}
	for i := 0; i < p.size; i++ {
		if !p.buf[i].pt.Equal(other.buf[i].pt) {
			return false
		}
	}

	return true
}

// Clone returns a deep copy: records are duplicated, points included,
// so the copy shares no state with the receiver.
// Complexity: O(size).
func (p *Polyline[T]) Clone() *Polyline[T] {
	out := &Polyline[T]{buf: make([]entry[T], len(p.buf)), size: p.size}
	for i := 0; i < p.size; i++ {
		out.buf[i] = entry[T]{pt: p.buf[i].pt.Clone(), name: p.buf[i].name}
	}

	return out
}

// String implements fmt.Stringer: "A(0, 0, 0) B(1, 0, 0)".
func (p *Polyline[T]) String() string {
	var s string
	for i := 0; i < p.size; i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%c%s", p.buf[i].name, p.buf[i].pt)
	}

	return s
}
