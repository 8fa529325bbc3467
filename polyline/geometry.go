// Package polyline: geometric operations — length, translation,
// Rodrigues rotation, and isolation-based point removal. All of them
// are expressed in matrix/vector primitives from packages matrix and
// geom.

package polyline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geomline/geom"
	"github.com/katalvlaran/geomline/matrix"
)

// Length returns the total Euclidean length: the sum of distances
// between consecutive points. Zero or one point yields 0.
// Complexity: O(size).
func (p *Polyline[T]) Length() float64 {
	if p.size <= 1 {
		return 0
	}

	var total float64
	for i := 0; i+1 < p.size; i++ {
		seg, _ := geom.Between(p.buf[i].pt, p.buf[i+1].pt) // stored points are always 3D
		total += seg.Length()
	}

	return total
}

// Shift translates every point by v, in place.
// Returns matrix.ErrDimensionMismatch unless v is 3-dimensional.
// Complexity: O(size).
func (p *Polyline[T]) Shift(v geom.Vector[T]) error {
	if v.Dim() != pointDim {
		return fmt.Errorf("polyline: Shift with %d-dimensional vector: %w",
			v.Dim(), matrix.ErrDimensionMismatch)
	}
	for i := 0; i < p.size; i++ {
		moved, _ := p.buf[i].pt.Add(v) // dimensions verified above
		p.buf[i].pt = moved
	}

	return nil
}

// Rotate rotates every point around axis by radians, in place. The axis
// is normalized internally; the Rodrigues rotation matrix is built once
// and right-multiplied onto each point.
//
// A zero-length axis divides by zero and poisons every coordinate with
// NaN. This is deliberate (see the package doc); check the axis first
// if that matters.
// Returns matrix.ErrDimensionMismatch unless axis is 3-dimensional.
// Complexity: O(size).
func (p *Polyline[T]) Rotate(axis geom.Vector[T], radians float64) error {
	if axis.Dim() != pointDim {
		return fmt.Errorf("polyline: Rotate with %d-dimensional axis: %w",
			axis.Dim(), matrix.ErrDimensionMismatch)
	}

	length := axis.Length() // zero length propagates NaN below, on purpose
	ax, _ := axis.Coord(0)
	ay, _ := axis.Coord(1)
	az, _ := axis.Coord(2)
	x, y, z := float64(ax)/length, float64(ay)/length, float64(az)/length
	cos, sin := math.Cos(radians), math.Sin(radians)

	rot, _ := matrix.NewFrom(3, 3, []float64{
		cos + x*x*(1-cos), y*x*(1-cos) + z*sin, z*x*(1-cos) - y*sin,
		x*y*(1-cos) - z*sin, cos + y*y*(1-cos), z*y*(1-cos) + x*sin,
		x*z*(1-cos) + y*sin, y*z*(1-cos) - x*sin, cos + z*z*(1-cos),
	})

	for i := 0; i < p.size; i++ {
		src := matrix.Convert[float64](p.buf[i].pt.Mat())
		dst, _ := src.Mul(rot) // 1×3 · 3×3 always conforms
		rotated, _ := geom.PointFromMatrix(matrix.Convert[T](dst))
		p.buf[i].pt = rotated
	}

	return nil
}

// RemoveMostIsolatedPoint removes the point farthest from its nearest
// neighbor — a rough local-outlier measure. The isolation score is the
// distance to the single neighbor for the two endpoints, and the
// minimum of the two neighbor distances for interior points. The
// earliest point achieving the maximum score wins ties, so the result
// is deterministic. No-op when the polyline has two points or fewer.
// Complexity: O(size).
func (p *Polyline[T]) RemoveMostIsolatedPoint() {
	if p.size <= 2 {
		return
	}

	// Segment distances: dist[i] is |point[i] point[i+1]|.
	dist := make([]float64, p.size-1)
	for i := 0; i+1 < p.size; i++ {
		seg, _ := geom.Between(p.buf[i].pt, p.buf[i+1].pt)
		dist[i] = seg.Length()
	}

	// Single forward scan; strict > keeps the earliest maximum.
	bestIdx, bestScore := 0, dist[0]
	for i := 1; i < p.size; i++ {
		var score float64
		if i == p.size-1 {
			score = dist[i-1]
		} else {
			score = math.Min(dist[i-1], dist[i])
		}
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}

	// Shift subsequent records left by one; points and names travel
	// together because they share the record.
	copy(p.buf[bestIdx:], p.buf[bestIdx+1:p.size])
	p.buf[p.size-1] = entry[T]{} // drop the dangling record
	p.size--
}
