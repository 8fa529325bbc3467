// Package geom provides Points and Vectors as thin semantic wrappers
// over 1×N matrices.
//
// What:
//
//   - Point[T] is a position: a 1×N matrix with coordinate access and
//     translation/projection helpers, no directional semantics.
//   - Vector[T] is a displacement: the same substrate plus Length,
//     Normalize, and Negated.
//   - Between(from, to) builds the difference vector from − to. The
//     orientation (from minus to, not the reverse) is load-bearing for
//     the rotation and shift math in package polyline — do not flip it.
//
// Why:
//
//	Keeping both types on the matrix substrate means every geometric
//	operation (translation, rotation, projection) is ordinary matrix
//	arithmetic with the matrix package's dimension checks.
//
// Errors:
//
//   - ErrNotRowVector: a matrix handed to PointFromMatrix/VectorFromMatrix
//     has more than one row.
//   - matrix.ErrOutOfRange, matrix.ErrDimensionMismatch and
//     matrix.ErrInvalidDimensions pass through from the substrate.
//
// Normalize on a zero-length vector returns the zero vector, not an
// error.
package geom
