// Package polyline provides an ordered, labeled sequence of 3D points
// with manually managed storage and geometric operations expressed in
// matrix/vector primitives.
//
// What:
//
//   - Polyline[T] stores (point, name) records in a single backing
//     buffer, so points and labels structurally cannot be resized out
//     of sync. Growth is by a fixed increment of 5 records, not
//     geometric.
//   - MergeLine copies another polyline's records in; MergeLineMove
//     consumes the donor, picking one of three strategies by relative
//     spare capacity to avoid needless allocation (see MergeStrategy).
//   - Shift translates, Rotate applies a Rodrigues rotation, Length
//     sums segment distances, RemoveMostIsolatedPoint drops the point
//     farthest from its nearest neighbor.
//
// Why:
//
//	Polylines are the toolkit's working object: the command REPL builds
//	and mutates them, the spatial buffer rasterizes them segment by
//	segment in insertion order.
//
// Complexity:
//
//   - AddPoint: O(1) amortized (O(size) on a growth step).
//   - Length, Shift, Rotate, RemoveMostIsolatedPoint: O(size).
//   - MergeLine / MergeLineMove: O(size + other.size) worst case;
//     AppendInPlace moves only the donor's records.
//
// Errors:
//
//   - ErrOutOfRange: point/name index ≥ Size().
//   - matrix.ErrDimensionMismatch passes through when a point or vector
//     is not 3-dimensional.
//
// Known edge case: Rotate with a zero-length axis divides by zero and
// poisons every coordinate with NaN. This mirrors the underlying math
// deliberately — callers that need a guard should check the axis first.
//
// Concurrency: none. A Polyline has no internal locking; callers
// serialize access.
package polyline
