// Package matrix provides a dense, generic rectangular matrix with
// row-major storage, element-wise arithmetic, matrix multiplication,
// transposition, and random-access row/column views.
//
// What:
//
//   - Matrix[T] stores rows×cols elements of any numeric type T in one
//     flat slice; the shape is fixed at construction and never changes.
//   - Row(i) yields a contiguous view, Column(j) a strided view; both
//     expose the same random-access View[T] surface, so multiplication
//     is written once as a row view dotted against a column view.
//   - Transposed() re-reads the source in column-major order and works
//     for every shape, 1×1 included.
//
// Why:
//
//   - Geometry: points and vectors are 1×N matrices (see package geom),
//     rotations are 3×3 products, projections are 1×3 · 3×2 products.
//   - Rendering: a character grid is just a Matrix[byte] (see package
//     spatial).
//
// Complexity:
//
//   - At/Set/Row/Column: O(1).
//   - Add/Sub/Equal/Clone/Transposed: O(rows·cols).
//   - Mul: O(rows·cols·inner).
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a non-positive side.
//   - ErrTooManyValues: NewFrom got more values than rows·cols.
//   - ErrOutOfRange: an element, row, column, or view index is outside
//     its bound.
//   - ErrDimensionMismatch: operand shapes are incompatible.
//
// All errors are sentinels matched with errors.Is; methods never panic
// on user input.
package matrix
