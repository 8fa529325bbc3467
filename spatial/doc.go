// Package spatial renders labeled 3D polylines onto a fixed-size ASCII
// character grid.
//
// What:
//
//   - Buffer projects 3D points through a 3×2 matrix to 2D grid
//     coordinates (scaled, centered, clamped to the grid), rasterizes
//     connecting segments with Bresenham's line algorithm, and stamps
//     each endpoint with its point name.
//   - The grid itself is a matrix.Matrix[byte], so the renderer rides
//     on the same substrate as the geometry.
//   - AxonometricProjection builds the stock projection used by the
//     command REPL.
//
// Why:
//
//	The toolkit's only display surface is character output: the REPL's
//	render command and the demo animation both flush a Buffer to a
//	writer (or a terminal cell grid).
//
// Rasterization rules:
//
//   - Segment cells are drawn with '*'.
//   - A cell is written only while blank or holding '*', so point names
//     always win over line art and earlier names are never overwritten.
//   - Out-of-grid projections clamp to the nearest edge cell; NaN
//     coordinates (see polyline.Rotate's zero-axis edge case) clamp to
//     the origin corner.
//
// Errors:
//
//   - ErrBadProjection: the projection matrix is not 3×2.
//   - matrix.ErrInvalidDimensions: non-positive buffer dimensions.
//   - matrix.ErrDimensionMismatch passes through for non-3D points.
package spatial
