// Package spatial: the Buffer — projection, rasterization, output.

package spatial

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/geomline/geom"
	"github.com/katalvlaran/geomline/matrix"
	"github.com/katalvlaran/geomline/polyline"
)

// blank is the empty cell; mark is line art. Names overwrite both;
// nothing overwrites a name.
const (
	blank = ' '
	mark  = '*'
)

// Buffer is a width×height character grid with a fixed 3D→2D
// projection. Construct via NewBuffer; the zero value is not usable.
type Buffer[T matrix.Num] struct {
	width, height int
	grid          *matrix.Matrix[byte]    // height×width cells
	proj          *matrix.Matrix[float64] // 3×2 projection
}

// NewBuffer creates a cleared width×height buffer with the given 3×2
// projection matrix. Returns matrix.ErrInvalidDimensions for
// non-positive sizes and ErrBadProjection for a wrong projection shape.
func NewBuffer[T matrix.Num](width, height int, proj *matrix.Matrix[float64]) (*Buffer[T], error) {
	if proj == nil || proj.Rows() != 3 || proj.Cols() != 2 {
		return nil, ErrBadProjection
	}
	grid, err := matrix.New[byte](height, width)
	if err != nil {
		return nil, fmt.Errorf("spatial: NewBuffer(%dx%d): %w", width, height, err)
	}

	b := &Buffer[T]{width: width, height: height, grid: grid, proj: proj.Clone()}
	b.Clear()

	return b, nil
}

// Width returns the grid width in cells. Complexity: O(1).
func (b *Buffer[T]) Width() int { return b.width }

// Height returns the grid height in cells. Complexity: O(1).
func (b *Buffer[T]) Height() int { return b.height }

// Clear fills the grid with blanks. Complexity: O(width·height).
func (b *Buffer[T]) Clear() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			_ = b.grid.Set(y, x, blank)
		}
	}
}

// clampToGrid converts a projected float coordinate to a grid index in
// [0, limit). NaN lands on 0 — a NaN-poisoned polyline (zero-axis
// rotation) collapses into the origin corner instead of crashing.
func clampToGrid(v float64, limit int) int {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > float64(limit-1) {
		return limit - 1
	}

	return int(v)
}

// project maps a 3D point to clamped 2D grid coordinates: multiply by
// the 3×2 projection, scale by 0.5, center on the grid.
func (b *Buffer[T]) project(p geom.Point[T]) (x, y int, err error) {
	flat, err := matrix.Convert[float64](p.Mat()).Mul(b.proj)
	if err != nil {
		return 0, 0, err
	}
	fx, _ := flat.At(0, 0)
	fy, _ := flat.At(0, 1)

	x = clampToGrid(fx*0.5+float64(b.width)/2, b.width)
	y = clampToGrid(fy*0.5+float64(b.height)/2, b.height)

	return x, y, nil
}

// drawCell writes symbol at (x, y) if the cell is inside the grid and
// still blank or line art.
func (b *Buffer[T]) drawCell(x, y int, symbol byte) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	cur, _ := b.grid.At(y, x)
	if cur == blank || cur == mark {
		_ = b.grid.Set(y, x, symbol)
	}
}

// drawSegment rasterizes a line from (x0, y0) to (x1, y1) with
// Bresenham's algorithm, marking every cell up to but excluding the
// final endpoint (endpoints are stamped with their names separately).
func (b *Buffer[T]) drawSegment(x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for x0 != x1 || y0 != y1 {
		b.drawCell(x0, y0, mark)

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// AddLine projects both endpoints, rasterizes the connecting segment,
// and stamps the endpoints with their names.
// Returns matrix.ErrDimensionMismatch unless both points are 3D.
func (b *Buffer[T]) AddLine(p1, p2 geom.Point[T], n1, n2 byte) error {
	x0, y0, err := b.project(p1)
	if err != nil {
		return err
	}
	x1, y1, err := b.project(p2)
	if err != nil {
		return err
	}

	b.drawSegment(x0, y0, x1, y1)
	b.drawCell(x0, y0, n1)
	b.drawCell(x1, y1, n2)

	return nil
}

// AddPolyline rasterizes every consecutive pair of the polyline's
// points in insertion order. Fewer than two points is a no-op.
// Complexity: O(size · segment length).
func (b *Buffer[T]) AddPolyline(pl *polyline.Polyline[T]) error {
	if pl == nil || pl.Size() < 2 {
		return nil
	}
	for i := 0; i+1 < pl.Size(); i++ {
		p1, err := pl.Point(i)
		if err != nil {
			return err
		}
		p2, err := pl.Point(i + 1)
		if err != nil {
			return err
		}
		n1, _ := pl.PointName(i) // indices already validated
		n2, _ := pl.PointName(i + 1)

		if err = b.AddLine(p1, p2, n1, n2); err != nil {
			return err
		}
	}

	return nil
}

// Row returns the y-th grid row as a string. Returns
// matrix.ErrOutOfRange for an invalid row index.
func (b *Buffer[T]) Row(y int) (string, error) {
	row, err := b.grid.Row(y)
	if err != nil {
		return "", err
	}
	cells := make([]byte, row.Len())
	for x := range cells {
		cells[x], _ = row.At(x)
	}

	return string(cells), nil
}

// String renders the grid as height newline-terminated rows.
func (b *Buffer[T]) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (b.width + 1))
	for y := 0; y < b.height; y++ {
		row, _ := b.Row(y)
		sb.WriteString(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// WriteTo implements io.WriterTo, flushing the rendered grid.
func (b *Buffer[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())

	return int64(n), err
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
