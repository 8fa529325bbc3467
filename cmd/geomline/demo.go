package main

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/katalvlaran/geomline/geom"
	"github.com/katalvlaran/geomline/polyline"
	"github.com/katalvlaran/geomline/spatial"
)

// Star scene parameters: two stacked 5-pointed stars with side
// connections, rotating about Y and falling as frames advance.
const (
	starPoints  = 5
	outerRadius = 20.0
	innerRadius = 8.0
	starHeight  = 16.0
	fallTotal   = 40.0

	demoWidth  = 120
	demoHeight = 120
)

// starScene builds the base star wireframe in local coordinates: the
// lower star (closed), the upper star (closed), then side edges between
// the outer vertices. Point names distinguish the layers: upper-case
// below, lower-case above.
func starScene() ([]geom.Point[float64], []byte) {
	pts := make([]geom.Point[float64], 0, 4*starPoints+2+2*starPoints)
	names := make([]byte, 0, cap(pts))

	vertex := func(i int, z float64) geom.Point[float64] {
		a := math.Pi * float64(i) / starPoints
		r := outerRadius
		if i%2 != 0 {
			r = innerRadius
		}

		return geom.NewPoint3(r*math.Cos(a), r*math.Sin(a), z)
	}

	for i := 0; i < 2*starPoints; i++ {
		pts = append(pts, vertex(i, 0))
		names = append(names, 'A'+byte(i%26))
	}
	pts = append(pts, vertex(0, 0))
	names = append(names, 'A')

	for i := 0; i < 2*starPoints; i++ {
		pts = append(pts, vertex(i, starHeight))
		names = append(names, 'a'+byte(i%26))
	}
	pts = append(pts, vertex(0, starHeight))
	names = append(names, 'a')

	// Side connections, outer vertices only.
	for i := 0; i < 2*starPoints; i += 2 {
		pts = append(pts, vertex(i, 0), vertex(i, starHeight))
		names = append(names, 'A'+byte(i%26), 'a'+byte(i%26))
	}

	return pts, names
}

// starFrame transforms the base scene for one frame: rotate about the Y
// axis, center on the grid, fall, then drop the loneliest point.
func starFrame(base []geom.Point[float64], names []byte, angle, fall float64) *polyline.Polyline[float64] {
	cos, sin := math.Cos(angle), math.Sin(angle)

	star := polyline.New[float64]()
	for i, p := range base {
		px, _ := p.Coord(0)
		py, _ := p.Coord(1)
		pz, _ := p.Coord(2)

		x := px*cos + pz*sin
		z := -px*sin + pz*cos

		_ = star.AddPoint(geom.NewPoint3(x+40, py+20+fall, z), names[i])
	}
	star.RemoveMostIsolatedPoint()

	return star
}

// runConsoleDemo renders the animation to w, clearing the terminal
// between frames with ANSI escapes.
func runConsoleDemo(w io.Writer, frames int, delay time.Duration) error {
	buf, err := spatial.NewBuffer[float64](demoWidth, demoHeight, spatial.FlatProjection())
	if err != nil {
		return err
	}

	base, names := starScene()
	rotationStep := 2 * math.Pi / float64(frames)
	fallStep := fallTotal / float64(frames)

	for frame := 0; frame < frames; frame++ {
		buf.Clear()
		star := starFrame(base, names, float64(frame)*rotationStep, float64(frame)*fallStep)
		if err = buf.AddPolyline(star); err != nil {
			return err
		}

		fmt.Fprint(w, "\033[2J\033[H")
		fmt.Fprintf(w, "Frame %d/%d\n", frame+1, frames)
		if _, err = buf.WriteTo(w); err != nil {
			return err
		}

		time.Sleep(delay)
	}

	return nil
}
