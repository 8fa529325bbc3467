package command

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/geomline/geom"
	"github.com/katalvlaran/geomline/matrix"
	"github.com/katalvlaran/geomline/polyline"
	"github.com/katalvlaran/geomline/spatial"
)

// Options tunes an Interface. Start from DefaultOptions and adjust;
// New takes the struct verbatim.
type Options struct {
	// Width and Height size the render buffer in characters.
	Width, Height int
	// Prompt is printed before each input line.
	Prompt string
	// AngleDeg is the axonometric depth angle of the Y axis.
	AngleDeg float64
}

// DefaultOptions returns the stock configuration: a 100×100 render
// buffer, "> " prompt, 40° depth angle.
func DefaultOptions() Options {
	return Options{Width: 100, Height: 100, Prompt: "> ", AngleDeg: 40}
}

// Interface is the command dispatcher: a set of float64 polylines plus
// the projection used by render. Construct via New.
type Interface struct {
	opts  Options
	proj  *matrix.Matrix[float64]
	lines []*polyline.Polyline[float64]
}

// New creates a dispatcher with no polylines. Pass at most one Options,
// normally built by adjusting DefaultOptions; it is used verbatim, so
// AngleDeg 0 really means a head-on projection, not the default.
func New(opts ...Options) *Interface {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	return &Interface{opts: o, proj: spatial.AxonometricProjection(o.AngleDeg)}
}

// Lines returns the current polylines in index order. The slice is
// shared; callers must not mutate it.
func (ci *Interface) Lines() []*polyline.Polyline[float64] { return ci.lines }

// Run reads whitespace-tokenized commands from r until "exit" or EOF,
// dispatching each and writing responses to w. User mistakes print an
// error line and the loop continues; only reader failures are returned.
func (ci *Interface) Run(r io.Reader, w io.Writer) error {
	ci.printHelp(w)

	sc := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, ci.opts.Prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("command: reading input: %w", err)
			}
			fmt.Fprintln(w, "\nExiting program...")

			return nil
		}

		tokens := strings.Fields(sc.Text())
		if len(tokens) == 0 {
			continue
		}
		if tokens[0] == "exit" {
			return nil
		}
		ci.dispatch(w, tokens)
	}
}

func (ci *Interface) dispatch(w io.Writer, tokens []string) {
	switch tokens[0] {
	case "create":
		if len(tokens) > 1 && tokens[1] == "line" {
			ci.createLine(w)

			return
		}
	case "add":
		if len(tokens) > 1 && tokens[1] == "point" {
			ci.addPoint(w, tokens)

			return
		}
	case "merge":
		ci.mergeLines(w, tokens)

		return
	case "render":
		ci.render(w)

		return
	case "get":
		if len(tokens) > 1 && tokens[1] == "length" {
			ci.getLength(w, tokens)

			return
		}
		if len(tokens) > 1 && tokens[1] == "lines" {
			ci.getLines(w)

			return
		}
	case "shift":
		ci.shiftLine(w, tokens)

		return
	case "rotate":
		ci.rotateLine(w, tokens)

		return
	case "del":
		if len(tokens) > 1 && tokens[1] == "line" {
			ci.deleteLine(w, tokens)

			return
		}
	case "help":
		ci.printHelp(w)

		return
	}
	fmt.Fprintln(w, "Unknown command. Type 'help' for available commands.")
}

func (ci *Interface) printHelp(w io.Writer) {
	fmt.Fprint(w, "Available commands:\n"+
		"1. create line - create new polyline\n"+
		"2. add point <line_index> <x y z> <point_name> - add point to polyline\n"+
		"3. merge <line_index1> <line_index2> - merge two polylines\n"+
		"4. render - render all polylines\n"+
		"5. get length <line_index> - get polyline length\n"+
		"6. shift <line_index> <x y z> - shift polyline by vector\n"+
		"7. rotate <line_index> <x y z> <angle_deg> - rotate polyline around axis\n"+
		"8. help - show this help\n"+
		"9. get lines - show all polylines\n"+
		"10. del line <line_index> - delete polyline\n"+
		"11. exit - exit program\n")
}

// lineAt parses token as a polyline index and validates it.
func (ci *Interface) lineAt(token string) (int, bool) {
	idx, err := strconv.Atoi(token)
	if err != nil || idx < 0 {
		return 0, false
	}
	if idx >= len(ci.lines) {
		return 0, false
	}

	return idx, true
}

func parseCoords(tokens []string) (x, y, z float64, ok bool) {
	var err error
	if x, err = strconv.ParseFloat(tokens[0], 64); err != nil {
		return 0, 0, 0, false
	}
	if y, err = strconv.ParseFloat(tokens[1], 64); err != nil {
		return 0, 0, 0, false
	}
	if z, err = strconv.ParseFloat(tokens[2], 64); err != nil {
		return 0, 0, 0, false
	}

	return x, y, z, true
}

func (ci *Interface) createLine(w io.Writer) {
	ci.lines = append(ci.lines, polyline.New[float64]())
	fmt.Fprintf(w, "Created new line with index: %d\n", len(ci.lines)-1)
}

// add point <line_index> <x y z> <point_name>
func (ci *Interface) addPoint(w io.Writer, tokens []string) {
	if len(tokens) < 7 {
		fmt.Fprintln(w, "Error: Not enough arguments")

		return
	}
	idx, ok := ci.lineAt(tokens[2])
	if !ok {
		fmt.Fprintln(w, "Error: Invalid line index")

		return
	}
	x, y, z, ok := parseCoords(tokens[3:6])
	if !ok || tokens[6] == "" {
		fmt.Fprintln(w, "Error: Invalid arguments")

		return
	}

	if err := ci.lines[idx].AddPoint(geom.NewPoint3(x, y, z), tokens[6][0]); err != nil {
		fmt.Fprintln(w, "Error: Invalid arguments")

		return
	}
	fmt.Fprintf(w, "Point added to line %d\n", idx)
}

// merge <line_index1> <line_index2>
func (ci *Interface) mergeLines(w io.Writer, tokens []string) {
	if len(tokens) < 3 {
		fmt.Fprintln(w, "Error: Not enough arguments")

		return
	}
	idx1, ok1 := ci.lineAt(tokens[1])
	idx2, ok2 := ci.lineAt(tokens[2])
	if !ok1 || !ok2 {
		fmt.Fprintln(w, "Error: Invalid line index")

		return
	}

	if idx1 == idx2 {
		fmt.Fprintln(w, "Error: Cannot merge line with itself")

		return
	}

	ci.lines[idx1].MergeLineMove(ci.lines[idx2])
	ci.lines = append(ci.lines[:idx2], ci.lines[idx2+1:]...)
	fmt.Fprintf(w, "Lines merged. Line %d removed.\n", idx2)
}

func (ci *Interface) render(w io.Writer) {
	buf, err := spatial.NewBuffer[float64](ci.opts.Width, ci.opts.Height, ci.proj)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)

		return
	}
	for _, line := range ci.lines {
		if err = buf.AddPolyline(line); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)

			return
		}
	}

	_, _ = buf.WriteTo(w)
	fmt.Fprintln(w)
}

// get length <line_index>
func (ci *Interface) getLength(w io.Writer, tokens []string) {
	if len(tokens) < 3 {
		fmt.Fprintln(w, "Error: Not enough arguments")

		return
	}
	idx, ok := ci.lineAt(tokens[2])
	if !ok {
		fmt.Fprintln(w, "Error: Invalid line index")

		return
	}

	fmt.Fprintf(w, "Length of line %d: %g\n", idx, ci.lines[idx].Length())
}

// shift <line_index> <x y z>
func (ci *Interface) shiftLine(w io.Writer, tokens []string) {
	if len(tokens) < 5 {
		fmt.Fprintln(w, "Error: Not enough arguments")

		return
	}
	idx, ok := ci.lineAt(tokens[1])
	if !ok {
		fmt.Fprintln(w, "Error: Invalid line index")

		return
	}
	x, y, z, ok := parseCoords(tokens[2:5])
	if !ok {
		fmt.Fprintln(w, "Error: Invalid arguments")

		return
	}

	if err := ci.lines[idx].Shift(geom.NewVector3(x, y, z)); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)

		return
	}
	fmt.Fprintf(w, "Line %d shifted\n", idx)
}

// rotate <line_index> <x y z> <angle_deg>
func (ci *Interface) rotateLine(w io.Writer, tokens []string) {
	if len(tokens) < 6 {
		fmt.Fprintln(w, "Error: Not enough arguments")

		return
	}
	idx, ok := ci.lineAt(tokens[1])
	if !ok {
		fmt.Fprintln(w, "Error: Invalid line index")

		return
	}
	x, y, z, ok := parseCoords(tokens[2:5])
	if !ok {
		fmt.Fprintln(w, "Error: Invalid arguments")

		return
	}
	angleDeg, err := strconv.ParseFloat(tokens[5], 64)
	if err != nil {
		fmt.Fprintln(w, "Error: Invalid arguments")

		return
	}

	if err = ci.lines[idx].Rotate(geom.NewVector3(x, y, z), angleDeg*math.Pi/180); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)

		return
	}
	fmt.Fprintf(w, "Line %d rotated\n", idx)
}

func (ci *Interface) getLines(w io.Writer) {
	fmt.Fprintf(w, "Total lines: %d\n", len(ci.lines))
	for i, line := range ci.lines {
		fmt.Fprintf(w, "Line %d (points: %d): %s\n", i, line.Size(), line)
	}
}

// del line <line_index>
func (ci *Interface) deleteLine(w io.Writer, tokens []string) {
	if len(tokens) < 3 {
		fmt.Fprintln(w, "Error: Not enough arguments")

		return
	}
	idx, ok := ci.lineAt(tokens[2])
	if !ok {
		fmt.Fprintln(w, "Error: Invalid line index")

		return
	}

	ci.lines = append(ci.lines[:idx], ci.lines[idx+1:]...)
	fmt.Fprintf(w, "Line %d deleted\n", idx)
}
