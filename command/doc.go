// Package command implements the text command dispatcher: an
// interactive loop that manages a set of labeled 3D polylines and
// exposes the toolkit's operations over plain line-based I/O.
//
// What:
//
//   - Interface holds the polyline set and a fixed axonometric
//     projection, and runs a read-dispatch loop over an io.Reader /
//     io.Writer pair.
//   - Commands cover the whole polyline surface: create, add point,
//     merge (move-merge, donor deleted), render, get length, get lines,
//     shift, rotate, del line, help, exit.
//   - Options / DefaultOptions tune the render buffer size, the prompt,
//     and the projection angle.
//
// Why:
//
//	The dispatcher is the toolkit's interactive surface. Driving it
//	through io interfaces instead of the process streams keeps every
//	session scriptable: tests feed a bytes.Buffer and compare the
//	transcript.
//
// Error handling:
//
//	User mistakes (bad index, wrong arity, unparsable number) produce
//	an "Error: ..." line on the session writer and the loop continues.
//	Run itself returns an error only for I/O failures on the reader.
//
// Example:
//
//	ci := command.New()
//	_ = ci.Run(os.Stdin, os.Stdout)
package command
