// Package geomline is a compact geometry toolkit: a dense rectangular
// matrix as the algebraic substrate, labeled 3D polylines on top of it,
// and an ASCII projection buffer plus a text command interface to drive
// them.
//
// 🚀 What is geomline?
//
//	A small, dependency-light library that brings together:
//		• matrix   — dense generic matrices: arithmetic, transpose,
//		             multiplication, row/column views
//		• geom     — Points and Vectors as 1×N matrices: length,
//		             normalization, differences
//		• polyline — ordered labeled 3D point sequences: merge (copy and
//		             three-strategy move), shift, rotate, length,
//		             isolation-based point removal
//		• spatial  — 3D→2D projection onto a character grid with
//		             Bresenham segment rasterization
//		• command  — line-oriented REPL dispatching onto the above
//
// ✨ Why choose geomline?
//
//   - Predictable errors – sentinel errors everywhere, matched with errors.Is
//   - No hidden allocation – polyline storage grows by a fixed increment,
//     and move-merge adopts existing buffers whenever capacity allows
//   - Pure Go core – the only binary-side dependency is the terminal UI
//
// Everything is organized under five subpackages:
//
//	matrix/   — dense Matrix[T], views, arithmetic
//	geom/     — Point[T] and Vector[T] built on 1×N matrices
//	polyline/ — Polyline[T] container and geometry operations
//	spatial/  — Buffer ASCII renderer
//	command/  — Interface REPL glue
//
// Quick session (the command REPL):
//
//	> create line
//	Created new line with index: 0
//	> add point 0 0 0 0 A
//	Point added to line 0
//	> get length 0
//	Length of line 0: 0
//
// See cmd/geomline for the interactive REPL and the rotating-star demo.
package geomline
