// SPDX-License-Identifier: MIT

// Package grid provides Grid, a generic two-dimensional container stored in
// one flat, row-major slice.
//
// What:
//
//   - Grid[T] addresses elements by (x, y) while keeping them in a single
//     contiguous backing slice: index = y*width + x.
//   - Height is never stored; it is always len(tiles) / width.
//   - Zero-area grids are rejected at construction (ErrDimension).
//
// Access tiers:
//
//   - Safe:  Get, GetRef, TrySet, Row report absence with a false result.
//   - Fatal: At, AtRef, Set panic on an x outside [0, width); an out-of-range
//     y trips the backing slice's own bounds check.
//
// Iteration (range-over-func, restartable):
//
//   - All      — ((x,y), value) in row-major order, x fastest.
//   - AllRefs  — ((x,y), *T), every element exactly once.
//   - Rows     — (y, row view) from row 0 downwards.
//   - XY       — (x, lazy sequence of y) for explicit coordinate sweeps.
//
// Ownership:
//
//	FromSlice adopts the caller's slice without copying; Release hands the
//	same backing array back and leaves the grid empty.
//
// Concurrency:
//
//	Grid performs no synchronization. Mutating a grid while another goroutine
//	reads or writes it requires external locking.
//
// Complexity:
//
//   - New, NewFunc, Clone: O(W×H) time and memory.
//   - FromSlice, Release, Get, At, Row: O(1).
//   - ForEach, All, AllRefs, Rows, XY: O(W×H) per full walk.
package grid
