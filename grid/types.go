// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Pos is an (X, Y) coordinate: X selects the column, Y the row.
type Pos struct {
	X, Y int
}

// String renders the position as "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is a row-major 2D container over one flat slice.
//
// The zero value is an empty, released grid: every safe accessor reports
// absence and every fatal accessor panics. Use New, NewFunc, FromSlice or
// From2D to build a usable one.
//
// Grid is not safe for concurrent mutation.
type Grid[T any] struct {
	tiles []T // flat backing storage, len(tiles) == width*height
	width int // number of columns, > 0 for any constructed grid
}
