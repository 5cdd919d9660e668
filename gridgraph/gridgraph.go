// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"

	"github.com/katalvlaran/flatgrid/grid"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// New wraps g for graph analysis under opts.
// Returns ErrNilGrid if g is nil.
// Complexity: O(1).
func New[T Value](g *grid.Grid[T], opts Options[T]) (*GridGraph[T], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph[T]{
		cells:           g,
		conn:            opts.Conn,
		landThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// From2D copies a non-empty, rectangular [][]T (values[y][x]) into a flat
// grid and wraps it with the default land threshold and the given
// connectivity.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D[T Value](values [][]T, conn Connectivity) (*GridGraph[T], error) {
	g, err := grid.From2D(values)
	switch {
	case errors.Is(err, grid.ErrDimension):
		return nil, ErrEmptyGrid
	case errors.Is(err, grid.ErrDimensionMismatch):
		return nil, ErrNonRectangular
	case err != nil:
		return nil, err
	}
	opts := DefaultOptions[T]()
	opts.Conn = conn

	return New(g, opts)
}

// Grid returns the underlying grid.
func (gg *GridGraph[T]) Grid() *grid.Grid[T] { return gg.cells }

// Width returns the number of columns of the underlying grid.
func (gg *GridGraph[T]) Width() int { return gg.cells.Width() }

// Height returns the number of rows of the underlying grid.
func (gg *GridGraph[T]) Height() int { return gg.cells.Height() }

// Connectivity returns the neighbor mode chosen at construction.
func (gg *GridGraph[T]) Connectivity() Connectivity { return gg.conn }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph[T]) InBounds(x, y int) bool {
	return gg.cells.InBounds(x, y)
}

// IsLand reports whether (x,y) is inside the grid and its value is at least
// the land threshold.
// Complexity: O(1).
func (gg *GridGraph[T]) IsLand(x, y int) bool {
	v, ok := gg.cells.Get(x, y)
	return ok && v >= gg.landThreshold
}

// NeighborOffsets returns the (dx,dy) offsets for the chosen connectivity.
// The slice is shared; callers must not modify it.
// Complexity: O(1).
func (gg *GridGraph[T]) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to its row-major cell index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph[T]) Index(x, y int) int {
	return gg.cells.Offset(x, y)
}

// Coordinate converts a row-major cell index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph[T]) Coordinate(idx int) (x, y int) {
	p := gg.cells.Coordinate(idx)
	return p.X, p.Y
}
