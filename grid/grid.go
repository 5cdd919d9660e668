// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// New creates a width×height grid with every tile set to fill.
// Stage 1 (Validate): width > 0, height > 0 and width*height fits in int.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): copy fill into every tile in row-major order.
// Complexity: O(W×H) time and memory.
func New[T any](fill T, width, height int) (*Grid[T], error) {
	if err := validateArea(width, height); err != nil {
		return nil, err
	}
	tiles := make([]T, width*height)
	for i := range tiles {
		tiles[i] = fill
	}

	return &Grid[T]{tiles: tiles, width: width}, nil
}

// NewFunc creates a width×height grid whose tile at p is fn(p).
// fn is called once per tile in row-major order.
// Complexity: O(W×H) time and memory.
func NewFunc[T any](width, height int, fn func(Pos) T) (*Grid[T], error) {
	if err := validateArea(width, height); err != nil {
		return nil, err
	}
	g := &Grid[T]{tiles: make([]T, width*height), width: width}
	for i := range g.tiles {
		g.tiles[i] = fn(g.Coordinate(i))
	}

	return g, nil
}

// FromSlice adopts tiles as the row-major backing slice of a grid with the
// given width. The slice is not copied: the grid owns it from now on and the
// caller must not keep writing through its own reference.
// Returns *DimensionError when tiles is empty or width <= 0, and
// *DimensionMismatchError when len(tiles) is not a multiple of width.
// Complexity: O(1).
func FromSlice[T any](tiles []T, width int) (*Grid[T], error) {
	if len(tiles) == 0 || width <= 0 {
		return nil, &DimensionError{Width: width, InputLen: len(tiles), FromSlice: true}
	}
	if len(tiles)%width != 0 {
		return nil, &DimensionMismatchError{Width: width, InputLen: len(tiles)}
	}

	return &Grid[T]{tiles: tiles, width: width}, nil
}

// From2D copies a rectangular [][]T (rows[y][x]) into a new flat grid.
// Returns *DimensionError for no rows or an empty first row, and an error
// matching ErrDimensionMismatch when rows have differing lengths.
// Complexity: O(W×H) time and memory.
func From2D[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		w := 0
		if len(rows) > 0 {
			w = len(rows[0])
		}
		return nil, &DimensionError{Width: w, Height: len(rows)}
	}
	w := len(rows[0])
	tiles := make([]T, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("grid: row %d has length %d, want %d: %w", y, len(row), w, ErrDimensionMismatch)
		}
		tiles = append(tiles, row...)
	}

	return &Grid[T]{tiles: tiles, width: w}, nil
}

// validateArea rejects zero-area and overflowing shapes.
func validateArea(width, height int) error {
	if width <= 0 || height <= 0 || height > math.MaxInt/width {
		return &DimensionError{Width: width, Height: height}
	}
	return nil
}

// Width returns the number of columns.
// Complexity: O(1).
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows, derived from the backing length.
// Complexity: O(1).
func (g *Grid[T]) Height() int {
	if g.width == 0 {
		return 0
	}
	return len(g.tiles) / g.width
}

// Len returns the number of tiles, Width()*Height().
func (g *Grid[T]) Len() int {
	return len(g.tiles)
}

// Tiles returns the backing slice in row-major order.
// The result is a view: it must be treated as read-only, and it is
// invalidated by Release.
func (g *Grid[T]) Tiles() []T {
	return g.tiles
}

// index maps (x, y) to its row-major offset: y*width + x.
// Every accessor derives its offset from here.
func (g *Grid[T]) index(x, y int) int {
	return y*g.width + x
}

// Offset returns the row-major backing offset of (x, y) without any bounds
// check; pair it with InBounds when (x, y) may be outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Offset(x, y int) int {
	return g.index(x, y)
}

// Coordinate converts a row-major offset back to its position.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(i int) Pos {
	return Pos{X: i % g.width, Y: i / g.width}
}

// InBounds reports whether (x, y) addresses a tile.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.Height()
}

// Release hands the backing slice back to the caller without copying and
// empties the grid. Afterwards the grid behaves as the zero value: safe
// accessors report absence and fatal accessors panic.
func (g *Grid[T]) Release() []T {
	tiles := g.tiles
	g.tiles, g.width = nil, 0

	return tiles
}

// Clone returns a grid with the same shape and a copy of every tile.
// Elements are copied by assignment; pointers inside T are shared.
// Complexity: O(W×H) time and memory.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{tiles: slices.Clone(g.tiles), width: g.width}
}

// Equal reports whether a and b have the same width and the same tiles.
// Two nil grids are equal; a nil grid never equals a non-nil one.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.width == b.width && slices.Equal(a.tiles, b.tiles)
}

// String renders one bracketed line per row, each tile formatted with %v.
// Complexity: O(W×H).
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		sb.WriteByte('[')
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", g.tiles[g.index(x, y)])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
