// SPDX-License-Identifier: MIT

package grid

import "fmt"

// ---------- Safe tier: absence is reported, never panics ----------

// Get returns the tile at (x, y) and true, or the zero T and false when
// (x, y) is outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.tiles[g.index(x, y)], true
}

// GetRef returns a pointer to the tile at (x, y), or nil and false when
// (x, y) is outside the grid. The pointer aliases the backing slice.
// Complexity: O(1).
func (g *Grid[T]) GetRef(x, y int) (*T, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}
	return &g.tiles[g.index(x, y)], true
}

// TrySet stores v at (x, y) and reports whether (x, y) was inside the grid.
// Complexity: O(1).
func (g *Grid[T]) TrySet(x, y int, v T) bool {
	p, ok := g.GetRef(x, y)
	if ok {
		*p = v
	}
	return ok
}

// Row returns row y as a view of the backing slice, or nil and false when y
// is outside [0, Height()). Writes through the view update the grid; the
// view's capacity ends at the row, so appending to it reallocates instead of
// overwriting row y+1.
// Complexity: O(1).
func (g *Grid[T]) Row(y int) ([]T, bool) {
	if y < 0 || y >= g.Height() {
		return nil, false
	}
	return g.rowView(y), true
}

// rowView returns tiles[y*width : (y+1)*width] with clipped capacity.
func (g *Grid[T]) rowView(y int) []T {
	lo, hi := g.index(0, y), g.index(0, y+1)
	return g.tiles[lo:hi:hi]
}

// ---------- Fatal tier: out-of-range access is a programming defect ----------

// At returns the tile at (x, y).
// Panics if x is outside [0, Width()); an out-of-range y panics through the
// backing slice's bounds check. Use Get to probe safely.
// Complexity: O(1).
func (g *Grid[T]) At(x, y int) T {
	g.mustColumn(x)
	return g.tiles[g.index(x, y)]
}

// AtRef returns a pointer to the tile at (x, y) with the same panics as At.
// Complexity: O(1).
func (g *Grid[T]) AtRef(x, y int) *T {
	g.mustColumn(x)
	return &g.tiles[g.index(x, y)]
}

// Set stores v at (x, y) with the same panics as At.
// Complexity: O(1).
func (g *Grid[T]) Set(x, y int, v T) {
	g.mustColumn(x)
	g.tiles[g.index(x, y)] = v
}

// mustColumn panics unless 0 <= x < width. Without it an x past the last
// column would silently wrap into the next row.
func (g *Grid[T]) mustColumn(x int) {
	if x < 0 || x >= g.width {
		panic(fmt.Sprintf("grid: tried to index with x: %d, with width: %d", x, g.width))
	}
}

// ---------- Bulk ----------

// ForEach calls fn with a pointer to every tile in row-major order
// (left to right, top to bottom), each exactly once.
// Complexity: O(W×H).
func (g *Grid[T]) ForEach(fn func(*T)) {
	for i := range g.tiles {
		fn(&g.tiles[i])
	}
}

// Fill sets every tile to v.
// Complexity: O(W×H).
func (g *Grid[T]) Fill(v T) {
	g.ForEach(func(t *T) { *t = v })
}
