// SPDX-License-Identifier: MIT

package grid

import "iter"

// All yields every (position, value) pair in row-major order, x varying
// fastest. Each range over the result starts again from the first tile and
// observes the grid's current contents.
// Complexity: O(W×H) per full walk.
func (g *Grid[T]) All() iter.Seq2[Pos, T] {
	return func(yield func(Pos, T) bool) {
		for i := range g.tiles {
			if !yield(g.Coordinate(i), g.tiles[i]) {
				return
			}
		}
	}
}

// AllRefs is All with pointers into the backing slice, so the loop body can
// update tiles in place. Every tile is yielded exactly once.
func (g *Grid[T]) AllRefs() iter.Seq2[Pos, *T] {
	return func(yield func(Pos, *T) bool) {
		for i := range g.tiles {
			if !yield(g.Coordinate(i), &g.tiles[i]) {
				return
			}
		}
	}
}

// Rows yields (y, row) from the top row (y == 0) to the bottom one.
// Each row is the same clipped view Row returns; writes go to the grid.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := 0; y < g.Height(); y++ {
			if !yield(y, g.rowView(y)) {
				return
			}
		}
	}
}

// XY yields, for each column x in [0, Width()), x and a lazy sequence of
// every row index [0, Height()). Shape is read when the outer loop starts.
//
//	for x, ys := range g.XY() {
//		for y := range ys {
//			_ = g.At(x, y)
//		}
//	}
func (g *Grid[T]) XY() iter.Seq2[int, iter.Seq[int]] {
	return func(yield func(int, iter.Seq[int]) bool) {
		width, height := g.width, g.Height()
		ys := func(yieldY func(int) bool) {
			for y := 0; y < height; y++ {
				if !yieldY(y) {
					return
				}
			}
		}
		for x := 0; x < width; x++ {
			if !yield(x, ys) {
				return
			}
		}
	}
}
