// Package flatgrid is a small toolkit for two-dimensional data kept in one
// flat, row-major slice.
//
// What is in here?
//
//	grid/      — Grid[T]: (x, y) addressing over a single backing slice,
//	             safe (Get) and fatal (At) access tiers, row views and
//	             range-over-func iterators
//	gridgraph/ — reads a numeric Grid as a graph: islands of land cells and
//	             the cheapest water conversions that join two of them
//
// Why a flat slice?
//
//   - One allocation per grid, no per-row slices
//   - Rows are contiguous, so row walks are cache friendly
//   - The layout rule index = y*width + x lives in exactly one place
//
// Quick ASCII example:
//
//	width 3, height 2      backing slice
//	  a b c                [a b c d e f]
//	  d e f                 0 1 2 3 4 5
//
// (1,1) is "e", at offset 1*3 + 1 = 4.
//
//	go get github.com/katalvlaran/flatgrid
package flatgrid
