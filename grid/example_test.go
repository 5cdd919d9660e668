// File: grid/example_test.go
package grid_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flatgrid/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: New / Get
////////////////////////////////////////////////////////////////////////////////

// ExampleNew builds a 2×3 grid and probes it through the safe tier.
func ExampleNew() {
	g, err := grid.New('a', 2, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("width:", g.Width(), "height:", g.Height())

	if v, ok := g.Get(1, 2); ok {
		fmt.Printf("(1,2) = %c\n", v)
	}
	if _, ok := g.Get(2, 2); !ok {
		fmt.Println("(2,2) is outside the grid")
	}
	// Output:
	// width: 2 height: 3
	// (1,2) = a
	// (2,2) is outside the grid
}

////////////////////////////////////////////////////////////////////////////////
// Example: FromSlice / Release
////////////////////////////////////////////////////////////////////////////////

// ExampleFromSlice adopts an existing slice, indexes it and hands it back.
func ExampleFromSlice() {
	g, _ := grid.FromSlice([]rune{'a', 'b', 'c', 'd'}, 2)
	fmt.Printf("(1,0) = %c\n", g.At(1, 0))

	_, err := grid.FromSlice([]rune{'a', 'b', 'c', 'd'}, 3)
	fmt.Println(errors.Is(err, grid.ErrDimensionMismatch), err)

	tiles := g.Release()
	fmt.Println(string(tiles))
	// Output:
	// (1,0) = b
	// true grid: input length is not divisible by width: 4 % 3 = 1
	// abcd
}

////////////////////////////////////////////////////////////////////////////////
// Example: iteration
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_All walks positions in row-major order.
func ExampleGrid_All() {
	g, _ := grid.NewFunc(3, 2, func(p grid.Pos) int { return p.Y*3 + p.X })
	for p, v := range g.All() {
		fmt.Print(p, "=", v, " ")
	}
	fmt.Println()
	// Output:
	// (0,0)=0 (1,0)=1 (2,0)=2 (0,1)=3 (1,1)=4 (2,1)=5
}

// ExampleGrid_Rows doubles every element row by row.
func ExampleGrid_Rows() {
	g, _ := grid.FromSlice([]int{1, 2, 3, 4}, 2)
	for y, row := range g.Rows() {
		for i := range row {
			row[i] *= 2
		}
		fmt.Println(y, row)
	}
	// Output:
	// 0 [2 4]
	// 1 [6 8]
}
