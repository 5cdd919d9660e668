// File: gridgraph/components_test.go
package gridgraph_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/flatgrid/grid"
	"github.com/katalvlaran/flatgrid/gridgraph"
	"github.com/stretchr/testify/require"
)

// sizes returns the sorted component sizes.
func sizes(comps [][]int) []int {
	out := make([]int, len(comps))
	for i, c := range comps {
		out[i] = len(c)
	}
	sort.Ints(out)
	return out
}

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = land, 0 = water):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
func TestConnectedComponents_Simple4(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, gridgraph.Conn4)
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 2)
	if diff := cmp.Diff([]int{2, 4}, sizes(comps)); diff != "" {
		t.Errorf("component sizes mismatch (-want +got):\n%s", diff)
	}
	// Row-major seeding: the first island starts at (1,0).
	require.Equal(t, gg.Index(1, 0), comps[0][0])
}

// TestConnectedComponents_Diagonal8 tests ConnectedComponents on a 5×5 grid
// using diagonal connectivity (Conn8) to catch "touching corners" islands.
//
// Grid:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// With Conn8, all 9 ones connect through diagonal hops into a single island;
// with Conn4 every one is its own island.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	values := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gg8, err := gridgraph.From2D(values, gridgraph.Conn8)
	require.NoError(t, err)
	comps := gg8.ConnectedComponents()
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 9)

	gg4, err := gridgraph.From2D(values, gridgraph.Conn4)
	require.NoError(t, err)
	require.Len(t, gg4.ConnectedComponents(), 9)
}

// TestConnectedComponents_EmptyAndAllWater tests edge cases:
//   - completely water grid → zero components
//   - single-cell land grid → one component of size 1
func TestConnectedComponents_EmptyAndAllWater(t *testing.T) {
	water, err := grid.New(0, 2, 2)
	require.NoError(t, err)
	gg1, err := gridgraph.New(water, gridgraph.DefaultOptions[int]())
	require.NoError(t, err)
	require.Empty(t, gg1.ConnectedComponents())

	gg2, err := gridgraph.From2D([][]int{{0, 1}}, gridgraph.Conn4)
	require.NoError(t, err)
	comps := gg2.ConnectedComponents()
	require.Len(t, comps, 1)
	require.Equal(t, []int{1}, comps[0])
}

// TestConnectedComponents_Coverage checks every land cell lands in exactly one component.
func TestConnectedComponents_Coverage(t *testing.T) {
	g, err := grid.NewFunc(7, 5, func(p grid.Pos) uint8 {
		return uint8((p.X*3 + p.Y*5) % 4)
	})
	require.NoError(t, err)
	gg, err := gridgraph.New(g, gridgraph.Options[uint8]{LandThreshold: 2, Conn: gridgraph.Conn4})
	require.NoError(t, err)

	owner := make(map[int]int)
	for ci, comp := range gg.ConnectedComponents() {
		for _, idx := range comp {
			_, dup := owner[idx]
			require.False(t, dup, "cell %d in two components", idx)
			owner[idx] = ci
		}
	}
	for p, v := range g.All() {
		_, ok := owner[gg.Index(p.X, p.Y)]
		require.Equal(t, v >= 2, ok, "cell %v value %d", p, v)
	}
}
