// SPDX-License-Identifier: MIT

package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of land cells
// (value ≥ LandThreshold), according to the configured connectivity.
// Islands are seeded in row-major order, so component 0 holds the first land
// cell of the grid. Each component lists cell indices in BFS order.
//
// To convert an index back to (x,y), use Coordinate.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph[T]) ConnectedComponents() [][]int {
	seen := make([]bool, gg.cells.Len())
	var comps [][]int

	for p := range gg.cells.All() {
		if !gg.IsLand(p.X, p.Y) {
			continue // water
		}
		i0 := gg.Index(p.X, p.Y)
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := gg.Coordinate(queue[qi])
			for _, d := range gg.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.IsLand(vx, vy) {
					continue
				}
				vi := gg.Index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
