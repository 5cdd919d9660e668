// Package gridgraph treats a grid.Grid of numeric cells as a graph, enabling
// component analysis and minimal-cost "island" expansions.
//
// What:
//
//   - GridGraph wraps a *grid.Grid[T] with a tunable LandThreshold.
//   - Identifies connected components ("islands") of cells with value ≥ LandThreshold.
//   - Computes minimal conversions (0-1 BFS) to connect two island sets.
//   - Bridge writes the cheapest conversion back into the grid.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Resource planning: connect facilities with minimal upgrades.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Cells are addressed by their row-major index in the underlying grid
// (y*Width + x); Coordinate converts back.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland, Bridge: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - Options.LandThreshold: minimum value considered "land".
//   - Options.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrNilGrid: New was given a nil grid.
//   - ErrEmptyGrid: From2D input has no rows or no columns.
//   - ErrNonRectangular: From2D rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
