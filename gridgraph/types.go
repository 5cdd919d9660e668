// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/flatgrid/grid"
	"golang.org/x/exp/constraints"
)

// Value is the set of cell types a GridGraph can classify against a
// numeric land threshold.
type Value interface {
	constraints.Integer | constraints.Float
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for grid analysis.
type Options[T Value] struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold T
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with LandThreshold=1 (values ≥1 are land)
// and Conn=Conn4.
func DefaultOptions[T Value]() Options[T] {
	return Options[T]{
		LandThreshold: T(1),
		Conn:          Conn4,
	}
}

// GridGraph reads a grid.Grid as a graph of cells. Cells are identified by
// their row-major index in the underlying grid.
// The grid is shared, not copied: later writes to it are visible to every
// analysis.
type GridGraph[T Value] struct {
	cells           *grid.Grid[T]
	conn            Connectivity
	landThreshold   T
	neighborOffsets [][2]int
}
