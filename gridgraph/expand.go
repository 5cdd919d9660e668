// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"
	"math"
	"slices"
)

// ExpandIsland finds a minimum-conversion path of water cells to connect any
// cell in component srcComp to any cell in component dstComp, as numbered by
// ConnectedComponents. Each water-cell conversion costs 1.
// Returns the row-major cell indices of the path (including the start and end
// land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • moving into a land cell  → cost 0
//     • moving into a water cell → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct the path via predecessors.
//
// When srcComp == dstComp the path is a single cell at cost 0.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph[T]) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	n := gg.cells.Len()
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost-0 moves at the front, cost-1 at the back
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.Index(vx, vy)
			step := 0
			if !gg.IsLand(vx, vy) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	slices.Reverse(path)

	return path, dist[target], nil
}

// Bridge converts the water cells of the cheapest path between srcComp and
// dstComp into land by writing fill into them, and returns the converted
// cell indices. fill should be at least the land threshold for the two
// islands to merge.
// Complexity: same as ExpandIsland.
func (gg *GridGraph[T]) Bridge(srcComp, dstComp int, fill T) ([]int, error) {
	path, _, err := gg.ExpandIsland(srcComp, dstComp)
	if err != nil {
		return nil, err
	}
	var converted []int
	for _, i := range path {
		x, y := gg.Coordinate(i)
		if gg.IsLand(x, y) {
			continue
		}
		gg.cells.Set(x, y, fill)
		converted = append(converted, i)
	}

	return converted, nil
}
