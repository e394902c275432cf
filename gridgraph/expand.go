package gridgraph

import (
	"container/list"
)

// ExpandIsland finds a minimum‐conversion path of blocked cells to connect
// any cell in component srcComp to any cell in component dstComp, as
// identified by ConnectedComponents(). Each blocked‐cell conversion costs 1.
// Returns the sequence of cell‐indices (row‐major) representing the path
// (including the start and end open cells) and the total conversion cost.
//
// Complexity: O(W·H·d) with a 0-1 BFS deque.
// Memory:     O(W·H) for distance and prev pointers.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	return gg.zeroOneBFS(comps[srcComp], func(u int) bool {
		_, ok := dstSet[u]
		return ok
	})
}

// MinOpenings finds the fewest blocked cells that must be opened so that the
// top row connects to the bottom row. The path runs from a top-row cell to a
// bottom-row cell; cost is the number of blocked cells on it, 0 when the grid
// already spans.
//
// Complexity: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) MinOpenings() (path []int, cost int, err error) {
	sources := make([]int, 0, gg.Width)
	for x := 0; x < gg.Width; x++ {
		sources = append(sources, gg.index(x, 0))
	}

	return gg.zeroOneBFS(sources, func(u int) bool {
		_, y := gg.Coordinate(u)
		return y == gg.Height-1
	})
}

// zeroOneBFS runs a multi-source 0–1 BFS where entering an open cell costs 0
// and entering a blocked cell costs 1. Source cells pay their own cost.
// It stops at the first settled cell accepted by isTarget.
func (gg *GridGraph) zeroOneBFS(sources []int, isTarget func(int) bool) ([]int, int, error) {
	N := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, N)
	prev := make([]int, N)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, i := range sources {
		x, y := gg.Coordinate(i)
		if gg.IsOpen(x, y) {
			dist[i] = 0
			dq.PushFront(i)
		} else if dist[i] > 1 {
			dist[i] = 1
			dq.PushBack(i)
		}
	}

	done := make([]bool, N)
	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if isTarget(u) {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if !gg.IsOpen(vx, vy) {
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
	var path []int
	for at := target; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}

	return path, dist[target], nil
}
