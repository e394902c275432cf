package gridgraph

// ConnectedComponents finds all contiguous clusters of open cells
// (CellValues[y][x] ≥ OpenThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS order. Components are ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsOpen(x, y) || seen[gg.index(x, y)] {
				continue
			}
			comps = append(comps, gg.flood([]int{gg.index(x, y)}, seen))
		}
	}

	return comps
}

// Spans reports whether some open cell of the top row (y=0) reaches the
// bottom row (y=Height-1) through open cells. This is the percolation
// predicate computed by a full scan.
//
// Time:   O(W·H·d).
// Memory: O(W·H).
func (gg *GridGraph) Spans() bool {
	seen := make([]bool, gg.Width*gg.Height)
	var sources []int
	for x := 0; x < gg.Width; x++ {
		if gg.IsOpen(x, 0) {
			i := gg.index(x, 0)
			seen[i] = true
			sources = append(sources, i)
		}
	}
	for _, u := range gg.flood(sources, seen) {
		if _, y := gg.Coordinate(u); y == gg.Height-1 {
			return true
		}
	}

	return false
}

// flood runs a multi-source BFS over open cells and returns every cell
// reached, sources first. Sources are marked seen by flood itself.
func (gg *GridGraph) flood(sources []int, seen []bool) []int {
	queue := append([]int(nil), sources...)
	for _, s := range sources {
		seen[s] = true
	}
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.IsOpen(vx, vy) {
				continue
			}
			if vi := gg.index(vx, vy); !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	return queue
}
