package gridgraph

import (
	"reflect"
	"testing"
)

// checkPath verifies that path is a Conn4 walk whose blocked cells sum to cost.
func checkPath(t *testing.T, gg *GridGraph, path []int, cost int) {
	t.Helper()
	blocked := 0
	for i, u := range path {
		x, y := gg.Coordinate(u)
		if !gg.IsOpen(x, y) {
			blocked++
		}
		if i == 0 {
			continue
		}
		px, py := gg.Coordinate(path[i-1])
		if dx, dy := abs(x-px), abs(y-py); dx+dy != 1 {
			t.Fatalf("path step %d: (%d,%d)->(%d,%d) not 4-adjacent", i, px, py, x, y)
		}
	}
	if blocked != cost {
		t.Errorf("path has %d blocked cells; cost = %d", blocked, cost)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TestExpandIsland_BasicLine tests a 1×3 line with a single blocked cell between two clusters.
// Grid: [1,0,1]. Expected: cost 1, path [0,1,2].
func TestExpandIsland_BasicLine(t *testing.T) {
	gg, err := From2D([][]int{{1, 0, 1}}, Conn4)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	want := []int{gg.index(0, 0), gg.index(1, 0), gg.index(2, 0)}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestExpandIsland_MediumRow: [1,0,0,0,1] needs 3 conversions over 5 cells.
func TestExpandIsland_MediumRow(t *testing.T) {
	gg, _ := From2D([][]int{{1, 0, 0, 0, 1}}, Conn4)
	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}
	if cost != 3 || len(path) != 5 {
		t.Errorf("cost=%d len=%d; want 3 and 5", cost, len(path))
	}
}

// TestExpandIsland_InvalidIndices ensures invalid component indices yield ErrComponentIndex.
func TestExpandIsland_InvalidIndices(t *testing.T) {
	gg, _ := From2D([][]int{{1, 0, 1}}, Conn4)
	if _, _, err := gg.ExpandIsland(-1, 1); err != ErrComponentIndex {
		t.Errorf("src=-1: got %v; want ErrComponentIndex", err)
	}
	if _, _, err := gg.ExpandIsland(0, 2); err != ErrComponentIndex {
		t.Errorf("dst=2: got %v; want ErrComponentIndex", err)
	}
}

// TestMinOpenings covers spanning, partially open and fully blocked grids.
func TestMinOpenings(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		want int
	}{
		{"AlreadySpans", [][]int{{0, 1}, {0, 1}}, 0},
		{"AllBlocked3x3", [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, 3},
		{"OneGap", [][]int{{1, 0, 0}, {0, 0, 0}, {1, 0, 0}}, 1},
		{"UseDetour", [][]int{{0, 1, 1}, {0, 0, 1}, {1, 1, 1}}, 0},
		{"SingleBlocked", [][]int{{0}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gg, err := From2D(tc.grid, Conn4)
			if err != nil {
				t.Fatalf("From2D failed: %v", err)
			}
			path, cost, err := gg.MinOpenings()
			if err != nil {
				t.Fatalf("MinOpenings error: %v", err)
			}
			if cost != tc.want {
				t.Errorf("cost = %d; want %d", cost, tc.want)
			}
			if _, y := gg.Coordinate(path[0]); y != 0 {
				t.Errorf("path starts in row %d; want 0", y)
			}
			if _, y := gg.Coordinate(path[len(path)-1]); y != gg.Height-1 {
				t.Errorf("path ends in row %d; want %d", y, gg.Height-1)
			}
			checkPath(t, gg, path, cost)
			if (cost == 0) != gg.Spans() {
				t.Errorf("cost=%d disagrees with Spans()=%v", cost, gg.Spans())
			}
		})
	}
}
