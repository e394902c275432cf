// SPDX-License-Identifier: MIT
// Package: percolation
//
// grid.go: the Grid type and its operations.
//
// Invariants:
//   • open[id] flips false→true at most once; opened counts those flips.
//   • perc contains TOP (0), sites 1..n², BOTTOM (n²+1).
//   • fill contains TOP (0) and sites 1..n²; nil under the Backwash policy.
//   • Validation precedes every mutation, so a failed Open changes nothing.

package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// Grid is an n-by-n percolation system.
type Grid struct {
	n      int
	open   []bool // indexed by site id; slot 0 unused
	opened int

	top    int // virtual TOP element
	bottom int // virtual BOTTOM element

	perc *unionfind.DisjointSet // TOP + sites + BOTTOM
	fill *unionfind.DisjointSet // TOP + sites; nil under Backwash

	policy FullnessPolicy
}

// New creates an n-by-n Grid with every site blocked.
// Returns ErrInvalidArgument if n ≤ 0.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size %d must be positive", ErrInvalidArgument, n)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sites := n * n
	perc, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, fmt.Errorf("percolation: New(%d): %w", n, err)
	}
	g := &Grid{
		n:      n,
		open:   make([]bool, sites+1),
		top:    0,
		bottom: sites + 1,
		perc:   perc,
		policy: cfg.Fullness,
	}
	if cfg.Fullness == BackwashFree {
		if g.fill, err = unionfind.New(sites + 1); err != nil {
			return nil, fmt.Errorf("percolation: New(%d): %w", n, err)
		}
	}

	return g, nil
}

// Size returns n.
func (g *Grid) Size() int {
	return g.n
}

// Policy returns the IsFull policy the Grid was built with.
func (g *Grid) Policy() FullnessPolicy {
	return g.policy
}

// IsOpen reports whether site (row, col) has been opened.
// Complexity: O(1).
func (g *Grid) IsOpen(row, col int) (bool, error) {
	id, err := g.site(row, col)
	if err != nil {
		return false, err
	}

	return g.open[id], nil
}

// Open opens site (row, col) and joins it with the virtual sites and its
// open neighbours. Opening an open site is a no-op.
// Complexity: O(α(n²)) amortized.
func (g *Grid) Open(row, col int) error {
	id, err := g.site(row, col)
	if err != nil {
		return err
	}
	if g.open[id] {
		return nil
	}
	g.open[id] = true

	if row == 1 {
		g.join(id, g.top, true)
	}
	if row == g.n {
		g.join(id, g.bottom, false)
	}
	for _, d := range neighbourOffsets {
		r, c := row+d[0], col+d[1]
		if !g.inBounds(r, c) {
			continue
		}
		if nid := g.id(r, c); g.open[nid] {
			g.join(id, nid, true)
		}
	}
	g.opened++

	return nil
}

// IsFull reports whether site (row, col) is open and connected to the top
// row through open sites, as defined by the Grid's FullnessPolicy.
// Complexity: O(α(n²)) amortized.
func (g *Grid) IsFull(row, col int) (bool, error) {
	id, err := g.site(row, col)
	if err != nil {
		return false, err
	}
	if !g.open[id] {
		return false, nil
	}
	forest := g.fill
	if forest == nil {
		forest = g.perc
	}
	// Both ids are in range by construction.
	full, _ := forest.Connected(g.top, id)

	return full, nil
}

// Percolates reports whether TOP and BOTTOM share a component. Once true it
// stays true.
// Complexity: O(α(n²)) amortized.
func (g *Grid) Percolates() bool {
	ok, _ := g.perc.Connected(g.top, g.bottom)

	return ok
}

// NumberOfOpenSites returns the number of open sites.
// Complexity: O(1).
func (g *Grid) NumberOfOpenSites() int {
	return g.opened
}

// Sites returns a 0-indexed copy of the open flags: Sites()[r][c] is site
// (r+1, c+1).
// Complexity: O(n²).
func (g *Grid) Sites() [][]bool {
	out := make([][]bool, g.n)
	for r := 0; r < g.n; r++ {
		out[r] = make([]bool, g.n)
		copy(out[r], g.open[r*g.n+1:(r+1)*g.n+1])
	}

	return out
}

// neighbourOffsets lists the 4-adjacent (Δrow, Δcol) moves: N, S, W, E.
var neighbourOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// join unions a and b in perc and, when withFill is set, in fill as well.
// BOTTOM never enters fill. Callers pass valid ids only.
func (g *Grid) join(a, b int, withFill bool) {
	_ = g.perc.Union(a, b)
	if withFill && g.fill != nil {
		_ = g.fill.Union(a, b)
	}
}

func (g *Grid) site(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) not in [1,%d]x[1,%d]", ErrOutOfBounds, row, col, g.n, g.n)
	}

	return g.id(row, col), nil
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

func (g *Grid) id(row, col int) int {
	return (row-1)*g.n + col
}
