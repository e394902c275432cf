package percolation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/percolation"
)

// mustGrid builds an n×n Grid or fails the test.
func mustGrid(t *testing.T, n int, opts ...percolation.Option) *percolation.Grid {
	t.Helper()
	g, err := percolation.New(n, opts...)
	require.NoError(t, err)
	return g
}

// openAll opens each (row, col) pair in order.
func openAll(t *testing.T, g *percolation.Grid, sites ...[2]int) {
	t.Helper()
	for _, s := range sites {
		require.NoError(t, g.Open(s[0], s[1]), "Open(%d,%d)", s[0], s[1])
	}
}

// snapshot captures every observable of g.
type snapshot struct {
	open, full []bool
	perc       bool
	count      int
}

func observe(t *testing.T, g *percolation.Grid) snapshot {
	t.Helper()
	var s snapshot
	for r := 1; r <= g.Size(); r++ {
		for c := 1; c <= g.Size(); c++ {
			o, err := g.IsOpen(r, c)
			require.NoError(t, err)
			f, err := g.IsFull(r, c)
			require.NoError(t, err)
			s.open = append(s.open, o)
			s.full = append(s.full, f)
		}
	}
	s.perc = g.Percolates()
	s.count = g.NumberOfOpenSites()
	return s
}

// TestNew_InvalidArgument rejects non-positive sizes.
func TestNew_InvalidArgument(t *testing.T) {
	for _, n := range []int{0, -1, -7} {
		g, err := percolation.New(n)
		assert.ErrorIs(t, err, percolation.ErrInvalidArgument, "New(%d)", n)
		assert.Nil(t, g)
	}
}

// TestNew_Fresh checks the state of a newly built grid for several sizes.
func TestNew_Fresh(t *testing.T) {
	for _, n := range []int{1, 2, 5, 20} {
		g := mustGrid(t, n)
		assert.Equal(t, n, g.Size())
		assert.Equal(t, 0, g.NumberOfOpenSites(), "n=%d", n)
		assert.False(t, g.Percolates(), "n=%d", n)
		assert.Equal(t, percolation.BackwashFree, g.Policy())

		s := observe(t, g)
		for i := range s.open {
			assert.False(t, s.open[i])
			assert.False(t, s.full[i])
		}
	}
}

// TestSingleSite: opening the only site of a 1×1 grid makes it full and percolating.
func TestSingleSite(t *testing.T) {
	for _, policy := range []percolation.FullnessPolicy{percolation.BackwashFree, percolation.Backwash} {
		t.Run(policy.String(), func(t *testing.T) {
			g := mustGrid(t, 1, percolation.WithFullness(policy))
			require.NoError(t, g.Open(1, 1))

			full, err := g.IsFull(1, 1)
			require.NoError(t, err)
			assert.True(t, full)
			assert.True(t, g.Percolates())
			assert.Equal(t, 1, g.NumberOfOpenSites())
		})
	}
}

// TestOutOfBounds checks every coordinate guard, for several sizes.
func TestOutOfBounds(t *testing.T) {
	for _, n := range []int{1, 3, 10} {
		g := mustGrid(t, n)
		bad := [][2]int{{0, 1}, {n + 1, 1}, {1, 0}, {1, n + 1}, {-1, -1}}
		for _, b := range bad {
			assert.ErrorIs(t, g.Open(b[0], b[1]), percolation.ErrOutOfBounds, "Open%v n=%d", b, n)
			_, err := g.IsOpen(b[0], b[1])
			assert.ErrorIs(t, err, percolation.ErrOutOfBounds, "IsOpen%v n=%d", b, n)
			_, err = g.IsFull(b[0], b[1])
			assert.ErrorIs(t, err, percolation.ErrOutOfBounds, "IsFull%v n=%d", b, n)
		}
		// Failed calls leave no trace.
		assert.Equal(t, 0, g.NumberOfOpenSites())
		assert.False(t, g.Percolates())
	}
}

// TestOpen_Idempotent: a second Open of the same site changes nothing.
func TestOpen_Idempotent(t *testing.T) {
	const n = 4
	for r := 1; r <= n; r++ {
		for c := 1; c <= n; c++ {
			once := mustGrid(t, n)
			twice := mustGrid(t, n)
			openAll(t, once, [2]int{2, 2}, [2]int{r, c})
			openAll(t, twice, [2]int{2, 2}, [2]int{r, c}, [2]int{r, c})
			assert.Equal(t, observe(t, once), observe(t, twice), "site (%d,%d)", r, c)
		}
	}
}

// TestOpen_CountIndependentOfOrder: k distinct sites yield k open sites in any order.
func TestOpen_CountIndependentOfOrder(t *testing.T) {
	const n = 6
	r := rand.New(rand.NewSource(3))
	sites := make([][2]int, 0, n*n)
	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			sites = append(sites, [2]int{row, col})
		}
	}
	set := sites[:20]

	var want snapshot
	for round := 0; round < 5; round++ {
		r.Shuffle(len(set), func(i, j int) { set[i], set[j] = set[j], set[i] })
		g := mustGrid(t, n)
		openAll(t, g, set...)
		assert.Equal(t, len(set), g.NumberOfOpenSites())

		got := observe(t, g)
		if round == 0 {
			want = got
			continue
		}
		assert.Equal(t, want, got, "round %d", round)
	}
}

// TestPercolates_Monotonic: after percolation every further Open keeps it.
func TestPercolates_Monotonic(t *testing.T) {
	const n = 8
	r := rand.New(rand.NewSource(11))
	g := mustGrid(t, n)
	seen := false
	for i := 0; i < 4*n*n; i++ {
		require.NoError(t, g.Open(1+r.Intn(n), 1+r.Intn(n)))
		if seen {
			require.True(t, g.Percolates(), "percolation lost after open #%d", i)
		}
		seen = g.Percolates()
	}
	assert.True(t, seen)
}

// TestBackwash is the regression test for the virtual-bottom hazard.
//
//	1 . .        column 1 percolates;
//	1 . .        (3,3) touches only the virtual BOTTOM
//	1 . 1
//
// Under BackwashFree, (3,3) is not full. Under Backwash the shared forest
// reports it full, which is the documented trade-off of that policy.
func TestBackwash(t *testing.T) {
	sites := [][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 3}}

	free := mustGrid(t, 3)
	openAll(t, free, sites...)
	require.True(t, free.Percolates())
	full, err := free.IsFull(3, 3)
	require.NoError(t, err)
	assert.False(t, full, "backwash-free grid reported (3,3) full")
	full, _ = free.IsFull(3, 1)
	assert.True(t, full)

	washed := mustGrid(t, 3, percolation.WithFullness(percolation.Backwash))
	openAll(t, washed, sites...)
	require.True(t, washed.Percolates())
	full, err = washed.IsFull(3, 3)
	require.NoError(t, err)
	assert.True(t, full, "backwash grid is expected to report (3,3) full")
}

// TestBottomFirst opens the bottom row before the top: percolation waits
// for the last connecting site, and no stale bottom flag leaks upward.
func TestBottomFirst(t *testing.T) {
	g := mustGrid(t, 3)
	openAll(t, g, [2]int{3, 2}, [2]int{2, 2})
	assert.False(t, g.Percolates())
	full, _ := g.IsFull(2, 2)
	assert.False(t, full)

	openAll(t, g, [2]int{1, 2})
	assert.True(t, g.Percolates())
	for r := 1; r <= 3; r++ {
		full, _ := g.IsFull(r, 2)
		assert.True(t, full, "row %d", r)
	}
}

// TestAgainstScanOracle replays random openings and compares every query with
// a BFS over the open-site snapshot.
func TestAgainstScanOracle(t *testing.T) {
	for _, n := range []int{1, 2, 5, 12} {
		r := rand.New(rand.NewSource(int64(n)))
		g := mustGrid(t, n)
		for step := 0; step < n*n; step++ {
			require.NoError(t, g.Open(1+r.Intn(n), 1+r.Intn(n)))

			gg, err := gridgraph.FromSites(g.Sites(), gridgraph.Conn4)
			require.NoError(t, err)
			require.Equal(t, gg.Spans(), g.Percolates(), "n=%d step=%d", n, step)

			// A site is full iff its cluster contains a top-row cell.
			wantFull := make(map[int]bool)
			for _, comp := range gg.ConnectedComponents() {
				touchesTop := false
				for _, idx := range comp {
					if _, y := gg.Coordinate(idx); y == 0 {
						touchesTop = true
						break
					}
				}
				for _, idx := range comp {
					wantFull[idx] = touchesTop
				}
			}
			open := 0
			for row := 1; row <= n; row++ {
				for col := 1; col <= n; col++ {
					full, err := g.IsFull(row, col)
					require.NoError(t, err)
					idx := (row-1)*n + (col - 1)
					require.Equal(t, wantFull[idx], full, "n=%d step=%d site=(%d,%d)", n, step, row, col)
					if gg.IsOpen(col-1, row-1) {
						open++
					}
				}
			}
			require.Equal(t, open, g.NumberOfOpenSites())
		}
	}
}

// TestSites returns an independent 0-indexed copy.
func TestSites(t *testing.T) {
	g := mustGrid(t, 2)
	openAll(t, g, [2]int{1, 2}, [2]int{2, 1})
	sites := g.Sites()
	assert.Equal(t, [][]bool{{false, true}, {true, false}}, sites)

	sites[0][0] = true
	ok, _ := g.IsOpen(1, 1)
	assert.False(t, ok, "Sites must return a copy")
}

// TestFullnessPolicy_String covers the policy names used in logs.
func TestFullnessPolicy_String(t *testing.T) {
	assert.Equal(t, "backwash-free", percolation.BackwashFree.String())
	assert.Equal(t, "backwash", percolation.Backwash.String())
	assert.Equal(t, "unknown", percolation.FullnessPolicy(9).String())
}
