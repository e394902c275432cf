// Package gridgraph analyses a static snapshot of a percolation grid as a
// graph of cells.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int of cell values with a tunable
//     OpenThreshold; cells with value ≥ OpenThreshold are open.
//   - ConnectedComponents finds clusters of open cells.
//   - Spans checks by BFS whether an open path joins the top and bottom rows.
//   - MinOpenings finds the fewest blocked cells to open so that it does.
//   - ExpandIsland finds the fewest blocked cells joining two clusters.
//
// Why:
//
//   - An independent, scan-based oracle for the incremental union-find Grid.
//   - Diagnostics for a grid that does not percolate yet: how many clusters,
//     and how far it is from percolating.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - Spans:               O(W×H×d), Memory: O(W×H).
//   - MinOpenings:         O(W×H×d), Memory: O(W×H)    (0-1 BFS).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.OpenThreshold: minimum value considered open.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified regions.
package gridgraph
