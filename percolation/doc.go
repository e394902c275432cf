// SPDX-License-Identifier: MIT
// Package percolation models site percolation on an n-by-n grid.
//
// What:
//
//   - Grid holds n×n sites, each Blocked or Open; sites only ever open.
//   - A site is Full when an open path of 4-adjacent sites links it to the top row.
//   - The Grid Percolates once some Full site lies in the bottom row.
//
// How:
//
//   - Two virtual sites, TOP and BOTTOM, are attached to every opened site of
//     the first and last row respectively.
//   - A unionfind.DisjointSet over n²+2 elements answers Percolates as
//     Connected(TOP, BOTTOM).
//   - Fullness is read from a second DisjointSet over n²+1 elements that has
//     no BOTTOM element. Without it a bottom-row site joined only to BOTTOM
//     looks Full as soon as the grid percolates anywhere ("backwash").
//   - Nothing about connectivity is cached per site; every query goes
//     through Find on the current forests.
//
// Coordinates are 1-indexed: row, col ∈ [1, n]. Site (row, col) is element
// (row-1)*n + col; TOP is element 0 and BOTTOM is element n²+1.
//
// Complexity:
//
//   - New:               O(n²) time and memory.
//   - Open:              O(α(n²)) amortized (at most 6 unions per forest).
//   - IsFull/Percolates: O(α(n²)) amortized.
//   - IsOpen/NumberOfOpenSites: O(1).
//
// Errors:
//
//   - ErrInvalidArgument: n ≤ 0.
//   - ErrOutOfBounds:     row or col outside [1, n].
//
// A Grid is not safe for concurrent use.
package percolation
