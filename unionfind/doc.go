// SPDX-License-Identifier: MIT
// Package unionfind implements a disjoint-set forest over a fixed universe
// of integer-labelled elements [0, count).
//
// What:
//
//   - DisjointSet tracks a partition of its elements into components.
//   - Union merges the components of two elements.
//   - Find returns the canonical root of an element's component.
//   - Connected reports whether two elements share a component.
//
// Why:
//
//   - Incremental connectivity: answer "are a and b connected?" after every
//     merge without rescanning the underlying structure.
//
// Complexity:
//
//   - New:       O(count) time and memory.
//   - Union:     O(α(count)) amortized.
//   - Find:      O(α(count)) amortized (union by rank + path halving).
//   - Connected: O(α(count)) amortized.
//
// Errors:
//
//   - ErrInvalidSize: count ≤ 0 passed to New.
//   - ErrOutOfRange:  element outside [0, count).
//
// A DisjointSet is not safe for concurrent use; Find mutates parent links.
package unionfind
