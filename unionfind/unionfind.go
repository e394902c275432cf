// SPDX-License-Identifier: MIT
// Package: unionfind
//
// unionfind.go: slice-backed disjoint-set forest.
//
// Design:
//   • parent[i] == i marks a root.
//   • rank is an upper bound on tree height; only roots' ranks are meaningful.
//   • Find uses iterative path halving, no recursion.
//   • Union by rank keeps trees shallow; ties attach the second root under the first.

package unionfind

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates a non-positive universe size passed to New.
var ErrInvalidSize = errors.New("unionfind: count must be positive")

// ErrOutOfRange indicates an element outside [0, Len()).
var ErrOutOfRange = errors.New("unionfind: element out of range")

// DisjointSet is a union-find structure over elements 0..count-1.
type DisjointSet struct {
	parent []int
	rank   []uint8
	count  int // number of components
}

// New creates a DisjointSet of count singleton components.
// Returns ErrInvalidSize if count ≤ 0.
// Complexity: O(count) time and memory.
func New(count int) (*DisjointSet, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, count)
	}
	ds := &DisjointSet{
		parent: make([]int, count),
		rank:   make([]uint8, count),
		count:  count,
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds, nil
}

// Len returns the size of the universe.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Count returns the current number of components.
// Complexity: O(1).
func (ds *DisjointSet) Count() int {
	return ds.count
}

// Find returns the root of p's component. The root is stable until the next
// Union that merges p's component with another one.
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Find(p int) (int, error) {
	if err := ds.validate(p); err != nil {
		return 0, err
	}

	return ds.root(p), nil
}

// Connected reports whether p and q belong to the same component.
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Connected(p, q int) (bool, error) {
	if err := ds.validate(p); err != nil {
		return false, err
	}
	if err := ds.validate(q); err != nil {
		return false, err
	}

	return ds.root(p) == ds.root(q), nil
}

// Union merges the components containing p and q. It is a no-op when they
// already share a component.
// Complexity: O(α(n)) amortized.
func (ds *DisjointSet) Union(p, q int) error {
	if err := ds.validate(p); err != nil {
		return err
	}
	if err := ds.validate(q); err != nil {
		return err
	}

	rootP, rootQ := ds.root(p), ds.root(q)
	if rootP == rootQ {
		return nil
	}
	// Attach the shallower tree under the deeper one.
	switch {
	case ds.rank[rootP] < ds.rank[rootQ]:
		ds.parent[rootP] = rootQ
	case ds.rank[rootP] > ds.rank[rootQ]:
		ds.parent[rootQ] = rootP
	default:
		ds.parent[rootQ] = rootP
		ds.rank[rootP]++
	}
	ds.count--

	return nil
}

// root walks to p's root, halving the path on the way. p must be valid.
func (ds *DisjointSet) root(p int) int {
	for ds.parent[p] != p {
		ds.parent[p] = ds.parent[ds.parent[p]]
		p = ds.parent[p]
	}

	return p
}

func (ds *DisjointSet) validate(p int) error {
	if p < 0 || p >= len(ds.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, p, len(ds.parent))
	}

	return nil
}
