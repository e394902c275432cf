// SPDX-License-Identifier: MIT
// Package: percolation
//
// types.go: sentinel errors, fullness policy and construction options.

package percolation

import "errors"

// ErrInvalidArgument indicates a non-positive grid size.
var ErrInvalidArgument = errors.New("percolation: invalid argument")

// ErrOutOfBounds indicates a row or column outside [1, n].
var ErrOutOfBounds = errors.New("percolation: site out of bounds")

// FullnessPolicy selects how IsFull treats the virtual BOTTOM site.
type FullnessPolicy int

const (
	// BackwashFree answers IsFull from a forest without BOTTOM. A site is
	// Full only through a path of open sites starting in the top row.
	BackwashFree FullnessPolicy = iota

	// Backwash answers IsFull from the same forest as Percolates. It saves
	// one forest but reports bottom-row sites as Full once the grid
	// percolates, whether or not they touch the percolating cluster.
	Backwash
)

// String returns the policy name.
func (p FullnessPolicy) String() string {
	switch p {
	case BackwashFree:
		return "backwash-free"
	case Backwash:
		return "backwash"
	default:
		return "unknown"
	}
}

// Options configures a Grid.
type Options struct {
	// Fullness selects the IsFull policy. Default: BackwashFree.
	Fullness FullnessPolicy
}

// Option mutates Options.
type Option func(*Options)

// WithFullness sets the IsFull policy.
func WithFullness(p FullnessPolicy) Option {
	return func(o *Options) {
		o.Fullness = p
	}
}

// DefaultOptions returns Options{Fullness: BackwashFree}.
func DefaultOptions() Options {
	return Options{Fullness: BackwashFree}
}
