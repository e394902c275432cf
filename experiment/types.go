// SPDX-License-Identifier: MIT
// Package: experiment
//
// types.go: sentinels, the random-source capability, options and Result.

package experiment

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/percolation/percolation"
)

// ErrInvalidArgument indicates a non-positive grid size or trial count.
// It is the percolation sentinel, so one errors.Is check covers both layers.
var ErrInvalidArgument = percolation.ErrInvalidArgument

// ErrNilSource indicates Trial was called without a random source.
var ErrNilSource = errors.New("experiment: random source is nil")

// Confidence95 is the two-sided 95% normal quantile used for the interval.
const Confidence95 = 1.96

// Uniform draws integers uniformly from [0, n). *rand.Rand satisfies it.
type Uniform interface {
	Intn(n int) int
}

// Options configures Run.
type Options struct {
	// Seed feeds the default source when Rand is nil. 0 means defaultSeed.
	Seed int64
	// Rand, when set, is used as is and Seed is ignored.
	Rand *rand.Rand
	// OnTrial, when set, is called after each trial with its index and threshold.
	OnTrial func(trial int, threshold float64)
}

// Option mutates Options.
type Option func(*Options)

// WithSeed fixes the seed of the default source.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the random source directly.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithOnTrial registers a per-trial hook.
func WithOnTrial(fn func(trial int, threshold float64)) Option {
	return func(o *Options) {
		o.OnTrial = fn
	}
}

// DefaultOptions returns Options{Seed: 0}.
func DefaultOptions() Options {
	return Options{}
}

// Result holds the per-trial thresholds and their summary statistics.
type Result struct {
	N            int       `json:"n"`
	Trials       int       `json:"trials"`
	Thresholds   []float64 `json:"thresholds"`
	Mean         float64   `json:"mean"`
	StdDev       float64   `json:"stddev"`
	ConfidenceLo float64   `json:"confidence_lo"`
	ConfidenceHi float64   `json:"confidence_hi"`
}
