// SPDX-License-Identifier: MIT
// Package: experiment
//
// experiment.go: single trials, repeated runs, and summary statistics.

package experiment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolation/percolation"
)

// Trial opens uniformly random blocked sites of a fresh n×n grid until it
// percolates and returns the fraction of sites opened.
//
// Draws that land on an open site are skipped. The loop terminates because a
// fully open grid with n ≥ 1 always percolates.
//
// Errors: ErrInvalidArgument if n ≤ 0, ErrNilSource if src is nil.
// Complexity: O(n²·α(n²)) expected time, O(n²) memory.
func Trial(n int, src Uniform) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: grid size %d must be positive", ErrInvalidArgument, n)
	}
	if src == nil {
		return 0, ErrNilSource
	}
	// IsFull is never queried, so the single-forest policy suffices.
	g, err := percolation.New(n, percolation.WithFullness(percolation.Backwash))
	if err != nil {
		return 0, err
	}

	opened := 0
	for !g.Percolates() {
		row, col := 1+src.Intn(n), 1+src.Intn(n)
		isOpen, err := g.IsOpen(row, col)
		if err != nil {
			return 0, err
		}
		if isOpen {
			continue
		}
		if err := g.Open(row, col); err != nil {
			return 0, err
		}
		opened++
	}

	return float64(opened) / float64(n*n), nil
}

// Run performs trials independent trials on n×n grids, in order, and
// returns the thresholds with their statistics.
//
// Errors: ErrInvalidArgument if n ≤ 0 or trials ≤ 0.
// Complexity: trials × Trial.
func Run(n, trials int, opts ...Option) (*Result, error) {
	if n <= 0 || trials <= 0 {
		return nil, fmt.Errorf("%w: n=%d trials=%d must both be positive", ErrInvalidArgument, n, trials)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}

	thresholds := make([]float64, trials)
	for i := range thresholds {
		p, err := Trial(n, rng)
		if err != nil {
			return nil, fmt.Errorf("experiment: trial %d: %w", i, err)
		}
		thresholds[i] = p
		if cfg.OnTrial != nil {
			cfg.OnTrial(i, p)
		}
	}

	res := Summarize(thresholds)
	res.N = n

	return res, nil
}

// Summarize computes mean, sample standard deviation and the 95% interval
// of thresholds. The slice is retained, not copied. An empty slice yields
// NaN statistics; a single value yields a NaN deviation and interval.
// Complexity: O(len(thresholds)).
func Summarize(thresholds []float64) *Result {
	res := &Result{
		Trials:     len(thresholds),
		Thresholds: thresholds,
	}
	switch len(thresholds) {
	case 0:
		res.Mean = math.NaN()
		res.StdDev = math.NaN()
	case 1:
		res.Mean = thresholds[0]
		res.StdDev = math.NaN()
	default:
		res.Mean, res.StdDev = stat.MeanStdDev(thresholds, nil)
	}
	half := Confidence95 * res.StdDev / math.Sqrt(float64(res.Trials))
	res.ConfidenceLo = res.Mean - half
	res.ConfidenceHi = res.Mean + half

	return res
}

// Range returns the smallest and largest recorded threshold.
// Both are NaN when no trial was recorded.
func (r *Result) Range() (lo, hi float64) {
	if len(r.Thresholds) == 0 {
		return math.NaN(), math.NaN()
	}

	return floats.Min(r.Thresholds), floats.Max(r.Thresholds)
}
