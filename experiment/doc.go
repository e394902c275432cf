// SPDX-License-Identifier: MIT
// Package experiment estimates the site-percolation threshold by Monte Carlo.
//
// A trial builds a fresh percolation.Grid, opens uniformly random blocked
// sites until the grid percolates and records the fraction of open sites.
// Run repeats independent trials and summarizes them:
//
//   - Mean:         sample mean of the thresholds.
//   - StdDev:       sample standard deviation (divides by trials-1).
//   - ConfidenceLo: Mean - 1.96·StdDev/√trials.
//   - ConfidenceHi: Mean + 1.96·StdDev/√trials.
//
// With trials == 1 the standard deviation is undefined; StdDev and both
// confidence bounds are NaN. This is a degenerate result, not an error.
//
// Determinism:
//
//   - Run draws from a single *rand.Rand. WithSeed(s) fixes it; seed 0 maps
//     to a fixed default seed, so a Run without options is reproducible too.
//   - Trial is a pure function of (n, source): callers may run trials on
//     independent sources (see DeriveRand) and aggregate with Summarize.
//
// Complexity:
//
//   - Trial: O(n² · α(n²)) expected, O(n²) memory.
//   - Run:   trials × Trial + O(trials) for the statistics.
package experiment
