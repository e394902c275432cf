package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/experiment"
	"github.com/katalvlaran/percolation/internal/logging"
	"github.com/katalvlaran/percolation/percolation"
)

// statsReport is the JSON shape of the stats command.
type statsReport struct {
	RunID        string    `json:"run_id"`
	Seed         int64     `json:"seed"`
	N            int       `json:"n"`
	Trials       int       `json:"trials"`
	Mean         float64   `json:"mean"`
	StdDev       *float64  `json:"stddev"`
	ConfidenceLo *float64  `json:"confidence_lo"`
	ConfidenceHi *float64  `json:"confidence_hi"`
	Min          float64   `json:"min"`
	Max          float64   `json:"max"`
	Thresholds   []float64 `json:"thresholds,omitempty"`
}

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <n> [trials]",
		Short: "Estimate the percolation threshold by Monte Carlo simulation",
		Long: `Run independent trials on n-by-n grids, opening random sites until each
percolates, and print the mean, sample standard deviation and 95%
confidence interval of the open-site fraction. trials defaults to the
configured experiment.trials.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := positiveArg("n", args[0])
			if err != nil {
				return err
			}
			trials := a.cfg.Experiment.Trials
			if len(args) == 2 {
				if trials, err = positiveArg("trials", args[1]); err != nil {
					return err
				}
			}
			seed := a.cfg.Experiment.Seed
			if cmd.Flags().Changed("seed") {
				seed, _ = cmd.Flags().GetInt64("seed")
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			withThresholds, _ := cmd.Flags().GetBool("thresholds")

			runID := uuid.NewString()
			log := a.log.With("run_id", runID)
			log.Info("experiment started", "n", n, "trials", trials, "seed", seed)

			start := time.Now()
			res, err := experiment.Run(n, trials,
				experiment.WithSeed(seed),
				experiment.WithOnTrial(func(i int, p float64) {
					log.Log(cmd.Context(), logging.LevelTrace, "trial done", "trial", i, "threshold", p)
				}),
			)
			if err != nil {
				return err
			}
			log.Info("experiment finished", "mean", res.Mean, "elapsed", time.Since(start))

			lo, hi := res.Range()
			rep := statsReport{
				RunID:        runID,
				Seed:         seed,
				N:            res.N,
				Trials:       res.Trials,
				Mean:         res.Mean,
				StdDev:       finite(res.StdDev),
				ConfidenceLo: finite(res.ConfidenceLo),
				ConfidenceHi: finite(res.ConfidenceHi),
				Min:          lo,
				Max:          hi,
			}
			if withThresholds {
				rep.Thresholds = res.Thresholds
			}
			return writeStatsReport(cmd.OutOrStdout(), rep, a.asJSON)
		},
	}

	cmd.Flags().Int64("seed", 0, "Random seed (0 means time-based; overrides config)")
	cmd.Flags().Bool("thresholds", false, "Include every trial's threshold in JSON output")

	return cmd
}

func positiveArg(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", percolation.ErrInvalidArgument, name, s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", percolation.ErrInvalidArgument, name, v)
	}
	return v, nil
}

// finite maps NaN to nil; a single trial has no deviation and
// encoding/json rejects NaN.
func finite(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func writeStatsReport(w io.Writer, rep statsReport, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(rep)
	}
	fmt.Fprintf(w, "mean                    = %v\n", rep.Mean)
	fmt.Fprintf(w, "stddev                  = %v\n", orNaN(rep.StdDev))
	fmt.Fprintf(w, "95%% confidence interval = [%v, %v]\n", orNaN(rep.ConfidenceLo), orNaN(rep.ConfidenceHi))
	return nil
}
