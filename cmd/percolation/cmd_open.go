package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/internal/logging"
	"github.com/katalvlaran/percolation/internal/sitefile"
	"github.com/katalvlaran/percolation/percolation"
)

// openReport is the JSON shape of the open command.
type openReport struct {
	N           int    `json:"n"`
	Fullness    string `json:"fullness"`
	Percolates  bool   `json:"percolates"`
	OpenSites   int    `json:"open_sites"`
	Clusters    *int   `json:"clusters,omitempty"`
	SitesToOpen *int   `json:"sites_to_open,omitempty"`
}

func newOpenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open [file|-]",
		Short: "Open sites read from a file and report percolation",
		Long: `Read a grid size n followed by "row col" pairs (1-indexed) from a file
or standard input, open the sites in order until the grid percolates,
then report the outcome and the number of open sites.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			explain, _ := cmd.Flags().GetBool("explain")
			fullness := a.cfg.Grid.Fullness
			if cmd.Flags().Changed("fullness") {
				fullness, _ = cmd.Flags().GetString("fullness")
			}
			policy, err := parseFullness(fullness)
			if err != nil {
				return err
			}

			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			g, err := percolation.New(in.N, percolation.WithFullness(policy))
			if err != nil {
				return err
			}
			a.log.Debug("grid created", "n", in.N, "fullness", policy, "sites", len(in.Sites))

			for i, s := range in.Sites {
				if err := g.Open(s.Row, s.Col); err != nil {
					return fmt.Errorf("site #%d: %w", i+1, err)
				}
				a.log.Log(cmd.Context(), logging.LevelTrace, "site opened", "row", s.Row, "col", s.Col)
				if !all && g.Percolates() {
					a.log.Debug("percolation reached", "after", i+1)
					break
				}
			}

			rep := openReport{
				N:          in.N,
				Fullness:   policy.String(),
				Percolates: g.Percolates(),
				OpenSites:  g.NumberOfOpenSites(),
			}
			if explain {
				gg, err := gridgraph.FromSites(g.Sites(), gridgraph.Conn4)
				if err != nil {
					return err
				}
				clusters := len(gg.ConnectedComponents())
				_, missing, err := gg.MinOpenings()
				if err != nil {
					return err
				}
				rep.Clusters, rep.SitesToOpen = &clusters, &missing
			}
			return writeOpenReport(cmd.OutOrStdout(), rep, a.asJSON)
		},
	}

	cmd.Flags().Bool("all", false, "Keep opening after the grid percolates")
	cmd.Flags().Bool("explain", false, "Report cluster count and sites still needed to percolate")
	cmd.Flags().String("fullness", "", "IsFull policy: backwash-free or backwash (overrides config)")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) (*sitefile.Input, error) {
	if len(args) == 0 || args[0] == "-" {
		return sitefile.Read(cmd.InOrStdin())
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return sitefile.Read(f)
}

func parseFullness(s string) (percolation.FullnessPolicy, error) {
	switch s {
	case "", "backwash-free":
		return percolation.BackwashFree, nil
	case "backwash":
		return percolation.Backwash, nil
	default:
		return 0, fmt.Errorf("%w: unknown fullness policy %q", percolation.ErrInvalidArgument, s)
	}
}

func writeOpenReport(w io.Writer, rep openReport, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(rep)
	}
	if rep.Percolates {
		fmt.Fprintln(w, "percolates")
	} else {
		fmt.Fprintln(w, "does not percolate")
	}
	fmt.Fprintf(w, "%d open sites\n", rep.OpenSites)
	if rep.Clusters != nil {
		fmt.Fprintf(w, "%d clusters\n", *rep.Clusters)
		fmt.Fprintf(w, "%d more sites needed\n", *rep.SitesToOpen)
	}
	return nil
}
