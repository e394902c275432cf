package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/internal/logging"
)

var version = "0.1.0-dev"

// app carries the state resolved by the root command before any subcommand runs.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	asJSON bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Discard()}

	rootCmd := &cobra.Command{
		Use:   "percolation",
		Short: "Site percolation on n-by-n grids",
		Long: `percolation opens grid sites and reports whether the top row
connects to the bottom row, or estimates the percolation threshold by
Monte Carlo simulation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
			}
			a.cfg = cfg
			a.asJSON, _ = cmd.Flags().GetBool("json")
			a.log = logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default ./"+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: error, warn, info, debug, trace")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newOpenCmd(a),
		newStatsCmd(a),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "percolation version %s\n", version)
		},
	}
}
