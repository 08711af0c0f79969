package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roomgraph/config"
	"github.com/katalvlaran/roomgraph/lab"
	"github.com/katalvlaran/roomgraph/report"
)

type rootOptions struct {
	configPath string
	logLevel   string
	seed       int64
	metrics    bool
}

// newRootCmd builds the command tree. Each invocation wires a fresh app in
// PersistentPreRunE, so tests can execute several trees side by side.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	var a *app

	root := &cobra.Command{
		Use:   "roomgraph",
		Short: "Inspection-order analysis over a hotel's rooms",
		Long: `roomgraph links every room to the rooms on the next occupied floor
through randomly drawn, cached inspection travel times, then prints a
topological inspection order and the critical path of the weighted graph.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if flags.Changed("seed") {
				cfg.Seed = opts.seed
			}
			if flags.Changed("metrics") {
				cfg.Metrics = opts.metrics
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a, err = newApp(cfg, cmd.ErrOrStderr())
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.Int64Var(&opts.seed, "seed", 0, "weight generator seed (0 seeds from the clock)")
	pf.BoolVar(&opts.metrics, "metrics", false, "print prometheus metrics after the command")

	appRef := func() *app { return a }
	root.AddCommand(
		newAnalyzeCmd(appRef),
		newWeightsCmd(appRef),
		newRoomsCmd(appRef),
		newShellCmd(appRef),
	)
	return root
}

func newAnalyzeCmd(appRef func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Build both graphs, sort, and compute the critical path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appRef()
			if err := a.analyze(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return err
			}
			return a.maybeMetrics(cmd.OutOrStdout())
		},
	}
}

func newWeightsCmd(appRef func() *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Print the weight table of the current activity graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appRef()
			if err := a.lab.DumpWeights(cmd.OutOrStdout(), all); err != nil {
				return err
			}
			return a.maybeMetrics(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include cached pairs that produced no edge")
	return cmd
}

func newRoomsCmd(appRef func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "List the room inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.WriteRooms(cmd.OutOrStdout(), appRef().catalog.Rooms())
		},
	}
}

func newShellCmd(appRef func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session; the weight cache persists until 'reset'",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return appRef().runShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// analyze runs one analysis and prints its report.
func (a *app) analyze(ctx context.Context, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rep, err := a.lab.Analyze(ctx)
	if err != nil {
		return err
	}
	return lab.WriteReport(w, rep)
}

func (a *app) maybeMetrics(w io.Writer) error {
	if !a.cfg.Metrics {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return a.metrics.WriteText(w)
}
