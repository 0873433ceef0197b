package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"meetgrid/app"
	"meetgrid/config"
	"meetgrid/core/overlap"
	"meetgrid/infra/logger"
	"meetgrid/pkg/export"
	"meetgrid/pkg/render"
)

var analyzeOut string

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "Load schedules and report overlapping availability",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "write the per-slot analysis to this file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("analyze").Errorf("service close: %v", err)
		}
	}()

	results, err := svc.LoadFiles(args)
	if err != nil {
		return fmt.Errorf("load schedules: %w", err)
	}
	for _, r := range results {
		if r.Failed {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s failed to load\n", r.File)
		}
	}

	tally := svc.Tally()
	sum := overlap.Summarize(tally)
	stats := overlap.ComputeStats(tally)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, render.Summary(sum, stats))
	fmt.Fprintln(out)
	fmt.Fprint(out, render.Matches(overlap.FullMatches(tally)))
	fmt.Fprintln(out)
	fmt.Fprint(out, render.Heat(tally))

	if analyzeOut != "" {
		if err := svc.WriteAnalysis(analyzeOut); err != nil {
			if errors.Is(err, export.ErrEmptyInput) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
				return nil
			}
			return fmt.Errorf("write analysis: %w", err)
		}
		fmt.Fprintf(out, "\nanalysis written to %s\n", analyzeOut)
	}
	return nil
}
