package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "meetgrid",
	Short: "Find common weekly meeting times from shared availability files",
	Long: `meetgrid aggregates weekly availability schedules exported as TSV/CSV
files and reports the time slots where everyone is available.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
