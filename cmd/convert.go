package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meetgrid/config"
	"meetgrid/pkg/export"
	"meetgrid/pkg/interchange"
)

var convertCmd = &cobra.Command{
	Use:   "convert SRC DST",
	Short: "Re-serialize a schedule between TSV and CSV",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	src, dst := args[0], args[1]
	name, sched, err := interchange.LoadFile(src)
	if err != nil {
		return fmt.Errorf("load %s: %w", src, err)
	}
	if sched == nil {
		return fmt.Errorf("%s contains no schedule rows", src)
	}

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	delim := cfg.Interchange.DelimiterFor(export.DelimiterFor(dst))
	if err := export.WriteSchedule(f, delim, name, sched); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d slots for %s written to %s\n", src, sched.Len(), name, dst)
	return nil
}
