package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"meetgrid/pkg/interchange"
	"meetgrid/pkg/render"
)

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Display one participant's weekly availability",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	name, sched, err := interchange.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}
	if sched == nil {
		return fmt.Errorf("%s contains no schedule rows", args[0])
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Availability for %s (%d slots)\n\n", name, sched.Len())
	fmt.Fprint(out, render.Week(sched))
	return nil
}
