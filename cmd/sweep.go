package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/mandate-cli/internal/model"
	"github.com/sells-group/mandate-cli/internal/scenario"
)

var (
	sweepFlags selectionFlags
	sweepRange scenario.SweepRange
	sweepJSON  bool
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Show net benefit across a range of lives saved",
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, err := initEngine()
		if err != nil {
			return err
		}
		sel, overrides, err := sweepFlags.resolve(cmd)
		if err != nil {
			return err
		}
		points, err := engine.Sweep(sel, overrides, sweepRange)
		if err != nil {
			return err
		}
		if sweepJSON {
			return writeJSON(os.Stdout, points)
		}
		formatSweep(os.Stdout, model.ZoneFor(sel.Country), points)
		return nil
	},
}

func init() {
	sweepFlags.register(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepRange.From, "from", scenario.DefaultSweep.From, "first lives-saved value")
	sweepCmd.Flags().IntVar(&sweepRange.To, "to", scenario.DefaultSweep.To, "last lives-saved value")
	sweepCmd.Flags().IntVar(&sweepRange.Step, "step", scenario.DefaultSweep.Step, "lives-saved increment")
	sweepCmd.Flags().BoolVar(&sweepJSON, "json", false, "print as JSON")
	rootCmd.AddCommand(sweepCmd)
}
