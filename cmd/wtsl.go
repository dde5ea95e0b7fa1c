package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/mandate-cli/internal/model"
)

var (
	wtslSeverity string
	wtslJSON     bool
)

var wtslCmd = &cobra.Command{
	Use:   "wtsl",
	Short: "Show lives per 100k needed to offset each mandate attribute",
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, err := initEngine()
		if err != nil {
			return err
		}
		sev := model.ParseSeverity(wtslSeverity)
		list, err := engine.WTSL(sev)
		if err != nil {
			return err
		}
		if wtslJSON {
			return writeJSON(os.Stdout, list)
		}
		formatWTSL(os.Stdout, sev, list)
		return nil
	},
}

func init() {
	wtslCmd.Flags().StringVar(&wtslSeverity, "severity", string(model.SeverityPooled), "coefficient set (pooled, mild, severe)")
	wtslCmd.Flags().BoolVar(&wtslJSON, "json", false, "print as JSON")
	rootCmd.AddCommand(wtslCmd)
}
