package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/mandate-cli/internal/scenario"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List named policy presets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		formatPresets(os.Stdout, scenario.Presets())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
