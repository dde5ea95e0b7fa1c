package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/mandate-cli/internal/model"
	"github.com/sells-group/mandate-cli/internal/store"
)

var scenariosJSON bool

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Inspect saved scenarios",
	Long:  "Commands for listing, comparing, and clearing the scenario store.",
}

// -- scenarios list --

var scenariosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios in save order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		list, err := st.List(ctx)
		if err != nil {
			return eris.Wrap(err, "scenarios list")
		}
		if scenariosJSON {
			if list == nil {
				list = []model.StoredScenario{}
			}
			return writeJSON(os.Stdout, list)
		}
		if len(list) == 0 {
			fmt.Fprintln(os.Stderr, "No saved scenarios.")
			return nil
		}
		formatStoredList(os.Stdout, list)
		return nil
	},
}

// -- scenarios compare --

var scenariosCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all saved scenarios side by side",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		rows, err := store.Compare(ctx, st)
		if err != nil {
			return eris.Wrap(err, "scenarios compare")
		}
		if scenariosJSON {
			return writeJSON(os.Stdout, rows)
		}
		formatComparison(os.Stdout, rows)
		return nil
	},
}

// -- scenarios clear --

var scenariosClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all saved scenarios",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		n, err := st.Count(ctx)
		if err != nil {
			return eris.Wrap(err, "scenarios clear")
		}
		if err := st.Clear(ctx); err != nil {
			return eris.Wrap(err, "scenarios clear")
		}
		fmt.Fprintf(os.Stderr, "Cleared %d scenarios.\n", n)
		return nil
	},
}

func init() {
	scenariosCmd.PersistentFlags().BoolVar(&scenariosJSON, "json", false, "print as JSON")

	scenariosCmd.AddCommand(scenariosListCmd)
	scenariosCmd.AddCommand(scenariosCompareCmd)
	scenariosCmd.AddCommand(scenariosClearCmd)
	rootCmd.AddCommand(scenariosCmd)
}
