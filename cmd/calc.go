package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/mandate-cli/internal/model"
	"github.com/sells-group/mandate-cli/internal/scenario"
)

var (
	calcFlags selectionFlags
	calcJSON  bool
	calcSave  bool
)

type calcOutput struct {
	Scenario       *model.Scenario         `json:"scenario"`
	Recommendation scenario.Recommendation `json:"recommendation"`
	Saved          *model.StoredScenario   `json:"saved,omitempty"`
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute uptake, costs and benefits for one mandate design",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		engine, err := initEngine()
		if err != nil {
			return err
		}
		sel, overrides, err := calcFlags.resolve(cmd)
		if err != nil {
			return err
		}

		s, err := engine.Build(sel, overrides)
		if err != nil {
			return eris.Wrap(err, "calc")
		}
		out := calcOutput{
			Scenario:       s,
			Recommendation: scenario.Recommend(s.UptakePercentage, s.Participants, s.Population),
		}

		if calcSave {
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			if cfg.Store.Driver == "memory" {
				zap.L().Warn("memory store does not outlive this command; set store.driver to sqlite or postgres to keep scenarios")
			}
			out.Saved, err = st.Save(ctx, *s)
			if err != nil {
				return eris.Wrap(err, "calc: save")
			}
		}

		if calcJSON {
			return writeJSON(os.Stdout, out)
		}
		formatScenario(os.Stdout, s, out.Recommendation)
		if out.Saved != nil {
			fmt.Fprintf(os.Stdout, "Saved as %s\n", out.Saved.Name)
		}
		return nil
	},
}

func init() {
	calcFlags.register(calcCmd)
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "print the scenario as JSON")
	calcCmd.Flags().BoolVar(&calcSave, "save", false, "append the scenario to the scenario store")
	rootCmd.AddCommand(calcCmd)
}
