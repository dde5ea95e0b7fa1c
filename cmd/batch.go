package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/mandate-cli/internal/scenario"
	"github.com/sells-group/mandate-cli/internal/store"
)

var (
	batchJSON bool
	batchSave bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Evaluate a YAML list of scenario requests concurrently",
	Long: `Evaluate many mandate designs at once. The file holds a YAML list of
requests, each with an optional label, preset, selection and overrides:

  - label: baseline
    preset: current
  - label: france-wide
    selection: {country: France, scope: all, coverage: 70}
    overrides: {legal: 12000}`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		reqs, err := readBatchFile(args[0])
		if err != nil {
			return err
		}
		engine, err := initEngine()
		if err != nil {
			return err
		}

		outcomes, err := engine.BuildAll(ctx, reqs, cfg.Batch.MaxConcurrent)
		if err != nil {
			return err
		}

		if batchSave {
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			if err := saveOutcomes(ctx, st, outcomes); err != nil {
				return err
			}
		}

		if batchJSON {
			return writeJSON(os.Stdout, outcomes)
		}
		formatOutcomes(os.Stdout, outcomes)
		return nil
	},
}

func init() {
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "print outcomes as JSON")
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "append successful scenarios to the store in file order")
	rootCmd.AddCommand(batchCmd)
}

func readBatchFile(path string) ([]scenario.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "batch: read %s", path)
	}
	var reqs []scenario.Request
	if err := yaml.Unmarshal(data, &reqs); err != nil {
		return nil, eris.Wrapf(err, "batch: parse %s", path)
	}
	if len(reqs) == 0 {
		return nil, eris.Errorf("batch: %s contains no requests", path)
	}
	return reqs, nil
}

// saveOutcomes stores successful scenarios in request order.
func saveOutcomes(ctx context.Context, st store.Store, outcomes []scenario.Outcome) error {
	saved := 0
	for _, o := range outcomes {
		if o.Scenario == nil {
			continue
		}
		if _, err := st.Save(ctx, *o.Scenario); err != nil {
			return eris.Wrap(err, "batch: save")
		}
		saved++
	}
	zap.L().Info("batch scenarios saved", zap.Int("saved", saved), zap.Int("skipped", len(outcomes)-saved))
	fmt.Fprintf(os.Stderr, "Saved %d of %d scenarios.\n", saved, len(outcomes))
	return nil
}
