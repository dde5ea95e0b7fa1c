package scenario

import (
	"context"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/mandate-cli/internal/cost"
	"github.com/sells-group/mandate-cli/internal/model"
)

// Request is one entry of a batch evaluation.
type Request struct {
	Label     string               `json:"label,omitempty" yaml:"label"`
	Preset    string               `json:"preset,omitempty" yaml:"preset"`
	Selection model.SelectionPatch `json:"selection" yaml:"selection"`
	Overrides cost.Overrides       `json:"overrides,omitempty" yaml:"overrides"`
}

// Resolve returns the request's selection, starting from its preset when one
// is named. Attributes supplied on the request replace preset values, even
// when they are zero or false.
func (r Request) Resolve() (model.AttributeSelection, error) {
	var base model.AttributeSelection
	if r.Preset != "" {
		p, err := LookupPreset(r.Preset)
		if err != nil {
			return model.AttributeSelection{}, err
		}
		base = p.Selection
	}
	return r.Selection.Apply(base), nil
}

// Outcome is the result for one batch request, in request order.
type Outcome struct {
	Label    string          `json:"label,omitempty"`
	Scenario *model.Scenario `json:"scenario,omitempty"`
	Err      error           `json:"-"`
	Error    string          `json:"error,omitempty"`
}

// BuildAll evaluates requests concurrently. Individual failures are recorded
// on their Outcome and do not abort the batch; only context cancellation
// does.
func (e *Engine) BuildAll(ctx context.Context, reqs []Request, concurrency int) ([]Outcome, error) {
	if concurrency <= 0 {
		concurrency = 1
	}
	out := make([]Outcome, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64
	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i].Label = req.Label

			sel, err := req.Resolve()
			if err == nil {
				out[i].Scenario, err = e.Build(sel, req.Overrides)
			}
			if err != nil {
				failed.Add(1)
				out[i].Err = err
				out[i].Error = err.Error()
				zap.L().Debug("batch scenario failed", zap.Int("index", i), zap.Error(err))
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "scenario: batch")
	}

	zap.L().Info("batch complete",
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return out, nil
}
