// Package scenario assembles uptake and cost-benefit results into Scenario
// records.
package scenario

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/mandate-cli/internal/cost"
	"github.com/sells-group/mandate-cli/internal/model"
	"github.com/sells-group/mandate-cli/internal/params"
	"github.com/sells-group/mandate-cli/internal/uptake"
)

// Engine computes scenarios from immutable parameters. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	coefficients uptake.Table
	calc         *cost.Calculator
	population   int
}

// NewEngine validates p and builds an Engine from it.
func NewEngine(p *params.Parameters) (*Engine, error) {
	if p == nil {
		return nil, eris.Wrap(model.ErrConfigurationUnavailable, "scenario: parameters not loaded")
	}
	if err := p.Validate(); err != nil {
		return nil, eris.Wrap(err, "scenario: new engine")
	}
	return &Engine{
		coefficients: p.Coefficients,
		calc:         cost.NewCalculator(p.Rates, p.BenefitModel),
		population:   p.Population,
	}, nil
}

// Population returns the sample size participants are scaled to.
func (e *Engine) Population() int {
	return e.population
}

// WTSL returns the willingness-to-save-lives trade-offs for a severity tier.
func (e *Engine) WTSL(s model.Severity) ([]uptake.WTSL, error) {
	return uptake.ComputeWTSL(e.coefficients.For(s))
}

// Build computes a complete Scenario. It either returns a fully populated
// Scenario or an error; rejected overrides are reported as notices.
func (e *Engine) Build(sel model.AttributeSelection, overrides cost.Overrides) (*model.Scenario, error) {
	sel, err := sel.Normalize()
	if err != nil {
		return nil, err
	}

	up, err := uptake.Compute(sel, e.coefficients.For(sel.Severity), e.population)
	if err != nil {
		return nil, eris.Wrap(err, "scenario: uptake")
	}

	cb, err := e.calc.CostBenefit(cost.Input{
		Country:           sel.Country,
		Participants:      up.Participants,
		Population:        e.population,
		LivesSavedPer100k: sel.LivesSavedPer100k,
		BenefitTier:       sel.BenefitTier,
		AdjustForCOL:      sel.AdjustForCostOfLiving,
		Overrides:         overrides,
	})
	if err != nil {
		return nil, eris.Wrap(err, "scenario: cost-benefit")
	}

	s := &model.Scenario{
		Selection:         sel,
		SeverityText:      sel.Severity.Text(),
		ScopeText:         sel.Scope.Text(),
		ExemptionText:     sel.Exemption.Text(),
		CoverageText:      sel.Coverage.Text(),
		Utility:           up.Utility,
		UptakeProbability: up.Probability,
		UptakePercentage:  up.Percentage,
		Participants:      up.Participants,
		Population:        e.population,
		Currency:          cb.Currency,
		CurrencyCode:      cb.Currency.Unit().String(),
		FixedCost:         cb.FixedCost,
		VariableCost:      cb.VariableCost,
		TotalCost:         cb.TotalCost,
		BenefitModel:      e.calc.BenefitModel(),
		TotalLivesSaved:   cb.TotalLivesSaved,
		QALYsPerLife:      cb.QALYsPerLife,
		TotalQALYs:        cb.TotalQALYs,
		ValuePerQALY:      cb.ValuePerQALY,
		TotalBenefit:      cb.TotalBenefit,
		NetBenefit:        cb.NetBenefit,
	}

	for _, rej := range cb.Rejected {
		zap.L().Warn("cost override rejected, using default",
			zap.String("component", rej.Component),
			zap.String("value", rej.Raw),
			zap.String("reason", rej.Reason),
		)
		s.Notices = append(s.Notices, model.Notice{
			Code:      "invalid_override",
			Component: rej.Component,
			Message:   rej.Error(),
		})
	}

	return s, nil
}
