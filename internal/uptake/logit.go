package uptake

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/sells-group/mandate-cli/internal/model"
)

// Result is the uptake prediction for one selection.
type Result struct {
	Utility      float64 `json:"utility"`
	Probability  float64 `json:"probability"`
	Percentage   float64 `json:"percentage"` // probability × 100, rounded to 1 dp
	Participants int     `json:"participants"`
}

// Utility returns the linear predictor for sel. Only non-reference levels
// contribute a term.
func Utility(sel model.AttributeSelection, c CoefficientSet) float64 {
	u := c.Baseline
	if sel.Scope == model.ScopeAll {
		u += c.ScopeAll
	}
	switch sel.Exemption {
	case model.ExemptionMedicalReligious:
		u += c.ExemptionMedicalReligious
	case model.ExemptionBroad:
		u += c.ExemptionBroad
	}
	switch sel.Coverage {
	case model.Coverage70:
		u += c.CoverageModerate
	case model.Coverage90:
		u += c.CoverageHigh
	}
	u += float64(sel.LivesSavedPer100k) * c.LivesSaved
	return u
}

// Logistic returns 1/(1+e^-u) without overflowing for large |u|.
func Logistic(u float64) float64 {
	if u >= 0 {
		return 1 / (1 + math.Exp(-u))
	}
	z := math.Exp(u)
	return z / (1 + z)
}

// Compute evaluates the logit model for sel and scales the probability to a
// participant count out of population.
func Compute(sel model.AttributeSelection, c CoefficientSet, population int) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	if population <= 0 {
		return Result{}, eris.Wrapf(model.ErrConfigurationUnavailable, "population must be positive, got %d", population)
	}

	u := Utility(sel, c)
	p := Logistic(u)
	return Result{
		Utility:      u,
		Probability:  p,
		Percentage:   math.Round(p*1000) / 10,
		Participants: int(math.Round(p * float64(population))),
	}, nil
}
