// Package uptake implements the discrete-choice (logit) model that predicts
// public uptake of a mandate configuration, and the willingness-to-save-lives
// trade-offs derived from the same coefficients.
package uptake

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/sells-group/mandate-cli/internal/model"
)

// CoefficientSet holds the estimated utility weights for one severity tier.
// Reference levels (restricted scope, medical-only exemption, 50% coverage)
// have no weight.
type CoefficientSet struct {
	Baseline                  float64 `yaml:"baseline" json:"baseline"`
	ScopeAll                  float64 `yaml:"scope_all" json:"scope_all"`
	ExemptionMedicalReligious float64 `yaml:"exemption_medical_religious" json:"exemption_medical_religious"`
	ExemptionBroad            float64 `yaml:"exemption_broad" json:"exemption_broad"`
	CoverageModerate          float64 `yaml:"coverage_moderate" json:"coverage_moderate"`
	CoverageHigh              float64 `yaml:"coverage_high" json:"coverage_high"`
	LivesSaved                float64 `yaml:"lives_saved" json:"lives_saved"`
}

// Validate checks that every weight is finite and that the lives-saved weight
// is positive, which keeps uptake monotone in lives saved and the WTSL ratios
// defined.
func (c CoefficientSet) Validate() error {
	for name, v := range map[string]float64{
		"baseline":                    c.Baseline,
		"scope_all":                   c.ScopeAll,
		"exemption_medical_religious": c.ExemptionMedicalReligious,
		"exemption_broad":             c.ExemptionBroad,
		"coverage_moderate":           c.CoverageModerate,
		"coverage_high":               c.CoverageHigh,
		"lives_saved":                 c.LivesSaved,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return eris.Wrapf(model.ErrConfigurationUnavailable, "coefficient %s is not finite", name)
		}
	}
	if c.LivesSaved <= 0 {
		return eris.Wrapf(model.ErrConfigurationUnavailable, "coefficient lives_saved must be positive, got %g", c.LivesSaved)
	}
	return nil
}

// Table is the immutable set of coefficients, one per severity tier.
type Table struct {
	Pooled CoefficientSet `yaml:"pooled" json:"pooled"`
	Mild   CoefficientSet `yaml:"mild" json:"mild"`
	Severe CoefficientSet `yaml:"severe" json:"severe"`
}

// For returns the coefficients for a severity tier. Unknown or empty tiers
// fall back to the pooled set.
func (t Table) For(s model.Severity) CoefficientSet {
	switch model.ParseSeverity(string(s)) {
	case model.SeverityMild:
		return t.Mild
	case model.SeveritySevere:
		return t.Severe
	default:
		return t.Pooled
	}
}

// Validate validates all three tiers.
func (t Table) Validate() error {
	for _, tier := range []model.Severity{model.SeverityPooled, model.SeverityMild, model.SeveritySevere} {
		if err := t.For(tier).Validate(); err != nil {
			return eris.Wrapf(err, "coefficients %s", tier)
		}
	}
	return nil
}
