// Package params loads the immutable model parameters (coefficients, cost
// parameters and benefit valuation) the scenario engine is built from.
package params

import (
	_ "embed"
	"math"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/mandate-cli/internal/cost"
	"github.com/sells-group/mandate-cli/internal/model"
	"github.com/sells-group/mandate-cli/internal/uptake"
)

//go:embed default_params.yaml
var defaultParamsYAML []byte

// Parameters is the full model configuration. Build it once at start-up.
type Parameters struct {
	// Population is the pilot sample size participants are scaled to.
	Population   int                `yaml:"population" json:"population"`
	BenefitModel model.BenefitModel `yaml:"benefit_model" json:"benefit_model"`
	Coefficients uptake.Table       `yaml:"coefficients" json:"coefficients"`
	cost.Rates   `yaml:",inline"`
}

// Default returns the embedded parameters.
func Default() (*Parameters, error) {
	return Parse(defaultParamsYAML)
}

// Load reads parameters from a YAML or JSON file. An empty path returns the
// embedded defaults.
func Load(path string) (*Parameters, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(model.ErrConfigurationUnavailable, "params: read %s: %v", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "params: %s", path)
	}
	zap.L().Debug("loaded model parameters",
		zap.String("path", path),
		zap.Int("countries", len(p.Countries)),
		zap.String("benefit_model", string(p.BenefitModel)),
	)
	return p, nil
}

// Parse decodes and validates parameters. JSON input is accepted because it
// is a subset of YAML.
func Parse(data []byte) (*Parameters, error) {
	var p Parameters
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, eris.Wrapf(model.ErrConfigurationUnavailable, "params: decode: %v", err)
	}
	if p.BenefitModel == "" {
		p.BenefitModel = model.BenefitModelQALY
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

var tiers = []model.BenefitTier{model.BenefitLow, model.BenefitMedium, model.BenefitHigh}

// Validate checks that every value the engine may look up is present and
// finite.
func (p *Parameters) Validate() error {
	if err := p.Coefficients.Validate(); err != nil {
		return eris.Wrap(err, "params")
	}
	if p.Population <= 0 {
		return eris.Wrapf(model.ErrConfigurationUnavailable, "params: population must be positive, got %d", p.Population)
	}
	if len(p.Countries) == 0 {
		return eris.Wrap(model.ErrConfigurationUnavailable, "params: no countries configured")
	}

	for name, cc := range p.Countries {
		for _, comp := range cost.FixedComponents {
			v, ok := cc.Fixed[comp]
			if !ok {
				return eris.Wrapf(model.ErrConfigurationUnavailable, "params: %s is missing fixed cost %s", name, comp)
			}
			if !finiteNonNegative(v) {
				return eris.Wrapf(model.ErrConfigurationUnavailable, "params: %s fixed cost %s is invalid: %g", name, comp, v)
			}
		}
		if !finiteNonNegative(cc.VariablePerPerson) {
			return eris.Wrapf(model.ErrConfigurationUnavailable, "params: %s variablePerPerson is invalid: %g", name, cc.VariablePerPerson)
		}
		if !finiteNonNegative(cc.CostOfLiving) {
			return eris.Wrapf(model.ErrConfigurationUnavailable, "params: %s col_multiplier is invalid: %g", name, cc.CostOfLiving)
		}
	}

	switch p.BenefitModel {
	case model.BenefitModelQALY:
		if p.QALYsPerLife <= 0 {
			return eris.Wrap(model.ErrConfigurationUnavailable, "params: qalys_per_life must be positive")
		}
		for _, tier := range tiers {
			for _, zone := range []model.CurrencyZone{model.ZoneAUS, model.ZoneEUR} {
				if v, ok := p.ValuePerQALY[tier][zone]; !ok || !finiteNonNegative(v) {
					return eris.Wrapf(model.ErrConfigurationUnavailable, "params: value_per_qaly %s/%s missing or invalid", tier, zone)
				}
			}
		}
	case model.BenefitModelFlat:
		for _, tier := range tiers {
			if v, ok := p.BenefitPerParticipant[tier]; !ok || !finiteNonNegative(v) {
				return eris.Wrapf(model.ErrConfigurationUnavailable, "params: benefit_per_participant %s missing or invalid", tier)
			}
		}
	default:
		return eris.Wrapf(model.ErrConfigurationUnavailable, "params: unknown benefit_model %q", p.BenefitModel)
	}
	return nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
