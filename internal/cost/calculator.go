package cost

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/mandate-cli/internal/model"
)

// Component names a fixed-cost line item.
type Component string

const (
	VaccineProcurement Component = "vaccineProcurement"
	Administration     Component = "administration"
	Legal              Component = "legal"
	Communication      Component = "communication"
	Monitoring         Component = "monitoring"
)

// VariablePerPerson is the override key for the per-participant rate.
const VariablePerPerson = "variablePerPerson"

// FixedComponents lists the fixed-cost components in display order.
var FixedComponents = []Component{VaccineProcurement, Administration, Legal, Communication, Monitoring}

// CountryCosts holds the cost parameters for one country.
type CountryCosts struct {
	Fixed             map[Component]float64 `yaml:"fixed" json:"fixed"`
	VariablePerPerson float64               `yaml:"variablePerPerson" json:"variablePerPerson"`
	// CostOfLiving scales fixed and variable cost when adjustment is requested.
	CostOfLiving float64 `yaml:"col_multiplier" json:"col_multiplier"`
}

// Rates holds cost and benefit valuation parameters.
type Rates struct {
	Countries map[model.Country]CountryCosts `yaml:"countries" json:"countries"`
	// ValuePerQALY is keyed by benefit tier then currency zone.
	ValuePerQALY map[model.BenefitTier]map[model.CurrencyZone]float64 `yaml:"value_per_qaly" json:"value_per_qaly"`
	// BenefitPerParticipant is used by the flat benefit model.
	BenefitPerParticipant map[model.BenefitTier]float64 `yaml:"benefit_per_participant" json:"benefit_per_participant"`
	QALYsPerLife          float64                       `yaml:"qalys_per_life" json:"qalys_per_life"`
}

// Overrides are raw caller-entered values keyed by component name or
// VariablePerPerson. Empty values are ignored.
type Overrides map[string]string

// Input is the argument set for one cost-benefit computation.
type Input struct {
	Country           model.Country
	Participants      int
	Population        int
	LivesSavedPer100k int
	BenefitTier       model.BenefitTier
	AdjustForCOL      bool
	Overrides         Overrides
}

// Breakdown is the result of a cost-benefit computation.
type Breakdown struct {
	Currency          model.CurrencyZone     `json:"currency"`
	Multiplier        float64                `json:"multiplier"`
	FixedComponents   map[Component]float64  `json:"fixed_components"`
	VariablePerPerson float64                `json:"variable_per_person"`
	FixedCost         float64                `json:"fixed_cost"`
	VariableCost      float64                `json:"variable_cost"`
	TotalCost         float64                `json:"total_cost"`
	TotalLivesSaved   float64                `json:"total_lives_saved"`
	QALYsPerLife      float64                `json:"qalys_per_life"`
	TotalQALYs        float64                `json:"total_qalys"`
	ValuePerQALY      float64                `json:"value_per_qaly"`
	TotalBenefit      float64                `json:"total_benefit"`
	NetBenefit        float64                `json:"net_benefit"`
	Rejected          []*model.OverrideError `json:"-"`
}

// Calculator computes policy costs and benefits.
type Calculator struct {
	rates Rates
	model model.BenefitModel
}

// NewCalculator creates a Calculator with the given rates and benefit model.
func NewCalculator(rates Rates, benefitModel model.BenefitModel) *Calculator {
	if benefitModel == "" {
		benefitModel = model.BenefitModelQALY
	}
	return &Calculator{rates: rates, model: benefitModel}
}

// BenefitModel returns the benefit model the calculator was built with.
func (c *Calculator) BenefitModel() model.BenefitModel {
	return c.model
}

// Defaults returns the configured cost parameters for a country.
func (c *Calculator) Defaults(country model.Country) (CountryCosts, error) {
	cc, ok := c.rates.Countries[country]
	if !ok {
		return CountryCosts{}, eris.Wrapf(model.ErrConfigurationUnavailable, "no cost parameters for country %q", country)
	}
	return cc, nil
}

// Multiplier returns the cost-of-living multiplier applied to costs.
func (c *Calculator) Multiplier(country model.Country, adjust bool) (float64, error) {
	if !adjust {
		return 1, nil
	}
	cc, err := c.Defaults(country)
	if err != nil {
		return 0, err
	}
	if cc.CostOfLiving <= 0 {
		return 0, eris.Wrapf(model.ErrConfigurationUnavailable, "no cost-of-living multiplier for country %q", country)
	}
	return cc.CostOfLiving, nil
}

// CostBenefit computes fixed, variable and total cost, total benefit and net
// benefit. Invalid overrides fall back to the configured default and are
// listed in Breakdown.Rejected.
func (c *Calculator) CostBenefit(in Input) (*Breakdown, error) {
	cc, err := c.Defaults(in.Country)
	if err != nil {
		return nil, err
	}
	m, err := c.Multiplier(in.Country, in.AdjustForCOL)
	if err != nil {
		return nil, err
	}

	b := &Breakdown{
		Currency:        model.ZoneFor(in.Country),
		Multiplier:      m,
		FixedComponents: make(map[Component]float64, len(FixedComponents)),
	}

	keys := make([]string, 0, len(in.Overrides))
	for key := range in.Overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !knownOverride(key) {
			b.Rejected = append(b.Rejected, &model.OverrideError{Component: key, Raw: in.Overrides[key], Reason: "unknown cost component"})
		}
	}

	var fixed float64
	for _, comp := range FixedComponents {
		def, ok := cc.Fixed[comp]
		if !ok {
			return nil, eris.Wrapf(model.ErrConfigurationUnavailable, "country %q has no %s cost", in.Country, comp)
		}
		v, rej := resolve(string(comp), in.Overrides, def)
		if rej != nil {
			b.Rejected = append(b.Rejected, rej)
		}
		b.FixedComponents[comp] = v
		fixed += v
	}

	variable, rej := resolve(VariablePerPerson, in.Overrides, cc.VariablePerPerson)
	if rej != nil {
		b.Rejected = append(b.Rejected, rej)
	}
	b.VariablePerPerson = variable

	b.FixedCost = fixed * m
	b.VariableCost = variable * float64(in.Participants) * m
	b.TotalCost = b.FixedCost + b.VariableCost

	if err := c.benefit(b, in); err != nil {
		return nil, err
	}
	b.NetBenefit = b.TotalBenefit - b.TotalCost
	return b, nil
}

func (c *Calculator) benefit(b *Breakdown, in Input) error {
	switch c.model {
	case model.BenefitModelFlat:
		per, ok := c.rates.BenefitPerParticipant[in.BenefitTier]
		if !ok {
			return eris.Wrapf(model.ErrConfigurationUnavailable, "no benefit per participant for tier %q", in.BenefitTier)
		}
		b.TotalBenefit = per * float64(in.Participants)
		return nil
	case model.BenefitModelQALY:
		value, ok := c.rates.ValuePerQALY[in.BenefitTier][b.Currency]
		if !ok {
			return eris.Wrapf(model.ErrConfigurationUnavailable, "no value per QALY for tier %q zone %s", in.BenefitTier, b.Currency)
		}
		if c.rates.QALYsPerLife <= 0 {
			return eris.Wrap(model.ErrConfigurationUnavailable, "qalys_per_life must be positive")
		}
		b.TotalLivesSaved = float64(in.LivesSavedPer100k) / 100000 * float64(in.Population)
		b.QALYsPerLife = c.rates.QALYsPerLife
		b.TotalQALYs = b.TotalLivesSaved * b.QALYsPerLife
		b.ValuePerQALY = value
		b.TotalBenefit = b.TotalQALYs * value
		return nil
	}
	return eris.Wrapf(model.ErrConfigurationUnavailable, "unknown benefit model %q", c.model)
}

func knownOverride(key string) bool {
	if key == VariablePerPerson {
		return true
	}
	for _, comp := range FixedComponents {
		if string(comp) == key {
			return true
		}
	}
	return false
}

// resolve returns the override for key when it parses as a finite,
// non-negative number, otherwise def.
func resolve(key string, overrides Overrides, def float64) (float64, *model.OverrideError) {
	raw, ok := overrides[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	switch {
	case err != nil:
		return def, &model.OverrideError{Component: key, Raw: raw, Reason: "not a number"}
	case math.IsNaN(v) || math.IsInf(v, 0):
		return def, &model.OverrideError{Component: key, Raw: raw, Reason: "not finite"}
	case v < 0:
		return def, &model.OverrideError{Component: key, Raw: raw, Reason: "negative"}
	}
	return v, nil
}
