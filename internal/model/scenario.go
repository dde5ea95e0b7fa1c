package model

import (
	"strconv"
	"time"
)

// BenefitModel selects how total benefit is valued.
type BenefitModel string

const (
	// BenefitModelQALY values lives saved through QALYs per life and a value
	// per QALY for the country's currency zone.
	BenefitModelQALY BenefitModel = "qaly"
	// BenefitModelFlat values each participant at a flat amount per tier.
	BenefitModelFlat BenefitModel = "flat"
)

// Notice is a non-fatal problem reported alongside a computed scenario.
type Notice struct {
	Code      string `json:"code"`
	Component string `json:"component,omitempty"`
	Message   string `json:"message"`
}

// Scenario is the immutable result of one engine computation.
type Scenario struct {
	Selection AttributeSelection `json:"selection"`

	SeverityText  string `json:"severity_text"`
	ScopeText     string `json:"scope_text"`
	ExemptionText string `json:"exemption_text"`
	CoverageText  string `json:"coverage_text"`

	Utility           float64 `json:"utility"`
	UptakeProbability float64 `json:"uptake_probability"`
	UptakePercentage  float64 `json:"uptake_percentage"` // rounded to 1 dp
	Participants      int     `json:"participants"`
	Population        int     `json:"population"`

	Currency     CurrencyZone `json:"currency"`
	CurrencyCode string       `json:"currency_code"` // ISO 4217
	FixedCost    float64      `json:"fixed_cost"`
	VariableCost float64      `json:"variable_cost"`
	TotalCost    float64      `json:"total_cost"`

	BenefitModel    BenefitModel `json:"benefit_model"`
	TotalLivesSaved float64      `json:"total_lives_saved,omitempty"`
	QALYsPerLife    float64      `json:"qalys_per_life,omitempty"`
	TotalQALYs      float64      `json:"total_qalys,omitempty"`
	ValuePerQALY    float64      `json:"value_per_qaly,omitempty"`
	TotalBenefit    float64      `json:"total_benefit"`
	NetBenefit      float64      `json:"net_benefit"`

	Notices []Notice `json:"notices,omitempty"`
}

// StoredScenario is a Scenario appended to a store under a display name.
type StoredScenario struct {
	Scenario
	ID      string    `json:"id"`
	Seq     int       `json:"seq"`
	Name    string    `json:"name"`
	SavedAt time.Time `json:"saved_at"`
}

// ScenarioName returns the display name for the n-th saved scenario.
func ScenarioName(n int) string {
	return "Scenario " + strconv.Itoa(n)
}

// ComparisonRow is the per-scenario row handed to tabular, document and
// delimited-text exporters.
type ComparisonRow struct {
	Name       string `json:"name"`
	Severity   string `json:"severity"`
	Scope      string `json:"scope"`
	Exemption  string `json:"exemption"`
	Coverage   string `json:"coverage"`
	Lives      int    `json:"lives"`
	Uptake     string `json:"uptake"`
	NetBenefit string `json:"net_benefit"`
}

// Row renders the stored scenario as a comparison row.
func (s StoredScenario) Row() ComparisonRow {
	return ComparisonRow{
		Name:       s.Name,
		Severity:   string(s.Selection.Severity),
		Scope:      s.ScopeText,
		Exemption:  s.ExemptionText,
		Coverage:   s.CoverageText,
		Lives:      s.Selection.LivesSavedPer100k,
		Uptake:     strconv.FormatFloat(s.UptakePercentage, 'f', 1, 64),
		NetBenefit: FormatMoney(s.Currency, s.NetBenefit),
	}
}

// Strings returns the row cells in column order.
func (r ComparisonRow) Strings() []string {
	return []string{r.Name, r.Severity, r.Scope, r.Exemption, r.Coverage, strconv.Itoa(r.Lives), r.Uptake, r.NetBenefit}
}

// ComparisonHeader is the column header matching ComparisonRow.Strings.
var ComparisonHeader = []string{"Name", "Severity", "Scope", "Exemption", "Coverage", "Lives", "Uptake%", "NetBenefit"}
