package uptake

import (
	"strconv"

	"github.com/rotisserie/eris"
)

// TradeOff names a move away from a reference attribute level.
type TradeOff string

const (
	TradeOffCoverage70      TradeOff = "coverage_70"
	TradeOffCoverage90      TradeOff = "coverage_90"
	TradeOffScopeAll        TradeOff = "scope_all"
	TradeOffExemptionMedRel TradeOff = "exemption_medical_religious"
	TradeOffExemptionBroad  TradeOff = "exemption_broad"
)

// TradeOffs lists every trade-off in display order.
var TradeOffs = []TradeOff{
	TradeOffCoverage70,
	TradeOffCoverage90,
	TradeOffScopeAll,
	TradeOffExemptionMedRel,
	TradeOffExemptionBroad,
}

var tradeOffLabels = map[TradeOff]string{
	TradeOffCoverage70:      "Δ50→70% Coverage",
	TradeOffCoverage90:      "Δ50→90% Coverage",
	TradeOffScopeAll:        "Expand to All Occupations",
	TradeOffExemptionMedRel: "Add Med+Rel Exemption",
	TradeOffExemptionBroad:  "Add Broad Exemption",
}

// Label returns the chart label for t.
func (t TradeOff) Label() string {
	return tradeOffLabels[t]
}

func (t TradeOff) weight(c CoefficientSet) float64 {
	switch t {
	case TradeOffCoverage70:
		return c.CoverageModerate
	case TradeOffCoverage90:
		return c.CoverageHigh
	case TradeOffScopeAll:
		return c.ScopeAll
	case TradeOffExemptionMedRel:
		return c.ExemptionMedicalReligious
	case TradeOffExemptionBroad:
		return c.ExemptionBroad
	}
	return 0
}

// WTSL is the willingness-to-save-lives value for one trade-off.
type WTSL struct {
	TradeOff TradeOff `json:"trade_off"`
	Label    string   `json:"label"`
	// Ratio is exactly -weight/livesSaved.
	Ratio float64 `json:"ratio"`
	// LivesRequired is the number of extra lives per 100k needed for
	// indifference; zero when the change is preferred outright.
	LivesRequired      float64 `json:"lives_required"`
	NoExtraLivesNeeded bool    `json:"no_extra_lives_needed"`
}

// Text renders the value for display.
func (w WTSL) Text() string {
	if w.NoExtraLivesNeeded {
		return "no extra lives needed"
	}
	return strconv.FormatFloat(w.LivesRequired, 'f', 2, 64) + " lives/100k"
}

// ComputeWTSL derives the trade-off values from a coefficient set, in
// TradeOffs order.
func ComputeWTSL(c CoefficientSet) ([]WTSL, error) {
	if err := c.Validate(); err != nil {
		return nil, eris.Wrap(err, "wtsl")
	}

	out := make([]WTSL, 0, len(TradeOffs))
	for _, t := range TradeOffs {
		ratio := -t.weight(c) / c.LivesSaved
		if ratio == 0 {
			ratio = 0 // drop negative zero
		}
		w := WTSL{TradeOff: t, Label: t.Label(), Ratio: ratio}
		if ratio > 0 {
			w.LivesRequired = ratio
		} else {
			w.NoExtraLivesNeeded = true
		}
		out = append(out, w)
	}
	return out, nil
}

// WTSLMap indexes ComputeWTSL output by trade-off.
func WTSLMap(values []WTSL) map[TradeOff]WTSL {
	m := make(map[TradeOff]WTSL, len(values))
	for _, v := range values {
		m[v.TradeOff] = v
	}
	return m
}
