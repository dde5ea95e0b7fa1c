package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/mandate-cli/internal/cost"
	"github.com/sells-group/mandate-cli/internal/model"
	"github.com/sells-group/mandate-cli/internal/scenario"
)

// selectionFlags are the policy attribute flags shared by calc, sweep and
// scenarios save.
type selectionFlags struct {
	preset    string
	country   string
	severity  string
	scope     string
	exemption string
	coverage  string
	lives     int
	benefit   string
	adjustCOL bool
	overrides map[string]string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.preset, "preset", "", "start from a named preset (current, expanded, relaxed)")
	fs.StringVar(&f.country, "country", string(model.CountryAustralia), "country whose cost table applies")
	fs.StringVar(&f.severity, "severity", string(model.SeverityPooled), "outbreak severity coefficients (pooled, mild, severe)")
	fs.StringVar(&f.scope, "scope", string(model.ScopeRestricted), "mandate scope (restricted, all)")
	fs.StringVar(&f.exemption, "exemption", string(model.ExemptionMedicalOnly), "exemptions allowed (medicalOnly, medRel, broad)")
	fs.StringVar(&f.coverage, "coverage", "50", "coverage threshold before lifting (50, 70, 90)")
	fs.IntVar(&f.lives, "lives", 25, "lives saved per 100k")
	fs.StringVar(&f.benefit, "benefit", string(model.BenefitMedium), "benefit valuation tier (low, medium, high)")
	fs.BoolVar(&f.adjustCOL, "adjust-col", false, "scale costs by the country's cost-of-living multiplier")
	fs.StringToStringVar(&f.overrides, "override", nil, "cost override as component=amount (repeatable)")
}

// resolve builds the selection: the preset (or the default selection) with
// every explicitly set flag applied on top.
func (f *selectionFlags) resolve(cmd *cobra.Command) (model.AttributeSelection, cost.Overrides, error) {
	sel := model.DefaultSelection()
	if f.preset != "" {
		p, err := scenario.LookupPreset(f.preset)
		if err != nil {
			return model.AttributeSelection{}, nil, err
		}
		sel = p.Selection
	}

	changed := cmd.Flags().Changed
	if changed("country") {
		sel.Country = model.Country(f.country)
	}
	if changed("severity") {
		sel.Severity = model.Severity(f.severity)
	}
	if changed("scope") {
		sel.Scope = model.Scope(f.scope)
	}
	if changed("exemption") {
		sel.Exemption = model.Exemption(f.exemption)
	}
	if changed("coverage") {
		c, err := model.ParseCoverage(f.coverage)
		if err != nil {
			return model.AttributeSelection{}, nil, err
		}
		sel.Coverage = c
	}
	if changed("lives") {
		sel.LivesSavedPer100k = f.lives
	}
	if changed("benefit") {
		sel.BenefitTier = model.BenefitTier(f.benefit)
	}
	if changed("adjust-col") {
		sel.AdjustForCostOfLiving = f.adjustCOL
	}
	return sel, cost.ParseOverrides(f.overrides), nil
}
