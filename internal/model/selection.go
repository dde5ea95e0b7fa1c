package model

import "github.com/rotisserie/eris"

// AttributeSelection is the caller's policy choice. It is built once by the
// UI or CLI layer and passed by value into the engine.
type AttributeSelection struct {
	Scope                 Scope       `json:"scope" yaml:"scope"`
	Exemption             Exemption   `json:"exemption" yaml:"exemption"`
	Coverage              Coverage    `json:"coverage" yaml:"coverage"`
	LivesSavedPer100k     int         `json:"lives_saved_per_100k" yaml:"lives_saved_per_100k"`
	Severity              Severity    `json:"severity,omitempty" yaml:"severity,omitempty"`
	Country               Country     `json:"country" yaml:"country"`
	AdjustForCostOfLiving bool        `json:"adjust_for_cost_of_living" yaml:"adjust_for_cost_of_living"`
	BenefitTier           BenefitTier `json:"benefit_tier" yaml:"benefit_tier"`
}

// Normalize returns a copy with canonical enum values. Empty attributes
// become their reference level and severity resolves through ParseSeverity.
// An error wrapping ErrInvalidSelection is returned for values outside a
// domain.
func (a AttributeSelection) Normalize() (AttributeSelection, error) {
	var err error
	out := a
	if out.Scope, err = ParseScope(string(a.Scope)); err != nil {
		return AttributeSelection{}, err
	}
	if out.Exemption, err = ParseExemption(string(a.Exemption)); err != nil {
		return AttributeSelection{}, err
	}
	if a.Coverage == 0 {
		out.Coverage = Coverage50
	} else if !a.Coverage.Valid() {
		return AttributeSelection{}, eris.Wrapf(ErrInvalidSelection, "unknown coverage %d", a.Coverage)
	}
	if out.BenefitTier, err = ParseBenefitTier(string(a.BenefitTier)); err != nil {
		return AttributeSelection{}, err
	}
	out.Severity = ParseSeverity(string(a.Severity))
	if out.Country == "" {
		out.Country = CountryAustralia
	}
	return out, nil
}

// DefaultSelection is the form state after a reset: Australia, pooled
// coefficients, reference levels, 25 lives saved, medium benefit.
func DefaultSelection() AttributeSelection {
	return AttributeSelection{
		Scope:             ScopeRestricted,
		Exemption:         ExemptionMedicalOnly,
		Coverage:          Coverage50,
		LivesSavedPer100k: 25,
		Severity:          SeverityPooled,
		Country:           CountryAustralia,
		BenefitTier:       BenefitMedium,
	}
}
