package model

// SelectionPatch is a partial AttributeSelection decoded from a request
// body or batch file. Nil fields were not supplied, so an explicit zero or
// false still replaces the value it is applied to.
type SelectionPatch struct {
	Scope                 *Scope       `json:"scope,omitempty" yaml:"scope,omitempty"`
	Exemption             *Exemption   `json:"exemption,omitempty" yaml:"exemption,omitempty"`
	Coverage              *Coverage    `json:"coverage,omitempty" yaml:"coverage,omitempty"`
	LivesSavedPer100k     *int         `json:"lives_saved_per_100k,omitempty" yaml:"lives_saved_per_100k,omitempty"`
	Severity              *Severity    `json:"severity,omitempty" yaml:"severity,omitempty"`
	Country               *Country     `json:"country,omitempty" yaml:"country,omitempty"`
	AdjustForCostOfLiving *bool        `json:"adjust_for_cost_of_living,omitempty" yaml:"adjust_for_cost_of_living,omitempty"`
	BenefitTier           *BenefitTier `json:"benefit_tier,omitempty" yaml:"benefit_tier,omitempty"`
}

// IsEmpty reports whether no attribute was supplied.
func (p SelectionPatch) IsEmpty() bool {
	return p == SelectionPatch{}
}

// Apply returns base with every supplied attribute replaced.
func (p SelectionPatch) Apply(base AttributeSelection) AttributeSelection {
	if p.Scope != nil {
		base.Scope = *p.Scope
	}
	if p.Exemption != nil {
		base.Exemption = *p.Exemption
	}
	if p.Coverage != nil {
		base.Coverage = *p.Coverage
	}
	if p.LivesSavedPer100k != nil {
		base.LivesSavedPer100k = *p.LivesSavedPer100k
	}
	if p.Severity != nil {
		base.Severity = *p.Severity
	}
	if p.Country != nil {
		base.Country = *p.Country
	}
	if p.AdjustForCostOfLiving != nil {
		base.AdjustForCostOfLiving = *p.AdjustForCostOfLiving
	}
	if p.BenefitTier != nil {
		base.BenefitTier = *p.BenefitTier
	}
	return base
}
