package model

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Severity selects the coefficient tier used by the uptake model.
type Severity string

const (
	SeverityPooled Severity = "pooled"
	SeveritySevere Severity = "severe"
	SeverityMild   Severity = "mild"
)

// ParseSeverity maps free text onto a Severity. Empty or unrecognized input
// resolves to SeverityPooled; the lookup never fails.
func ParseSeverity(s string) Severity {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityMild:
		return SeverityMild
	case SeveritySevere:
		return SeveritySevere
	default:
		return SeverityPooled
	}
}

// Text returns the title-cased severity label ("Pooled", "Mild", "Severe").
func (s Severity) Text() string {
	return cases.Title(language.English).String(string(ParseSeverity(string(s))))
}

// Scope is the mandate scope attribute.
type Scope string

const (
	ScopeRestricted Scope = "restricted" // reference level
	ScopeAll        Scope = "all"
)

// ParseScope accepts canonical names and the empty string (reference level).
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "restricted", "high-risk":
		return ScopeRestricted, nil
	case "all":
		return ScopeAll, nil
	}
	return "", eris.Wrapf(ErrInvalidSelection, "unknown scope %q", s)
}

// Text returns the human-readable scope description.
func (s Scope) Text() string {
	if s == ScopeAll {
		return "All occupations & public spaces"
	}
	return "High-risk occupations only"
}

// Exemption is the exemption regime attribute.
type Exemption string

const (
	ExemptionMedicalOnly      Exemption = "medicalOnly" // reference level
	ExemptionMedicalReligious Exemption = "medicalReligious"
	ExemptionBroad            Exemption = "broad"
)

// ParseExemption accepts canonical names plus the web form's short codes
// ("medRel", "all").
func ParseExemption(s string) (Exemption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "medicalonly", "medical", "med":
		return ExemptionMedicalOnly, nil
	case "medicalreligious", "medrel":
		return ExemptionMedicalReligious, nil
	case "broad", "all":
		return ExemptionBroad, nil
	}
	return "", eris.Wrapf(ErrInvalidSelection, "unknown exemption %q", s)
}

// Text returns the human-readable exemption description.
func (e Exemption) Text() string {
	switch e {
	case ExemptionMedicalReligious:
		return "Medical + religious"
	case ExemptionBroad:
		return "Medical + religious + personal beliefs"
	default:
		return "Medical only"
	}
}

// Coverage is the vaccination-coverage threshold in percent.
type Coverage int

const (
	Coverage50 Coverage = 50 // reference level
	Coverage70 Coverage = 70
	Coverage90 Coverage = 90
)

// ParseCoverage accepts "50", "70%", "90" and the empty string.
func ParseCoverage(s string) (Coverage, error) {
	t := strings.TrimSuffix(strings.TrimSpace(s), "%")
	if t == "" {
		return Coverage50, nil
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, eris.Wrapf(ErrInvalidSelection, "unknown coverage %q", s)
	}
	c := Coverage(n)
	if !c.Valid() {
		return 0, eris.Wrapf(ErrInvalidSelection, "unknown coverage %q", s)
	}
	return c, nil
}

// Valid reports whether c is one of the three modelled thresholds.
func (c Coverage) Valid() bool {
	return c == Coverage50 || c == Coverage70 || c == Coverage90
}

// Text returns e.g. "70% vaccinated".
func (c Coverage) Text() string {
	if !c.Valid() {
		c = Coverage50
	}
	return strconv.Itoa(int(c)) + "% vaccinated"
}

// BenefitTier selects the benefit valuation row.
type BenefitTier string

const (
	BenefitLow    BenefitTier = "low"
	BenefitMedium BenefitTier = "medium"
	BenefitHigh   BenefitTier = "high"
)

// ParseBenefitTier accepts low/medium/high; empty means medium.
func ParseBenefitTier(s string) (BenefitTier, error) {
	switch BenefitTier(strings.ToLower(strings.TrimSpace(s))) {
	case "", BenefitMedium:
		return BenefitMedium, nil
	case BenefitLow:
		return BenefitLow, nil
	case BenefitHigh:
		return BenefitHigh, nil
	}
	return "", eris.Wrapf(ErrInvalidSelection, "unknown benefit tier %q", s)
}

// Country names a jurisdiction with configured cost parameters. The set of
// valid countries is defined by the loaded parameters, not by this package.
type Country string

const (
	CountryAustralia Country = "Australia"
	CountryFrance    Country = "France"
	CountryItaly     Country = "Italy"
)
