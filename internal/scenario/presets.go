package scenario

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/sells-group/mandate-cli/internal/model"
)

// Preset is a named, ready-made selection.
type Preset struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Selection   model.AttributeSelection `json:"selection"`
}

var presets = map[string]Preset{
	"current": {
		Name:        "current",
		Description: "Current policy: high-risk occupations, medical exemptions only, 50% coverage",
		Selection:   model.DefaultSelection(),
	},
	"expanded": {
		Name:        "expanded",
		Description: "Expanded mandate in France under a severe outbreak",
		Selection: model.AttributeSelection{
			Scope:                 model.ScopeAll,
			Exemption:             model.ExemptionMedicalReligious,
			Coverage:              model.Coverage70,
			LivesSavedPer100k:     30,
			Severity:              model.SeveritySevere,
			Country:               model.CountryFrance,
			AdjustForCostOfLiving: true,
			BenefitTier:           model.BenefitHigh,
		},
	},
	"relaxed": {
		Name:        "relaxed",
		Description: "Relaxed exemptions in Italy under a mild outbreak",
		Selection: model.AttributeSelection{
			Scope:             model.ScopeRestricted,
			Exemption:         model.ExemptionBroad,
			Coverage:          model.Coverage90,
			LivesSavedPer100k: 20,
			Severity:          model.SeverityMild,
			Country:           model.CountryItaly,
			BenefitTier:       model.BenefitLow,
		},
	},
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, eris.Wrapf(model.ErrInvalidSelection, "unknown preset %q", name)
	}
	return p, nil
}

// Presets returns all presets sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
