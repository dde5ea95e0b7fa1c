package cost

import "github.com/sells-group/mandate-cli/internal/model"

// testRates mirrors the cost and benefit figures shipped in the default
// parameters.
func testRates() Rates {
	return Rates{
		Countries: map[model.Country]CountryCosts{
			model.CountryAustralia: {
				Fixed: map[Component]float64{
					VaccineProcurement: 80000, Administration: 20000, Legal: 10000,
					Communication: 15000, Monitoring: 12000,
				},
				VariablePerPerson: 25,
				CostOfLiving:      1,
			},
			model.CountryFrance: {
				Fixed: map[Component]float64{
					VaccineProcurement: 75000, Administration: 18000, Legal: 9000,
					Communication: 14000, Monitoring: 11000,
				},
				VariablePerPerson: 22,
				CostOfLiving:      0.95,
			},
			model.CountryItaly: {
				Fixed: map[Component]float64{
					VaccineProcurement: 70000, Administration: 17000, Legal: 8500,
					Communication: 13000, Monitoring: 10500,
				},
				VariablePerPerson: 20,
				CostOfLiving:      0.9,
			},
		},
		ValuePerQALY: map[model.BenefitTier]map[model.CurrencyZone]float64{
			model.BenefitLow:    {model.ZoneAUS: 40000, model.ZoneEUR: 35000},
			model.BenefitMedium: {model.ZoneAUS: 50000, model.ZoneEUR: 45000},
			model.BenefitHigh:   {model.ZoneAUS: 60000, model.ZoneEUR: 55000},
		},
		QALYsPerLife: 10,
	}
}
