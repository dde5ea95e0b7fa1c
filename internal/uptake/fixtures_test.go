package uptake

// testTable mirrors the coefficients shipped in the default parameters.
func testTable() Table {
	return Table{
		Pooled: CoefficientSet{
			Baseline:                  1.067346,
			ScopeAll:                  -0.094717,
			ExemptionMedicalReligious: -0.052939,
			ExemptionBroad:            -0.1479027,
			CoverageModerate:          0.0929465,
			CoverageHigh:              0.0920977,
			LivesSaved:                0.0445604,
		},
		Mild: CoefficientSet{
			Baseline:                  0.9855033,
			ScopeAll:                  -0.1689361,
			ExemptionMedicalReligious: -0.0376554,
			ExemptionBroad:            -0.1753159,
			CoverageModerate:          0.1245323,
			CoverageHigh:              0.0662936,
			LivesSaved:                0.0412682,
		},
		Severe: CoefficientSet{
			Baseline:                  1.154312,
			ScopeAll:                  -0.0204815,
			ExemptionMedicalReligious: -0.0681409,
			ExemptionBroad:            -0.1219056,
			CoverageModerate:          0.0610344,
			CoverageHigh:              0.116988,
			LivesSaved:                0.0480637,
		},
	}
}
