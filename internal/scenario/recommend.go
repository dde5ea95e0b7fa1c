package scenario

// UptakeBand classifies predicted uptake.
type UptakeBand string

const (
	BandLow      UptakeBand = "low"
	BandModerate UptakeBand = "moderate"
	BandHigh     UptakeBand = "high"
)

// Recommendation is the advisory attached to an uptake prediction.
type Recommendation struct {
	Band         UptakeBand `json:"band"`
	Advice       string     `json:"advice"`
	Participants int        `json:"participants"`
	Population   int        `json:"population"`
}

// Recommend maps an uptake percentage to an advisory: below 40 is low, below
// 60 moderate, anything else high.
func Recommend(percentage float64, participants, population int) Recommendation {
	r := Recommendation{Participants: participants, Population: population}
	switch {
	case percentage < 40:
		r.Band = BandLow
		r.Advice = "Consider stronger communication strategies, increase incentives, and review exemption criteria to boost acceptance."
	case percentage < 60:
		r.Band = BandModerate
		r.Advice = "Fine-tune coverage thresholds, consider modest incentives, and monitor compliance closely."
	default:
		r.Band = BandHigh
		r.Advice = "Current policy appears effective. Maintain efforts, but continue monitoring for potential adjustments."
	}
	return r
}
