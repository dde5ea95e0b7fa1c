package scenario

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/mandate-cli/internal/cost"
	"github.com/sells-group/mandate-cli/internal/model"
)

// SweepRange is an inclusive range of lives-saved values.
type SweepRange struct {
	From int `json:"from"`
	To   int `json:"to"`
	Step int `json:"step"`
}

// DefaultSweep covers the slider range 10..40 in steps of 5.
var DefaultSweep = SweepRange{From: 10, To: 40, Step: 5}

// SweepPoint is the net benefit at one lives-saved value.
type SweepPoint struct {
	LivesSavedPer100k int     `json:"lives_saved_per_100k"`
	UptakePercentage  float64 `json:"uptake_percentage"`
	NetBenefit        float64 `json:"net_benefit"`
}

const maxSweepPoints = 1000

// Sweep recomputes the scenario for every lives-saved value in r, holding the
// rest of the selection fixed.
func (e *Engine) Sweep(sel model.AttributeSelection, overrides cost.Overrides, r SweepRange) ([]SweepPoint, error) {
	if r.Step <= 0 {
		return nil, eris.Wrapf(model.ErrInvalidSelection, "sweep step must be positive, got %d", r.Step)
	}
	if r.To < r.From {
		return nil, eris.Wrapf(model.ErrInvalidSelection, "sweep range %d..%d is empty", r.From, r.To)
	}
	// The span is taken in uint64 so ranges near the int limits cannot wrap.
	span := uint64(r.To) - uint64(r.From)
	if span/uint64(r.Step) >= maxSweepPoints {
		return nil, eris.Wrapf(model.ErrInvalidSelection, "sweep exceeds %d points", maxSweepPoints)
	}
	n := int(span/uint64(r.Step)) + 1

	points := make([]SweepPoint, 0, n)
	for i := range n {
		lives := r.From + i*r.Step
		sel.LivesSavedPer100k = lives
		s, err := e.Build(sel, overrides)
		if err != nil {
			return nil, eris.Wrapf(err, "sweep at %d lives", lives)
		}
		points = append(points, SweepPoint{
			LivesSavedPer100k: lives,
			UptakePercentage:  s.UptakePercentage,
			NetBenefit:        s.NetBenefit,
		})
	}
	return points, nil
}
