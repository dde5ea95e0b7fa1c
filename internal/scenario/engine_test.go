package scenario

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/mandate-cli/internal/cost"
	"github.com/sells-group/mandate-cli/internal/model"
	"github.com/sells-group/mandate-cli/internal/params"
	"github.com/sells-group/mandate-cli/internal/uptake"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	p, err := params.Default()
	require.NoError(t, err)
	e, err := NewEngine(p)
	require.NoError(t, err)
	return e
}

func TestBuild_WorkedExample(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	sel := model.DefaultSelection()
	sel.Scope = model.ScopeAll
	sel.Coverage = model.Coverage90
	sel.LivesSavedPer100k = 25

	s, err := e.Build(sel, nil)
	require.NoError(t, err)

	assert.InDelta(t, 2.1790557, s.Utility, 1e-9)
	assert.Equal(t, 89.8, s.UptakePercentage)
	assert.Equal(t, 289, s.Participants)
	assert.Equal(t, 322, s.Population)
	assert.Equal(t, "Pooled", s.SeverityText)
	assert.Equal(t, "All occupations & public spaces", s.ScopeText)
	assert.Equal(t, "Medical only", s.ExemptionText)
	assert.Equal(t, "90% vaccinated", s.CoverageText)
	assert.Equal(t, model.ZoneAUS, s.Currency)
	assert.Equal(t, "AUD", s.CurrencyCode)
	assert.Equal(t, model.BenefitModelQALY, s.BenefitModel)

	assert.InDelta(t, 137000, s.FixedCost, 1e-9)
	assert.InDelta(t, 25*289, s.VariableCost, 1e-9)
	assert.InDelta(t, 40250, s.TotalBenefit, 1e-6)
	assert.Equal(t, s.TotalBenefit-s.TotalCost, s.NetBenefit)
	assert.Less(t, s.NetBenefit, 0.0)
	assert.Empty(t, s.Notices)
}

func TestBuild_SeverityFallsBackToPooled(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	sel := model.DefaultSelection()
	sel.Severity = ""
	a, err := e.Build(sel, nil)
	require.NoError(t, err)

	sel.Severity = "catastrophic"
	b, err := e.Build(sel, nil)
	require.NoError(t, err)

	sel.Severity = model.SeverityPooled
	c, err := e.Build(sel, nil)
	require.NoError(t, err)

	assert.Equal(t, c.UptakeProbability, a.UptakeProbability)
	assert.Equal(t, c.UptakeProbability, b.UptakeProbability)
	assert.Equal(t, model.SeverityPooled, b.Selection.Severity)
}

func TestBuild_AcceptsShortCodes(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	sel := model.AttributeSelection{
		Exemption:         "medRel",
		Coverage:          70,
		LivesSavedPer100k: 30,
		Country:           model.CountryFrance,
	}
	s, err := e.Build(sel, nil)
	require.NoError(t, err)

	assert.Equal(t, model.ExemptionMedicalReligious, s.Selection.Exemption)
	assert.Equal(t, model.ScopeRestricted, s.Selection.Scope)
	assert.Equal(t, model.BenefitMedium, s.Selection.BenefitTier)
	assert.Equal(t, "Medical + religious", s.ExemptionText)
	assert.Equal(t, model.ZoneEUR, s.Currency)
}

func TestBuild_InvalidSelection(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	tests := []struct {
		name string
		sel  model.AttributeSelection
	}{
		{"scope", model.AttributeSelection{Scope: "everyone"}},
		{"exemption", model.AttributeSelection{Exemption: "none"}},
		{"coverage", model.AttributeSelection{Coverage: 60}},
		{"tier", model.AttributeSelection{BenefitTier: "astronomical"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Build(tt.sel, nil)
			assert.ErrorIs(t, err, model.ErrInvalidSelection)
		})
	}
}

func TestBuild_UnknownCountryFailsWithoutPartialScenario(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	sel := model.DefaultSelection()
	sel.Country = "Narnia"
	s, err := e.Build(sel, nil)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, model.ErrConfigurationUnavailable)
}

func TestBuild_OverridesAndNotices(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	s, err := e.Build(model.DefaultSelection(), cost.Overrides{
		string(cost.VaccineProcurement): "10000",
		string(cost.Legal):              "lots",
	})
	require.NoError(t, err)

	assert.InDelta(t, 67000, s.FixedCost, 1e-9)
	require.Len(t, s.Notices, 1)
	assert.Equal(t, "invalid_override", s.Notices[0].Code)
	assert.Equal(t, "legal", s.Notices[0].Component)
	assert.Contains(t, s.Notices[0].Message, "invalid override")
}

func TestBuild_CostOfLivingAdjustment(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	sel := model.DefaultSelection()
	sel.Country = model.CountryItaly
	base, err := e.Build(sel, nil)
	require.NoError(t, err)

	sel.AdjustForCostOfLiving = true
	adj, err := e.Build(sel, nil)
	require.NoError(t, err)

	assert.InDelta(t, base.FixedCost*0.9, adj.FixedCost, 1e-9)
	assert.InDelta(t, base.VariableCost*0.9, adj.VariableCost, 1e-9)
	assert.Equal(t, base.TotalBenefit, adj.TotalBenefit)
	assert.Equal(t, base.Participants, adj.Participants)
}

func TestWTSL_ChangesWithSeverity(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	pooled, err := e.WTSL(model.SeverityPooled)
	require.NoError(t, err)
	mild, err := e.WTSL(model.SeverityMild)
	require.NoError(t, err)

	assert.NotEqual(t,
		uptake.WTSLMap(pooled)[uptake.TradeOffScopeAll].Ratio,
		uptake.WTSLMap(mild)[uptake.TradeOffScopeAll].Ratio,
	)
}

func TestNewEngine_RequiresParameters(t *testing.T) {
	t.Parallel()
	_, err := NewEngine(nil)
	assert.ErrorIs(t, err, model.ErrConfigurationUnavailable)

	p, err := params.Default()
	require.NoError(t, err)
	p.Population = -1
	_, err = NewEngine(p)
	assert.ErrorIs(t, err, model.ErrConfigurationUnavailable)
}

func TestSweep_DefaultRange(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	points, err := e.Sweep(model.DefaultSelection(), nil, DefaultSweep)
	require.NoError(t, err)
	require.Len(t, points, 7)

	assert.Equal(t, 10, points[0].LivesSavedPer100k)
	assert.Equal(t, 40, points[6].LivesSavedPer100k)
	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i].UptakePercentage, points[i-1].UptakePercentage)
	}
}

func TestSweep_InvalidRange(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	_, err := e.Sweep(model.DefaultSelection(), nil, SweepRange{From: 10, To: 40, Step: 0})
	assert.ErrorIs(t, err, model.ErrInvalidSelection)
	_, err = e.Sweep(model.DefaultSelection(), nil, SweepRange{From: 40, To: 10, Step: 5})
	assert.ErrorIs(t, err, model.ErrInvalidSelection)
	_, err = e.Sweep(model.DefaultSelection(), nil, SweepRange{From: 0, To: 1_000_000, Step: 1})
	assert.ErrorIs(t, err, model.ErrInvalidSelection)
}

func TestSweep_RangeNearIntLimits(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	points, err := e.Sweep(model.DefaultSelection(), nil, SweepRange{From: math.MaxInt - 1, To: math.MaxInt, Step: 5})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, math.MaxInt-1, points[0].LivesSavedPer100k)

	_, err = e.Sweep(model.DefaultSelection(), nil, SweepRange{From: math.MinInt, To: math.MaxInt, Step: 1})
	assert.ErrorIs(t, err, model.ErrInvalidSelection)
}

func ptr[T any](v T) *T { return &v }

func TestRequestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  Request
		want func(t *testing.T, sel model.AttributeSelection)
	}{
		{
			name: "preset only",
			req:  Request{Preset: "expanded"},
			want: func(t *testing.T, sel model.AttributeSelection) {
				assert.Equal(t, 30, sel.LivesSavedPer100k)
				assert.True(t, sel.AdjustForCostOfLiving)
			},
		},
		{
			name: "explicit zero and false replace preset",
			req: Request{Preset: "expanded", Selection: model.SelectionPatch{
				LivesSavedPer100k:     ptr(0),
				AdjustForCostOfLiving: ptr(false),
				Country:               ptr(model.CountryFrance),
			}},
			want: func(t *testing.T, sel model.AttributeSelection) {
				assert.Equal(t, 0, sel.LivesSavedPer100k)
				assert.False(t, sel.AdjustForCostOfLiving)
				assert.Equal(t, model.CountryFrance, sel.Country)
				assert.Equal(t, model.SeveritySevere, sel.Severity)
			},
		},
		{
			name: "no preset starts from zero value",
			req:  Request{Selection: model.SelectionPatch{Coverage: ptr(model.Coverage90)}},
			want: func(t *testing.T, sel model.AttributeSelection) {
				assert.Equal(t, model.Coverage90, sel.Coverage)
				assert.Equal(t, 0, sel.LivesSavedPer100k)
				assert.Equal(t, model.Country(""), sel.Country)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := tt.req.Resolve()
			require.NoError(t, err)
			tt.want(t, sel)
		})
	}
}

func TestBuild_ExplicitFalseDropsCostOfLiving(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	withCOL, err := Request{Preset: "expanded"}.Resolve()
	require.NoError(t, err)
	withoutCOL, err := Request{Preset: "expanded", Selection: model.SelectionPatch{AdjustForCostOfLiving: ptr(false)}}.Resolve()
	require.NoError(t, err)

	a, err := e.Build(withCOL, nil)
	require.NoError(t, err)
	b, err := e.Build(withoutCOL, nil)
	require.NoError(t, err)
	assert.InDelta(t, b.FixedCost*0.95, a.FixedCost, 1e-6)
}

func TestBuildAll_PreservesOrderAndRecordsFailures(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	reqs := []Request{
		{Label: "a", Preset: "current"},
		{Label: "b", Selection: model.SelectionPatch{Country: ptr(model.Country("Atlantis"))}},
		{Label: "c", Preset: "expanded", Selection: model.SelectionPatch{LivesSavedPer100k: ptr(35)}},
		{Label: "d", Preset: "missing"},
	}
	out, err := e.BuildAll(context.Background(), reqs, 2)
	require.NoError(t, err)
	require.Len(t, out, 4)

	assert.Equal(t, "a", out[0].Label)
	require.NotNil(t, out[0].Scenario)
	assert.Equal(t, model.CountryAustralia, out[0].Scenario.Selection.Country)

	assert.Nil(t, out[1].Scenario)
	assert.ErrorIs(t, out[1].Err, model.ErrConfigurationUnavailable)
	assert.NotEmpty(t, out[1].Error)

	require.NotNil(t, out[2].Scenario)
	assert.Equal(t, 35, out[2].Scenario.Selection.LivesSavedPer100k)
	assert.Equal(t, model.CountryFrance, out[2].Scenario.Selection.Country)
	assert.True(t, out[2].Scenario.Selection.AdjustForCostOfLiving)

	assert.ErrorIs(t, out[3].Err, model.ErrInvalidSelection)
}

func TestBuildAll_Cancelled(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.BuildAll(ctx, []Request{{Preset: "current"}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
