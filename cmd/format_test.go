package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/mandate-cli/internal/model"
	"github.com/sells-group/mandate-cli/internal/params"
	"github.com/sells-group/mandate-cli/internal/scenario"
)

func buildScenario(t *testing.T, sel model.AttributeSelection) *model.Scenario {
	t.Helper()
	p, err := params.Default()
	require.NoError(t, err)
	e, err := scenario.NewEngine(p)
	require.NoError(t, err)
	s, err := e.Build(sel, map[string]string{"legal": "lots"})
	require.NoError(t, err)
	return s
}

func TestFormatScenario(t *testing.T) {
	sel := model.DefaultSelection()
	sel.Scope = model.ScopeAll
	sel.Coverage = model.Coverage90
	s := buildScenario(t, sel)

	var buf bytes.Buffer
	formatScenario(&buf, s, scenario.Recommend(s.UptakePercentage, s.Participants, s.Population))

	out := buf.String()
	assert.Contains(t, out, "All occupations & public spaces")
	assert.Contains(t, out, "89.8% (289 of 322)")
	assert.Contains(t, out, "A$137,000.00")
	assert.Contains(t, out, "[high]")
	assert.Contains(t, out, "note: invalid override")
}

func TestFormatScenario_CostOfLiving(t *testing.T) {
	sel := model.DefaultSelection()
	sel.Country = model.CountryFrance
	sel.AdjustForCostOfLiving = true
	s := buildScenario(t, sel)

	var buf bytes.Buffer
	formatScenario(&buf, s, scenario.Recommend(s.UptakePercentage, s.Participants, s.Population))
	assert.Contains(t, buf.String(), "France (cost of living adjusted)")
	assert.Contains(t, buf.String(), "€")
}

func TestFormatComparison(t *testing.T) {
	rows := []model.ComparisonRow{
		{Name: "Scenario 1", Severity: "pooled", Scope: "High-risk occupations only", Exemption: "Medical only", Coverage: "50% vaccinated", Lives: 25, Uptake: "61.3", NetBenefit: "A$-1234.50"},
		{Name: "Scenario 2", Severity: "mild", Scope: "All occupations & public spaces", Exemption: "Medical + religious", Coverage: "70% vaccinated", Lives: 30, Uptake: "70.1", NetBenefit: "€10.00"},
	}

	var buf bytes.Buffer
	formatComparison(&buf, rows)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Name"))
	assert.Contains(t, lines[0], "NetBenefit")
	assert.Contains(t, lines[1], "A$-1234.50")
	assert.Contains(t, lines[2], "Medical + religious")
}

func TestFormatStoredList(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)
	list := []model.StoredScenario{{
		Scenario: model.Scenario{
			Selection:        model.DefaultSelection(),
			UptakePercentage: 61.3,
			Currency:         model.ZoneAUS,
			NetBenefit:       -123456.789,
		},
		ID:      "abc12345-6789-0000-0000-000000000000",
		Seq:     1,
		Name:    "Scenario 1",
		SavedAt: now,
	}}

	var buf bytes.Buffer
	formatStoredList(&buf, list)

	out := buf.String()
	assert.Contains(t, out, "abc12345")
	assert.NotContains(t, out, "abc12345-6789")
	assert.Contains(t, out, "Scenario 1")
	assert.Contains(t, out, "A$-123,456.79")
	assert.Contains(t, out, "2026-03-02 09:15")
}

func TestFormatWTSL(t *testing.T) {
	p, err := params.Default()
	require.NoError(t, err)
	e, err := scenario.NewEngine(p)
	require.NoError(t, err)
	list, err := e.WTSL(model.SeverityPooled)
	require.NoError(t, err)

	var buf bytes.Buffer
	formatWTSL(&buf, model.SeverityPooled, list)

	out := buf.String()
	assert.Contains(t, out, "Pooled")
	assert.Contains(t, out, "Expand to All Occupations")
	assert.Contains(t, out, "2.13 lives/100k")
}

func TestFormatSweep(t *testing.T) {
	var buf bytes.Buffer
	formatSweep(&buf, model.ZoneEUR, []scenario.SweepPoint{
		{LivesSavedPer100k: 10, UptakePercentage: 55.5, NetBenefit: 1500},
	})
	assert.Contains(t, buf.String(), "€1,500.00")
	assert.Contains(t, buf.String(), "55.5")
}

func TestTruncateID(t *testing.T) {
	assert.Equal(t, "abc12345", truncateID("abc12345-6789"))
	assert.Equal(t, "short", truncateID("short"))
}
