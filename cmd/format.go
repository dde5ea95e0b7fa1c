package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/sells-group/mandate-cli/internal/model"
	"github.com/sells-group/mandate-cli/internal/scenario"
	"github.com/sells-group/mandate-cli/internal/uptake"
)

func writeJSON(out io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}

// formatScenario writes a scenario summary to w.
func formatScenario(out io.Writer, s *model.Scenario, rec scenario.Recommendation) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	money := func(v float64) string { return model.DisplayMoney(s.Currency, v) }

	country := string(s.Selection.Country)
	if s.Selection.AdjustForCostOfLiving {
		country += " (cost of living adjusted)"
	}

	_, _ = fmt.Fprintf(w, "Severity:\t%s\n", s.SeverityText)
	_, _ = fmt.Fprintf(w, "Scope:\t%s\n", s.ScopeText)
	_, _ = fmt.Fprintf(w, "Exemptions:\t%s\n", s.ExemptionText)
	_, _ = fmt.Fprintf(w, "Coverage:\t%s\n", s.CoverageText)
	_, _ = fmt.Fprintf(w, "Lives saved:\t%d per 100k\n", s.Selection.LivesSavedPer100k)
	_, _ = fmt.Fprintf(w, "Country:\t%s\n", country)
	_, _ = fmt.Fprintf(w, "Predicted uptake:\t%.1f%% (%d of %d)\n", s.UptakePercentage, s.Participants, s.Population)
	_, _ = fmt.Fprintf(w, "Fixed cost:\t%s\n", money(s.FixedCost))
	_, _ = fmt.Fprintf(w, "Variable cost:\t%s\n", money(s.VariableCost))
	_, _ = fmt.Fprintf(w, "Total cost:\t%s\n", money(s.TotalCost))
	if s.BenefitModel == model.BenefitModelQALY {
		_, _ = fmt.Fprintf(w, "QALYs gained:\t%.2f\n", s.TotalQALYs)
	}
	_, _ = fmt.Fprintf(w, "Total benefit:\t%s\n", money(s.TotalBenefit))
	_, _ = fmt.Fprintf(w, "Net benefit:\t%s\n", money(s.NetBenefit))
	_, _ = fmt.Fprintf(w, "Recommendation:\t[%s] %s\n", rec.Band, rec.Advice)
	_ = w.Flush()

	for _, n := range s.Notices {
		_, _ = fmt.Fprintf(out, "note: %s\n", n.Message)
	}
}

// formatWTSL writes trade-offs to w.
func formatWTSL(out io.Writer, sev model.Severity, list []uptake.WTSL) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "TRADE-OFF (%s)\tLIVES/100K\n", sev.Text())
	_, _ = fmt.Fprintln(w, "---------\t----------")
	for _, v := range list {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", v.Label, v.Text())
	}
	_ = w.Flush()
}

// formatSweep writes sweep points to w.
func formatSweep(out io.Writer, zone model.CurrencyZone, points []scenario.SweepPoint) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "LIVES/100K\tUPTAKE%\tNET BENEFIT")
	_, _ = fmt.Fprintln(w, "----------\t-------\t-----------")
	for _, p := range points {
		_, _ = fmt.Fprintf(w, "%d\t%.1f\t%s\n", p.LivesSavedPer100k, p.UptakePercentage, model.DisplayMoney(zone, p.NetBenefit))
	}
	_ = w.Flush()
}

// formatPresets writes the preset catalogue to w.
func formatPresets(out io.Writer, presets []scenario.Preset) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "----\t-----------")
	for _, p := range presets {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Description)
	}
	_ = w.Flush()
}

// formatStoredList writes saved scenarios to w.
func formatStoredList(out io.Writer, list []model.StoredScenario) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tCOUNTRY\tUPTAKE%\tNET BENEFIT\tSAVED")
	_, _ = fmt.Fprintln(w, "--\t----\t-------\t-------\t-----------\t-----")
	for _, s := range list {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%s\t%s\n",
			truncateID(s.ID),
			s.Name,
			s.Selection.Country,
			s.UptakePercentage,
			model.DisplayMoney(s.Currency, s.NetBenefit),
			s.SavedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = w.Flush()
}

// formatComparison writes comparison rows under the shared header.
func formatComparison(out io.Writer, rows []model.ComparisonRow) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, h := range model.ComparisonHeader {
		if i > 0 {
			_, _ = fmt.Fprint(w, "\t")
		}
		_, _ = fmt.Fprint(w, h)
	}
	_, _ = fmt.Fprintln(w)
	for _, r := range rows {
		for i, c := range r.Strings() {
			if i > 0 {
				_, _ = fmt.Fprint(w, "\t")
			}
			_, _ = fmt.Fprint(w, c)
		}
		_, _ = fmt.Fprintln(w)
	}
	_ = w.Flush()
}

// formatOutcomes writes batch results to w.
func formatOutcomes(out io.Writer, outcomes []scenario.Outcome) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tLABEL\tUPTAKE%\tNET BENEFIT\tERROR")
	_, _ = fmt.Fprintln(w, "-\t-----\t-------\t-----------\t-----")
	for i, o := range outcomes {
		label := o.Label
		if label == "" {
			label = "-"
		}
		if o.Scenario == nil {
			_, _ = fmt.Fprintf(w, "%d\t%s\t\t\t%s\n", i+1, label, o.Error)
			continue
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", i+1, label,
			strconv.FormatFloat(o.Scenario.UptakePercentage, 'f', 1, 64),
			model.DisplayMoney(o.Scenario.Currency, o.Scenario.NetBenefit),
		)
	}
	_ = w.Flush()
}

// truncateID returns the first 8 characters of a UUID for compact display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
