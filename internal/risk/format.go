package risk

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatRateTable renders a risk-rate table for one grouping dimension.
func FormatRateTable(title string, rows []RateRow) string {
	if len(rows) == 0 {
		return fmt.Sprintf("%s: no data (target column missing or no groups)", title)
	}
	t := table.NewWriter()
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Group", "Delinquency Rate", "Customers"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Group, fmt.Sprintf("%.1f%%", r.Rate), r.Count})
	}
	return t.Render()
}

// FormatRiskFactors renders the correlation ranking.
func FormatRiskFactors(factors []RiskFactor) string {
	if len(factors) == 0 {
		return "No risk factors available (target column missing)"
	}
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Risk Factor", "Correlation"})
	for _, f := range factors {
		t.AppendRow(table.Row{f.Factor, fmt.Sprintf("%.4f", f.Correlation)})
	}
	return t.Render()
}
