package profile

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatStatistics renders the describe() table for numeric columns.
func FormatStatistics(info BasicInfo) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"})
	names := make([]string, 0, len(info.Statistics))
	for name := range info.Statistics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := info.Statistics[name]
		t.AppendRow(table.Row{
			name, d.Count,
			fmt.Sprintf("%.2f", d.Mean), fmt.Sprintf("%.2f", d.Std),
			fmt.Sprintf("%.2f", d.Min), fmt.Sprintf("%.2f", d.Q25),
			fmt.Sprintf("%.2f", d.Median), fmt.Sprintf("%.2f", d.Q75),
			fmt.Sprintf("%.2f", d.Max),
		})
	}
	return t.Render()
}

// FormatMissing renders the missing-value report. Empty reports render
// a clean-dataset notice.
func FormatMissing(report []MissingValue) string {
	if len(report) == 0 {
		return "No missing values detected."
	}
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Column", "Missing Count", "Missing Percentage"})
	for _, mv := range report {
		t.AppendRow(table.Row{mv.Column, mv.Count, fmt.Sprintf("%.2f%%", mv.Percentage)})
	}
	return t.Render()
}
