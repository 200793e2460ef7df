package narrative

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/profile"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/risk"
)

// missingJSONLimit caps the serialized missing-value map embedded in the
// dataset summary prompt. The cap is a compatibility detail of the
// prompt format, kept as-is.
const missingJSONLimit = 500

// highRiskSampleRows caps the target-positive rows embedded in the risk
// factors prompt.
const highRiskSampleRows = 10

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// datasetSummaryPrompt embeds row/column counts, the column list, the
// serialized per-column null counts, and the dtype map.
func datasetSummaryPrompt(ds *dataset.Dataset) string {
	info := profile.New(ds).BasicInfo()

	cols := ds.ColumnNames()
	shown := cols
	suffix := ""
	if len(shown) > 10 {
		shown = shown[:10]
		suffix = "..."
	}

	missingJSON, _ := json.MarshalIndent(info.MissingValues, "", "  ")

	var dtypes []string
	for _, name := range cols {
		dtypes = append(dtypes, fmt.Sprintf("%s: %s", name, info.DataTypes[name]))
	}

	var b strings.Builder
	b.WriteString("You are a data analyst for the finance company Gellium.\n")
	b.WriteString("Analyze the delinquency dataset with the following information:\n\n")
	fmt.Fprintf(&b, "Total records: %d\n", info.TotalRecords)
	fmt.Fprintf(&b, "Total columns: %d\n", info.TotalColumns)
	fmt.Fprintf(&b, "Columns: %s%s\n\n", strings.Join(shown, ", "), suffix)
	b.WriteString("Missing values summary:\n")
	b.WriteString(truncate(string(missingJSON), missingJSONLimit))
	b.WriteString("\n\nColumn types:\n")
	b.WriteString(strings.Join(dtypes, "\n"))
	b.WriteString("\n\nBased on the data above, give a short analysis (3-4 sentences) covering:\n")
	b.WriteString("1. Overall data quality\n")
	b.WriteString("2. Which columns need special attention\n")
	b.WriteString("3. The first steps to take for EDA\n")
	return b.String()
}

// columnSummaryPrompt embeds the column's dtype, a 20-row sample, and
// its descriptive statistics.
func columnSummaryPrompt(ds *dataset.Dataset, column string) string {
	col, _ := ds.Column(column)

	var sample []string
	for i := 0; i < ds.NumRows() && len(sample) < 20; i++ {
		sample = append(sample, col.CellString(i))
	}

	statsText := ""
	if col.Kind == dataset.KindNumeric {
		info := profile.New(ds).BasicInfo()
		d := info.Statistics[column]
		statsText = fmt.Sprintf(
			"count %d\nmean %.4f\nstd %.4f\nmin %.4f\n25%% %.4f\n50%% %.4f\n75%% %.4f\nmax %.4f",
			d.Count, d.Mean, d.Std, d.Min, d.Q25, d.Median, d.Q75, d.Max)
	} else {
		counts := col.ValueCounts()
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var lines []string
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s: %d", k, counts[k]))
		}
		statsText = strings.Join(lines, "\n")
	}

	var b strings.Builder
	b.WriteString("You are a data analyst for the finance company Gellium.\n")
	b.WriteString("Analyze the following column from the delinquency dataset:\n\n")
	fmt.Fprintf(&b, "Column: %s\n", column)
	fmt.Fprintf(&b, "Data type: %s\n", col.Kind)
	b.WriteString("Sample data (first 20 rows):\n")
	b.WriteString(strings.Join(sample, "\n"))
	b.WriteString("\n\nStatistics:\n")
	b.WriteString(statsText)
	b.WriteString("\n\nBased on the data above, give a short analysis (3-4 sentences) covering:\n")
	b.WriteString("1. The distribution characteristics\n")
	b.WriteString("2. Potential problems (missing values, outliers)\n")
	b.WriteString("3. This column's relevance for delinquency prediction\n")
	return b.String()
}

// missingValuePrompt embeds the missing-value report as text.
func missingValuePrompt(report []profile.MissingValue) string {
	var rows []string
	for _, mv := range report {
		rows = append(rows, fmt.Sprintf("%-24s %6d %8.2f%%", mv.Column, mv.Count, mv.Percentage))
	}

	var b strings.Builder
	b.WriteString("You are a data analyst for the finance company Gellium.\n")
	b.WriteString("The delinquency dataset has the following missing values:\n\n")
	b.WriteString(fmt.Sprintf("%-24s %6s %9s\n", "Column", "Count", "Pct"))
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n\nFollowing financial industry best practice, recommend:\n")
	b.WriteString("1. A treatment strategy per missing column (drop, mean/median imputation, or another method)\n")
	b.WriteString("2. A short justification for each choice\n")
	b.WriteString("3. A warning about potential bias if the wrong method is chosen\n\n")
	b.WriteString("Format the response as bullet points per column.\n")
	return b.String()
}

// riskFactorsPrompt embeds the correlation-with-target table and a
// sample of target-positive rows.
func riskFactorsPrompt(ds *dataset.Dataset) string {
	analyzer := risk.New(ds)

	var corrText strings.Builder
	if factors := analyzer.TopRiskFactors(0); len(factors) > 0 {
		corrText.WriteString("Correlation with Delinquent_Account:\n")
		for _, f := range factors {
			fmt.Fprintf(&corrText, "%-24s %8.4f\n", f.Factor, f.Correlation)
		}
		corrText.WriteString("\n")
	}

	header := strings.Join(ds.ColumnNames(), " | ")
	var sample []string
	// Same guard as the risk analyzer: a non-numeric target cannot
	// filter rows, so the sample falls back to the leading rows.
	target, hasTarget := ds.Column(risk.TargetColumn)
	if hasTarget && target.Kind != dataset.KindNumeric {
		hasTarget = false
	}
	for i := 0; i < ds.NumRows() && len(sample) < highRiskSampleRows; i++ {
		if hasTarget {
			if target.Null[i] || target.Nums[i] != 1 {
				continue
			}
		}
		sample = append(sample, ds.RowString(i))
	}

	var b strings.Builder
	b.WriteString("You are a data analyst for the finance company Gellium.\n")
	b.WriteString("Analyze delinquency risk factors from the data below:\n\n")
	b.WriteString(corrText.String())
	b.WriteString("Sample of high-risk customers (if available):\n")
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(strings.Join(sample, "\n"))
	b.WriteString("\n\nBased on the data above, provide:\n")
	b.WriteString("1. The top 5 risk factors most associated with delinquency\n")
	b.WriteString("2. The typical profile of a high-risk customer\n")
	b.WriteString("3. Recommended early warning indicators to monitor\n")
	b.WriteString("4. Implications for the collections strategy\n\n")
	b.WriteString("Format the response as clear, readable paragraphs.\n")
	return b.String()
}
