package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/profile"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/risk"
)

// Results carries caller-supplied narrative fragments. Empty fields
// fall back to computed or boilerplate content.
type Results struct {
	// MissingTreatment describes how missing values were handled.
	MissingTreatment string
	// RiskFactors describes the key findings; when empty the report
	// falls back to a computed top-6 correlation listing.
	RiskFactors string
}

// Generate assembles the EDA summary document from the current dataset
// state and prior analysis results. Pure: no I/O, no mutation.
func Generate(ds *dataset.Dataset, res Results, now time.Time) string {
	var lines []string
	add := func(s string) { lines = append(lines, s) }

	add("# Exploratory Data Analysis (EDA) Summary Report")
	add(fmt.Sprintf("**Generated:** %s", now.Format("2006-01-02 15:04")))
	add("")

	add("## 1. Introduction")
	add("")
	add("This analysis explores the Gellium Finance delinquency dataset to understand its structure, identify patterns, handle missing values, and surface the key risk factors contributing to credit card delinquency.")
	add("")

	add("## 2. Dataset Overview")
	add("")
	add(fmt.Sprintf("**Number of records:** %d", ds.NumRows()))
	add(fmt.Sprintf("**Number of columns:** %d", ds.NumCols()))
	add("")
	add("**Key variables:**")
	add("")
	for _, name := range dataset.DescribedColumns() {
		col, ok := ds.Column(name)
		if !ok {
			continue
		}
		desc, _ := dataset.Description(name)
		add(fmt.Sprintf("- **%s**: %s (%s)", name, desc, col.Kind))
	}
	add("")

	add("## 3. Missing Data Analysis")
	add("")
	missing := profile.New(ds).DetectMissingValues()
	if len(missing) > 0 {
		add("**Missing values detected:**")
		for _, mv := range missing {
			add(fmt.Sprintf("- %s: %d records (%.2f%%)", mv.Column, mv.Count, mv.Percentage))
		}
		add("")
		add("**Treatment approach:**")
		if res.MissingTreatment != "" {
			add(res.MissingTreatment)
		} else {
			add("No treatment specified")
		}
	} else {
		add("No missing values detected in dataset.")
	}
	add("")

	add("## 4. Key Findings and Risk Indicators")
	add("")
	if res.RiskFactors != "" {
		add(res.RiskFactors)
	} else {
		addCorrelationFallback(add, ds)
	}
	add("")

	add("## 5. AI & GenAI Usage")
	add("")
	add("Generative AI tooling assisted this analysis in the following ways:")
	add("")
	add("1. **Summarization**: summarizing dataset characteristics and identifying patterns")
	add("2. **Missing value recommendations**: suggesting imputation strategies based on industry best practice")
	add("3. **Risk factor analysis**: identifying the main risk factors")
	add("")
	add("**Example AI prompts used:**")
	add("")
	add(`- "Analyze this dataset and provide a summary of key columns, including common patterns and missing values."`)
	add(`- "Suggest an imputation strategy for missing income values based on industry best practices."`)
	add(`- "Identify the top 5 risk factors for delinquency based on this dataset."`)
	add("")

	add("## 6. Conclusion & Next Steps")
	add("")
	add("### Key Findings:")
	add("")
	if overall, ok := risk.New(ds).Overall(); ok {
		add(fmt.Sprintf("- Overall delinquency rate: **%.2f%%**", overall.Rate))
	}
	add("- The dataset requires missing-value treatment before modeling")
	add("- The main risk factors should be validated with a domain expert")
	add("- Payment history patterns correlate with delinquency")
	add("")
	add("### Recommended Next Steps:")
	add("")
	add("1. **Data Cleaning**: implement the recommended imputation strategies")
	add("2. **Feature Engineering**: derive new features from the payment history")
	add("3. **Model Development**: build a predictive model on the identified risk factors")
	add("4. **Validation**: validate findings with the Gellium collections team")

	return strings.Join(lines, "\n")
}

// addCorrelationFallback emits the computed top-6 correlation listing
// used when no risk-factor narrative was supplied.
func addCorrelationFallback(add func(string), ds *dataset.Dataset) {
	factors := risk.New(ds).TopRiskFactors(6)
	if len(factors) == 0 {
		add("No risk-factor analysis available (target column missing).")
		return
	}
	add("**Top correlations with Delinquent_Account:**")
	for _, f := range factors {
		add(fmt.Sprintf("- **%s**: %.3f (%s)", f.Factor, f.Correlation, strength(f.Correlation)))
	}
}

func strength(r float64) string {
	switch {
	case r > 0.3:
		return "strong positive"
	case r > 0.1:
		return "moderate positive"
	case r > 0:
		return "weak positive"
	}
	return "negative"
}

// Filename returns the download name for a report generated at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("EDA_Report_%s.md", t.Format("20060102"))
}

// Write saves the document under dir using the dated filename, writing
// through a temp file and an atomic rename. Returns the final path.
func Write(dir, content string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir report dir: %w", err)
	}
	path := filepath.Join(dir, Filename(now))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("atomic rename: %w", err)
	}
	return path, nil
}
