package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
)

func reportDataset() *dataset.Dataset {
	return dataset.New([]*dataset.Column{
		{Name: "Age", Kind: dataset.KindNumeric, Nums: []float64{25, 40, 0, 60}, Null: []bool{false, false, true, false}},
		{Name: "Credit_Utilization", Kind: dataset.KindNumeric, Nums: []float64{20, 80, 55, 90}, Null: make([]bool, 4)},
		{Name: "Delinquent_Account", Kind: dataset.KindNumeric, Nums: []float64{0, 1, 0, 1}, Null: make([]bool, 4)},
	})
}

var testTime = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestGenerateSections(t *testing.T) {
	got := Generate(reportDataset(), Results{}, testTime)
	for _, want := range []string{
		"# Exploratory Data Analysis (EDA) Summary Report",
		"**Generated:** 2026-03-15 10:30",
		"## 1. Introduction",
		"## 2. Dataset Overview",
		"**Number of records:** 4",
		"## 3. Missing Data Analysis",
		"## 4. Key Findings and Risk Indicators",
		"## 5. AI & GenAI Usage",
		"## 6. Conclusion & Next Steps",
		"- Overall delinquency rate: **50.00%**",
	} {
		assert.Contains(t, got, want)
	}
}

func TestGenerateMissingSection(t *testing.T) {
	got := Generate(reportDataset(), Results{MissingTreatment: "Filled Age with the median."}, testTime)
	assert.Contains(t, got, "- Age: 1 records (25.00%)")
	assert.Contains(t, got, "Filled Age with the median.")

	clean := dataset.New([]*dataset.Column{
		{Name: "Age", Kind: dataset.KindNumeric, Nums: []float64{1, 2}, Null: make([]bool, 2)},
	})
	got = Generate(clean, Results{}, testTime)
	assert.Contains(t, got, "No missing values detected in dataset.")
}

func TestGenerateRiskFallback(t *testing.T) {
	got := Generate(reportDataset(), Results{}, testTime)
	assert.Contains(t, got, "**Top correlations with Delinquent_Account:**")

	got = Generate(reportDataset(), Results{RiskFactors: "Utilization dominates."}, testTime)
	assert.Contains(t, got, "Utilization dominates.")
	assert.NotContains(t, got, "**Top correlations with Delinquent_Account:**",
		"fallback must be suppressed when a narrative is supplied")
}

func TestGenerateEmptyDataset(t *testing.T) {
	got := Generate(dataset.New(nil), Results{}, testTime)
	assert.Contains(t, got, "**Number of records:** 0")
	assert.Contains(t, got, "No risk-factor analysis available")
}

func TestStrengthLabels(t *testing.T) {
	cases := map[float64]string{
		0.5:  "strong positive",
		0.2:  "moderate positive",
		0.05: "weak positive",
		-0.3: "negative",
	}
	for r, want := range cases {
		assert.Equal(t, want, strength(r), "strength(%v)", r)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "EDA_Report_20260315.md", Filename(testTime))
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	path, err := Write(dir, "content", testTime)
	require.NoError(t, err)
	assert.Equal(t, "EDA_Report_20260315.md", filepath.Base(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(b))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}
