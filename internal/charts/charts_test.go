package charts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
)

func chartDataset() *dataset.Dataset {
	return dataset.New([]*dataset.Column{
		{Name: "Age", Kind: dataset.KindNumeric, Nums: []float64{20, 30, 40, 50, 0}, Null: []bool{false, false, false, false, true}},
		{Name: "Income", Kind: dataset.KindNumeric, Nums: []float64{100, 200, 300, 400, 500}, Null: make([]bool, 5)},
		{Name: "Card", Kind: dataset.KindCategorical, Strs: []string{"Gold", "Basic", "Gold", "Gold", ""}, Null: []bool{false, false, false, false, true}},
	})
}

func TestMissingValueChart(t *testing.T) {
	spec := MissingValueChart(chartDataset())
	require.NotNil(t, spec)
	assert.Equal(t, []string{"Age", "Card"}, spec.Labels)
	assert.Equal(t, []float64{1, 1}, spec.Values)

	clean := dataset.New([]*dataset.Column{
		{Name: "A", Kind: dataset.KindNumeric, Nums: []float64{1}, Null: []bool{false}},
	})
	assert.Nil(t, MissingValueChart(clean))
}

func TestDistributionChartNumeric(t *testing.T) {
	spec := DistributionChart(chartDataset(), "Age")
	require.NotNil(t, spec)
	require.NotNil(t, spec.Histogram)
	assert.Nil(t, spec.Bar)

	h := spec.Histogram
	assert.Equal(t, 20.0, h.Box.Min)
	assert.Equal(t, 50.0, h.Box.Max)
	assert.Equal(t, 35.0, h.Box.Median)
	require.Len(t, h.Bins, histogramBins)

	total := 0
	for _, b := range h.Bins {
		total += b.Count
	}
	assert.Equal(t, 4, total, "every non-null value lands in a bin")
}

func TestDistributionChartCategorical(t *testing.T) {
	spec := DistributionChart(chartDataset(), "Card")
	require.NotNil(t, spec)
	require.NotNil(t, spec.Bar)
	assert.Equal(t, []string{"Gold", "Basic"}, spec.Bar.Labels)
	assert.Equal(t, []float64{3, 1}, spec.Bar.Values)
}

func TestDistributionChartAbsent(t *testing.T) {
	assert.Nil(t, DistributionChart(chartDataset(), "Nope"))
}

func TestHistogramConstantColumn(t *testing.T) {
	ds := dataset.New([]*dataset.Column{
		{Name: "C", Kind: dataset.KindNumeric, Nums: []float64{5, 5, 5}, Null: make([]bool, 3)},
	})
	spec := DistributionChart(ds, "C")
	require.NotNil(t, spec)
	require.Len(t, spec.Histogram.Bins, 1)
	assert.Equal(t, 3, spec.Histogram.Bins[0].Count)
}

func TestCorrelationHeatmap(t *testing.T) {
	spec := CorrelationHeatmap(chartDataset())
	require.NotNil(t, spec)
	assert.Equal(t, []string{"Age", "Income"}, spec.Columns)
	assert.Equal(t, 1.0, spec.Values[0][0])
	assert.Equal(t, spec.Values[0][1], spec.Values[1][0], "matrix is symmetric")
	assert.InDelta(t, 1.0, spec.Values[0][1], 1e-12, "Age and Income are perfectly correlated here")

	single := dataset.New([]*dataset.Column{
		{Name: "A", Kind: dataset.KindNumeric, Nums: []float64{1, 2}, Null: make([]bool, 2)},
	})
	assert.Nil(t, CorrelationHeatmap(single))
}

func TestRateChart(t *testing.T) {
	spec := RateChart("Delinquency by Age Group", []string{"18-25", "26-35"}, []float64{10, 20})
	require.NotNil(t, spec)
	assert.Equal(t, "Delinquency Rate (%)", spec.YLabel)
	assert.Nil(t, RateChart("x", []string{"a"}, nil))
}

func TestRenderBarProducesPNG(t *testing.T) {
	spec := RateChart("Rates", []string{"a", "b"}, []float64{10, 20})
	png, err := RenderBar(spec)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRenderHistogramProducesPNG(t *testing.T) {
	spec := DistributionChart(chartDataset(), "Income")
	png, err := RenderHistogram(spec.Histogram)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRenderHeatmapWritesHTML(t *testing.T) {
	spec := CorrelationHeatmap(chartDataset())
	var buf bytes.Buffer
	require.NoError(t, RenderHeatmap(spec, &buf))
	assert.Contains(t, buf.String(), "echarts")
}
