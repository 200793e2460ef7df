package charts

import (
	"sort"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/stats"
)

// BarSpec describes a labeled bar chart.
type BarSpec struct {
	Title  string
	YLabel string
	Labels []string
	Values []float64
}

// Bin is one histogram bucket.
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// BoxStats carries the five-number summary shown alongside a histogram.
type BoxStats struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// HistogramSpec describes a numeric distribution chart.
type HistogramSpec struct {
	Column string
	Bins   []Bin
	Box    BoxStats
}

// DistributionSpec is either a histogram (numeric column) or a
// value-count bar chart (categorical column).
type DistributionSpec struct {
	Column    string
	Histogram *HistogramSpec
	Bar       *BarSpec
}

// HeatmapSpec is a full pairwise correlation matrix over numeric
// columns.
type HeatmapSpec struct {
	Columns []string
	Values  [][]float64
}

// histogramBins is the bucket count for numeric distributions.
const histogramBins = 20

// MissingValueChart derives a bar chart of per-column missing counts,
// ascending by count. Nil when the dataset has no missing values.
func MissingValueChart(ds *dataset.Dataset) *BarSpec {
	type mv struct {
		name  string
		count int
	}
	var rows []mv
	for _, c := range ds.Columns() {
		if n := c.NullCount(); n > 0 {
			rows = append(rows, mv{c.Name, n})
		}
	}
	if len(rows) == 0 {
		return nil
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].count < rows[j].count })
	spec := &BarSpec{Title: "Missing Values per Column", YLabel: "Missing Count"}
	for _, r := range rows {
		spec.Labels = append(spec.Labels, r.name)
		spec.Values = append(spec.Values, float64(r.count))
	}
	return spec
}

// DistributionChart derives a histogram with box statistics for a
// numeric column, or a value-count bar chart for a categorical one.
// Nil when the column is absent or has no non-null values.
func DistributionChart(ds *dataset.Dataset, column string) *DistributionSpec {
	col, ok := ds.Column(column)
	if !ok {
		return nil
	}
	if col.Kind == dataset.KindNumeric {
		vals := col.Values()
		if len(vals) == 0 {
			return nil
		}
		return &DistributionSpec{Column: column, Histogram: histogram(column, vals)}
	}
	counts := col.ValueCounts()
	if len(counts) == 0 {
		return nil
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return counts[keys[i]] > counts[keys[j]] })
	spec := &BarSpec{Title: "Distribution of " + column, YLabel: "Count"}
	for _, k := range keys {
		spec.Labels = append(spec.Labels, k)
		spec.Values = append(spec.Values, float64(counts[k]))
	}
	return &DistributionSpec{Column: column, Bar: spec}
}

func histogram(column string, vals []float64) *HistogramSpec {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	lo := sorted[0]
	hi := sorted[len(sorted)-1]
	spec := &HistogramSpec{
		Column: column,
		Box: BoxStats{
			Min:    lo,
			Q1:     stats.Quantile(sorted, 0.25),
			Median: stats.Quantile(sorted, 0.5),
			Q3:     stats.Quantile(sorted, 0.75),
			Max:    hi,
		},
	}
	if lo == hi {
		spec.Bins = []Bin{{Lo: lo, Hi: hi, Count: len(vals)}}
		return spec
	}
	width := (hi - lo) / float64(histogramBins)
	bins := make([]Bin, histogramBins)
	for b := range bins {
		bins[b].Lo = lo + float64(b)*width
		bins[b].Hi = lo + float64(b+1)*width
	}
	for _, v := range vals {
		b := int((v - lo) / width)
		if b >= histogramBins {
			b = histogramBins - 1
		}
		bins[b].Count++
	}
	spec.Bins = bins
	return spec
}

// CorrelationHeatmap derives the full pairwise Pearson matrix over
// numeric columns. Nil with fewer than 2 numeric columns.
func CorrelationHeatmap(ds *dataset.Dataset) *HeatmapSpec {
	cols := ds.NumericColumns()
	if len(cols) < 2 {
		return nil
	}
	n := len(cols)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
		mat[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			x, y := ds.PairedValues(cols[i], cols[j])
			r := stats.Pearson(x, y)
			mat[i][j] = r
			mat[j][i] = r
		}
	}
	return &HeatmapSpec{Columns: cols, Values: mat}
}

// RateChart turns a labeled rate table into a bar spec.
func RateChart(title string, labels []string, rates []float64) *BarSpec {
	if len(labels) == 0 || len(labels) != len(rates) {
		return nil
	}
	return &BarSpec{
		Title:  title,
		YLabel: "Delinquency Rate (%)",
		Labels: labels,
		Values: rates,
	}
}
