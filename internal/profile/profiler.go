package profile

import (
	"fmt"
	"math"
	"sort"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/stats"
)

// UnknownStrategyError reports an imputation request with an
// unrecognized strategy name.
type UnknownStrategyError struct {
	Strategy string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown imputation strategy %q", e.Strategy)
}

// TypeMismatchError reports a numeric-only strategy applied to a
// non-numeric column.
type TypeMismatchError struct {
	Column   string
	Strategy string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("strategy %q requires a numeric column, %q is categorical", e.Strategy, e.Column)
}

// Describe holds descriptive statistics for one numeric column.
type Describe struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// BasicInfo is the schema-level summary of a dataset.
type BasicInfo struct {
	TotalRecords       int
	TotalColumns       int
	MissingValues      map[string]int
	DataTypes          map[string]string
	NumericColumns     []string
	CategoricalColumns []string
	Statistics         map[string]Describe
}

// MissingValue is one row of the missing-value report.
type MissingValue struct {
	Column     string
	Count      int
	Percentage float64
}

// Profiler computes schema, missing-value, and outlier views of a
// dataset and applies imputation strategies in place.
type Profiler struct {
	ds *dataset.Dataset
}

// New wraps a dataset for profiling.
func New(ds *dataset.Dataset) *Profiler {
	return &Profiler{ds: ds}
}

// BasicInfo returns record/column counts, per-column null counts and
// kinds, the numeric/categorical partition, and describe() statistics
// for numeric columns. An empty dataset yields an empty structure.
func (p *Profiler) BasicInfo() BasicInfo {
	info := BasicInfo{
		TotalRecords:  p.ds.NumRows(),
		TotalColumns:  p.ds.NumCols(),
		MissingValues: map[string]int{},
		DataTypes:     map[string]string{},
		Statistics:    map[string]Describe{},
	}
	for _, c := range p.ds.Columns() {
		info.MissingValues[c.Name] = c.NullCount()
		info.DataTypes[c.Name] = c.Kind.String()
		if c.Kind == dataset.KindNumeric {
			info.NumericColumns = append(info.NumericColumns, c.Name)
			info.Statistics[c.Name] = describe(c.Values())
		} else {
			info.CategoricalColumns = append(info.CategoricalColumns, c.Name)
		}
	}
	return info
}

func describe(vals []float64) Describe {
	d := Describe{Count: len(vals)}
	if len(vals) == 0 {
		return d
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	d.Mean = stats.Mean(vals)
	d.Std = stats.Std(vals)
	d.Min = sorted[0]
	d.Q25 = stats.Quantile(sorted, 0.25)
	d.Median = stats.Quantile(sorted, 0.5)
	d.Q75 = stats.Quantile(sorted, 0.75)
	d.Max = sorted[len(sorted)-1]
	return d
}

// DetectMissingValues returns columns with at least one null, sorted
// descending by percentage. Percentages are rounded to 2 decimals.
func (p *Profiler) DetectMissingValues() []MissingValue {
	rows := p.ds.NumRows()
	var out []MissingValue
	for _, c := range p.ds.Columns() {
		n := c.NullCount()
		if n == 0 {
			continue
		}
		pct := 0.0
		if rows > 0 {
			pct = math.Round(float64(n)/float64(rows)*100*100) / 100
		}
		out = append(out, MissingValue{Column: c.Name, Count: n, Percentage: pct})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Percentage > out[j].Percentage
	})
	return out
}

// ApplyImputation mutates the dataset in place. Strategies: drop_column,
// median, mean, mode, zero, unknown. An absent column is a no-op;
// median and mean on a categorical column fail with TypeMismatchError.
func (p *Profiler) ApplyImputation(strategy, column string) error {
	switch strategy {
	case "drop_column", "median", "mean", "mode", "zero", "unknown":
	default:
		return &UnknownStrategyError{Strategy: strategy}
	}
	col, ok := p.ds.Column(column)
	if !ok {
		return nil
	}
	switch strategy {
	case "drop_column":
		p.ds.DropColumn(column)
	case "median":
		if col.Kind != dataset.KindNumeric {
			return &TypeMismatchError{Column: column, Strategy: strategy}
		}
		col.FillNumeric(stats.Median(col.Values()))
	case "mean":
		if col.Kind != dataset.KindNumeric {
			return &TypeMismatchError{Column: column, Strategy: strategy}
		}
		col.FillNumeric(stats.Mean(col.Values()))
	case "mode":
		if col.Kind == dataset.KindNumeric {
			col.FillNumeric(stats.Mode(col.Values()))
		} else {
			col.FillString(modeString(col))
		}
	case "zero":
		if col.Kind == dataset.KindNumeric {
			col.FillNumeric(0)
		} else {
			col.FillString("0")
		}
	case "unknown":
		col.FillString("Unknown")
	}
	return nil
}

func modeString(c *dataset.Column) string {
	best := ""
	bestCnt := 0
	for v, n := range c.ValueCounts() {
		if n > bestCnt || (n == bestCnt && v < best) {
			best, bestCnt = v, n
		}
	}
	return best
}

// DetectOutliers returns row indices whose value falls strictly outside
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR], with linearly interpolated quartiles.
// Absent, categorical, and zero-variance columns yield an empty set.
func (p *Profiler) DetectOutliers(column string) []int {
	col, ok := p.ds.Column(column)
	if !ok || col.Kind != dataset.KindNumeric {
		return nil
	}
	vals := col.Values()
	if len(vals) == 0 {
		return nil
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	q1 := stats.Quantile(sorted, 0.25)
	q3 := stats.Quantile(sorted, 0.75)
	iqr := q3 - q1
	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	var out []int
	for i := 0; i < p.ds.NumRows(); i++ {
		if col.Null[i] {
			continue
		}
		if col.Nums[i] < lower || col.Nums[i] > upper {
			out = append(out, i)
		}
	}
	return out
}
