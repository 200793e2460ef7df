package risk

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/stats"
)

// TargetColumn is the binary outcome every risk view is computed
// against.
const TargetColumn = "Delinquent_Account"

// ErrUtilizationScale reports Credit_Utilization values outside any
// recognized scale (neither a 0-1 fraction nor a 0-100 percentage).
var ErrUtilizationScale = errors.New("Credit_Utilization values exceed 100: unrecognized scale")

// OverallRate is the dataset-wide delinquency rate with raw counts.
type OverallRate struct {
	Rate       float64 // percent
	Delinquent int
	Total      int
}

// RateRow is one group of a risk-rate table.
type RateRow struct {
	Group string
	Rate  float64 // percent
	Count int
}

// RiskFactor pairs a numeric feature with its correlation to the target.
type RiskFactor struct {
	Factor      string
	Correlation float64
}

// Analyzer computes grouped delinquency rates and correlation rankings.
// Every method degrades to a sentinel empty result when the target
// column is absent.
type Analyzer struct {
	ds *dataset.Dataset
}

// New wraps a dataset for risk analysis.
func New(ds *dataset.Dataset) *Analyzer {
	return &Analyzer{ds: ds}
}

func (a *Analyzer) target() (*dataset.Column, bool) {
	c, ok := a.ds.Column(TargetColumn)
	if !ok || c.Kind != dataset.KindNumeric {
		return nil, false
	}
	return c, true
}

// Overall returns the target mean as a percentage plus raw counts.
func (a *Analyzer) Overall() (OverallRate, bool) {
	target, ok := a.target()
	if !ok {
		return OverallRate{}, false
	}
	out := OverallRate{Total: a.ds.NumRows()}
	for i := 0; i < a.ds.NumRows(); i++ {
		if !target.Null[i] && target.Nums[i] == 1 {
			out.Delinquent++
		}
	}
	if out.Total > 0 {
		out.Rate = float64(out.Delinquent) / float64(out.Total) * 100
	}
	return out, true
}

// RateByBucket computes the target's mean rate per bin of a numeric
// column. Bins are half-open, left-exclusive/right-inclusive; values
// outside all edges are dropped; empty groups are omitted. labels must
// have len(bins)-1 entries.
func (a *Analyzer) RateByBucket(column string, bins []float64, labels []string) []RateRow {
	target, ok := a.target()
	if !ok {
		return nil
	}
	col, ok := a.ds.Column(column)
	if !ok || col.Kind != dataset.KindNumeric || len(bins) < 2 || len(labels) != len(bins)-1 {
		return nil
	}
	return a.bucketRates(col, 1, target, bins, labels)
}

func (a *Analyzer) bucketRates(col *dataset.Column, scale float64, target *dataset.Column, bins []float64, labels []string) []RateRow {
	sums := make([]float64, len(labels))
	counts := make([]int, len(labels))
	for i := 0; i < a.ds.NumRows(); i++ {
		if col.Null[i] || target.Null[i] {
			continue
		}
		v := col.Nums[i] * scale
		for b := 0; b < len(labels); b++ {
			if v > bins[b] && v <= bins[b+1] {
				sums[b] += target.Nums[i]
				counts[b]++
				break
			}
		}
	}
	var out []RateRow
	for b, label := range labels {
		if counts[b] == 0 {
			continue
		}
		out = append(out, RateRow{
			Group: label,
			Rate:  sums[b] / float64(counts[b]) * 100,
			Count: counts[b],
		})
	}
	return out
}

// utilizationBins and ageBins are the fixed grouping dimensions.
var (
	utilizationBins   = []float64{0, 30, 50, 70, 100}
	utilizationLabels = []string{"Low (0-30%)", "Medium (30-50%)", "High (50-70%)", "Very High (70-100%)"}
	ageBins           = []float64{18, 25, 35, 45, 55, 65, 100}
	ageLabels         = []string{"18-25", "26-35", "36-45", "46-55", "56-65", "65+"}
)

// RateByUtilization buckets Credit_Utilization after resolving its
// scale: an observed max <= 1 is treated as a fraction and scaled x100,
// a max <= 100 is taken as an existing percentage, and anything larger
// fails with ErrUtilizationScale instead of silently misaligning bins.
func (a *Analyzer) RateByUtilization() ([]RateRow, error) {
	target, ok := a.target()
	if !ok {
		return nil, nil
	}
	col, ok := a.ds.Column("Credit_Utilization")
	if !ok || col.Kind != dataset.KindNumeric {
		return nil, nil
	}
	maxVal := 0.0
	for _, v := range col.Values() {
		if v > maxVal {
			maxVal = v
		}
	}
	scale := 100.0
	switch {
	case maxVal <= 1:
	case maxVal <= 100:
		scale = 1
	default:
		return nil, ErrUtilizationScale
	}
	return a.bucketRates(col, scale, target, utilizationBins, utilizationLabels), nil
}

// RateByAge buckets Age into the fixed age groups.
func (a *Analyzer) RateByAge() []RateRow {
	return a.RateByBucket("Age", ageBins, ageLabels)
}

// RateByCategory groups by the column's raw values. Numeric grouping
// columns sort ascending by value; categorical ones sort descending by
// rate when sortByRate is set.
func (a *Analyzer) RateByCategory(column string, sortByRate bool) []RateRow {
	target, ok := a.target()
	if !ok {
		return nil
	}
	col, ok := a.ds.Column(column)
	if !ok {
		return nil
	}
	sums := map[string]float64{}
	counts := map[string]int{}
	for i := 0; i < a.ds.NumRows(); i++ {
		if col.Null[i] || target.Null[i] {
			continue
		}
		key := col.CellString(i)
		sums[key] += target.Nums[i]
		counts[key]++
	}
	out := make([]RateRow, 0, len(counts))
	for key, n := range counts {
		out = append(out, RateRow{Group: key, Rate: sums[key] / float64(n) * 100, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if sortByRate {
			if out[i].Rate != out[j].Rate {
				return out[i].Rate > out[j].Rate
			}
			return out[i].Group < out[j].Group
		}
		xi, erri := strconv.ParseFloat(out[i].Group, 64)
		xj, errj := strconv.ParseFloat(out[j].Group, 64)
		if erri == nil && errj == nil {
			return xi < xj
		}
		return out[i].Group < out[j].Group
	})
	return out
}

// RateByMissedPayments groups by the raw missed-payment count.
func (a *Analyzer) RateByMissedPayments() []RateRow {
	return a.RateByCategory("Missed_Payments", false)
}

// RateByEmployment groups by employment status, highest rate first.
func (a *Analyzer) RateByEmployment() []RateRow {
	return a.RateByCategory("Employment_Status", true)
}

// RateByCardType groups by credit card type, highest rate first.
func (a *Analyzer) RateByCardType() []RateRow {
	return a.RateByCategory("Credit_Card_Type", true)
}

// TopRiskFactors ranks numeric columns by Pearson correlation with the
// target, descending, excluding the target itself. n <= 0 returns the
// full ranking.
func (a *Analyzer) TopRiskFactors(n int) []RiskFactor {
	if _, ok := a.target(); !ok {
		return nil
	}
	var out []RiskFactor
	for _, name := range a.ds.NumericColumns() {
		if name == TargetColumn {
			continue
		}
		x, y := a.ds.PairedValues(name, TargetColumn)
		out = append(out, RiskFactor{Factor: name, Correlation: stats.Pearson(x, y)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Correlation > out[j].Correlation
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// profileColumns are the numeric columns summarized in the high-risk
// profile, in presentation order.
var profileColumns = []string{"Age", "Credit_Utilization", "Missed_Payments", "Debt_to_Income_Ratio"}

// HighRiskProfile summarizes the target-positive subset as markdown
// text: mean and standard deviation of the profile columns plus
// normalized distributions over employment status and card type.
func (a *Analyzer) HighRiskProfile() string {
	target, ok := a.target()
	if !ok {
		return "Column Delinquent_Account not found"
	}
	var positive []int
	for i := 0; i < a.ds.NumRows(); i++ {
		if !target.Null[i] && target.Nums[i] == 1 {
			positive = append(positive, i)
		}
	}
	if len(positive) == 0 {
		return "No high-risk customers found"
	}

	var b strings.Builder
	b.WriteString("### High-Risk Customer Profile\n\n")
	fmt.Fprintf(&b, "**Total high-risk customers:** %d\n\n", len(positive))

	for _, name := range profileColumns {
		col, ok := a.ds.Column(name)
		if !ok || col.Kind != dataset.KindNumeric {
			continue
		}
		var vals []float64
		for _, i := range positive {
			if !col.Null[i] {
				vals = append(vals, col.Nums[i])
			}
		}
		fmt.Fprintf(&b, "**Average %s:** %.2f (±%.2f)\n", name, stats.Mean(vals), stats.Std(vals))
	}

	b.WriteString("\n**Employment Status Distribution:**\n")
	a.writeDistribution(&b, "Employment_Status", positive)
	b.WriteString("\n**Credit Card Type Distribution:**\n")
	a.writeDistribution(&b, "Credit_Card_Type", positive)
	return b.String()
}

func (a *Analyzer) writeDistribution(b *strings.Builder, column string, rows []int) {
	col, ok := a.ds.Column(column)
	if !ok {
		return
	}
	counts := map[string]int{}
	total := 0
	for _, i := range rows {
		if col.Null[i] {
			continue
		}
		counts[col.CellString(i)]++
		total++
	}
	if total == 0 {
		return
	}
	type kv struct {
		key string
		n   int
	}
	ordered := make([]kv, 0, len(counts))
	for k, n := range counts {
		ordered = append(ordered, kv{k, n})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].n != ordered[j].n {
			return ordered[i].n > ordered[j].n
		}
		return ordered[i].key < ordered[j].key
	})
	for _, e := range ordered {
		fmt.Fprintf(b, "- %s: %.1f%%\n", e.key, float64(e.n)/float64(total)*100)
	}
}
