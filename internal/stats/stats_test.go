package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 3.0, Mean([]float64{1, 2, 3, 4, 5}))
	assert.Equal(t, 0.0, Mean(nil))
}

func TestStdIsSampleStd(t *testing.T) {
	// variance of 1..5 with n-1 denominator is 2.5
	assert.InDelta(t, math.Sqrt(2.5), Std([]float64{1, 2, 3, 4, 5}), 1e-12)
	assert.Equal(t, 0.0, Std([]float64{7}))
	assert.Equal(t, 0.0, Std([]float64{3, 3, 3}))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3, 2, 4}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.Equal(t, 0.0, Median(nil))
}

func TestModeTieBreaksLow(t *testing.T) {
	assert.Equal(t, 2.0, Mode([]float64{3, 2, 2, 3, 1}))
	assert.Equal(t, 5.0, Mode([]float64{5}))
}

func TestQuantileInterpolates(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1.75, Quantile(sorted, 0.25), 1e-12)
	assert.InDelta(t, 2.5, Quantile(sorted, 0.5), 1e-12)
	assert.InDelta(t, 3.25, Quantile(sorted, 0.75), 1e-12)
	assert.Equal(t, 1.0, Quantile(sorted, 0))
	assert.Equal(t, 4.0, Quantile(sorted, 1))
}

func TestQuantileOfUnsorted(t *testing.T) {
	assert.InDelta(t, 2.5, QuantileOf([]float64{4, 1, 3, 2}, 0.5), 1e-12)
}

func TestPearson(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	up := []float64{2, 4, 6, 8, 10}
	down := []float64{10, 8, 6, 4, 2}
	assert.InDelta(t, 1.0, Pearson(x, up), 1e-12)
	assert.InDelta(t, -1.0, Pearson(x, down), 1e-12)

	// zero variance on either side yields no correlation
	assert.Equal(t, 0.0, Pearson(x, []float64{3, 3, 3, 3, 3}))
	assert.Equal(t, 0.0, Pearson([]float64{1}, []float64{2}))
}
