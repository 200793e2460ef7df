package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
)

func numCol(name string, vals []float64, null []bool) *dataset.Column {
	if null == nil {
		null = make([]bool, len(vals))
	}
	return &dataset.Column{Name: name, Kind: dataset.KindNumeric, Nums: vals, Null: null}
}

func catCol(name string, vals []string, null []bool) *dataset.Column {
	if null == nil {
		null = make([]bool, len(vals))
	}
	return &dataset.Column{Name: name, Kind: dataset.KindCategorical, Strs: vals, Null: null}
}

func TestBasicInfo(t *testing.T) {
	ds := dataset.New([]*dataset.Column{
		numCol("Age", []float64{20, 30, 40, 0}, []bool{false, false, false, true}),
		catCol("Card", []string{"Gold", "Basic", "Gold", "Basic"}, nil),
	})
	info := New(ds).BasicInfo()
	assert.Equal(t, 4, info.TotalRecords)
	assert.Equal(t, 2, info.TotalColumns)
	assert.Equal(t, 1, info.MissingValues["Age"])
	assert.Equal(t, 0, info.MissingValues["Card"])
	assert.Equal(t, "numeric", info.DataTypes["Age"])
	assert.Equal(t, "categorical", info.DataTypes["Card"])

	d, ok := info.Statistics["Age"]
	require.True(t, ok, "expected describe stats for Age")
	assert.Equal(t, 3, d.Count)
	assert.Equal(t, 30.0, d.Mean)
	assert.Equal(t, 20.0, d.Min)
	assert.Equal(t, 40.0, d.Max)
	assert.Equal(t, 30.0, d.Median)
	assert.InDelta(t, 10.0, d.Std, 1e-12, "sample std")
}

func TestBasicInfoEmptyDataset(t *testing.T) {
	info := New(dataset.New(nil)).BasicInfo()
	assert.Equal(t, 0, info.TotalRecords)
	assert.Equal(t, 0, info.TotalColumns)
}

func TestDetectMissingValues(t *testing.T) {
	// 500 records, 80 missing in the target-like column is 16%.
	nulls := make([]bool, 500)
	for i := 0; i < 80; i++ {
		nulls[i] = true
	}
	few := make([]bool, 500)
	for i := 0; i < 5; i++ {
		few[i] = true
	}
	ds := dataset.New([]*dataset.Column{
		numCol("Income", make([]float64, 500), nulls),
		numCol("Age", make([]float64, 500), few),
		numCol("Clean", make([]float64, 500), nil),
	})
	report := New(ds).DetectMissingValues()
	require.Len(t, report, 2, "clean columns must be excluded")
	assert.Equal(t, "Income", report[0].Column)
	assert.Equal(t, 80, report[0].Count)
	assert.Equal(t, 16.0, report[0].Percentage)
	assert.Equal(t, "Age", report[1].Column)
	assert.Equal(t, 1.0, report[1].Percentage)
}

func TestApplyImputationStrategies(t *testing.T) {
	build := func() *dataset.Dataset {
		return dataset.New([]*dataset.Column{
			numCol("N", []float64{1, 2, 0, 7}, []bool{false, false, true, false}),
			catCol("C", []string{"a", "b", "", "a"}, []bool{false, false, true, false}),
		})
	}

	t.Run("median", func(t *testing.T) {
		ds := build()
		require.NoError(t, New(ds).ApplyImputation("median", "N"))
		n, _ := ds.Column("N")
		assert.Equal(t, 2.0, n.Nums[2])
	})

	t.Run("mean", func(t *testing.T) {
		ds := build()
		require.NoError(t, New(ds).ApplyImputation("mean", "N"))
		n, _ := ds.Column("N")
		assert.InDelta(t, 10.0/3.0, n.Nums[2], 1e-12)
	})

	t.Run("mode on categorical", func(t *testing.T) {
		ds := build()
		require.NoError(t, New(ds).ApplyImputation("mode", "C"))
		c, _ := ds.Column("C")
		assert.Equal(t, "a", c.Strs[2])
	})

	t.Run("zero", func(t *testing.T) {
		ds := build()
		p := New(ds)
		require.NoError(t, p.ApplyImputation("zero", "N"))
		require.NoError(t, p.ApplyImputation("zero", "C"))
		n, _ := ds.Column("N")
		c, _ := ds.Column("C")
		assert.Equal(t, 0.0, n.Nums[2])
		assert.Equal(t, "0", c.Strs[2])
	})

	t.Run("unknown converts numeric to categorical", func(t *testing.T) {
		ds := build()
		require.NoError(t, New(ds).ApplyImputation("unknown", "N"))
		n, _ := ds.Column("N")
		assert.Equal(t, dataset.KindCategorical, n.Kind)
		assert.Equal(t, "Unknown", n.Strs[2])
	})

	t.Run("drop_column", func(t *testing.T) {
		ds := build()
		require.NoError(t, New(ds).ApplyImputation("drop_column", "N"))
		assert.False(t, ds.HasColumn("N"))
	})
}

func TestApplyImputationErrors(t *testing.T) {
	ds := dataset.New([]*dataset.Column{
		catCol("C", []string{"a", ""}, []bool{false, true}),
	})
	p := New(ds)

	var unk *UnknownStrategyError
	assert.ErrorAs(t, p.ApplyImputation("interpolate", "C"), &unk)
	var tm *TypeMismatchError
	assert.ErrorAs(t, p.ApplyImputation("mean", "C"), &tm)
	// the strategy check runs before the column lookup
	assert.ErrorAs(t, p.ApplyImputation("bogus", "Absent"), &unk)
	assert.NoError(t, p.ApplyImputation("median", "Absent"), "absent column is a no-op")
}

func TestDetectOutliers(t *testing.T) {
	vals := []float64{10, 11, 12, 13, 14, 15, 16, 17, 18, 100}
	ds := dataset.New([]*dataset.Column{numCol("N", vals, nil)})
	assert.Equal(t, []int{9}, New(ds).DetectOutliers("N"))
}

func TestDetectOutliersEdgeCases(t *testing.T) {
	ds := dataset.New([]*dataset.Column{
		numCol("Const", []float64{5, 5, 5, 5}, nil),
		catCol("C", []string{"a", "b", "c", "d"}, nil),
	})
	p := New(ds)
	assert.Empty(t, p.DetectOutliers("Const"), "constant column has no outliers")
	assert.Nil(t, p.DetectOutliers("C"), "categorical column yields nil")
	assert.Nil(t, p.DetectOutliers("Absent"), "absent column yields nil")
}

func TestSuggestImputation(t *testing.T) {
	assert.Equal(t, "median", SuggestImputation("Income", 2.5).Strategy)
	assert.Equal(t, "drop_column", SuggestImputation("Income", 60).Strategy)
	assert.Equal(t, "mode", SuggestImputation("Employment_Status", 3).Strategy)
}
