package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *Dataset {
	return New([]*Column{
		{Name: "Age", Kind: KindNumeric, Nums: []float64{30, 0, 50}, Null: []bool{false, true, false}},
		{Name: "Income", Kind: KindNumeric, Nums: []float64{1000, 2000, 3000}, Null: []bool{false, false, false}},
		{Name: "Card_Type", Kind: KindCategorical, Strs: []string{"Gold", "", "Gold"}, Null: []bool{false, true, false}},
	})
}

func TestColumnValuesSkipNulls(t *testing.T) {
	ds := sampleDataset()
	age, _ := ds.Column("Age")
	assert.Equal(t, []float64{30, 50}, age.Values())

	card, _ := ds.Column("Card_Type")
	assert.Len(t, card.Labels(), 2)
	assert.Equal(t, 2, card.ValueCounts()["Gold"])
}

func TestFillNumeric(t *testing.T) {
	ds := sampleDataset()
	age, _ := ds.Column("Age")
	age.FillNumeric(40)
	assert.Equal(t, 0, age.NullCount())
	assert.Equal(t, 40.0, age.Nums[1])
}

func TestFillStringConvertsNumericColumn(t *testing.T) {
	ds := sampleDataset()
	age, _ := ds.Column("Age")
	age.FillString("Unknown")
	require.Equal(t, KindCategorical, age.Kind, "column should become categorical")
	assert.Equal(t, []string{"30", "Unknown", "50"}, age.Strs)
	assert.Equal(t, 0, age.NullCount())
}

func TestDropColumnReindexes(t *testing.T) {
	ds := sampleDataset()
	assert.True(t, ds.DropColumn("Income"))
	assert.False(t, ds.DropColumn("Income"), "second drop should report false")
	assert.Equal(t, 2, ds.NumCols())

	card, ok := ds.Column("Card_Type")
	require.True(t, ok, "index should still resolve Card_Type")
	assert.Equal(t, "Card_Type", card.Name)
}

func TestRowString(t *testing.T) {
	ds := sampleDataset()
	assert.Equal(t, "30 | 1000 | Gold", ds.RowString(0))
	assert.Contains(t, ds.RowString(1), " | 2000 | ", "null cells should render empty")
}

func TestPairedValuesSkipsNullRows(t *testing.T) {
	ds := sampleDataset()
	x, y := ds.PairedValues("Age", "Income")
	require.Len(t, x, 2)
	require.Len(t, y, 2)
	assert.Equal(t, 50.0, x[1])
	assert.Equal(t, 3000.0, y[1])

	x, _ = ds.PairedValues("Age", "Card_Type")
	assert.Nil(t, x, "categorical column should yield no pairs")
}

func TestWithoutRows(t *testing.T) {
	ds := sampleDataset()
	out := ds.WithoutRows([]int{1, 99, -1})
	require.Equal(t, 2, out.NumRows())
	require.Equal(t, 3, out.NumCols())

	age, _ := out.Column("Age")
	assert.Equal(t, []float64{30, 50}, age.Nums)
	assert.Equal(t, 0, age.NullCount())
	// the source dataset is untouched
	assert.Equal(t, 3, ds.NumRows())
}

func TestExportCSV(t *testing.T) {
	ds := sampleDataset()
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(ds, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4, "expected header + 3 rows")
	assert.Equal(t, "Age,Income,Card_Type", lines[0])
	assert.Equal(t, ",2000,", lines[2], "null cells should export empty")
}

func TestDescriptions(t *testing.T) {
	d, ok := Description("Credit_Utilization")
	require.True(t, ok)
	assert.NotEmpty(t, d)

	_, ok = Description("Nope")
	assert.False(t, ok, "unknown columns have no description")

	cols := DescribedColumns()
	require.NotEmpty(t, cols)
	assert.Equal(t, "Customer_ID", cols[0])
}
