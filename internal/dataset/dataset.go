package dataset

import (
	"strconv"
	"strings"
)

// Kind is the semantic type of a column.
type Kind int

const (
	KindNumeric Kind = iota
	KindCategorical
)

func (k Kind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "categorical"
}

// Column holds one named column with an explicit null mask. Numeric
// columns use Nums, categorical columns use Strs; Null is always
// row-aligned with the dataset.
type Column struct {
	Name string
	Kind Kind
	Nums []float64
	Strs []string
	Null []bool
}

// NullCount returns the number of null entries.
func (c *Column) NullCount() int {
	n := 0
	for _, miss := range c.Null {
		if miss {
			n++
		}
	}
	return n
}

// Values returns the non-null numeric values in row order.
// Empty for categorical columns.
func (c *Column) Values() []float64 {
	if c.Kind != KindNumeric {
		return nil
	}
	out := make([]float64, 0, len(c.Nums))
	for i, v := range c.Nums {
		if !c.Null[i] {
			out = append(out, v)
		}
	}
	return out
}

// Labels returns the non-null string values in row order.
// Empty for numeric columns.
func (c *Column) Labels() []string {
	if c.Kind != KindCategorical {
		return nil
	}
	out := make([]string, 0, len(c.Strs))
	for i, v := range c.Strs {
		if !c.Null[i] {
			out = append(out, v)
		}
	}
	return out
}

// ValueCounts returns occurrence counts of non-null values rendered as
// strings, for both column kinds.
func (c *Column) ValueCounts() map[string]int {
	out := map[string]int{}
	for i := range c.Null {
		if c.Null[i] {
			continue
		}
		out[c.CellString(i)]++
	}
	return out
}

// CellString renders the value at row i; null cells render empty.
func (c *Column) CellString(i int) string {
	if c.Null[i] {
		return ""
	}
	if c.Kind == KindNumeric {
		return strconv.FormatFloat(c.Nums[i], 'f', -1, 64)
	}
	return c.Strs[i]
}

// FillNumeric sets every null cell to v. Only valid on numeric columns.
func (c *Column) FillNumeric(v float64) {
	for i := range c.Null {
		if c.Null[i] {
			c.Nums[i] = v
			c.Null[i] = false
		}
	}
}

// FillString sets every null cell to v, converting a numeric column to
// categorical first (matching how a mixed fill changes a column's dtype).
func (c *Column) FillString(v string) {
	if c.Kind == KindNumeric {
		c.ToCategorical()
	}
	for i := range c.Null {
		if c.Null[i] {
			c.Strs[i] = v
			c.Null[i] = false
		}
	}
}

// ToCategorical converts a numeric column to categorical in place,
// formatting each non-null value.
func (c *Column) ToCategorical() {
	if c.Kind == KindCategorical {
		return
	}
	strs := make([]string, len(c.Nums))
	for i, v := range c.Nums {
		if !c.Null[i] {
			strs[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	c.Kind = KindCategorical
	c.Strs = strs
	c.Nums = nil
}

// Dataset is a table of named, typed columns sharing one row count.
// It is owned by a single pipeline run; mutation happens only through
// the imputation and drop operations.
type Dataset struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// New builds a dataset from pre-populated columns. All columns must be
// row-aligned; rows is taken from the first column.
func New(cols []*Column) *Dataset {
	ds := &Dataset{index: make(map[string]int, len(cols))}
	for _, c := range cols {
		ds.index[c.Name] = len(ds.cols)
		ds.cols = append(ds.cols, c)
	}
	if len(cols) > 0 {
		ds.rows = len(cols[0].Null)
	}
	return ds
}

// NumRows returns the record count.
func (ds *Dataset) NumRows() int { return ds.rows }

// NumCols returns the column count.
func (ds *Dataset) NumCols() int { return len(ds.cols) }

// ColumnNames returns column names in table order.
func (ds *Dataset) ColumnNames() []string {
	out := make([]string, len(ds.cols))
	for i, c := range ds.cols {
		out[i] = c.Name
	}
	return out
}

// Column looks a column up by name.
func (ds *Dataset) Column(name string) (*Column, bool) {
	i, ok := ds.index[name]
	if !ok {
		return nil, false
	}
	return ds.cols[i], true
}

// HasColumn reports whether the named column exists.
func (ds *Dataset) HasColumn(name string) bool {
	_, ok := ds.index[name]
	return ok
}

// Columns returns the columns in table order.
func (ds *Dataset) Columns() []*Column { return ds.cols }

// NumericColumns returns names of numeric columns in table order.
func (ds *Dataset) NumericColumns() []string {
	var out []string
	for _, c := range ds.cols {
		if c.Kind == KindNumeric {
			out = append(out, c.Name)
		}
	}
	return out
}

// CategoricalColumns returns names of categorical columns in table order.
func (ds *Dataset) CategoricalColumns() []string {
	var out []string
	for _, c := range ds.cols {
		if c.Kind == KindCategorical {
			out = append(out, c.Name)
		}
	}
	return out
}

// DropColumn removes the named column. Reports whether it existed.
func (ds *Dataset) DropColumn(name string) bool {
	i, ok := ds.index[name]
	if !ok {
		return false
	}
	ds.cols = append(ds.cols[:i], ds.cols[i+1:]...)
	delete(ds.index, name)
	for j := i; j < len(ds.cols); j++ {
		ds.index[ds.cols[j].Name] = j
	}
	return true
}

// WithoutRows returns a copy of the dataset with the given row indices
// removed. Out-of-range indices are ignored.
func (ds *Dataset) WithoutRows(drop []int) *Dataset {
	skip := make(map[int]bool, len(drop))
	for _, i := range drop {
		if i >= 0 && i < ds.rows {
			skip[i] = true
		}
	}
	cols := make([]*Column, len(ds.cols))
	for j, c := range ds.cols {
		nc := &Column{Name: c.Name, Kind: c.Kind}
		for i := 0; i < ds.rows; i++ {
			if skip[i] {
				continue
			}
			if c.Kind == KindNumeric {
				nc.Nums = append(nc.Nums, c.Nums[i])
			} else {
				nc.Strs = append(nc.Strs, c.Strs[i])
			}
			nc.Null = append(nc.Null, c.Null[i])
		}
		cols[j] = nc
	}
	return New(cols)
}

// Row renders row i as strings in column order. Null cells are empty.
func (ds *Dataset) Row(i int) []string {
	out := make([]string, len(ds.cols))
	for j, c := range ds.cols {
		out[j] = c.CellString(i)
	}
	return out
}

// RowString renders row i as a single pipe-joined line.
func (ds *Dataset) RowString(i int) string {
	return strings.Join(ds.Row(i), " | ")
}

// PairedValues returns row-aligned non-null numeric pairs from columns
// a and b, skipping any row where either side is null.
func (ds *Dataset) PairedValues(a, b string) (x, y []float64) {
	ca, ok := ds.Column(a)
	if !ok || ca.Kind != KindNumeric {
		return nil, nil
	}
	cb, ok := ds.Column(b)
	if !ok || cb.Kind != KindNumeric {
		return nil, nil
	}
	for i := 0; i < ds.rows; i++ {
		if ca.Null[i] || cb.Null[i] {
			continue
		}
		x = append(x, ca.Nums[i])
		y = append(y, cb.Nums[i])
	}
	return x, y
}
