package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadError reports a failed dataset load: missing source, unreadable
// format, or a parse failure.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// paymentLabels maps the three-valued payment history labels onto
// integer codes. Anything else (including blanks) stays null.
var paymentLabels = map[string]float64{
	"On-time": 0,
	"Late":    1,
	"Missed":  2,
}

// monthColumns are the ordinal payment-history columns rewritten at load.
var monthColumns = map[string]bool{
	"Month_1": true, "Month_2": true, "Month_3": true,
	"Month_4": true, "Month_5": true, "Month_6": true,
}

// Load reads a spreadsheet into a Dataset, choosing the parser by file
// extension (.xlsx or .csv).
func Load(path string) (*Dataset, error) {
	if path == "" {
		return nil, &LoadError{Err: errors.New("no data source provided")}
	}
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xlsx"):
		return LoadXLSX(path)
	case strings.HasSuffix(lower, ".csv"):
		return LoadCSV(path)
	}
	return nil, &LoadError{Path: path, Err: errors.New("unsupported format (expected .xlsx or .csv)")}
}

// LoadXLSX reads the first sheet of an Excel workbook.
func LoadXLSX(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Path: path, Err: errors.New("workbook has no sheets")}
	}
	var header []string
	var records [][]string
	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		vals, err := rows.Columns()
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		if header == nil {
			header = vals
			continue
		}
		records = append(records, vals)
	}
	if err := rows.Error(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	ds, err := build(header, records)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return ds, nil
}

// LoadCSV reads a comma-separated file.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Path: path, Err: errors.New("empty file")}
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	var records [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &LoadError{Path: path, Err: fmt.Errorf("read row %d: %w", len(records)+2, err)}
		}
		row := make([]string, len(rec))
		copy(row, rec)
		records = append(records, row)
	}
	ds, err := build(header, records)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return ds, nil
}

// build infers column kinds from raw cells and rewrites the payment
// history columns to their integer codes.
func build(header []string, records [][]string) (*Dataset, error) {
	if len(header) == 0 {
		return nil, errors.New("no header row")
	}
	names := make([]string, len(header))
	seen := map[string]bool{}
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			return nil, fmt.Errorf("column %d has an empty name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
		names[i] = name
	}

	nrows := len(records)
	cols := make([]*Column, len(names))
	for j, name := range names {
		cells := make([]string, nrows)
		for i, rec := range records {
			if j < len(rec) {
				cells[i] = strings.TrimSpace(rec[j])
			}
		}
		if monthColumns[name] {
			cols[j] = buildMonthColumn(name, cells)
			continue
		}
		cols[j] = buildColumn(name, cells)
	}
	return New(cols), nil
}

// buildMonthColumn applies the label mapping; already-numeric values
// pass through and unmapped values stay null.
func buildMonthColumn(name string, cells []string) *Column {
	c := &Column{Name: name, Kind: KindNumeric, Nums: make([]float64, len(cells)), Null: make([]bool, len(cells))}
	for i, v := range cells {
		if code, ok := paymentLabels[v]; ok {
			c.Nums[i] = code
			continue
		}
		if x, err := strconv.ParseFloat(v, 64); err == nil && v != "" {
			c.Nums[i] = x
			continue
		}
		c.Null[i] = true
	}
	return c
}

// buildColumn infers numeric vs categorical: a column is numeric when
// every non-blank cell parses as a number.
func buildColumn(name string, cells []string) *Column {
	numeric := false
	for _, v := range cells {
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			numeric = false
			break
		}
		numeric = true
	}
	c := &Column{Name: name, Null: make([]bool, len(cells))}
	if numeric {
		c.Kind = KindNumeric
		c.Nums = make([]float64, len(cells))
		for i, v := range cells {
			if v == "" {
				c.Null[i] = true
				continue
			}
			c.Nums[i], _ = strconv.ParseFloat(v, 64)
		}
		return c
	}
	c.Kind = KindCategorical
	c.Strs = make([]string, len(cells))
	for i, v := range cells {
		if v == "" {
			c.Null[i] = true
			continue
		}
		c.Strs[i] = v
	}
	return c
}

// ExpectedColumns lists the columns the delinquency dataset is expected
// to carry. Missing ones are reported as warnings, not load failures.
func ExpectedColumns() []string {
	out := make([]string, 0, len(columnDescriptions))
	for _, d := range descriptionOrder {
		out = append(out, d)
	}
	return out
}

// ValidateSchema returns the expected columns absent from ds.
func ValidateSchema(ds *Dataset) []string {
	var missing []string
	for _, name := range ExpectedColumns() {
		if !ds.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
