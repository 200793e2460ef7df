package dataset

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExportCSV writes the current table, including any imputed values, as
// CSV with a header row. Null cells are written empty.
func ExportCSV(ds *Dataset, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.ColumnNames()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < ds.NumRows(); i++ {
		if err := cw.Write(ds.Row(i)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportXLSX writes the current table to an Excel workbook at path.
func ExportXLSX(ds *Dataset, path string) error {
	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Processed_Data"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	for j, name := range ds.ColumnNames() {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for i := 0; i < ds.NumRows(); i++ {
		for j, c := range ds.Columns() {
			if c.Null[i] {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			var v any
			if c.Kind == KindNumeric {
				v = c.Nums[i]
			} else {
				v = c.Strs[i]
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
