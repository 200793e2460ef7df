package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/profile"
)

var (
	outlierShowRows bool
	outlierOut      string
)

var outliersCmd = &cobra.Command{
	Use:   "outliers <data-file> <column>",
	Short: "Detect IQR outliers in a numeric column",
	Long: `Flags rows whose value falls outside 1.5x the interquartile range.
With --out, writes a copy of the dataset with the flagged rows removed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		column := args[1]
		if !ds.HasColumn(column) {
			return fmt.Errorf("column %s not found in the dataset", column)
		}
		rows := profile.New(ds).DetectOutliers(column)
		if len(rows) == 0 {
			fmt.Printf("No outliers detected in %s.\n", column)
			return nil
		}
		fmt.Printf("%d outliers in %s (%.2f%% of %d records)\n",
			len(rows), column, float64(len(rows))/float64(ds.NumRows())*100, ds.NumRows())
		if outlierShowRows {
			col, _ := ds.Column(column)
			for _, i := range rows {
				fmt.Printf("  row %d: %s = %s\n", i+1, column, col.CellString(i))
			}
		}
		if outlierOut == "" {
			return nil
		}
		trimmed := ds.WithoutRows(rows)
		if strings.HasSuffix(strings.ToLower(outlierOut), ".xlsx") {
			if err := dataset.ExportXLSX(trimmed, outlierOut); err != nil {
				return err
			}
		} else {
			f, err := os.Create(outlierOut)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := dataset.ExportCSV(trimmed, f); err != nil {
				return err
			}
		}
		fmt.Printf("✓ Wrote %d rows (outliers removed) to %s\n", trimmed.NumRows(), outlierOut)
		return nil
	},
}

func init() {
	outliersCmd.Flags().BoolVar(&outlierShowRows, "rows", false, "print each outlying row")
	outliersCmd.Flags().StringVarP(&outlierOut, "out", "o", "", "write the dataset without the outlying rows (.csv or .xlsx)")
	rootCmd.AddCommand(outliersCmd)
}
