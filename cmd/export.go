package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <data-file>",
	Short: "Re-export a dataset as CSV or XLSX",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportOut == "" {
			return fmt.Errorf("--out is required")
		}
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		lower := strings.ToLower(exportOut)
		switch {
		case strings.HasSuffix(lower, ".xlsx"):
			if err := dataset.ExportXLSX(ds, exportOut); err != nil {
				return err
			}
		case strings.HasSuffix(lower, ".csv"):
			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := dataset.ExportCSV(ds, f); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported output format %q (expected .csv or .xlsx)", exportOut)
		}
		fmt.Printf("✓ Exported %d rows to %s\n", ds.NumRows(), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (.csv or .xlsx)")
	rootCmd.AddCommand(exportCmd)
}
