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
	imputeStrategy string
	imputeColumn   string
	imputeSuggest  bool
	imputeOut      string
)

var imputeCmd = &cobra.Command{
	Use:   "impute <data-file>",
	Short: "Fill or drop missing values in a column",
	Long: `Applies an imputation strategy to one column and writes the processed
dataset back out. Strategies: drop_column, median, mean, mode, zero, unknown.

With --suggest, prints a recommended strategy per missing column instead
of modifying anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		p := profile.New(ds)

		if imputeSuggest {
			report := p.DetectMissingValues()
			if len(report) == 0 {
				fmt.Println("No missing values in the dataset.")
				return nil
			}
			for _, mv := range report {
				s := profile.SuggestImputation(mv.Column, mv.Percentage)
				fmt.Printf("%-24s %-12s %s\n", mv.Column, s.Strategy, s.Rationale)
			}
			return nil
		}

		if imputeColumn == "" || imputeStrategy == "" {
			return fmt.Errorf("--column and --strategy are required (or use --suggest)")
		}
		if err := p.ApplyImputation(imputeStrategy, imputeColumn); err != nil {
			return err
		}
		fmt.Printf("✓ Applied %s to %s\n", imputeStrategy, imputeColumn)

		if imputeOut == "" {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(imputeOut), ".xlsx") {
			if err := dataset.ExportXLSX(ds, imputeOut); err != nil {
				return err
			}
		} else {
			f, err := os.Create(imputeOut)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := dataset.ExportCSV(ds, f); err != nil {
				return err
			}
		}
		fmt.Printf("✓ Wrote processed dataset to %s\n", imputeOut)
		return nil
	},
}

func init() {
	imputeCmd.Flags().StringVarP(&imputeStrategy, "strategy", "s", "", "imputation strategy")
	imputeCmd.Flags().StringVarP(&imputeColumn, "column", "c", "", "column to treat")
	imputeCmd.Flags().BoolVar(&imputeSuggest, "suggest", false, "print suggested strategies instead of applying")
	imputeCmd.Flags().StringVarP(&imputeOut, "out", "o", "", "write the processed dataset to this file (.csv or .xlsx)")
	rootCmd.AddCommand(imputeCmd)
}
