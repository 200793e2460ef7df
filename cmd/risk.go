package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/risk"
)

var riskTopN int

var riskCmd = &cobra.Command{
	Use:   "risk <data-file>",
	Short: "Compute delinquency rates by segment and rank risk factors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		a := risk.New(ds)

		overall, ok := a.Overall()
		if !ok {
			return fmt.Errorf("column %s not found in the dataset", risk.TargetColumn)
		}
		fmt.Printf("Overall delinquency rate: %.1f%% (%d of %d accounts)\n\n",
			overall.Rate, overall.Delinquent, overall.Total)

		if rows, err := a.RateByUtilization(); err != nil {
			fmt.Fprintf(os.Stderr, "⚠ Warning: %v\n", err)
		} else if len(rows) > 0 {
			fmt.Println(risk.FormatRateTable("Delinquency by Credit Utilization", rows))
		}
		if rows := a.RateByAge(); len(rows) > 0 {
			fmt.Println(risk.FormatRateTable("Delinquency by Age Group", rows))
		}
		if rows := a.RateByMissedPayments(); len(rows) > 0 {
			fmt.Println(risk.FormatRateTable("Delinquency by Missed Payments", rows))
		}
		if rows := a.RateByEmployment(); len(rows) > 0 {
			fmt.Println(risk.FormatRateTable("Delinquency by Employment Status", rows))
		}
		if rows := a.RateByCardType(); len(rows) > 0 {
			fmt.Println(risk.FormatRateTable("Delinquency by Card Type", rows))
		}

		if factors := a.TopRiskFactors(riskTopN); len(factors) > 0 {
			fmt.Println(risk.FormatRiskFactors(factors))
		}

		fmt.Println(a.HighRiskProfile())
		return nil
	},
}

func init() {
	riskCmd.Flags().IntVarP(&riskTopN, "top", "n", 5, "number of correlation-ranked risk factors to show (0 = all)")
	rootCmd.AddCommand(riskCmd)
}
