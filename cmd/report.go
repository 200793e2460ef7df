package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/report"
)

var (
	reportDir  string
	reportNoAI bool
)

var reportCmd = &cobra.Command{
	Use:   "report <data-file>",
	Short: "Generate the EDA summary report",
	Long: `Assembles the six-section EDA summary document and writes it to
EDA_Report_<YYYYMMDD>.md. By default the missing-value treatment and
key-findings sections are narrated by the configured model; with
--no-ai they fall back to computed statistics.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}

		var res report.Results
		if !reportNoAI {
			a := newNarrative(ds)
			ctx := context.Background()
			res.MissingTreatment = a.MissingValueRecommendation(ctx)
			res.RiskFactors = a.RiskFactorsAnalysis(ctx)
		}

		dir := reportDir
		if dir == "" {
			dir = activeConfig().ReportDir
		}
		now := time.Now()
		path, err := report.Write(dir, report.Generate(ds, res, now), now)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Report written to %s\n", path)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportDir, "dir", "d", "", "output directory for the report (default from config)")
	reportCmd.Flags().BoolVar(&reportNoAI, "no-ai", false, "skip model narration and use computed fallbacks")
	rootCmd.AddCommand(reportCmd)
}
