package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/pipeline"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/profile"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/report"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/risk"
)

var analyzeDir string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <data-file>",
	Short: "Run the full analysis pipeline and write the report",
	Long: `Loads the dataset, profiles it, computes risk statistics, narrates the
findings through the configured model, and writes the EDA summary
report. Narration degrades to computed fallbacks when Ollama is down.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		run := pipeline.New(ds)
		fmt.Printf("Session %s: %d records, %d columns\n", run.ID, ds.NumRows(), ds.NumCols())

		p := profile.New(ds)
		if missing := p.DetectMissingValues(); len(missing) > 0 {
			fmt.Printf("Missing values in %d columns\n", len(missing))
		} else {
			fmt.Println("No missing values detected")
		}

		a := risk.New(ds)
		if overall, ok := a.Overall(); ok {
			fmt.Printf("Overall delinquency rate: %.1f%% (%d of %d)\n",
				overall.Rate, overall.Delinquent, overall.Total)
		}

		ctx := context.Background()
		n := newNarrative(ds)
		run.SetResult("missing_treatment", n.MissingValueRecommendation(ctx))
		run.SetResult("risk_factors", n.RiskFactorsAnalysis(ctx))

		dir := analyzeDir
		if dir == "" {
			dir = activeConfig().ReportDir
		}
		now := time.Now()
		res := report.Results{
			MissingTreatment: run.Result("missing_treatment"),
			RiskFactors:      run.Result("risk_factors"),
		}
		path, err := report.Write(dir, report.Generate(ds, res, now), now)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Report written to %s\n", path)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeDir, "dir", "d", "", "output directory for the report (default from config)")
	rootCmd.AddCommand(analyzeCmd)
}
