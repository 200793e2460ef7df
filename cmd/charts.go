package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/charts"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/risk"
)

var (
	chartDir    string
	chartColumn string
)

var chartsCmd = &cobra.Command{
	Use:   "charts <data-file>",
	Short: "Render missing-value, distribution, rate, and correlation charts",
	Long: `Writes PNG charts for missing values, column distributions, and
delinquency rates, and an interactive HTML correlation heatmap.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		dir := chartDir
		if dir == "" {
			dir = activeConfig().ChartDir
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		if spec := charts.MissingValueChart(ds); spec != nil {
			if err := writePNG(filepath.Join(dir, "missing_values.png"), spec); err != nil {
				return err
			}
		}

		columns := ds.ColumnNames()
		if chartColumn != "" {
			columns = []string{chartColumn}
		}
		for _, name := range columns {
			spec := charts.DistributionChart(ds, name)
			if spec == nil {
				if chartColumn != "" {
					return fmt.Errorf("column %s not found or empty", name)
				}
				continue
			}
			path := filepath.Join(dir, "dist_"+sanitize(name)+".png")
			var err error
			if spec.Histogram != nil {
				err = renderToFile(path, func() ([]byte, error) { return charts.RenderHistogram(spec.Histogram) })
			} else {
				err = renderToFile(path, func() ([]byte, error) { return charts.RenderBar(spec.Bar) })
			}
			if err != nil {
				return err
			}
		}

		a := risk.New(ds)
		if rows, err := a.RateByUtilization(); err == nil && len(rows) > 0 {
			if err := writeRateChart(dir, "rate_by_utilization.png", "Delinquency by Credit Utilization", rows); err != nil {
				return err
			}
		}
		if rows := a.RateByAge(); len(rows) > 0 {
			if err := writeRateChart(dir, "rate_by_age.png", "Delinquency by Age Group", rows); err != nil {
				return err
			}
		}

		if spec := charts.CorrelationHeatmap(ds); spec != nil {
			path := filepath.Join(dir, "correlation_heatmap.html")
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := charts.RenderHeatmap(spec, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote %s\n", path)
		}
		return nil
	},
}

func writePNG(path string, spec *charts.BarSpec) error {
	return renderToFile(path, func() ([]byte, error) { return charts.RenderBar(spec) })
}

func writeRateChart(dir, name, title string, rows []risk.RateRow) error {
	labels := make([]string, len(rows))
	rates := make([]float64, len(rows))
	for i, r := range rows {
		labels[i] = r.Group
		rates[i] = r.Rate
	}
	return writePNG(filepath.Join(dir, name), charts.RateChart(title, labels, rates))
}

func renderToFile(path string, render func() ([]byte, error)) error {
	png, err := render()
	if err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote %s\n", path)
	return nil
}

func sanitize(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

func init() {
	chartsCmd.Flags().StringVarP(&chartDir, "dir", "d", "", "output directory for charts (default from config)")
	chartsCmd.Flags().StringVarP(&chartColumn, "column", "c", "", "render a single column's distribution")
	rootCmd.AddCommand(chartsCmd)
}
