package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/profile"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <data-file>",
	Short: "Load a dataset and print schema, statistics, and missing values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		p := profile.New(ds)
		info := p.BasicInfo()

		fmt.Printf("Dataset: %s\n", args[0])
		fmt.Printf("Records: %d   Columns: %d\n\n", info.TotalRecords, info.TotalColumns)
		fmt.Println(profile.FormatStatistics(info))

		report := p.DetectMissingValues()
		if len(report) == 0 {
			fmt.Println("\nNo missing values detected.")
			return nil
		}
		fmt.Println("\nMissing values:")
		fmt.Println(profile.FormatMissing(report))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
