package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var narrateCmd = &cobra.Command{
	Use:   "narrate",
	Short: "Narrate dataset findings through a local Ollama model",
	Long: `Each subcommand builds a prompt from computed statistics and sends it
to the configured Ollama endpoint. When the endpoint is unreachable the
commands print a fallback message instead of failing.`,
}

var narrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether the Ollama endpoint is reachable and list its models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		a := newNarrative(nil)
		ok, models := a.CheckAvailability(context.Background())
		if !ok {
			fmt.Printf("✗ Ollama is not reachable at %s\n", c.OllamaHost)
			fmt.Println("  Run 'ollama serve' in a terminal.")
			return nil
		}
		fmt.Printf("✓ Ollama is reachable at %s\n", c.OllamaHost)
		if len(models) == 0 {
			fmt.Println("  No models installed. Run 'ollama pull " + c.Model + "'.")
			return nil
		}
		fmt.Println("  Models:", strings.Join(models, ", "))
		return nil
	},
}

var narrateSummaryCmd = &cobra.Command{
	Use:   "summary <data-file>",
	Short: "Narrate dataset-level statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		fmt.Println(newNarrative(ds).DatasetSummary(context.Background()))
		return nil
	},
}

var narrateColumnCmd = &cobra.Command{
	Use:   "column <data-file> <column>",
	Short: "Narrate one column's statistics",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		fmt.Println(newNarrative(ds).ColumnSummary(context.Background(), args[1]))
		return nil
	},
}

var narrateMissingCmd = &cobra.Command{
	Use:   "missing <data-file>",
	Short: "Recommend a treatment strategy per missing column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		fmt.Println(newNarrative(ds).MissingValueRecommendation(context.Background()))
		return nil
	},
}

var narrateRisksCmd = &cobra.Command{
	Use:   "risks <data-file>",
	Short: "Narrate the correlation-ranked risk factors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		fmt.Println(newNarrative(ds).RiskFactorsAnalysis(context.Background()))
		return nil
	},
}

var narrateAskCmd = &cobra.Command{
	Use:   "ask <data-file> <question...>",
	Short: "Ask a free-form question about the dataset",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		question := strings.Join(args[1:], " ")
		fmt.Println(newNarrative(ds).Ask(context.Background(), question))
		return nil
	},
}

func init() {
	narrateCmd.AddCommand(narrateStatusCmd)
	narrateCmd.AddCommand(narrateSummaryCmd)
	narrateCmd.AddCommand(narrateColumnCmd)
	narrateCmd.AddCommand(narrateMissingCmd)
	narrateCmd.AddCommand(narrateRisksCmd)
	narrateCmd.AddCommand(narrateAskCmd)
	rootCmd.AddCommand(narrateCmd)
}
