package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/ai"
	cfgpkg "github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/config"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/dataset"
	"github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/narrative"
)

var (
	// Global flags
	cfgFile        string
	flagOllamaHost string
	flagModel      string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "gellium",
	Short: "Gellium delinquency analysis: AI-assisted EDA for credit card delinquency data",
	Long:  `Gellium loads a credit-delinquency spreadsheet, profiles it (schema, missing values, outliers), computes risk-factor statistics, narrates findings through a local Ollama model, and assembles an EDA summary report.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.gellium/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagOllamaHost, "ollama-host", "", "Ollama base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "model tag to use for narrative analysis (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("ollama-host") && flagOllamaHost != "" {
		cfg.OllamaHost = flagOllamaHost
	}
	if f.Changed("model") && flagModel != "" {
		cfg.Model = flagModel
	}
}

func activeConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	c, _ := cfgpkg.Load("")
	if c == nil {
		c = &cfgpkg.Global{OllamaHost: "http://127.0.0.1:11434", Model: "mistral:latest"}
	}
	return c
}

func newAIClient() *ai.Client {
	c := activeConfig()
	return ai.NewClient(
		c.OllamaHost,
		c.RetryMaxAttempts,
		time.Duration(c.RetryBaseDelayMs)*time.Millisecond,
		time.Duration(c.RetryMaxDelayMs)*time.Millisecond,
	)
}

func newNarrative(ds *dataset.Dataset) *narrative.Analyzer {
	c := activeConfig()
	return narrative.New(ds, newAIClient(), narrative.Options{
		Model:          c.Model,
		Temperature:    c.Temperature,
		ProbeTimeout:   time.Duration(c.ProbeTimeoutSec) * time.Second,
		SummaryTimeout: time.Duration(c.SummaryTimeoutSec) * time.Second,
		AskTimeout:     time.Duration(c.ChatTimeoutSec) * time.Second,
	})
}

func loadDataset(path string) (*dataset.Dataset, error) {
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	if missing := dataset.ValidateSchema(ds); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "⚠ Warning: expected columns missing: %v\n", missing)
	}
	return ds, nil
}
