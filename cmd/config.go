package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/burhanudinera2018/gellium-delinquency-analysis-v1/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Gellium configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		fmt.Printf("ollama_host: %s\n", c.OllamaHost)
		fmt.Printf("model: %s\n", c.Model)
		fmt.Printf("temperature: %.3f\n", c.Temperature)
		fmt.Printf("probe_timeout_sec: %d\n", c.ProbeTimeoutSec)
		fmt.Printf("summary_timeout_sec: %d\n", c.SummaryTimeoutSec)
		fmt.Printf("chat_timeout_sec: %d\n", c.ChatTimeoutSec)
		fmt.Printf("retry_max_attempts: %d\n", c.RetryMaxAttempts)
		fmt.Printf("retry_base_delay_ms: %d\n", c.RetryBaseDelayMs)
		fmt.Printf("retry_max_delay_ms: %d\n", c.RetryMaxDelayMs)
		fmt.Printf("report_dir: %s\n", c.ReportDir)
		fmt.Printf("chart_dir: %s\n", c.ChartDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "ollama_host":
			cfg.OllamaHost = val
		case "model":
			cfg.Model = val
		case "temperature":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 || f > 2 {
				return fmt.Errorf("invalid temperature: %s (use a value in (0, 2])", val)
			}
			cfg.Temperature = f
		case "probe_timeout_sec":
			return setIntField(&cfg.ProbeTimeoutSec, key, val)
		case "summary_timeout_sec":
			return setIntField(&cfg.SummaryTimeoutSec, key, val)
		case "chat_timeout_sec":
			return setIntField(&cfg.ChatTimeoutSec, key, val)
		case "retry_max_attempts":
			return setIntField(&cfg.RetryMaxAttempts, key, val)
		case "retry_base_delay_ms":
			return setIntField(&cfg.RetryBaseDelayMs, key, val)
		case "retry_max_delay_ms":
			return setIntField(&cfg.RetryMaxDelayMs, key, val)
		case "report_dir":
			cfg.ReportDir = val
		case "chart_dir":
			cfg.ChartDir = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func setIntField(dst *int, key, val string) error {
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid %s: %s (use a positive integer)", key, val)
	}
	*dst = n
	if err := cfgpkg.Save(cfg, cfgFile); err != nil {
		return err
	}
	fmt.Printf("✓ Saved %s\n", key)
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
