package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	OllamaHost string `mapstructure:"ollama_host" yaml:"ollama_host"`
	Model      string `mapstructure:"model" yaml:"model"`

	Temperature float64 `mapstructure:"temperature" yaml:"temperature"`

	ProbeTimeoutSec   int `mapstructure:"probe_timeout_sec" yaml:"probe_timeout_sec"`
	SummaryTimeoutSec int `mapstructure:"summary_timeout_sec" yaml:"summary_timeout_sec"`
	ChatTimeoutSec    int `mapstructure:"chat_timeout_sec" yaml:"chat_timeout_sec"`

	RetryMaxAttempts int `mapstructure:"retry_max_attempts" yaml:"retry_max_attempts"`
	RetryBaseDelayMs int `mapstructure:"retry_base_delay_ms" yaml:"retry_base_delay_ms"`
	RetryMaxDelayMs  int `mapstructure:"retry_max_delay_ms" yaml:"retry_max_delay_ms"`

	ReportDir string `mapstructure:"report_dir" yaml:"report_dir"`
	ChartDir  string `mapstructure:"chart_dir" yaml:"chart_dir"`
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	// A .env file in the working directory feeds the env layer.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GELLIUM")
	v.AutomaticEnv()

	v.SetDefault("ollama_host", "http://127.0.0.1:11434")
	v.SetDefault("model", "mistral:latest")
	v.SetDefault("temperature", 0.7)
	v.SetDefault("probe_timeout_sec", 2)
	v.SetDefault("summary_timeout_sec", 30)
	v.SetDefault("chat_timeout_sec", 130)
	v.SetDefault("retry_max_attempts", 2)
	v.SetDefault("retry_base_delay_ms", 200)
	v.SetDefault("retry_max_delay_ms", 1000)
	v.SetDefault("report_dir", ".")
	v.SetDefault("chart_dir", ".")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".gellium")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration to cfgFile, or to
// ~/.gellium/config.yaml when cfgFile is empty.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".gellium")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
