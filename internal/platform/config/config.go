package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config captures process level settings for the terminal.
type Config struct {
	LogLevel  string `env:"CONTABANCO_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"CONTABANCO_LOG_FORMAT" envDefault:"text"`
	// MetricsAddr enables the /metrics listener when set.
	MetricsAddr    string `env:"CONTABANCO_METRICS_ADDR"`
	CurrencySymbol string `env:"CONTABANCO_CURRENCY" envDefault:"R$"`
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the logger or shell cannot use.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("CONTABANCO_LOG_LEVEL: unknown level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("CONTABANCO_LOG_FORMAT: unknown format %q", c.LogFormat)
	}
	if strings.TrimSpace(c.CurrencySymbol) == "" {
		return fmt.Errorf("CONTABANCO_CURRENCY cannot be blank")
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
