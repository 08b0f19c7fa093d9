package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/bitconv"
	"github.com/hupe1980/bitconv/codec"
)

// Config holds bitconv CLI configuration.
type Config struct {
	// Defaults for convert
	Bits      int    `yaml:"bits"`
	InputType string `yaml:"input_type"`
	Output    string `yaml:"output"` // text, json
	Codec     string `yaml:"codec"`  // json, go-json

	Logging LoggingConfig `yaml:"logging"`
	Batch   BatchConfig   `yaml:"batch"`
}

// LoggingConfig configures diagnostic logging to stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// BatchConfig configures the batch command.
type BatchConfig struct {
	Workers    int     `yaml:"workers"`
	RatePerSec float64 `yaml:"rate_per_sec"`
	Burst      int     `yaml:"burst"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Bits:      8,
		InputType: "signed",
		Output:    "text",
		Codec:     "go-json",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if _, err := bitconv.BitWidthFromInt(c.Bits); err != nil {
		return fmt.Errorf("config: bits: %w", err)
	}
	if _, err := bitconv.ParseNotation(c.InputType); err != nil {
		return fmt.Errorf("config: input_type: %w", err)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("config: output: unknown format %q", c.Output)
	}
	if _, ok := codec.ByName(c.Codec); !ok {
		return fmt.Errorf("config: codec: unknown codec %q", c.Codec)
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("config: logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: logging.format: unknown format %q", c.Logging.Format)
	}
	if c.Batch.Workers < 0 || c.Batch.Burst < 0 || c.Batch.RatePerSec < 0 {
		return fmt.Errorf("config: batch: values must not be negative")
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, err
	}
	return level, nil
}
