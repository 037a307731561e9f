// Package config loads the CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StdoutOutput selects standard output as the driver output.
const StdoutOutput = "-"

var ErrInvalidConfig = errors.New("invalid config")

// Config selects which pattern drivers run and where their text goes.
type Config struct {
	LogLevel string   `yaml:"log_level"`
	Output   string   `yaml:"output"`
	Patterns []string `yaml:"patterns"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Output:   StdoutOutput,
		Patterns: []string{"state"},
	}
}

// Load reads path over the defaults. An empty path yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the log level, output and pattern names.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output must be a path or %q", ErrInvalidConfig, StdoutOutput)
	}
	for i, p := range c.Patterns {
		if p == "" {
			return fmt.Errorf("%w: patterns[%d] is empty", ErrInvalidConfig, i)
		}
	}
	return nil
}
