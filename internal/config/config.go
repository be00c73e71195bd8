package config

import (
	"arrow/pkg/interpreter"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime options of the interpreter driver
type Config struct {
	Diagnostics bool   `yaml:"diagnostics"`  // emit diagnostic messages
	Verbose     bool   `yaml:"verbose"`      // show debug-level messages
	Color       bool   `yaml:"color"`        // colored errors and logs
	Encoding    string `yaml:"encoding"`     // source text encoding (IANA name)
	MaxSteps    int    `yaml:"max_steps"`    // statement limit, 0 = unlimited
	MaxDepth    int    `yaml:"max_depth"`    // call depth limit, 0 = unlimited
	HistoryFile string `yaml:"history_file"` // line mode history
}

const historyName = ".arrow_history"

// Default returns the configuration used when no file is given
func Default() Config {
	history := historyName
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, historyName)
	}

	return Config{
		Diagnostics: true,
		Color:       true,
		Encoding:    "utf-8",
		MaxDepth:    interpreter.DefaultMaxDepth,
		HistoryFile: history,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects negative limits and an empty encoding
func (c Config) Validate() error {
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must be non-negative, got %d", c.MaxSteps)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be non-negative, got %d", c.MaxDepth)
	}
	if c.Encoding == "" {
		return fmt.Errorf("encoding must not be empty")
	}

	return nil
}
