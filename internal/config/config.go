// Package config provides configuration loading for the percolation CLI.
// It supports loading from a YAML file and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "percolation.yaml"

// Environment variables that override file settings.
const (
	EnvLogLevel = "PERCOLATION_LOG_LEVEL"
	EnvSeed     = "PERCOLATION_SEED"
	EnvTrials   = "PERCOLATION_TRIALS"
)

// Config contains all CLI settings.
type Config struct {
	// Grid contains settings for single-grid runs.
	Grid GridConfig `json:"grid" yaml:"grid"`

	// Experiment contains Monte Carlo settings.
	Experiment ExperimentConfig `json:"experiment" yaml:"experiment"`

	// Logging contains operational logging settings.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// GridConfig configures the open command.
type GridConfig struct {
	// Fullness is "backwash-free" (default) or "backwash".
	Fullness string `json:"fullness" yaml:"fullness"`
}

// ExperimentConfig configures the stats command.
type ExperimentConfig struct {
	// Trials is used when the command line omits it.
	Trials int `json:"trials" yaml:"trials"`

	// Seed fixes the random source. 0 means a time-based seed.
	Seed int64 `json:"seed" yaml:"seed"`
}

// LoggingConfig configures the slog logger.
type LoggingConfig struct {
	// Level is "error", "warn", "info" (default), "debug" or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Grid:       GridConfig{Fullness: "backwash-free"},
		Experiment: ExperimentConfig{Trials: 100},
		Logging:    LoggingConfig{Level: "info"},
	}
}

// Load builds the effective configuration.
// Order: defaults -> file at path (or DefaultPath if present) -> environment.
// An explicit path that does not exist is an error; a missing DefaultPath is not.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the commands cannot use.
func (c *Config) Validate() error {
	if c.Experiment.Trials <= 0 {
		return fmt.Errorf("experiment.trials must be positive, got %d", c.Experiment.Trials)
	}
	switch c.Grid.Fullness {
	case "backwash-free", "backwash":
	default:
		return fmt.Errorf("grid.fullness must be backwash-free or backwash, got %q", c.Grid.Fullness)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSeed)); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Experiment.Seed = seed
	}
	if v := strings.TrimSpace(os.Getenv(EnvTrials)); v != "" {
		trials, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTrials, err)
		}
		cfg.Experiment.Trials = trials
	}
	return nil
}
