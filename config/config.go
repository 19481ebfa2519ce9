package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the benchmark run configuration
type Config struct {
	// Iterations is the number of timed calls per benchmarked operation
	Iterations int `yaml:"iterations"`

	// WarmupIterations is the number of untimed calls before measuring
	WarmupIterations int `yaml:"warmup_iterations"`

	// ProcessUsers is the population size for the aggregation benchmark
	ProcessUsers int `yaml:"process_users"`
}

// DefaultConfig returns the default benchmark configuration
func DefaultConfig() *Config {
	return &Config{
		Iterations:       100000,
		WarmupIterations: 1000,
		ProcessUsers:     50000,
	}
}

// Load reads and parses a YAML configuration file
// Values the file leaves unset or non-positive fall back to the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaults := DefaultConfig()
	if cfg.Iterations <= 0 {
		cfg.Iterations = defaults.Iterations
	}
	if cfg.WarmupIterations <= 0 {
		cfg.WarmupIterations = defaults.WarmupIterations
	}
	if cfg.ProcessUsers <= 0 {
		cfg.ProcessUsers = defaults.ProcessUsers
	}

	return &cfg, nil
}
