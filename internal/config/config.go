// Package config loads the service configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ptpal/internal/exercise"
)

// Config is the full service configuration.
type Config struct {
	Server struct {
		Port      int    `yaml:"port"`
		StaticDir string `yaml:"static_dir"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Feedback struct {
		Provider       string `yaml:"provider"`
		APIKey         string `yaml:"api_key"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"feedback"`

	// Thresholds overrides individual engine limits by name.
	Thresholds map[string]float64 `yaml:"thresholds"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8001
	return cfg
}

// Load reads the configuration file at path on top of the defaults.
// Threshold overrides are validated against the engine's known names, so an
// unknown name fails here rather than at request time.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if _, err := cfg.EngineThresholds(); err != nil {
		return nil, fmt.Errorf("invalid thresholds: %w", err)
	}

	return cfg, nil
}

// EngineThresholds returns the engine defaults with the configured overrides
// applied.
func (c *Config) EngineThresholds() (exercise.Thresholds, error) {
	return exercise.DefaultThresholds().WithOverrides(c.Thresholds)
}
