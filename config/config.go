// Package config provides configuration loading and management for the
// quantify CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete quantify configuration.
type Config struct {
	Measurements MeasurementsConfig `yaml:"measurements"`
	Metrics      MetricsConfig      `yaml:"metrics"`
	Output       OutputConfig       `yaml:"output"`
}

// MeasurementsConfig configures user measurement files layered on top of
// the builtin table.
type MeasurementsConfig struct {
	// Paths are YAML measurement files; glob patterns (including **) are
	// expanded at load time.
	Paths []string `yaml:"paths"`

	// Watch allows the watch command to reload measurement files when
	// they change; when false, files are loaded once at startup.
	Watch bool `yaml:"watch"`

	// DebounceDelay is how long the watcher waits for further changes
	// before reloading.
	DebounceDelay time.Duration `yaml:"debounce_delay"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Listen is the address to serve /metrics on (empty = disabled).
	Listen string `yaml:"listen"`
}

// OutputConfig configures CLI output rendering.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Measurements: MeasurementsConfig{
			Paths:         nil,
			Watch:         false,
			DebounceDelay: 100 * time.Millisecond,
		},
		Metrics: MetricsConfig{
			Listen: "",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("output.format must be \"text\" or \"json\", got %q", c.Output.Format)
	}
	if c.Measurements.DebounceDelay < 0 {
		return fmt.Errorf("measurements.debounce_delay must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
