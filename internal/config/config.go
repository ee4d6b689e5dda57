// Package config loads the optional .freerect.yaml tool configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sheetlab/freerect/internal/model"
)

// DefaultFileName is the configuration file looked up in the working directory.
const DefaultFileName = ".freerect.yaml"

// Config represents the top-level configuration structure.
type Config struct {
	// Thresholds control which free regions count as usable stock.
	Thresholds ThresholdConfig `yaml:"thresholds"`
	// Export contains default export settings.
	Export ExportConfig `yaml:"export"`
}

// ThresholdConfig sets the usability cutoffs for free regions.
type ThresholdConfig struct {
	// MinDimension is the minimum width/height in mm.
	MinDimension float64 `yaml:"min_dimension"`
	// MinArea is the minimum area in sq mm.
	MinArea float64 `yaml:"min_area"`
}

// ExportConfig sets defaults for export commands.
type ExportConfig struct {
	// Format is the default export format (pdf, xlsx, labels).
	Format string `yaml:"format"`
}

// Load reads the configuration from the given path. A missing file is not
// an error: defaults are returned.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ApplyDefaults(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyDefaults fills in unset fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Thresholds.MinDimension == 0 {
		cfg.Thresholds.MinDimension = model.MinFreeDimension
	}
	if cfg.Thresholds.MinArea == 0 {
		cfg.Thresholds.MinArea = model.MinFreeArea
	}
	if cfg.Export.Format == "" {
		cfg.Export.Format = "pdf"
	}
}

// Validate checks the configuration for unusable values.
func Validate(cfg *Config) error {
	if cfg.Thresholds.MinDimension < 0 {
		return fmt.Errorf("thresholds.min_dimension must not be negative")
	}
	if cfg.Thresholds.MinArea < 0 {
		return fmt.Errorf("thresholds.min_area must not be negative")
	}
	switch cfg.Export.Format {
	case "pdf", "xlsx", "labels":
		// ok
	default:
		return fmt.Errorf("invalid export format: %s (allowed: pdf, xlsx, labels)", cfg.Export.Format)
	}
	return nil
}
