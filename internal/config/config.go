// Package config holds the walktrace application configuration.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full walktrace configuration.
type Config struct {
	Image       string      `yaml:"image"`        // floor-plan image path
	MaxX        float64     `yaml:"max_x"`        // logical width; 0 = image pixel width
	MaxY        float64     `yaml:"max_y"`        // logical height; 0 = image pixel height
	CountdownMS int         `yaml:"countdown_ms"` // start delay in milliseconds
	Output      string      `yaml:"output"`       // CSV output path
	Snapshot    bool        `yaml:"snapshot"`     // also save a PNG of the traced surface
	Trace       TraceConfig `yaml:"trace"`
}

// TraceConfig configures the trajectory stroke.
type TraceConfig struct {
	Width float64 `yaml:"width"` // stroke width in pixels
	Color string  `yaml:"color"` // hex color, e.g. "#ff0000"
}

// DefaultConfig returns sane defaults: a 3 second countdown and a 2px
// red trace exported to walk_trace.csv.
func DefaultConfig() *Config {
	return &Config{
		CountdownMS: 3000,
		Output:      "walk_trace.csv",
		Trace: TraceConfig{
			Width: 2,
			Color: "#ff0000",
		},
	}
}

// Load reads and parses a YAML config file. Returns DefaultConfig
// merged with the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.CountdownMS <= 0 {
		return fmt.Errorf("countdown_ms must be > 0")
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	if c.Trace.Width <= 0 {
		return fmt.Errorf("trace.width must be > 0")
	}
	for _, v := range [...]struct {
		name string
		val  float64
	}{{"max_x", c.MaxX}, {"max_y", c.MaxY}} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) || v.val < 0 {
			return fmt.Errorf("%s must be a non-negative number", v.name)
		}
	}
	return nil
}
