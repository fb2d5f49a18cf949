package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "walktrace.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.CountdownMS != 3000 {
		t.Errorf("CountdownMS = %d, want 3000", cfg.CountdownMS)
	}
	if cfg.Output != "walk_trace.csv" {
		t.Errorf("Output = %q, want walk_trace.csv", cfg.Output)
	}
	if cfg.Trace.Width != 2 || cfg.Trace.Color != "#ff0000" {
		t.Errorf("Trace = %+v, want 2px #ff0000", cfg.Trace)
	}
}

func TestLoad_MergesWithDefaults(t *testing.T) {
	path := writeConfig(t, `
image: plans/floor2.png
max_x: 25.5
max_y: 12
trace:
  color: "#0000ff"
  width: 3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Image != "plans/floor2.png" || cfg.MaxX != 25.5 || cfg.MaxY != 12 {
		t.Errorf("loaded values wrong: %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.CountdownMS != 3000 || cfg.Output != "walk_trace.csv" {
		t.Errorf("defaults not merged: %+v", cfg)
	}
	if cfg.Trace.Color != "#0000ff" || cfg.Trace.Width != 3 {
		t.Errorf("trace override wrong: %+v", cfg.Trace)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load(missing) = nil error")
	}
	if _, err := Load(writeConfig(t, "{not yaml")); err == nil {
		t.Error("Load(malformed) = nil error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero countdown", func(c *Config) { c.CountdownMS = 0 }, "countdown_ms"},
		{"empty output", func(c *Config) { c.Output = "" }, "output"},
		{"zero trace width", func(c *Config) { c.Trace.Width = 0 }, "trace.width"},
		{"negative max_x", func(c *Config) { c.MaxX = -1 }, "max_x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
