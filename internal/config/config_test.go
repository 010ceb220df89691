package config

import (
	"errors"
	"testing"
	"time"
)

// TestNewConfig verifies the defaults explicitly so that changes to them
// are intentional: these values were tuned against a live widget.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default region is CA", func(t *testing.T) {
		t.Parallel()
		if cfg.Region != "CA" {
			t.Errorf("Region = %q, want %q", cfg.Region, "CA")
		}
	})

	t.Run("default zip range covers California", func(t *testing.T) {
		t.Parallel()
		if cfg.ZipMin != 90000 || cfg.ZipMax != 96199 {
			t.Errorf("range = [%d, %d], want [90000, 96199]", cfg.ZipMin, cfg.ZipMax)
		}
	})

	t.Run("default step is 25 with jitter", func(t *testing.T) {
		t.Parallel()
		if cfg.Step != 25 || !cfg.Jitter {
			t.Errorf("Step = %d, Jitter = %v, want 25 and true", cfg.Step, cfg.Jitter)
		}
	})

	t.Run("default delay is 450ms", func(t *testing.T) {
		t.Parallel()
		if cfg.Delay != 450*time.Millisecond {
			t.Errorf("Delay = %v, want 450ms", cfg.Delay)
		}
	})

	t.Run("default refresh interval is 20 seeds", func(t *testing.T) {
		t.Parallel()
		if cfg.RefreshEvery != 20 {
			t.Errorf("RefreshEvery = %d, want 20", cfg.RefreshEvery)
		}
	})

	t.Run("default is headless with unlimited seeds", func(t *testing.T) {
		t.Parallel()
		if !cfg.Headless || cfg.MaxSeeds != 0 {
			t.Errorf("Headless = %v, MaxSeeds = %d, want true and 0", cfg.Headless, cfg.MaxSeeds)
		}
	})

	t.Run("default selectors are set", func(t *testing.T) {
		t.Parallel()
		if cfg.Selectors.Input == "" || cfg.Selectors.Panel == "" || cfg.Selectors.Radius == "" {
			t.Errorf("selectors incomplete: %+v", cfg.Selectors)
		}
	})

	t.Run("defaults validate", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() on defaults = %v, want nil", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "empty URL", mutate: func(c *Config) { c.WidgetURL = "" }, want: ErrNoWidgetURL},
		{name: "long region", mutate: func(c *Config) { c.Region = "CAL" }, want: ErrInvalidRegion},
		{name: "empty region", mutate: func(c *Config) { c.Region = "" }, want: ErrInvalidRegion},
		{name: "zero step", mutate: func(c *Config) { c.Step = 0 }, want: ErrInvalidStep},
		{name: "negative step", mutate: func(c *Config) { c.Step = -5 }, want: ErrInvalidStep},
		{name: "inverted range", mutate: func(c *Config) { c.ZipMin, c.ZipMax = 96199, 90000 }, want: ErrInvalidZipRange},
		{name: "negative min", mutate: func(c *Config) { c.ZipMin = -1 }, want: ErrInvalidZipRange},
		{name: "empty output", mutate: func(c *Config) { c.OutputPath = "" }, want: ErrNoOutputPath},
		{name: "negative delay", mutate: func(c *Config) { c.Delay = -time.Second }, want: ErrInvalidDelay},
		{name: "negative max seeds", mutate: func(c *Config) { c.MaxSeeds = -1 }, want: ErrInvalidMaxSeeds},
		{name: "negative refresh", mutate: func(c *Config) { c.RefreshEvery = -1 }, want: ErrInvalidRefreshInterval},
		{name: "zero poll interval", mutate: func(c *Config) { c.PollInterval = 0 }, want: ErrInvalidTimeout},
		{name: "zero panel timeout", mutate: func(c *Config) { c.PanelTimeout = 0 }, want: ErrInvalidTimeout},
		{name: "missing input selector", mutate: func(c *Config) { c.Selectors.Input = "" }, want: ErrMissingSelector},
		{name: "missing panel selector", mutate: func(c *Config) { c.Selectors.Panel = "" }, want: ErrMissingSelector},
		{name: "both report formats", mutate: func(c *Config) { c.JSONReport, c.MarkdownReport = true, true }, want: ErrConflictingReportFormats},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
