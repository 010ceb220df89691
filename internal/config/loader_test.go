package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleProfileYAML = `
defaults:
  region: CA
  radius: "50"
profiles:
  california:
    url: https://example.org/locator.html
    zipMin: 90000
    zipMax: 96199
    output: ca.csv
    delayMs: 450
    selectors:
      input: "#addr"
      panel: "#results"
  nevada:
    url: https://example.org/nv-locator.html
    region: NV
    zipMin: 88900
    zipMax: 89899
`

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".zipsweep")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}
	return path
}

func TestLoadProfileFile(t *testing.T) {
	t.Parallel()

	path := writeProfileFile(t, sampleProfileYAML)
	f, err := LoadProfileFile(path)
	if err != nil {
		t.Fatalf("LoadProfileFile() unexpected error: %v", err)
	}

	if len(f.Profiles) != 2 {
		t.Fatalf("len(Profiles) = %d, want 2", len(f.Profiles))
	}

	ca := f.GetProfile("california")
	if ca.URL != "https://example.org/locator.html" {
		t.Errorf("URL = %q, want the california URL", ca.URL)
	}
	if ca.Region != "CA" {
		t.Errorf("Region = %q, want default %q", ca.Region, "CA")
	}
	if ca.Radius != "50" {
		t.Errorf("Radius = %q, want default %q", ca.Radius, "50")
	}
	if ca.DelayMS != 450 {
		t.Errorf("DelayMS = %d, want 450", ca.DelayMS)
	}
	if ca.Selectors.Input != "#addr" || ca.Selectors.Panel != "#results" {
		t.Errorf("Selectors = %+v, want overrides applied", ca.Selectors)
	}

	nv := f.GetProfile("nevada")
	if nv.Region != "NV" {
		t.Errorf("nevada Region = %q, want %q", nv.Region, "NV")
	}
	if nv.Radius != "50" {
		t.Errorf("nevada Radius = %q, want inherited default", nv.Radius)
	}
}

func TestLoadProfileFileNotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadProfileFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("LoadProfileFile() error = %v, want ErrProfileNotFound", err)
	}
}

func TestLoadProfileFileInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeProfileFile(t, "profiles: [not a map")
	if _, err := LoadProfileFile(path); err == nil {
		t.Error("LoadProfileFile() = nil error, want YAML parse error")
	}
}

func TestGetProfileUnknownNameReturnsDefaults(t *testing.T) {
	t.Parallel()

	f := &File{Defaults: Profile{Region: "CA", Radius: "50"}}
	p := f.GetProfile("unknown")
	if p.Region != "CA" || p.Radius != "50" {
		t.Errorf("GetProfile(unknown) = %+v, want defaults", p)
	}
}

func TestConfigApply(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.Apply(Profile{
		URL:    "https://example.org/nv-locator.html",
		Region: "NV",
		ZipMin: 88900,
		ZipMax: 89899,
		Output: "nv.csv",
		Selectors: ProfileSelectors{
			Panel: "#resultsPane",
		},
	})

	if cfg.WidgetURL != "https://example.org/nv-locator.html" {
		t.Errorf("WidgetURL = %q, want profile URL", cfg.WidgetURL)
	}
	if cfg.Region != "NV" {
		t.Errorf("Region = %q, want %q", cfg.Region, "NV")
	}
	if cfg.ZipMin != 88900 || cfg.ZipMax != 89899 {
		t.Errorf("range = [%d, %d], want [88900, 89899]", cfg.ZipMin, cfg.ZipMax)
	}
	if cfg.OutputPath != "nv.csv" {
		t.Errorf("OutputPath = %q, want %q", cfg.OutputPath, "nv.csv")
	}
	if cfg.Selectors.Panel != "#resultsPane" {
		t.Errorf("Selectors.Panel = %q, want override", cfg.Selectors.Panel)
	}
	// Unset profile fields keep their defaults.
	if cfg.Selectors.Input != DefaultInputSelector {
		t.Errorf("Selectors.Input = %q, want default preserved", cfg.Selectors.Input)
	}
	if cfg.Step != DefaultStep {
		t.Errorf("Step = %d, want default preserved", cfg.Step)
	}
}

func TestFindProfileFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path that exists", func(t *testing.T) {
		t.Parallel()
		path := writeProfileFile(t, sampleProfileYAML)
		if got := FindProfileFile(path); got != path {
			t.Errorf("FindProfileFile(%q) = %q, want the same path", path, got)
		}
	})

	t.Run("explicit path that does not exist", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "nope.yaml")
		if got := FindProfileFile(missing); got != "" {
			t.Errorf("FindProfileFile(missing) = %q, want empty", got)
		}
	})
}
