package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestGetVersion tests version string resolution.
func TestGetVersion(t *testing.T) {
	t.Run("returns ldflags version when set", func(t *testing.T) {
		orig := version
		t.Cleanup(func() { version = orig })

		version = "v1.2.3"
		if got := getVersion(); got != "v1.2.3" {
			t.Errorf("getVersion() = %q, want v1.2.3", got)
		}
	})

	t.Run("never empty", func(t *testing.T) {
		if getVersion() == "" {
			t.Error("getVersion() returned an empty string")
		}
	})
}

// TestNewVersionCmd tests the version command output.
func TestNewVersionCmd(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })
	version = "v1.2.3"

	cmd := NewVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "zipsweep version v1.2.3") {
		t.Errorf("output = %q, want version line", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("output = %q, want a single line", out)
	}
}
