package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/zipsweep/zipsweep/internal/model"
)

func sampleSummary() *model.RunSummary {
	return &model.RunSummary{
		Profile:        "north",
		Region:         "CA",
		StartedAt:      time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC),
		Elapsed:        95 * time.Second,
		SeedsProcessed: 3,
		FailedSeeds:    1,
		Found:          5,
		NewAddresses:   2,
		UniqueTotal:    42,
		Records: []model.ProgressRecord{
			{Index: 1, Seed: model.NewSeed(94012), Mode: model.ModeBare, Found: 3, New: 1, UniqueTotal: 41},
			{Index: 2, Seed: model.NewSeed(94037), Mode: model.ModeQualified, Found: 2, New: 1, UniqueTotal: 42},
			{Index: 3, Seed: model.NewSeed(94062), Mode: model.ModeFailed, UniqueTotal: 42},
		},
	}
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewSimpleWriter(&buf).Write(sampleSummary()); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}
	out := buf.String()
	for _, want := range []string{
		"ZIPSWEEP RUN REPORT",
		"Profile:   North",
		"Region:    CA",
		"Seeds processed:  3",
		"Failed seeds:     1",
		"Unique total:     42",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Per-seed results") {
		t.Error("non-verbose output contains the per-seed breakdown")
	}
}

func TestSimpleWriterVerbose(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewSimpleWriter(&buf, WithVerbose(true)).Write(sampleSummary()); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}
	out := buf.String()
	if !strings.Contains(out, "[2] 94037 mode=qualified found=2 new=1") {
		t.Errorf("verbose output missing per-seed line:\n%s", out)
	}
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(sampleSummary()); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}
	var got model.RunSummary
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.UniqueTotal != 42 || got.Profile != "north" {
		t.Errorf("round-tripped summary = %+v", got)
	}
	if len(got.Records) != 3 {
		t.Errorf("len(Records) = %d, want 3", len(got.Records))
	}
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(sampleSummary()); err != nil {
		t.Fatalf("Write() error = %v, want nil", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# Sweep Report",
		"## Totals",
		"## Failed Seeds",
		"94062",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

type failingWriter struct{ err error }

func (f *failingWriter) Write(_ *model.RunSummary) (int, error) { return 0, f.err }

func TestMultiWriterStopsOnError(t *testing.T) {
	t.Parallel()

	var first, third bytes.Buffer
	wantErr := errors.New("disk full")
	mw := NewMultiWriter(
		NewSimpleWriter(&first),
		&failingWriter{err: wantErr},
		NewSimpleWriter(&third),
	)

	if _, err := mw.Write(sampleSummary()); !errors.Is(err, wantErr) {
		t.Fatalf("Write() error = %v, want %v", err, wantErr)
	}
	if first.Len() == 0 {
		t.Error("first writer received no output")
	}
	if third.Len() != 0 {
		t.Error("writer after the failing one received output")
	}
}

func TestProfileLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty becomes default", in: "", want: "Default"},
		{name: "lower-case name", in: "north", want: "North"},
		{name: "already titled", in: "Central", want: "Central"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ProfileLabel(tt.in); got != tt.want {
				t.Errorf("ProfileLabel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
