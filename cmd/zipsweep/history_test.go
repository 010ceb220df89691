package main

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/zipsweep/zipsweep/internal/database"
	"github.com/zipsweep/zipsweep/internal/model"
)

// seedHistoryDB creates a history database with one finished run and
// returns its directory and run ID.
func seedHistoryDB(t *testing.T) (string, int64) {
	t.Helper()

	dir := t.TempDir()
	db, err := database.Open(dir, database.DefaultOptions())
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	started := time.Now().Add(-time.Minute)
	runID, err := db.CreateRun(ctx, "north", "CA", started)
	if err != nil {
		t.Fatalf("CreateRun() error = %v", err)
	}

	summary := &model.RunSummary{Profile: "north", Region: "CA", StartedAt: started}
	records := []model.ProgressRecord{
		{Index: 1, Seed: model.NewSeed(93112), Mode: model.ModeBare, Found: 2, New: 2, UniqueTotal: 2},
		{Index: 2, Seed: model.NewSeed(93137), Mode: model.ModeFailed, UniqueTotal: 2},
	}
	for _, rec := range records {
		if err := db.SaveSeedResult(ctx, runID, rec); err != nil {
			t.Fatalf("SaveSeedResult() error = %v", err)
		}
		summary.Observe(rec)
	}
	if err := db.FinishRun(ctx, runID, summary, time.Now()); err != nil {
		t.Fatalf("FinishRun() error = %v", err)
	}
	return dir, runID
}

// TestRunHistoryCmd tests the history command against a seeded database.
func TestRunHistoryCmd(t *testing.T) {
	t.Run("lists runs", func(t *testing.T) {
		dir, _ := seedHistoryDB(t)

		cmd := NewHistoryCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"--db-dir", dir})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{"PROFILE", "north", "CA"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("shows seed results for a run", func(t *testing.T) {
		dir, runID := seedHistoryDB(t)

		cmd := NewHistoryCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"--db-dir", dir, "--run", strconv.FormatInt(runID, 10)})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{"93112", "bare", "93137", "failed"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("missing database is an error", func(t *testing.T) {
		cmd := NewHistoryCmd()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs([]string{"--db-dir", t.TempDir()})
		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing history database")
		}
	})
}
