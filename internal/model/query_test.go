package model

import "testing"

func TestQueryFormString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		form QueryForm
		want string
	}{
		{form: FormBare, want: "bare"},
		{form: FormQualified, want: "qualified"},
		{form: QueryForm(99), want: "unknown"},
	}

	for _, tt := range tests {
		if got := tt.form.String(); got != tt.want {
			t.Errorf("QueryForm(%d).String() = %q, want %q", int(tt.form), got, tt.want)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		outcome Outcome
		want    string
	}{
		{outcome: OutcomeOK, want: "ok"},
		{outcome: OutcomeFailed, want: "failed"},
		{outcome: Outcome(99), want: "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(tt.outcome), got, tt.want)
		}
	}
}

func TestQueryModeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode QueryMode
		want string
	}{
		{mode: ModeBare, want: "bare"},
		{mode: ModeQualified, want: "qualified"},
		{mode: ModeFailed, want: "failed"},
		{mode: QueryMode(99), want: "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("QueryMode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestRunSummaryObserve(t *testing.T) {
	t.Parallel()

	var sum RunSummary
	sum.Observe(ProgressRecord{Index: 0, Seed: "94012", Mode: ModeBare, Found: 3, UniqueTotal: 3, New: 3})
	sum.Observe(ProgressRecord{Index: 1, Seed: "94037", Mode: ModeQualified, Found: 2, UniqueTotal: 4, New: 1})
	sum.Observe(ProgressRecord{Index: 2, Seed: "94062", Mode: ModeFailed, Found: 0, UniqueTotal: 4, New: 0})

	if sum.SeedsProcessed != 3 {
		t.Errorf("SeedsProcessed = %d, want 3", sum.SeedsProcessed)
	}
	if sum.FailedSeeds != 1 {
		t.Errorf("FailedSeeds = %d, want 1", sum.FailedSeeds)
	}
	if sum.Found != 5 {
		t.Errorf("Found = %d, want 5", sum.Found)
	}
	if sum.NewAddresses != 4 {
		t.Errorf("NewAddresses = %d, want 4", sum.NewAddresses)
	}
	if sum.UniqueTotal != 4 {
		t.Errorf("UniqueTotal = %d, want 4", sum.UniqueTotal)
	}
	if len(sum.Records) != 3 {
		t.Errorf("len(Records) = %d, want 3", len(sum.Records))
	}
}
