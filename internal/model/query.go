package model

// QueryForm identifies which form of a seed was submitted to the widget.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. The String() method provides human-readable
// output for progress lines and reports.
type QueryForm int

const (
	// FormBare submits the seed exactly as generated (e.g. "94012").
	FormBare QueryForm = iota

	// FormQualified submits the seed with an explicit region suffix
	// (e.g. "94012, CA"). Used as a fallback when the bare form yields
	// no panel change.
	FormQualified
)

// String returns a human-readable representation of the query form.
func (f QueryForm) String() string {
	switch f {
	case FormBare:
		return "bare"
	case FormQualified:
		return "qualified"
	default:
		return "unknown"
	}
}

// Outcome is the result of a single query submission.
type Outcome int

const (
	// OutcomeOK means the results panel changed to a non-empty state
	// after the query was submitted.
	OutcomeOK Outcome = iota

	// OutcomeFailed means the panel never changed within the bounded
	// wait, or an interaction with the surface timed out. Failed
	// outcomes are absorbed per-seed; they never abort the run.
	OutcomeFailed
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// QueryMode records which query form ultimately succeeded for a seed,
// or that neither form did. It appears in progress records and reports.
type QueryMode int

const (
	// ModeBare means the bare seed succeeded on the first attempt.
	ModeBare QueryMode = iota

	// ModeQualified means the bare seed failed but the region-qualified
	// fallback succeeded.
	ModeQualified

	// ModeFailed means both query forms failed. The seed contributes
	// zero addresses and the run continues with the next seed.
	ModeFailed
)

// String returns a human-readable representation of the query mode.
func (m QueryMode) String() string {
	switch m {
	case ModeBare:
		return "bare"
	case ModeQualified:
		return "qualified"
	case ModeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// QueryAttempt is the transient record of one submission. It is never
// persisted; the session controller folds attempts into a QueryMode.
type QueryAttempt struct {
	// Seed is the seed the attempt was made for.
	Seed Seed

	// Form is the query form that was submitted.
	Form QueryForm

	// Outcome is the result of the submission.
	Outcome Outcome
}
