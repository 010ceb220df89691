package model

import "time"

// ProgressRecord is the per-seed progress report emitted after each
// query/extract/merge cycle. Records are recomputed each iteration and
// are never the source of truth; the durable address log is.
type ProgressRecord struct {
	// Index is the one-based position of the seed in the run.
	Index int `json:"index"`

	// Seed is the postal-code seed this record describes.
	Seed Seed `json:"seed"`

	// Mode is the query form that succeeded, or ModeFailed.
	Mode QueryMode `json:"mode"`

	// Found is the number of addresses extracted from the panel for
	// this seed, including ones already known.
	Found int `json:"found"`

	// UniqueTotal is the running count of distinct addresses in the
	// store after this seed's merge.
	UniqueTotal int `json:"unique_total"`

	// New is the number of addresses first seen on this seed.
	New int `json:"new"`
}

// RunSummary aggregates a completed (or interrupted) sweep for report
// output. It is built incrementally by the session controller.
type RunSummary struct {
	// Profile is the name of the profile the run used, or "default".
	Profile string `json:"profile"`

	// Region is the two-letter region code swept.
	Region string `json:"region"`

	// StartedAt is when the session entered its first per-seed cycle.
	StartedAt time.Time `json:"started_at"`

	// Elapsed is the total wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`

	// SeedsProcessed is the number of seeds that completed a full cycle.
	SeedsProcessed int `json:"seeds_processed"`

	// FailedSeeds is the number of seeds for which both query forms failed.
	FailedSeeds int `json:"failed_seeds"`

	// Found is the total number of extracted addresses across all seeds,
	// including duplicates seen on multiple seeds.
	Found int `json:"found"`

	// NewAddresses is the number of addresses appended to the store
	// during this run.
	NewAddresses int `json:"new_addresses"`

	// UniqueTotal is the size of the deduplicated store after the run.
	UniqueTotal int `json:"unique_total"`

	// Records holds the per-seed progress records in seed order.
	Records []ProgressRecord `json:"records,omitempty"`
}

// Observe folds one per-seed progress record into the summary.
func (s *RunSummary) Observe(rec ProgressRecord) {
	s.SeedsProcessed++
	s.Found += rec.Found
	s.NewAddresses += rec.New
	s.UniqueTotal = rec.UniqueTotal
	if rec.Mode == ModeFailed {
		s.FailedSeeds++
	}
	s.Records = append(s.Records, rec)
}
