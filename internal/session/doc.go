// Package session orchestrates a full sweep over a seed list.
//
// The Controller walks seeds in order through a single widget session:
// bare query first, qualified fallback on failure, extraction, durable
// merge into the result store, then a progress record. It reloads the
// widget page on a fixed cadence to keep long runs from degrading, and
// optionally mirrors per-seed results into the run history database.
// BatchRunner executes several independent sweeps with a bounded level
// of parallelism; each sweep still owns exactly one browser.
package session
