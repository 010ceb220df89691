// Package database provides SQLite-based storage for sweep run history.
//
// The durable address log (internal/store) is the source of truth for
// deduplication; this database only records how each run went (which
// seeds were processed, in what mode, and what they yielded) so that
// runs can be reviewed and compared later with the history command.
//
// It uses modernc.org/sqlite, a pure-Go driver, so no CGO is required.
package database
