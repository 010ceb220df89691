// Package log centralizes slog construction for zipsweep.
//
// Diagnostics go through slog at Warn level by default, or Debug when
// verbose mode is on. The one-line-per-seed progress output is not logging
// and does not pass through here; it is written to the session
// controller's progress writer so it stays machine-greppable regardless
// of log level.
package log
