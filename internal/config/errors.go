package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoWidgetURL is returned when no locator widget URL is configured.
	ErrNoWidgetURL = errors.New("no widget URL: set --url or the profile's url")

	// ErrInvalidRegion is returned when the region code is not exactly
	// two characters. The anchor pattern and the qualified query form
	// both assume a two-letter code.
	ErrInvalidRegion = errors.New("invalid region: must be a two-letter code")

	// ErrInvalidStep is returned when the seed step is not positive.
	// A non-positive step would never advance through the ZIP range.
	ErrInvalidStep = errors.New("invalid seed step: must be positive")

	// ErrInvalidZipRange is returned when the ZIP range is inverted or
	// negative.
	ErrInvalidZipRange = errors.New("invalid zip range: min must be non-negative and not exceed max")

	// ErrNoOutputPath is returned when the address log path is empty.
	ErrNoOutputPath = errors.New("no output path for the address log")

	// ErrInvalidDelay is returned when the inter-seed delay is negative.
	// Use 0 for no delay between seeds.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrInvalidMaxSeeds is returned when the seed cap is negative.
	// Use 0 to process the whole sequence.
	ErrInvalidMaxSeeds = errors.New("invalid max seeds: must be non-negative")

	// ErrInvalidRefreshInterval is returned when the refresh interval is
	// negative. Use 0 to disable session refreshes.
	ErrInvalidRefreshInterval = errors.New("invalid refresh interval: must be non-negative")

	// ErrInvalidTimeout is returned when any interaction timeout or the
	// poll interval is not positive; zero would cause immediate failures.
	ErrInvalidTimeout = errors.New("invalid timeout: bootstrap, commit, panel and poll must be positive")

	// ErrMissingSelector is returned when the input or panel selector is
	// empty. Without them no query can be submitted or observed.
	ErrMissingSelector = errors.New("missing selector: input and panel selectors are required")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
