package seed

import (
	"errors"

	"github.com/zipsweep/zipsweep/internal/model"
)

// Generation errors. Degenerate inputs fail fast with a configuration
// error rather than looping indefinitely or silently returning nothing.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at the call site. This allows callers to
// use errors.Is() for programmatic handling while still providing
// human-readable messages.
var (
	// ErrInvalidStep is returned when the step is zero or negative.
	// A non-positive step would never advance through the range.
	ErrInvalidStep = errors.New("invalid seed step: must be positive")

	// ErrInvalidRange is returned when min is greater than max.
	ErrInvalidRange = errors.New("invalid seed range: min must not exceed max")

	// ErrSeedOverflow is returned when the range leaves the five-digit
	// postal-code space. Wider seeds would be zero-padded wrong or not
	// pad at all, and the widget rejects them anyway.
	ErrSeedOverflow = errors.New("invalid seed range: every seed must fit five digits")
)

// Generate produces seeds at start, start+step, start+2*step, ... not
// exceeding max, where start = min + step/2 (integer division) when jitter
// is enabled, else start = min. Each seed is zero-padded to five digits.
func Generate(min, max, step int, jitter bool) ([]model.Seed, error) {
	if step <= 0 {
		return nil, ErrInvalidStep
	}
	if min > max {
		return nil, ErrInvalidRange
	}
	if !model.NewSeed(min).IsValid() || !model.NewSeed(max).IsValid() {
		return nil, ErrSeedOverflow
	}

	start := min
	if jitter {
		start = min + step/2
	}

	size := (max-start)/step + 1
	if size < 0 {
		size = 0
	}
	seeds := make([]model.Seed, 0, size)
	for code := start; code <= max; code += step {
		seeds = append(seeds, model.NewSeed(code))
	}
	return seeds, nil
}
