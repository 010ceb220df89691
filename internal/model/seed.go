package model

import "fmt"

// SeedLength is the number of digits in a postal-code seed.
// US ZIP codes are always five digits; seeds are zero-padded to match.
const SeedLength = 5

// Seed is a candidate postal code used to drive one query cycle.
// Seeds are generated, never mutated; a seed's lifetime is a single
// iteration of the session loop.
type Seed string

// NewSeed creates a Seed from a numeric postal-code value,
// zero-padded to SeedLength digits.
func NewSeed(code int) Seed {
	return Seed(fmt.Sprintf("%0*d", SeedLength, code))
}

// String returns the seed as a plain string.
func (s Seed) String() string {
	return string(s)
}

// Qualified returns the fallback query form: the seed with an explicit
// region suffix (e.g. "94012, CA"). The qualified form is submitted when
// the bare seed produces no panel change.
func (s Seed) Qualified(region string) string {
	return fmt.Sprintf("%s, %s", s, region)
}

// IsValid reports whether the seed is exactly SeedLength ASCII digits.
func (s Seed) IsValid() bool {
	if len(s) != SeedLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
