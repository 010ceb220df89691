package extract

import (
	"regexp"
	"strings"
)

var (
	// whitespaceRe matches runs of whitespace, including newlines.
	whitespaceRe = regexp.MustCompile(`\s+`)

	// commaSpacingRe matches a comma with arbitrary surrounding
	// whitespace, so "X , Y" and "X ,Y" both tighten to "X, Y".
	commaSpacingRe = regexp.MustCompile(`\s*,\s*`)
)

// Normalize canonicalizes whitespace and comma spacing in a rendered text
// fragment: consecutive whitespace (including newlines) collapses to a
// single space, comma spacing tightens to "X, Y", and the ends are
// trimmed. Normalize is pure and idempotent.
func Normalize(s string) string {
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = commaSpacingRe.ReplaceAllString(s, ", ")
	return strings.TrimSpace(s)
}
