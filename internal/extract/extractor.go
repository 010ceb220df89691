package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Structural grammar tolerances.
//
// These bounds were tuned empirically against one provider-locator widget.
// They are a heuristic starting point, not a universal address matcher:
// widen them cautiously and only with panel samples in hand.
const (
	// maxStreetChars bounds the street/unit fragment between the leading
	// street number and the first comma.
	maxStreetChars = 160

	// minStreetChars rejects fragments too short to name a street.
	minStreetChars = 2

	// maxCityChars bounds the city fragment between commas.
	maxCityChars = 80

	// minCityChars rejects city fragments shorter than any real name.
	minCityChars = 2

	// windowSize caps the trailing line window in the windowed pass.
	// Larger windows multiply join candidates without recovering more
	// real addresses in practice.
	windowSize = 5
)

// Decorative substrings stripped from candidate lines before structural
// matching, in a fixed order: a "get directions" label, a parenthesized
// distance-in-miles label, and a phone-number label.
var (
	directionsRe = regexp.MustCompile(`(?i)\bget directions\b`)
	distanceRe   = regexp.MustCompile(`\(\s*\d+(?:\.\d+)?\s*\)\s*(?i:miles?|mi)\.?`)
	phoneRe      = regexp.MustCompile(`(?i:(?:phone|tel)[:.]?\s*)?\(\d{3}\)\s*\d{3}-\d{4}`)
)

// Extractor finds distinct, well-formed address strings in normalized
// panel text for a single two-letter region code. An Extractor is
// stateless after construction; Extract is deterministic and safe for
// reuse across seeds.
type Extractor struct {
	// anchorRe signals "this line likely contains an address": the region
	// code followed by a five-digit (optionally +4) postal code.
	anchorRe *regexp.Regexp

	// grammarRe is the structural address pattern shared by both passes:
	// street number, street/unit fragment, comma, city fragment, comma,
	// region code, postal code.
	grammarRe *regexp.Regexp
}

// NewExtractor creates an Extractor for the given two-letter region code
// (e.g. "CA"). The code is matched case-sensitively, as rendered panels
// use the canonical uppercase form.
func NewExtractor(region string) *Extractor {
	r := regexp.QuoteMeta(strings.ToUpper(strings.TrimSpace(region)))
	return &Extractor{
		anchorRe: regexp.MustCompile(`\b` + r + `\s+\d{5}(?:-\d{4})?\b`),
		grammarRe: regexp.MustCompile(
			`\d{1,8}` +
				`[^,]{` + strconv.Itoa(minStreetChars) + `,` + strconv.Itoa(maxStreetChars) + `}` +
				`,\s*` +
				`[A-Za-z0-9 .'\-]{` + strconv.Itoa(minCityChars) + `,` + strconv.Itoa(maxCityChars) + `}` +
				`,\s*` +
				r + `\s*\d{5}(?:-\d{4})?`,
		),
	}
}

// Extract returns the distinct, well-formed addresses found in the panel
// text, in first-occurrence order. Applying Extract twice to the same
// input yields the same output: there is no hidden state.
func (e *Extractor) Extract(panelText string) []string {
	lines := splitLines(panelText)

	candidates := e.anchorPass(lines)
	candidates = append(candidates, e.windowedPass(lines)...)

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = Normalize(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// anchorPass scans single lines for the anchor pattern and keeps the first
// structural match after decoration stripping. When the strict grammar
// misses but the line still reads like an address (a street number ahead
// of the anchor), the whole cleaned line is kept best-effort; anything
// else is discarded rather than emitted malformed.
func (e *Extractor) anchorPass(lines []string) []string {
	var out []string
	for _, line := range lines {
		if !e.anchorRe.MatchString(line) {
			continue
		}

		cleaned := e.stripDecorations(line)
		if match := e.grammarRe.FindString(cleaned); match != "" {
			out = append(out, match)
			continue
		}
		if e.looksLikeAddress(cleaned) {
			out = append(out, cleaned)
		}
	}
	return out
}

// windowedPass recovers addresses split across adjacent lines. It keeps a
// trailing window of up to windowSize lines; whenever the newest line
// carries the anchor it tries space-joins of the last k lines, smallest k
// first, and keeps the first structural match. The window is cleared
// after every anchor line: an anchor ends its own address, and carrying
// its postal code forward would let it pose as the next address's street
// number.
func (e *Extractor) windowedPass(lines []string) []string {
	var out []string
	window := make([]string, 0, windowSize)

	for _, line := range lines {
		window = append(window, line)
		if len(window) > windowSize {
			window = window[1:]
		}
		if !e.anchorRe.MatchString(line) {
			continue
		}

		for k := 2; k <= len(window); k++ {
			joined := Normalize(strings.Join(window[len(window)-k:], " "))
			cleaned := e.stripDecorations(joined)
			if match := e.grammarRe.FindString(cleaned); match != "" {
				out = append(out, match)
				break
			}
		}
		window = window[:0]
	}
	return out
}

// stripDecorations removes decorative labels in a fixed order and
// re-normalizes the result.
func (e *Extractor) stripDecorations(line string) string {
	line = directionsRe.ReplaceAllString(line, " ")
	line = distanceRe.ReplaceAllString(line, " ")
	line = phoneRe.ReplaceAllString(line, " ")
	return Normalize(line)
}

// looksLikeAddress reports whether a cleaned, anchor-bearing line can be
// kept as a best-effort address: it must carry a digit before the anchor
// (the street number). A bare anchor such as "CA 94000" left behind by a
// label/value layout is discarded here and recovered, if real, by the
// windowed pass.
func (e *Extractor) looksLikeAddress(cleaned string) bool {
	loc := e.anchorRe.FindStringIndex(cleaned)
	if loc == nil {
		return false
	}
	return strings.ContainsAny(cleaned[:loc[0]], "0123456789")
}

// splitLines splits raw panel text into trimmed, non-empty lines.
// The raw text is split before any normalization because Normalize
// collapses the newlines both passes depend on.
func splitLines(panelText string) []string {
	raw := strings.Split(panelText, "\n")
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

