// Package extract recovers clean street addresses from the noisy,
// inconsistently formatted text of a rendered results panel.
//
// Extraction is an explicit two-pass pipeline over an ordered sequence of
// lines:
//
//  1. The anchor pass scans single lines for the region/postal anchor
//     (region code followed by a five-digit postal code), strips
//     decorative labels, and keeps the first structural address match.
//  2. The windowed pass joins up to five trailing lines whenever the
//     newest line carries the anchor, recovering addresses that the
//     widget renders split across adjacent lines.
//
// Both passes share a single structural address grammar. Extraction is
// best-effort recall, not validation: malformed fragments are silently
// dropped rather than emitted.
package extract
