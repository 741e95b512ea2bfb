// Package slug derives URL-safe identifiers from display names.
//
// Category keys, region slugs and comuna ids across the application are
// all produced by [Make], so its output format is part of the public data
// contract: lowercase ASCII letters and digits separated by single
// hyphens, with no leading or trailing hyphen.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Make converts a display name to its slug.
//
// The input is lowercased, decomposed with NFD so combining accents can
// be dropped (Bío-Bío -> bio-bio, ñ -> n), and every run of characters
// outside [a-z0-9] collapses to a single hyphen. Make is deterministic
// and idempotent: Make(Make(x)) == Make(x).
func Make(text string) string {
	decomposed := norm.NFD.String(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(text))
	pending := false

	for _, r := range decomposed {
		// Combining marks are the accents split off by NFD.
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	return b.String()
}
