// Package slug derives URL-safe identifiers from human-readable titles.
package slug

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Generate lowercases title, folds diacritics, replaces every run of
// characters outside [a-z0-9] with a single hyphen, and trims hyphens from
// both ends. Generate(Generate(s)) == Generate(s).
func Generate(title string) string {
	folded := text.Fold(title)

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// Valid reports whether s is already in canonical slug form.
func Valid(s string) bool {
	return s != "" && Generate(s) == s
}
