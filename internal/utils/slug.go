// internal/utils/slug.go
package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSlug lowercases, strips accents and collapses everything that is
// not alphanumeric into single hyphens, so "Pan de Queso Ñandú" becomes
// "pan-de-queso-nandu". Deterministic: the same title always yields the
// same slug.
func NormalizeSlug(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	// Decompose accented runes and drop the combining marks.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if normalized, _, err := transform.String(t, input); err == nil {
		input = normalized
	}

	var b strings.Builder
	lastHyphen := true // avoid a leading hyphen
	for _, r := range strings.ToLower(input) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
