package enrich

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s and strips diacritical marks ("Mônaco" -> "monaco").
// It is used only as a matching key and never persisted. Idempotent.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// Malformed input: fall back to case folding only.
		out = s
	}
	return strings.ToLower(out)
}
