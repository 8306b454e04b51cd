package query

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text (NFD) and removes combining marks, so that
// "São" and "Sao" normalize to the same bytes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText lowercases s and strips diacritics. It is the shared
// normalization for free-text search: both the stored text and the search
// term pass through it, so accented and unaccented spellings match in
// either direction.
func NormalizeText(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// matchesSearch reports whether the normalized haystack contains the
// normalized needle as a substring.
func matchesSearch(haystack, normalizedNeedle string) bool {
	return strings.Contains(NormalizeText(haystack), normalizedNeedle)
}
