// Package normalize canonicalizes free-form roster text for comparison.
// The same identifier normalization feeds token signing, token verification
// and row matching; changing it invalidates every previously issued token.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Identifier collapses internal whitespace, trims and uppercases.
// "  12 345 678 " and "12 345 678" compare equal; punctuation is preserved.
func Identifier(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}

// Header applies Identifier and additionally strips diacritics, so an edited
// column label like "HABILITACIÓN" still matches "HABILITACION".
func Header(s string) string {
	return Identifier(stripDiacritics(s))
}

func stripDiacritics(s string) string {
	// a fresh chain per call: transform chains carry internal buffers and are
	// not safe for concurrent reuse
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
