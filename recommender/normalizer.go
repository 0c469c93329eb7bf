// Package recommender implements the symptom-to-product matching pipeline:
// text normalization, symptom detection over a colloquial Spanish lexicon,
// tiered catalog matching, safety filtering and rotation-aware selection.
package recommender

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentFolder decomposes characters and strips combining marks, so that
// "cábeza" and "cabeza" compare equal. Covers á é í ó ú ü ñ ç and any other
// accented letter that may appear in catalog text.
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases the input and removes Spanish accents and diacritics.
// It is a pure function: empty or whitespace-only input yields "", and it
// never fails (on a transform error the lowercased input is returned as-is,
// which still allows exact matches to work).
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	folded, _, err := transform.String(accentFolder, text)
	if err != nil {
		return text
	}
	return folded
}
