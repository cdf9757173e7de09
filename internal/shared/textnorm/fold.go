// Package textnorm folds strings for accent- and case-insensitive
// comparison of French place names.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases the string and strips combining diacritical marks, so
// "Hérouville-Saint-Clair" and "herouville-saint-clair" compare equal.
func Fold(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// EqualFold reports whether two place names match after folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
