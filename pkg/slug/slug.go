package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	invalidChars  = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// Normalize lowercases, trims, and strips combining diacritical marks so
// that "Graderías" and "graderias" compare equal. Total over all inputs.
func Normalize(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))

	// Chained transformers carry state, so build one per call to keep
	// Normalize safe for concurrent use.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		return lowered
	}
	return stripped
}

// Slugify converts a human-readable name into a URL-safe identifier:
// normalized, whitespace collapsed to single hyphens, anything outside
// [a-z0-9-] dropped, repeated hyphens collapsed.
func Slugify(s string) string {
	out := Normalize(s)
	out = whitespaceRun.ReplaceAllString(out, "-")
	out = invalidChars.ReplaceAllString(out, "")
	return hyphenRun.ReplaceAllString(out, "-")
}

// Deslugify maps a hyphenated slug back to its spaced form, normalized.
func Deslugify(s string) string {
	return strings.ReplaceAll(Normalize(s), "-", " ")
}
