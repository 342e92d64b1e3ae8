package identity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, removes combining marks, and recomposes,
// so "José" and "Jose" normalize identically.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes combining diacritical marks from s. Returns s
// unchanged if the transform fails on malformed input.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// HasDiacritics reports whether s contains any combining marks. The
// resolver prefers accented display names during dedupe since they are
// typically the more complete upstream form.
func HasDiacritics(s string) bool {
	return StripDiacritics(s) != s
}

// Normalize canonicalizes a free-text player name: strip diacritics,
// remove periods, collapse whitespace runs, lowercase, trim. Idempotent.
func Normalize(name string) string {
	s := StripDiacritics(name)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// InvertCommaName rewrites "Last, First[, Suffix]" into "First Last
// [Suffix]". Input without a comma is returned unchanged.
func InvertCommaName(name string) string {
	if !strings.Contains(name, ",") {
		return name
	}
	parts := strings.Split(name, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 || parts[1] == "" {
		return name
	}
	inverted := parts[1] + " " + parts[0]
	if len(parts) > 2 && parts[2] != "" {
		inverted += " " + parts[2]
	}
	return inverted
}
