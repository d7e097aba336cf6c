package article

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// unsafeRunes matches everything that is not safe in a filename or URL
// after lowercasing and hyphenation.
var unsafeRunes = regexp.MustCompile(`[^a-z0-9-]`)

// deaccent decomposes characters and drops combining marks, so
// "Café" becomes "Cafe" before the ASCII filter runs.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a title (or explicit slug) into a lowercase,
// hyphen-separated token safe for filenames and URLs. It is idempotent:
// feeding a slug back in returns it unchanged.
func Slugify(s string) string {
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}
	s = strings.ToLower(s)
	// Whitespace runs become single hyphens.
	s = strings.Join(strings.Fields(s), "-")
	s = unsafeRunes.ReplaceAllString(s, "")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	// Limit length to prevent excessively long filenames
	if len(s) > 100 {
		s = strings.Trim(s[:100], "-")
	}
	return s
}
