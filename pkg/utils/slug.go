package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalidSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	repeatedHyphens  = regexp.MustCompile(`-{2,}`)
)

// GenerateSlug derives a URL slug from free text. The transform is
// deterministic and idempotent: applying it to its own output returns the
// same string.
func GenerateSlug(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	text, _, _ = transform.String(t, text)

	text = strings.ToLower(text)
	text = invalidSlugChars.ReplaceAllString(text, "")
	text = slugWhitespace.ReplaceAllString(text, "-")
	text = repeatedHyphens.ReplaceAllString(text, "-")

	return strings.Trim(text, "-")
}
