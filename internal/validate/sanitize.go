package validate

import (
	"regexp"
	"strings"
)

// htmlEscaper escapes the five markup-unsafe characters in one pass.
// Sanitizing is not idempotent: re-sanitizing already-escaped text escapes
// the leading & of each entity again.
var htmlEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"&", "&amp;",
)

// SanitizeString trims whitespace and HTML-escapes < > " ' &.
// It never fails.
func SanitizeString(input string) string {
	return htmlEscaper.Replace(strings.TrimSpace(input))
}

var (
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// GenerateID derives a slug-style identifier from a display name:
// lowercase, strip everything outside [a-z0-9\s-], collapse whitespace runs
// to single hyphens, collapse repeated hyphens, trim edge hyphens.
func GenerateID(name string) string {
	s := strings.ToLower(name)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
