package ranking

import (
	"regexp"
	"strings"
)

var (
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
	nonTextPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// Normalize cleans raw article text for comparison: HTML tags are removed,
// characters outside Unicode letters, digits, underscore and whitespace
// become spaces, whitespace runs collapse to one space, and the result is
// trimmed and lowercased. Idempotent; empty input returns "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = tagPattern.ReplaceAllString(s, "")
	s = nonTextPattern.ReplaceAllString(s, " ")
	s = spacePattern.ReplaceAllString(s, " ")

	return strings.ToLower(strings.TrimSpace(s))
}
