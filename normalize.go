package tfidf

import (
	"regexp"
	"strings"
)

// space matches the same runes as a Unicode-aware \s.
const space = `\t\n\v\f\r\x1c-\x1f \x{85}\p{Z}`

var (
	urlRe     = regexp.MustCompile(`https?://[^` + space + `]+`)
	nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_` + space + `]`)
	spaceRe   = regexp.MustCompile(`[` + space + `]+`)
)

// Normalize removes links and punctuation, collapses whitespace and lowercases.
// Pipeline: drop URLs -> non-word to space -> squeeze spaces -> trim -> lower.
func Normalize(text string) string {
	text = urlRe.ReplaceAllString(text, "")
	text = nonWordRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
	return strings.ToLower(text)
}
