package tfidf

import "strings"

// suffixes are tried in order; only the first match is stripped.
var suffixes = []string{"ing", "ly", "ment"}

// Stemmer strips a fixed set of English suffixes.
type Stemmer struct {
	// PreserveBareSuffix leaves tokens that consist only of a suffix
	// ("ing", "ly", "ment") untouched. When false such tokens stem to "".
	PreserveBareSuffix bool
}

// Stem applies the first matching suffix rule to token.
func (s Stemmer) Stem(token string) string {
	for _, suf := range suffixes {
		if !strings.HasSuffix(token, suf) {
			continue
		}
		if s.PreserveBareSuffix && len(token) == len(suf) {
			continue
		}
		return token[:len(token)-len(suf)]
	}
	return token
}

// Stem strips a suffix using the default rules.
func Stem(token string) string { return Stemmer{}.Stem(token) }
