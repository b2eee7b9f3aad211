package tfidf

import "strings"

// Tokenize splits normalized text on single spaces.
// An empty string yields no tokens rather than one empty token.
func Tokenize(normalized string) []string {
	if normalized == "" {
		return []string{}
	}
	return strings.Split(normalized, " ")
}

// FilterStopwords keeps the tokens that are not in stop. Matching is exact;
// no case folding happens here.
func FilterStopwords(tokens []string, stop *Stopwords) []string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if stop.Contains(t) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}
