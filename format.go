package tfidf

import (
	"strconv"
	"strings"
)

// JoinTokens renders a token stream the way preproc_ files store it.
func JoinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}

// FormatPairs renders a ranking as a list of (term, score) tuples, e.g.
// [('foo', 0.42), ('bar', 0.31)].
func FormatPairs(pairs []Pair) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range pairs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("('")
		b.WriteString(p.Term)
		b.WriteString("', ")
		b.WriteString(formatScore(p.Score))
		b.WriteByte(')')
	}
	b.WriteByte(']')
	return b.String()
}

// formatScore prints the shortest representation that round-trips, always
// with a fractional part (1 -> "1.0").
func formatScore(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
