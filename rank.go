package tfidf

import "sort"

// DefaultTopK is the number of terms reported per document.
const DefaultTopK = 5

// Pair is a scored term.
type Pair struct {
	Term  string
	Score float64
}

// lessPair orders two pairs: higher score first; if scores are equal, term ascending.
func lessPair(a, b Pair) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Term < b.Term
}

// Rank returns every entry of scores in ranked order.
func Rank(scores map[string]float64) []Pair {
	pairs := make([]Pair, 0, len(scores))
	for term, s := range scores {
		pairs = append(pairs, Pair{Term: term, Score: s})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return lessPair(pairs[i], pairs[j])
	})
	return pairs
}

// TopK returns the k best entries of scores, fewer if the map is smaller.
func TopK(scores map[string]float64, k int) []Pair {
	if k <= 0 {
		return []Pair{}
	}
	pairs := Rank(scores)
	if len(pairs) > k {
		pairs = pairs[:k]
	}
	return pairs
}
