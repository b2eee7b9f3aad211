package tfidf

// ComputeTF returns count/total for every distinct token. An empty document
// yields an empty map.
func ComputeTF(tokens []string) map[string]float64 {
	tf := make(map[string]float64)
	if len(tokens) == 0 {
		return tf
	}
	counts := make(map[string]int)
	for _, t := range tokens {
		counts[t]++
	}
	total := float64(len(tokens))
	for term, n := range counts {
		tf[term] = float64(n) / total
	}
	return tf
}
