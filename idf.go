package tfidf

import "math"

// DocumentFrequency counts, for every token, the number of documents that
// contain it at least once.
func DocumentFrequency(docs [][]string) map[string]int {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, t := range doc {
			if seen[t] {
				continue
			}
			seen[t] = true
			df[t]++
		}
	}
	return df
}

// ComputeIDF returns ln(N/df)+1 for every token in the corpus.
// Since df <= N the result is always >= 1.
func ComputeIDF(docs [][]string) map[string]float64 {
	idf := make(map[string]float64)
	if len(docs) == 0 {
		return idf
	}
	n := float64(len(docs))
	for term, df := range DocumentFrequency(docs) {
		idf[term] = math.Log(n/float64(df)) + 1
	}
	return idf
}
