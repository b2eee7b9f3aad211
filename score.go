package tfidf

// ComputeTFIDF scores every document against an IDF computed once over all
// of docs. Scores are rounded with RoundHalfUp to ScorePlaces.
func ComputeTFIDF(docs [][]string) []map[string]float64 {
	return scoreWith(docs, ComputeIDF(docs))
}

func scoreWith(docs [][]string, idf map[string]float64) []map[string]float64 {
	out := make([]map[string]float64, 0, len(docs))
	for _, tokens := range docs {
		tf := ComputeTF(tokens)
		scores := make(map[string]float64, len(tf))
		for term, f := range tf {
			// idf has every term of docs by construction
			scores[term] = RoundHalfUp(f*idf[term], ScorePlaces)
		}
		out = append(out, scores)
	}
	return out
}
