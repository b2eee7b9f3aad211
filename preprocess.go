package tfidf

// Preprocessor turns raw document text into stemmed tokens.
type Preprocessor struct {
	Stop    *Stopwords
	Stemmer Stemmer
}

// NewPreprocessor creates a preprocessor with the default stemmer.
func NewPreprocessor(stop *Stopwords) *Preprocessor {
	return &Preprocessor{Stop: stop}
}

// Preprocess runs normalize -> split -> stop filter -> stem. Stopwords are
// removed before stemming, and tokens that stem to "" are dropped.
func (p *Preprocessor) Preprocess(text string) []string {
	tokens := FilterStopwords(Tokenize(Normalize(text)), p.Stop)
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		s := p.Stemmer.Stem(t)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Preprocess is a convenience wrapper around a default Preprocessor.
func Preprocess(text string, stop *Stopwords) []string {
	return NewPreprocessor(stop).Preprocess(text)
}
