package tfidf

// Source is raw document text paired with its manifest name.
type Source struct {
	Name string
	Text string
}

// Document is a preprocessed document. Tokens keep their order of appearance.
type Document struct {
	Name   string
	Tokens []string
}

// Corpus is every document of one run, in manifest order.
type Corpus []Document

// Tokens returns the token lists of the corpus in order.
func (c Corpus) Tokens() [][]string {
	docs := make([][]string, len(c))
	for i, d := range c {
		docs[i] = d.Tokens
	}
	return docs
}

// Result is the scored form of a Document.
type Result struct {
	Name   string
	Tokens []string
	Scores map[string]float64 // rounded TF-IDF per term
	Top    []Pair
}

// PreprocessAll is the first phase: every source becomes a Document.
func PreprocessAll(sources []Source, p *Preprocessor) Corpus {
	corpus := make(Corpus, 0, len(sources))
	for _, src := range sources {
		corpus = append(corpus, Document{Name: src.Name, Tokens: p.Preprocess(src.Text)})
	}
	return corpus
}

// ScoreAll is the second phase: IDF is computed once over the whole corpus,
// then every document is scored and ranked, keeping the k best terms.
func ScoreAll(corpus Corpus, k int) []Result {
	docs := corpus.Tokens()
	scores := scoreWith(docs, ComputeIDF(docs))
	results := make([]Result, len(corpus))
	for i, d := range corpus {
		results[i] = Result{
			Name:   d.Name,
			Tokens: d.Tokens,
			Scores: scores[i],
			Top:    TopK(scores[i], k),
		}
	}
	return results
}
