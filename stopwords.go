package tfidf

import "github.com/kljensen/snowball/english"

// Stopwords is an immutable stopword set. No globals: the caller loads one
// and injects it into the Preprocessor.
type Stopwords struct {
	words   map[string]struct{}
	english bool // also consult the Snowball English list
}

// NewStopwords builds a set from the given words, stored verbatim.
func NewStopwords(words ...string) *Stopwords {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return &Stopwords{words: m}
}

// WithEnglish returns a copy of s that also treats every word on the
// Snowball English stopword list as a stopword.
func (s *Stopwords) WithEnglish() *Stopwords {
	m := make(map[string]struct{}, s.Len())
	if s != nil {
		for w := range s.words {
			m[w] = struct{}{}
		}
	}
	return &Stopwords{words: m, english: true}
}

// Contains reports whether token is a stopword. A nil set contains nothing.
func (s *Stopwords) Contains(token string) bool {
	if s == nil {
		return false
	}
	if _, ok := s.words[token]; ok {
		return true
	}
	return s.english && english.IsStopWord(token)
}

// Len is the number of explicitly loaded words; the builtin list is not counted.
func (s *Stopwords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}
