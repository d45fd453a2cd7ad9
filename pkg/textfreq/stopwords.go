package textfreq

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed stopwords.txt
var stopwordsTxt string

// Stopwords is a set of lowercase words excluded from counting.
type Stopwords map[string]struct{}

// NewStopwords builds a set from words. Words are lowercased.
func NewStopwords(words ...string) Stopwords {
	s := make(Stopwords, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

// Contains reports whether word is in the set. It is safe on a nil set.
func (s Stopwords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// With returns a copy of s extended with words.
func (s Stopwords) With(words ...string) Stopwords {
	out := make(Stopwords, len(s)+len(words))
	for w := range s {
		out[w] = struct{}{}
	}
	for w := range NewStopwords(words...) {
		out[w] = struct{}{}
	}
	return out
}

var (
	defaultStopwords     Stopwords
	defaultStopwordsOnce sync.Once
)

// DefaultStopwords returns the embedded English stopword list.
// The returned set is shared and must not be modified; use [Stopwords.With]
// to extend it.
func DefaultStopwords() Stopwords {
	defaultStopwordsOnce.Do(func() {
		defaultStopwords = NewStopwords(strings.Fields(stopwordsTxt)...)
	})
	return defaultStopwords
}
