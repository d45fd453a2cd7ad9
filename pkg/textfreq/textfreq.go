// Package textfreq turns raw text into a ranked list of word frequencies.
//
// Text is lowercased, punctuation is replaced by whitespace, and the
// remaining tokens are counted after stopword removal. The result is sorted
// by descending count; words with equal counts keep the order in which they
// first appeared in the text.
//
// # Usage
//
//	freqs := textfreq.Analyze(text, textfreq.DefaultStopwords(), 100)
//	for _, f := range freqs {
//	    fmt.Println(f.Text, f.Count)
//	}
package textfreq

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

// DefaultLimit is the number of distinct words kept when no limit is given.
const DefaultLimit = 250

// WordFrequency is a word and the number of times it occurs.
type WordFrequency struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// nonWord matches anything that is neither a word character nor whitespace.
var nonWord = regexp.MustCompile(`[^\w\s]`)

// Tokenize normalizes text and splits it into lowercase tokens.
// Punctuation acts as a separator, so "don't" yields "don" and "t".
func Tokenize(text string) []string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = nonWord.ReplaceAllString(text, " ")
	return strings.Fields(text)
}

// Analyze counts the tokens of text that are not in stop and returns them
// ranked by descending count. Ties keep first-appearance order. At most
// limit entries are returned; limit <= 0 means [DefaultLimit].
//
// A nil stop set disables stopword filtering.
func Analyze(text string, stop Stopwords, limit int) []WordFrequency {
	if limit <= 0 {
		limit = DefaultLimit
	}

	index := make(map[string]int)
	var freqs []WordFrequency
	for _, tok := range Tokenize(text) {
		if stop.Contains(tok) {
			continue
		}
		if i, ok := index[tok]; ok {
			freqs[i].Count++
			continue
		}
		index[tok] = len(freqs)
		freqs = append(freqs, WordFrequency{Text: tok, Count: 1})
	}

	slices.SortStableFunc(freqs, func(a, b WordFrequency) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if len(freqs) > limit {
		freqs = freqs[:limit]
	}
	return freqs
}

// Extent returns the smallest and largest count in freqs.
// Both are zero when freqs is empty.
func Extent(freqs []WordFrequency) (lo, hi int) {
	for i, f := range freqs {
		if i == 0 || f.Count < lo {
			lo = f.Count
		}
		if i == 0 || f.Count > hi {
			hi = f.Count
		}
	}
	return lo, hi
}
