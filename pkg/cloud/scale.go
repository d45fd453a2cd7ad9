package cloud

import (
	"math"

	"github.com/matzehuels/wordcloud/pkg/textfreq"
)

// Default font size range in pixels.
const (
	DefaultMinSize = 30.0
	DefaultMaxSize = 120.0
)

// Word is a word with the font size it will be drawn at.
type Word struct {
	Text  string  `json:"text"`
	Count int     `json:"count"`
	Size  float64 `json:"size"`
}

// SizeWords maps counts onto [minSize, maxSize] logarithmically over the
// count extent of freqs. When every count is equal the domain collapses and
// all words get the midpoint size. Input order is preserved.
func SizeWords(freqs []textfreq.WordFrequency, minSize, maxSize float64) []Word {
	if len(freqs) == 0 {
		return nil
	}
	lo, hi := textfreq.Extent(freqs)
	l0, l1 := math.Log(float64(lo)), math.Log(float64(hi))

	words := make([]Word, len(freqs))
	for i, f := range freqs {
		t := 0.5
		if l1 != l0 {
			t = (math.Log(float64(f.Count)) - l0) / (l1 - l0)
		}
		words[i] = Word{
			Text:  f.Text,
			Count: f.Count,
			Size:  minSize + (maxSize-minSize)*t,
		}
	}
	return words
}
