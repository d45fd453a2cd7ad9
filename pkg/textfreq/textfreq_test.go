package textfreq

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAnalyzeExample(t *testing.T) {
	got := Analyze("the quick brown fox the lazy fox the fox", DefaultStopwords(), 0)
	want := []WordFrequency{
		{Text: "fox", Count: 3},
		{Text: "quick", Count: 1},
		{Text: "brown", Count: 1},
		{Text: "lazy", Count: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Analyze mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeNormalizes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []WordFrequency
	}{
		{
			name: "case folding",
			text: "Go go GO",
			want: []WordFrequency{{Text: "go", Count: 3}},
		},
		{
			name: "punctuation splits tokens",
			text: "cloud,cloud;word-cloud!",
			want: []WordFrequency{{Text: "cloud", Count: 3}, {Text: "word", Count: 1}},
		},
		{
			name: "underscores and digits are word characters",
			text: "snake_case 42 snake_case",
			want: []WordFrequency{{Text: "snake_case", Count: 2}, {Text: "42", Count: 1}},
		},
		{
			name: "only whitespace",
			text: "  \n\t ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.text, nil, 0)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Analyze(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestAnalyzeProperties(t *testing.T) {
	text := strings.Repeat("alpha beta beta gamma gamma gamma the and of delta ", 5) +
		"epsilon zeta eta theta iota kappa lambda mu nu xi omicron pi rho sigma"
	stop := DefaultStopwords()

	for _, limit := range []int{1, 3, 10, 100} {
		got := Analyze(text, stop, limit)
		if len(got) > limit {
			t.Errorf("limit %d: got %d entries", limit, len(got))
		}
		for i, f := range got {
			if f.Count < 1 {
				t.Errorf("limit %d: %q has count %d", limit, f.Text, f.Count)
			}
			if stop.Contains(f.Text) {
				t.Errorf("limit %d: stopword %q in output", limit, f.Text)
			}
			if i > 0 && got[i-1].Count < f.Count {
				t.Errorf("limit %d: not sorted at %d: %v", limit, i, got)
			}
		}
	}
}

func TestAnalyzeDefaultLimit(t *testing.T) {
	var b strings.Builder
	for i := range 300 {
		b.WriteString("w")
		b.WriteString(strings.Repeat("x", i+1))
		b.WriteString(" ")
	}
	got := Analyze(b.String(), nil, 0)
	if len(got) != DefaultLimit {
		t.Errorf("len = %d, want %d", len(got), DefaultLimit)
	}
}

func TestStopwords(t *testing.T) {
	s := NewStopwords("Foo", " bar ", "")
	if !s.Contains("foo") || !s.Contains("bar") {
		t.Errorf("NewStopwords should lowercase and trim: %v", s)
	}
	if s.Contains("") {
		t.Error("empty word should be skipped")
	}

	ext := DefaultStopwords().With("cloud")
	if !ext.Contains("cloud") || !ext.Contains("the") {
		t.Error("With should keep the base set and add new words")
	}
	if DefaultStopwords().Contains("cloud") {
		t.Error("With must not modify the shared default set")
	}

	var nilSet Stopwords
	if nilSet.Contains("the") {
		t.Error("nil set should contain nothing")
	}
}

func TestExtent(t *testing.T) {
	lo, hi := Extent([]WordFrequency{{"a", 3}, {"b", 7}, {"c", 1}})
	if lo != 1 || hi != 7 {
		t.Errorf("Extent = (%d, %d), want (1, 7)", lo, hi)
	}
	lo, hi = Extent(nil)
	if lo != 0 || hi != 0 {
		t.Errorf("Extent(nil) = (%d, %d), want (0, 0)", lo, hi)
	}
}
