package sink

import (
	"encoding/json"

	"github.com/matzehuels/wordcloud/pkg/animate"
	"github.com/matzehuels/wordcloud/pkg/scene"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	timeline *animate.Timeline
	seed     uint64
	hasSeed  bool
	indent   bool
}

// WithJSONTimeline includes the baked ticks of tl in the output.
func WithJSONTimeline(tl animate.Timeline) JSONOption {
	return func(r *jsonRenderer) { r.timeline = &tl }
}

// WithJSONSeed records the random seed, enabling reproducible re-rendering.
func WithJSONSeed(seed uint64) JSONOption {
	return func(r *jsonRenderer) { r.seed = seed; r.hasSeed = true }
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Variant    scene.Variant     `json:"variant"`
	Gradient   string            `json:"gradient"`
	Seed       *uint64           `json:"seed,omitempty"`
	Words      []jsonWord        `json:"words"`
	Backdrops  []scene.Backdrop  `json:"backdrops,omitempty"`
	Stacks     []scene.Stack     `json:"stacks,omitempty"`
	TileStacks []scene.TileStack `json:"tile_stacks,omitempty"`
	Timeline   *jsonTimeline     `json:"timeline,omitempty"`
}

type jsonWord struct {
	Text   string  `json:"text"`
	Count  int     `json:"count"`
	Size   float64 `json:"size"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Rotate float64 `json:"rotate"`
	Layers int     `json:"layers"`
}

type jsonTimeline struct {
	IntervalMS int64      `json:"interval_ms"`
	Ticks      []jsonTick `json:"ticks"`
}

type jsonTick struct {
	Frame       int                  `json:"frame"`
	Gradient    string               `json:"gradient"`
	Transitions []animate.Transition `json:"transitions"`
}

// RenderJSON exports s as JSON. Words are listed in placement order with
// their stack depth; the full stacks follow for tools that redraw them.
func RenderJSON(s scene.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      s.Width,
		Height:     s.Height,
		Variant:    s.Variant,
		Gradient:   s.Gradient,
		Words:      make([]jsonWord, 0, len(s.Stacks)),
		Backdrops:  s.Backdrops,
		Stacks:     s.Stacks,
		TileStacks: s.TileStacks,
	}
	if r.hasSeed {
		out.Seed = &r.seed
	}
	for _, st := range s.Stacks {
		w := st.Word
		out.Words = append(out.Words, jsonWord{
			Text: w.Text, Count: w.Count, Size: w.Size,
			X: w.X, Y: w.Y, Rotate: w.Rotate,
			Layers: len(st.Layers),
		})
	}
	if tl := r.timeline; tl != nil {
		jt := &jsonTimeline{IntervalMS: tl.Interval.Milliseconds(), Ticks: make([]jsonTick, 0, tl.Len())}
		for _, f := range tl.Frames {
			jt.Ticks = append(jt.Ticks, jsonTick{
				Frame:       f.State.Frame,
				Gradient:    f.State.Gradient,
				Transitions: f.Transitions,
			})
		}
		out.Timeline = jt
	}

	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}
