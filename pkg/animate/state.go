package animate

import (
	"slices"
	"time"

	"github.com/matzehuels/wordcloud/pkg/noise"
	"github.com/matzehuels/wordcloud/pkg/scene"
	"github.com/matzehuels/wordcloud/pkg/symbols"
)

// Timing and motion defaults.
const (
	DefaultInterval = 2000 * time.Millisecond
	DefaultDuration = 1000 * time.Millisecond
	DefaultStagger  = 20 * time.Millisecond

	// DefaultKeepShape is the chance that a tile stack keeps its shape on a
	// tick and only changes color.
	DefaultKeepShape = 0.3

	// DefaultDrift bounds the per-layer noise displacement in pixels.
	DefaultDrift = 20.0
)

// State is everything that changes between ticks. It is passed by value;
// [Step] returns a new State and leaves its argument untouched.
type State struct {
	Frame      int               `json:"frame"`
	Gradient   string            `json:"gradient"`
	Stacks     []scene.Stack     `json:"stacks,omitempty"`
	TileStacks []scene.TileStack `json:"tile_stacks,omitempty"`
}

// NewState captures the animated parts of s at frame 0.
func NewState(s scene.Scene) State {
	return State{
		Gradient:   s.Gradient,
		Stacks:     cloneStacks(s.Stacks),
		TileStacks: cloneTileStacks(s.TileStacks),
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Stacks = cloneStacks(s.Stacks)
	s.TileStacks = cloneTileStacks(s.TileStacks)
	return s
}

// Apply returns a copy of sc with the layers and tiles of s.
func (s State) Apply(sc scene.Scene) scene.Scene {
	c := s.Clone()
	sc.Gradient = c.Gradient
	sc.Stacks = c.Stacks
	sc.TileStacks = c.TileStacks
	return sc
}

func cloneStacks(in []scene.Stack) []scene.Stack {
	if in == nil {
		return nil
	}
	out := make([]scene.Stack, len(in))
	for i, st := range in {
		st.Layers = slices.Clone(st.Layers)
		out[i] = st
	}
	return out
}

func cloneTileStacks(in []scene.TileStack) []scene.TileStack {
	if in == nil {
		return nil
	}
	out := make([]scene.TileStack, len(in))
	for i, ts := range in {
		ts.Tiles = slices.Clone(ts.Tiles)
		out[i] = ts
	}
	return out
}

// Env holds the collaborators and constants a [Step] reads. An Env is
// never modified by Step and may be shared between goroutines.
type Env struct {
	// Seed determines every random choice. The generator for a tick is
	// derived from Seed and the frame number.
	Seed uint64

	NoiseX noise.Func
	NoiseY noise.Func

	Duration time.Duration // per-transition duration
	Stagger  time.Duration // extra delay per layer index

	KeepShape float64 // probability of a fill-only tile tick
	Samples   int     // ring resolution for shape morphs
}

// NewEnv returns an Env with default timing and two independent noise
// fields in [-DefaultDrift, DefaultDrift], both derived from seed.
func NewEnv(seed uint64) Env {
	return Env{
		Seed:      seed,
		NoiseX:    noise.New(-DefaultDrift, DefaultDrift, noise.Options{Seed: int64(seed)}),
		NoiseY:    noise.New(-DefaultDrift, DefaultDrift, noise.Options{Seed: int64(seed) + 1}),
		Duration:  DefaultDuration,
		Stagger:   DefaultStagger,
		KeepShape: DefaultKeepShape,
		Samples:   symbols.DefaultSamples,
	}
}

func (e Env) withDefaults() Env {
	if e.NoiseX == nil || e.NoiseY == nil {
		d := NewEnv(e.Seed)
		if e.NoiseX == nil {
			e.NoiseX = d.NoiseX
		}
		if e.NoiseY == nil {
			e.NoiseY = d.NoiseY
		}
	}
	if e.Duration <= 0 {
		e.Duration = DefaultDuration
	}
	if e.Stagger < 0 {
		e.Stagger = 0
	}
	if e.Samples <= 0 {
		e.Samples = symbols.DefaultSamples
	}
	return e
}
