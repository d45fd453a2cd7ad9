package scene

import (
	"math/rand/v2"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/palette"
	"github.com/matzehuels/wordcloud/pkg/symbols"
)

// Stack sizing defaults.
const (
	DefaultStep        = 10.0
	DefaultTextFloor   = 20.0
	DefaultSymbolFloor = 30.0
	DefaultTileFloor   = 10.0
)

// Sizes returns size, size-step, ... for as long as the value is at least
// floor. A non-positive step yields just size (when size >= floor).
func Sizes(size, floor, step float64) []float64 {
	if size < floor {
		return nil
	}
	if step <= 0 {
		return []float64{size}
	}
	n := int((size-floor)/step) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = size - float64(i)*step
	}
	return out
}

// ColorSizes paints sizes with interp over the reversed size extent: the
// largest size gets interp(0) and the smallest interp(1).
func ColorSizes(sizes []float64, interp palette.Interpolator) []string {
	if len(sizes) == 0 {
		return nil
	}
	lo, hi := sizes[0], sizes[0]
	for _, s := range sizes[1:] {
		lo, hi = min(lo, s), max(hi, s)
	}
	scale := palette.Sequential(interp, hi, lo)
	fills := make([]string, len(sizes))
	for i, s := range sizes {
		fills[i] = palette.Hex(scale(s))
	}
	return fills
}

// BuildStack expands a placed word into layers from its size down to floor
// in decrements of step.
func BuildStack(w cloud.PlacedWord, floor, step float64, interp palette.Interpolator) Stack {
	sizes := Sizes(w.Size, floor, step)
	fills := ColorSizes(sizes, interp)
	layers := make([]Layer, len(sizes))
	for i, s := range sizes {
		layers[i] = Layer{
			Text:   w.Text,
			Size:   s,
			Z:      i,
			Index:  i,
			Fill:   fills[i],
			X:      w.X,
			Y:      w.Y,
			Rotate: w.Rotate,
		}
	}
	return Stack{Word: w, Layers: layers}
}

// StackConfig controls [BuildStacks].
type StackConfig struct {
	Floor    float64
	Step     float64
	Gradient palette.Gradient
	Symbols  bool // assign a random shape to each stack
}

// DefaultStackConfig returns the text-variant configuration.
func DefaultStackConfig() StackConfig {
	return StackConfig{
		Floor:    DefaultTextFloor,
		Step:     DefaultStep,
		Gradient: palette.Default(),
	}
}

// BuildStacks expands every placed word. Words smaller than the floor
// produce no stack. rng is only consulted when cfg.Symbols is set.
func BuildStacks(words []cloud.PlacedWord, cfg StackConfig, rng *rand.Rand) []Stack {
	if cfg.Gradient.Interp == nil {
		cfg.Gradient = palette.Default()
	}
	stacks := make([]Stack, 0, len(words))
	for _, w := range words {
		st := BuildStack(w, cfg.Floor, cfg.Step, cfg.Gradient.Interp)
		if len(st.Layers) == 0 {
			continue
		}
		if cfg.Symbols {
			st.Shape = symbols.Random(rng)
		}
		stacks = append(stacks, st)
	}
	return stacks
}
