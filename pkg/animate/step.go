package animate

import (
	"math/rand/v2"
	"time"

	"github.com/matzehuels/wordcloud/pkg/palette"
	"github.com/matzehuels/wordcloud/pkg/scene"
	"github.com/matzehuels/wordcloud/pkg/symbols"
)

// Step advances s by one tick. It picks a new gradient, displaces every
// stack along the noise fields, recolors every layer, and for tile stacks
// either recolors in place or morphs to a new shape. The returned
// transitions describe how to get from s to the returned state.
//
// Step is pure: s is not modified, and equal (s, env) pairs give equal
// results.
func Step(s State, env Env) (State, []Transition) {
	env = env.withDefaults()
	next := s.Clone()
	next.Frame++
	rng := rand.New(rand.NewPCG(env.Seed, uint64(next.Frame)))

	g := palette.Random(rng)
	next.Gradient = g.Name
	t := float64(next.Frame)

	var out []Transition
	for si := range next.Stacks {
		st := &next.Stacks[si]
		dx := env.NoiseX(st.Word.X + t)
		dy := env.NoiseY(st.Word.Y + t)

		sizes := make([]float64, len(st.Layers))
		for i, l := range st.Layers {
			sizes[i] = l.Size
		}
		fills := scene.ColorSizes(sizes, g.Interp)

		for i := range st.Layers {
			old := st.Layers[i]
			l := &st.Layers[i]
			l.Index = i
			l.DX, l.DY = dx*float64(i), dy*float64(i)
			l.Fill = fills[i]

			target := Target{Group: GroupLayer, Stack: si, Index: i}
			out = append(out,
				env.move(target, i, Offset{old.DX, old.DY}, Offset{l.DX, l.DY}),
				env.fill(target, i, old.Fill, l.Fill),
			)
		}
	}

	for si := range next.TileStacks {
		ts := &next.TileStacks[si]
		dx := env.NoiseX(ts.Word.X + ts.X + t)
		dy := env.NoiseY(ts.Word.Y + ts.Y + t)

		sizes := make([]float64, len(ts.Tiles))
		for i, tile := range ts.Tiles {
			sizes[i] = tile.Size
		}
		fills := scene.ColorSizes(sizes, g.Interp)

		shape := ts.Shape
		if rng.Float64() >= env.KeepShape {
			shape = symbols.Random(rng)
		}

		for i := range ts.Tiles {
			old := ts.Tiles[i]
			tile := &ts.Tiles[i]
			tile.Index = i
			tile.DX, tile.DY = dx*float64(i), dy*float64(i)
			tile.Fill = fills[i]

			target := Target{Group: GroupTile, Stack: si, Index: i}
			out = append(out,
				env.move(target, i, Offset{old.DX, old.DY}, Offset{tile.DX, tile.DY}),
				env.fill(target, i, old.Fill, tile.Fill),
			)
			if shape == ts.Shape {
				continue
			}
			tile.Shape = shape
			if tr, ok := env.morph(target, i, old.Path(), tile.Path()); ok {
				out = append(out, tr)
			} else {
				tile.Shape = old.Shape
			}
		}
		if len(ts.Tiles) > 0 {
			ts.Shape = ts.Tiles[0].Shape
		}
	}

	return next, out
}

func (e Env) delay(i int) time.Duration {
	return e.Stagger * time.Duration(i)
}

func (e Env) move(target Target, i int, from, to Offset) Transition {
	return Transition{
		Target:     target,
		Kind:       KindTransform,
		FromOffset: from,
		ToOffset:   to,
		Delay:      e.delay(i),
		Duration:   e.Duration,
		Ease:       EaseElastic,
	}
}

func (e Env) fill(target Target, i int, from, to string) Transition {
	return Transition{
		Target:   target,
		Kind:     KindFill,
		From:     from,
		To:       to,
		Delay:    e.delay(i),
		Duration: e.Duration,
		Ease:     EaseCubicInOut,
	}
}

// morph builds a path transition whose endpoints share one command
// structure. It reports false when either outline cannot be sampled.
func (e Env) morph(target Target, i int, from, to string) (Transition, bool) {
	interp, err := symbols.InterpolateN(from, to, e.Samples)
	if err != nil {
		return Transition{}, false
	}
	return Transition{
		Target:   target,
		Kind:     KindPath,
		From:     interp(0),
		To:       interp(1),
		Delay:    e.delay(i),
		Duration: e.Duration,
		Ease:     EaseCubicInOut,
	}, true
}
