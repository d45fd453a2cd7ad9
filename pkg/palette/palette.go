// Package palette provides the named color gradients used to paint word
// stacks, and sequential scales that map a numeric domain onto them.
//
// Gradients are either ramps through a fixed list of color stops (blended
// in CIE L*a*b* space) or closed-form formulas. Every gradient accepts
// t in [0, 1]; values outside are clamped.
package palette

import (
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/wordcloud/pkg/errors"
)

// Interpolator maps t in [0, 1] to a color.
type Interpolator func(t float64) colorful.Color

// Gradient is a named interpolator.
type Gradient struct {
	Name   string
	Interp Interpolator
}

// DefaultName is the gradient used for the initial frame.
const DefaultName = "Viridis"

// Gradients lists every available gradient in a stable order.
var Gradients = []Gradient{
	{"Rainbow", Rainbow},
	{"Sinebow", Sinebow},
	{"BrBG", ramp(brBG)},
	{"PRGn", ramp(pRGn)},
	{"PiYG", ramp(piYG)},
	{"PuOr", ramp(puOr)},
	{"RdBu", ramp(rdBu)},
	{"RdGy", ramp(rdGy)},
	{"RdYlBu", ramp(rdYlBu)},
	{"RdYlGn", ramp(rdYlGn)},
	{"Spectral", ramp(spectral)},
	{"Blues", ramp(blues)},
	{"BuGn", ramp(buGn)},
	{"BuPu", ramp(buPu)},
	{"Cividis", ramp(cividis)},
	{"Cool", Cool},
	{"Cubehelix Default", CubehelixDefault},
	{"GnBu", ramp(gnBu)},
	{"Greens", ramp(greens)},
	{"Greys", ramp(greys)},
	{"Inferno", ramp(inferno)},
	{"Magma", ramp(magma)},
	{"Oranges", ramp(oranges)},
	{"OrRd", ramp(orRd)},
	{"Plasma", ramp(plasma)},
	{"PuBu", ramp(puBu)},
	{"PuBuGn", ramp(puBuGn)},
	{"PuRd", ramp(puRd)},
	{"Purples", ramp(purples)},
	{"RdPu", ramp(rdPu)},
	{"Reds", ramp(reds)},
	{"Turbo", Turbo},
	{"Viridis", ramp(viridis)},
	{"Warm", Warm},
	{"YlGn", ramp(ylGn)},
	{"YlGnBu", ramp(ylGnBu)},
	{"YlOrBr", ramp(ylOrBr)},
}

// ByName looks up a gradient, ignoring case and surrounding spaces.
func ByName(name string) (Gradient, error) {
	name = strings.TrimSpace(name)
	for _, g := range Gradients {
		if strings.EqualFold(g.Name, name) {
			return g, nil
		}
	}
	return Gradient{}, errors.New(errors.ErrCodeInvalidPalette, "unknown gradient %q", name)
}

// Default returns the Viridis gradient.
func Default() Gradient {
	g, _ := ByName(DefaultName)
	return g
}

// Names returns every gradient name in [Gradients] order.
func Names() []string {
	names := make([]string, len(Gradients))
	for i, g := range Gradients {
		names[i] = g.Name
	}
	return names
}

// Random picks a gradient uniformly.
func Random(rng *rand.Rand) Gradient {
	return Gradients[rng.IntN(len(Gradients))]
}

// Scale maps a domain value to a color.
type Scale func(v float64) colorful.Color

// Sequential maps the domain [d0, d1] linearly onto interp. The domain may
// be reversed (d0 > d1). A collapsed domain maps every value to t = 0.5.
func Sequential(interp Interpolator, d0, d1 float64) Scale {
	span := d1 - d0
	return func(v float64) colorful.Color {
		if span == 0 {
			return interp(0.5)
		}
		return interp((v - d0) / span)
	}
}

// Hex formats c as "#rrggbb" after clamping it into the RGB gamut.
func Hex(c colorful.Color) string {
	return c.Clamped().Hex()
}

func clamp01(t float64) float64 {
	return max(0, min(1, t))
}

// mustHex parses a "#rrggbb" literal and panics if it is malformed.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ramp builds an interpolator through evenly spaced hex color stops.
func ramp(stops string) Interpolator {
	fields := strings.Fields(stops)
	colors := make([]colorful.Color, len(fields))
	for i, f := range fields {
		colors[i] = mustHex("#" + f)
	}
	n := len(colors) - 1
	return func(t float64) colorful.Color {
		t = clamp01(t)
		i := min(n-1, int(t*float64(n)))
		local := t*float64(n) - float64(i)
		switch local {
		case 0:
			return colors[i]
		case 1:
			return colors[i+1]
		}
		return colors[i].BlendLab(colors[i+1], local).Clamped()
	}
}
