// Package noise provides seeded one-dimensional coherent noise mapped into a
// numeric range. It drives the organic displacement of word stacks.
package noise

import (
	perlin "github.com/aquilax/go-perlin"
)

// Default noise parameters.
const (
	DefaultOctaves   = 3
	DefaultFrequency = 0.05

	// alpha is the weight divisor between successive octaves; beta is the
	// frequency multiplier. These are the conventional Perlin values.
	alpha = 2.0
	beta  = 2.0
)

// Options configures a noise function.
type Options struct {
	Octaves   int     // number of summed octaves; default 3
	Seed      int64   // generator seed; equal seeds give equal functions
	Frequency float64 // input scale applied before sampling; default 0.05
}

// Func maps a scalar input to a smoothly varying value.
type Func func(x float64) float64

// New returns a function whose output lies in [lo, hi]. The function is
// continuous in x and reproducible for a fixed seed.
func New(lo, hi float64, opts Options) Func {
	if opts.Octaves <= 0 {
		opts.Octaves = DefaultOctaves
	}
	if opts.Frequency == 0 {
		opts.Frequency = DefaultFrequency
	}
	p := perlin.NewPerlin(alpha, beta, int32(opts.Octaves), opts.Seed)
	freq := opts.Frequency

	return func(x float64) float64 {
		v := p.Noise1D(x * freq)
		t := max(0, min(1, (v+1)/2))
		return lo + (hi-lo)*t
	}
}
