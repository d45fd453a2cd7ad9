package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Cubehelix coefficients (Green, 2011).
const (
	chA = -0.14861
	chB = +1.78277
	chC = -0.29227
	chD = -0.90649
	chE = +1.97294
)

// cubehelix converts a cubehelix color (hue in degrees) to RGB.
func cubehelix(h, s, l float64) colorful.Color {
	h = (h + 120) * math.Pi / 180
	a := s * l * (1 - l)
	cosh, sinh := math.Cos(h), math.Sin(h)
	return colorful.Color{
		R: l + a*(chA*cosh+chB*sinh),
		G: l + a*(chC*cosh+chD*sinh),
		B: l + a*(chE*cosh),
	}.Clamped()
}

// cubehelixLong interpolates hue, saturation and lightness linearly,
// taking the long way around the hue circle.
func cubehelixLong(h0, s0, l0, h1, s1, l1 float64) Interpolator {
	return func(t float64) colorful.Color {
		t = clamp01(t)
		return cubehelix(h0+(h1-h0)*t, s0+(s1-s0)*t, l0+(l1-l0)*t)
	}
}

// CubehelixDefault is the standard cubehelix ramp from black to white.
var CubehelixDefault = cubehelixLong(300, 0.5, 0.0, -240, 0.5, 1.0)

// Warm rotates from magenta through orange to yellow-green.
var Warm = cubehelixLong(-100, 0.75, 0.35, 80, 1.50, 0.8)

// Cool rotates from purple through blue to green.
var Cool = cubehelixLong(260, 0.75, 0.35, 80, 1.50, 0.8)

// Rainbow is the cyclical "less-angry" rainbow: Warm followed by reversed Cool.
func Rainbow(t float64) colorful.Color {
	if t < 0 || t > 1 {
		t -= math.Floor(t)
	}
	ts := math.Abs(t - 0.5)
	return cubehelix(360*t-100, 1.5-1.5*ts, 0.8-0.9*ts)
}

// Sinebow is a cyclical rainbow built from phase-shifted squared sines.
func Sinebow(t float64) colorful.Color {
	t = (0.5 - t) * math.Pi
	sq := func(x float64) float64 { s := math.Sin(x); return s * s }
	return colorful.Color{
		R: sq(t),
		G: sq(t + math.Pi/3),
		B: sq(t + 2*math.Pi/3),
	}
}

// Turbo is a polynomial approximation of Google's Turbo colormap.
func Turbo(t float64) colorful.Color {
	t = clamp01(t)
	channel := func(v float64) float64 {
		return max(0, min(255, math.Round(v))) / 255
	}
	return colorful.Color{
		R: channel(34.61 + t*(1172.33-t*(10793.56-t*(33300.12-t*(38394.49-t*14825.05))))),
		G: channel(23.31 + t*(557.33+t*(1225.33-t*(3574.96-t*(1073.77+t*707.56))))),
		B: channel(27.2 + t*(3211.1-t*(15327.97-t*(27814-t*(22569.18-t*6838.66))))),
	}
}
