package animate

import "math"

// EaseName identifies an easing curve.
type EaseName string

const (
	EaseLinear     EaseName = "linear"
	EaseCubicInOut EaseName = "cubic-in-out"
	EaseElastic    EaseName = "elastic"
)

// Ease maps normalized time to normalized progress.
type Ease func(t float64) float64

// Func returns the curve for n, defaulting to [Linear].
func (n EaseName) Func() Ease {
	switch n {
	case EaseElastic:
		return Elastic
	case EaseCubicInOut:
		return CubicInOut
	default:
		return Linear
	}
}

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// CubicInOut accelerates through the first half and decelerates through the
// second.
func CubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// Elastic overshoots its target and settles like a released spring
// (amplitude 1, period 0.3).
func Elastic(t float64) float64 {
	const (
		amplitude = 1.0
		period    = 0.3
	)
	p := period / (2 * math.Pi)
	s := math.Asin(1/amplitude) * p
	return 1 - amplitude*tpmt(t)*math.Sin((t+s)/p)
}

// tpmt is 2^(-10t), rescaled so that tpmt(0) = 1 and tpmt(1) = 0.
func tpmt(x float64) float64 {
	return (math.Pow(2, -10*x) - 0.0009765625) * 1.0009775171065494
}
