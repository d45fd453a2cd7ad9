package cloud

import "math/rand/v2"

// RotateFunc chooses a rotation in degrees for the next word.
type RotateFunc func(rng *rand.Rand) float64

// Angles returns start, start+step, ... up to but excluding end.
func Angles(start, end, step float64) []float64 {
	if step <= 0 || end <= start {
		return nil
	}
	n := int((end - start) / step)
	if start+float64(n)*step < end {
		n++
	}
	angles := make([]float64, 0, n)
	for i := range n {
		angles = append(angles, start+float64(i)*step)
	}
	return angles
}

// RandomAngle picks uniformly from [Angles](start, end, step). An empty
// range always yields 0.
func RandomAngle(start, end, step float64) RotateFunc {
	angles := Angles(start, end, step)
	return func(rng *rand.Rand) float64 {
		if len(angles) == 0 {
			return 0
		}
		return angles[rng.IntN(len(angles))]
	}
}

// RightAngle picks 0 or 90 with equal probability.
func RightAngle() RotateFunc {
	return func(rng *rand.Rand) float64 {
		return float64(rng.IntN(2) * 90)
	}
}

// NoRotation keeps every word horizontal.
func NoRotation() RotateFunc {
	return func(*rand.Rand) float64 { return 0 }
}
