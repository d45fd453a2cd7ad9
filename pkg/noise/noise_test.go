package noise

import (
	"math"
	"testing"
)

func TestNewRange(t *testing.T) {
	f := New(-20, 20, Options{Seed: 7})
	for i := range 2000 {
		x := float64(i) * 0.37
		if v := f(x); v < -20 || v > 20 {
			t.Fatalf("f(%v) = %v, outside [-20, 20]", x, v)
		}
	}
}

func TestNewReproducible(t *testing.T) {
	a := New(0, 1, Options{Seed: 42, Octaves: 3})
	b := New(0, 1, Options{Seed: 42, Octaves: 3})
	for i := range 100 {
		x := float64(i) * 1.3
		if a(x) != b(x) {
			t.Fatalf("same seed diverged at x=%v: %v vs %v", x, a(x), b(x))
		}
	}
}

func TestNewContinuous(t *testing.T) {
	f := New(-20, 20, Options{Seed: 3})
	const h = 1e-4
	for i := range 200 {
		x := float64(i) * 2.1
		if d := math.Abs(f(x+h) - f(x)); d > 0.1 {
			t.Errorf("jump of %v at x=%v", d, x)
		}
	}
}

func TestNewVaries(t *testing.T) {
	f := New(-20, 20, Options{Seed: 11})
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range 500 {
		v := f(float64(i) * 3.7)
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if hi-lo < 1 {
		t.Errorf("noise barely varies: [%v, %v]", lo, hi)
	}
}
