package symbols

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestGeneratorsPure(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			a := k.Path(1.5, 2, 40, 30)
			b := k.Path(1.5, 2, 40, 30)
			if a != b {
				t.Errorf("%s not deterministic: %q vs %q", k, a, b)
			}
			if !strings.HasPrefix(a, "M") || !strings.HasSuffix(a, "Z") {
				t.Errorf("%s path not closed: %q", k, a)
			}
		})
	}
}

func TestSquare(t *testing.T) {
	got := Square(0, 0, 10, 20)
	want := "M0,0L10,0L10,20L0,20Z"
	if got != want {
		t.Errorf("Square = %q, want %q", got, want)
	}
}

func TestDiamond(t *testing.T) {
	got := Diamond(0, 0, 10, 20)
	want := "M5,0L0,10L5,20L10,10Z"
	if got != want {
		t.Errorf("Diamond = %q, want %q", got, want)
	}
}

func TestCircle(t *testing.T) {
	got := Circle(0, 0, 20, 10)
	want := "M 20,5 A 10,5 0 0,1 0,5 A 10,5 0 0,1 20,5 Z"
	if got != want {
		t.Errorf("Circle = %q, want %q", got, want)
	}
}

func TestXHasTwelvePoints(t *testing.T) {
	got := X(0, 0, 40, 40)
	if n := strings.Count(got, "M") + strings.Count(got, "L"); n != 12 {
		t.Errorf("X has %d vertices, want 12: %q", n, got)
	}
	if !strings.HasPrefix(got, "M10,0L0,10L10,20") {
		t.Errorf("X starts unexpectedly: %q", got)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(strings.ToUpper(k.String()))
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("hexagon"); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText(): %v", k, err)
		}
		var got Kind
		if err := got.UnmarshalText(text); err != nil || got != k {
			t.Errorf("UnmarshalText(%q) = %v, %v", text, got, err)
		}
	}
	if _, err := Kind(9).MarshalText(); err == nil {
		t.Error("expected error for out-of-range kind")
	}
	var k Kind
	if err := k.UnmarshalText([]byte("hexagon")); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestRandomCoversAllKinds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	seen := make(map[Kind]bool)
	for range 200 {
		seen[Random(rng)] = true
	}
	if len(seen) != len(Kinds) {
		t.Errorf("Random produced %d kinds, want %d", len(seen), len(Kinds))
	}
}

func TestNumFormatting(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1.5, "1.5"},
		{0.1 + 0.2, "0.3"},
		{-12.34567, "-12.346"},
		{100, "100"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
