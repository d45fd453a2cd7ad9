package scene

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/palette"
)

func TestSizes(t *testing.T) {
	got := Sizes(120, 20, 10)
	want := []float64{120, 110, 100, 90, 80, 70, 60, 50, 40, 30, 20}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestSizesCount(t *testing.T) {
	tests := []struct {
		size, floor, step float64
		want              int
	}{
		{120, 20, 10, 11},
		{75, 20, 10, 6},
		{20, 20, 10, 1},
		{19.9, 20, 10, 0},
		{35, 30, 10, 1},
		{50, 10, 0, 1},
	}
	for _, tt := range tests {
		got := Sizes(tt.size, tt.floor, tt.step)
		if len(got) != tt.want {
			t.Errorf("Sizes(%v, %v, %v) has %d entries, want %d", tt.size, tt.floor, tt.step, len(got), tt.want)
		}
		for i := 1; i < len(got); i++ {
			if math.Abs(got[i-1]-got[i]-tt.step) > 1e-9 {
				t.Errorf("Sizes(%v, %v, %v): step %d is %v", tt.size, tt.floor, tt.step, i, got[i-1]-got[i])
			}
		}
	}
}

func TestBuildStack(t *testing.T) {
	w := cloud.PlacedWord{Text: "fox", Count: 3, Size: 120, X: 10, Y: -5, Rotate: 30}
	g := palette.Default()
	st := BuildStack(w, 20, 10, g.Interp)

	if len(st.Layers) != 11 {
		t.Fatalf("got %d layers, want 11", len(st.Layers))
	}
	for i, l := range st.Layers {
		if l.Z != i || l.Index != i {
			t.Errorf("layer %d has z=%d index=%d", i, l.Z, l.Index)
		}
		if l.Size != 120-float64(i)*10 {
			t.Errorf("layer %d size = %v", i, l.Size)
		}
		if l.X != 10 || l.Y != -5 || l.Rotate != 30 || l.Text != "fox" {
			t.Errorf("layer %d lost placement: %+v", i, l)
		}
	}
	if got, want := st.Layers[0].Fill, palette.Hex(g.Interp(0)); got != want {
		t.Errorf("top fill = %s, want %s", got, want)
	}
	if got, want := st.Layers[10].Fill, palette.Hex(g.Interp(1)); got != want {
		t.Errorf("bottom fill = %s, want %s", got, want)
	}
}

func TestBuildStacks(t *testing.T) {
	words := []cloud.PlacedWord{
		{Text: "big", Size: 100},
		{Text: "tiny", Size: 10},
		{Text: "mid", Size: 45},
	}
	cfg := DefaultStackConfig()
	stacks := BuildStacks(words, cfg, nil)
	if len(stacks) != 2 {
		t.Fatalf("got %d stacks, want 2 (tiny is below the floor)", len(stacks))
	}

	cfg.Symbols = true
	cfg.Floor = DefaultSymbolFloor
	a := BuildStacks(words, cfg, rand.New(rand.NewPCG(5, 5)))
	b := BuildStacks(words, cfg, rand.New(rand.NewPCG(5, 5)))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("seeded BuildStacks not reproducible:\n%s", diff)
	}
	for _, st := range a {
		for _, l := range st.Layers {
			if l.Size < DefaultSymbolFloor {
				t.Errorf("layer below floor: %+v", l)
			}
		}
	}
}

func TestFlatten(t *testing.T) {
	stacks := BuildStacks([]cloud.PlacedWord{
		{Text: "a", Size: 40},
		{Text: "b", Size: 30},
	}, DefaultStackConfig(), nil)
	flat := Flatten(stacks)
	var got []string
	for _, l := range flat {
		got = append(got, l.Text)
		if want := stacks[l.Stack].Word.Text; l.Text != want {
			t.Errorf("layer %q carries stack %d (%q)", l.Text, l.Stack, want)
		}
	}
	want := []string{"a", "b", "a", "b", "a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Flatten order mismatch (-want +got):\n%s", diff)
	}
}

func TestBand(t *testing.T) {
	b := NewBand(3, 0, 100, 0.1)
	step := 100 / 3.1
	if math.Abs(b.Step()-step) > 1e-9 {
		t.Errorf("step = %v, want %v", b.Step(), step)
	}
	if math.Abs(b.Bandwidth()-step*0.9) > 1e-9 {
		t.Errorf("bandwidth = %v", b.Bandwidth())
	}
	// Outer padding is symmetric.
	left := b.Pos(0)
	right := 100 - (b.Pos(2) + b.Bandwidth())
	if math.Abs(left-right) > 1e-9 || left <= 0 {
		t.Errorf("outer padding left=%v right=%v", left, right)
	}
	if b.Len() != 3 {
		t.Errorf("Len = %d", b.Len())
	}
}

func TestTileBox(t *testing.T) {
	w := cloud.PlacedWord{Text: "fox", Size: 80}
	box := cloud.Box{Width: 200, Ascent: 60, Descent: 20}
	cfg := DefaultOverlayConfig()
	got := TileBox(w, box, cfg, rand.New(rand.NewPCG(1, 1)))

	// cell = 80 * 0.75 = 60, floor(200 / 60) = 3 cells.
	if len(got) != 3 {
		t.Fatalf("got %d tile stacks, want 3", len(got))
	}
	for i, ts := range got {
		if ts.X < -100 || ts.X+ts.Cell > 100 {
			t.Errorf("stack %d escapes the box horizontally: x=%v cell=%v", i, ts.X, ts.Cell)
		}
		if ts.Y < -60 || ts.Y+ts.Cell > 20 {
			t.Errorf("stack %d escapes the box vertically: y=%v cell=%v", i, ts.Y, ts.Cell)
		}
		if i > 0 && ts.X <= got[i-1].X+got[i-1].Cell {
			t.Errorf("stack %d overlaps stack %d", i, i-1)
		}
		for j, tile := range ts.Tiles {
			if tile.Z != j || tile.Shape != ts.Shape {
				t.Errorf("tile %d/%d: %+v", i, j, tile)
			}
			if j > 0 && math.Abs(ts.Tiles[j-1].Size-tile.Size-DefaultStep) > 1e-9 {
				t.Errorf("tile sizes do not step by %v", DefaultStep)
			}
			if tile.Size < DefaultTileFloor {
				t.Errorf("tile below floor: %v", tile.Size)
			}
		}
	}
}

func TestTileBoxNarrowWordGetsOneCell(t *testing.T) {
	got := TileBox(cloud.PlacedWord{Text: "i"}, cloud.Box{Width: 30, Ascent: 40, Descent: 10}, DefaultOverlayConfig(), rand.New(rand.NewPCG(1, 1)))
	if len(got) != 1 {
		t.Fatalf("got %d stacks, want 1", len(got))
	}
}

func TestBuildOverlay(t *testing.T) {
	stacks := BuildStacks([]cloud.PlacedWord{
		{Text: "cloud", Size: 90, X: 5, Y: 6, Rotate: 90},
		{Text: "word", Size: 60},
	}, StackConfig{Floor: DefaultSymbolFloor, Step: DefaultStep, Symbols: true}, rand.New(rand.NewPCG(2, 2)))

	backdrops, tiles := BuildOverlay(stacks, cloud.DefaultRatioMeasurer, DefaultOverlayConfig(), rand.New(rand.NewPCG(3, 3)))
	if len(backdrops) != 2 {
		t.Fatalf("got %d backdrops, want 2", len(backdrops))
	}
	b := backdrops[0]
	if b.Text != "cloud" || b.Size != 90 || b.Rotate != 90 || b.Opacity != DefaultBackdropOpacity {
		t.Errorf("backdrop = %+v", b)
	}
	if len(tiles) == 0 {
		t.Fatal("no tiles")
	}
	s := Scene{TileStacks: tiles}
	if s.LayerCount() == 0 {
		t.Error("LayerCount should count tiles")
	}
}
