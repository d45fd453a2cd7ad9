package scene

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/palette"
	"github.com/matzehuels/wordcloud/pkg/symbols"
)

// Overlay defaults.
const (
	DefaultVerticalPadding = 0.25
	DefaultBandPadding     = 0.1
	DefaultBackdropFill    = "#000"
	DefaultBackdropOpacity = 0.05
)

// OverlayConfig controls [BuildOverlay].
type OverlayConfig struct {
	VerticalPadding float64 // fraction of box height removed from each cell
	BandPadding     float64 // band scale padding between cells
	Floor           float64 // smallest tile size
	Step            float64 // tile size decrement
	Gradient        palette.Gradient
}

// DefaultOverlayConfig returns the symbol-variant overlay configuration.
func DefaultOverlayConfig() OverlayConfig {
	return OverlayConfig{
		VerticalPadding: DefaultVerticalPadding,
		BandPadding:     DefaultBandPadding,
		Floor:           DefaultTileFloor,
		Step:            DefaultStep,
		Gradient:        palette.Default(),
	}
}

// BuildOverlay replaces each stack with a faint backdrop of its top layer
// and tiles the backdrop's bounding box with symbol stacks. The box is
// measured with m, in the word's local (unrotated) frame.
func BuildOverlay(stacks []Stack, m cloud.Measurer, cfg OverlayConfig, rng *rand.Rand) ([]Backdrop, []TileStack) {
	if cfg.Gradient.Interp == nil {
		cfg.Gradient = palette.Default()
	}
	var (
		backdrops []Backdrop
		tiles     []TileStack
	)
	for _, st := range stacks {
		if len(st.Layers) == 0 {
			continue
		}
		top := st.Layers[0]
		backdrops = append(backdrops, Backdrop{
			Text:    top.Text,
			Size:    top.Size,
			X:       top.X,
			Y:       top.Y,
			Rotate:  top.Rotate,
			Fill:    DefaultBackdropFill,
			Opacity: DefaultBackdropOpacity,
		})
		box := m.Measure(top.Text, top.Size)
		tiles = append(tiles, TileBox(st.Word, box, cfg, rng)...)
	}
	return backdrops, tiles
}

// TileBox covers box with a row of square cells. Cells are as tall as the
// box minus the vertical padding; as many whole cells as fit are spread
// across the box width with a band scale.
func TileBox(w cloud.PlacedWord, box cloud.Box, cfg OverlayConfig, rng *rand.Rand) []TileStack {
	h := box.Height()
	cell := h * (1 - cfg.VerticalPadding)
	if cell <= 0 || box.Width <= 0 {
		return nil
	}
	n := max(1, int(math.Floor(box.Width/cell)))
	x0 := -box.Width / 2
	band := NewBand(n, x0, x0+box.Width, cfg.BandPadding)
	size := min(band.Bandwidth(), cell)
	y := -box.Ascent + (h-size)/2

	var out []TileStack
	for i := range n {
		x := band.Pos(i) + (band.Bandwidth()-size)/2
		if ts, ok := buildTileStack(w, x, y, size, cfg, symbols.Random(rng)); ok {
			out = append(out, ts)
		}
	}
	return out
}

func buildTileStack(w cloud.PlacedWord, x, y, cell float64, cfg OverlayConfig, shape symbols.Kind) (TileStack, bool) {
	sizes := Sizes(cell, cfg.Floor, cfg.Step)
	if len(sizes) == 0 {
		return TileStack{}, false
	}
	fills := ColorSizes(sizes, cfg.Gradient.Interp)
	tiles := make([]SymbolTile, len(sizes))
	for i, s := range sizes {
		off := (cell - s) / 2
		tiles[i] = SymbolTile{
			X:     x + off,
			Y:     y + off,
			Size:  s,
			Fill:  fills[i],
			Shape: shape,
			Z:     i,
			Index: i,
		}
	}
	return TileStack{Word: w, X: x, Y: y, Cell: cell, Shape: shape, Tiles: tiles}, true
}
