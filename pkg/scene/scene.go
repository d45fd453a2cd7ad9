// Package scene builds the immutable description of a word-cloud frame.
//
// A placed word becomes a [Stack]: copies of the word at decreasing sizes
// drawn on top of each other to fake depth. In the symbol variant, each
// word is reduced to a faint [Backdrop] glyph and its bounding box is tiled
// with [TileStack]s of vector shapes.
//
// Scenes are values. Builders return fresh slices and never modify their
// inputs, so a Scene can be rendered or animated from any goroutine.
package scene

import (
	"cmp"
	"slices"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/symbols"
)

// Variant selects how stacks are drawn.
type Variant string

const (
	VariantText    Variant = "text"
	VariantSymbols Variant = "symbols"
)

// Layer is one copy of a word within its stack.
type Layer struct {
	Text   string  `json:"text"`
	Size   float64 `json:"size"`
	Z      int     `json:"z"`
	Fill   string  `json:"fill"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Rotate float64 `json:"rotate"`
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
	Index  int     `json:"index"`
}

// Stack is the set of layers expanded from one placed word. Layers are
// ordered by Z; Z 0 is the largest, outermost copy.
type Stack struct {
	Word   cloud.PlacedWord `json:"word"`
	Layers []Layer          `json:"layers"`
	Shape  symbols.Kind     `json:"shape"`
}

// SymbolTile is one shape within a tile stack. X and Y are the top-left
// corner of the shape's box in the word's local frame.
type SymbolTile struct {
	X     float64      `json:"x"`
	Y     float64      `json:"y"`
	Size  float64      `json:"size"`
	Fill  string       `json:"fill"`
	Shape symbols.Kind `json:"shape"`
	Z     int          `json:"z"`
	DX    float64      `json:"dx"`
	DY    float64      `json:"dy"`
	Index int          `json:"index"`
}

// Path returns the tile's outline.
func (t SymbolTile) Path() string {
	return t.Shape.Path(t.X, t.Y, t.Size, t.Size)
}

// TileStack covers one cell of a word's bounding box with shrinking,
// concentric symbols that share a shape.
type TileStack struct {
	Word  cloud.PlacedWord `json:"word"`
	X     float64          `json:"x"`
	Y     float64          `json:"y"`
	Cell  float64          `json:"cell"`
	Shape symbols.Kind     `json:"shape"`
	Tiles []SymbolTile     `json:"tiles"`
}

// Backdrop is the faint glyph left behind when a word is replaced by tiles.
type Backdrop struct {
	Text    string  `json:"text"`
	Size    float64 `json:"size"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Rotate  float64 `json:"rotate"`
	Fill    string  `json:"fill"`
	Opacity float64 `json:"opacity"`
}

// Scene is a complete frame description. Coordinates are relative to the
// canvas center.
type Scene struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Variant    Variant     `json:"variant"`
	Gradient   string      `json:"gradient"`
	Stacks     []Stack     `json:"stacks,omitempty"`
	Backdrops  []Backdrop  `json:"backdrops,omitempty"`
	TileStacks []TileStack `json:"tile_stacks,omitempty"`
}

// LayerCount returns the number of drawable layers and tiles.
func (s Scene) LayerCount() int {
	n := 0
	for _, st := range s.Stacks {
		n += len(st.Layers)
	}
	for _, ts := range s.TileStacks {
		n += len(ts.Tiles)
	}
	return n
}

// StackLayer is a layer together with the index of its stack.
type StackLayer struct {
	Stack int
	Layer
}

// Flatten returns every layer sorted by Z, so that outer copies of all
// words are drawn before inner ones. Ties keep stack order.
func Flatten(stacks []Stack) []StackLayer {
	var out []StackLayer
	for si, st := range stacks {
		for _, l := range st.Layers {
			out = append(out, StackLayer{Stack: si, Layer: l})
		}
	}
	slices.SortStableFunc(out, func(a, b StackLayer) int {
		return cmp.Compare(a.Z, b.Z)
	})
	return out
}
