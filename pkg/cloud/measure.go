package cloud

import (
	"golang.org/x/image/font"

	"github.com/matzehuels/wordcloud/pkg/fonts"
)

// Box is the extent of a text run drawn with its anchor at the middle of the
// baseline: it spans [-Width/2, Width/2] horizontally and [-Ascent, Descent]
// vertically (y grows downward).
type Box struct {
	Width   float64 `json:"width"`
	Ascent  float64 `json:"ascent"`
	Descent float64 `json:"descent"`
}

// Height returns Ascent + Descent.
func (b Box) Height() float64 { return b.Ascent + b.Descent }

// Measurer reports the box of text drawn at a font size.
type Measurer interface {
	Measure(text string, size float64) Box
}

// FontMeasurer measures text with the embedded bold font. Width is the
// advance; the vertical extent is the ink bounds of the glyphs, so "saw"
// is shorter than "Hold". Faces are cached per size; a FontMeasurer is not
// safe for concurrent use.
type FontMeasurer struct {
	faces map[float64]font.Face
	// fallback is used if the font cannot be loaded.
	fallback RatioMeasurer
}

// NewFontMeasurer returns a measurer backed by [fonts.NewFace].
func NewFontMeasurer() *FontMeasurer {
	return &FontMeasurer{
		faces:    make(map[float64]font.Face),
		fallback: DefaultRatioMeasurer,
	}
}

// Measure implements [Measurer].
func (m *FontMeasurer) Measure(text string, size float64) Box {
	face, ok := m.faces[size]
	if !ok {
		f, err := fonts.NewFace(size)
		if err != nil {
			return m.fallback.Measure(text, size)
		}
		m.faces[size] = f
		face = f
	}
	bounds, advance := font.BoundString(face, text)
	return Box{
		Width:   fixedToFloat(advance),
		Ascent:  fixedToFloat(-bounds.Min.Y),
		Descent: fixedToFloat(bounds.Max.Y),
	}
}

// Close releases cached faces.
func (m *FontMeasurer) Close() error {
	for size, f := range m.faces {
		_ = f.Close()
		delete(m.faces, size)
	}
	return nil
}

// RatioMeasurer approximates text boxes from fixed proportions of the font
// size. It is fast and needs no font data.
type RatioMeasurer struct {
	CharWidth float64 // advance per rune, as a fraction of size
	Ascent    float64 // fraction of size above the baseline
	Descent   float64 // fraction of size below the baseline
}

// DefaultRatioMeasurer roughly matches a bold sans-serif face.
var DefaultRatioMeasurer = RatioMeasurer{CharWidth: 0.6, Ascent: 0.8, Descent: 0.2}

// Measure implements [Measurer].
func (m RatioMeasurer) Measure(text string, size float64) Box {
	return Box{
		Width:   float64(len([]rune(text))) * m.CharWidth * size,
		Ascent:  m.Ascent * size,
		Descent: m.Descent * size,
	}
}

func fixedToFloat[T ~int32](v T) float64 {
	return float64(v) / 64
}
