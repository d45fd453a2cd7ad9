// Package fonts provides the font used to measure and render word glyphs.
//
// Words are measured with Go Bold from golang.org/x/image so that layout is
// deterministic and independent of the fonts installed on the host. The same
// font can be embedded into SVG output, so the rendered glyphs match the
// measured boxes.
package fonts

import (
	"encoding/base64"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family name under which the embedded font is
// declared.
const FontFamily = "Go Bold"

// FallbackFontFamily is the font stack written into SVG text elements.
const FallbackFontFamily = `Impact, 'Go Bold', 'Arial Black', sans-serif`

// BoldTTF returns the TTF font data.
func BoldTTF() []byte {
	return gobold.TTF
}

var (
	bold     *opentype.Font
	boldErr  error
	boldOnce sync.Once
)

// Bold returns the parsed font. Parsing happens once.
func Bold() (*opentype.Font, error) {
	boldOnce.Do(func() {
		bold, boldErr = opentype.Parse(gobold.TTF)
	})
	return bold, boldErr
}

// NewFace returns an unhinted face at size pixels (72 DPI, so points equal
// pixels). Faces are not safe for concurrent use.
func NewFace(size float64) (font.Face, error) {
	f, err := Bold()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// Cache for the base64-encoded font (computed once on first access).
var (
	ttfBase64     string
	ttfBase64Once sync.Once
)

// BoldTTFBase64 returns the TTF font data as a base64 string.
// The result is cached after first computation.
func BoldTTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(gobold.TTF)
	})
	return ttfBase64
}
