package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/wordcloud/pkg/animate"
	"github.com/matzehuels/wordcloud/pkg/fonts"
	"github.com/matzehuels/wordcloud/pkg/scene"
)

// Text styling shared by every layer.
const (
	strokeColor = "#000"
	strokeWidth = 0.1
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	font       string
	title      string
	id         string
	background string
	embedFont  bool
}

// WithFont sets the CSS font-family of word text.
func WithFont(family string) SVGOption {
	return func(r *svgRenderer) {
		if family != "" {
			r.font = family
		}
	}
}

// WithTitle adds a <title> element.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// WithID derives the document ID from name. Equal names give equal IDs,
// so output stays reproducible.
func WithID(name string) SVGOption {
	return func(r *svgRenderer) { r.id = docID(name) }
}

// WithBackground fills the canvas with color before drawing.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// WithEmbeddedFont embeds the measurement font as a base64 @font-face, so
// rendered glyphs match the boxes used for layout.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

func newSVGRenderer(s scene.Scene, opts ...SVGOption) svgRenderer {
	r := svgRenderer{font: fonts.FallbackFontFamily}
	for _, opt := range opts {
		opt(&r)
	}
	if r.id == "" {
		r.id = docID(sceneKey(s))
	}
	if r.embedFont {
		r.font = "'" + fonts.FontFamily + "', " + r.font
	}
	return r
}

// RenderSVG renders a static frame of s.
func RenderSVG(s scene.Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(s, opts...)
	var buf bytes.Buffer
	r.render(&buf, s, nil)
	return buf.Bytes()
}

func (r *svgRenderer) render(buf *bytes.Buffer, s scene.Scene, tracks trackSet) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" id="%s" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		r.id, num(s.Width), num(s.Height), num(s.Width), num(s.Height))
	if r.title != "" {
		fmt.Fprintf(buf, "  <title>%s</title>\n", escapeXML(r.title))
	}
	if r.embedFont {
		fmt.Fprintf(buf, "  <defs><style>@font-face{font-family:'%s';src:url(data:font/ttf;base64,%s) format('truetype');}</style></defs>\n",
			fonts.FontFamily, fonts.BoldTTFBase64())
	}
	if r.background != "" {
		fmt.Fprintf(buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(r.background))
	}

	fmt.Fprintf(buf, `  <g transform="translate(%s,%s)">`+"\n", num(s.Width/2), num(s.Height/2))
	for _, b := range s.Backdrops {
		r.renderBackdrop(buf, b)
	}
	for _, e := range scene.Flatten(s.Stacks) {
		r.renderLayer(buf, e.Stack, e.Layer, tracks)
	}
	for si, ts := range s.TileStacks {
		for _, tile := range ts.Tiles {
			r.renderTile(buf, si, ts, tile, tracks)
		}
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
}

func (r *svgRenderer) renderBackdrop(buf *bytes.Buffer, b scene.Backdrop) {
	fmt.Fprintf(buf, `    <text transform="%s" font-family="%s" font-weight="bold" font-size="%s" text-anchor="middle" fill="%s" fill-opacity="%s">%s</text>`+"\n",
		place(b.X, b.Y, b.Rotate), escapeXML(r.font), num(b.Size), b.Fill, num(b.Opacity), escapeXML(b.Text))
}

func (r *svgRenderer) renderLayer(buf *bytes.Buffer, stack int, l scene.Layer, tracks trackSet) {
	target := animate.Target{Group: animate.GroupLayer, Stack: stack, Index: l.Index}
	t := tracks[target]

	fmt.Fprintf(buf, `    <g id="%s" transform="translate(%s,%s)">`, r.elementID(target), num(l.DX), num(l.DY))
	t.writeTransform(buf)
	fmt.Fprintf(buf, `<g transform="%s">`, place(l.X, l.Y, l.Rotate))
	fmt.Fprintf(buf, `<text font-family="%s" font-weight="bold" font-size="%s" text-anchor="middle" fill="%s" stroke="%s" stroke-width="%s">`,
		escapeXML(r.font), num(l.Size), l.Fill, strokeColor, num(strokeWidth))
	t.writeFill(buf)
	buf.WriteString(escapeXML(l.Text))
	buf.WriteString("</text></g></g>\n")
}

func (r *svgRenderer) renderTile(buf *bytes.Buffer, stack int, ts scene.TileStack, tile scene.SymbolTile, tracks trackSet) {
	target := animate.Target{Group: animate.GroupTile, Stack: stack, Index: tile.Index}
	t := tracks[target]

	fmt.Fprintf(buf, `    <g id="%s" transform="translate(%s,%s)">`, r.elementID(target), num(tile.DX), num(tile.DY))
	t.writeTransform(buf)
	fmt.Fprintf(buf, `<g transform="%s">`, place(ts.Word.X, ts.Word.Y, ts.Word.Rotate))
	d := tile.Path()
	if t != nil && len(t.path.values) > 0 {
		d = t.path.values[0]
	}
	fmt.Fprintf(buf, `<path d="%s" fill="%s" stroke="%s" stroke-width="%s">`, d, tile.Fill, strokeColor, num(strokeWidth))
	t.writeFill(buf)
	t.writePath(buf)
	buf.WriteString("</path></g></g>\n")
}

func (r *svgRenderer) elementID(t animate.Target) string {
	return r.id + "-" + t.ID()
}

func place(x, y, rotate float64) string {
	if rotate == 0 {
		return "translate(" + num(x) + "," + num(y) + ")"
	}
	return "translate(" + num(x) + "," + num(y) + ") rotate(" + num(rotate) + ")"
}

// docID returns "wc-" followed by the first block of a name-based UUID.
func docID(name string) string {
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
	return "wc-" + id[:8]
}

func sceneKey(s scene.Scene) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s|%s|%s|%s", num(s.Width), num(s.Height), s.Variant, s.Gradient)
	for _, st := range s.Stacks {
		fmt.Fprintf(&sb, "|%s:%s", st.Word.Text, num(st.Word.Size))
	}
	for _, b := range s.Backdrops {
		fmt.Fprintf(&sb, "|%s:%s", b.Text, num(b.Size))
	}
	return sb.String()
}

// num formats v with at most two decimals.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
