// Package sink renders word-cloud scenes to output formats.
//
// # Output Formats
//
//   - SVG: a static frame ([RenderSVG])
//   - Animated SVG: a frame plus SMIL tracks replaying a baked timeline
//     ([RenderAnimatedSVG])
//   - JSON: the scene and timeline as data ([RenderJSON])
//   - PNG and PDF: the static frame converted by rsvg-convert ([RenderPNG],
//     [RenderPDF])
//
// # Structure
//
// Everything is drawn inside a group translated to the canvas center. Each
// layer gets an outer group carrying its animated offset and an inner group
// carrying its placement, so offsets move in screen space regardless of
// the word's rotation:
//
//	<g id="wc-…-layer-0-1" transform="translate(dx,dy)">
//	  <g transform="translate(x,y) rotate(r)"><text …>word</text></g>
//	</g>
//
// Layers are drawn by depth: the outermost copy of every word first, then
// the next copy of every word, and so on.
//
// # PNG and PDF
//
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
package sink
