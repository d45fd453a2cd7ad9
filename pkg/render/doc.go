// Package render converts rendered SVG into raster and print formats.
//
// The [sink] subpackage produces SVG (static and animated) and JSON from a
// scene. [ToPNG] and [ToPDF] convert any SVG using the external
// rsvg-convert tool from librsvg:
//
//	svg := sink.RenderSVG(sc)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//	pdf, err := render.ToPDF(ctx, svg)
//
// Only the static frame survives conversion; SMIL animation is dropped.
package render
