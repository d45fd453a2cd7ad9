// Package pkg provides the core libraries for Wordcloud.
//
// # Overview
//
// Wordcloud turns text into a cloud of words sized by frequency, extrudes
// every word into a stack of shrinking, colored copies, and animates the
// stacks with smooth noise, recoloring and, optionally, morphing symbol
// tiles.
//
// # Architecture
//
// The typical data flow:
//
//	raw text
//	    ↓
//	[textfreq] package (tokenize, drop stopwords, rank)
//	    ↓
//	[cloud] package (size words, place them on a spiral)
//	    ↓
//	[scene] package (layer stacks, symbol overlay, colors from [palette])
//	    ↓
//	[animate] package (per-tick displacement, recoloring, shape morphs)
//	    ↓
//	[render/sink] package (SVG, animated SVG, JSON, PNG, PDF)
//
// # Quick Start
//
//	c, err := pipeline.Render(ctx, text, pipeline.Options{Seed: pipeline.Seed(7)})
//	if err != nil {
//	    return err
//	}
//	defer c.Dispose()
//	os.WriteFile("cloud.svg", c.AnimatedSVG(), 0o644)
//
// # Main Packages
//
// [textfreq] - Word frequency analysis with an embedded stopword list.
//
// [symbols] - Vector path generators for square, circle, triangle and wave
// shapes, plus resampling so any two shapes can be interpolated.
//
// [noise] - Seeded Perlin noise mapped onto a numeric range.
//
// [palette] - Named color gradients and sequential scales.
//
// [cloud] - Font measurement and spiral word placement.
//
// [scene] - The drawable frame: word stacks, symbol tiles and backdrops.
//
// [animate] - The pure animation step, the timer-driven animator and
// timeline baking.
//
// [render/sink] - Output formats. [render] converts SVG to PDF and PNG.
//
// [pipeline] - Analyze → layout → build → render, shared by every entry
// point.
//
// [errors] and [observability] - Typed error codes and stage hooks.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test -run Example ./... # Examples only
package pkg
