package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/wordcloud/pkg/observability"
	"github.com/matzehuels/wordcloud/pkg/render/sink"
)

// Render produces every format in opts.Formats from c.
func (r *Runner) Render(ctx context.Context, c *Cloud, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		observability.Pipeline().OnRenderStart(ctx, format)
		start := time.Now()

		data, err := r.renderFormat(ctx, c, format, opts)
		observability.Pipeline().OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
		r.Logger.Info("rendered output", "format", format, "bytes", len(data), "duration", time.Since(start))
	}
	return artifacts, nil
}

func (r *Runner) renderFormat(ctx context.Context, c *Cloud, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		if opts.Static {
			return c.SVG(), nil
		}
		return c.AnimatedSVG(), nil
	case FormatJSON:
		return c.JSON()
	case FormatPNG:
		return sink.RenderPNG(ctx, c.Scene, sink.WithPNGSVGOptions(c.svgOptions()...), sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(ctx, c.Scene, c.svgOptions()...)
	default:
		return nil, ValidateFormat(format)
	}
}
