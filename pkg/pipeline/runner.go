package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/errors"
	"github.com/matzehuels/wordcloud/pkg/observability"
	"github.com/matzehuels/wordcloud/pkg/palette"
	"github.com/matzehuels/wordcloud/pkg/scene"
	"github.com/matzehuels/wordcloud/pkg/textfreq"
)

// Runner executes pipeline stages and logs their progress.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Words       int // distinct words after analysis
	Placed      int // words that fit on the canvas
	Layers      int // drawable layers and tiles
	AnalyzeTime time.Duration
	LayoutTime  time.Duration
	BuildTime   time.Duration
}

// Result contains the outputs of a full pipeline run.
type Result struct {
	// Cloud is the built word cloud. The caller must Dispose it.
	Cloud *Cloud

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Render builds a word cloud from text with a runner using opts.Logger.
// The returned cloud is idle unless opts.AutoStart is set; call
// [Cloud.Start] to animate it.
func Render(ctx context.Context, text string, opts Options) (*Cloud, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	c, _, err := NewRunner(opts.Logger).Build(ctx, text, opts)
	return c, err
}

// Execute runs the complete analyze → layout → build → render pipeline.
func (r *Runner) Execute(ctx context.Context, text string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	c, stats, err := r.Build(ctx, text, opts)
	if err != nil {
		return nil, err
	}
	result := &Result{Cloud: c, Stats: stats}

	artifacts, err := r.Render(ctx, c, opts)
	if err != nil {
		c.Dispose()
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	return result, nil
}

// Build runs every stage up to the scene and wraps it in a Cloud. The cloud
// is idle unless opts.AutoStart is set, in which case its animator is
// already running and calls opts.OnFrame on every tick.
func (r *Runner) Build(ctx context.Context, text string, opts Options) (*Cloud, Stats, error) {
	var stats Stats
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, stats, fmt.Errorf("invalid options: %w", err)
	}

	// Stage 1: Analyze
	start := time.Now()
	freqs, err := r.Analyze(ctx, text, opts)
	if err != nil {
		return nil, stats, fmt.Errorf("analyze: %w", err)
	}
	stats.Words = len(freqs)
	stats.AnalyzeTime = time.Since(start)
	r.Logger.Info("analyzed text", "words", stats.Words, "duration", stats.AnalyzeTime)

	// Stage 2: Layout
	start = time.Now()
	placed, err := r.Layout(ctx, freqs, opts)
	if err != nil {
		return nil, stats, fmt.Errorf("layout: %w", err)
	}
	stats.Placed = len(placed)
	stats.LayoutTime = time.Since(start)
	r.Logger.Info("placed words", "placed", stats.Placed, "dropped", stats.Words-stats.Placed, "duration", stats.LayoutTime)

	// Stage 3: Build
	start = time.Now()
	sc, err := r.Scene(placed, opts)
	if err != nil {
		return nil, stats, fmt.Errorf("build: %w", err)
	}
	stats.Layers = sc.LayerCount()
	stats.BuildTime = time.Since(start)
	r.Logger.Info("built scene", "variant", sc.Variant, "layers", stats.Layers, "duration", stats.BuildTime)

	c := newCloud(sc, opts)
	if opts.AutoStart {
		c.Start(ctx, opts.OnFrame)
	}
	return c, stats, nil
}

// Analyze counts the words of text, ranked by frequency.
func (r *Runner) Analyze(ctx context.Context, text string, opts Options) ([]textfreq.WordFrequency, error) {
	observability.Pipeline().OnAnalyzeStart(ctx, len(text))
	start := time.Now()

	if err := ctx.Err(); err != nil {
		observability.Pipeline().OnAnalyzeComplete(ctx, 0, time.Since(start), err)
		return nil, err
	}
	stop := textfreq.DefaultStopwords()
	if len(opts.Stopwords) > 0 {
		stop = stop.With(opts.Stopwords...)
	}
	freqs := textfreq.Analyze(text, stop, opts.Count)
	if len(freqs) == 0 {
		r.Logger.Warn("no words left after removing stopwords")
	}

	observability.Pipeline().OnAnalyzeComplete(ctx, len(freqs), time.Since(start), nil)
	return freqs, nil
}

// Layout sizes and places freqs. Words that do not fit are dropped.
func (r *Runner) Layout(ctx context.Context, freqs []textfreq.WordFrequency, opts Options) ([]cloud.PlacedWord, error) {
	words := cloud.SizeWords(freqs, opts.MinSize, opts.MaxSize)
	observability.Pipeline().OnLayoutStart(ctx, len(words))
	start := time.Now()

	m := opts.Measurer
	if m == nil {
		fm := cloud.NewFontMeasurer()
		defer fm.Close()
		m = fm
	}
	l := cloud.Layout{
		Width:    opts.Width,
		Height:   opts.Height,
		Padding:  opts.Padding,
		Rotate:   opts.Rotation(),
		Measurer: m,
		Rand:     opts.rand(0),
		OnEnd: func(placed []cloud.PlacedWord) {
			r.Logger.Debug("layout ended", "placed", len(placed), "dropped", len(words)-len(placed))
			if opts.OnLayoutEnd != nil {
				opts.OnLayoutEnd(placed)
			}
		},
	}
	placed, err := l.Place(ctx, words)
	if err != nil && ctx.Err() == nil && !errors.Is(err, errors.ErrCodeInvalidOption) {
		err = errors.Wrap(errors.ErrCodeLayoutFailed, err, "placing %d words", len(words))
	}

	observability.Pipeline().OnLayoutComplete(ctx, len(placed), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// Scene expands placed words into stacks and, for the symbol variant,
// replaces them with backdrops and tiles.
func (r *Runner) Scene(placed []cloud.PlacedWord, opts Options) (scene.Scene, error) {
	g, err := palette.ByName(opts.Palette)
	if err != nil {
		return scene.Scene{}, err
	}
	rng := opts.rand(1)

	cfg := scene.DefaultStackConfig()
	cfg.Floor = opts.StackFloor()
	cfg.Gradient = g
	cfg.Symbols = opts.Symbols
	stacks := scene.BuildStacks(placed, cfg, rng)

	sc := scene.Scene{
		Width:    opts.Width,
		Height:   opts.Height,
		Variant:  scene.VariantText,
		Gradient: g.Name,
		Stacks:   stacks,
	}
	if !opts.Symbols {
		return sc, nil
	}

	m := opts.Measurer
	if m == nil {
		fm := cloud.NewFontMeasurer()
		defer fm.Close()
		m = fm
	}
	ocfg := scene.DefaultOverlayConfig()
	ocfg.Gradient = g
	sc.Variant = scene.VariantSymbols
	sc.Backdrops, sc.TileStacks = scene.BuildOverlay(stacks, m, ocfg, rng)
	sc.Stacks = nil
	return sc, nil
}

// rand returns the generator for one pipeline stage. Stages draw from
// separate streams so that changing one stage leaves the others stable.
func (o *Options) rand(stage uint64) *rand.Rand {
	seed := o.SeedValue()
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef+stage))
}
