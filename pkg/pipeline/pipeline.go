// Package pipeline turns text into an animated word cloud.
//
// This package implements the complete analyze → layout → build → render
// pipeline used by the CLI. By centralizing this logic, every entry point
// shares one set of defaults and one validation path.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Analyze: Count words and drop stopwords ([textfreq])
//  2. Layout: Size words by frequency and place them on a spiral ([cloud])
//  3. Build: Expand words into layered stacks, optionally tiled with
//     symbols ([scene])
//  4. Render: Produce SVG, animated SVG, JSON, PNG or PDF ([sink])
//
// # Usage
//
// Build a cloud and render it:
//
//	c, err := pipeline.Render(ctx, text, pipeline.Options{Seed: pipeline.Seed(7)})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Dispose()
//	svg := c.AnimatedSVG()
//
// Or drive the live animation:
//
//	c.Start(ctx, func(f animate.Frame) {
//	    // redraw with f.State
//	})
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordcloud/pkg/animate"
	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/errors"
	"github.com/matzehuels/wordcloud/pkg/palette"
	"github.com/matzehuels/wordcloud/pkg/scene"
	"github.com/matzehuels/wordcloud/pkg/textfreq"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI and library callers
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 960.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0

	// DefaultAngleStart, DefaultAngleEnd and DefaultAngleStep define the
	// rotation choices -60, -55, ..., 55 degrees (end exclusive).
	DefaultAngleStart = -60.0
	DefaultAngleEnd   = 60.0
	DefaultAngleStep  = 5.0

	// DefaultCount is the number of distinct words kept after analysis.
	DefaultCount = textfreq.DefaultLimit

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultTicks is the number of animation ticks baked into animated SVG.
	DefaultTicks = 8

	// DefaultIntervalMS is the animation tick period in milliseconds.
	DefaultIntervalMS = int(animate.DefaultInterval / time.Millisecond)

	// DefaultFont is the font family written into SVG text.
	DefaultFont = "Impact"
)

// Seed returns a pointer to v for [Options.Seed].
func Seed(v uint64) *uint64 { return &v }

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline. Zero values mean
// "use the default". Options can be loaded from JSON, TOML or YAML.
type Options struct {
	// Analyze options
	Count     int      `json:"count,omitempty" toml:"count" yaml:"count,omitempty"`
	Stopwords []string `json:"stopwords,omitempty" toml:"stopwords" yaml:"stopwords,omitempty"` // added to the built-in list

	// Layout options
	Width      float64 `json:"width,omitempty" toml:"width" yaml:"width,omitempty"`
	Height     float64 `json:"height,omitempty" toml:"height" yaml:"height,omitempty"`
	AngleStart float64 `json:"angle_start,omitempty" toml:"angle_start" yaml:"angle_start,omitempty"`
	AngleEnd   float64 `json:"angle_end,omitempty" toml:"angle_end" yaml:"angle_end,omitempty"`
	AngleStep  float64 `json:"angle_step,omitempty" toml:"angle_step" yaml:"angle_step,omitempty"`
	Right      bool    `json:"right,omitempty" toml:"right" yaml:"right,omitempty"` // rotate by 0 or 90 only
	MinSize    float64 `json:"min_size,omitempty" toml:"min_size" yaml:"min_size,omitempty"`
	MaxSize    float64 `json:"max_size,omitempty" toml:"max_size" yaml:"max_size,omitempty"`
	Padding    float64 `json:"padding,omitempty" toml:"padding" yaml:"padding,omitempty"`
	Seed       *uint64 `json:"seed,omitempty" toml:"seed" yaml:"seed,omitempty"` // nil selects DefaultSeed; 0 is a valid seed

	// Build options
	Symbols bool   `json:"symbols,omitempty" toml:"symbols" yaml:"symbols,omitempty"` // tile words with vector symbols
	Palette string `json:"palette,omitempty" toml:"palette" yaml:"palette,omitempty"` // initial gradient

	// Animation options
	Ticks      int  `json:"ticks,omitempty" toml:"ticks" yaml:"ticks,omitempty"`
	IntervalMS int  `json:"interval_ms,omitempty" toml:"interval_ms" yaml:"interval_ms,omitempty"`
	AutoStart  bool `json:"auto_start,omitempty" toml:"auto_start" yaml:"auto_start,omitempty"` // start the animator once layout ends

	// Render options
	Formats    []string `json:"formats,omitempty" toml:"formats" yaml:"formats,omitempty"`
	Static     bool     `json:"static,omitempty" toml:"static" yaml:"static,omitempty"` // SVG without SMIL tracks
	Font       string   `json:"font,omitempty" toml:"font" yaml:"font,omitempty"`
	EmbedFont  bool     `json:"embed_font,omitempty" toml:"embed_font" yaml:"embed_font,omitempty"`
	Background string   `json:"background,omitempty" toml:"background" yaml:"background,omitempty"`
	Title      string   `json:"title,omitempty" toml:"title" yaml:"title,omitempty"`
	Scale      float64  `json:"scale,omitempty" toml:"scale" yaml:"scale,omitempty"` // PNG scale factor

	// Runtime options (not serialized)
	Logger   *log.Logger    `json:"-" toml:"-" yaml:"-"`
	Measurer cloud.Measurer `json:"-" toml:"-" yaml:"-"` // defaults to the embedded font

	// OnLayoutEnd receives the placed words once layout finishes.
	OnLayoutEnd func([]cloud.PlacedWord) `json:"-" toml:"-" yaml:"-"`
	// OnFrame receives every frame of an animator started by AutoStart.
	OnFrame func(animate.Frame) `json:"-" toml:"-" yaml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidOption, "invalid format: %q (must be one of: svg, json, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates every field.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills every zero field with its default.
func (o *Options) SetDefaults() {
	if o.Count == 0 {
		o.Count = DefaultCount
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	// [0, 0) holds no angle, so an all-zero range selects the default.
	// Use Right or a one-step range such as [0, 1) for unrotated words.
	if o.AngleStart == 0 && o.AngleEnd == 0 {
		o.AngleStart, o.AngleEnd = DefaultAngleStart, DefaultAngleEnd
	}
	if o.AngleStep == 0 {
		o.AngleStep = DefaultAngleStep
	}
	if o.MinSize == 0 {
		o.MinSize = cloud.DefaultMinSize
	}
	if o.MaxSize == 0 {
		o.MaxSize = cloud.DefaultMaxSize
	}
	if o.Padding == 0 {
		o.Padding = cloud.DefaultPadding
	}
	if o.Seed == nil {
		o.Seed = Seed(DefaultSeed)
	}
	if o.Palette == "" {
		o.Palette = palette.DefaultName
	}
	if o.Ticks == 0 {
		o.Ticks = DefaultTicks
	}
	if o.IntervalMS == 0 {
		o.IntervalMS = DefaultIntervalMS
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Font == "" {
		o.Font = DefaultFont
	}
	if o.Scale == 0 {
		o.Scale = 2
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks option values. It does not apply defaults.
func (o *Options) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"count", float64(o.Count)},
		{"width", o.Width},
		{"height", o.Height},
		{"min size", o.MinSize},
		{"max size", o.MaxSize},
		{"interval", float64(o.IntervalMS)},
		{"scale", o.Scale},
	}
	for _, c := range checks {
		if err := errors.ValidatePositive(c.name, c.v); err != nil {
			return err
		}
	}
	if o.MinSize > o.MaxSize {
		return errors.New(errors.ErrCodeInvalidOption, "min size %v exceeds max size %v", o.MinSize, o.MaxSize)
	}
	if o.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "padding must not be negative, got %v", o.Padding)
	}
	if o.Ticks < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "ticks must not be negative, got %d", o.Ticks)
	}
	if !o.Right {
		if err := errors.ValidateAngleRange(o.AngleStart, o.AngleEnd, o.AngleStep); err != nil {
			return err
		}
	}
	if _, err := palette.ByName(o.Palette); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// Interval returns the animation tick period.
func (o *Options) Interval() time.Duration {
	return time.Duration(o.IntervalMS) * time.Millisecond
}

// SeedValue returns the seed in effect, DefaultSeed when unset.
func (o *Options) SeedValue() uint64 {
	if o.Seed == nil {
		return DefaultSeed
	}
	return *o.Seed
}

// Rotation returns the rotation chooser implied by the options.
func (o *Options) Rotation() cloud.RotateFunc {
	if o.Right {
		return cloud.RightAngle()
	}
	return cloud.RandomAngle(o.AngleStart, o.AngleEnd, o.AngleStep)
}

// StackFloor returns the smallest layer size for the chosen variant.
func (o *Options) StackFloor() float64 {
	if o.Symbols {
		return scene.DefaultSymbolFloor
	}
	return scene.DefaultTextFloor
}
