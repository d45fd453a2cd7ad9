package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wordcloud/pkg/errors"
	"github.com/matzehuels/wordcloud/pkg/pipeline"
)

// loadConfig reads pipeline options from a .toml, .yaml, .yml or .json file.
// Unknown keys are rejected so that typos do not pass silently.
func loadConfig(path string) (pipeline.Options, error) {
	var opts pipeline.Options
	if err := errors.ValidateConfigPath(path); err != nil {
		return opts, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &opts)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid TOML in %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return opts, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil && err != io.EOF {
			return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid YAML in %s", path)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&opts); err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid JSON in %s", path)
		}
	}
	return opts, nil
}

// =============================================================================
// Option Flags
// =============================================================================

// optionFlag binds one command-line flag to one pipeline option.
type optionFlag struct {
	name     string
	register func(fs *pflag.FlagSet, o *pipeline.Options)
	copy     func(dst, src *pipeline.Options)
}

// optionFlags lists every flag that mirrors a field of pipeline.Options.
// Flag defaults are zero so that pipeline defaults stay the single source
// of truth.
var optionFlags = []optionFlag{
	{"count", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.IntVarP(&o.Count, "count", "n", 0, "maximum number of distinct words (default 250)")
	}, func(d, s *pipeline.Options) { d.Count = s.Count }},
	{"stopword", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.StringSliceVar(&o.Stopwords, "stopword", nil, "extra stopwords to ignore (repeatable)")
	}, func(d, s *pipeline.Options) { d.Stopwords = s.Stopwords }},
	{"width", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.Float64Var(&o.Width, "width", 0, "canvas width in pixels (default 960)")
	}, func(d, s *pipeline.Options) { d.Width = s.Width }},
	{"height", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.Float64Var(&o.Height, "height", 0, "canvas height in pixels (default 600)")
	}, func(d, s *pipeline.Options) { d.Height = s.Height }},
	{"angle-start", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.Float64Var(&o.AngleStart, "angle-start", 0, "first rotation angle in degrees; start and end both 0 select the default range (default -60)")
	}, func(d, s *pipeline.Options) { d.AngleStart = s.AngleStart }},
	{"angle-end", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.Float64Var(&o.AngleEnd, "angle-end", 0, "rotation angle bound, exclusive (default 60)")
	}, func(d, s *pipeline.Options) { d.AngleEnd = s.AngleEnd }},
	{"angle-step", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.Float64Var(&o.AngleStep, "angle-step", 0, "rotation angle step (default 5)")
	}, func(d, s *pipeline.Options) { d.AngleStep = s.AngleStep }},
	{"right", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.BoolVar(&o.Right, "right", false, "rotate words by 0 or 90 degrees only")
	}, func(d, s *pipeline.Options) { d.Right = s.Right }},
	{"min-size", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.Float64Var(&o.MinSize, "min-size", 0, "smallest font size")
	}, func(d, s *pipeline.Options) { d.MinSize = s.MinSize }},
	{"max-size", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.Float64Var(&o.MaxSize, "max-size", 0, "largest font size")
	}, func(d, s *pipeline.Options) { d.MaxSize = s.MaxSize }},
	{"padding", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.Float64Var(&o.Padding, "padding", 0, "spacing between words in pixels")
	}, func(d, s *pipeline.Options) { d.Padding = s.Padding }},
	{"seed", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.Var(&seedValue{p: &o.Seed}, "seed", "random seed for reproducible output; 0 is a valid seed (default 42)")
	}, func(d, s *pipeline.Options) { d.Seed = s.Seed }},
	{"symbols", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.BoolVar(&o.Symbols, "symbols", false, "tile words with vector symbols")
	}, func(d, s *pipeline.Options) { d.Symbols = s.Symbols }},
	{"palette", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.StringVar(&o.Palette, "palette", "", "initial color gradient (see 'wordcloud palettes')")
	}, func(d, s *pipeline.Options) { d.Palette = s.Palette }},
	{"ticks", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.IntVar(&o.Ticks, "ticks", 0, "animation ticks baked into the output (default 8)")
	}, func(d, s *pipeline.Options) { d.Ticks = s.Ticks }},
	{"interval", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.IntVar(&o.IntervalMS, "interval", 0, "animation tick period in milliseconds (default 2000)")
	}, func(d, s *pipeline.Options) { d.IntervalMS = s.IntervalMS }},
	{"format", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.StringSliceVarP(&o.Formats, "format", "f", nil, "output formats: svg, json, png, pdf (default svg)")
	}, func(d, s *pipeline.Options) { d.Formats = s.Formats }},
	{"static", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.BoolVar(&o.Static, "static", false, "write the first frame without animation")
	}, func(d, s *pipeline.Options) { d.Static = s.Static }},
	{"font", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.StringVar(&o.Font, "font", "", "font family for SVG text (default Impact)")
	}, func(d, s *pipeline.Options) { d.Font = s.Font }},
	{"embed-font", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.BoolVar(&o.EmbedFont, "embed-font", false, "embed the measuring font in the SVG")
	}, func(d, s *pipeline.Options) { d.EmbedFont = s.EmbedFont }},
	{"background", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.StringVar(&o.Background, "background", "", "background color")
	}, func(d, s *pipeline.Options) { d.Background = s.Background }},
	{"title", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.StringVar(&o.Title, "title", "", "document title")
	}, func(d, s *pipeline.Options) { d.Title = s.Title }},
	{"scale", func(fs *pflag.FlagSet, o *pipeline.Options) {
		fs.Float64Var(&o.Scale, "scale", 0, "PNG scale factor (default 2)")
	}, func(d, s *pipeline.Options) { d.Scale = s.Scale }},
}

// seedValue is a pflag.Value that distinguishes an explicit 0 from unset.
type seedValue struct {
	p **uint64
}

func (v *seedValue) String() string {
	if v.p == nil || *v.p == nil {
		return ""
	}
	return strconv.FormatUint(**v.p, 10)
}

func (v *seedValue) Set(s string) error {
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return err
	}
	*v.p = pipeline.Seed(n)
	return nil
}

func (v *seedValue) Type() string { return "uint64" }

// addOptionFlags registers the named option flags on fs, bound to o.
func addOptionFlags(fs *pflag.FlagSet, o *pipeline.Options, names ...string) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	for _, f := range optionFlags {
		if len(names) == 0 || want[f.name] {
			f.register(fs, o)
		}
	}
}

// resolveOptions loads the config file, if any, and overlays every option
// flag the user set explicitly.
func (c *CLI) resolveOptions(fs *pflag.FlagSet, flags *pipeline.Options) (pipeline.Options, error) {
	var opts pipeline.Options
	if c.configPath != "" {
		var err error
		if opts, err = loadConfig(c.configPath); err != nil {
			return opts, err
		}
	}
	for _, f := range optionFlags {
		if fs.Lookup(f.name) != nil && fs.Changed(f.name) {
			f.copy(&opts, flags)
		}
	}
	opts.Logger = c.Logger
	return opts, nil
}
