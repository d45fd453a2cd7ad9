package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/wordcloud/pkg/animate"
	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/errors"
	"github.com/matzehuels/wordcloud/pkg/scene"
)

const sample = `Go is an open source programming language that makes it simple to build
secure, scalable systems. Go makes concurrency simple; goroutines and channels make
concurrent programs simple to write. Programs written in Go compile quickly.
Cloud cloud cloud cloud cloud cloud cloud words words words layout layout spiral.`

func testOptions() Options {
	return Options{Measurer: cloud.DefaultRatioMeasurer, Ticks: 2}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"json", false},
		{"png", false},
		{"pdf", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	got := struct {
		Width, Height                   float64
		AngleStart, AngleEnd, AngleStep float64
		Count, Ticks, IntervalMS        int
		Seed                            uint64
		Palette, Font                   string
		Formats                         []string
	}{o.Width, o.Height, o.AngleStart, o.AngleEnd, o.AngleStep, o.Count, o.Ticks, o.IntervalMS, o.SeedValue(), o.Palette, o.Font, o.Formats}
	want := struct {
		Width, Height                   float64
		AngleStart, AngleEnd, AngleStep float64
		Count, Ticks, IntervalMS        int
		Seed                            uint64
		Palette, Font                   string
		Formats                         []string
	}{960, 600, -60, 60, 5, 250, 8, 2000, 42, "Viridis", "Impact", []string{"svg"}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if o.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
	if o.Interval() != animate.DefaultInterval {
		t.Errorf("Interval() = %v", o.Interval())
	}
}

func TestSeedZeroKept(t *testing.T) {
	o := Options{Seed: Seed(0)}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o.SeedValue() != 0 {
		t.Errorf("SeedValue() = %d, want 0", o.SeedValue())
	}

	zero, err := Render(context.Background(), sample, Options{Measurer: cloud.DefaultRatioMeasurer, Ticks: 2, Seed: Seed(0)})
	if err != nil {
		t.Fatal(err)
	}
	defer zero.Dispose()
	def, err := Render(context.Background(), sample, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	defer def.Dispose()
	if bytes.Equal(zero.SVG(), def.SVG()) {
		t.Error("seed 0 should differ from the default seed")
	}
}

func TestZeroAngleRangeSelectsDefault(t *testing.T) {
	o := Options{AngleStart: 0, AngleEnd: 0}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o.AngleStart != DefaultAngleStart || o.AngleEnd != DefaultAngleEnd {
		t.Errorf("angles = [%v, %v), want defaults", o.AngleStart, o.AngleEnd)
	}

	flat := Options{AngleStart: 0, AngleEnd: 1}
	if err := flat.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if got := cloud.Angles(flat.AngleStart, flat.AngleEnd, flat.AngleStep); len(got) != 1 || got[0] != 0 {
		t.Errorf("[0, 1) angles = %v, want [0]", got)
	}
}

func TestValidateAndSetDefaultsIdempotent(t *testing.T) {
	o := Options{Width: 100}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	first := o
	first.Logger = nil
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	o.Logger = nil
	if diff := cmp.Diff(first, o, cmp.AllowUnexported(Options{})); diff != "" {
		t.Errorf("second call changed options:\n%s", diff)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative width", Options{Width: -1}},
		{"negative count", Options{Count: -5}},
		{"reversed angles", Options{AngleStart: 30, AngleEnd: -30}},
		{"negative step", Options{AngleStep: -5}},
		{"min above max", Options{MinSize: 90, MaxSize: 40}},
		{"negative ticks", Options{Ticks: -1}},
		{"negative padding", Options{Padding: -1}},
		{"unknown palette", Options{Palette: "Nope"}},
		{"unknown format", Options{Formats: []string{"gif"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.GetCode(err) == "" {
				t.Errorf("error %v carries no code", err)
			}
		})
	}

	// Angle range is ignored when only right angles are used.
	o := Options{Right: true, AngleStart: 30, AngleEnd: -30}
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Errorf("Right should skip the angle range check: %v", err)
	}
}

func TestRenderTextVariant(t *testing.T) {
	c, err := Render(context.Background(), sample, testOptions())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	defer c.Dispose()

	if c.Scene.Variant != scene.VariantText {
		t.Errorf("Variant = %q", c.Scene.Variant)
	}
	if len(c.Scene.Stacks) == 0 {
		t.Fatal("no stacks")
	}
	if c.Scene.Stacks[0].Word.Text != "cloud" {
		t.Errorf("largest word = %q, want cloud", c.Scene.Stacks[0].Word.Text)
	}
	for _, st := range c.Scene.Stacks {
		for _, l := range st.Layers {
			if l.Size < scene.DefaultTextFloor {
				t.Errorf("%s layer below floor: %v", st.Word.Text, l.Size)
			}
		}
	}
	if c.Animator.Phase() != animate.Idle {
		t.Errorf("new cloud animator phase = %v", c.Animator.Phase())
	}
}

func TestRenderSymbolVariant(t *testing.T) {
	opts := testOptions()
	opts.Symbols = true
	c, err := Render(context.Background(), sample, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	defer c.Dispose()

	if c.Scene.Variant != scene.VariantSymbols {
		t.Errorf("Variant = %q", c.Scene.Variant)
	}
	if len(c.Scene.Stacks) != 0 {
		t.Error("symbol variant should replace stacks")
	}
	if len(c.Scene.Backdrops) == 0 || len(c.Scene.TileStacks) == 0 {
		t.Errorf("backdrops=%d tiles=%d", len(c.Scene.Backdrops), len(c.Scene.TileStacks))
	}
	if !bytes.Contains(c.AnimatedSVG(), []byte(`attributeName="d"`)) {
		t.Error("animated symbol SVG should morph paths")
	}
}

func TestRenderDeterministic(t *testing.T) {
	a, err := Render(context.Background(), sample, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(context.Background(), sample, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.AnimatedSVG(), b.AnimatedSVG()) {
		t.Error("equal inputs should render identical SVG")
	}

	opts := testOptions()
	opts.Seed = Seed(7)
	c, err := Render(context.Background(), sample, opts)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a.SVG(), c.SVG()) {
		t.Error("a different seed should change the layout")
	}
}

func TestRenderEmptyText(t *testing.T) {
	c, err := Render(context.Background(), "the and of", testOptions())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	defer c.Dispose()
	if n := c.Scene.LayerCount(); n != 0 {
		t.Errorf("LayerCount = %d, want 0", n)
	}
	if !strings.HasPrefix(string(c.SVG()), "<svg") {
		t.Error("an empty cloud should still render an SVG")
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Render(ctx, sample, testOptions())
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCloudLifecycle(t *testing.T) {
	c, err := Render(context.Background(), sample, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	c.Dispose()
	c.Dispose()
	if c.Animator.Phase() != animate.Disposed {
		t.Errorf("phase = %v, want disposed", c.Animator.Phase())
	}
	if c.Start(context.Background(), func(animate.Frame) {}) {
		t.Error("Start after Dispose should be a no-op")
	}
	// Rendering does not depend on the animator.
	if len(c.AnimatedSVG()) == 0 {
		t.Error("disposed cloud should still render")
	}
	if got := c.Timeline().Len(); got != 2 {
		t.Errorf("Timeline().Len() = %d, want 2", got)
	}
}

func TestRenderAutoStart(t *testing.T) {
	var ended []cloud.PlacedWord
	calls := 0
	frames := make(chan animate.Frame, 1)

	opts := testOptions()
	opts.IntervalMS = 10
	opts.AutoStart = true
	opts.OnLayoutEnd = func(ws []cloud.PlacedWord) { calls++; ended = ws }
	opts.OnFrame = func(f animate.Frame) {
		select {
		case frames <- f:
		default:
		}
	}

	c, stats, err := NewRunner(nil).Build(context.Background(), sample, opts)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	if calls != 1 {
		t.Errorf("OnLayoutEnd called %d times, want 1", calls)
	}
	if len(ended) != stats.Placed {
		t.Errorf("OnLayoutEnd got %d words, want %d placed", len(ended), stats.Placed)
	}
	if c.Animator.Phase() != animate.Running {
		t.Errorf("phase = %v, want running", c.Animator.Phase())
	}
	select {
	case f := <-frames:
		if f.State.Frame == 0 {
			t.Error("first frame should advance the state")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no frame delivered")
	}
}

func TestRenderIdleByDefault(t *testing.T) {
	c, err := Render(context.Background(), sample, testOptions())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	if c.Animator.Phase() != animate.Idle {
		t.Errorf("phase = %v, want idle", c.Animator.Phase())
	}
}

func TestExecute(t *testing.T) {
	opts := testOptions()
	opts.Formats = []string{FormatSVG, FormatJSON}
	opts.Static = true

	res, err := NewRunner(nil).Execute(context.Background(), sample, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	defer res.Cloud.Dispose()

	if len(res.Artifacts) != 2 {
		t.Errorf("got %d artifacts, want 2", len(res.Artifacts))
	}
	if bytes.Contains(res.Artifacts[FormatSVG], []byte("<animate")) {
		t.Error("static SVG should not animate")
	}
	if !bytes.Contains(res.Artifacts[FormatJSON], []byte(`"timeline"`)) {
		t.Error("JSON should include the timeline")
	}
	if res.Stats.Words == 0 || res.Stats.Placed == 0 || res.Stats.Layers == 0 {
		t.Errorf("Stats = %+v", res.Stats)
	}
	if res.Stats.Placed > res.Stats.Words {
		t.Errorf("placed %d of %d words", res.Stats.Placed, res.Stats.Words)
	}
}
