package pipeline

import (
	"context"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordcloud/pkg/animate"
	"github.com/matzehuels/wordcloud/pkg/render/sink"
	"github.com/matzehuels/wordcloud/pkg/scene"
)

// Cloud is a built word cloud: an immutable scene plus the animator that
// brings it to life. A Cloud starts idle and must be disposed when no
// longer needed.
type Cloud struct {
	// Scene is the initial frame.
	Scene scene.Scene

	// Animator drives live animation. It starts idle.
	Animator *animate.Animator

	env    animate.Env
	opts   Options
	logger *log.Logger

	timelineOnce sync.Once
	timeline     animate.Timeline
}

func newCloud(sc scene.Scene, opts Options) *Cloud {
	env := animate.NewEnv(opts.SeedValue())
	return &Cloud{
		Scene: sc,
		Animator: animate.New(sc, env,
			animate.WithInterval(opts.Interval()),
			animate.WithLogger(opts.Logger),
		),
		env:    env,
		opts:   opts,
		logger: opts.Logger,
	}
}

// SVG renders the initial frame without animation.
func (c *Cloud) SVG() []byte {
	return sink.RenderSVG(c.Scene, c.svgOptions()...)
}

// AnimatedSVG renders the initial frame with SMIL tracks replaying the
// baked timeline in a loop.
func (c *Cloud) AnimatedSVG() []byte {
	return sink.RenderAnimatedSVG(c.Scene, c.Timeline(), c.svgOptions()...)
}

// JSON exports the scene and the baked timeline.
func (c *Cloud) JSON() ([]byte, error) {
	return sink.RenderJSON(c.Scene,
		sink.WithJSONSeed(c.opts.SeedValue()),
		sink.WithJSONTimeline(c.Timeline()),
		sink.WithJSONIndent(),
	)
}

// Timeline returns the first opts.Ticks animation steps. It is computed
// once, independently of the live animator.
func (c *Cloud) Timeline() animate.Timeline {
	c.timelineOnce.Do(func() {
		c.timeline = animate.Bake(animate.NewState(c.Scene), c.env, c.opts.Ticks, c.opts.Interval())
		c.logger.Debug("baked timeline", "ticks", c.timeline.Len(), "period", c.timeline.Period())
	})
	return c.timeline
}

// Start begins live animation, calling fn once per tick. It reports false
// if the cloud was already started or disposed.
func (c *Cloud) Start(ctx context.Context, fn func(animate.Frame)) bool {
	return c.Animator.Start(ctx, fn)
}

// Dispose stops the animation. It is safe to call more than once.
func (c *Cloud) Dispose() {
	c.Animator.Dispose()
}

func (c *Cloud) svgOptions() []sink.SVGOption {
	opts := []sink.SVGOption{
		sink.WithFont(c.opts.Font),
		sink.WithID(c.idName()),
	}
	if c.opts.Title != "" {
		opts = append(opts, sink.WithTitle(c.opts.Title))
	}
	if c.opts.Background != "" {
		opts = append(opts, sink.WithBackground(c.opts.Background))
	}
	if c.opts.EmbedFont {
		opts = append(opts, sink.WithEmbeddedFont())
	}
	return opts
}

// idName is the name the document ID is derived from: the seed and the
// placed words, so equal inputs give equal documents.
func (c *Cloud) idName() string {
	name := c.Scene.Gradient
	for _, st := range c.Scene.Stacks {
		name += "|" + st.Word.Text
	}
	for _, b := range c.Scene.Backdrops {
		name += "|" + b.Text
	}
	return name + "|" + strconv.FormatUint(c.opts.SeedValue(), 10)
}
