package animate

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordcloud/pkg/observability"
	"github.com/matzehuels/wordcloud/pkg/scene"
)

// Phase is the lifecycle state of an [Animator].
type Phase int

const (
	Idle Phase = iota
	Running
	Disposed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Disposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// Frame is the outcome of one tick.
type Frame struct {
	State       State
	Transitions []Transition
}

// Option configures an [Animator].
type Option func(*Animator)

// WithInterval sets the tick period.
func WithInterval(d time.Duration) Option {
	return func(a *Animator) {
		if d > 0 {
			a.interval = d
		}
	}
}

// WithLogger sets the logger used for tick diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(a *Animator) {
		if l != nil {
			a.logger = l
		}
	}
}

// Animator repeatedly applies [Step] on a timer. It starts Idle; [Animator.Start]
// moves it to Running and [Animator.Dispose] to Disposed, which is final.
// All methods are safe for concurrent use.
type Animator struct {
	env      Env
	interval time.Duration
	logger   *log.Logger

	mu     sync.Mutex
	phase  Phase
	state  State
	ticker *time.Ticker
	done   chan struct{}
	ctx    context.Context
}

// New returns an idle animator over the layers and tiles of s.
func New(s scene.Scene, env Env, opts ...Option) *Animator {
	a := &Animator{
		env:      env.withDefaults(),
		interval: DefaultInterval,
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
		state:    NewState(s),
		done:     make(chan struct{}),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Phase returns the current lifecycle state.
func (a *Animator) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// State returns a copy of the current state.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Clone()
}

// Interval returns the tick period.
func (a *Animator) Interval() time.Duration { return a.interval }

// Start begins ticking and calls fn with every frame from a single
// goroutine. It returns false, and does nothing, unless the animator is
// Idle. Cancelling ctx disposes the animator.
func (a *Animator) Start(ctx context.Context, fn func(Frame)) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase != Idle {
		return false
	}
	a.phase = Running
	a.ctx = ctx
	a.ticker = time.NewTicker(a.interval)
	observability.Animation().OnStart(ctx, a.state.layerCount())
	a.logger.Debug("animation started", "interval", a.interval)

	go a.loop(ctx, a.ticker.C, fn)
	return true
}

func (a *Animator) loop(ctx context.Context, ticks <-chan time.Time, fn func(Frame)) {
	for {
		select {
		case <-a.done:
			return
		case <-ctx.Done():
			a.Dispose()
			return
		case <-ticks:
			f, ok := a.Tick()
			if !ok {
				return
			}
			if fn != nil {
				fn(f)
			}
		}
	}
}

// Tick advances the animation by one step and returns the frame. It
// reports false once the animator is disposed. Tick works in the Idle
// phase too, which lets callers drive the animation by hand.
func (a *Animator) Tick() (Frame, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase == Disposed {
		return Frame{}, false
	}
	start := time.Now()
	next, trs := Step(a.state, a.env)
	a.state = next

	observability.Animation().OnTick(a.ctx, next.Frame, len(trs), time.Since(start))
	a.logger.Debug("tick", "frame", next.Frame, "gradient", next.Gradient, "transitions", len(trs))
	return Frame{State: next.Clone(), Transitions: trs}, true
}

// Dispose stops the timer. No tick starts after Dispose returns; a frame
// already being delivered completes, and transitions already handed to
// the consumer are left to finish. Calling Dispose more than once, or
// before Start, is safe.
func (a *Animator) Dispose() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase == Disposed {
		return
	}
	a.phase = Disposed
	if a.ticker != nil {
		a.ticker.Stop()
	}
	close(a.done)
	observability.Animation().OnDispose(a.ctx, a.state.Frame)
	a.logger.Debug("animation disposed", "frames", a.state.Frame)
}

func (s State) layerCount() int {
	n := 0
	for _, st := range s.Stacks {
		n += len(st.Layers)
	}
	for _, ts := range s.TileStacks {
		n += len(ts.Tiles)
	}
	return n
}
