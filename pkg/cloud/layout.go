package cloud

import (
	"cmp"
	"context"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/wordcloud/pkg/errors"
)

// DefaultPadding is the gap in pixels kept around every word.
const DefaultPadding = 1.0

// spiralScale converts the spiral parameter into pixels per step.
const spiralScale = 0.1

// PlacedWord is a word with its final position. X and Y are offsets of the
// text anchor (middle of the baseline) from the canvas center; Rotate is in
// degrees.
type PlacedWord struct {
	Text   string  `json:"text"`
	Count  int     `json:"count"`
	Size   float64 `json:"size"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Rotate float64 `json:"rotate"`
	Box    Box     `json:"box"`
}

// Layout configures word placement. The zero value is not usable; set at
// least Width and Height.
type Layout struct {
	Width, Height float64
	Padding       float64
	Rotate        RotateFunc
	Measurer      Measurer
	Rand          *rand.Rand

	// OnEnd, if set, receives the complete placed list once placement
	// finishes successfully.
	OnEnd func([]PlacedWord)
}

// placed is a word already on the board.
type placed struct {
	q  quad
	bb rect
}

// Place lays out words and returns those that fit, largest first. Words are
// never mutated. Place checks ctx between words.
func (l Layout) Place(ctx context.Context, words []Word) ([]PlacedWord, error) {
	if err := errors.ValidatePositive("width", l.Width); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive("height", l.Height); err != nil {
		return nil, err
	}
	rng := l.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 0))
	}
	rotate := l.Rotate
	if rotate == nil {
		rotate = NoRotation()
	}
	measurer := l.Measurer
	if measurer == nil {
		measurer = DefaultRatioMeasurer
	}
	pad := l.Padding
	if pad < 0 {
		pad = 0
	}

	order := slices.Clone(words)
	slices.SortStableFunc(order, func(a, b Word) int {
		return cmp.Compare(b.Size, a.Size)
	})

	canvas := rect{0, 0, l.Width, l.Height}
	maxDelta := math.Hypot(l.Width, l.Height)
	aspect := l.Width / l.Height

	var board []placed
	out := make([]PlacedWord, 0, len(order))
	for _, w := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if w.Size <= 0 || w.Text == "" {
			continue
		}

		angle := rotate(rng)
		box := measurer.Measure(w.Text, w.Size)
		startX := l.Width * (rng.Float64() + 0.5) / 2
		startY := l.Height * (rng.Float64() + 0.5) / 2
		dt := 1.0
		if rng.Float64() < 0.5 {
			dt = -1
		}

		for t := 0.0; ; t += dt {
			dx, dy := spiral(t, aspect)
			if math.Min(math.Abs(dx), math.Abs(dy)) >= maxDelta {
				break // spiral left the canvas; drop the word
			}
			x, y := startX+dx, startY+dy
			q := wordQuad(box, pad, x, y, angle)
			bb := q.bounds()
			if !bb.inside(canvas) || collides(board, q, bb) {
				continue
			}
			board = append(board, placed{q: q, bb: bb})
			out = append(out, PlacedWord{
				Text:   w.Text,
				Count:  w.Count,
				Size:   w.Size,
				X:      x - l.Width/2,
				Y:      y - l.Height/2,
				Rotate: angle,
				Box:    box,
			})
			break
		}
	}

	if l.OnEnd != nil {
		l.OnEnd(out)
	}
	return out, nil
}

// spiral returns the offset of step t on an Archimedean spiral stretched to
// the canvas aspect ratio. Offsets are truncated to whole pixels.
func spiral(t, aspect float64) (float64, float64) {
	t *= spiralScale
	return math.Trunc(aspect * t * math.Cos(t)), math.Trunc(t * math.Sin(t))
}

func collides(board []placed, q quad, bb rect) bool {
	for _, p := range board {
		if p.bb.overlaps(bb) && p.q.intersects(q) {
			return true
		}
	}
	return false
}
