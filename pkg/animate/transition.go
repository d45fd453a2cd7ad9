package animate

import (
	"fmt"
	"time"
)

// Kind is the attribute a transition changes.
type Kind string

const (
	KindTransform Kind = "transform"
	KindFill      Kind = "fill"
	KindPath      Kind = "path"
)

// Group distinguishes text layers from symbol tiles.
type Group string

const (
	GroupLayer Group = "layer"
	GroupTile  Group = "tile"
)

// Target addresses one drawable: layer Index of stack Stack, or tile Index
// of tile stack Stack.
type Target struct {
	Group Group `json:"group"`
	Stack int   `json:"stack"`
	Index int   `json:"index"`
}

// ID returns a stable element identifier such as "layer-3-0".
func (t Target) ID() string {
	return fmt.Sprintf("%s-%d-%d", t.Group, t.Stack, t.Index)
}

// Offset is a displacement from an element's resting position.
type Offset struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// Transition is a command to animate one attribute of one element.
// Transform transitions use FromOffset/ToOffset; fill and path transitions
// use From/To. Path values always share one command structure.
type Transition struct {
	Target     Target        `json:"target"`
	Kind       Kind          `json:"kind"`
	From       string        `json:"from,omitempty"`
	To         string        `json:"to,omitempty"`
	FromOffset Offset        `json:"from_offset"`
	ToOffset   Offset        `json:"to_offset"`
	Delay      time.Duration `json:"delay"`
	Duration   time.Duration `json:"duration"`
	Ease       EaseName      `json:"ease"`
}

// Progress returns the eased progress of tr at elapsed time since the
// start of its tick, in [0, 1] before easing is applied.
func (tr Transition) Progress(elapsed time.Duration) float64 {
	if elapsed <= tr.Delay {
		return 0
	}
	if tr.Duration <= 0 || elapsed >= tr.Delay+tr.Duration {
		return 1
	}
	t := float64(elapsed-tr.Delay) / float64(tr.Duration)
	return tr.Ease.Func()(t)
}

// OffsetAt interpolates the transform offset at elapsed.
func (tr Transition) OffsetAt(elapsed time.Duration) Offset {
	p := tr.Progress(elapsed)
	return Offset{
		DX: tr.FromOffset.DX + (tr.ToOffset.DX-tr.FromOffset.DX)*p,
		DY: tr.FromOffset.DY + (tr.ToOffset.DY-tr.FromOffset.DY)*p,
	}
}
