package animate

import "time"

// Timeline is a fixed sequence of frames computed ahead of time.
type Timeline struct {
	Initial  State
	Frames   []Frame
	Interval time.Duration
}

// Len returns the number of baked ticks.
func (t Timeline) Len() int { return len(t.Frames) }

// Period returns the time taken to play every frame once.
func (t Timeline) Period() time.Duration {
	return t.Interval * time.Duration(len(t.Frames))
}

// Bake applies [Step] ticks times starting from s. A non-positive interval
// means [DefaultInterval].
func Bake(s State, env Env, ticks int, interval time.Duration) Timeline {
	if interval <= 0 {
		interval = DefaultInterval
	}
	tl := Timeline{Initial: s.Clone(), Interval: interval}
	cur := s
	for range max(ticks, 0) {
		next, trs := Step(cur, env)
		tl.Frames = append(tl.Frames, Frame{State: next, Transitions: trs})
		cur = next
	}
	return tl
}
