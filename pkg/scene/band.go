package scene

// Band positions n equal bands across a range with padding between and
// around them, centered within the leftover space.
type Band struct {
	start     float64
	step      float64
	bandwidth float64
	n         int
}

// NewBand divides [lo, hi] into n bands. padding is the fraction of each
// step left empty between bands and, on both ends, around them.
func NewBand(n int, lo, hi, padding float64) Band {
	const align = 0.5
	padding = max(0, min(1, padding))
	fn := float64(n)
	step := (hi - lo) / max(1, fn-padding+padding*2)
	start := lo + (hi-lo-step*(fn-padding))*align
	return Band{
		start:     start,
		step:      step,
		bandwidth: step * (1 - padding),
		n:         n,
	}
}

// Pos returns the left edge of band i.
func (b Band) Pos(i int) float64 { return b.start + b.step*float64(i) }

// Step returns the distance between consecutive band starts.
func (b Band) Step() float64 { return b.step }

// Bandwidth returns the width of each band.
func (b Band) Bandwidth() float64 { return b.bandwidth }

// Len returns the number of bands.
func (b Band) Len() int { return b.n }
