package sink

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/wordcloud/pkg/animate"
	"github.com/matzehuels/wordcloud/pkg/palette"
	"github.com/matzehuels/wordcloud/pkg/scene"
)

// Samples taken across one transition. The elastic transform curve needs
// more points than the monotonic fill curve. Path morphs are not sampled:
// their endpoints share one structure and SMIL eases between them.
const (
	transformSamples = 12
	fillSamples      = 6

	// snap separates two keyframes that must not interpolate.
	snap = time.Millisecond
)

// RenderAnimatedSVG renders s followed by SMIL tracks that replay tl in a
// loop. Each tick of tl starts Interval after the previous one. With an
// empty timeline the output equals [RenderSVG].
func RenderAnimatedSVG(s scene.Scene, tl animate.Timeline, opts ...SVGOption) []byte {
	r := newSVGRenderer(s, opts...)
	var buf bytes.Buffer
	if tl.Len() == 0 {
		r.render(&buf, s, nil)
		return buf.Bytes()
	}
	r.render(&buf, tl.Initial.Apply(s), bakeTracks(tl))
	return buf.Bytes()
}

// linearSpline is the keySplines entry of a straight interval.
const linearSpline = "0 0 1 1"

// easeSplines holds the cubic bezier control points of the easing curves
// that SMIL can express with calcMode="spline".
var easeSplines = map[animate.EaseName]string{
	animate.EaseLinear:     linearSpline,
	animate.EaseCubicInOut: "0.645 0.045 0.355 1",
}

// keyframes is one SMIL track: values at absolute times. splines[i] is the
// curve of the interval that ends at keyframe i.
type keyframes struct {
	times   []time.Duration
	values  []string
	splines []string
}

// add appends a keyframe reached linearly. A keyframe at the same time as
// the last one replaces its value.
func (k *keyframes) add(at time.Duration, v string) {
	k.addEased(at, v, linearSpline)
}

// addEased appends a keyframe reached along the bezier spline.
func (k *keyframes) addEased(at time.Duration, v, spline string) {
	if n := len(k.times); n > 0 && at <= k.times[n-1] {
		k.values[n-1] = v
		k.splines[n-1] = spline
		return
	}
	k.times = append(k.times, at)
	k.values = append(k.values, v)
	k.splines = append(k.splines, spline)
}

// eased reports whether any interval of k is not linear.
func (k *keyframes) eased() bool {
	for _, s := range k.splines[min(1, len(k.splines)):] {
		if s != linearSpline {
			return true
		}
	}
	return false
}

func (k *keyframes) last() string {
	return k.values[len(k.values)-1]
}

// elementTracks holds the tracks of one drawable. Methods are safe on a
// nil receiver and write nothing.
type elementTracks struct {
	total     time.Duration
	transform keyframes
	fill      keyframes
	path      keyframes
}

type trackSet map[animate.Target]*elementTracks

// bakeTracks converts a timeline into per-element keyframes.
func bakeTracks(tl animate.Timeline) trackSet {
	total := tl.Period()
	if total <= 0 {
		return nil
	}
	set := trackSet{}
	get := func(t animate.Target) *elementTracks {
		if e, ok := set[t]; ok {
			return e
		}
		e := &elementTracks{total: total}
		set[t] = e
		return e
	}

	for si, st := range tl.Initial.Stacks {
		for _, l := range st.Layers {
			e := get(animate.Target{Group: animate.GroupLayer, Stack: si, Index: l.Index})
			e.transform.add(0, offset(l.DX, l.DY))
			e.fill.add(0, l.Fill)
		}
	}
	for si, ts := range tl.Initial.TileStacks {
		for _, tile := range ts.Tiles {
			e := get(animate.Target{Group: animate.GroupTile, Stack: si, Index: tile.Index})
			e.transform.add(0, offset(tile.DX, tile.DY))
			e.fill.add(0, tile.Fill)
		}
	}

	for k, f := range tl.Frames {
		begin := tl.Interval * time.Duration(k)
		end := begin + tl.Interval
		for _, tr := range f.Transitions {
			e, ok := set[tr.Target]
			if !ok {
				continue
			}
			switch tr.Kind {
			case animate.KindTransform:
				sample(&e.transform, tr, begin, end, transformSamples, func(p float64) string {
					o := tr.FromOffset
					return offset(o.DX+(tr.ToOffset.DX-o.DX)*p, o.DY+(tr.ToOffset.DY-o.DY)*p)
				})
			case animate.KindFill:
				from, err1 := colorful.Hex(tr.From)
				to, err2 := colorful.Hex(tr.To)
				if err1 != nil || err2 != nil {
					e.fill.add(begin+tr.Delay, tr.To)
					continue
				}
				sample(&e.fill, tr, begin, end, fillSamples, func(p float64) string {
					return palette.Hex(from.BlendLab(to, p))
				})
			case animate.KindPath:
				morph(&e.path, tr, begin, end)
			}
		}
	}
	return set
}

// sample adds keyframes for tr, which plays within the tick [begin, end).
// The value is held until the transition starts.
func sample(k *keyframes, tr animate.Transition, begin, end time.Duration, n int, at func(p float64) string) {
	ease := tr.Ease.Func()
	start := begin + tr.Delay
	if start >= end {
		return
	}
	dur := min(tr.Duration, end-start)
	if len(k.values) > 0 {
		k.add(start, k.last())
	}
	for j := 1; j <= n; j++ {
		p := float64(j) / float64(n)
		k.add(start+time.Duration(float64(dur)*p), at(ease(p)))
	}
}

// morph adds the endpoints of a path transition within the tick
// [begin, end). The previous outline is held until the transition starts,
// then swapped for tr.From, which draws the same shape with the point
// order of tr.To. SMIL eases between the two.
func morph(k *keyframes, tr animate.Transition, begin, end time.Duration) {
	start := begin + tr.Delay
	if start >= end {
		return
	}
	spline, ok := easeSplines[tr.Ease]
	if !ok {
		spline = easeSplines[animate.EaseCubicInOut]
	}
	if len(k.values) == 0 {
		k.add(0, tr.From)
	}
	dur := min(tr.Duration, end-start)
	k.add(start, k.last())
	k.add(start+snap, tr.From)
	k.addEased(start+dur, tr.To, spline)
}

func offset(dx, dy float64) string {
	return num(dx) + "," + num(dy)
}

func (e *elementTracks) writeTransform(buf *bytes.Buffer) {
	if e == nil || len(e.transform.times) < 2 {
		return
	}
	fmt.Fprintf(buf, `<animateTransform attributeName="transform" type="translate" %s/>`, e.timing(&e.transform))
}

func (e *elementTracks) writeFill(buf *bytes.Buffer) {
	if e == nil || len(e.fill.times) < 2 {
		return
	}
	fmt.Fprintf(buf, `<animate attributeName="fill" %s/>`, e.timing(&e.fill))
}

func (e *elementTracks) writePath(buf *bytes.Buffer) {
	if e == nil || len(e.path.times) < 2 {
		return
	}
	fmt.Fprintf(buf, `<animate attributeName="d" %s/>`, e.timing(&e.path))
}

// timing renders values, keyTimes, dur and repeatCount for k. The track is
// closed at the end of the loop with its last value.
func (e *elementTracks) timing(k *keyframes) string {
	times := append([]time.Duration(nil), k.times...)
	values := append([]string(nil), k.values...)
	splines := append([]string(nil), k.splines...)
	if times[len(times)-1] < e.total {
		times = append(times, e.total)
		values = append(values, values[len(values)-1])
		splines = append(splines, linearSpline)
	}

	keyTimes := make([]string, len(times))
	for i, t := range times {
		f := min(1, float64(t)/float64(e.total))
		if i == len(times)-1 {
			f = 1
		}
		keyTimes[i] = strconv.FormatFloat(f, 'f', 5, 64)
	}
	spline := ""
	if k.eased() {
		spline = fmt.Sprintf(` calcMode="spline" keySplines="%s"`, strings.Join(splines[1:], ";"))
	}
	return fmt.Sprintf(`values="%s" keyTimes="%s"%s dur="%s" repeatCount="indefinite"`,
		strings.Join(values, ";"), strings.Join(keyTimes, ";"), spline, seconds(e.total))
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}
