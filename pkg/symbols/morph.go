package symbols

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/wordcloud/pkg/errors"
)

// DefaultSamples is the number of ring points used by [Interpolate].
const DefaultSamples = 64

// arcSegments is the number of line segments per radian of flattened arc.
const arcSegments = 8

// Point is a 2-D coordinate.
type Point struct{ X, Y float64 }

// Interpolate returns a function that morphs path from into path to.
// Both outlines are resampled into rings of [DefaultSamples] points, so
// every returned path has the same command structure and can be animated
// by SMIL. t is clamped to [0, 1].
func Interpolate(from, to string) (func(t float64) string, error) {
	return InterpolateN(from, to, DefaultSamples)
}

// InterpolateN is [Interpolate] with an explicit ring size (minimum 3).
func InterpolateN(from, to string, samples int) (func(t float64) string, error) {
	samples = max(samples, 3)
	a, err := Ring(from, samples)
	if err != nil {
		return nil, err
	}
	b, err := Ring(to, samples)
	if err != nil {
		return nil, err
	}
	if signedArea(a)*signedArea(b) < 0 {
		reverse(b)
	}
	b = alignRing(a, b)

	return func(t float64) string {
		t = max(0, min(1, t))
		pts := make([]Point, len(a))
		for i := range a {
			pts[i] = Point{
				X: a[i].X + (b[i].X-a[i].X)*t,
				Y: a[i].Y + (b[i].Y-a[i].Y)*t,
			}
		}
		return RingPath(pts)
	}, nil
}

// Ring parses path data and resamples its first closed outline into n
// points spaced evenly along the perimeter.
func Ring(d string, n int) ([]Point, error) {
	pts, err := flatten(d)
	if err != nil {
		return nil, err
	}
	if len(pts) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidPathData, "path %q has fewer than two points", d)
	}
	return resample(pts, n), nil
}

// RingPath renders points as a closed polygon path.
func RingPath(pts []Point) string {
	var p pathBuilder
	for i, pt := range pts {
		if i == 0 {
			p.moveTo(pt.X, pt.Y)
			continue
		}
		p.lineTo(pt.X, pt.Y)
	}
	p.closePath()
	return p.String()
}

// flatten converts absolute M/L/H/V/A/Z path data into a polyline of the
// first subpath. Arcs are approximated by line segments.
func flatten(d string) ([]Point, error) {
	toks := tokenize(d)
	var (
		pts   []Point
		cur   Point
		start Point
		cmd   byte
	)
	i := 0
	next := func() (float64, error) {
		if i >= len(toks) || isCommand(toks[i]) {
			return 0, errors.New(errors.ErrCodeInvalidPathData, "missing coordinate in path %q", d)
		}
		v, err := strconv.ParseFloat(toks[i], 64)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidPathData, err, "bad number %q", toks[i])
		}
		i++
		return v, nil
	}

	for i < len(toks) {
		if isCommand(toks[i]) {
			cmd = toks[i][0]
			i++
		} else if cmd == 0 {
			return nil, errors.New(errors.ErrCodeInvalidPathData, "path %q must start with a command", d)
		}

		switch cmd {
		case 'M', 'L':
			x, err := next()
			if err != nil {
				return nil, err
			}
			y, err := next()
			if err != nil {
				return nil, err
			}
			if cmd == 'M' {
				if len(pts) > 0 {
					return pts, nil // first subpath only
				}
				start = Point{x, y}
				cmd = 'L' // implicit lineto after moveto
			}
			cur = Point{x, y}
			pts = append(pts, cur)
		case 'H':
			x, err := next()
			if err != nil {
				return nil, err
			}
			cur.X = x
			pts = append(pts, cur)
		case 'V':
			y, err := next()
			if err != nil {
				return nil, err
			}
			cur.Y = y
			pts = append(pts, cur)
		case 'A':
			var v [7]float64
			for k := range v {
				f, err := next()
				if err != nil {
					return nil, err
				}
				v[k] = f
			}
			end := Point{v[5], v[6]}
			pts = append(pts, arcPoints(cur, end, v[0], v[1], v[2], v[3] != 0, v[4] != 0)...)
			cur = end
		case 'Z':
			cur = start
			if i < len(toks) && !isCommand(toks[i]) {
				return nil, errors.New(errors.ErrCodeInvalidPathData, "unexpected value after Z in %q", d)
			}
			return dedupeClosing(pts), nil
		default:
			return nil, errors.New(errors.ErrCodeInvalidPathData, "unsupported path command %q", string(cmd))
		}
	}
	return dedupeClosing(pts), nil
}

func dedupeClosing(pts []Point) []Point {
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		return pts[:n-1]
	}
	return pts
}

func isCommand(tok string) bool {
	if len(tok) != 1 {
		return false
	}
	c := tok[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// tokenize splits path data into command letters and number strings.
func tokenize(d string) []string {
	var toks []string
	var num strings.Builder
	flush := func() {
		if num.Len() > 0 {
			toks = append(toks, num.String())
			num.Reset()
		}
	}
	for j := 0; j < len(d); j++ {
		c := d[j]
		switch {
		case c == ',' || c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()
		case c == 'e' || c == 'E':
			if num.Len() > 0 {
				num.WriteByte(c)
			} else {
				toks = append(toks, string(c))
			}
		case (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z'):
			flush()
			toks = append(toks, string(c))
		case c == '-' || c == '+':
			s := num.String()
			if len(s) > 0 && s[len(s)-1] != 'e' && s[len(s)-1] != 'E' {
				flush()
			}
			num.WriteByte(c)
		case c == '.':
			if strings.Contains(num.String(), ".") {
				flush()
			}
			num.WriteByte(c)
		default:
			num.WriteByte(c)
		}
	}
	flush()
	return toks
}

// arcPoints flattens an SVG elliptical arc from p0 to p1, excluding p0.
// It follows the endpoint-to-center conversion of SVG 1.1 appendix F.6.
func arcPoints(p0, p1 Point, rx, ry, phiDeg float64, largeArc, sweep bool) []Point {
	if p0 == p1 {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []Point{p1}
	}
	phi := phiDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx, dy := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1 / ry
	cyp := -coef * ry * x1 / rx

	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	theta1 := vecAngle(1, 0, (x1-cxp)/rx, (y1-cyp)/ry)
	dtheta := vecAngle((x1-cxp)/rx, (y1-cyp)/ry, (-x1-cxp)/rx, (-y1-cyp)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	n := max(1, int(math.Ceil(math.Abs(dtheta)*arcSegments)))
	pts := make([]Point, 0, n)
	for k := 1; k <= n; k++ {
		if k == n {
			pts = append(pts, p1)
			break
		}
		th := theta1 + dtheta*float64(k)/float64(n)
		ex, ey := rx*math.Cos(th), ry*math.Sin(th)
		pts = append(pts, Point{
			X: cosPhi*ex - sinPhi*ey + cx,
			Y: sinPhi*ex + cosPhi*ey + cy,
		})
	}
	return pts
}

func vecAngle(ux, uy, vx, vy float64) float64 {
	a := math.Atan2(uy, ux)
	b := math.Atan2(vy, vx)
	d := b - a
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// resample walks the closed polyline and returns n evenly spaced points.
func resample(pts []Point, n int) []Point {
	m := len(pts)
	lengths := make([]float64, m)
	total := 0.0
	for i := range pts {
		j := (i + 1) % m
		lengths[i] = math.Hypot(pts[j].X-pts[i].X, pts[j].Y-pts[i].Y)
		total += lengths[i]
	}
	if total == 0 {
		out := make([]Point, n)
		for i := range out {
			out[i] = pts[0]
		}
		return out
	}

	out := make([]Point, 0, n)
	step := total / float64(n)
	seg, acc := 0, 0.0
	for k := range n {
		target := step * float64(k)
		for seg < m-1 && acc+lengths[seg] < target {
			acc += lengths[seg]
			seg++
		}
		a, b := pts[seg], pts[(seg+1)%m]
		t := 0.0
		if lengths[seg] > 0 {
			t = (target - acc) / lengths[seg]
		}
		out = append(out, Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t})
	}
	return out
}

func signedArea(pts []Point) float64 {
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return area / 2
}

func reverse(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// alignRing rotates b so that the summed squared distance to a is smallest.
func alignRing(a, b []Point) []Point {
	n := len(a)
	best, bestOff := math.Inf(1), 0
	for off := range n {
		sum := 0.0
		for i := range n {
			p, q := a[i], b[(i+off)%n]
			sum += (p.X-q.X)*(p.X-q.X) + (p.Y-q.Y)*(p.Y-q.Y)
		}
		if sum < best {
			best, bestOff = sum, off
		}
	}
	out := make([]Point, n)
	for i := range n {
		out[i] = b[(i+bestOff)%n]
	}
	return out
}
