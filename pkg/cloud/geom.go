package cloud

import "math"

// vec is a 2-D point or direction.
type vec struct{ x, y float64 }

// quad is a rotated rectangle given by its corners in drawing order.
type quad [4]vec

// rect is an axis-aligned bounding box.
type rect struct{ x0, y0, x1, y1 float64 }

func (r rect) overlaps(o rect) bool {
	return r.x0 < o.x1 && o.x0 < r.x1 && r.y0 < o.y1 && o.y0 < r.y1
}

func (r rect) inside(o rect) bool {
	return r.x0 >= o.x0 && r.y0 >= o.y0 && r.x1 <= o.x1 && r.y1 <= o.y1
}

// wordQuad returns the corners of box padded by pad, rotated by deg about
// the anchor and translated to (x, y).
func wordQuad(b Box, pad, x, y, deg float64) quad {
	hw := b.Width/2 + pad
	top, bottom := -b.Ascent-pad, b.Descent+pad
	rad := deg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	local := [4]vec{{-hw, top}, {hw, top}, {hw, bottom}, {-hw, bottom}}
	var q quad
	for i, p := range local {
		q[i] = vec{x + p.x*cos - p.y*sin, y + p.x*sin + p.y*cos}
	}
	return q
}

func (q quad) bounds() rect {
	r := rect{q[0].x, q[0].y, q[0].x, q[0].y}
	for _, p := range q[1:] {
		r.x0, r.x1 = min(r.x0, p.x), max(r.x1, p.x)
		r.y0, r.y1 = min(r.y0, p.y), max(r.y1, p.y)
	}
	return r
}

// intersects reports whether two convex quads overlap, using the separating
// axis theorem. Touching edges do not count as overlap.
func (q quad) intersects(o quad) bool {
	for _, poly := range [2]quad{q, o} {
		for i := range 4 {
			a, b := poly[i], poly[(i+1)%4]
			axis := vec{-(b.y - a.y), b.x - a.x}
			if axis.x == 0 && axis.y == 0 {
				continue
			}
			min1, max1 := q.project(axis)
			min2, max2 := o.project(axis)
			if max1 <= min2 || max2 <= min1 {
				return false
			}
		}
	}
	return true
}

func (q quad) project(axis vec) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range q {
		d := p.x*axis.x + p.y*axis.y
		lo, hi = min(lo, d), max(hi, d)
	}
	return lo, hi
}
