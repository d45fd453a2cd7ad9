// Package symbols generates SVG path data for the tile shapes used by the
// symbol overlay, and morphs between them.
//
// Each generator maps a bounding box (x, y, width, height) to an absolute
// path string. Generators are pure: the same box always yields the same
// string.
package symbols

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Kind names a symbol shape.
type Kind int

const (
	KindSquare Kind = iota
	KindCircle
	KindDiamond
	KindX
)

// Kinds lists every shape in declaration order.
var Kinds = []Kind{KindSquare, KindCircle, KindDiamond, KindX}

var kindNames = [...]string{"square", "circle", "diamond", "x"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind returns the shape with the given name.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown symbol %q", s)
}

// MarshalText encodes k by name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown symbol %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a shape name with [ParseKind].
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Func produces path data for a shape filling the box at (x, y).
type Func func(x, y, width, height float64) string

// Generator returns the path function for k. Unknown kinds fall back to
// [Square].
func Generator(k Kind) Func {
	switch k {
	case KindCircle:
		return Circle
	case KindDiamond:
		return Diamond
	case KindX:
		return X
	default:
		return Square
	}
}

// Path is shorthand for Generator(k)(x, y, width, height).
func (k Kind) Path(x, y, width, height float64) string {
	return Generator(k)(x, y, width, height)
}

// Random picks a shape uniformly.
func Random(rng *rand.Rand) Kind {
	return Kinds[rng.IntN(len(Kinds))]
}

// Square traces the box clockwise from its top-left corner.
func Square(x, y, width, height float64) string {
	var p pathBuilder
	p.moveTo(x, y)
	p.lineTo(x+width, y)
	p.lineTo(x+width, y+height)
	p.lineTo(x, y+height)
	p.closePath()
	return p.String()
}

// Circle is an ellipse inscribed in the box, drawn as two half arcs.
func Circle(x, y, width, height float64) string {
	cx, cy := x+width/2, y+height/2
	rx, ry := width/2, height/2
	return fmt.Sprintf("M %s,%s A %s,%s 0 0,1 %s,%s A %s,%s 0 0,1 %s,%s Z",
		num(cx+rx), num(cy),
		num(rx), num(ry), num(cx-rx), num(cy),
		num(rx), num(ry), num(cx+rx), num(cy))
}

// Diamond joins the midpoints of the box edges.
func Diamond(x, y, width, height float64) string {
	var p pathBuilder
	p.moveTo(x+width/2, y)
	p.lineTo(x, y+height/2)
	p.lineTo(x+width/2, y+height)
	p.lineTo(x+width, y+height/2)
	p.closePath()
	return p.String()
}

// X is a twelve-point star whose vertices sit on the quarter grid of the box.
func X(x, y, width, height float64) string {
	a, b := width/4, height/4
	var p pathBuilder
	p.moveTo(x+a, y)
	p.lineTo(x, y+b)
	p.lineTo(x+a, y+b*2)
	p.lineTo(x, y+b*3)
	p.lineTo(x+a, y+b*4)
	p.lineTo(x+a*2, y+b*3)
	p.lineTo(x+a*3, y+b*4)
	p.lineTo(x+a*4, y+b*3)
	p.lineTo(x+a*3, y+b*2)
	p.lineTo(x+a*4, y+b)
	p.lineTo(x+a*3, y)
	p.lineTo(x+a*2, y+b)
	p.closePath()
	return p.String()
}

// pathBuilder accumulates compact path data ("M0,0L10,0Z").
type pathBuilder struct {
	sb strings.Builder
}

func (p *pathBuilder) moveTo(x, y float64) {
	p.sb.WriteString("M" + num(x) + "," + num(y))
}

func (p *pathBuilder) lineTo(x, y float64) {
	p.sb.WriteString("L" + num(x) + "," + num(y))
}

func (p *pathBuilder) closePath() { p.sb.WriteString("Z") }

func (p *pathBuilder) String() string { return p.sb.String() }

// num formats v with at most three decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
