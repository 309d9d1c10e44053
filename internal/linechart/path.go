package linechart

import "math"

// flattenSteps is the number of line segments each cubic is divided into
// when approximating arc length.
const flattenSteps = 16

// Point is a position on the drawing surface. Y grows downward.
type Point struct {
	X float64
	Y float64
}

func lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Cubic is a cubic Bezier curve. The start point is implied by the previous
// element of the containing path.
type Cubic struct {
	C1 Point
	C2 Point
	To Point
}

// at evaluates the curve at parameter t given its start point.
func (c Cubic) at(from Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*u*from.X + 3*u*u*t*c.C1.X + 3*u*t*t*c.C2.X + t*t*t*c.To.X,
		Y: u*u*u*from.Y + 3*u*u*t*c.C1.Y + 3*u*t*t*c.C2.Y + t*t*t*c.To.Y,
	}
}

// length approximates the curve's arc length by flattening.
func (c Cubic) length(from Point) float64 {
	var total float64
	prev := from
	for i := 1; i <= flattenSteps; i++ {
		p := c.at(from, float64(i)/flattenSteps)
		total += dist(prev, p)
		prev = p
	}
	return total
}

// split divides the curve at parameter t using de Casteljau's algorithm,
// returning the half before t. The second return value is the split point,
// which becomes the start of the discarded remainder.
func (c Cubic) split(from Point, t float64) (Cubic, Point) {
	ab := lerp(from, c.C1, t)
	bc := lerp(c.C1, c.C2, t)
	cd := lerp(c.C2, c.To, t)
	abc := lerp(ab, bc, t)
	bcd := lerp(bc, cd, t)
	mid := lerp(abc, bcd, t)
	return Cubic{C1: ab, C2: abc, To: mid}, mid
}

func dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// CurvePath is an open path of cubic Bezier curves starting at Start.
// Paths are built once and never mutated afterwards.
type CurvePath struct {
	Start  Point
	Curves []Cubic
}

// End returns the path's final point.
func (p CurvePath) End() Point {
	if len(p.Curves) == 0 {
		return p.Start
	}
	return p.Curves[len(p.Curves)-1].To
}

// CubicTo appends a curve ending at to.
func (p *CurvePath) CubicTo(c1, c2, to Point) {
	p.Curves = append(p.Curves, Cubic{C1: c1, C2: c2, To: to})
}

// Length approximates the path's total arc length.
func (p CurvePath) Length() float64 {
	var total float64
	from := p.Start
	for _, c := range p.Curves {
		total += c.length(from)
		from = c.To
	}
	return total
}

// Trim returns the leading fraction f of the path by arc length. f is
// clamped to [0,1]; Trim(1) returns the path unchanged and Trim(0) returns
// a path holding only the start point. The cut curve is subdivided, with
// arc length within a curve approximated as proportional to its parameter.
func (p CurvePath) Trim(f float64) CurvePath {
	if f >= 1 {
		return p
	}
	if f <= 0 || len(p.Curves) == 0 {
		return CurvePath{Start: p.Start}
	}

	target := p.Length() * f
	out := CurvePath{Start: p.Start}
	from := p.Start
	for _, c := range p.Curves {
		if target <= 0 {
			return out
		}
		l := c.length(from)
		if target >= l || l == 0 {
			out.Curves = append(out.Curves, c)
			target -= l
			from = c.To
			continue
		}
		head, _ := c.split(from, target/l)
		out.Curves = append(out.Curves, head)
		return out
	}
	return out
}

// Flatten samples the path into an evenly parameterized polyline with
// perCurve points per cubic, including both endpoints.
func (p CurvePath) Flatten(perCurve int) []Point {
	if perCurve < 1 {
		perCurve = 1
	}
	pts := []Point{p.Start}
	from := p.Start
	for _, c := range p.Curves {
		for i := 1; i <= perCurve; i++ {
			pts = append(pts, c.at(from, float64(i)/float64(perCurve)))
		}
		from = c.To
	}
	return pts
}
