package linechart

import "fmt"

// Mapper converts (index, value) pairs into screen coordinates for a fixed
// rect, range, and point count. Y is inverted: values grow upward, the
// surface grows downward.
type Mapper struct {
	rect Rect
	min  float64
	span float64
	step float64
	unit float64
}

// NewMapper fails for fewer than two points or a non-positive span; both
// would divide by zero. Callers short-circuit degenerate input instead of
// constructing a mapper for it.
func NewMapper(rect Rect, vr ValueRange, n int) (Mapper, error) {
	if n < 2 {
		return Mapper{}, fmt.Errorf("mapper needs at least 2 points, got %d", n)
	}
	if vr.Span <= 0 {
		return Mapper{}, fmt.Errorf("mapper needs a positive value span, got %g", vr.Span)
	}
	return Mapper{
		rect: rect,
		min:  vr.Min,
		span: vr.Span,
		step: rect.Width / float64(n-1),
		unit: rect.Height / vr.Span,
	}, nil
}

// Point maps index i at the given value onto the surface.
func (m Mapper) Point(i int, value float64) Point {
	return Point{
		X: float64(i) * m.step,
		Y: m.rect.Height - (value-m.min)*m.unit,
	}
}
