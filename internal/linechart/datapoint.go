// Package linechart builds segmented, color-aware curve geometry for
// multi-series line charts and drives their reveal animation. It is pure
// computation: every build takes fresh inputs and returns fresh outputs,
// nothing is mutated after construction, and nothing here owns a timer or
// does I/O.
package linechart

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DataPoint is one value on the line. Color is optional; a nil color
// resolves to the data set's fallback. Insertion order is the x-axis order.
type DataPoint struct {
	Value float64
	Color *colorful.Color
}

func (p DataPoint) color(fallback colorful.Color) colorful.Color {
	if p.Color == nil {
		return fallback
	}
	return *p.Color
}

// LineType selects how adjacent points are joined.
type LineType int

const (
	// LineCurved joins points with smooth S-curve cubics.
	LineCurved LineType = iota
	// LineStraight joins points with straight edges (degenerate cubics).
	LineStraight
)

// LineStyle describes how a data set's line is drawn.
type LineStyle struct {
	Color      ColorStyle      // coloring strategy for the non-segmented case
	Stroke     *colorful.Color // optional outline color layered over a fill
	Width      float64         // stroke width in surface units
	Type       LineType
	Segmented  bool // split into per-color path segments
	IgnoreZero bool // drop zero-valued points before building
	Filled     bool // fill to the baseline instead of stroking only
}

// DataSet is an ordered series of points plus its line style.
type DataSet struct {
	Label  string
	Points []DataPoint
	Style  LineStyle
}

// ValueRange normalizes values into vertical screen coordinates.
// Span must be positive before it reaches a mapper; callers pad flat data.
type ValueRange struct {
	Min  float64
	Span float64
}

// RangeOf computes the exact min/span over all points of all sets.
// The zero range is returned when no points exist.
func RangeOf(sets ...DataSet) ValueRange {
	first := true
	var lo, hi float64
	for _, ds := range sets {
		for _, p := range ds.Points {
			if ds.Style.IgnoreZero && p.Value == 0 {
				continue
			}
			if first {
				lo, hi = p.Value, p.Value
				first = false
				continue
			}
			if p.Value < lo {
				lo = p.Value
			}
			if p.Value > hi {
				hi = p.Value
			}
		}
	}
	if first {
		return ValueRange{}
	}
	return ValueRange{Min: lo, Span: hi - lo}
}

// Rect is the local drawing frame, supplied fresh each layout pass.
type Rect struct {
	Width  float64
	Height float64
}
