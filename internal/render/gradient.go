package render

import (
	"errors"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/akasprzok/strand/internal/linechart"
)

var errNoStops = errors.New("gradient needs at least one color")

// linearGradient builds a gg gradient from unit-space endpoints scaled to
// the draw rect.
func linearGradient(stops []linechart.Stop, start, end linechart.UnitPoint, rect linechart.Rect) (gg.Gradient, error) {
	if len(stops) == 0 {
		return nil, errNoStops
	}
	if start == end {
		start, end = linechart.UnitTop, linechart.UnitBottom
	}
	grad := gg.NewLinearGradient(
		start.X*rect.Width, start.Y*rect.Height,
		end.X*rect.Width, end.Y*rect.Height,
	)
	for _, s := range stops {
		grad.AddColorStop(clamp01(s.Offset), s.Color.Clamped())
	}
	return grad, nil
}

// stopsFromColors spaces colors evenly along the gradient axis. A single
// color degenerates to a solid-looking gradient.
func stopsFromColors(cs []colorful.Color) []linechart.Stop {
	stops := make([]linechart.Stop, len(cs))
	for i, c := range cs {
		offset := 0.0
		if len(cs) > 1 {
			offset = float64(i) / float64(len(cs)-1)
		}
		stops[i] = linechart.Stop{Color: c, Offset: offset}
	}
	return stops
}
