// Package render rasterizes built line-chart geometry with fogleman/gg.
// It dispatches exhaustively over the closed ColorStyle set and gates all
// drawing on the reveal progress supplied by the caller.
package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/akasprzok/strand/internal/colors"
	"github.com/akasprzok/strand/internal/linechart"
)

// ErrUnknownStyle reports a ColorStyle outside the closed set. Nothing is
// drawn in that case.
var ErrUnknownStyle = errors.New("unknown color style")

// Options configures a raster pass.
type Options struct {
	Width      int
	Height     int
	Background colorful.Color
	Margin     float64 // blank border around the chart area
}

// Chart renders data sets into an image at the given reveal progress.
// Progress 1 is the fully revealed chart.
func Chart(sets []linechart.DataSet, opts Options, progress float64) (image.Image, error) {
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(opts.Background)
	dc.Clear()

	rect := linechart.Rect{
		Width:  float64(opts.Width) - 2*opts.Margin,
		Height: float64(opts.Height) - 2*opts.Margin,
	}
	dc.Translate(opts.Margin, opts.Margin)

	vr := linechart.RangeOf(sets...)
	if vr.Span <= 0 {
		vr.Span = 1 // flat or empty data still draws a baseline-anchored line
	}

	builder := linechart.Builder{Fallback: colors.Primary, Alert: colors.Alert}
	for _, ds := range sets {
		if err := dataSet(dc, builder, ds, vr, rect, progress); err != nil {
			return nil, fmt.Errorf("rendering %q: %w", ds.Label, err)
		}
	}
	return dc.Image(), nil
}

func dataSet(dc *gg.Context, b linechart.Builder, ds linechart.DataSet, vr linechart.ValueRange, rect linechart.Rect, progress float64) error {
	style := ds.Style.Color
	if style == nil {
		style = linechart.Solid{Color: colors.Primary}
	}

	if ds.Style.Segmented {
		segs := b.Build(ds, vr, rect)
		if ds.Style.Filled {
			if err := fillSegments(dc, segs, style, rect, progress); err != nil {
				return err
			}
		}
		strokeSegments(dc, segs, ds.Style, progress)
		return nil
	}

	path, ok := b.BuildPath(ds, vr, rect)
	if !ok {
		return nil
	}
	if ds.Style.Filled {
		if err := fillPath(dc, path, style, rect, progress); err != nil {
			return err
		}
		if ds.Style.Stroke != nil {
			tracePath(dc, path.Trim(progress))
			stroke(dc, *ds.Style.Stroke, ds.Style.Width)
		}
		return nil
	}
	tracePath(dc, path.Trim(progress))
	return strokeStyled(dc, style, rect, ds.Style.Width)
}

// strokeSegments draws each segment in its own color, trimming the
// concatenated geometry to the progress fraction of its total length.
func strokeSegments(dc *gg.Context, segs []linechart.PathSegment, ls linechart.LineStyle, progress float64) {
	for _, s := range linechart.TrimSegments(segs, clamp01(progress)) {
		tracePath(dc, s.Path)
		stroke(dc, s.Color, ls.Width)
	}
}

// fillSegments fills the region under the whole curve, scaled vertically by
// progress and anchored at the baseline, using the data set's color style.
func fillSegments(dc *gg.Context, segs []linechart.PathSegment, style linechart.ColorStyle, rect linechart.Rect, progress float64) error {
	if len(segs) == 0 {
		return nil
	}
	full := linechart.CurvePath{Start: segs[0].Path.Start}
	for _, s := range segs {
		full.Curves = append(full.Curves, s.Path.Curves...)
	}
	return fillPath(dc, full, style, rect, progress)
}

func fillPath(dc *gg.Context, path linechart.CurvePath, style linechart.ColorStyle, rect linechart.Rect, progress float64) error {
	if len(path.Curves) == 0 {
		return nil
	}
	dc.Push()
	// Vertical scale anchored at the baseline.
	dc.Translate(0, rect.Height)
	dc.Scale(1, clamp01(progress))
	dc.Translate(0, -rect.Height)

	tracePath(dc, path)
	end := path.End()
	dc.LineTo(end.X, rect.Height)
	dc.LineTo(path.Start.X, rect.Height)
	dc.ClosePath()

	err := setPaint(dc, style, rect)
	if err == nil {
		dc.Fill()
	}
	dc.Pop()
	return err
}

func strokeStyled(dc *gg.Context, style linechart.ColorStyle, rect linechart.Rect, width float64) error {
	if err := setPaint(dc, style, rect); err != nil {
		dc.ClearPath()
		return err
	}
	dc.SetLineWidth(lineWidth(width))
	dc.Stroke()
	return nil
}

// setPaint is the render-strategy dispatch: exactly one strategy per style
// in the closed set, an error otherwise.
func setPaint(dc *gg.Context, style linechart.ColorStyle, rect linechart.Rect) error {
	switch s := style.(type) {
	case linechart.Solid:
		dc.SetColor(s.Color)
		return nil
	case linechart.GradientColors:
		grad, err := linearGradient(stopsFromColors(s.Colors), s.Start, s.End, rect)
		if err != nil {
			return err
		}
		dc.SetFillStyle(grad)
		dc.SetStrokeStyle(grad)
		return nil
	case linechart.GradientStops:
		grad, err := linearGradient(s.Stops, s.Start, s.End, rect)
		if err != nil {
			return err
		}
		dc.SetFillStyle(grad)
		dc.SetStrokeStyle(grad)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownStyle, style)
	}
}

func tracePath(dc *gg.Context, path linechart.CurvePath) {
	dc.MoveTo(path.Start.X, path.Start.Y)
	for _, c := range path.Curves {
		dc.CubicTo(c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.To.X, c.To.Y)
	}
}

func stroke(dc *gg.Context, c colorful.Color, width float64) {
	dc.SetColor(c)
	dc.SetLineWidth(lineWidth(width))
	dc.Stroke()
}

func lineWidth(w float64) float64 {
	if w <= 0 {
		return 2
	}
	return w
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
