package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/akasprzok/strand/internal/colors"
	"github.com/akasprzok/strand/internal/linechart"
)

// chartEpoch anchors synthetic timestamps: point index i maps to epoch+i
// seconds, so x labels read as point indices.
var chartEpoch = time.Unix(0, 0).UTC()

// samplesPerCurve is the polyline resolution per cubic when drawing into
// the braille canvas.
const samplesPerCurve = 8

func (m Model) View() string {
	var b strings.Builder

	if m.title != "" {
		b.WriteString(TitleStyle.Render(m.title))
		b.WriteString("\n\n")
	}

	switch m.state {
	case stateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" querying Prometheus...")
		return b.String()

	case stateError:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
		for _, w := range m.warnings {
			b.WriteString(WarningStyle.Render("warning: " + w))
			b.WriteString("\n")
		}
		b.WriteString(HelpStyle.Render("q to quit"))
		return b.String()
	}

	progress := m.reveal.Progress(time.Now())
	b.WriteString(m.chartView(progress))
	b.WriteString("\n")
	b.WriteString(m.legend.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(fmt.Sprintf(
		"reveal %3.0f%%  ·  r replay · d hide · s show · a toggle animation · q quit", progress*100)))
	return b.String()
}

// chartView draws the revealed fraction of every data set's geometry onto
// a braille canvas. Each path segment becomes its own ntcharts data set so
// per-segment colors survive the terminal.
func (m Model) chartView(progress float64) string {
	width := m.width - 2
	height := m.height - len(m.sets) - 10
	if width < 16 {
		width = 16
	}
	if height < 4 {
		height = 4
	}

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = func(i int, v float64) string {
		return strconv.Itoa(int(v))
	}
	lc.SetYRange(m.vr.Min, m.vr.Min+m.vr.Span)
	lc.SetViewYRange(m.vr.Min, m.vr.Min+m.vr.Span)
	lc.SetTimeRange(chartEpoch, chartEpoch.Add(time.Duration(m.maxIndex())*time.Second))
	lc.SetViewTimeRange(chartEpoch, chartEpoch.Add(time.Duration(m.maxIndex())*time.Second))
	lc.SetLineStyle(runes.ThinLineStyle)

	for i, ds := range m.sets {
		rect := linechart.Rect{Width: float64(len(ds.Points) - 1), Height: m.vr.Span}

		if ds.Style.Segmented {
			segs := linechart.TrimSegments(m.builder.Build(ds, m.vr, rect), progress)
			for k, seg := range segs {
				name := fmt.Sprintf("%s/%d", ds.Label, k)
				lc.SetDataSetStyle(name, lipgloss.NewStyle().Foreground(colors.Lipgloss(seg.Color)))
				m.pushPath(&lc, name, seg.Path, rect)
			}
			continue
		}

		path, ok := m.builder.BuildPath(ds, m.vr, rect)
		if !ok {
			continue
		}
		c := terminalColor(ds.Style.Color, colors.SeriesColor(i))
		lc.SetDataSetStyle(ds.Label, lipgloss.NewStyle().Foreground(colors.Lipgloss(c)))
		m.pushPath(&lc, ds.Label, path.Trim(progress), rect)
	}

	lc.DrawBrailleAll()
	return lc.View()
}

// pushPath flattens screen-space geometry back into value space and feeds
// it to the canvas.
func (m Model) pushPath(lc *timeserieslinechart.Model, name string, path linechart.CurvePath, rect linechart.Rect) {
	for _, p := range path.Flatten(samplesPerCurve) {
		lc.PushDataSet(name, timeserieslinechart.TimePoint{
			Time:  chartEpoch.Add(time.Duration(p.X * float64(time.Second))),
			Value: m.vr.Min + (rect.Height - p.Y),
		})
	}
}

func (m Model) maxIndex() int {
	max := 1
	for _, ds := range m.sets {
		if len(ds.Points)-1 > max {
			max = len(ds.Points) - 1
		}
	}
	return max
}

// terminalColor picks a representative color for a style the terminal
// cannot gradient.
func terminalColor(style linechart.ColorStyle, fallback colorful.Color) colorful.Color {
	switch s := style.(type) {
	case linechart.Solid:
		return s.Color
	case linechart.GradientColors:
		if len(s.Colors) > 0 {
			return s.Colors[0]
		}
	case linechart.GradientStops:
		if len(s.Stops) > 0 {
			return s.Stops[0].Color
		}
	}
	return fallback
}
