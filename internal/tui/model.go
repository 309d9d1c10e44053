// Package tui previews line charts in the terminal. Its Bubble Tea frame
// loop is the external clock for the reveal controller: each tick reads
// the progress and redraws the revealed fraction of the built geometry.
package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"golang.org/x/term"

	"github.com/akasprzok/strand/internal/colors"
	"github.com/akasprzok/strand/internal/linechart"
	"github.com/akasprzok/strand/internal/prometheus"
)

// frameInterval is the reveal animation's redraw cadence.
const frameInterval = 50 * time.Millisecond

type state int

const (
	stateLoading state = iota
	stateReady
	stateError
)

// FetchSpec describes the Prometheus query a fetch-backed preview runs.
type FetchSpec struct {
	Query      string
	Range      time.Duration
	Step       time.Duration
	Timeout    time.Duration
	AlertAbove *float64
	Style      linechart.LineStyle
}

// fetchResultMsg carries the result of the async range query, already
// converted into data sets.
type fetchResultMsg struct {
	sets     []linechart.DataSet
	warnings v1.Warnings
	err      error
}

// frameMsg is one animation frame.
type frameMsg time.Time

// Model is the Bubble Tea model for the chart preview.
type Model struct {
	title string
	sets  []linechart.DataSet
	anim  linechart.AnimationConfig

	reveal  *linechart.Reveal
	builder linechart.Builder
	vr      linechart.ValueRange

	client prometheus.Client
	fetch  *FetchSpec

	state    state
	err      error
	warnings v1.Warnings
	spinner  spinner.Model
	legend   teatable.Model

	width  int
	height int
}

// NewModel previews already-resolved data sets.
func NewModel(title string, sets []linechart.DataSet, anim linechart.AnimationConfig) Model {
	m := newModel(title, anim)
	m.setData(sets)
	return m
}

// NewFetchModel previews the result of a Prometheus range query, showing a
// spinner until it lands.
func NewFetchModel(client prometheus.Client, spec FetchSpec) Model {
	m := newModel(spec.Query, linechart.DefaultAnimation())
	m.client = client
	m.fetch = &spec
	m.state = stateLoading
	return m
}

func newModel(title string, anim linechart.AnimationConfig) Model {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}
	return Model{
		title:   title,
		anim:    anim,
		reveal:  linechart.NewReveal(anim),
		builder: linechart.Builder{Fallback: colors.Primary, Alert: colors.Alert},
		state:   stateReady,
		spinner: NewLoadingSpinner(),
		width:   width,
		height:  height,
	}
}

// setData installs data sets, their padded range, and the legend.
func (m *Model) setData(sets []linechart.DataSet) {
	m.sets = sets
	m.vr = linechart.RangeOf(sets...)
	if m.vr.Span <= 0 {
		m.vr.Min -= 0.5
		m.vr.Span = 1
	}
	m.legend = newLegend(sets)
	m.state = stateReady
}

func (m Model) Init() tea.Cmd {
	if m.state == stateLoading {
		return tea.Batch(m.spinner.Tick, m.fetchCmd())
	}
	return tea.Batch(appearNow, frameTick())
}

func appearNow() tea.Msg {
	return frameMsg(time.Time{})
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) fetchCmd() tea.Cmd {
	spec := *m.fetch
	client := m.client
	return func() tea.Msg {
		end := time.Now()
		matrix, warnings, err := client.QueryRange(spec.Query, end.Add(-spec.Range), end, spec.Step, spec.Timeout)
		if err != nil {
			return fetchResultMsg{warnings: warnings, err: err}
		}
		if len(matrix) == 0 {
			return fetchResultMsg{warnings: warnings, err: fmt.Errorf("query returned no series")}
		}
		sets := prometheus.DataSets(matrix, spec.Style, spec.AlertAbove)
		return fetchResultMsg{sets: sets, warnings: warnings}
	}
}

// newLegend builds the series legend table.
func newLegend(sets []linechart.DataSet) teatable.Model {
	rows := make([]teatable.Row, 0, len(sets))
	longestLabel := len("Series")
	for i, ds := range sets {
		if len(ds.Label) > longestLabel {
			longestLabel = len(ds.Label)
		}
		lo, hi := seriesBounds(ds)
		rows = append(rows, teatable.NewRow(teatable.RowData{
			"series": ds.Label,
			"points": len(ds.Points),
			"min":    fmt.Sprintf("%g", lo),
			"max":    fmt.Sprintf("%g", hi),
		}).WithStyle(colors.SeriesStyle(i)))
	}

	columns := []teatable.Column{
		teatable.NewColumn("series", "Series", longestLabel+1),
		teatable.NewColumn("points", "Points", 8),
		teatable.NewColumn("min", "Min", 12),
		teatable.NewColumn("max", "Max", 12),
	}
	return teatable.New(columns).WithRows(rows)
}

func seriesBounds(ds linechart.DataSet) (float64, float64) {
	vr := linechart.RangeOf(ds)
	return vr.Min, vr.Min + vr.Span
}
