package commands

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akasprzok/strand/internal/config"
	"github.com/akasprzok/strand/internal/linechart"
	"github.com/akasprzok/strand/internal/prometheus"
	"github.com/akasprzok/strand/internal/tui"
)

// PreviewCmd plays a chart's reveal animation in the terminal, from either
// a config file or a live Prometheus range query.
type PreviewCmd struct {
	Config string `arg:"" optional:"" help:"Chart config YAML file."`

	PrometheusURL string        `help:"URL of the Prometheus endpoint." short:"p" env:"STRAND_PROMETHEUS_URL" name:"prometheus-url"`
	Query         string        `name:"query" short:"q" help:"PromQL range query to preview instead of a config file."`
	Range         time.Duration `name:"range" short:"r" help:"Range to query." default:"1h"`
	Step          time.Duration `name:"step" short:"s" help:"Step interval for the range query." default:"1m"`
	AlertAbove    *float64      `name:"alert-above" help:"Color points above this value with the alert color."`
}

func (p *PreviewCmd) Run(ctx *Context) error {
	model, err := p.model(ctx)
	if err != nil {
		return err
	}
	prog := tea.NewProgram(model, tea.WithAltScreen())
	_, err = prog.Run()
	return err
}

func (p *PreviewCmd) model(ctx *Context) (tea.Model, error) {
	if p.Config != "" {
		f, err := config.Load(p.Config)
		if err != nil {
			return nil, err
		}
		sets, err := f.DataSets()
		if err != nil {
			return nil, err
		}
		anim, err := f.AnimationConfig()
		if err != nil {
			return nil, err
		}
		return tui.NewModel(f.Title, sets, anim), nil
	}

	if p.Query == "" {
		return nil, fmt.Errorf("either a config file or --query is required")
	}
	client, err := prometheus.NewClient(p.PrometheusURL)
	if err != nil {
		return nil, err
	}
	return tui.NewFetchModel(client, tui.FetchSpec{
		Query:      p.Query,
		Range:      p.Range,
		Step:       p.Step,
		Timeout:    ctx.Timeout,
		AlertAbove: p.AlertAbove,
		Style:      fetchLineStyle(p.AlertAbove),
	}), nil
}

// fetchLineStyle segments the line when alert coloring is on, so threshold
// crossings split into alert-colored runs.
func fetchLineStyle(alertAbove *float64) linechart.LineStyle {
	return linechart.LineStyle{
		Segmented: alertAbove != nil,
		Width:     2,
	}
}
