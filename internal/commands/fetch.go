package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/prometheus/common/model"
	"gopkg.in/yaml.v2"

	"github.com/akasprzok/strand/internal/colors"
	"github.com/akasprzok/strand/internal/config"
	"github.com/akasprzok/strand/internal/prometheus"
)

// FetchCmd runs a Prometheus range query and writes the result as a chart
// config, ready for render or preview.
type FetchCmd struct {
	PrometheusURL string        `help:"URL of the Prometheus endpoint." short:"p" env:"STRAND_PROMETHEUS_URL" name:"prometheus-url"`
	Query         string        `arg:"" name:"query" help:"PromQL range query." required:"true"`
	Range         time.Duration `name:"range" short:"r" help:"Range to query." default:"1h"`
	Step          time.Duration `name:"step" short:"s" help:"Step interval for the range query." default:"1m"`
	AlertAbove    *float64      `name:"alert-above" help:"Color points above this value with the alert color."`
	Output        string        `name:"output" short:"o" help:"Output file, or - for stdout." default:"-"`
}

func (f *FetchCmd) Run(ctx *Context) error {
	client, err := prometheus.NewClient(f.PrometheusURL)
	if err != nil {
		return err
	}
	matrix, warnings, err := client.QueryRange(f.Query, time.Now().Add(-f.Range), time.Now(), f.Step, ctx.Timeout)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(matrix) == 0 {
		return fmt.Errorf("query returned no series")
	}

	out, err := yaml.Marshal(f.chartConfig(matrix))
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if f.Output == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(f.Output, out, 0o644)
}

// chartConfig converts a range-query matrix into a chart config. Per-point
// colors are written out explicitly so the config is self-contained.
func (f *FetchCmd) chartConfig(matrix model.Matrix) *config.File {
	cf := &config.File{
		Title: prometheus.FormatQuery(f.Query),
		Line: config.Line{
			Width:     2,
			Segmented: f.AlertAbove != nil,
		},
	}
	for i, stream := range matrix {
		base := colors.SeriesColor(i)
		series := config.Series{Label: stream.Metric.String()}
		for _, sample := range stream.Values {
			p := config.PointC{Value: float64(sample.Value)}
			c := base
			if f.AlertAbove != nil && p.Value > *f.AlertAbove {
				c = colors.Alert
			}
			p.Color = c.Hex()
			series.Points = append(series.Points, p)
		}
		cf.Series = append(cf.Series, series)
	}
	return cf
}
