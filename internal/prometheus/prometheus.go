// Package prometheus feeds line charts from a Prometheus server: range
// queries become data sets, with optional threshold-based alert coloring
// of individual points.
package prometheus

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/akasprzok/strand/internal/colors"
	"github.com/akasprzok/strand/internal/linechart"
)

type prometheusClient struct {
	v1api v1.API
}

// Client is the subset of the Prometheus HTTP API the charting commands
// use.
type Client interface {
	Query(query string, timeout time.Duration) (v1.Warnings, model.Vector, error)
	QueryRange(query string, start, end time.Time, step time.Duration, timeout time.Duration) (model.Matrix, v1.Warnings, error)
}

// NewClient connects to a Prometheus endpoint.
func NewClient(url string) (Client, error) {
	client, err := api.NewClient(api.Config{
		Address: url,
	})
	if err != nil {
		return nil, fmt.Errorf("creating prometheus client: %w", err)
	}
	v1api := v1.NewAPI(client)
	return &prometheusClient{v1api: v1api}, nil
}

func (c *prometheusClient) Query(query string, timeout time.Duration) (v1.Warnings, model.Vector, error) {
	var vector model.Vector
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	result, warnings, err := c.v1api.Query(ctx, query, time.Now(), v1.WithTimeout(timeout))
	if err != nil {
		return warnings, vector, err
	}

	switch result.Type() {
	case model.ValVector:
		v := result.(model.Vector)
		return warnings, v, nil
	case model.ValNone, model.ValScalar, model.ValMatrix, model.ValString:
		return warnings, vector, fmt.Errorf("unexpected result type: %s", result.Type())
	default:
		return warnings, vector, fmt.Errorf("unknown result type: %s", result.Type())
	}
}

func (c *prometheusClient) QueryRange(query string, start, end time.Time, step time.Duration, timeout time.Duration) (model.Matrix, v1.Warnings, error) {
	var matrix model.Matrix
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	result, warnings, err := c.v1api.QueryRange(ctx, query, v1.Range{
		Start: start,
		End:   end,
		Step:  step,
	}, v1.WithTimeout(timeout))
	if err != nil {
		return matrix, warnings, err
	}

	switch result.Type() {
	case model.ValMatrix:
		m := result.(model.Matrix)
		return m, warnings, nil
	case model.ValNone, model.ValScalar, model.ValVector, model.ValString:
		return matrix, warnings, fmt.Errorf("unexpected result type: %s", result.Type())
	default:
		return matrix, warnings, fmt.Errorf("unknown result type: %s", result.Type())
	}
}

// FormatQuery pretty-prints a PromQL expression, returning the input
// unchanged when it does not parse.
func FormatQuery(query string) string {
	ast, err := parser.ParseExpr(query)
	if err != nil {
		return query
	}
	return ast.Pretty(0)
}

// DataSets converts a range-query matrix into chart data sets. Series get
// palette colors in matrix order. When alertAbove is non-nil, points whose
// value exceeds it take the alert color, which the segment builder then
// splits into alert-colored runs.
func DataSets(matrix model.Matrix, style linechart.LineStyle, alertAbove *float64) []linechart.DataSet {
	sets := make([]linechart.DataSet, 0, len(matrix))
	for i, stream := range matrix {
		base := colors.SeriesColor(i)
		ds := linechart.DataSet{
			Label: stream.Metric.String(),
			Style: style,
		}
		if ds.Style.Color == nil {
			ds.Style.Color = linechart.Solid{Color: base}
		}
		for _, sample := range stream.Values {
			dp := linechart.DataPoint{Value: float64(sample.Value)}
			c := base
			if alertAbove != nil && dp.Value > *alertAbove {
				c = colors.Alert
			}
			dp.Color = &c
			ds.Points = append(ds.Points, dp)
		}
		sets = append(sets, ds)
	}
	return sets
}
