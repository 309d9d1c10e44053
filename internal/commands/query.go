package commands

import (
	"fmt"
	"os"
	"time"

	teatable "github.com/evertras/bubble-table/table"
	"github.com/prometheus/common/model"

	"github.com/akasprzok/strand/internal/colors"
	"github.com/akasprzok/strand/internal/prometheus"
)

// QueryCmd runs an instant PromQL query and prints the current sample of
// every matching series, the spot-check companion to a range preview.
type QueryCmd struct {
	PrometheusURL string `help:"URL of the Prometheus endpoint." short:"p" env:"STRAND_PROMETHEUS_URL" name:"prometheus-url"`
	Query         string `arg:"" name:"query" help:"PromQL instant query." required:"true"`
}

func (q *QueryCmd) Run(ctx *Context) error {
	client, err := prometheus.NewClient(q.PrometheusURL)
	if err != nil {
		return err
	}
	return q.run(client, ctx.Timeout)
}

func (q *QueryCmd) run(client prometheus.Client, timeout time.Duration) error {
	warnings, vector, err := client.Query(q.Query, timeout)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if len(vector) == 0 {
		return fmt.Errorf("query returned no samples")
	}
	fmt.Println(prometheus.FormatQuery(q.Query))
	fmt.Println(vectorTable(vector).View())
	return nil
}

// vectorTable lays out an instant-query result as a metric/value/timestamp
// table, one palette-colored row per series.
func vectorTable(vector model.Vector) teatable.Model {
	longestMetric := len("Metric")
	longestValue := len("Value")
	rows := make([]teatable.Row, 0, len(vector))
	for i, sample := range vector {
		metric := sample.Metric.String()
		if len(metric) > longestMetric {
			longestMetric = len(metric)
		}
		if len(sample.Value.String()) > longestValue {
			longestValue = len(sample.Value.String())
		}
		rows = append(rows, teatable.NewRow(teatable.RowData{
			"metric":    metric,
			"value":     sample.Value.String(),
			"timestamp": sample.Timestamp.Time().UTC().Format(time.RFC3339),
		}).WithStyle(colors.SeriesStyle(i)))
	}

	columns := []teatable.Column{
		teatable.NewColumn("metric", "Metric", longestMetric+1),
		teatable.NewColumn("value", "Value", longestValue+1),
		teatable.NewColumn("timestamp", "Timestamp", 26),
	}
	return teatable.New(columns).WithRows(rows)
}
