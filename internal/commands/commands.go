// Package commands wires the strand CLI: raster rendering, animated
// terminal previews, and Prometheus-backed chart configs.
package commands

import "time"

// Context carries root-level flags into command Run methods.
type Context struct {
	Timeout time.Duration
}

// CLI is the root kong command tree.
type CLI struct {
	Timeout time.Duration `help:"Timeout for Prometheus queries." default:"60s"`

	Render  RenderCmd  `cmd:"" help:"Render a chart config to a PNG image."`
	Preview PreviewCmd `cmd:"" help:"Preview a chart in the terminal with its reveal animation."`
	Fetch   FetchCmd   `cmd:"" help:"Write a chart config from a Prometheus range query."`
	Query   QueryCmd   `cmd:"" help:"Run an instant PromQL query and print the result."`
}
