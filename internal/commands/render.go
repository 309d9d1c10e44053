package commands

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/akasprzok/strand/internal/config"
	"github.com/akasprzok/strand/internal/render"
)

// RenderCmd rasterizes a chart config to PNG.
type RenderCmd struct {
	Config   string  `arg:"" help:"Chart config YAML file."`
	Output   string  `name:"output" short:"o" help:"Output PNG file." default:"chart.png"`
	Progress float64 `help:"Reveal progress to render at, in [0,1]." default:"1"`
	Margin   float64 `help:"Blank border around the chart area, in pixels." default:"16"`
}

func (r *RenderCmd) Run(ctx *Context) error {
	f, err := config.Load(r.Config)
	if err != nil {
		return err
	}
	sets, err := f.DataSets()
	if err != nil {
		return err
	}
	bg, err := f.BackgroundColor()
	if err != nil {
		return err
	}
	w, h := f.Size()

	img, err := render.Chart(sets, render.Options{
		Width:      w,
		Height:     h,
		Background: bg,
		Margin:     r.Margin,
	}, r.Progress)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(r.Output, img); err != nil {
		return fmt.Errorf("writing %s: %w", r.Output, err)
	}
	return nil
}
