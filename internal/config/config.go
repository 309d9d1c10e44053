// Package config loads chart descriptions from YAML files and resolves
// them into the data sets, styles, and animation settings the core
// consumes.
package config

import (
	"fmt"
	"os"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/akasprzok/strand/internal/colors"
	"github.com/akasprzok/strand/internal/linechart"
)

// File is the YAML chart description.
type File struct {
	Title      string    `yaml:"title,omitempty"`
	Width      int       `yaml:"width,omitempty"`
	Height     int       `yaml:"height,omitempty"`
	Background string    `yaml:"background,omitempty"`
	Line       Line      `yaml:"line,omitempty"`
	Style      Style     `yaml:"style,omitempty"`
	Animation  Animation `yaml:"animation,omitempty"`
	Series     []Series  `yaml:"series"`
}

// Line mirrors linechart.LineStyle's shape flags.
type Line struct {
	Width      float64 `yaml:"width,omitempty"`
	Type       string  `yaml:"type,omitempty"` // curved or straight
	Segmented  bool    `yaml:"segmented,omitempty"`
	IgnoreZero bool    `yaml:"ignore_zero,omitempty"`
	Filled     bool    `yaml:"filled,omitempty"`
}

// Style mirrors the closed ColorStyle set, tagged by Type.
type Style struct {
	Type   string      `yaml:"type,omitempty"` // solid, gradient, or stops
	Color  string      `yaml:"color,omitempty"`
	Stroke string      `yaml:"stroke,omitempty"`
	Colors []string    `yaml:"colors,omitempty"`
	Stops  []Stop      `yaml:"stops,omitempty"`
	Start  *[2]float64 `yaml:"start,omitempty"` // unit-space gradient axis
	End    *[2]float64 `yaml:"end,omitempty"`
}

// Stop is one explicit gradient stop.
type Stop struct {
	Color  string  `yaml:"color"`
	Offset float64 `yaml:"offset"`
}

// Animation mirrors linechart.AnimationConfig. Duration is a Go duration
// string such as "800ms"; yaml.v2 has no native duration decoding.
type Animation struct {
	Disabled bool   `yaml:"disabled,omitempty"`
	Duration string `yaml:"duration,omitempty"`
	Curve    string `yaml:"curve,omitempty"` // linear, ease-in, ease-out, ease-in-out
}

// Series is one line. Values is the plain form; Points allows per-point
// colors.
type Series struct {
	Label  string    `yaml:"label,omitempty"`
	Values []float64 `yaml:"values,omitempty"`
	Points []PointC  `yaml:"points,omitempty"`
}

// PointC is a value with an optional color.
type PointC struct {
	Value float64 `yaml:"value"`
	Color string  `yaml:"color,omitempty"`
}

// Load reads and parses a chart config.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(raw)
}

// Parse parses a chart config from YAML bytes.
func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if len(f.Series) == 0 {
		return nil, fmt.Errorf("config has no series")
	}
	return &f, nil
}

// DataSets resolves the config into core data sets. Every series shares the
// file's line and style settings; per-point colors come from Points.
func (f *File) DataSets() ([]linechart.DataSet, error) {
	style, err := f.colorStyle()
	if err != nil {
		return nil, err
	}
	ls := linechart.LineStyle{
		Color:      style,
		Width:      f.Line.Width,
		Segmented:  f.Line.Segmented,
		IgnoreZero: f.Line.IgnoreZero,
		Filled:     f.Line.Filled,
	}
	switch f.Line.Type {
	case "", "curved":
		ls.Type = linechart.LineCurved
	case "straight":
		ls.Type = linechart.LineStraight
	default:
		return nil, fmt.Errorf("unknown line type %q", f.Line.Type)
	}
	if f.Style.Stroke != "" {
		c, err := colors.ParseHex(f.Style.Stroke)
		if err != nil {
			return nil, err
		}
		ls.Stroke = &c
	}

	sets := make([]linechart.DataSet, 0, len(f.Series))
	for i, s := range f.Series {
		ds := linechart.DataSet{Label: s.Label, Style: ls}
		if ds.Label == "" {
			ds.Label = fmt.Sprintf("series %d", i+1)
		}
		switch {
		case len(s.Points) > 0:
			for _, p := range s.Points {
				dp := linechart.DataPoint{Value: p.Value}
				if p.Color != "" {
					c, err := colors.ParseHex(p.Color)
					if err != nil {
						return nil, fmt.Errorf("series %q: %w", ds.Label, err)
					}
					dp.Color = &c
				}
				ds.Points = append(ds.Points, dp)
			}
		case len(s.Values) > 0:
			for _, v := range s.Values {
				ds.Points = append(ds.Points, linechart.DataPoint{Value: v})
			}
		default:
			return nil, fmt.Errorf("series %q has no values", ds.Label)
		}
		sets = append(sets, ds)
	}
	return sets, nil
}

func (f *File) colorStyle() (linechart.ColorStyle, error) {
	start, end := linechart.UnitTop, linechart.UnitBottom
	if f.Style.Start != nil {
		start = linechart.UnitPoint{X: f.Style.Start[0], Y: f.Style.Start[1]}
	}
	if f.Style.End != nil {
		end = linechart.UnitPoint{X: f.Style.End[0], Y: f.Style.End[1]}
	}

	switch f.Style.Type {
	case "", "solid":
		c := colors.Primary
		if f.Style.Color != "" {
			parsed, err := colors.ParseHex(f.Style.Color)
			if err != nil {
				return nil, err
			}
			c = parsed
		}
		return linechart.Solid{Color: c}, nil

	case "gradient":
		if len(f.Style.Colors) == 0 {
			return nil, fmt.Errorf("gradient style needs colors")
		}
		cs := make([]colorful.Color, 0, len(f.Style.Colors))
		for _, hex := range f.Style.Colors {
			c, err := colors.ParseHex(hex)
			if err != nil {
				return nil, err
			}
			cs = append(cs, c)
		}
		return linechart.GradientColors{Colors: cs, Start: start, End: end}, nil

	case "stops":
		if len(f.Style.Stops) == 0 {
			return nil, fmt.Errorf("stops style needs stops")
		}
		stops := make([]linechart.Stop, 0, len(f.Style.Stops))
		for _, s := range f.Style.Stops {
			c, err := colors.ParseHex(s.Color)
			if err != nil {
				return nil, err
			}
			stops = append(stops, linechart.Stop{Color: c, Offset: s.Offset})
		}
		return linechart.GradientStops{Stops: stops, Start: start, End: end}, nil

	default:
		return nil, fmt.Errorf("unknown style type %q", f.Style.Type)
	}
}

// AnimationConfig resolves the animation section.
func (f *File) AnimationConfig() (linechart.AnimationConfig, error) {
	cfg := linechart.DefaultAnimation()
	cfg.Disabled = f.Animation.Disabled
	if f.Animation.Duration != "" {
		d, err := time.ParseDuration(f.Animation.Duration)
		if err != nil {
			return cfg, fmt.Errorf("parsing animation duration: %w", err)
		}
		cfg.Duration = d
	}
	switch f.Animation.Curve {
	case "", "ease-in-out":
		cfg.Curve = linechart.EaseInOut
	case "linear":
		cfg.Curve = linechart.Linear
	case "ease-in":
		cfg.Curve = linechart.EaseIn
	case "ease-out":
		cfg.Curve = linechart.EaseOut
	default:
		return cfg, fmt.Errorf("unknown animation curve %q", f.Animation.Curve)
	}
	return cfg, nil
}

// Range returns the value range over all series, padded so flat data still
// has a positive span and never reaches a mapper degenerate.
func (f *File) Range(sets []linechart.DataSet) linechart.ValueRange {
	vr := linechart.RangeOf(sets...)
	if vr.Span <= 0 {
		vr.Min -= 0.5
		vr.Span = 1
	}
	return vr
}

// Size returns the raster dimensions with defaults applied.
func (f *File) Size() (int, int) {
	w, h := f.Width, f.Height
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 400
	}
	return w, h
}

// BackgroundColor returns the raster background with a default applied.
func (f *File) BackgroundColor() (colorful.Color, error) {
	if f.Background == "" {
		return colors.Background, nil
	}
	return colors.ParseHex(f.Background)
}
