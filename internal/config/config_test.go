package config

import (
	"testing"
	"time"

	"github.com/akasprzok/strand/internal/linechart"
)

const solidConfig = `
title: requests
width: 640
height: 320
line:
  width: 3
  type: straight
  segmented: true
style:
  type: solid
  color: "#228833"
animation:
  duration: 750ms
  curve: linear
series:
  - label: api
    values: [1, 2, 3]
  - points:
      - value: 1
      - value: 9
        color: "#EE6677"
`

func TestParseSolidConfig(t *testing.T) {
	f, err := Parse([]byte(solidConfig))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	sets, err := f.DataSets()
	if err != nil {
		t.Fatalf("DataSets() error = %v", err)
	}
	if len(sets) != 2 {
		t.Fatalf("got %d data sets, want 2", len(sets))
	}
	if sets[0].Label != "api" {
		t.Errorf("label = %q, want api", sets[0].Label)
	}
	if sets[1].Label != "series 2" {
		t.Errorf("unnamed series label = %q, want a generated one", sets[1].Label)
	}

	solid, ok := sets[0].Style.Color.(linechart.Solid)
	if !ok {
		t.Fatalf("style is %T, want linechart.Solid", sets[0].Style.Color)
	}
	if solid.Color.Hex() != "#228833" {
		t.Errorf("solid color = %s, want #228833", solid.Color.Hex())
	}
	if sets[0].Style.Type != linechart.LineStraight {
		t.Error("line type should be straight")
	}
	if !sets[0].Style.Segmented {
		t.Error("segmented flag lost")
	}

	if sets[1].Points[0].Color != nil {
		t.Error("uncolored point should have a nil color")
	}
	if sets[1].Points[1].Color == nil {
		t.Error("colored point lost its color")
	}

	anim, err := f.AnimationConfig()
	if err != nil {
		t.Fatalf("AnimationConfig() error = %v", err)
	}
	if anim.Duration != 750*time.Millisecond {
		t.Errorf("duration = %v, want 750ms", anim.Duration)
	}

	w, h := f.Size()
	if w != 640 || h != 320 {
		t.Errorf("Size() = %dx%d, want 640x320", w, h)
	}
}

func TestParseGradientStyles(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want func(t *testing.T, style linechart.ColorStyle)
	}{
		{
			name: "gradient colors",
			yaml: `
style:
  type: gradient
  colors: ["#4477AA", "#EE6677"]
series:
  - values: [1, 2]
`,
			want: func(t *testing.T, style linechart.ColorStyle) {
				g, ok := style.(linechart.GradientColors)
				if !ok {
					t.Fatalf("style is %T, want GradientColors", style)
				}
				if len(g.Colors) != 2 {
					t.Errorf("got %d gradient colors, want 2", len(g.Colors))
				}
				if g.Start != linechart.UnitTop || g.End != linechart.UnitBottom {
					t.Error("default gradient axis should be vertical")
				}
			},
		},
		{
			name: "gradient stops with explicit axis",
			yaml: `
style:
  type: stops
  start: [0, 0.5]
  end: [1, 0.5]
  stops:
    - color: "#4477AA"
      offset: 0
    - color: "#CCBB44"
      offset: 0.3
    - color: "#EE6677"
      offset: 1
series:
  - values: [1, 2]
`,
			want: func(t *testing.T, style linechart.ColorStyle) {
				g, ok := style.(linechart.GradientStops)
				if !ok {
					t.Fatalf("style is %T, want GradientStops", style)
				}
				if len(g.Stops) != 3 {
					t.Fatalf("got %d stops, want 3", len(g.Stops))
				}
				if g.Stops[1].Offset != 0.3 {
					t.Errorf("middle stop offset = %g, want 0.3", g.Stops[1].Offset)
				}
				if (g.Start != linechart.UnitPoint{X: 0, Y: 0.5}) {
					t.Errorf("start = %+v, want {0 0.5}", g.Start)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			sets, err := f.DataSets()
			if err != nil {
				t.Fatalf("DataSets() error = %v", err)
			}
			tt.want(t, sets[0].Style.Color)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "no series", yaml: `title: empty`},
		{name: "series without values", yaml: "series:\n  - label: empty"},
		{name: "unknown style type", yaml: "style:\n  type: sparkle\nseries:\n  - values: [1, 2]"},
		{name: "unknown line type", yaml: "line:\n  type: wavy\nseries:\n  - values: [1, 2]"},
		{name: "gradient without colors", yaml: "style:\n  type: gradient\nseries:\n  - values: [1, 2]"},
		{name: "bad point color", yaml: "series:\n  - points:\n      - value: 1\n        color: nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			if err != nil {
				return // rejected at parse time
			}
			if _, err := f.DataSets(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestAnimationCurveNames(t *testing.T) {
	for _, curve := range []string{"", "linear", "ease-in", "ease-out", "ease-in-out"} {
		f := &File{Animation: Animation{Curve: curve}, Series: []Series{{Values: []float64{1}}}}
		if _, err := f.AnimationConfig(); err != nil {
			t.Errorf("curve %q rejected: %v", curve, err)
		}
	}
	f := &File{Animation: Animation{Curve: "bouncy"}}
	if _, err := f.AnimationConfig(); err == nil {
		t.Error("unknown curve accepted")
	}
}

func TestRangePadsFlatData(t *testing.T) {
	flat := []linechart.DataSet{{Points: []linechart.DataPoint{{Value: 5}, {Value: 5}}}}
	f := &File{}

	vr := f.Range(flat)
	if vr.Span <= 0 {
		t.Fatalf("padded span = %g, want > 0", vr.Span)
	}
	// The flat value still falls inside the padded range.
	if vr.Min > 5 || vr.Min+vr.Span < 5 {
		t.Errorf("value 5 outside padded range [%g, %g]", vr.Min, vr.Min+vr.Span)
	}
}
