package linechart

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func testBuilder() Builder {
	return Builder{Fallback: blue, Alert: red}
}

func colored(values []float64, cs []colorful.Color) DataSet {
	ds := DataSet{Style: LineStyle{Segmented: true}}
	for i, v := range values {
		dp := DataPoint{Value: v}
		if cs != nil {
			c := cs[i]
			dp.Color = &c
		}
		ds.Points = append(ds.Points, dp)
	}
	return ds
}

var (
	testRect  = Rect{Width: 100, Height: 50}
	testRange = ValueRange{Min: 0, Span: 10}
)

func TestBuildSegmentCounts(t *testing.T) {
	tests := []struct {
		name     string
		colors   []colorful.Color
		segments int
	}{
		{
			name:     "uniform color is one segment",
			colors:   []colorful.Color{blue, blue, blue, blue},
			segments: 1,
		},
		{
			name:     "lone alert point does not split the line",
			colors:   []colorful.Color{blue, red, blue, blue},
			segments: 1,
		},
		{
			name:     "two-step alert run suppresses the exit once",
			colors:   []colorful.Color{blue, red, red, blue},
			segments: 1,
		},
		{
			name:     "alternating alert re-splits after re-arming",
			colors:   []colorful.Color{blue, red, blue, red, blue},
			segments: 2,
		},
		{
			name:     "non-alert change splits",
			colors:   []colorful.Color{blue, teal, blue},
			segments: 2,
		},
		{
			name:     "missing colors use the fallback",
			colors:   nil,
			segments: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]float64, 5)
			for i := range values {
				values[i] = float64(i * 2)
			}
			n := len(values)
			if tt.colors != nil {
				n = len(tt.colors)
				values = values[:n]
			}
			segs := testBuilder().Build(colored(values, tt.colors), testRange, testRect)
			if len(segs) != tt.segments {
				t.Fatalf("Build() produced %d segments, want %d", len(segs), tt.segments)
			}
			if len(segs) > n-1 {
				t.Errorf("segment count %d exceeds edge count %d", len(segs), n-1)
			}
			edges := 0
			for _, s := range segs {
				edges += len(s.Path.Curves)
			}
			if edges != n-1 {
				t.Errorf("segments hold %d curves total, want one per adjacent pair (%d)", edges, n-1)
			}
		})
	}
}

func TestBuildContinuity(t *testing.T) {
	segs := testBuilder().Build(
		colored([]float64{0, 4, 8, 2, 6, 10}, []colorful.Color{blue, teal, teal, red, blue, teal}),
		testRange, testRect)
	if len(segs) < 2 {
		t.Fatalf("expected multiple segments, got %d", len(segs))
	}
	for k := 0; k+1 < len(segs); k++ {
		end := segs[k].Path.End()
		start := segs[k+1].Path.Start
		if end != start {
			t.Errorf("segment %d ends at %+v but segment %d starts at %+v", k, end, k+1, start)
		}
	}
}

func TestBuildSplitBoundaryOnAlternatingAlert(t *testing.T) {
	// blue, red, blue, red, blue: the first alert exit is suppressed, so
	// the only boundary lands on point index 2.
	segs := testBuilder().Build(
		colored([]float64{0, 2, 4, 6, 8}, []colorful.Color{blue, red, blue, red, blue}),
		testRange, testRect)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	boundary := segs[0].Path.End()
	wantX := 2 * (testRect.Width / 4)
	if boundary.X != wantX {
		t.Errorf("split boundary at x=%g, want x=%g (point index 2)", boundary.X, wantX)
	}
}

func TestBuildDegenerateInput(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		vr     ValueRange
	}{
		{name: "no points", values: nil, vr: testRange},
		{name: "one point", values: []float64{5}, vr: testRange},
		{name: "zero span", values: []float64{5, 5}, vr: ValueRange{Min: 5, Span: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if segs := testBuilder().Build(colored(tt.values, nil), tt.vr, testRect); segs != nil {
				t.Errorf("Build() = %d segments, want none", len(segs))
			}
			if _, ok := testBuilder().BuildPath(colored(tt.values, nil), tt.vr, testRect); ok {
				t.Error("BuildPath() reported geometry for degenerate input")
			}
		})
	}
}

func TestBuildIsDeterministicExceptIDs(t *testing.T) {
	ds := colored([]float64{0, 4, 8, 2}, []colorful.Color{blue, teal, teal, blue})
	b := testBuilder()

	first := b.Build(ds, testRange, testRect)
	second := b.Build(ds, testRange, testRect)

	if len(first) != len(second) {
		t.Fatalf("rebuild changed segment count: %d vs %d", len(first), len(second))
	}
	for k := range first {
		if first[k].Path.Start != second[k].Path.Start {
			t.Errorf("segment %d start differs across rebuilds", k)
		}
		if len(first[k].Path.Curves) != len(second[k].Path.Curves) {
			t.Fatalf("segment %d curve count differs across rebuilds", k)
		}
		for c := range first[k].Path.Curves {
			if first[k].Path.Curves[c] != second[k].Path.Curves[c] {
				t.Errorf("segment %d curve %d differs across rebuilds", k, c)
			}
		}
		if first[k].Color != second[k].Color {
			t.Errorf("segment %d color differs across rebuilds", k)
		}
		if first[k].ID == second[k].ID {
			t.Errorf("segment %d reused its ID across rebuilds", k)
		}
	}
}

func TestBuildIgnoreZeroSkipsPointsKeepsPositions(t *testing.T) {
	ds := colored([]float64{2, 0, 4, 6}, nil)
	ds.Style.IgnoreZero = true

	path, ok := testBuilder().BuildPath(ds, testRange, testRect)
	if !ok {
		t.Fatal("BuildPath() reported no geometry")
	}
	if len(path.Curves) != 2 {
		t.Fatalf("expected 2 curves after dropping the zero point, got %d", len(path.Curves))
	}
	// Index 2 of 4 points: x keeps its original position.
	step := testRect.Width / 3
	if path.Curves[0].To.X != 2*step {
		t.Errorf("first surviving edge ends at x=%g, want %g", path.Curves[0].To.X, 2*step)
	}
	if path.End().X != testRect.Width {
		t.Errorf("path ends at x=%g, want %g", path.End().X, testRect.Width)
	}
}

func TestControlPoints(t *testing.T) {
	prev := Point{X: 0, Y: 50}
	cur := Point{X: 40, Y: 10}

	t.Run("curved offsets horizontally at endpoint height", func(t *testing.T) {
		c1, c2 := controls(prev, cur, LineCurved)
		if (c1 != Point{X: 20, Y: 50}) {
			t.Errorf("c1 = %+v, want {20 50}", c1)
		}
		if (c2 != Point{X: 20, Y: 10}) {
			t.Errorf("c2 = %+v, want {20 10}", c2)
		}
	})

	t.Run("straight degenerates to the chord", func(t *testing.T) {
		c1, c2 := controls(prev, cur, LineStraight)
		if c1.X <= prev.X || c1.X >= c2.X || c2.X >= cur.X {
			t.Errorf("controls not ordered along the chord: %+v %+v", c1, c2)
		}
		// Collinear with the chord: same slope.
		slope := (cur.Y - prev.Y) / (cur.X - prev.X)
		for _, c := range []Point{c1, c2} {
			got := (c.Y - prev.Y) / (c.X - prev.X)
			if diff := got - slope; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("control %+v is off the chord (slope %g, want %g)", c, got, slope)
			}
		}
	})
}

func TestTrimSegments(t *testing.T) {
	segs := testBuilder().Build(
		colored([]float64{0, 5, 10, 5}, []colorful.Color{blue, blue, teal, teal}),
		testRange, testRect)
	if len(segs) != 2 {
		t.Fatalf("setup expected 2 segments, got %d", len(segs))
	}

	t.Run("full progress keeps everything", func(t *testing.T) {
		got := TrimSegments(segs, 1)
		if len(got) != 2 {
			t.Errorf("TrimSegments(1) = %d segments, want 2", len(got))
		}
	})

	t.Run("zero progress keeps nothing", func(t *testing.T) {
		if got := TrimSegments(segs, 0); len(got) != 0 {
			t.Errorf("TrimSegments(0) = %d segments, want 0", len(got))
		}
	})

	t.Run("partial progress shortens the tail segment", func(t *testing.T) {
		got := TrimSegments(segs, 0.75)
		if len(got) != 2 {
			t.Fatalf("TrimSegments(0.75) = %d segments, want 2", len(got))
		}
		if got[0].Path.End() != segs[0].Path.End() {
			t.Error("leading segment should be untouched")
		}
		full := segs[0].Path.Length() + segs[1].Path.Length()
		kept := got[0].Path.Length() + got[1].Path.Length()
		if kept >= full {
			t.Errorf("trimmed length %g not shorter than full length %g", kept, full)
		}
	})
}
