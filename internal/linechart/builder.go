package linechart

import (
	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// PathSegment is a contiguous run of curve geometry drawn in one color.
// The ID exists only for stable iteration identity in a rendered list; it
// is regenerated on every rebuild and never reused.
type PathSegment struct {
	Path  CurvePath
	Color colorful.Color
	ID    uuid.UUID
}

// Builder turns data sets into screen-space curve geometry. The zero value
// is not useful; Fallback colors points without one and Alert feeds the
// transition policy.
type Builder struct {
	Fallback colorful.Color
	Alert    colorful.Color
}

// drawable returns the points that actually produce geometry, paired with
// their original indices so x positions survive IgnoreZero filtering.
func drawable(ds DataSet) ([]DataPoint, []int) {
	if !ds.Style.IgnoreZero {
		idx := make([]int, len(ds.Points))
		for i := range idx {
			idx[i] = i
		}
		return ds.Points, idx
	}
	pts := make([]DataPoint, 0, len(ds.Points))
	idx := make([]int, 0, len(ds.Points))
	for i, p := range ds.Points {
		if p.Value == 0 {
			continue
		}
		pts = append(pts, p)
		idx = append(idx, i)
	}
	return pts, idx
}

// Build produces the ordered segment list for one data set. Fewer than two
// drawable points, or a degenerate value range, yields no segments and
// touches no mapper. Segments concatenated in order reconstruct the full
// curve: each segment begins exactly where the previous one ends.
func (b Builder) Build(ds DataSet, vr ValueRange, rect Rect) []PathSegment {
	pts, idx := drawable(ds)
	if len(pts) < 2 || vr.Span <= 0 {
		return nil
	}
	mapper, err := NewMapper(rect, vr, len(ds.Points))
	if err != nil {
		return nil
	}

	policy := TransitionPolicy{Alert: b.Alert}

	prev := mapper.Point(idx[0], pts[0].Value)
	prevColor := pts[0].color(b.Fallback)

	open := CurvePath{Start: prev}
	openColor := prevColor
	var segs []PathSegment

	for i := 1; i < len(pts); i++ {
		cur := mapper.Point(idx[i], pts[i].Value)
		curColor := pts[i].color(b.Fallback)

		if policy.ShouldSplit(prevColor, curColor) {
			if len(open.Curves) == 0 {
				// An empty segment would break the gap-free invariant;
				// recolor it in place instead of emitting it.
				openColor = curColor
			} else {
				segs = append(segs, PathSegment{Path: open, Color: openColor, ID: uuid.New()})
				open = CurvePath{Start: prev}
				openColor = curColor
			}
		}

		c1, c2 := controls(prev, cur, ds.Style.Type)
		open.CubicTo(c1, c2, cur)

		prev = cur
		prevColor = curColor
	}

	segs = append(segs, PathSegment{Path: open, Color: openColor, ID: uuid.New()})
	return segs
}

// BuildPath produces one continuous curve for the non-segmented case. The
// boolean is false when the input is degenerate and no geometry exists.
func (b Builder) BuildPath(ds DataSet, vr ValueRange, rect Rect) (CurvePath, bool) {
	pts, idx := drawable(ds)
	if len(pts) < 2 || vr.Span <= 0 {
		return CurvePath{}, false
	}
	mapper, err := NewMapper(rect, vr, len(ds.Points))
	if err != nil {
		return CurvePath{}, false
	}

	prev := mapper.Point(idx[0], pts[0].Value)
	path := CurvePath{Start: prev}
	for i := 1; i < len(pts); i++ {
		cur := mapper.Point(idx[i], pts[i].Value)
		c1, c2 := controls(prev, cur, ds.Style.Type)
		path.CubicTo(c1, c2, cur)
		prev = cur
	}
	return path, true
}

// TrimSegments keeps the leading fraction f of the concatenated geometry,
// by arc length across the whole segment list. Every rendering strategy
// applies reveal progress to stroked output through this: segments past
// the cut are dropped, the segment holding the cut is trimmed.
func TrimSegments(segs []PathSegment, f float64) []PathSegment {
	if f >= 1 {
		return segs
	}
	if f <= 0 {
		return nil
	}
	var total float64
	lengths := make([]float64, len(segs))
	for i, s := range segs {
		lengths[i] = s.Path.Length()
		total += lengths[i]
	}
	budget := total * f

	out := make([]PathSegment, 0, len(segs))
	for i, s := range segs {
		if budget <= 0 {
			break
		}
		if budget < lengths[i] && lengths[i] > 0 {
			s.Path = s.Path.Trim(budget / lengths[i])
		}
		out = append(out, s)
		budget -= lengths[i]
	}
	return out
}

// controls places the control points for the edge prev→cur. Curved lines
// offset each control horizontally by half the edge's horizontal distance,
// keeping its endpoint's y, which yields a smooth S-curve. Straight lines
// use collinear controls so the cubic degenerates to the chord.
func controls(prev, cur Point, lt LineType) (Point, Point) {
	if lt == LineStraight {
		return lerp(prev, cur, 1.0/3), lerp(prev, cur, 2.0/3)
	}
	half := (cur.X - prev.X) / 2
	return Point{X: prev.X + half, Y: prev.Y}, Point{X: cur.X - half, Y: cur.Y}
}
