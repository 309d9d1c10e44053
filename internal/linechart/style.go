package linechart

import colorful "github.com/lucasb-eyer/go-colorful"

// ColorStyle is the closed set of coloring strategies. Renderers dispatch
// over it exhaustively; there is no open extension point, so an unmatched
// style is a configuration error rather than a silent no-op.
type ColorStyle interface {
	colorStyle()
}

// Solid paints the whole line in one color.
type Solid struct {
	Color colorful.Color
}

// GradientColors paints the line with a linear gradient through evenly
// spaced colors.
type GradientColors struct {
	Colors []colorful.Color
	Start  UnitPoint
	End    UnitPoint
}

// GradientStops paints the line with a linear gradient through explicit
// color stops.
type GradientStops struct {
	Stops []Stop
	Start UnitPoint
	End   UnitPoint
}

// Stop is one gradient stop at Offset in [0,1] along the gradient axis.
type Stop struct {
	Color  colorful.Color
	Offset float64
}

// UnitPoint is a position in the unit square, scaled to the draw rect at
// render time. {0,0} is the top-left corner.
type UnitPoint struct {
	X float64
	Y float64
}

var (
	// UnitTop and UnitBottom are the default vertical gradient axis.
	UnitTop    = UnitPoint{X: 0.5, Y: 0}
	UnitBottom = UnitPoint{X: 0.5, Y: 1}
)

func (Solid) colorStyle()          {}
func (GradientColors) colorStyle() {}
func (GradientStops) colorStyle()  {}
