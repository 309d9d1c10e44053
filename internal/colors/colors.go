// Package colors holds the chart palette and conversions between the
// colorful value type used by the geometry core and the lipgloss colors
// used at the terminal boundary.
package colors

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// SeriesPalette is Paul Tol's qualitative color palette, designed for colorblind accessibility.
// See: https://personal.sron.nl/~pault/
var SeriesPalette = []string{
	"#4477AA", // Blue
	"#EE6677", // Rose
	"#228833", // Green
	"#CCBB44", // Olive/Yellow
	"#66CCEE", // Cyan
	"#AA3377", // Purple
	"#BBBBBB", // Grey
	"#EE8866", // Orange
	"#44BB99", // Teal
	"#FFAABB", // Pink
}

// Primary is the fallback color for points and lines without one.
var Primary = MustParseHex(SeriesPalette[0])

// Alert is the default alert color fed to the transition policy.
var Alert = MustParseHex(SeriesPalette[1])

// Background is the default chart background for raster output.
var Background = MustParseHex("#FFFFFF")

// ParseHex parses a "#RRGGBB" color.
func ParseHex(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	return c, nil
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// SeriesColor returns the color for a given series index, cycling through the palette.
func SeriesColor(index int) colorful.Color {
	return MustParseHex(SeriesPalette[index%len(SeriesPalette)])
}

// Lipgloss converts a chart color for terminal rendering.
func Lipgloss(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}

// SeriesStyle returns a lipgloss style with the foreground color for the given series index.
func SeriesStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Lipgloss(SeriesColor(index)))
}
