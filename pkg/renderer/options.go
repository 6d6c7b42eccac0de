package renderer

import (
	"github.com/erondiel/pattern-generator/pkg/geometry"
	"github.com/erondiel/pattern-generator/pkg/pattern"
)

// Overlay stroke colors. The lattice lines take Options.GridColor; the
// border and height-budget lines keep their fixed colors so they read
// as distinct guides.
const (
	defaultGridColor = "#FF0000"
	borderLineColor  = "#00FF00"
	budgetLineColor  = "#0088FF"

	gridOpacity    = 0.5
	overlayOpacity = 0.7
)

// Options control how a drawing is rendered. The zero value renders
// the drawing as generated: its own colors, no overlay, no rotation.
type Options struct {
	Theme     Theme   // palette override; ThemeNone keeps the drawing's colors
	ShowGrid  bool    // draw the debug overlay under the pattern
	GridColor string  // lattice line color; empty means red
	Rotation  float64 // rotate the pattern (not the overlay) about the canvas center, in degrees
}

// resolveColors returns the effective track and background colors of a
// render: the theme's palette when one is set, the drawing's otherwise.
func resolveColors(d *pattern.Drawing, opts Options) (track, background string) {
	if opts.Theme != ThemeNone {
		return opts.Theme.Colors()
	}
	return d.TrackColor, d.Background
}

// overlayLine is one line of the debug overlay.
type overlayLine struct {
	x1, y1, x2, y2 int
	color          string
	opacity        float64
}

// overlayLines builds the debug overlay for a drawing: the lattice in
// gridColor, and for bottom-up drawings the two border guides plus the
// height-budget line the generator worked from.
func overlayLines(d *pattern.Drawing, gridColor string) []overlayLine {
	if gridColor == "" {
		gridColor = defaultGridColor
	}

	var lines []overlayLine
	for x := geometry.CellSize; x < d.Width; x += geometry.CellSize {
		lines = append(lines, overlayLine{x, 0, x, d.Height, gridColor, gridOpacity})
	}
	for y := geometry.CellSize; y < d.Height; y += geometry.CellSize {
		lines = append(lines, overlayLine{0, y, d.Width, y, gridColor, gridOpacity})
	}

	if d.Kind == pattern.TypeBottomUp {
		left := int(float64(d.Width) * 0.15)
		right := d.Width - int(float64(d.Width)*0.15)
		budgetY := d.Height - int(float64(d.Height)*0.8)
		lines = append(lines,
			overlayLine{left, 0, left, d.Height, borderLineColor, overlayOpacity},
			overlayLine{right, 0, right, d.Height, borderLineColor, overlayOpacity},
			overlayLine{0, budgetY, d.Width, budgetY, budgetLineColor, overlayOpacity},
		)
	}
	return lines
}
