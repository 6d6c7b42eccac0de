package renderer

import (
	"io"

	"github.com/fogleman/gg"

	"github.com/erondiel/pattern-generator/pkg/pattern"
)

// WritePNG renders the drawing as a PNG, with the same layering as the
// SVG backend: background, optional overlay, stroked segments with
// round caps, pads on top.
func WritePNG(w io.Writer, d *pattern.Drawing, opts Options) error {
	dc := gg.NewContext(d.Width, d.Height)

	track, background := resolveColors(d, opts)
	dc.SetHexColor(background)
	dc.Clear()

	if opts.ShowGrid {
		dc.SetLineWidth(1)
		for _, l := range overlayLines(d, opts.GridColor) {
			c := hexNRGBA(l.color)
			c.A = uint8(l.opacity * 255)
			dc.SetColor(c)
			dc.DrawLine(float64(l.x1), float64(l.y1), float64(l.x2), float64(l.y2))
			dc.Stroke()
		}
	}

	if opts.Rotation != 0 {
		dc.RotateAbout(gg.Radians(opts.Rotation), float64(d.Width)/2, float64(d.Height)/2)
	}

	dc.SetHexColor(track)
	dc.SetLineWidth(float64(d.TrackWidth))
	dc.SetLineCapRound()
	for _, s := range d.Segments() {
		dc.DrawLine(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
		dc.Stroke()
	}
	for _, p := range d.Pads() {
		dc.DrawCircle(p.Center.X, p.Center.Y, p.Radius)
		dc.Fill()
	}

	return dc.EncodePNG(w)
}
