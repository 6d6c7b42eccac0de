package renderer

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/erondiel/pattern-generator/pkg/pattern"
)

// WriteSVG renders the drawing as an SVG document: background rect,
// optional debug overlay, one line per segment with round caps, then
// one circle per pad. Coordinates are rounded to whole pixels. The
// rotation option wraps the pattern in a group rotated about the
// canvas center; the overlay stays unrotated so its guides keep
// meaning.
func WriteSVG(w io.Writer, d *pattern.Drawing, opts Options) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)

	track, background := resolveColors(d, opts)

	canvas.Start(d.Width, d.Height)
	canvas.Rect(0, 0, d.Width, d.Height, "fill:"+background)

	if opts.ShowGrid {
		canvas.Gstyle("stroke-width:1")
		for _, l := range overlayLines(d, opts.GridColor) {
			canvas.Line(l.x1, l.y1, l.x2, l.y2,
				fmt.Sprintf("stroke:%s;stroke-opacity:%.2g", l.color, l.opacity))
		}
		canvas.Gend()
	}

	rotated := opts.Rotation != 0
	if rotated {
		canvas.Gtransform(fmt.Sprintf("rotate(%v,%d,%d)", opts.Rotation, d.Width/2, d.Height/2))
	}

	lineStyle := fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linecap:round", track, d.TrackWidth)
	for _, s := range d.Segments() {
		canvas.Line(px(s.Start.X), px(s.Start.Y), px(s.End.X), px(s.End.Y), lineStyle)
	}
	for _, p := range d.Pads() {
		canvas.Circle(px(p.Center.X), px(p.Center.Y), px(p.Radius), "fill:"+track)
	}

	if rotated {
		canvas.Gend()
	}
	canvas.End()
	return bw.Flush()
}

// DataURL wraps an SVG document in a data: URL, the form browsers
// accept as a download link.
func DataURL(doc []byte) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(doc)
}

// px rounds a drawing coordinate to a whole pixel.
func px(v float64) int {
	return int(math.Round(v))
}
