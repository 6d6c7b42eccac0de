package pattern

import (
	"github.com/jbeda/geom"
)

// Segment is one straight stroke of a track.
type Segment struct {
	Start geom.Coord
	End   geom.Coord
}

// Length returns the Euclidean length in pixels.
func (s Segment) Length() float64 {
	return s.End.Minus(s.Start).Magnitude()
}

// IsDegenerate reports whether start and end coincide. Degenerate
// segments are dropped before a track is committed.
func (s Segment) IsDegenerate() bool {
	return s.Start == s.End
}

// Pad is a filled circular terminal drawn at a track end.
type Pad struct {
	Center geom.Coord
	Radius float64
}

// Track is one connected path: its segments plus the pads registered at
// its ends. Tracks commit atomically; a rejected track leaves no trace
// in the drawing.
type Track struct {
	Segments []Segment
	Pads     []Pad
}

// Drawing is the abstract output of a generator: canvas size, colors,
// and the committed tracks in placement order. Renderers draw every
// segment first and every pad after, so pads sit on top of strokes.
type Drawing struct {
	Kind       Type   // generator that produced the drawing
	Width      int    // canvas width in pixels
	Height     int    // canvas height in pixels
	Background string // canvas fill color
	TrackColor string // stroke and pad color
	TrackWidth int    // stroke width in pixels
	Tracks     []Track
}

// Segments returns every committed segment in draw order.
func (d *Drawing) Segments() []Segment {
	var segs []Segment
	for _, t := range d.Tracks {
		segs = append(segs, t.Segments...)
	}
	return segs
}

// Pads returns every committed pad in draw order.
func (d *Drawing) Pads() []Pad {
	var pads []Pad
	for _, t := range d.Tracks {
		pads = append(pads, t.Pads...)
	}
	return pads
}

// Bounds returns the tight box around all committed content, including
// pad extents. ok is false when the drawing is empty.
func (d *Drawing) Bounds() (bounds geom.Rect, ok bool) {
	bounds = geom.NilRect()
	for _, t := range d.Tracks {
		for _, s := range t.Segments {
			bounds.ExpandToContainCoord(s.Start)
			bounds.ExpandToContainCoord(s.End)
			ok = true
		}
		for _, p := range t.Pads {
			bounds.ExpandToContainCoord(geom.Coord{X: p.Center.X - p.Radius, Y: p.Center.Y - p.Radius})
			bounds.ExpandToContainCoord(geom.Coord{X: p.Center.X + p.Radius, Y: p.Center.Y + p.Radius})
			ok = true
		}
	}
	return bounds, ok
}

// CanvasRect returns the full canvas as a rectangle with the origin at
// the top left.
func (d *Drawing) CanvasRect() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{},
		Max: geom.Coord{X: float64(d.Width), Y: float64(d.Height)},
	}
}
