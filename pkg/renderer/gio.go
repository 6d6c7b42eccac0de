package renderer

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/jbeda/geom"

	"github.com/erondiel/pattern-generator/pkg/pattern"
)

// PaintDrawing paints the drawing into the current frame through the
// camera mapping: canvas backdrop, debug overlay when visible, then
// segments and pads. On-screen stroke widths and pad radii are clamped
// to one pixel so the pattern stays legible when zoomed far out.
func PaintDrawing(gtx layout.Context, camera *Camera, d *pattern.Drawing, vis *Visibility) {
	if vis == nil {
		vis = NewVisibility()
	}

	paintCanvas(gtx, camera, d)

	if vis.Grid {
		for _, l := range overlayLines(d, "") {
			x1, y1 := camera.WorldToScreen(geom.Coord{X: float64(l.x1), Y: float64(l.y1)})
			x2, y2 := camera.WorldToScreen(geom.Coord{X: float64(l.x2), Y: float64(l.y2)})
			c := hexNRGBA(l.color)
			c.A = uint8(l.opacity * 255)
			paintLine(gtx, x1, y1, x2, y2, 1.0, c)
		}
	}

	trackColor := hexNRGBA(d.TrackColor)

	if vis.Tracks {
		strokeWidth := float64(d.TrackWidth) * camera.Zoom
		if strokeWidth < 1.0 {
			strokeWidth = 1.0
		}
		for _, s := range d.Segments() {
			x1, y1 := camera.WorldToScreen(s.Start)
			x2, y2 := camera.WorldToScreen(s.End)
			paintLine(gtx, x1, y1, x2, y2, strokeWidth, trackColor)
		}
	}

	if vis.Pads {
		for _, p := range d.Pads() {
			x, y := camera.WorldToScreen(p.Center)
			radius := p.Radius * camera.Zoom
			if radius < 1.0 {
				radius = 1.0
			}
			paintCircle(gtx, x, y, radius, trackColor)
		}
	}
}

// paintCanvas fills the drawing's canvas rectangle with its background
// color.
func paintCanvas(gtx layout.Context, camera *Camera, d *pattern.Drawing) {
	x1, y1 := camera.WorldToScreen(geom.Coord{})
	x2, y2 := camera.WorldToScreen(geom.Coord{X: float64(d.Width), Y: float64(d.Height)})

	rect := image.Rect(int(x1), int(y1), int(x2), int(y2))
	paint.FillShape(gtx.Ops, hexNRGBA(d.Background), clip.Rect(rect).Op())
}

// paintLine paints a stroked line in screen coordinates.
func paintLine(gtx layout.Context, x1, y1, x2, y2, width float64, lineColor color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(x1), float32(y1)))
	path.LineTo(f32.Pt(float32(x2), float32(y2)))

	stroke := clip.Stroke{
		Path:  path.End(),
		Width: float32(width),
	}.Op()

	paint.FillShape(gtx.Ops, lineColor, stroke)
}

// paintCircle paints a filled circle in screen coordinates.
func paintCircle(gtx layout.Context, x, y, radius float64, fillColor color.NRGBA) {
	stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(x), float32(y)))).Push(gtx.Ops)
	defer stack.Pop()

	rect := image.Rectangle{
		Min: image.Pt(int(-radius), int(-radius)),
		Max: image.Pt(int(radius), int(radius)),
	}
	paint.FillShape(gtx.Ops, fillColor, clip.Ellipse(rect).Op(gtx.Ops))
}
