package renderer

import "github.com/jbeda/geom"

// Camera is a viewport onto a drawing. Drawing coordinates are canvas
// pixels with the origin at the top left and Y growing downward, the
// same orientation as the screen, so the mapping is pan and zoom only.
type Camera struct {
	// Center position in drawing coordinates
	CenterX float64
	CenterY float64

	// Zoom level (screen pixels per drawing pixel)
	Zoom float64

	// Screen dimensions (pixels)
	ScreenWidth  int
	ScreenHeight int
}

// NewCamera creates a camera at 1:1 zoom.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         1.0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen converts drawing coordinates to screen coordinates.
func (c *Camera) WorldToScreen(p geom.Coord) (float64, float64) {
	x := (p.X-c.CenterX)*c.Zoom + float64(c.ScreenWidth)/2.0
	y := (p.Y-c.CenterY)*c.Zoom + float64(c.ScreenHeight)/2.0
	return x, y
}

// ScreenToWorld converts screen coordinates to drawing coordinates.
func (c *Camera) ScreenToWorld(screenX, screenY float64) geom.Coord {
	return geom.Coord{
		X: (screenX-float64(c.ScreenWidth)/2.0)/c.Zoom + c.CenterX,
		Y: (screenY-float64(c.ScreenHeight)/2.0)/c.Zoom + c.CenterY,
	}
}

// Pan moves the camera by screen pixel offsets.
func (c *Camera) Pan(deltaX, deltaY float64) {
	c.CenterX -= deltaX / c.Zoom
	c.CenterY -= deltaY / c.Zoom
}

// ZoomAt zooms in/out at a specific screen position.
// factor > 1 zooms in, factor < 1 zooms out.
func (c *Camera) ZoomAt(screenX, screenY, factor float64) {
	before := c.ScreenToWorld(screenX, screenY)

	c.Zoom *= factor
	if c.Zoom < 0.1 {
		c.Zoom = 0.1
	}
	if c.Zoom > 1000.0 {
		c.Zoom = 1000.0
	}

	// Keep the point under the cursor stationary.
	after := c.ScreenToWorld(screenX, screenY)
	c.CenterX += before.X - after.X
	c.CenterY += before.Y - after.Y
}

// Fit adjusts the camera so the given drawing region fills 90% of the
// screen.
func (c *Camera) Fit(bounds geom.Rect) {
	width := bounds.Width()
	height := bounds.Height()
	if width <= 0 || height <= 0 {
		return
	}

	c.CenterX = (bounds.Min.X + bounds.Max.X) / 2.0
	c.CenterY = (bounds.Min.Y + bounds.Max.Y) / 2.0

	zoomX := float64(c.ScreenWidth) * 0.9 / width
	zoomY := float64(c.ScreenHeight) * 0.9 / height
	if zoomX < zoomY {
		c.Zoom = zoomX
	} else {
		c.Zoom = zoomY
	}
}

// UpdateScreenSize updates the camera when the window is resized.
func (c *Camera) UpdateScreenSize(width, height int) {
	c.ScreenWidth = width
	c.ScreenHeight = height
}
