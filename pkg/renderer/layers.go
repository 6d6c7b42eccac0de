package renderer

// Visibility controls which parts of a drawing the Gio painter shows.
type Visibility struct {
	Tracks bool
	Pads   bool
	Grid   bool
}

// NewVisibility returns the default visibility: pattern shown, debug
// overlay hidden.
func NewVisibility() *Visibility {
	return &Visibility{Tracks: true, Pads: true}
}

// ToggleGrid flips the debug overlay.
func (v *Visibility) ToggleGrid() {
	v.Grid = !v.Grid
}
