package cmd

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/spf13/cobra"

	"github.com/erondiel/pattern-generator/pkg/pattern"
	"github.com/erondiel/pattern-generator/pkg/renderer"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Generate a pattern and explore it interactively",
	Long: `Opens a generated pattern in an interactive Gio-based viewer with pan
and zoom controls. Every regeneration prints its seed, so a pattern
seen in the viewer can be reproduced with generate.

Controls:
  Space             - Regenerate with a fresh seed
  R                 - Regenerate with the same seed
  G                 - Toggle debug overlay
  Scroll Wheel      - Zoom in/out
  Arrow Keys        - Pan
  F                 - Fit pattern to window
  Q / Escape        - Quit`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	addPatternFlags(viewCmd.Flags())
}

// Window chrome around the canvas.
var viewerBackground = color.NRGBA{R: 30, G: 30, B: 30, A: 255}

func runView(cmd *cobra.Command, args []string) error {
	typ, theme, err := resolvePatternFlags()
	if err != nil {
		return err
	}

	state := &viewerState{
		typ:   typ,
		cfg:   genCfg,
		theme: theme,
		vis:   renderer.NewVisibility(),
	}
	state.regenerate(false)

	// Run the Gio application
	go func() {
		w := new(app.Window)
		w.Option(app.Title(fmt.Sprintf("Pattern Viewer - %s", typ)))
		w.Option(app.Size(unit.Dp(1000), unit.Dp(800)))

		if err := runViewerWindow(w, state); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

// viewerState is everything a frame needs: the generation request and
// its latest result.
type viewerState struct {
	typ     pattern.Type
	cfg     pattern.Config
	theme   renderer.Theme
	vis     *renderer.Visibility
	drawing *pattern.Drawing
}

// regenerate rebuilds the drawing, optionally with a fresh seed, and
// prints the seed so the pattern can be reproduced later.
func (s *viewerState) regenerate(freshSeed bool) {
	if freshSeed {
		s.cfg.Seed = time.Now().UnixNano() % 1000001
	}

	d, err := pattern.Generate(s.typ, s.cfg)
	if err != nil {
		// The type was validated before the window opened.
		log.Printf("regenerate: %v", err)
		return
	}
	if s.theme != renderer.ThemeNone {
		d.TrackColor, d.Background = s.theme.Colors()
	}
	s.drawing = d

	fmt.Printf("Seed %d: %d tracks, %d segments, %d pads\n",
		s.cfg.Seed, len(d.Tracks), len(d.Segments()), len(d.Pads()))
}

func runViewerWindow(w *app.Window, state *viewerState) error {
	// Initialize camera
	camera := renderer.NewCamera(1000, 800)
	camera.Fit(state.drawing.CanvasRect())

	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			// Reset operations for new frame
			ops.Reset()

			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}

			// Update camera screen size
			camera.UpdateScreenSize(e.Size.X, e.Size.Y)

			// Handle keyboard events
			for {
				ev, ok := gtx.Event(key.Filter{})
				if !ok {
					break
				}

				if ke, ok := ev.(key.Event); ok {
					if ke.State == key.Press {
						if handleKeyPress(ke.Name, camera, state) {
							return nil // Close window
						}
						w.Invalidate()
					}
				}
			}

			// Handle mouse events
			for {
				ev, ok := gtx.Event(pointer.Filter{
					Kinds: pointer.Scroll,
				})
				if !ok {
					break
				}

				if pe, ok := ev.(pointer.Event); ok {
					if pe.Kind == pointer.Scroll {
						zoomFactor := 1.0 + float64(pe.Scroll.Y)*0.1
						camera.ZoomAt(float64(pe.Position.X), float64(pe.Position.Y), zoomFactor)
						w.Invalidate()
					}
				}
			}

			// Clear window, then paint the drawing
			paint.Fill(&ops, viewerBackground)
			renderer.PaintDrawing(gtx, camera, state.drawing, state.vis)

			// Submit frame
			e.Frame(&ops)
		}
	}
}

func handleKeyPress(k key.Name, camera *renderer.Camera, state *viewerState) bool {
	const panStep = 40

	switch k {
	case key.NameEscape, "Q":
		return true // Signal to close
	case key.NameSpace:
		state.regenerate(true)
	case "R":
		state.regenerate(false)
	case "G":
		state.vis.ToggleGrid()
	case "F":
		camera.Fit(state.drawing.CanvasRect())
	case key.NameLeftArrow:
		camera.Pan(panStep, 0)
	case key.NameRightArrow:
		camera.Pan(-panStep, 0)
	case key.NameUpArrow:
		camera.Pan(0, panStep)
	case key.NameDownArrow:
		camera.Pan(0, -panStep)
	}
	return false
}
