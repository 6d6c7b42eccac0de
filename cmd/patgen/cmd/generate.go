package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/erondiel/pattern-generator/pkg/geometry"
	"github.com/erondiel/pattern-generator/pkg/pattern"
	"github.com/erondiel/pattern-generator/pkg/renderer"
)

var (
	// Pattern flags, shared between generate and view
	genCfg   = pattern.DefaultConfig()
	genType  string
	genCols  int
	genTheme string

	// Output flags
	genOutput   string
	genFormat   string
	genGrid     bool
	genRotation float64
	genDataURL  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a pattern and write it as SVG or PNG",
	Long: `Generates a circuit-board pattern and writes it to a file.

The seed fully determines the pattern: rerunning with the same flags
and seed reproduces the image exactly. With --seed 0 (the default) a
seed is picked and printed so the run can be reproduced.

Examples:
  patgen generate --density 80 -o dense.svg
  patgen generate --type bottom-up --complexity 1 --format png
  patgen generate --cols 20 --theme copper --rotation 45
  patgen generate -o - > pattern.svg`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addPatternFlags(generateCmd.Flags())

	f := generateCmd.Flags()
	f.StringVarP(&genOutput, "output", "o", "", `output file (default pattern.<format>, "-" for stdout)`)
	f.StringVar(&genFormat, "format", "svg", "output format: svg or png")
	f.BoolVar(&genGrid, "grid", false, "draw the debug overlay under the pattern")
	f.Float64Var(&genRotation, "rotation", 0, "rotate the pattern about the canvas center, in degrees")
	f.BoolVar(&genDataURL, "data-url", false, "print the SVG as a data: URL instead of writing a file")
}

// addPatternFlags registers the flags both generate and view share:
// everything that feeds the generators.
func addPatternFlags(f *pflag.FlagSet) {
	f.StringVar(&genType, "type", string(pattern.TypeCircuit), `pattern type: "circuit" or "bottom-up"`)
	f.Int64Var(&genCfg.Seed, "seed", 0, "random seed (0 picks one and prints it)")

	f.IntVarP(&genCfg.Width, "width", "W", genCfg.Width, "canvas width in pixels")
	f.IntVarP(&genCfg.Height, "height", "H", genCfg.Height, "canvas height in pixels")
	f.IntVar(&genCols, "cols", 0, "derive a 4:3 portrait canvas from a column count (overrides width/height)")

	f.IntVar(&genCfg.DensityPercent, "density", genCfg.DensityPercent, "fill density in percent")
	f.IntVar(&genCfg.BallDiameterPercent, "ball-percent", genCfg.BallDiameterPercent, "ball diameter as percent of the lattice maximum")
	f.IntVar(&genCfg.TrackWidthPercent, "track-percent", genCfg.TrackWidthPercent, "track width as percent of ball diameter")
	f.StringVar(&genCfg.TrackColor, "track-color", genCfg.TrackColor, "track and pad color")
	f.StringVar(&genCfg.BackgroundColor, "bg-color", genCfg.BackgroundColor, "canvas background color")
	f.StringVar(&genTheme, "theme", "", "palette override; see 'patgen themes'")

	f.IntVar(&genCfg.MinTrackLength, "min-track-length", genCfg.MinTrackLength, "shortest circuit walk in lattice steps")
	f.IntVar(&genCfg.MaxTrackLength, "max-track-length", genCfg.MaxTrackLength, "longest circuit walk in lattice steps")
	f.Float64Var(&genCfg.OverlapProbability, "overlap", genCfg.OverlapProbability, "chance in [0,1] for a circuit walk to cross occupied points")

	f.IntVar(&genCfg.Seg1MinPercent, "seg1-min", genCfg.Seg1MinPercent, "bottom-up first segment minimum, percent of the height budget")
	f.IntVar(&genCfg.Seg1MaxPercent, "seg1-max", genCfg.Seg1MaxPercent, "bottom-up first segment maximum, percent of the height budget")
	f.IntVar(&genCfg.Seg2MinPercent, "seg2-min", genCfg.Seg2MinPercent, "bottom-up second segment minimum, percent of the height budget")
	f.IntVar(&genCfg.Seg2MaxPercent, "seg2-max", genCfg.Seg2MaxPercent, "bottom-up second segment maximum, percent of the height budget")
	f.IntVar(&genCfg.Seg3MinPercent, "seg3-min", genCfg.Seg3MinPercent, "bottom-up third segment minimum, percent of the first segment")
	f.IntVar(&genCfg.Seg3MaxPercent, "seg3-max", genCfg.Seg3MaxPercent, "bottom-up third segment maximum, percent of the first segment")
	f.Float64Var(&genCfg.SegmentComplexity, "complexity", genCfg.SegmentComplexity, "bottom-up branching, 0 (straight lines) to 1 (always three segments)")
	f.IntVar(&genCfg.SpacingVariationPercent, "spacing-variation", genCfg.SpacingVariationPercent, "bottom-up line position jitter, percent of the even spacing")
	f.IntVar(&genCfg.MinSpacingPixels, "min-spacing", genCfg.MinSpacingPixels, "bottom-up spacing floor between lines in pixels")
	f.BoolVar(&genCfg.LinearSeg3Prob, "linear-seg3", genCfg.LinearSeg3Prob, "roll three-segment odds linearly in complexity instead of squared")
}

// resolvePatternFlags turns the shared flags into a generation request,
// picking a seed when none was given.
func resolvePatternFlags() (pattern.Type, renderer.Theme, error) {
	typ, err := pattern.ParseType(genType)
	if err != nil {
		return "", renderer.ThemeNone, err
	}

	theme := renderer.ThemeNone
	if genTheme != "" {
		theme, err = renderer.ParseTheme(genTheme)
		if err != nil {
			return "", renderer.ThemeNone, err
		}
	}

	if genCols > 0 {
		genCfg.Width, genCfg.Height = geometry.GridDimensions(genCols, geometry.CellSize)
	}
	if genCfg.Seed == 0 {
		genCfg.Seed = time.Now().UnixNano() % 1000001
	}
	return typ, theme, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	typ, theme, err := resolvePatternFlags()
	if err != nil {
		return err
	}

	format := genFormat
	if !cmd.Flags().Changed("format") && strings.HasSuffix(genOutput, ".png") {
		format = "png"
	}
	if format != "svg" && format != "png" {
		return fmt.Errorf("unknown output format %q (want svg or png)", format)
	}
	if genDataURL && format != "svg" {
		return fmt.Errorf("--data-url output is SVG only")
	}

	output := genOutput
	if output == "" {
		output = "pattern." + format
	}
	toStdout := output == "-"

	// Keep stdout clean when the document itself goes there.
	status := io.Writer(os.Stdout)
	if toStdout || genDataURL {
		status = os.Stderr
	}

	d, err := pattern.Generate(typ, genCfg)
	if err != nil {
		return err
	}

	cfg := genCfg.Normalize()
	fmt.Fprintf(status, "Pattern: %s  %dx%d px\n", typ, cfg.Width, cfg.Height)
	fmt.Fprintf(status, "  Seed: %d\n", cfg.Seed)
	fmt.Fprintf(status, "  Ball: %d px  Track: %d px  Pad radius: %.1f px\n",
		cfg.BallDiameter(), cfg.TrackWidth(), cfg.PadRadius())
	fmt.Fprintf(status, "  Tracks: %d  Segments: %d  Pads: %d\n",
		len(d.Tracks), len(d.Segments()), len(d.Pads()))
	if verbose {
		if bounds, ok := d.Bounds(); ok {
			fmt.Fprintf(status, "  Content bounds: (%.0f, %.0f) to (%.0f, %.0f)\n",
				bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		}
		for i, track := range d.Tracks {
			fmt.Fprintf(status, "  Track %d: %d segments, %d pads\n",
				i+1, len(track.Segments), len(track.Pads))
		}
	}

	opts := renderer.Options{
		Theme:    theme,
		ShowGrid: genGrid,
		Rotation: genRotation,
	}

	if genDataURL {
		var buf bytes.Buffer
		if err := renderer.WriteSVG(&buf, d, opts); err != nil {
			return err
		}
		fmt.Println(renderer.DataURL(buf.Bytes()))
		return nil
	}

	if toStdout {
		return writeDocument(os.Stdout, d, format, opts)
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	err = writeDocument(f, d, format, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(status, "✓ Wrote %s\n", output)
	return nil
}

func writeDocument(w io.Writer, d *pattern.Drawing, format string, opts renderer.Options) error {
	if format == "png" {
		return renderer.WritePNG(w, d, opts)
	}
	return renderer.WriteSVG(w, d, opts)
}
