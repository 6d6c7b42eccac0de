// Package pattern implements the two procedural circuit-board pattern
// generators: a lattice random-walk "circuit" style and a "bottom-up"
// style of vertical lines branching at 45 degrees. Both consume a
// Config and a seeded random source and produce a Drawing.
package pattern

import (
	"math"
	"math/rand"

	"github.com/erondiel/pattern-generator/pkg/geometry"
)

// MaxBallFraction caps the ball diameter relative to the lattice pitch
// so adjacent pads never touch.
const MaxBallFraction = 0.95

// Config holds every tunable of both generators. Zero values are not
// useful; start from DefaultConfig.
type Config struct {
	Width  int // canvas width in pixels
	Height int // canvas height in pixels

	TrackColor      string // stroke color (e.g. "#FFFFFF")
	BackgroundColor string // canvas fill (e.g. "#000000")

	TrackWidthPercent   int // stroke width as percent of ball diameter
	BallDiameterPercent int // ball diameter as percent of the lattice maximum
	DensityPercent      int // portion of lattice points (circuit) or line slots (bottom-up) to fill

	// Circuit generator
	MinTrackLength     int     // shortest walk, in lattice steps
	MaxTrackLength     int     // longest walk, in lattice steps
	OverlapProbability float64 // chance in [0,1] to walk through an occupied point

	// Bottom-up generator
	Seg1MinPercent          int     // first-segment length range, percent of the vertical budget
	Seg1MaxPercent          int     //
	Seg2MinPercent          int     // second-segment length range, percent of the vertical budget
	Seg2MaxPercent          int     //
	Seg3MinPercent          int     // third-segment length range, percent of the first segment
	Seg3MaxPercent          int     //
	SegmentComplexity       float64 // 0 = single vertical lines, 1 = always three segments
	SpacingVariationPercent int     // jitter on interior line positions, percent of even spacing
	MinSpacingPixels        int     // spacing floor between lines, before stroke width is added
	LinearSeg3Prob          bool    // roll the third segment at complexity*0.7 instead of complexity^2

	Seed int64 // seeds the random source in Generate
}

// DefaultConfig returns the canonical parameter set: white tracks on
// black, medium density, and the segment ranges both generators were
// tuned with.
func DefaultConfig() Config {
	w, h := geometry.GridDimensions(20, geometry.CellSize)
	return Config{
		Width:  w,
		Height: h,

		TrackColor:      "#FFFFFF",
		BackgroundColor: "#000000",

		TrackWidthPercent:   60,
		BallDiameterPercent: 60,
		DensityPercent:      70,

		MinTrackLength:     2,
		MaxTrackLength:     8,
		OverlapProbability: 0,

		Seg1MinPercent:          50,
		Seg1MaxPercent:          70,
		Seg2MinPercent:          1,
		Seg2MaxPercent:          30,
		Seg3MinPercent:          15,
		Seg3MaxPercent:          100,
		SegmentComplexity:       0.7,
		SpacingVariationPercent: 50,
		MinSpacingPixels:        5,
	}
}

// BallDiameter returns the pad diameter in pixels, derived from the
// lattice pitch.
func (c Config) BallDiameter() int {
	maxBall := int(float64(geometry.CellSize) * MaxBallFraction)
	return int(float64(maxBall) * float64(c.BallDiameterPercent) / 100)
}

// PadRadius returns the pad radius in pixels, never below 1.
func (c Config) PadRadius() float64 {
	return math.Max(1, float64(c.BallDiameter())/2)
}

// TrackWidth returns the stroke width in pixels, never below 1.
func (c Config) TrackWidth() int {
	w := int(float64(c.BallDiameter()) * float64(c.TrackWidthPercent) / 100)
	if w < 1 {
		w = 1
	}
	return w
}

// Normalize returns a copy with every bounded pair and range made
// internally consistent: percents clamped to [0,100], probabilities to
// [0,1], and each max folded up to its min. Invalid combinations are
// corrected, never rejected. The generators assume their input already
// passed through here; Generate applies it for you.
func (c Config) Normalize() Config {
	clampPct := func(p *int) {
		if *p < 0 {
			*p = 0
		} else if *p > 100 {
			*p = 100
		}
	}
	clampUnit := func(f *float64) {
		if *f < 0 {
			*f = 0
		} else if *f > 1 {
			*f = 1
		}
	}

	clampPct(&c.TrackWidthPercent)
	clampPct(&c.BallDiameterPercent)
	clampPct(&c.DensityPercent)
	clampPct(&c.Seg1MinPercent)
	clampPct(&c.Seg1MaxPercent)
	clampPct(&c.Seg2MinPercent)
	clampPct(&c.Seg2MaxPercent)
	clampPct(&c.Seg3MinPercent)
	clampPct(&c.Seg3MaxPercent)
	clampPct(&c.SpacingVariationPercent)
	clampUnit(&c.OverlapProbability)
	clampUnit(&c.SegmentComplexity)

	if c.MinTrackLength < 1 {
		c.MinTrackLength = 1
	}
	if c.MaxTrackLength < c.MinTrackLength {
		c.MaxTrackLength = c.MinTrackLength
	}
	if c.Seg1MaxPercent < c.Seg1MinPercent {
		c.Seg1MaxPercent = c.Seg1MinPercent
	}
	if c.Seg2MaxPercent < c.Seg2MinPercent {
		c.Seg2MaxPercent = c.Seg2MinPercent
	}
	if c.Seg3MaxPercent < c.Seg3MinPercent {
		c.Seg3MaxPercent = c.Seg3MinPercent
	}
	if c.MinSpacingPixels < 0 {
		c.MinSpacingPixels = 0
	}
	return c
}

// randPercent draws an integer percent from [min, max] inclusive.
func randPercent(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
