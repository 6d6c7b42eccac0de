package pattern

import (
	"math"
	"math/rand"

	"github.com/jbeda/geom"

	"github.com/erondiel/pattern-generator/pkg/geometry"
)

const (
	// balanceAttempts caps whole-pattern regenerations chasing turn balance.
	balanceAttempts = 5
	// shiftAttempts caps the placement variants tried per line.
	shiftAttempts = 5
	// shrinkAttempts caps the shortening retries for the third segment.
	shrinkAttempts = 5

	// minSegmentLength floors every bottom-up segment, in pixels.
	minSegmentLength = 10
	// balanceTolerance is the allowed left/right turn difference in
	// percentage points.
	balanceTolerance = 5
	// reseedBound is the exclusive upper bound of the fresh seed drawn
	// before each balance retry.
	reseedBound = 1000001
)

// GenerateBottomUp produces bundles of vertical lines rising from one
// cell above the bottom edge, each branching into up to three segments
// at 45-degree turns. The whole pattern regenerates up to five times
// until left and right turns balance within five percent; the last
// attempt is returned even when they do not.
//
// cfg must be internally consistent (see Config.Normalize). The first
// attempt is reproducible from rng's seed; each retry reseeds from a
// value drawn off the stream, so retried outputs vary while remaining a
// pure function of the original seed.
func GenerateBottomUp(cfg Config, rng *rand.Rand) *Drawing {
	var d *Drawing
	for attempt := 0; attempt < balanceAttempts; attempt++ {
		if attempt > 0 {
			rng = rand.New(rand.NewSource(int64(rng.Intn(reseedBound))))
		}

		var balance turnBalance
		d = generateBottomUpOnce(cfg, rng, &balance)

		if balance.total() > 0 {
			if balance.skew() <= balanceTolerance {
				return d
			}
		} else if cfg.SegmentComplexity <= 0 {
			// No turns expected, nothing to balance.
			return d
		}
	}
	return d
}

// turnBalance tallies the second-segment turn directions of one attempt.
type turnBalance struct {
	left  int
	right int
}

func (b *turnBalance) total() int {
	return b.left + b.right
}

// skew returns |left% - right%| of the recorded turns.
func (b *turnBalance) skew() float64 {
	total := b.total()
	if total == 0 {
		return 0
	}
	left := float64(b.left) / float64(total) * 100
	right := float64(b.right) / float64(total) * 100
	return math.Abs(left - right)
}

// bottomUpRun carries the state of one pattern attempt: the collision
// index, the turn tally, and the sizing derived from the config.
type bottomUpRun struct {
	cfg          Config
	rng          *rand.Rand
	balance      *turnBalance
	index        collisionIndex
	width        float64
	height       float64
	trackWidth   float64
	padRadius    float64
	minClearance float64 // ball diameter plus buffer, drives the parallel rule
	maxTotal     int     // vertical length budget per line, 80% of height
	leftBorder   float64 // 15% inset from the left edge
	rightBorder  float64 // 15% inset from the right edge
	minSpacing   float64 // spacing floor between lines, stroke width included
}

func generateBottomUpOnce(cfg Config, rng *rand.Rand, balance *turnBalance) *Drawing {
	d := &Drawing{
		Kind:       TypeBottomUp,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.BackgroundColor,
		TrackColor: cfg.TrackColor,
		TrackWidth: cfg.TrackWidth(),
	}

	inset := int(float64(cfg.Width) * 0.15)
	r := &bottomUpRun{
		cfg:          cfg,
		rng:          rng,
		balance:      balance,
		width:        float64(cfg.Width),
		height:       float64(cfg.Height),
		trackWidth:   float64(cfg.TrackWidth()),
		padRadius:    cfg.PadRadius(),
		minClearance: float64(cfg.BallDiameter() + segPadBuffer),
		maxTotal:     int(float64(cfg.Height) * 0.8),
		leftBorder:   float64(inset),
		rightBorder:  float64(cfg.Width - inset),
		minSpacing:   float64(cfg.MinSpacingPixels + cfg.TrackWidth()),
	}

	xs := r.linePositions()

	// Later lines see more obstacles; shuffling the order spreads the
	// resulting drop-outs evenly across the canvas.
	for _, i := range rng.Perm(len(xs)) {
		if track, ok := r.buildLine(xs[i]); ok {
			d.Tracks = append(d.Tracks, track)
		}
	}

	return d
}

// linePositions lays out the candidate x-coordinates: borders pinned,
// interior lines evenly spaced plus a bounded jitter, never closer than
// the spacing floor to their left neighbour and dropped when they crowd
// the right border.
func (r *bottomUpRun) linePositions() []float64 {
	available := r.rightBorder - r.leftBorder

	maxLines := int(available/r.minSpacing) + 1
	numLines := int(float64(maxLines) * float64(r.cfg.DensityPercent) / 100)
	if numLines < 2 {
		numLines = 2
	}

	baseSpacing := available / float64(numLines-1)
	maxVariation := baseSpacing * float64(r.cfg.SpacingVariationPercent) / 100

	xs := []float64{r.leftBorder}
	current := r.leftBorder
	for i := 1; i < numLines-1; i++ {
		evenX := r.leftBorder + float64(i)*baseSpacing
		proposed := evenX + (r.rng.Float64()*2-1)*maxVariation
		if proposed-current < r.minSpacing {
			proposed = current + r.minSpacing
		}
		if proposed < r.rightBorder-r.minSpacing {
			xs = append(xs, proposed)
			current = proposed
		}
	}
	return append(xs, r.rightBorder)
}

// buildLine tries up to five placement variants of one candidate line,
// shifting it sideways by growing multiples of the spacing floor until
// a variant's first segment fits.
func (r *bottomUpRun) buildLine(x float64) (Track, bool) {
	segments := r.segmentCount()

	for variant := 0; variant < shiftAttempts; variant++ {
		if track, ok := r.buildPath(r.shiftVariant(x, variant), segments); ok {
			return track, true
		}
	}
	return Track{}, false
}

// shiftVariant offsets x by the variant's multiple of the spacing
// floor, alternating right and left with growing magnitude, clamped to
// the borders.
func (r *bottomUpRun) shiftVariant(x float64, variant int) float64 {
	offset := float64((variant+1)/2) * r.minSpacing
	if variant%2 == 0 {
		offset = -offset
	}
	x += offset
	if x < r.leftBorder {
		x = r.leftBorder
	} else if x > r.rightBorder {
		x = r.rightBorder
	}
	return x
}

// segmentCount rolls the number of segments for one line: complexity 0
// always yields a single vertical, complexity 1 always three segments,
// anything between falls through probability thresholds against one
// draw.
func (r *bottomUpRun) segmentCount() int {
	c := r.cfg.SegmentComplexity
	if c <= 0 {
		return 1
	}

	threeProb := c * c
	if r.cfg.LinearSeg3Prob {
		threeProb = c * 0.7
	}

	threshold := r.rng.Float64()
	switch {
	case threshold <= threeProb:
		return 3
	case threshold <= c:
		return 2
	default:
		return 1
	}
}

// buildPath grows one line from the baseline: a vertical first segment,
// an optional 45-degree second segment trying both turn directions, and
// an optional third segment parallel to the first with shrinking length
// retries. Only a first-segment collision fails the path; everything
// later degrades to a shorter line. The finished track is committed
// before returning.
func (r *bottomUpRun) buildPath(x float64, numSegments int) (Track, bool) {
	start := geom.Coord{X: x, Y: r.height - geometry.CellSize}

	pct := randPercent(r.rng, r.cfg.Seg1MinPercent, r.cfg.Seg1MaxPercent)
	seg1Len := int(float64(r.maxTotal) * float64(pct) / 100)
	if seg1Len < minSegmentLength {
		seg1Len = minSegmentLength
	}
	end := geom.Coord{X: start.X, Y: start.Y - float64(seg1Len)}
	if end.Y < geometry.CellSize {
		end.Y = geometry.CellSize
		seg1Len = int(start.Y - end.Y)
	}
	seg1 := Segment{Start: start, End: end}

	if r.index.wouldCollide(seg1, r.trackWidth, r.minClearance, true) {
		return Track{}, false
	}

	path := []Segment{seg1}
	pos := seg1.End
	remaining := float64(r.maxTotal - seg1Len)

	if numSegments > 1 && remaining > minSegmentLength {
		secondAdded := false
		for _, turn := range r.turnOrder() {
			dir := geometry.DirectionsUp8[(geometry.UpIndex+turn+8)%8]

			pct := randPercent(r.rng, r.cfg.Seg2MinPercent, r.cfg.Seg2MaxPercent)
			length := float64(int(float64(r.maxTotal) * float64(pct) / 100))
			if length > remaining {
				length = remaining
			}
			if length < minSegmentLength {
				length = minSegmentLength
			}
			length = r.clipLength(pos, dir, length)

			seg2 := Segment{Start: pos, End: pos.Plus(dir.Times(length))}
			if r.index.wouldCollide(seg2, r.trackWidth, r.minClearance, true) {
				continue
			}

			path = append(path, seg2)
			pos = seg2.End
			secondAdded = true
			if turn < 0 {
				r.balance.left++
			} else {
				r.balance.right++
			}
			remaining -= seg2.Length()
			break
		}

		if secondAdded && numSegments > 2 && remaining > minSegmentLength {
			pct := randPercent(r.rng, r.cfg.Seg3MinPercent, r.cfg.Seg3MaxPercent)
			length := float64(int(float64(seg1Len) * float64(pct) / 100))
			if length > remaining {
				length = remaining
			}
			if length < minSegmentLength {
				length = minSegmentLength
			}

			up := geometry.DirectionsUp8[geometry.UpIndex]
			for shrink := 0; shrink < shrinkAttempts; shrink++ {
				factor := 1 - 0.2*float64(shrink)
				cur := float64(int(length * factor))
				if cur < minSegmentLength {
					cur = minSegmentLength
				}
				cur = r.clipLength(pos, up, cur)

				seg3 := Segment{Start: pos, End: pos.Plus(up.Times(cur))}
				if r.index.wouldCollide(seg3, r.trackWidth, r.minClearance, true) {
					continue
				}

				path = append(path, seg3)
				pos = seg3.End
				break
			}
		}
	}

	var track Track
	for _, s := range path {
		if !s.IsDegenerate() {
			track.Segments = append(track.Segments, s)
		}
	}

	// Terminal pad at the path's final point, silently omitted when it
	// would crowd an existing pad or sit on a committed stroke.
	if !r.index.padOverlaps(pos, r.padRadius) && r.index.padClearOfSegments(pos, r.padRadius, r.trackWidth) {
		track.Pads = append(track.Pads, Pad{Center: pos, Radius: r.padRadius})
	}

	if len(track.Segments) == 0 && len(track.Pads) == 0 {
		return Track{}, false
	}
	r.index.commit(track)
	return track, true
}

// turnOrder returns the two 45-degree turn directions in random order:
// -1 for left, 1 for right.
func (r *bottomUpRun) turnOrder() [2]int {
	if r.rng.Intn(2) == 0 {
		return [2]int{-1, 1}
	}
	return [2]int{1, -1}
}

// clipLength shrinks length until pos plus length times dir stays
// within the canvas sideways and within one cell of margin vertically.
// The direction is preserved; only the reach shortens, down to zero for
// a point already on the offending edge.
func (r *bottomUpRun) clipLength(pos, dir geom.Coord, length float64) float64 {
	if dir.X > 0 {
		if m := r.width - pos.X; m < length {
			length = m
		}
	} else if dir.X < 0 {
		if m := pos.X; m < length {
			length = m
		}
	}
	if dir.Y < 0 {
		if m := pos.Y - geometry.CellSize; m < length {
			length = m
		}
	} else if dir.Y > 0 {
		if m := r.height - geometry.CellSize - pos.Y; m < length {
			length = m
		}
	}
	if length < 0 {
		length = 0
	}
	return length
}
