package pattern

import (
	"math/rand"

	"github.com/jbeda/geom"

	"github.com/erondiel/pattern-generator/pkg/geometry"
)

// turnProbability is the per-step chance of the walk changing heading.
const turnProbability = 0.4

// turnChoices are the allowed heading changes: 45 or 90 degrees to
// either side, as steps through the direction table.
var turnChoices = [4]int{-2, -1, 1, 2}

// ballDistanceFactor scales the minimum pad spacing with pad size.
// Small pads need proportionally more air to read as separate; large
// pads need less or the walk starves for start points.
func ballDistanceFactor(ballDiameter int) float64 {
	switch {
	case float64(ballDiameter) < geometry.CellSize*0.25:
		return 1.1
	case float64(ballDiameter) < geometry.CellSize*0.5:
		return 1.0
	default:
		return 0.95
	}
}

// GenerateCircuit runs the lattice random walk: shuffled interior grid
// points are consumed as walk origins until the density target is met,
// every origin is spent, or the attempt cap of twice the point count is
// hit. Each origin tries the eight compass headings in random order and
// keeps the first walk that places at least one segment. There is no
// whole-pattern retry; a pattern short of the density target is
// returned as is.
//
// cfg must be internally consistent (see Config.Normalize). The walk
// draws from rng only, so equal configs and equally seeded sources
// reproduce the drawing exactly.
func GenerateCircuit(cfg Config, rng *rand.Rand) *Drawing {
	d := &Drawing{
		Kind:       TypeCircuit,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: cfg.BackgroundColor,
		TrackColor: cfg.TrackColor,
		TrackWidth: cfg.TrackWidth(),
	}

	points := geometry.LatticePoints(cfg.Width, cfg.Height, geometry.CellSize)
	if len(points) == 0 {
		return d
	}
	rng.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})

	ball := cfg.BallDiameter()
	w := &circuitWalker{
		cfg:        cfg,
		rng:        rng,
		width:      float64(cfg.Width),
		height:     float64(cfg.Height),
		padRadius:  cfg.PadRadius(),
		minPadDist: float64(ball) * ballDistanceFactor(ball),
		occupied:   make(map[geom.Coord]bool),
	}

	target := int(float64(len(points)) * float64(cfg.DensityPercent) / 100)
	maxAttempts := 2 * len(points)

	remaining := points
	var failed []geom.Coord
	failedSet := make(map[geom.Coord]bool)
	addFailed := func(c geom.Coord) {
		if !failedSet[c] {
			failedSet[c] = true
			failed = append(failed, c)
		}
	}

	for attempts := 0; len(remaining) > 0 && len(w.occupied) < target && attempts < maxAttempts; attempts++ {
		available := unoccupied(remaining, w.occupied)
		if len(available) == 0 {
			// Primary pool exhausted: give failed origins one more
			// round before quitting.
			if len(failed) == 0 {
				break
			}
			available = failed
			failed = nil
			failedSet = make(map[geom.Coord]bool)
		}

		start := available[rng.Intn(len(available))]
		remaining = removePoint(remaining, start)

		// An origin this close to a pad could never carry one itself.
		if w.index.padTooClose(start, w.minPadDist) {
			addFailed(start)
			continue
		}

		track, ok := w.tryTrack(start)
		if !ok {
			addFailed(start)
			continue
		}
		d.Tracks = append(d.Tracks, track)
	}

	return d
}

// circuitWalker carries the mutable state of one circuit generation
// run: the collision index, the occupied lattice points, and the sizing
// derived from the config.
type circuitWalker struct {
	cfg        Config
	rng        *rand.Rand
	width      float64
	height     float64
	padRadius  float64
	minPadDist float64
	index      collisionIndex
	occupied   map[geom.Coord]bool
}

// tryTrack attempts a walk from start in each of the eight headings, in
// random order. The first heading that yields at least one segment wins
// and the track is committed with its endpoint pads. When every heading
// fails the origin is released again.
func (w *circuitWalker) tryTrack(start geom.Coord) (Track, bool) {
	for _, heading := range w.rng.Perm(8) {
		w.occupied[start] = true

		path, segs := w.walk(start, heading)
		if len(segs) == 0 {
			delete(w.occupied, start)
			continue
		}

		track := Track{Segments: segs}
		for _, end := range [2]geom.Coord{path[0], path[len(path)-1]} {
			if w.index.padTooClose(end, w.minPadDist) || padNear(track.Pads, end, w.minPadDist) {
				continue
			}
			track.Pads = append(track.Pads, Pad{Center: end, Radius: w.padRadius})
		}

		w.index.commit(track)
		return track, true
	}
	return Track{}, false
}

// walk steps from start one lattice cell at a time in the current
// heading, turning with probability turnProbability after each placed
// segment, until the drawn length is spent or a stop condition fires:
// the margin, an occupied point (unless an overlap roll passes), a
// crossing, or pad proximity at the new endpoint. Visited points are
// marked occupied as they are placed.
func (w *circuitWalker) walk(start geom.Coord, heading int) (path []geom.Coord, segs []Segment) {
	length := w.cfg.MinTrackLength + w.rng.Intn(w.cfg.MaxTrackLength-w.cfg.MinTrackLength+1)

	current := start
	path = []geom.Coord{start}

	for step := 0; step < length; step++ {
		next := current.Plus(geometry.Directions8[heading].Times(geometry.CellSize))

		if next.X < geometry.CellSize || next.X > w.width-geometry.CellSize ||
			next.Y < geometry.CellSize || next.Y > w.height-geometry.CellSize {
			break
		}

		// Landing on an occupied point stops the walk unless the
		// overlap roll lets it pass. Returning to the own origin is
		// always allowed, closing a loop.
		if w.occupied[next] && next != start {
			if w.cfg.OverlapProbability == 0 || w.rng.Float64() > w.cfg.OverlapProbability {
				break
			}
		}

		if w.cfg.OverlapProbability == 0 && w.crosses(Segment{Start: current, End: next}, segs) {
			break
		}

		if w.index.padTooClose(next, w.minPadDist) {
			break
		}

		segs = append(segs, Segment{Start: current, End: next})
		current = next
		path = append(path, current)
		w.occupied[current] = true

		if w.rng.Float64() < turnProbability {
			turn := turnChoices[w.rng.Intn(len(turnChoices))]
			heading = (heading + turn + 8) % 8
		}
	}

	return path, segs
}

// crosses reports whether cand intersects a committed segment or a
// non-adjacent segment of its own pending path. Consecutive strokes
// meet at a shared point and do not count, nor does a loop closing back
// onto an earlier own point.
func (w *circuitWalker) crosses(cand Segment, pending []Segment) bool {
	if w.index.intersectsAny(cand) {
		return true
	}
	for _, o := range pending {
		if geometry.SharesEndpoint(cand.Start, cand.End, o.Start, o.End) {
			continue
		}
		if geometry.SegmentsIntersect(cand.Start, cand.End, o.Start, o.End) {
			return true
		}
	}
	return false
}

// unoccupied filters pts down to those not yet marked occupied,
// preserving order.
func unoccupied(pts []geom.Coord, occupied map[geom.Coord]bool) []geom.Coord {
	var free []geom.Coord
	for _, p := range pts {
		if !occupied[p] {
			free = append(free, p)
		}
	}
	return free
}

// removePoint deletes the first occurrence of c from pts, preserving
// order. Absent points are a no-op.
func removePoint(pts []geom.Coord, c geom.Coord) []geom.Coord {
	for i, p := range pts {
		if p == c {
			return append(pts[:i], pts[i+1:]...)
		}
	}
	return pts
}

// padNear reports whether any pad center in pads lies within minDist of c.
func padNear(pads []Pad, c geom.Coord, minDist float64) bool {
	for _, p := range pads {
		if c.DistanceFrom(p.Center) < minDist {
			return true
		}
	}
	return false
}
