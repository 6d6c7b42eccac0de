package pattern

import (
	"github.com/jbeda/geom"

	"github.com/erondiel/pattern-generator/pkg/geometry"
)

const (
	// segPadBuffer is the extra clearance between a stroke edge and a
	// pad edge.
	segPadBuffer = 4
	// padPadBuffer is the extra clearance between two pad edges.
	padPadBuffer = 6
	// parallelTol is the dot-product tolerance for treating two
	// segments as running parallel.
	parallelTol = 0.1
)

// collisionIndex accumulates the segments and pads committed during one
// generation attempt and answers clearance queries against them. All
// queries are linear scans over attempt-local contents; the index is
// discarded with the attempt.
type collisionIndex struct {
	segments []Segment
	pads     []Pad
}

// commit appends a track's segments and pads to the index. There is no
// undo: callers validate a whole track before committing it.
func (ci *collisionIndex) commit(t Track) {
	ci.segments = append(ci.segments, t.Segments...)
	ci.pads = append(ci.pads, t.Pads...)
}

// intersectsAny reports whether s crosses any committed segment.
func (ci *collisionIndex) intersectsAny(s Segment) bool {
	for _, o := range ci.segments {
		if geometry.SegmentsIntersect(s.Start, s.End, o.Start, o.End) {
			return true
		}
	}
	return false
}

// padTooClose reports whether any committed pad center lies within
// minDist of c. The circuit generator's endpoint spacing rule.
func (ci *collisionIndex) padTooClose(c geom.Coord, minDist float64) bool {
	for _, p := range ci.pads {
		if c.DistanceFrom(p.Center) < minDist {
			return true
		}
	}
	return false
}

// padOverlaps reports whether a pad of the given radius at c would sit
// closer than the sum of radii plus the pad buffer to any committed pad.
func (ci *collisionIndex) padOverlaps(c geom.Coord, radius float64) bool {
	for _, p := range ci.pads {
		if c.DistanceFrom(p.Center) < radius+p.Radius+padPadBuffer {
			return true
		}
	}
	return false
}

// padClearOfSegments reports whether a pad of the given radius at c
// keeps stroke clearance from every committed segment. Called before
// the pad's own track is committed, so its own strokes are not in the
// index yet.
func (ci *collisionIndex) padClearOfSegments(c geom.Coord, radius, trackWidth float64) bool {
	for _, o := range ci.segments {
		if geometry.PointSegmentDistance(c, o.Start, o.End) < trackWidth/2+radius+segPadBuffer {
			return false
		}
	}
	return true
}

// wouldCollide is the bottom-up generator's composite clearance test:
// s collides when it crosses a committed segment, passes closer than
// trackWidth/2 + radius + buffer to a committed pad, or — with the
// parallel rule on — runs nearly parallel to a committed segment at
// less than trackWidth + minClearance/2.
func (ci *collisionIndex) wouldCollide(s Segment, trackWidth, minClearance float64, parallelRule bool) bool {
	if ci.intersectsAny(s) {
		return true
	}

	for _, p := range ci.pads {
		if geometry.PointSegmentDistance(p.Center, s.Start, s.End) < trackWidth/2+p.Radius+segPadBuffer {
			return true
		}
	}

	if parallelRule {
		limit := trackWidth + minClearance/2
		for _, o := range ci.segments {
			if !geometry.NearlyParallel(s.Start, s.End, o.Start, o.End, parallelTol) {
				continue
			}
			if segmentDistance(s, o) < limit {
				return true
			}
		}
	}

	return false
}

// segmentDistance returns the distance between two non-crossing
// segments: the closest approach is always at one of the four
// endpoints.
func segmentDistance(a, b Segment) float64 {
	d := geometry.PointSegmentDistance(a.Start, b.Start, b.End)
	if v := geometry.PointSegmentDistance(a.End, b.Start, b.End); v < d {
		d = v
	}
	if v := geometry.PointSegmentDistance(b.Start, a.Start, a.End); v < d {
		d = v
	}
	if v := geometry.PointSegmentDistance(b.End, a.Start, a.End); v < d {
		d = v
	}
	return d
}
