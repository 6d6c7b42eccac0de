// Package geometry provides the planar primitives shared by the pattern
// generators: segment intersection, point-to-segment distance, and the
// 45-degree direction tables used for lattice walks.
package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// SegmentsIntersect reports whether segment a1-a2 crosses segment b1-b2.
// Parallel and collinear segments are never reported as intersecting,
// even when they overlap.
func SegmentsIntersect(a1, a2, b1, b2 geom.Coord) bool {
	d1 := a2.Minus(a1)
	d2 := b2.Minus(b1)

	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom == 0 {
		return false
	}

	diff := b1.Minus(a1)
	t := (diff.X*d2.Y - diff.Y*d2.X) / denom
	u := (diff.X*d1.Y - diff.Y*d1.X) / denom

	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// PointSegmentDistance returns the distance from p to the closest point
// on segment a-b. The projection parameter is clamped to the segment, so
// points beyond either end measure to that end. A zero-length segment
// degenerates to plain point distance.
func PointSegmentDistance(p, a, b geom.Coord) float64 {
	d := b.Minus(a)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return p.DistanceFrom(a)
	}

	t := ((p.X-a.X)*d.X + (p.Y-a.Y)*d.Y) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return p.DistanceFrom(a.Plus(d.Times(t)))
}

// NearlyParallel reports whether two segments run within tol of parallel
// (or anti-parallel), measured as the deviation of the absolute dot
// product of their unit directions from 1. Degenerate segments are never
// parallel to anything.
func NearlyParallel(a1, a2, b1, b2 geom.Coord, tol float64) bool {
	da := a2.Minus(a1)
	db := b2.Minus(b1)
	if da.Magnitude() == 0 || db.Magnitude() == 0 {
		return false
	}

	ua := da.Unit()
	ub := db.Unit()
	dot := ua.X*ub.X + ua.Y*ub.Y

	return math.Abs(math.Abs(dot)-1) < tol
}

// SharesEndpoint reports whether the two segments have a common endpoint.
// Used to exclude endpoint-touching adjacency from intersection tests:
// two consecutive strokes of one path meet at a point and would otherwise
// register as crossing.
func SharesEndpoint(a1, a2, b1, b2 geom.Coord) bool {
	return a1 == b1 || a1 == b2 || a2 == b1 || a2 == b2
}
