package pattern

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
)

func seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Start: geom.Coord{X: x1, Y: y1}, End: geom.Coord{X: x2, Y: y2}}
}

// Test intersectsAny against committed segments
func TestCollisionIndexIntersectsAny(t *testing.T) {
	var ci collisionIndex
	ci.commit(Track{Segments: []Segment{seg(0, 0, 100, 0)}})

	if !ci.intersectsAny(seg(50, -10, 50, 10)) {
		t.Errorf("intersectsAny() = false for crossing candidate, want true")
	}
	if ci.intersectsAny(seg(0, 10, 100, 10)) {
		t.Errorf("intersectsAny() = true for parallel candidate, want false")
	}
	if ci.intersectsAny(seg(200, 200, 300, 200)) {
		t.Errorf("intersectsAny() = true for distant candidate, want false")
	}
}

// Test pad proximity queries with exact threshold boundaries
func TestCollisionIndexPadQueries(t *testing.T) {
	var ci collisionIndex
	ci.commit(Track{Pads: []Pad{{Center: geom.Coord{X: 0, Y: 0}, Radius: 5}}})

	if !ci.padTooClose(geom.Coord{X: 0, Y: 19}, 20) {
		t.Errorf("padTooClose() = false at distance 19 with limit 20, want true")
	}
	if ci.padTooClose(geom.Coord{X: 0, Y: 20}, 20) {
		t.Errorf("padTooClose() = true at exactly the limit, want false")
	}

	// Overlap limit is radii sum plus the 6px pad buffer: 5+2+6 = 13.
	if !ci.padOverlaps(geom.Coord{X: 0, Y: 12}, 2) {
		t.Errorf("padOverlaps() = false at distance 12, want true")
	}
	if ci.padOverlaps(geom.Coord{X: 0, Y: 13}, 2) {
		t.Errorf("padOverlaps() = true at exactly the limit, want false")
	}
}

// Test padClearOfSegments stroke clearance
func TestCollisionIndexPadClearOfSegments(t *testing.T) {
	var ci collisionIndex
	ci.commit(Track{Segments: []Segment{seg(0, 0, 100, 0)}})

	// Required clearance: trackWidth/2 + radius + 4 = 2 + 5 + 4 = 11.
	if !ci.padClearOfSegments(geom.Coord{X: 50, Y: 20}, 5, 4) {
		t.Errorf("padClearOfSegments() = false at distance 20, want true")
	}
	if ci.padClearOfSegments(geom.Coord{X: 50, Y: 8}, 5, 4) {
		t.Errorf("padClearOfSegments() = true at distance 8, want false")
	}
	if !ci.padClearOfSegments(geom.Coord{X: 50, Y: 11}, 5, 4) {
		t.Errorf("padClearOfSegments() = false at exactly the limit, want true")
	}
}

// Test the composite wouldCollide clauses
func TestCollisionIndexWouldCollide(t *testing.T) {
	tests := []struct {
		name         string
		committed    Track
		candidate    Segment
		trackWidth   float64
		minClearance float64
		parallelRule bool
		want         bool
	}{
		{
			name:      "crossing segment",
			committed: Track{Segments: []Segment{seg(0, 50, 100, 50)}},
			candidate: seg(50, 0, 50, 100),
			want:      true,
		},
		{
			name:      "clear segment",
			committed: Track{Segments: []Segment{seg(0, 50, 100, 50)}},
			candidate: seg(0, 100, 100, 100),
			want:      false,
		},
		{
			name:       "too close to a pad",
			committed:  Track{Pads: []Pad{{Center: geom.Coord{X: 50, Y: 10}, Radius: 10}}},
			candidate:  seg(0, 0, 100, 0),
			trackWidth: 4,
			// distance 10 < 2 + 10 + 4
			want: true,
		},
		{
			name:       "clear of a pad",
			committed:  Track{Pads: []Pad{{Center: geom.Coord{X: 50, Y: 20}, Radius: 10}}},
			candidate:  seg(0, 0, 100, 0),
			trackWidth: 4,
			want:       false,
		},
		{
			name:         "parallel neighbour inside limit",
			committed:    Track{Segments: []Segment{seg(100, 100, 100, 200)}},
			candidate:    seg(110, 100, 110, 200),
			trackWidth:   4,
			minClearance: 20,
			parallelRule: true,
			// distance 10 < trackWidth + minClearance/2 = 14
			want: true,
		},
		{
			name:         "parallel neighbour without the rule",
			committed:    Track{Segments: []Segment{seg(100, 100, 100, 200)}},
			candidate:    seg(110, 100, 110, 200),
			trackWidth:   4,
			minClearance: 20,
			parallelRule: false,
			want:         false,
		},
		{
			name:         "parallel neighbour outside limit",
			committed:    Track{Segments: []Segment{seg(100, 100, 100, 200)}},
			candidate:    seg(120, 100, 120, 200),
			trackWidth:   4,
			minClearance: 20,
			parallelRule: true,
			want:         false,
		},
		{
			name:         "perpendicular neighbour ignores parallel rule",
			committed:    Track{Segments: []Segment{seg(100, 100, 100, 200)}},
			candidate:    seg(110, 150, 200, 150),
			trackWidth:   4,
			minClearance: 20,
			parallelRule: true,
			want:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ci collisionIndex
			ci.commit(tt.committed)

			got := ci.wouldCollide(tt.candidate, tt.trackWidth, tt.minClearance, tt.parallelRule)
			if got != tt.want {
				t.Errorf("wouldCollide() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Test segmentDistance endpoint cases
func TestSegmentDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment
		want float64
	}{
		{
			name: "parallel verticals",
			a:    seg(0, 0, 0, 100),
			b:    seg(10, 0, 10, 100),
			want: 10,
		},
		{
			name: "offset collinear",
			a:    seg(0, 0, 10, 0),
			b:    seg(25, 0, 40, 0),
			want: 15,
		},
		{
			name: "diagonal shortest at endpoint",
			a:    seg(0, 0, 10, 0),
			b:    seg(13, 4, 30, 4),
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segmentDistance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("segmentDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Commits accumulate; a track is all-or-nothing by construction
func TestCollisionIndexCommitAccumulates(t *testing.T) {
	var ci collisionIndex

	if ci.intersectsAny(seg(0, -10, 0, 10)) {
		t.Fatalf("intersectsAny() on empty index = true, want false")
	}

	ci.commit(Track{
		Segments: []Segment{seg(-50, 0, 50, 0)},
		Pads:     []Pad{{Center: geom.Coord{X: 50, Y: 0}, Radius: 3}},
	})
	ci.commit(Track{Segments: []Segment{seg(-50, 20, 50, 20)}})

	if len(ci.segments) != 2 || len(ci.pads) != 1 {
		t.Errorf("index holds %d segments and %d pads, want 2 and 1", len(ci.segments), len(ci.pads))
	}
	if !ci.intersectsAny(seg(0, -10, 0, 30)) {
		t.Errorf("intersectsAny() = false after commits, want true")
	}
}
