package geometry

import (
	"testing"

	"github.com/jbeda/geom"
)

// Test that both direction tables cover the eight compass steps
func TestDirectionTables(t *testing.T) {
	for name, dirs := range map[string][8]geom.Coord{
		"Directions8":   Directions8,
		"DirectionsUp8": DirectionsUp8,
	} {
		seen := make(map[geom.Coord]bool)
		for i, d := range dirs {
			if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
				t.Errorf("%s[%d] = %v, want unit lattice step", name, i, d)
			}
			if d.X == 0 && d.Y == 0 {
				t.Errorf("%s[%d] is the zero step", name, i)
			}
			if seen[d] {
				t.Errorf("%s[%d] = %v repeated", name, i, d)
			}
			seen[d] = true
		}
		if len(seen) != 8 {
			t.Errorf("%s covers %d distinct steps, want 8", name, len(seen))
		}

		// Index arithmetic relies on i and i+4 being opposite headings.
		for i := 0; i < 4; i++ {
			opp := dirs[(i+4)%8]
			if opp.X != -dirs[i].X || opp.Y != -dirs[i].Y {
				t.Errorf("%s[%d] and [%d] are not opposite: %v vs %v", name, i, i+4, dirs[i], opp)
			}
		}
	}

	if up := DirectionsUp8[UpIndex]; up.X != 0 || up.Y != -1 {
		t.Errorf("DirectionsUp8[UpIndex] = %v, want (0,-1)", up)
	}
}

// Test LatticePoints bounds, ordering, and spacing
func TestLatticePoints(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		cell          int
		wantLen       int
		wantFirst     geom.Coord
		wantLast      geom.Coord
	}{
		{
			name:  "4x3 interior grid",
			width: 200, height: 160, cell: 40,
			wantLen:   12,
			wantFirst: geom.Coord{X: 40, Y: 40},
			wantLast:  geom.Coord{X: 160, Y: 120},
		},
		{
			name:  "single column",
			width: 80, height: 200, cell: 40,
			wantLen:   4,
			wantFirst: geom.Coord{X: 40, Y: 40},
			wantLast:  geom.Coord{X: 40, Y: 160},
		},
		{
			name:  "too small for any point",
			width: 60, height: 60, cell: 40,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LatticePoints(tt.width, tt.height, tt.cell)
			if len(got) != tt.wantLen {
				t.Fatalf("LatticePoints() returned %d points, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen == 0 {
				return
			}
			if got[0] != tt.wantFirst {
				t.Errorf("first point = %v, want %v", got[0], tt.wantFirst)
			}
			if got[len(got)-1] != tt.wantLast {
				t.Errorf("last point = %v, want %v", got[len(got)-1], tt.wantLast)
			}
			for _, p := range got {
				if p.X < float64(tt.cell) || p.X > float64(tt.width-tt.cell) {
					t.Errorf("point %v outside x margin", p)
				}
				if p.Y < float64(tt.cell) || p.Y > float64(tt.height-tt.cell) {
					t.Errorf("point %v outside y margin", p)
				}
			}
		})
	}
}

// Columns vary fastest in y so the walk origin shuffle sees column-major order.
func TestLatticePointsColumnMajor(t *testing.T) {
	pts := LatticePoints(200, 160, 40)
	if len(pts) < 4 {
		t.Fatalf("LatticePoints() returned %d points, want at least 4", len(pts))
	}
	if pts[0].X != pts[1].X {
		t.Errorf("points[0].X = %v, points[1].X = %v, want same column first", pts[0].X, pts[1].X)
	}
	if pts[1].Y-pts[0].Y != 40 {
		t.Errorf("column spacing = %v, want 40", pts[1].Y-pts[0].Y)
	}
}

// Test GridDimensions 4:3 aspect derivation
func TestGridDimensions(t *testing.T) {
	tests := []struct {
		name       string
		cols       int
		cell       int
		wantWidth  int
		wantHeight int
	}{
		{name: "default twenty columns", cols: 20, cell: 40, wantWidth: 840, wantHeight: 1080},
		{name: "nine columns", cols: 9, cell: 40, wantWidth: 400, wantHeight: 520},
		{name: "three columns", cols: 3, cell: 40, wantWidth: 160, wantHeight: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := GridDimensions(tt.cols, tt.cell)
			if gotW != tt.wantWidth || gotH != tt.wantHeight {
				t.Errorf("GridDimensions(%d, %d) = (%d, %d), want (%d, %d)",
					tt.cols, tt.cell, gotW, gotH, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}
