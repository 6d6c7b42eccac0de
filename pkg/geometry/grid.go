package geometry

import "github.com/jbeda/geom"

// CellSize is the lattice pitch in pixels. Both generators derive ball
// and track sizing from it, and the circuit generator walks on its
// multiples.
const CellSize = 40

// Directions8 lists the eight lattice steps in 45-degree increments,
// starting east and winding through south in screen coordinates. The
// circuit generator turns by stepping an index through this table.
var Directions8 = [8]geom.Coord{
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
}

// DirectionsUp8 is the bottom-up generator's table: index 2 points
// straight up in screen coordinates, so (2+turn)%8 yields the 45-degree
// neighbours of vertical for turn = ±1.
var DirectionsUp8 = [8]geom.Coord{
	{X: 1, Y: 0},
	{X: 1, Y: -1},
	{X: 0, Y: -1},
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: -1, Y: 1},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

// UpIndex is the DirectionsUp8 index of the straight-up direction.
const UpIndex = 2

// LatticePoints enumerates the interior grid points of a canvas, one
// cell in from every edge, columns outermost.
func LatticePoints(width, height, cell int) []geom.Coord {
	var pts []geom.Coord
	for x := cell; x <= width-cell; x += cell {
		for y := cell; y <= height-cell; y += cell {
			pts = append(pts, geom.Coord{X: float64(x), Y: float64(y)})
		}
	}
	return pts
}

// GridDimensions derives a 4:3 portrait canvas from a column count,
// with one cell of margin on every side.
func GridDimensions(cols, cell int) (width, height int) {
	rows := cols * 4 / 3
	return (cols + 1) * cell, (rows + 1) * cell
}
