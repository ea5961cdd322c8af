// Package rasterfill implements the scanline, winding-number polygon fill
// algorithm used by the Canvas draw operations: an active-edge-table walk
// over device-space edges, grounded on gogpu/gg/raster's Edge/SimpleAET
// pair.
package rasterfill

import "math"

// Point is the minimal 2D point this package needs; callers map their own
// point type into it at edge-construction time.
type Point struct {
	X, Y float64
}

// Edge is a device-space line segment canonicalized so P0.Y <= P1.Y, with
// Winding recording the original direction (+1 if the source segment went
// downward, -1 if it was flipped to canonicalize).
type Edge struct {
	P0, P1  Point
	Winding int8
}

func roundToInt(v float64) int {
	return int(math.Floor(v + 0.5))
}

// NewEdge builds a canonicalized Edge from p0->p1. It returns ok=false if
// the segment rounds to a single scanline (it can never be active).
func NewEdge(p0, p1 Point) (Edge, bool) {
	if roundToInt(p0.Y) == roundToInt(p1.Y) {
		return Edge{}, false
	}
	winding := int8(1)
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
		winding = -1
	}
	return Edge{P0: p0, P1: p1, Winding: winding}, true
}

// XAtY linearly interpolates the edge's X coordinate at scanline y.
func (e Edge) XAtY(y float64) float64 {
	dy := e.P1.Y - e.P0.Y
	if dy == 0 {
		return e.P0.X
	}
	t := (y - e.P0.Y) / dy
	return e.P0.X + t*(e.P1.X-e.P0.X)
}

// ActiveAt reports whether the edge contributes to integer scanline y,
// using the half-open [roundToInt(P0.Y), roundToInt(P1.Y)) test.
func (e Edge) ActiveAt(y int) bool {
	y0, y1 := roundToInt(e.P0.Y), roundToInt(e.P1.Y)
	return y0 <= y && y < y1
}
