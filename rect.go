package ink

import "math"

// Rect is an axis-aligned rectangle given by its left/top/right/bottom
// edges, with Left <= Right and Top <= Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// LTRB constructs a Rect directly from its four edges.
func LTRB(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// XYWH constructs a Rect from a corner and a size.
func XYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns Right-Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Corners returns the rectangle's four corners in clockwise order starting
// at the top-left: (Left,Top), (Right,Top), (Right,Bottom), (Left,Bottom).
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
}

// roundToInt rounds x to the nearest integer, .5 rounding up (toward +inf),
// matching the scanline rounding rule used throughout the fill engine.
func roundToInt(x float64) int {
	return int(math.Floor(x + 0.5))
}
