package ink

import "math"

// SweepGradient shades by angle around center, starting at startRadians.
// Stops are stepwise (non-interpolated): each pixel takes the color of
// whichever stop its angle falls into, rather than blending between
// neighboring stops.
type SweepGradient struct {
	center       Point
	startRadians float64
	colors       []Color

	inverse Matrix
	ok      bool
}

// NewSweepGradient constructs a sweep gradient. colors is copied. A
// degenerate request with no colors returns a nil Shader, which callers
// must tolerate.
func NewSweepGradient(center Point, startRadians float64, colors []Color) Shader {
	if len(colors) == 0 {
		return nil
	}
	return &SweepGradient{center: center, startRadians: startRadians, colors: copyColors(colors)}
}

// isOpaque is always false, even when every stop is opaque.
func (g *SweepGradient) isOpaque() bool { return false }

func (g *SweepGradient) setContext(ctm Matrix) bool {
	inv, ok := ctm.Invert()
	g.inverse = inv
	g.ok = ok
	return ok
}

const twoPi = 2 * math.Pi

func (g *SweepGradient) shadeRow(x, y, count int, out []Pixel) {
	if !g.ok {
		return
	}
	n := len(g.colors)
	for i := 0; i < count; i++ {
		local := g.inverse.MapPoint(Pt(float64(x+i)+0.5, float64(y)+0.5))
		theta := math.Atan2(local.Y-g.center.Y, local.X-g.center.X)
		if theta < 0 {
			theta += twoPi
		}
		t := (theta - g.startRadians) / twoPi
		t -= math.Floor(t)

		idx := int(t * float64(n))
		if idx >= n {
			idx = 0
		}
		out[i] = colorToPixel(g.colors[idx])
	}
}
