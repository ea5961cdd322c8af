package ink

import "sort"

// LinearPosGradient shades along x using explicit, non-uniformly spaced
// stop positions. setContext still requires an invertible CTM, but
// shadeRow reads raw device x rather than mapping through the inverse —
// this gradient does not follow the canvas's current transform.
type LinearPosGradient struct {
	p0, p1    Point
	colors    []Color
	positions []float64

	ready bool
}

// NewLinearPosGradient constructs a gradient with explicit stop
// positions; positions must be sorted non-decreasing and the same length
// as colors. Both slices are copied. A degenerate request with no colors
// returns a nil Shader, which callers must tolerate.
func NewLinearPosGradient(p0, p1 Point, colors []Color, positions []float64) Shader {
	if len(colors) == 0 {
		return nil
	}
	g := &LinearPosGradient{p0: p0, p1: p1, colors: copyColors(colors)}
	if len(positions) == len(colors) && len(positions) > 0 {
		g.positions = append([]float64(nil), positions...)
	} else {
		// Degenerate input: fall back to evenly spaced positions over the
		// (possibly promoted) color set.
		n := len(g.colors)
		g.positions = make([]float64, n)
		for i := range g.positions {
			g.positions[i] = float64(i) / float64(n-1)
		}
	}
	return g
}

func (g *LinearPosGradient) isOpaque() bool {
	for _, c := range g.colors {
		if c.A != 1 {
			return false
		}
	}
	return true
}

func (g *LinearPosGradient) setContext(ctm Matrix) bool {
	_, ok := ctm.Invert()
	g.ready = ok
	return ok
}

func (g *LinearPosGradient) shadeRow(x, y, count int, out []Pixel) {
	if !g.ready {
		return
	}
	span := g.p1.X - g.p0.X
	for i := 0; i < count; i++ {
		px := float64(x+i) + 0.5
		t := clamp01((px - g.p0.X) / span)
		out[i] = colorToPixel(g.colorAt(t))
	}
}

func (g *LinearPosGradient) colorAt(t float64) Color {
	pos := g.positions
	// Find the first position >= t.
	idx := sort.SearchFloat64s(pos, t)
	if idx == 0 {
		return g.colors[0]
	}
	if idx >= len(pos) {
		return g.colors[len(pos)-1]
	}
	lo, hi := idx-1, idx
	span := pos[hi] - pos[lo]
	if span <= 0 {
		return g.colors[hi]
	}
	frac := (t - pos[lo]) / span
	return g.colors[lo].Lerp(g.colors[hi], frac)
}
