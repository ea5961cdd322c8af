package ink

// LinearGradient shades along the line from p0 to p1, tiling the gradient
// ramp beyond the [p0,p1] segment according to its TileMode.
type LinearGradient struct {
	p0, p1 Point
	colors []Color
	tile   TileMode

	inverse Matrix
	ok      bool
}

// NewLinearGradient constructs a linear gradient. colors is copied; a
// single color is promoted to a two-identical-stop gradient. A degenerate
// request with no colors returns a nil Shader, which callers must
// tolerate.
func NewLinearGradient(p0, p1 Point, colors []Color, tile TileMode) Shader {
	if len(colors) == 0 {
		return nil
	}
	return &LinearGradient{p0: p0, p1: p1, colors: copyColors(colors), tile: tile}
}

func (g *LinearGradient) isOpaque() bool {
	for _, c := range g.colors {
		if c.A != 1 {
			return false
		}
	}
	return true
}

func (g *LinearGradient) setContext(ctm Matrix) bool {
	dx, dy := g.p1.X-g.p0.X, g.p1.Y-g.p0.Y
	basis := Matrix{A: dx, C: -dy, E: g.p0.X, B: dy, D: dx, F: g.p0.Y}
	eff := Concat(ctm, basis)
	inv, ok := eff.Invert()
	g.inverse = inv
	g.ok = ok
	return ok
}

func (g *LinearGradient) shadeRow(x, y, count int, out []Pixel) {
	if !g.ok {
		return
	}
	for i := 0; i < count; i++ {
		local := g.inverse.MapPoint(Pt(float64(x+i)+0.5, float64(y)+0.5))
		t := tileUnit(g.tile, local.X)
		out[i] = colorToPixel(lerpColors(g.colors, t))
	}
}
