package ink

// ColorMatrixShader applies a 4x5 affine color transform to an inner
// shader's output. The matrix is column-major:
//
//	r' = M[0]*r + M[4]*g + M[8]*b  + M[12]*a + M[16]
//	g' = M[1]*r + M[5]*g + M[9]*b  + M[13]*a + M[17]
//	b' = M[2]*r + M[6]*g + M[10]*b + M[14]*a + M[18]
//	a' = M[3]*r + M[7]*g + M[11]*b + M[15]*a + M[19]
type ColorMatrixShader struct {
	m     [20]float64
	inner Shader
}

// NewColorMatrixShader constructs a color-matrix shader wrapping inner.
func NewColorMatrixShader(m [20]float64, inner Shader) *ColorMatrixShader {
	return &ColorMatrixShader{m: m, inner: inner}
}

// isOpaque is always false: a color matrix can introduce transparency
// from any input, so it is never declared opaque.
func (s *ColorMatrixShader) isOpaque() bool { return false }

func (s *ColorMatrixShader) setContext(ctm Matrix) bool {
	return s.inner.setContext(ctm)
}

func (s *ColorMatrixShader) shadeRow(x, y, count int, out []Pixel) {
	row := make([]Pixel, count)
	s.inner.shadeRow(x, y, count, row)
	m := &s.m
	for i := 0; i < count; i++ {
		// pixelToColor is deliberately lossy here: the row is read as
		// still-premultiplied channel values rather than un-premultiplied.
		c := pixelToColor(row[i])
		r := m[0]*c.R + m[4]*c.G + m[8]*c.B + m[12]*c.A + m[16]
		g := m[1]*c.R + m[5]*c.G + m[9]*c.B + m[13]*c.A + m[17]
		b := m[2]*c.R + m[6]*c.G + m[10]*c.B + m[14]*c.A + m[18]
		a := m[3]*c.R + m[7]*c.G + m[11]*c.B + m[15]*c.A + m[19]
		out[i] = colorToPixel(Color{
			R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a),
		})
	}
}
