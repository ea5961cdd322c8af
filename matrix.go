package ink

import "math"

// Matrix is a 2x3 affine transform mapping (x,y) to
// (a*x + c*y + e, b*x + d*y + f): A,C,E is the first row, B,D,F the
// second.
type Matrix struct {
	A, C, E float64
	B, D, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate returns a translation by (x,y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: 0, E: x, B: 0, D: 1, F: y}
}

// Scale returns a scale by (sx,sy).
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, C: 0, E: 0, B: 0, D: sy, F: 0}
}

// Rotate returns a rotation by angle radians about the origin.
func Rotate(angle float64) Matrix {
	s, c := math.Sin(angle), math.Cos(angle)
	return Matrix{A: c, C: -s, E: 0, B: s, D: c, F: 0}
}

// Concat returns a·b: b is applied first, then a.
func Concat(a, b Matrix) Matrix {
	return Matrix{
		A: a.A*b.A + a.C*b.B,
		C: a.A*b.C + a.C*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		B: a.B*b.A + a.D*b.B,
		D: a.B*b.C + a.D*b.D,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Mul returns m·other (equivalent to Concat(m, other)).
func (m Matrix) Mul(other Matrix) Matrix {
	return Concat(m, other)
}

// MapPoint transforms a single point.
func (m Matrix) MapPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// MapPoints transforms dst[i] = m.MapPoint(src[i]) for matching lengths.
// src and dst may be the same slice.
func (m Matrix) MapPoints(dst, src []Point) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = m.MapPoint(src[i])
	}
}

// Determinant returns a*d - b*c.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse of m and true, or the zero Matrix and false
// if m's determinant is exactly zero.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, false
	}
	invDet := 1.0 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	e := -(a*m.E + c*m.F)
	f := -(b*m.E + d*m.F)
	return Matrix{A: a, C: c, E: e, B: b, D: d, F: f}, true
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
