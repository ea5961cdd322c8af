package ink

import "math"

// ChopQuadAt subdivides the quadratic Bezier (p0,p1,p2) at parameter t via
// de Casteljau's algorithm, returning the five control points of the two
// resulting sub-curves: dst[0:3] is the left half (p0, new control, mid),
// dst[2:5] is the right half (mid, new control, p2). dst[2] is shared.
func ChopQuadAt(p0, p1, p2 Point, t float64) [5]Point {
	ab := p0.Lerp(p1, t)
	bc := p1.Lerp(p2, t)
	abc := ab.Lerp(bc, t)
	return [5]Point{p0, ab, abc, bc, p2}
}

// ChopCubicAt subdivides the cubic Bezier (p0,p1,p2,p3) at parameter t,
// returning the seven control points of the two resulting sub-curves:
// dst[0:4] is the left half, dst[3:7] is the right half. dst[3] is shared.
func ChopCubicAt(p0, p1, p2, p3 Point, t float64) [7]Point {
	ab := p0.Lerp(p1, t)
	bc := p1.Lerp(p2, t)
	cd := p2.Lerp(p3, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	abcd := abc.Lerp(bcd, t)
	return [7]Point{p0, ab, abc, abcd, bcd, cd, p3}
}

// quadError estimates the flattening error of a quadratic segment: the
// perpendicular deviation of the control point from the chord, normalized
// by chord length.
func quadError(p0, p1, p2 Point) float64 {
	d := p2.Sub(p0)
	e := p1.Sub(p0)
	dl := d.Length()
	if dl == 0 {
		return e.Length()
	}
	return math.Abs(d.X*e.Y-d.Y*e.X) / dl
}

// cubicError estimates the flattening error of a cubic segment, analogous
// to quadError but summing the deviation of both control points.
func cubicError(p0, p1, p2, p3 Point) float64 {
	d := p3.Sub(p0)
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p1)
	dl := d.Length()
	if dl == 0 {
		return e1.Length() + e2.Length()
	}
	return (math.Abs(d.Y*e1.X-d.X*e1.Y) + math.Abs(d.Y*e2.X-d.X*e2.Y)) / dl
}

// flattenTolerance is the fixed quarter-pixel bisection tolerance; the
// recursion is unconditional bisection, no error-scaled step count.
const flattenTolerance = 0.25

// maxFlattenDepth bounds the bisection recursion, sized for quarter-pixel
// tolerance on typical bounded geometry.
const maxFlattenDepth = 16

// flattenQuad appends the line-segment endpoints approximating the
// quadratic (p0,p1,p2) to dst (p0 itself is not appended — callers already
// hold the current point).
func flattenQuad(p0, p1, p2 Point, dst []Point, depth int) []Point {
	if depth >= maxFlattenDepth || quadError(p0, p1, p2) <= flattenTolerance {
		return append(dst, p2)
	}
	q := ChopQuadAt(p0, p1, p2, 0.5)
	dst = flattenQuad(q[0], q[1], q[2], dst, depth+1)
	return flattenQuad(q[2], q[3], q[4], dst, depth+1)
}

// flattenCubic appends the line-segment endpoints approximating the cubic
// (p0,p1,p2,p3) to dst.
func flattenCubic(p0, p1, p2, p3 Point, dst []Point, depth int) []Point {
	if depth >= maxFlattenDepth || cubicError(p0, p1, p2, p3) <= flattenTolerance {
		return append(dst, p3)
	}
	q := ChopCubicAt(p0, p1, p2, p3, 0.5)
	dst = flattenCubic(q[0], q[1], q[2], q[3], dst, depth+1)
	return flattenCubic(q[3], q[4], q[5], q[6], dst, depth+1)
}

// solveQuadratic solves a*t^2+b*t+c=0, returning the real roots.
func solveQuadratic(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	if disc == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func cubicAt(a, b, c, d, t float64) float64 {
	mt := 1 - t
	return a*mt*mt*mt + 3*b*mt*mt*t + 3*c*mt*t*t + d*t*t*t
}

func quadAt(a, b, c, t float64) float64 {
	mt := 1 - t
	return a*mt*mt + 2*b*mt*t + c*t*t
}

// expandQuadBounds grows (minX,minY,maxX,maxY) to include the quadratic
// (p0,p1,p2)'s tight bounds: the endpoints plus the interior extremum at
// t = (p0-p1)/(p0-2p1+p2) when t is in (0,1).
func expandQuadBounds(p0, p1, p2 Point, minX, minY, maxX, maxY *float64) {
	expand(p0.X, minX, maxX)
	expand(p2.X, minX, maxX)
	expand(p0.Y, minY, maxY)
	expand(p2.Y, minY, maxY)

	if tx := (p0.X - p1.X) / (p0.X - 2*p1.X + p2.X); tx > 0 && tx < 1 {
		expand(quadAt(p0.X, p1.X, p2.X, tx), minX, maxX)
	}
	if ty := (p0.Y - p1.Y) / (p0.Y - 2*p1.Y + p2.Y); ty > 0 && ty < 1 {
		expand(quadAt(p0.Y, p1.Y, p2.Y, ty), minY, maxY)
	}
}

// expandCubicBounds grows (minX,minY,maxX,maxY) to include the cubic
// (p0,p1,p2,p3)'s tight bounds: the endpoints plus any interior extrema
// found by solving the derivative's quadratic.
func expandCubicBounds(p0, p1, p2, p3 Point, minX, minY, maxX, maxY *float64) {
	expand(p0.X, minX, maxX)
	expand(p3.X, minX, maxX)
	expand(p0.Y, minY, maxY)
	expand(p3.Y, minY, maxY)

	ax := -3*p0.X + 9*p1.X - 9*p2.X + 3*p3.X
	bx := 6*p0.X - 12*p1.X + 6*p2.X
	cx := -3*p0.X + 3*p1.X
	for _, t := range solveQuadratic(ax, bx, cx) {
		if t > 0 && t < 1 {
			expand(cubicAt(p0.X, p1.X, p2.X, p3.X, t), minX, maxX)
		}
	}

	ay := -3*p0.Y + 9*p1.Y - 9*p2.Y + 3*p3.Y
	by := 6*p0.Y - 12*p1.Y + 6*p2.Y
	cy := -3*p0.Y + 3*p1.Y
	for _, t := range solveQuadratic(ay, by, cy) {
		if t > 0 && t < 1 {
			expand(cubicAt(p0.Y, p1.Y, p2.Y, p3.Y, t), minY, maxY)
		}
	}
}

func expand(v float64, min, max *float64) {
	if v < *min {
		*min = v
	}
	if v > *max {
		*max = v
	}
}
