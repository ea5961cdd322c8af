package ink

import "math"

// Verb identifies a path segment kind.
type Verb uint8

const (
	// MoveVerb begins a new contour at a point.
	MoveVerb Verb = iota
	// LineVerb draws a straight line to a point.
	LineVerb
	// QuadVerb draws a quadratic Bezier (one control point) to a point.
	QuadVerb
	// CubicVerb draws a cubic Bezier (two control points) to a point.
	CubicVerb
)

// Direction selects winding direction for path-builder convenience shapes.
type Direction int

const (
	CW Direction = iota
	CCW
)

// Path is an immutable, ordered sequence of verbs over a shared point
// array, produced by [PathBuilder.Detach]. Every contour begins with a
// Move verb.
type Path struct {
	verbs []Verb
	pts   []Point
}

// Verbs returns the path's verb sequence. Path does not export the points
// each verb consumes, so this gives the verb kinds only, not their control
// points; Edger is the iterator that reads the points, and it yields a
// flattened, line-segment-only view.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// pointsIter walks the point array alongside Verbs(), handing back the
// points consumed by each verb (not including the "current point" carried
// over from the previous verb).
type pointsIter struct {
	pts []Point
	i   int
}

func (it *pointsIter) take(n int) []Point {
	s := it.pts[it.i : it.i+n]
	it.i += n
	return s
}

// Bounds returns the path's exact tight bounding rectangle, including
// interior curve extrema.
func (p *Path) Bounds() Rect {
	if len(p.pts) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	var current Point
	it := pointsIter{pts: p.pts}
	for _, v := range p.verbs {
		switch v {
		case MoveVerb:
			pt := it.take(1)[0]
			current = pt
			expand(pt.X, &minX, &maxX)
			expand(pt.Y, &minY, &maxY)
		case LineVerb:
			pt := it.take(1)[0]
			expand(pt.X, &minX, &maxX)
			expand(pt.Y, &minY, &maxY)
			current = pt
		case QuadVerb:
			cp := it.take(2)
			expandQuadBounds(current, cp[0], cp[1], &minX, &minY, &maxX, &maxY)
			current = cp[1]
		case CubicVerb:
			cp := it.take(3)
			expandCubicBounds(current, cp[0], cp[1], cp[2], &minX, &minY, &maxX, &maxY)
			current = cp[2]
		}
	}
	return Rect{Left: minX, Top: minY, Right: maxX, Bottom: maxY}
}

// LineSegment is a single line produced by [Path.Edger].
type LineSegment struct {
	P0, P1 Point
}

// Edger iterates a Path's contours as line segments only: curves are
// flattened (see curve.go) and each contour is automatically closed with a
// synthesized line back to its start. Zero-length edges are skipped.
type Edger struct {
	verbs       []Verb
	pts         []Point
	vi, pi      int
	current     Point
	subStart    Point
	haveSubpath bool
	queue       []Point
}

// Edger returns a fresh line-segment iterator over the path.
func (p *Path) Edger() *Edger {
	return &Edger{verbs: p.verbs, pts: p.pts}
}

// Next returns the next line segment, or false when iteration is
// complete.
func (e *Edger) Next() (LineSegment, bool) {
	for {
		if len(e.queue) > 0 {
			p1 := e.queue[0]
			e.queue = e.queue[1:]
			p0 := e.current
			e.current = p1
			if p0 == p1 {
				continue
			}
			return LineSegment{P0: p0, P1: p1}, true
		}

		if e.vi >= len(e.verbs) {
			if e.haveSubpath {
				e.haveSubpath = false
				p0, p1 := e.current, e.subStart
				e.current = p1
				if p0 != p1 {
					return LineSegment{P0: p0, P1: p1}, true
				}
			}
			return LineSegment{}, false
		}

		v := e.verbs[e.vi]

		if v == MoveVerb && e.haveSubpath {
			// Close the open subpath before consuming this Move.
			p0, p1 := e.current, e.subStart
			e.haveSubpath = false
			e.current = p1
			if p0 != p1 {
				return LineSegment{P0: p0, P1: p1}, true
			}
			continue
		}

		e.vi++
		switch v {
		case MoveVerb:
			p := e.pts[e.pi]
			e.pi++
			e.current = p
			e.subStart = p
			e.haveSubpath = true

		case LineVerb:
			p := e.pts[e.pi]
			e.pi++
			p0 := e.current
			e.current = p
			if p0 == p {
				continue
			}
			return LineSegment{P0: p0, P1: p}, true

		case QuadVerb:
			c, p := e.pts[e.pi], e.pts[e.pi+1]
			e.pi += 2
			p0 := e.current
			flat := flattenQuad(p0, c, p, nil, 0)
			if len(flat) == 0 {
				continue
			}
			e.current = flat[0]
			e.queue = append(e.queue, flat[1:]...)
			if p0 == e.current {
				continue
			}
			return LineSegment{P0: p0, P1: e.current}, true

		case CubicVerb:
			c1, c2, p := e.pts[e.pi], e.pts[e.pi+1], e.pts[e.pi+2]
			e.pi += 3
			p0 := e.current
			flat := flattenCubic(p0, c1, c2, p, nil, 0)
			if len(flat) == 0 {
				continue
			}
			e.current = flat[0]
			e.queue = append(e.queue, flat[1:]...)
			if p0 == e.current {
				continue
			}
			return LineSegment{P0: p0, P1: e.current}, true
		}
	}
}

// PathBuilder accumulates verbs and points for a Path under construction.
type PathBuilder struct {
	verbs   []Verb
	pts     []Point
	current Point
	hasAny  bool
}

// NewPathBuilder creates an empty path builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

// MoveTo starts a new contour at p.
func (b *PathBuilder) MoveTo(p Point) *PathBuilder {
	b.verbs = append(b.verbs, MoveVerb)
	b.pts = append(b.pts, p)
	b.current = p
	b.hasAny = true
	return b
}

// LineTo appends a line from the current point to p.
func (b *PathBuilder) LineTo(p Point) *PathBuilder {
	b.ensureStarted()
	b.verbs = append(b.verbs, LineVerb)
	b.pts = append(b.pts, p)
	b.current = p
	return b
}

// QuadTo appends a quadratic Bezier with control point c ending at p.
func (b *PathBuilder) QuadTo(c, p Point) *PathBuilder {
	b.ensureStarted()
	b.verbs = append(b.verbs, QuadVerb)
	b.pts = append(b.pts, c, p)
	b.current = p
	return b
}

// CubicTo appends a cubic Bezier with control points c1,c2 ending at p.
func (b *PathBuilder) CubicTo(c1, c2, p Point) *PathBuilder {
	b.ensureStarted()
	b.verbs = append(b.verbs, CubicVerb)
	b.pts = append(b.pts, c1, c2, p)
	b.current = p
	return b
}

func (b *PathBuilder) ensureStarted() {
	if !b.hasAny {
		b.MoveTo(Point{})
	}
}

// AddRect adds a closed rectangle contour in the given winding direction.
func (b *PathBuilder) AddRect(r Rect, dir Direction) *PathBuilder {
	c := r.Corners()
	if dir == CW {
		b.MoveTo(c[0]).LineTo(c[1]).LineTo(c[2]).LineTo(c[3]).LineTo(c[0])
	} else {
		b.MoveTo(c[0]).LineTo(c[3]).LineTo(c[2]).LineTo(c[1]).LineTo(c[0])
	}
	return b
}

// AddPolygon adds a contour through pts (not auto-closed; callers relying
// on the fill engine get an implicit close from Edger).
func (b *PathBuilder) AddPolygon(pts []Point) *PathBuilder {
	if len(pts) == 0 {
		return b
	}
	b.MoveTo(pts[0])
	for _, p := range pts[1:] {
		b.LineTo(p)
	}
	return b
}

// ctrlPointOffset is tan(pi/8), the control-point offset used for the
// 8-arc quadratic circle approximation.
const ctrlPointOffset = 0.41421356

// AddCircle adds a circle of the given radius centered at center,
// approximated by eight quadratic arcs.
func (b *PathBuilder) AddCircle(center Point, radius float64, dir Direction) *PathBuilder {
	const diag = 0.70710678 // sqrt(2)/2
	unit := [16]Point{
		{1, 0}, {1, ctrlPointOffset},
		{diag, diag}, {ctrlPointOffset, 1},
		{0, 1}, {-ctrlPointOffset, 1},
		{-diag, diag}, {-1, ctrlPointOffset},
		{-1, 0}, {-1, -ctrlPointOffset},
		{-diag, -diag}, {-ctrlPointOffset, -1},
		{0, -1}, {ctrlPointOffset, -1},
		{diag, -diag}, {1, -ctrlPointOffset},
	}
	m := Concat(Translate(center.X, center.Y), Scale(radius, radius))
	var pts [16]Point
	m.MapPoints(pts[:], unit[:])

	b.MoveTo(pts[0])
	if dir == CW {
		for i := 0; i < 16; i += 2 {
			b.QuadTo(pts[i+1], pts[(i+2)%16])
		}
	} else {
		for i := 16; i > 0; i -= 2 {
			b.QuadTo(pts[i-1], pts[(i-2+16)%16])
		}
	}
	return b
}

// Detach finalizes the builder into an immutable Path.
func (b *PathBuilder) Detach() *Path {
	return &Path{verbs: b.verbs, pts: b.pts}
}
