package ink

import (
	"log/slog"
	"math"
	"sort"

	"github.com/inkraster/ink/internal/blend"
	"github.com/inkraster/ink/internal/rasterfill"
)

// Canvas is the rasterizer's draw surface: a pixel destination, a
// transform stack, and the scanline fill/blit pipeline that turns paths,
// polygons and meshes into pixels.
//
// A Canvas is single-threaded cooperative: its transform stack and
// target bitmap belong to one logical goroutine for the duration of any
// draw call.
type Canvas struct {
	bitmap *Bitmap
	ctm    Matrix
	stack  []Matrix
	logger *slog.Logger
}

// NewCanvas creates a canvas targeting a fresh width x height bitmap,
// unless an Option supplies one.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	o := canvasOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	bm := o.bitmap
	if bm == nil {
		bm = NewBitmap(width, height)
	}
	logger := o.logger
	if logger == nil {
		logger = Logger()
	}
	return &Canvas{bitmap: bm, ctm: Identity(), logger: logger}
}

// Bitmap returns the canvas's target surface.
func (c *Canvas) Bitmap() *Bitmap { return c.bitmap }

// CTM returns the canvas's current transformation matrix.
func (c *Canvas) CTM() Matrix { return c.ctm }

// Save pushes the current CTM onto the stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.ctm)
}

// Restore pops the top of the stack into the CTM. Restoring an empty
// stack is a recoverable error: it is logged and otherwise ignored,
// leaving the CTM unchanged.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		c.logger.Warn("ink: restore called with empty transform stack")
		return
	}
	n := len(c.stack) - 1
	c.ctm = c.stack[n]
	c.stack = c.stack[:n]
}

// Concat right-multiplies the CTM by m: CTM <- CTM . m, so m acts in the
// canvas's current local space.
func (c *Canvas) Concat(m Matrix) {
	c.ctm = Concat(c.ctm, m)
}

// Clear writes colorToPixel(color) into every pixel of the device, with
// no blending.
func (c *Canvas) Clear(color Color) {
	c.bitmap.Clear(color)
}

// resolveShader establishes the paint's shader against ctm, returning nil
// if there is no shader or it fails to establish context; the draw then
// proceeds with the paint's solid color.
func resolveShader(paint Paint, ctm Matrix) Shader {
	if paint.Shader == nil {
		return nil
	}
	if !paint.Shader.setContext(ctm) {
		return nil
	}
	return paint.Shader
}

// blit shades or solid-fills count pixels starting at (x,y) and composites
// them into the bitmap via paint's blend mode.
func (c *Canvas) blit(x, y, count int, shader Shader, paint Paint) {
	if count <= 0 {
		return
	}
	row := c.bitmap.Row(y)
	if row == nil {
		return
	}
	if x < 0 {
		count += x
		x = 0
	}
	if x+count > len(row) {
		count = len(row) - x
	}
	if count <= 0 {
		return
	}

	src := make([]Pixel, count)
	if shader != nil {
		shader.shadeRow(x, y, count, src)
	} else {
		p := colorToPixel(paint.Color)
		for i := range src {
			src[i] = p
		}
	}

	fn := blend.Get(paint.BlendMode)
	for i := 0; i < count; i++ {
		s := src[i]
		d := row[x+i]
		r, g, b, a := fn(s.R(), s.G(), s.B(), s.A(), d.R(), d.G(), d.B(), d.A())
		row[x+i] = PackARGB(a, r, g, b)
	}
}

// DrawRect fills rect through the current CTM. If the CTM carries
// rotation or shear, this draws the transformed rectangle's axis-aligned
// bounding box, not the rotated shape — a deliberate fast path; callers
// needing a rotated rectangle must use DrawConvexPolygon.
func (c *Canvas) DrawRect(rect Rect, paint Paint) {
	corners := rect.Corners()
	var mapped [4]Point
	c.ctm.MapPoints(mapped[:], corners[:])

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range mapped {
		expand(p.X, &minX, &maxX)
		expand(p.Y, &minY, &maxY)
	}

	x0, x1 := clipRange(roundToInt(minX), roundToInt(maxX), c.bitmap.Width())
	y0, y1 := clipRange(roundToInt(minY), roundToInt(maxY), c.bitmap.Height())
	if x0 >= x1 || y0 >= y1 {
		return
	}

	shader := resolveShader(paint, c.ctm)
	for y := y0; y < y1; y++ {
		c.blit(x0, y, x1-x0, shader, paint)
	}
}

func clipRange(lo, hi, limit int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > limit {
		hi = limit
	}
	return lo, hi
}

// DrawConvexPolygon fills the convex polygon pts through the current CTM,
// using the canonical pairwise edge-crossing test: for each scanline
// within the device-clipped y bounds, edges are intersected at the row of
// pixel centers (y+0.5); exactly two edges cross (by the convexity
// assumption), giving the fill span's endpoints.
func (c *Canvas) DrawConvexPolygon(pts []Point, paint Paint) {
	n := len(pts)
	if n < 3 {
		return
	}
	mapped := make([]Point, n)
	c.ctm.MapPoints(mapped, pts)

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range mapped {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	y0, y1 := clipRange(roundToInt(minY), roundToInt(maxY), c.bitmap.Height())
	if y0 >= y1 {
		return
	}

	shader := resolveShader(paint, c.ctm)
	var xs []float64
	for y := y0; y < y1; y++ {
		fy := float64(y) + 0.5
		xs = xs[:0]
		for i := 0; i < n; i++ {
			a, b := mapped[i], mapped[(i+1)%n]
			if (a.Y <= fy && fy < b.Y) || (b.Y <= fy && fy < a.Y) {
				t := (fy - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		l := roundToInt(xs[0])
		r := roundToInt(xs[len(xs)-1])
		l2, r2 := clipRange(l, r, c.bitmap.Width())
		if l2 >= r2 {
			continue
		}
		c.blit(l2, y, r2-l2, shader, paint)
	}
}

// DrawPath fills path using the non-zero winding scanline algorithm.
// Edges are built in device space: Edger yields flattened, auto-closed
// line segments in the path's local space, and each segment's endpoints
// are mapped through the CTM at edge-construction time.
func (c *Canvas) DrawPath(path *Path, paint Paint) {
	edger := path.Edger()
	var edges []rasterfill.Edge
	minY, maxY := math.Inf(1), math.Inf(-1)
	for {
		seg, ok := edger.Next()
		if !ok {
			break
		}
		p0 := c.ctm.MapPoint(seg.P0)
		p1 := c.ctm.MapPoint(seg.P1)
		e, ok := rasterfill.NewEdge(toFillPoint(p0), toFillPoint(p1))
		if !ok {
			continue
		}
		edges = append(edges, e)
		if e.P0.Y < minY {
			minY = e.P0.Y
		}
		if e.P1.Y > maxY {
			maxY = e.P1.Y
		}
	}
	if len(edges) == 0 {
		return
	}

	y0, y1 := clipRange(roundToInt(minY), roundToInt(maxY), c.bitmap.Height())
	if y0 >= y1 {
		return
	}

	shader := resolveShader(paint, c.ctm)
	rasterfill.Fill(edges, y0, y1, c.bitmap.Width(), func(span rasterfill.Span) {
		c.blit(span.X0, span.Y, span.X1-span.X0, shader, paint)
	})
}

func toFillPoint(p Point) rasterfill.Point {
	return rasterfill.Point{X: p.X, Y: p.Y}
}

// Stroke is a declared-but-unimplemented hook: this rasterizer only
// fills. It always returns nil.
func (c *Canvas) Stroke(path *Path, width float64, paint Paint) *Path {
	return nil
}
