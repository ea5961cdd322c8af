package rasterfill

import "sort"

// Span is a single filled run on one device scanline, with X1 exclusive.
type Span struct {
	Y, X0, X1 int
}

type crossing struct {
	x float64
	w int8
}

// Fill walks every scanline in [yMin, yMax) (both already clipped to the
// destination's device bounds by the caller), accumulates the
// winding-number of the active edges left-to-right, and calls emit for
// each maximal run where the winding number is nonzero, clipped to
// [0, width). This implements the non-zero winding fill rule; edges are
// not required to be pre-sorted.
func Fill(edges []Edge, yMin, yMax, width int, emit func(Span)) {
	if width <= 0 || yMin >= yMax {
		return
	}

	var active []Edge
	xs := make([]crossing, 0, 16)

	for y := yMin; y < yMax; y++ {
		active = active[:0]
		for _, e := range edges {
			if e.ActiveAt(y) {
				active = append(active, e)
			}
		}
		if len(active) == 0 {
			continue
		}

		fy := float64(y) + 0.5
		xs = xs[:0]
		for _, e := range active {
			xs = append(xs, crossing{x: e.XAtY(fy), w: e.Winding})
		}
		sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })

		winding := 0
		spanStart := 0.0
		inSpan := false
		for _, c := range xs {
			wasZero := winding == 0
			winding += int(c.w)
			nowZero := winding == 0

			if wasZero && !nowZero {
				spanStart = c.x
				inSpan = true
			} else if inSpan && nowZero {
				emitSpan(y, spanStart, c.x, width, emit)
				inSpan = false
			}
		}
	}
}

func emitSpan(y int, x0, x1 float64, width int, emit func(Span)) {
	l := roundToInt(x0)
	r := roundToInt(x1)
	if l < 0 {
		l = 0
	}
	if r > width {
		r = width
	}
	if l < r {
		emit(Span{Y: y, X0: l, X1: r})
	}
}
