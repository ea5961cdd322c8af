package ink

import "math"

// Shader is the per-row pixel source a Paint may carry. It is a sealed
// interface — only the built-in shaders in this package implement it —
// since a shader's setContext/shadeRow contract depends on internal
// invariants (an already-inverted effective matrix) that an external
// implementation could not safely uphold.
type Shader interface {
	// isOpaque hints that every pixel shadeRow produces has alpha 255.
	isOpaque() bool

	// setContext is called once before any shadeRow call for the current
	// draw, receiving the canvas's CTM. It returns false iff the shader's
	// effective matrix is non-invertible, aborting the draw for this
	// shader (the caller falls back to the paint's solid color).
	setContext(ctm Matrix) bool

	// shadeRow writes count premultiplied pixels into out, for device
	// pixel centers (x+0.5,y+0.5) .. (x+count-0.5,y+0.5).
	shadeRow(x, y, count int, out []Pixel)
}

// TileMode selects how a shader maps coordinates outside its native
// [0,1]^2 (or bitmap bounds) domain.
type TileMode int

const (
	Clamp TileMode = iota
	Repeat
	Mirror
)

// tileUnit applies a tile mode to a gradient parameter t, already in
// "multiples of the unit interval" space.
func tileUnit(mode TileMode, t float64) float64 {
	switch mode {
	case Repeat:
		return t - math.Floor(t)
	case Mirror:
		u := math.Abs(math.Mod(t, 2))
		if u > 1 {
			return 2 - u
		}
		return u
	default: // Clamp
		return clamp01(t)
	}
}

// tileInt applies a tile mode to an integer bitmap coordinate in [0, n),
// matching BitmapShader's tiling rules.
func tileInt(mode TileMode, v, n int) int {
	switch mode {
	case Repeat:
		v %= n
		if v < 0 {
			v += n
		}
		return v
	case Mirror:
		period := 2 * n
		v %= period
		if v < 0 {
			v += period
		}
		if v >= n {
			return period - v - 1
		}
		return v
	default: // Clamp
		if v < 0 {
			return 0
		}
		if v >= n {
			return n - 1
		}
		return v
	}
}

// copyColors defensively copies a color slice at shader construction, so
// the shader never aliases caller-owned storage. Callers are expected to
// reject an empty slice themselves (a degenerate gradient request returns
// a nil Shader instead); the empty-slice branch here is a defensive
// fallback for this helper's internal use.
func copyColors(colors []Color) []Color {
	if len(colors) == 0 {
		return []Color{Black, Black}
	}
	if len(colors) == 1 {
		return []Color{colors[0], colors[0]}
	}
	out := make([]Color, len(colors))
	copy(out, colors)
	return out
}

// lerpColors locates the segment for t in [0,1] across n evenly spaced
// stops and linearly interpolates between them.
func lerpColors(colors []Color, t float64) Color {
	n := len(colors)
	scaled := t * float64(n-1)
	i := int(scaled)
	if i < 0 {
		i = 0
	}
	if i >= n-1 {
		return colors[n-1]
	}
	frac := scaled - float64(i)
	return colors[i].Lerp(colors[i+1], frac)
}
