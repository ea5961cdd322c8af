package ink

import "github.com/inkraster/ink/internal/blend"

// BlendMode selects a Porter-Duff compositing operator.
type BlendMode = blend.Mode

// The twelve supported blend modes, re-exported from internal/blend so
// callers never import the internal package directly.
const (
	Clear   = blend.Clear
	Src     = blend.Src
	Dst     = blend.Dst
	SrcOver = blend.SrcOver
	DstOver = blend.DstOver
	SrcIn   = blend.SrcIn
	DstIn   = blend.DstIn
	SrcOut  = blend.SrcOut
	DstOut  = blend.DstOut
	SrcAtop = blend.SrcAtop
	DstAtop = blend.DstAtop
	Xor     = blend.Xor
)

// Paint bundles a fallback solid color, an optional Shader, and a blend
// mode. If Shader is non-nil and its setContext succeeds for the current
// draw, the shader produces source pixels; otherwise Color is used,
// converted to a Pixel once per row.
type Paint struct {
	Color     Color
	Shader    Shader
	BlendMode BlendMode
}

// NewPaint creates a solid-color paint with SrcOver blending.
func NewPaint(c Color) Paint {
	return Paint{Color: c, BlendMode: SrcOver}
}
