package ink

import (
	"math"
	"testing"
)

func TestSweepGradientStepwiseNeverOpaque(t *testing.T) {
	s := NewSweepGradient(Pt(0, 0), 0, []Color{Red, Green, Blue})
	if s.isOpaque() {
		t.Errorf("SweepGradient should never report opaque")
	}
}

func TestSweepGradientQuadrantSelection(t *testing.T) {
	s := NewSweepGradient(Pt(0, 0), 0, []Color{Red, Green, Blue, White})
	if !s.setContext(Identity()) {
		t.Fatalf("setContext failed")
	}
	// A pixel whose center is near the positive x-axis (theta ~ 0) should
	// land in the first stop's stepwise bucket.
	out := make([]Pixel, 1)
	s.shadeRow(9, 0, 1, out) // pixel center (9.5,0.5), just above the positive x-axis
	want := colorToPixel(Red)
	if out[0] != want {
		t.Errorf("sweep sample = %#x, want first stop %#x", uint32(out[0]), uint32(want))
	}
}

func TestLinearPosGradientIgnoresCTM(t *testing.T) {
	s := NewLinearPosGradient(Pt(0, 0), Pt(10, 0), []Color{Black, White}, []float64{0, 1})
	if !s.setContext(Translate(100, 0)) {
		t.Fatalf("setContext failed")
	}
	out := make([]Pixel, 1)
	s.shadeRow(0, 0, 1, out) // raw device x=0.5 used directly, CTM ignored
	want := colorToPixel(Black.Lerp(White, 0.05))
	if out[0] != want {
		t.Errorf("LinearPosGradient sample = %#x, want %#x (CTM should be ignored)", uint32(out[0]), uint32(want))
	}
}

func TestDegenerateGradientFactoriesReturnNilShader(t *testing.T) {
	if s := NewLinearGradient(Pt(0, 0), Pt(1, 0), nil, Clamp); s != nil {
		t.Errorf("NewLinearGradient with no colors = %v, want nil", s)
	}
	if s := NewSweepGradient(Pt(0, 0), 0, nil); s != nil {
		t.Errorf("NewSweepGradient with no colors = %v, want nil", s)
	}
	if s := NewLinearPosGradient(Pt(0, 0), Pt(1, 0), nil, nil); s != nil {
		t.Errorf("NewLinearPosGradient with no colors = %v, want nil", s)
	}
}

func TestPaintToleratesNilShaderFromDegenerateGradient(t *testing.T) {
	c := NewCanvas(4, 4)
	paint := Paint{Color: Red, Shader: NewLinearGradient(Pt(0, 0), Pt(1, 0), nil, Clamp), BlendMode: SrcOver}
	// Must not panic, and must fall back to the paint's solid color since
	// the shader is nil.
	c.DrawRect(LTRB(0, 0, 4, 4), paint)
	if got := c.Bitmap().At(0, 0); got != colorToPixel(Red) {
		t.Errorf("DrawRect with nil shader = %#x, want solid Red %#x", uint32(got), uint32(colorToPixel(Red)))
	}
}

func TestLinearPosGradientBinarySearchInterpolation(t *testing.T) {
	s := NewLinearPosGradient(Pt(0, 0), Pt(10, 0), []Color{Red, Green, Blue}, []float64{0, 0.5, 1}).(*LinearPosGradient)
	s.setContext(Identity())
	mid := s.colorAt(0.25)
	want := Red.Lerp(Green, 0.5)
	if !almostEqual(mid.R, want.R, 1e-9) || !almostEqual(mid.G, want.G, 1e-9) {
		t.Errorf("colorAt(0.25) = %v, want %v", mid, want)
	}
}

func TestTriColorShaderBarycentricVertices(t *testing.T) {
	s := NewTriColorShader(Pt(0, 0), Pt(10, 0), Pt(0, 10), Red, Green, Blue)
	if !s.setContext(Identity()) {
		t.Fatalf("setContext failed")
	}
	out := make([]Pixel, 1)
	// Pixel center very near vertex p0=(0,0) should shade close to Red.
	s.shadeRow(0, 0, 1, out)
	got := out[0]
	if got.R() < 200 || got.G() > 60 || got.B() > 60 {
		t.Errorf("near p0 should be close to red, got %#x", uint32(got))
	}
}

func TestTriColorOpaqueRequiresAllStopsOpaque(t *testing.T) {
	opaque := NewTriColorShader(Pt(0, 0), Pt(1, 0), Pt(0, 1), Red, Green, Blue)
	if !opaque.isOpaque() {
		t.Errorf("all-opaque tri-color should report opaque")
	}
	transparent := NewTriColorShader(Pt(0, 0), Pt(1, 0), Pt(0, 1), Red, RGBA(0, 1, 0, 0.5), Blue)
	if transparent.isOpaque() {
		t.Errorf("tri-color with a non-opaque stop should not report opaque")
	}
}

func TestProxyShaderComposesExtraTransform(t *testing.T) {
	inner := NewLinearGradient(Pt(0, 0), Pt(1, 0), []Color{Black, White}, Clamp)
	proxy := NewProxyShader(inner, Scale(10, 10))
	if !proxy.setContext(Identity()) {
		t.Fatalf("setContext failed")
	}
	direct := NewLinearGradient(Pt(0, 0), Pt(1, 0), []Color{Black, White}, Clamp)
	direct.setContext(Scale(10, 10))

	outProxy := make([]Pixel, 1)
	outDirect := make([]Pixel, 1)
	proxy.shadeRow(3, 0, 1, outProxy)
	direct.shadeRow(3, 0, 1, outDirect)
	if outProxy[0] != outDirect[0] {
		t.Errorf("proxy shader = %#x, want %#x matching inner.setContext(ctm.extra)", uint32(outProxy[0]), uint32(outDirect[0]))
	}
}

func TestCompositeShaderMultipliesChannels(t *testing.T) {
	s1 := constShader{p: PackARGB(255, 255, 0, 0)}
	s2 := constShader{p: PackARGB(128, 128, 128, 128)}
	c := NewCompositeShader(s1, s2)
	c.setContext(Identity())
	out := make([]Pixel, 1)
	c.shadeRow(0, 0, 1, out)
	wantA := mulChannel(255, 128)
	wantR := mulChannel(255, 128)
	if out[0].A() != wantA || out[0].R() != wantR {
		t.Errorf("composite = %#x, want A=%d R=%d", uint32(out[0]), wantA, wantR)
	}
}

func TestColorMatrixShaderNeverOpaque(t *testing.T) {
	inner := constShader{p: PackARGB(255, 255, 255, 255)}
	var m [20]float64
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1 // identity color matrix
	cm := NewColorMatrixShader(m, inner)
	if cm.isOpaque() {
		t.Errorf("ColorMatrixShader should never report opaque")
	}
}

func TestColorMatrixIdentityPreservesChannels(t *testing.T) {
	inner := constShader{p: PackARGB(200, 100, 50, 25)}
	var m [20]float64
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	cm := NewColorMatrixShader(m, inner)
	cm.setContext(Identity())
	out := make([]Pixel, 1)
	cm.shadeRow(0, 0, 1, out)
	if math.Abs(float64(out[0].A())-200) > 1 {
		t.Errorf("identity color matrix changed alpha: got %d, want ~200", out[0].A())
	}
}

// constShader is a test-only Shader that always shades the same pixel.
type constShader struct{ p Pixel }

func (c constShader) isOpaque() bool                 { return c.p.A() == 255 }
func (c constShader) setContext(Matrix) bool         { return true }
func (c constShader) shadeRow(_, _, n int, out []Pixel) {
	for i := 0; i < n; i++ {
		out[i] = c.p
	}
}
