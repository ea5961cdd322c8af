package ink

import "testing"

func TestBitmapSetAtRoundTrip(t *testing.T) {
	bm := NewBitmap(4, 4)
	p := PackARGB(255, 10, 20, 30)
	bm.Set(2, 1, p)
	if got := bm.At(2, 1); got != p {
		t.Errorf("At(2,1) = %#x, want %#x", uint32(got), uint32(p))
	}
}

func TestBitmapOutOfBoundsIsZero(t *testing.T) {
	bm := NewBitmap(2, 2)
	if bm.At(-1, 0) != 0 || bm.At(5, 0) != 0 || bm.At(0, -1) != 0 {
		t.Errorf("out-of-bounds reads should return zero")
	}
}

func TestBitmapClearSetsOpaqueHint(t *testing.T) {
	bm := NewBitmap(2, 2)
	bm.Clear(RGBA(1, 0, 0, 1))
	if !bm.IsOpaque() {
		t.Errorf("Clear with alpha=1 should set the opaque hint")
	}
	bm.Clear(RGBA(1, 0, 0, 0.5))
	if bm.IsOpaque() {
		t.Errorf("Clear with alpha<1 should clear the opaque hint")
	}
}

func TestBitmapRowAliasesStorage(t *testing.T) {
	bm := NewBitmap(3, 2)
	row := bm.Row(1)
	if len(row) != 3 {
		t.Fatalf("Row(1) length = %d, want 3", len(row))
	}
	row[0] = PackARGB(255, 1, 2, 3)
	if bm.At(0, 1) != PackARGB(255, 1, 2, 3) {
		t.Errorf("Row should alias underlying storage")
	}
}

func TestRepeatTileShiftByWidthIsIdentity(t *testing.T) {
	bm := NewBitmap(4, 1)
	for i := 0; i < 4; i++ {
		bm.Set(i, 0, PackARGB(255, uint8(i*50), 0, 0))
	}

	plain := NewBitmapShader(bm, Identity(), Repeat)
	shifted := NewBitmapShader(bm, Translate(-4, 0), Repeat) // shift by (w,0)
	plain.setContext(Identity())
	shifted.setContext(Identity())

	a := make([]Pixel, 4)
	b := make([]Pixel, 4)
	plain.shadeRow(0, 0, 4, a)
	shifted.shadeRow(0, 0, 4, b)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Repeat shift by width differs at %d: %#x vs %#x", i, uint32(a[i]), uint32(b[i]))
		}
	}
}

func TestMirrorTileShiftByTwoWidthIsIdentity(t *testing.T) {
	bm := NewBitmap(4, 1)
	for i := 0; i < 4; i++ {
		bm.Set(i, 0, PackARGB(255, uint8(i*50), 0, 0))
	}

	plain := NewBitmapShader(bm, Identity(), Mirror)
	shifted := NewBitmapShader(bm, Translate(-8, 0), Mirror) // shift by (2w,0)
	plain.setContext(Identity())
	shifted.setContext(Identity())

	a := make([]Pixel, 4)
	b := make([]Pixel, 4)
	plain.shadeRow(0, 0, 4, a)
	shifted.shadeRow(0, 0, 4, b)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Mirror shift by 2w differs at %d: %#x vs %#x", i, uint32(a[i]), uint32(b[i]))
		}
	}
}

func TestMirrorTileShiftByWidthIsHorizontalFlip(t *testing.T) {
	bm := NewBitmap(4, 1)
	for i := 0; i < 4; i++ {
		bm.Set(i, 0, PackARGB(255, uint8(i*50), 0, 0))
	}

	plain := NewBitmapShader(bm, Identity(), Mirror)
	shifted := NewBitmapShader(bm, Translate(-4, 0), Mirror) // shift by (w,0)
	plain.setContext(Identity())
	shifted.setContext(Identity())

	a := make([]Pixel, 4)
	b := make([]Pixel, 4)
	plain.shadeRow(0, 0, 4, a)
	shifted.shadeRow(0, 0, 4, b)
	for i := range a {
		if a[i] != b[3-i] {
			t.Errorf("Mirror shift by w should flip horizontally: a[%d]=%#x, b[%d]=%#x", i, uint32(a[i]), 3-i, uint32(b[3-i]))
		}
	}
}
