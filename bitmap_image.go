package ink

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// bitmapImageAdapter exposes a Bitmap as the standard image.Image and
// draw.Image interfaces. It's a separate type rather than methods on
// Bitmap itself because Bitmap.Bounds and Bitmap.At already have
// ink-native signatures (Rect and Pixel) used throughout the draw
// pipeline; stdlib interop goes through this adapter instead of
// overloading those methods.
type bitmapImageAdapter struct{ b *Bitmap }

var (
	_ image.Image = bitmapImageAdapter{}
	_ draw.Image  = bitmapImageAdapter{}
)

func (a bitmapImageAdapter) ColorModel() color.Model { return color.RGBAModel }

func (a bitmapImageAdapter) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.b.width, a.b.height)
}

func (a bitmapImageAdapter) At(x, y int) color.Color {
	p := a.b.At(x, y)
	return color.RGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}
}

func (a bitmapImageAdapter) Set(x, y int, c color.Color) {
	r, g, bl, al := c.RGBA()
	a.b.Set(x, y, PackARGB(uint8(al>>8), uint8(r>>8), uint8(g>>8), uint8(bl>>8)))
}

// AsImage adapts the bitmap to the standard image.Image interface for
// interop with the rest of the image ecosystem (encoders, x/image/draw).
func (b *Bitmap) AsImage() image.Image {
	return bitmapImageAdapter{b: b}
}

// AsDrawImage adapts the bitmap to draw.Image, allowing it as a
// destination for image/draw and x/image/draw operations.
func (b *Bitmap) AsDrawImage() draw.Image {
	return bitmapImageAdapter{b: b}
}

// FromImage copies img into a new Bitmap, converting every source pixel
// to ink's premultiplied Pixel representation.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	bm := NewBitmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			bm.Set(x, y, PackARGB(uint8(a>>8), uint8(r>>8), uint8(g>>8), uint8(bl>>8)))
		}
	}
	return bm
}

// ResizeBilinear returns a new Bitmap of the given dimensions, resampling
// src with golang.org/x/image/draw's bilinear scaler.
func ResizeBilinear(src *Bitmap, width, height int) *Bitmap {
	dst := NewBitmap(width, height)
	db := dst.AsDrawImage()
	xdraw.BiLinear.Scale(db, db.Bounds(), src.AsImage(), src.AsImage().Bounds(), xdraw.Over, nil)
	return dst
}
