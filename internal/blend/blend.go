// Package blend implements the Porter-Duff compositing table used by the
// pixel pipeline. All operations work on premultiplied-alpha channel
// bytes (0-255), covering the twelve standard Porter-Duff operators.
package blend

// Mode selects a Porter-Duff compositing operator: Clear, Src, Dst,
// SrcOver, DstOver, SrcIn, DstIn, SrcOut, DstOut, SrcAtop, DstAtop, Xor.
type Mode uint8

const (
	Clear Mode = iota
	Src
	Dst
	SrcOver
	DstOver
	SrcIn
	DstIn
	SrcOut
	DstOut
	SrcAtop
	DstAtop
	Xor
)

// Func composites a source and destination channel quadruple (each
// premultiplied, 0-255) and returns the result.
type Func func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

var table = [...]Func{
	Clear:   clearFn,
	Src:     srcFn,
	Dst:     dstFn,
	SrcOver: srcOverFn,
	DstOver: dstOverFn,
	SrcIn:   srcInFn,
	DstIn:   dstInFn,
	SrcOut:  srcOutFn,
	DstOut:  dstOutFn,
	SrcAtop: srcAtopFn,
	DstAtop: dstAtopFn,
	Xor:     xorFn,
}

// Get returns the blend function for mode. Unknown modes fall back to
// SrcOver.
func Get(mode Mode) Func {
	if int(mode) < len(table) && table[mode] != nil {
		return table[mode]
	}
	return srcOverFn
}
