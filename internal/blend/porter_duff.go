package blend

// The twelve Porter-Duff formulas, all in premultiplied 0-255 channels.
// mulDiv255 uses the correct "div by 255" rounding (a*b+127)/255 rather
// than the cheaper >>8 approximation; sums are saturated by addClamp.

func clearFn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return 0, 0, 0, 0
}

func srcFn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return sr, sg, sb, sa
}

func dstFn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return dr, dg, db, da
}

// srcOverFn: S + (1-Sa)*D, with fast paths for Sa==255 and Sa==0.
func srcOverFn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	if sa == 255 {
		return sr, sg, sb, sa
	}
	if sa == 0 {
		return dr, dg, db, da
	}
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// dstOverFn: D + (1-Da)*S — srcOverFn with source and destination swapped.
func dstOverFn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	r, g, b, a := srcOverFn(dr, dg, db, da, sr, sg, sb, sa)
	return r, g, b, a
}

func srcInFn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

func dstInFn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

func srcOutFn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

func dstOutFn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// srcAtopFn: Da*S + (1-Sa)*D, alpha unchanged (destination alpha).
func srcAtopFn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

// dstAtopFn: Sa*D + (1-Da)*S, alpha = source alpha.
func dstAtopFn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invDa := 255 - da
	return addClamp(mulDiv255(dr, sa), mulDiv255(sr, invDa)),
		addClamp(mulDiv255(dg, sa), mulDiv255(sg, invDa)),
		addClamp(mulDiv255(db, sa), mulDiv255(sb, invDa)),
		sa
}

func xorFn(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invSa := 255 - sa
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addClamp(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

// mulDiv255 computes round(a*b/255) via (a*b+127)/255.
func mulDiv255(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two channel values, clamping to 255.
func addClamp(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
