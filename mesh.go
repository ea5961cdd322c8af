package ink

// DrawMesh renders triCount triangles from verts/indices. For each
// triangle (i0,i1,i2):
//   - colors only: a TriColorShader for that triangle.
//   - texs only, with paint carrying a shader: ProxyShader mapping
//     texture space to device space via basis(verts)·basis(texs)^-1,
//     skipping triangles whose texture basis is non-invertible.
//   - both: a CompositeShader of the texture and color shaders, in that
//     order.
//
// Each triangle is rendered via DrawConvexPolygon.
func (c *Canvas) DrawMesh(verts []Point, colors []Color, texs []Point, triCount int, indices []int, paint Paint) {
	for t := 0; t < triCount; t++ {
		i0, i1, i2 := indices[3*t], indices[3*t+1], indices[3*t+2]
		p0, p1, p2 := verts[i0], verts[i1], verts[i2]

		var colorShader Shader
		if colors != nil {
			colorShader = NewTriColorShader(p0, p1, p2, colors[i0], colors[i1], colors[i2])
		}

		var texShader Shader
		if texs != nil && paint.Shader != nil {
			texBasis := basisMatrix(texs[i0], texs[i1], texs[i2])
			texInv, ok := texBasis.Invert()
			if !ok {
				continue
			}
			vertBasis := basisMatrix(p0, p1, p2)
			texShader = NewProxyShader(paint.Shader, Concat(vertBasis, texInv))
		}

		triPaint := paint
		switch {
		case texShader != nil && colorShader != nil:
			triPaint.Shader = NewCompositeShader(texShader, colorShader)
		case texShader != nil:
			triPaint.Shader = texShader
		case colorShader != nil:
			triPaint.Shader = colorShader
		}

		c.DrawConvexPolygon([]Point{p0, p1, p2}, triPaint)
	}
}

func bilerpPoint(v0, v1, v2, v3 Point, u, v float64) Point {
	iu, iv := 1-u, 1-v
	return Point{
		X: iu*iv*v0.X + u*iv*v1.X + u*v*v2.X + iu*v*v3.X,
		Y: iu*iv*v0.Y + u*iv*v1.Y + u*v*v2.Y + iu*v*v3.Y,
	}
}

func bilerpColor(c0, c1, c2, c3 Color, u, v float64) Color {
	iu, iv := 1-u, 1-v
	return Color{
		R: iu*iv*c0.R + u*iv*c1.R + u*v*c2.R + iu*v*c3.R,
		G: iu*iv*c0.G + u*iv*c1.G + u*v*c2.G + iu*v*c3.G,
		B: iu*iv*c0.B + u*iv*c1.B + u*v*c2.B + iu*v*c3.B,
		A: iu*iv*c0.A + u*iv*c1.A + u*v*c2.A + iu*v*c3.A,
	}
}

// DrawQuad subdivides the quadrilateral verts (ordered v0=(0,0), v1=(1,0),
// v2=(1,1), v3=(0,1)) into a (level+1)^2 grid by bilinear interpolation,
// applying the same interpolation to colors and texs when present, splits
// each grid cell into two triangles, and submits all of them in a single
// DrawMesh call.
func (c *Canvas) DrawQuad(verts [4]Point, colors []Color, texs []Point, level int, paint Paint) {
	if level < 0 {
		level = 0
	}
	steps := level + 1
	n := steps + 1

	gridPts := make([]Point, n*n)
	var gridColors []Color
	var gridTexs []Point
	if colors != nil {
		gridColors = make([]Color, n*n)
	}
	if texs != nil {
		gridTexs = make([]Point, n*n)
	}

	for j := 0; j < n; j++ {
		v := float64(j) / float64(steps)
		for i := 0; i < n; i++ {
			u := float64(i) / float64(steps)
			idx := j*n + i
			gridPts[idx] = bilerpPoint(verts[0], verts[1], verts[2], verts[3], u, v)
			if gridColors != nil {
				gridColors[idx] = bilerpColor(colors[0], colors[1], colors[2], colors[3], u, v)
			}
			if gridTexs != nil {
				gridTexs[idx] = bilerpPoint(texs[0], texs[1], texs[2], texs[3], u, v)
			}
		}
	}

	indices := make([]int, 0, steps*steps*6)
	for j := 0; j < steps; j++ {
		for i := 0; i < steps; i++ {
			a := j*n + i
			b := j*n + i + 1
			d := (j+1)*n + i
			cc := (j+1)*n + i + 1
			indices = append(indices, a, b, cc, a, cc, d)
		}
	}

	c.DrawMesh(gridPts, gridColors, gridTexs, steps*steps*2, indices, paint)
}
