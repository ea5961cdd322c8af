package ink

// basisMatrix returns the affine mapping (0,0)->p0, (1,0)->p1, (0,1)->p2,
// the basis matrix of a triangle. It is shared by TriColorShader
// (barycentric interpolation) and DrawMesh/DrawQuad's texture-coordinate
// mapping.
func basisMatrix(p0, p1, p2 Point) Matrix {
	return Matrix{
		A: p1.X - p0.X, C: p2.X - p0.X, E: p0.X,
		B: p1.Y - p0.Y, D: p2.Y - p0.Y, F: p0.Y,
	}
}
