package ink

// ProxyShader composes an inner shader with an extra matrix applied
// before the CTM. DrawMesh uses this to map a shader defined in one
// triangle's local space into another's (e.g. texture space into device
// space via P·T⁻¹).
type ProxyShader struct {
	inner Shader
	extra Matrix
}

// NewProxyShader constructs a proxy shader over inner with the given
// extra transform.
func NewProxyShader(inner Shader, extra Matrix) *ProxyShader {
	return &ProxyShader{inner: inner, extra: extra}
}

func (s *ProxyShader) isOpaque() bool { return s.inner.isOpaque() }

func (s *ProxyShader) setContext(ctm Matrix) bool {
	return s.inner.setContext(Concat(ctm, s.extra))
}

func (s *ProxyShader) shadeRow(x, y, count int, out []Pixel) {
	s.inner.shadeRow(x, y, count, out)
}
