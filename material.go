package lattice

// Material holds the colors a SceneObject is drawn with. Each channel is
// optional: a nil EdgeColor means "use the renderer's default edge color", a
// nil GradientColor means "stroke edges with a solid color", and a nil
// FillColor means "fill with the background (occlusion fill)" when depth
// sorting is active.
//
// The three values supplied at construction are retained so each channel can
// be reset independently without losing the others.
type Material struct {
	edgeColor     *Color
	gradientColor *Color
	fillColor     *Color

	originalEdge     *Color
	originalGradient *Color
	originalFill     *Color
}

// NewMaterial creates a material. Any argument may be nil; see the channel
// fallbacks documented on Material.
func NewMaterial(edge, gradient, fill *Color) *Material {
	return &Material{
		edgeColor:        copyColor(edge),
		gradientColor:    copyColor(gradient),
		fillColor:        copyColor(fill),
		originalEdge:     copyColor(edge),
		originalGradient: copyColor(gradient),
		originalFill:     copyColor(fill),
	}
}

// EdgeColor returns the current edge color, or nil for the renderer default.
func (m *Material) EdgeColor() *Color {
	return m.edgeColor
}

// SetEdgeColor replaces the current edge color. Nil restores the renderer
// default at draw time.
func (m *Material) SetEdgeColor(c *Color) {
	m.edgeColor = copyColor(c)
}

// GradientColor returns the current edge-gradient end color, or nil when
// edges are stroked with a solid color.
func (m *Material) GradientColor() *Color {
	return m.gradientColor
}

// SetGradientColor replaces the edge-gradient end color.
func (m *Material) SetGradientColor(c *Color) {
	m.gradientColor = copyColor(c)
}

// FillColor returns the current face fill color, or nil for occlusion fill.
func (m *Material) FillColor() *Color {
	return m.fillColor
}

// SetFillColor replaces the face fill color.
func (m *Material) SetFillColor(c *Color) {
	m.fillColor = copyColor(c)
}

// ResetEdgeColor restores the edge color supplied at construction.
func (m *Material) ResetEdgeColor() {
	m.edgeColor = copyColor(m.originalEdge)
}

// ResetGradientColor restores the gradient end color supplied at construction.
func (m *Material) ResetGradientColor() {
	m.gradientColor = copyColor(m.originalGradient)
}

// ResetFillColor restores the fill color supplied at construction.
func (m *Material) ResetFillColor() {
	m.fillColor = copyColor(m.originalFill)
}

// Reset restores all three channels to their construction values.
func (m *Material) Reset() {
	m.ResetEdgeColor()
	m.ResetGradientColor()
	m.ResetFillColor()
}

// copyColor clones an optional color so callers cannot mutate material state
// through a retained pointer.
func copyColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
