package meshing

// VertexLayout selects the per-vertex attributes a built mesh carries.
type VertexLayout int

const (
	// LayoutPosNormalColor is the canonical layout: position, face normal
	// and shaded color, 9 floats per vertex.
	LayoutPosNormalColor VertexLayout = iota
	// LayoutPosColor drops the normal for flat renderers, 6 floats per
	// vertex.
	LayoutPosColor
)

// Stride returns the number of float32 per vertex for the layout.
func (l VertexLayout) Stride() int {
	if l == LayoutPosColor {
		return 6
	}
	return 9
}

// Mesh is a triangle-list vertex buffer for one chunk. Vertices are not
// indexed: every quad contributes 6 vertices (two triangles sharing two
// corners), so the vertex count is always a multiple of 6.
type Mesh struct {
	Layout   VertexLayout
	Vertices []float32
}

// VertexCount returns the number of vertices in the buffer.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / m.Layout.Stride()
}

// QuadCount returns the number of emitted quads.
func (m Mesh) QuadCount() int {
	return m.VertexCount() / 6
}
