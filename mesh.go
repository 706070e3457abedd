package lattice

// Mesh is an immutable polygonal mesh: an ordered vertex list plus an
// ordered list of faces. Each face is an ordered list of indices (3 or more)
// into the vertex list; winding order determines the face normal via the
// first three vertices.
//
// A Mesh is built once (by the obj/gltf loaders or by hand) and shared
// read-only by any number of SceneObjects.
type Mesh struct {
	vertices []Vec3
	faces    [][]int
}

// NewMesh creates a mesh from the given vertices and faces. Both inputs are
// deep-copied. Faces with fewer than 3 indices, or with any index outside
// the vertex list, are dropped: every face in a built Mesh is safe to
// project without bounds checks on the hot path.
func NewMesh(vertices []Vec3, faces [][]int) *Mesh {
	m := &Mesh{
		vertices: make([]Vec3, len(vertices)),
		faces:    make([][]int, 0, len(faces)),
	}
	copy(m.vertices, vertices)
	for _, f := range faces {
		if len(f) < 3 || !indicesInRange(f, len(vertices)) {
			continue
		}
		face := make([]int, len(f))
		copy(face, f)
		m.faces = append(m.faces, face)
	}
	return m
}

func indicesInRange(face []int, vertexCount int) bool {
	for _, idx := range face {
		if idx < 0 || idx >= vertexCount {
			return false
		}
	}
	return true
}

// Vertices returns the vertex list. The returned slice MUST NOT be mutated.
func (m *Mesh) Vertices() []Vec3 {
	return m.vertices
}

// Faces returns the face index lists. The returned slices MUST NOT be mutated.
func (m *Mesh) Faces() [][]int {
	return m.faces
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.faces)
}

// NewCubeMesh creates an axis-aligned cube centered at the origin with the
// given edge length. Faces wind outward.
func NewCubeMesh(size float64) *Mesh {
	h := size / 2
	vertices := []Vec3{
		{-h, -h, -h}, // 0
		{h, -h, -h},  // 1
		{h, h, -h},   // 2
		{-h, h, -h},  // 3
		{-h, -h, h},  // 4
		{h, -h, h},   // 5
		{h, h, h},    // 6
		{-h, h, h},   // 7
	}
	faces := [][]int{
		{3, 2, 1, 0}, // back
		{6, 7, 4, 5}, // front
		{7, 3, 0, 4}, // left
		{2, 6, 5, 1}, // right
		{7, 6, 2, 3}, // top
		{0, 1, 5, 4}, // bottom
	}
	return NewMesh(vertices, faces)
}

// NewPlaneMesh creates a flat grid on the XZ plane centered at the origin,
// spanning size x size world units and subdivided into segments x segments
// quads. Useful for floors and terrain-like wave demos.
func NewPlaneMesh(size float64, segments int) *Mesh {
	if segments < 1 {
		segments = 1
	}
	step := size / float64(segments)
	half := size / 2

	vcols := segments + 1
	vertices := make([]Vec3, 0, vcols*vcols)
	for r := 0; r < vcols; r++ {
		for c := 0; c < vcols; c++ {
			vertices = append(vertices, Vec3{
				X: -half + float64(c)*step,
				Z: -half + float64(r)*step,
			})
		}
	}

	faces := make([][]int, 0, segments*segments)
	for r := 0; r < segments; r++ {
		for c := 0; c < segments; c++ {
			tl := r*vcols + c
			tr := tl + 1
			bl := (r+1)*vcols + c
			br := bl + 1
			// Wound so the face normal points up (+Y).
			faces = append(faces, []int{tl, bl, br, tr})
		}
	}
	return NewMesh(vertices, faces)
}
