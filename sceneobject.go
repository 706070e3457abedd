package lattice

// SceneObject binds a shared Mesh to an exclusively owned Transform and a
// replaceable Material. It is the unit the Scene stores and the Camera
// projects.
type SceneObject struct {
	mesh      *Mesh
	transform *Transform
	material  *Material

	// Visible objects are projected and drawn; invisible objects keep their
	// scene id but are skipped during projection.
	Visible bool

	worldVerts []Vec3
	worldValid bool
}

// NewSceneObject creates a visible scene object with a fresh identity
// transform. material may be nil, in which case an all-default Material is
// created.
func NewSceneObject(mesh *Mesh, material *Material) *SceneObject {
	if material == nil {
		material = NewMaterial(nil, nil, nil)
	}
	return &SceneObject{
		mesh:      mesh,
		transform: NewTransform(),
		material:  material,
		Visible:   true,
	}
}

// Mesh returns the mesh this object renders.
func (o *SceneObject) Mesh() *Mesh {
	return o.mesh
}

// Transform returns the object's transform. The object owns it exclusively;
// mutations through its setters invalidate the cached world vertices.
func (o *SceneObject) Transform() *Transform {
	return o.transform
}

// Material returns the current material.
func (o *SceneObject) Material() *Material {
	return o.material
}

// SetMaterial replaces the material wholesale. Assigning a new Material is
// the only way to swap the object's color state as a unit.
func (o *SceneObject) SetMaterial(m *Material) {
	if m == nil {
		m = NewMaterial(nil, nil, nil)
	}
	o.material = m
}

// WorldVertices returns the mesh vertices transformed to world space
// (scale, rotate X/Y/Z, translate, per vertex). The result is computed
// lazily: it is cached in a reused buffer and recomputed only after the
// transform has been mutated. The returned slice MUST NOT be mutated and is
// only valid until the next call.
func (o *SceneObject) WorldVertices() []Vec3 {
	if o.transform.consumeDirty() {
		o.worldValid = false
	}
	if o.worldValid {
		return o.worldVerts
	}

	src := o.mesh.Vertices()
	if cap(o.worldVerts) < len(src) {
		o.worldVerts = make([]Vec3, len(src))
	}
	o.worldVerts = o.worldVerts[:len(src)]
	for i, v := range src {
		o.worldVerts[i] = o.transform.Apply(v)
	}
	o.worldValid = true
	return o.worldVerts
}
