package lattice

// Transform aggregates an object's position, rotation, and scale.
// Rotation is Euler angles in radians, applied X then Y then Z when the
// transform is composed. Scale is per-axis.
//
// Fields are mutated only through the setter and mover methods below, which
// mark the transform dirty so owners (SceneObject, Camera) can invalidate
// cached derived data.
type Transform struct {
	position Vec3
	rotation Vec3
	scale    Vec3
	dirty    bool
}

// NewTransform creates a transform at the origin with no rotation and
// identity scale.
func NewTransform() *Transform {
	return &Transform{
		scale: One3(),
		dirty: true,
	}
}

// Position returns the current position.
func (t *Transform) Position() Vec3 {
	return t.position
}

// SetPosition replaces the position.
func (t *Transform) SetPosition(p Vec3) {
	t.position = p
	t.dirty = true
}

// Translate moves the position by delta.
func (t *Transform) Translate(delta Vec3) {
	t.position = t.position.Add(delta)
	t.dirty = true
}

// Rotation returns the current Euler rotation in radians.
func (t *Transform) Rotation() Vec3 {
	return t.rotation
}

// SetRotation replaces the Euler rotation (radians).
func (t *Transform) SetRotation(r Vec3) {
	t.rotation = r
	t.dirty = true
}

// Rotate adds delta to the Euler rotation (radians).
func (t *Transform) Rotate(delta Vec3) {
	t.rotation = t.rotation.Add(delta)
	t.dirty = true
}

// Scale returns the current per-axis scale.
func (t *Transform) Scale() Vec3 {
	return t.scale
}

// SetScale replaces the per-axis scale.
func (t *Transform) SetScale(s Vec3) {
	t.scale = s
	t.dirty = true
}

// Apply transforms a local-space vector to world space:
// scale, then rotate X, Y, Z, then translate. The axis order is fixed and
// must mirror the camera's inverse (Z, Y, X with negated angles).
func (t *Transform) Apply(v Vec3) Vec3 {
	return v.Mul(t.scale).
		RotatedX(t.rotation.X).
		RotatedY(t.rotation.Y).
		RotatedZ(t.rotation.Z).
		Add(t.position)
}

// MarkDirty forces owners to recompute cached data derived from this
// transform. Useful after bulk mutation through multiple setters.
func (t *Transform) MarkDirty() {
	t.dirty = true
}

// consumeDirty reports whether the transform changed since the last call and
// resets the flag.
func (t *Transform) consumeDirty() bool {
	d := t.dirty
	t.dirty = false
	return d
}
