package lattice

import (
	"math"
	"testing"
)

func TestTransformDefaults(t *testing.T) {
	tr := NewTransform()
	assertVec3(t, "position", tr.Position(), Zero3())
	assertVec3(t, "rotation", tr.Rotation(), Zero3())
	assertVec3(t, "scale", tr.Scale(), One3())
}

func TestTransformApplyIdentity(t *testing.T) {
	tr := NewTransform()
	v := V3(1.25, -2.5, 3.75)
	assertVec3(t, "identity", tr.Apply(v), v)
}

func TestTransformApplyTranslate(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(V3(10, 20, 30))
	assertVec3(t, "translate", tr.Apply(V3(1, 2, 3)), V3(11, 22, 33))
}

func TestTransformApplyScale(t *testing.T) {
	tr := NewTransform()
	tr.SetScale(V3(2, 3, 4))
	assertVec3(t, "scale", tr.Apply(V3(1, 1, 1)), V3(2, 3, 4))
}

func TestTransformApplyOrder(t *testing.T) {
	// Scale before rotation: a +X point scaled by 2 then rotated a quarter
	// turn about Y lands on +Z at distance 2. Rotation-before-scale would
	// scale the Z axis instead.
	tr := NewTransform()
	tr.SetScale(V3(2, 1, 1))
	tr.SetRotation(V3(0, math.Pi/2, 0))
	assertVec3(t, "scale then rotate", tr.Apply(V3(1, 0, 0)), V3(0, 0, 2))

	// Translation is applied last, in world space.
	tr.SetPosition(V3(5, 0, 0))
	assertVec3(t, "then translate", tr.Apply(V3(1, 0, 0)), V3(5, 0, 2))
}

func TestTransformApplyAxisOrder(t *testing.T) {
	// X rotation runs before Y: +Y goes to +Z about X, then +Z goes to -X
	// about Y. The reverse order would leave the point on +Z.
	tr := NewTransform()
	tr.SetRotation(V3(math.Pi/2, math.Pi/2, 0))
	assertVec3(t, "x then y", tr.Apply(V3(0, 1, 0)), V3(-1, 0, 0))
}

func TestTransformMovers(t *testing.T) {
	tr := NewTransform()
	tr.Translate(V3(1, 0, 0))
	tr.Translate(V3(1, 2, 0))
	assertVec3(t, "Translate accumulates", tr.Position(), V3(2, 2, 0))

	tr.Rotate(V3(0.5, 0, 0))
	tr.Rotate(V3(0.25, 1, 0))
	assertVec3(t, "Rotate accumulates", tr.Rotation(), V3(0.75, 1, 0))
}

// --- dirty tracking ---

func TestTransformDirtyOnCreation(t *testing.T) {
	tr := NewTransform()
	if !tr.consumeDirty() {
		t.Error("new transform should start dirty")
	}
	if tr.consumeDirty() {
		t.Error("consumeDirty should reset the flag")
	}
}

func TestTransformDirtyOnMutation(t *testing.T) {
	tr := NewTransform()
	tr.consumeDirty()

	mutations := []struct {
		name string
		fn   func()
	}{
		{"SetPosition", func() { tr.SetPosition(V3(1, 0, 0)) }},
		{"Translate", func() { tr.Translate(V3(1, 0, 0)) }},
		{"SetRotation", func() { tr.SetRotation(V3(0, 1, 0)) }},
		{"Rotate", func() { tr.Rotate(V3(0, 1, 0)) }},
		{"SetScale", func() { tr.SetScale(V3(2, 2, 2)) }},
		{"MarkDirty", tr.MarkDirty},
	}
	for _, m := range mutations {
		m.fn()
		if !tr.consumeDirty() {
			t.Errorf("%s should mark the transform dirty", m.name)
		}
	}
}
