package lattice

import "testing"

func TestSceneObjectDefaults(t *testing.T) {
	o := NewSceneObject(NewCubeMesh(1), nil)
	if !o.Visible {
		t.Error("new objects should be visible")
	}
	if o.Material() == nil {
		t.Fatal("nil material argument should produce a default material")
	}
	if o.Material().EdgeColor() != nil {
		t.Error("default material should have a nil edge color")
	}
}

func TestSetMaterialNilFallsBack(t *testing.T) {
	o := NewSceneObject(NewCubeMesh(1), nil)
	o.SetMaterial(nil)
	if o.Material() == nil {
		t.Error("SetMaterial(nil) should install a default material")
	}
}

// --- world vertex caching ---

func TestWorldVerticesIdentity(t *testing.T) {
	mesh := NewMesh([]Vec3{{1, 2, 3}}, nil)
	o := NewSceneObject(mesh, nil)
	assertVec3(t, "identity world", o.WorldVertices()[0], V3(1, 2, 3))
}

func TestWorldVerticesFollowTransform(t *testing.T) {
	mesh := NewMesh([]Vec3{{1, 0, 0}}, nil)
	o := NewSceneObject(mesh, nil)

	o.Transform().SetPosition(V3(0, 5, 0))
	assertVec3(t, "translated", o.WorldVertices()[0], V3(1, 5, 0))

	o.Transform().SetScale(V3(3, 1, 1))
	assertVec3(t, "scaled", o.WorldVertices()[0], V3(3, 5, 0))
}

func TestWorldVerticesCachedUntilDirty(t *testing.T) {
	mesh := NewMesh([]Vec3{{1, 0, 0}}, nil)
	o := NewSceneObject(mesh, nil)

	first := o.WorldVertices()
	second := o.WorldVertices()
	if &first[0] != &second[0] {
		t.Error("clean transform should reuse the cached buffer")
	}

	// A mutation invalidates the cache and the values recompute.
	o.Transform().Translate(V3(0, 0, 7))
	assertVec3(t, "recomputed", o.WorldVertices()[0], V3(1, 0, 7))
}
