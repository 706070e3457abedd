package lattice

import "testing"

func TestMaterialNilChannels(t *testing.T) {
	m := NewMaterial(nil, nil, nil)
	if m.EdgeColor() != nil || m.GradientColor() != nil || m.FillColor() != nil {
		t.Error("all channels should start nil")
	}
}

func TestMaterialCopiesOnConstruction(t *testing.T) {
	c := Color{R: 1}
	m := NewMaterial(&c, nil, nil)
	c.R = 0.5
	if m.EdgeColor().R != 1 {
		t.Errorf("EdgeColor.R = %v, want 1 (caller mutation leaked)", m.EdgeColor().R)
	}
}

func TestMaterialCopiesOnSet(t *testing.T) {
	m := NewMaterial(nil, nil, nil)
	c := Color{G: 1}
	m.SetFillColor(&c)
	c.G = 0
	if m.FillColor().G != 1 {
		t.Errorf("FillColor.G = %v, want 1 (caller mutation leaked)", m.FillColor().G)
	}
}

func TestMaterialResetRestoresOriginals(t *testing.T) {
	edge := Color{R: 1, A: 1}
	m := NewMaterial(&edge, nil, nil)

	m.SetEdgeColor(&Color{B: 1, A: 1})
	m.SetGradientColor(&Color{G: 1, A: 1})

	m.ResetEdgeColor()
	if m.EdgeColor().R != 1 {
		t.Errorf("EdgeColor.R = %v after reset, want 1", m.EdgeColor().R)
	}
	// Gradient was constructed nil, so its reset target is nil.
	m.ResetGradientColor()
	if m.GradientColor() != nil {
		t.Error("GradientColor should reset to nil")
	}
}

func TestMaterialResetAll(t *testing.T) {
	fill := Color{B: 1, A: 1}
	m := NewMaterial(nil, nil, &fill)
	m.SetEdgeColor(&Color{R: 1})
	m.SetFillColor(nil)

	m.Reset()
	if m.EdgeColor() != nil {
		t.Error("EdgeColor should reset to nil")
	}
	if m.FillColor() == nil || m.FillColor().B != 1 {
		t.Errorf("FillColor = %v after reset, want B=1", m.FillColor())
	}
}

func TestMaterialResetIsolatedFromOriginal(t *testing.T) {
	// Mutating a color obtained after Reset must not corrupt the stored
	// original for later resets.
	edge := Color{R: 0.25}
	m := NewMaterial(&edge, nil, nil)
	m.ResetEdgeColor()
	m.EdgeColor().R = 0.9
	m.ResetEdgeColor()
	if m.EdgeColor().R != 0.25 {
		t.Errorf("EdgeColor.R = %v, want 0.25", m.EdgeColor().R)
	}
}
