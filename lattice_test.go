package lattice

import "testing"

func TestColorLerp(t *testing.T) {
	a := Color{A: 1}
	b := Color{R: 1, G: 0.5, A: 1}

	got := a.Lerp(b, 0.5)
	assertNear(t, "R", got.R, 0.5)
	assertNear(t, "G", got.G, 0.25)
	assertNear(t, "A", got.A, 1)

	assertNear(t, "t clamped low", a.Lerp(b, -2).R, 0)
	assertNear(t, "t clamped high", a.Lerp(b, 3).R, 1)
}

func TestColorFromHexForms(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#fff", Color{1, 1, 1, 1}},
		{"000", Color{0, 0, 0, 1}},
		{"#ff0000", Color{1, 0, 0, 1}},
		{"00ff00", Color{0, 1, 0, 1}},
		{"#0000ffff", Color{0, 0, 1, 1}},
		{"#ffffff00", Color{1, 1, 1, 0}},
	}
	for _, c := range cases {
		got, err := ColorFromHex(c.in)
		if err != nil {
			t.Errorf("ColorFromHex(%q): %v", c.in, err)
			continue
		}
		assertNear(t, c.in+" R", got.R, c.want.R)
		assertNear(t, c.in+" G", got.G, c.want.G)
		assertNear(t, c.in+" B", got.B, c.want.B)
		assertNear(t, c.in+" A", got.A, c.want.A)
	}
}

func TestColorFromHexShorthandExpands(t *testing.T) {
	// "#abc" means aa/bb/cc, not a0/b0/c0.
	got, err := ColorFromHex("#abc")
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "R", got.R, float64(0xaa)/255)
	assertNear(t, "G", got.G, float64(0xbb)/255)
	assertNear(t, "B", got.B, float64(0xcc)/255)
}

func TestColorFromHexErrors(t *testing.T) {
	for _, in := range []string{"", "#", "#ff", "#fffff", "#gggggg", "not a color"} {
		if _, err := ColorFromHex(in); err == nil {
			t.Errorf("ColorFromHex(%q) should fail", in)
		}
	}
}

func TestToRGBAPremultiplies(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}
	got := c.toRGBA()
	if got.R != 128 {
		t.Errorf("R = %d, want 128 (premultiplied)", got.R)
	}
	if got.G != 64 {
		t.Errorf("G = %d, want 64", got.G)
	}
	if got.A != 128 {
		t.Errorf("A = %d, want 128", got.A)
	}
}

func TestToRGBAClamps(t *testing.T) {
	c := Color{R: 2, G: -1, B: 0, A: 1}
	got := c.toRGBA()
	if got.R != 255 || got.G != 0 {
		t.Errorf("RGBA = %v, want clamped 255/0", got)
	}
}
