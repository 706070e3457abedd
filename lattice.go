package lattice

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// Lerp returns the color blended toward `to` by t. t is clamped to [0, 1].
func (c Color) Lerp(to Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// ColorFromHex parses a CSS-style hex color: "#rgb", "#rrggbb", or
// "#rrggbbaa". The leading "#" is optional.
func ColorFromHex(s string) (Color, error) {
	hex := s
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}

	parse := func(sub string) (float64, error) {
		v := 0
		for i := 0; i < len(sub); i++ {
			d := hexDigit(sub[i])
			if d < 0 {
				return 0, fmt.Errorf("parse hex color %q: invalid digit %q", s, sub[i])
			}
			v = v<<4 | d
		}
		if len(sub) == 1 {
			v = v<<4 | v // expand shorthand: "f" -> 0xff
		}
		return float64(v) / 255, nil
	}

	var parts []string
	switch len(hex) {
	case 3:
		parts = []string{hex[0:1], hex[1:2], hex[2:3], ""}
	case 6:
		parts = []string{hex[0:2], hex[2:4], hex[4:6], ""}
	case 8:
		parts = []string{hex[0:2], hex[2:4], hex[4:6], hex[6:8]}
	default:
		return Color{}, fmt.Errorf("parse hex color %q: length must be 3, 6, or 8 digits", s)
	}

	c := Color{A: 1}
	targets := []*float64{&c.R, &c.G, &c.B, &c.A}
	for i, sub := range parts {
		if sub == "" {
			continue
		}
		v, err := parse(sub)
		if err != nil {
			return Color{}, err
		}
		*targets[i] = v
	}
	return c, nil
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func hexDigit(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return -1
	}
}

// Vec2 is a 2D vector used for screen-space positions and sizes.
type Vec2 struct {
	X, Y float64
}

// whitePixel is a shared 1x1 white image used to draw untextured triangles;
// color comes from per-vertex colors.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}
