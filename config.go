package lattice

// FogConfig controls depth fog: faces are blended toward Color as their
// depth moves from Near (no fog) to Far (fully fog colored).
type FogConfig struct {
	Enabled bool
	Color   Color
	Near    float64
	Far     float64
}

// FogOptions is a partial FogConfig update. Only non-nil fields overwrite
// the current configuration; everything else keeps its prior value.
type FogOptions struct {
	Enabled *bool
	Color   *Color
	Near    *float64
	Far     *float64
}

func (c *FogConfig) apply(opts FogOptions) {
	if opts.Enabled != nil {
		c.Enabled = *opts.Enabled
	}
	if opts.Color != nil {
		c.Color = *opts.Color
	}
	if opts.Near != nil {
		c.Near = *opts.Near
	}
	if opts.Far != nil {
		c.Far = *opts.Far
	}
}

// BloomConfig controls the glow post-effect: edges are additionally drawn to
// an offscreen surface, blurred by Radius pixels, and composited back
// additively.
type BloomConfig struct {
	Enabled bool
	Radius  int
	// Color overrides the stroke color on the glow surface. Nil reuses each
	// edge's own (fog-resolved) color.
	Color *Color
}

// BloomOptions is a partial BloomConfig update for the scalar fields. Only
// non-nil fields overwrite the current configuration. The nullable override
// color has its own setter (Renderer.SetBloomColor) so that clearing it back
// to "use edge color" stays expressible.
type BloomOptions struct {
	Enabled *bool
	Radius  *int
}

func (c *BloomConfig) apply(opts BloomOptions) {
	if opts.Enabled != nil {
		c.Enabled = *opts.Enabled
	}
	if opts.Radius != nil {
		c.Radius = *opts.Radius
	}
}

// BackgroundConfig controls how the frame is cleared. When GradientColor is
// non-nil the background is a vertical two-stop gradient from Color at the
// top to GradientColor at the bottom; otherwise a solid fill of Color.
type BackgroundConfig struct {
	Color         Color
	GradientColor *Color
}
