package lattice

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws projected faces onto a 2D drawing surface. It owns the
// background clear, painter's-algorithm depth sorting, face fills, edge
// strokes (solid or gradient), depth fog, and the bloom glow pass.
type Renderer struct {
	width  int
	height int

	// DepthSort enables farthest-first face ordering and occlusion fills,
	// simulating solid objects without a z-buffer. Enabled by default.
	DepthSort bool
	// LineWidth is the edge stroke width in pixels.
	LineWidth float64
	// ShowFPS overlays the current frame rate readout.
	ShowFPS bool

	defaultEdgeColor Color
	background       BackgroundConfig
	fog              FogConfig
	bloom            BloomConfig

	sortBuf []ProjectedFace

	// Triangle submission scratch, high-water mark reuse.
	verts []ebiten.Vertex
	inds  []uint16

	glow        *ebiten.Image
	glowBlurred *ebiten.Image
	blur        BlurFilter

	triOp ebiten.DrawTrianglesOptions
	imgOp ebiten.DrawImageOptions

	fps fpsOverlay
}

// NewRenderer creates a renderer for a surface of the given size with depth
// sorting on, a white default edge color, and a black background. Fog and
// bloom start disabled.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		DepthSort:        true,
		LineWidth:        1,
		defaultEdgeColor: ColorWhite,
		background:       BackgroundConfig{Color: ColorBlack},
		fog:              FogConfig{Color: ColorBlack, Near: 1, Far: 100},
		bloom:            BloomConfig{Radius: 8},
	}
	r.SetScreenSize(width, height)
	return r
}

// SetScreenSize resizes the drawing surface dimensions. Offscreen bloom
// surfaces are dropped and recreated lazily at the new size. Callable at any
// time, including while running.
func (r *Renderer) SetScreenSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r.width = width
	r.height = height
	if r.glow != nil {
		r.glow.Deallocate()
		r.glow = nil
	}
	if r.glowBlurred != nil {
		r.glowBlurred.Deallocate()
		r.glowBlurred = nil
	}
}

// ScreenSize returns the surface dimensions in pixels.
func (r *Renderer) ScreenSize() (width, height int) {
	return r.width, r.height
}

// DefaultEdgeColor returns the stroke color used for faces whose material
// has no edge color.
func (r *Renderer) DefaultEdgeColor() Color {
	return r.defaultEdgeColor
}

// SetDefaultEdgeColor sets the fallback edge stroke color.
func (r *Renderer) SetDefaultEdgeColor(c Color) {
	r.defaultEdgeColor = c
}

// Background returns the current background configuration.
func (r *Renderer) Background() BackgroundConfig {
	return r.background
}

// SetBackground replaces the background configuration.
func (r *Renderer) SetBackground(bg BackgroundConfig) {
	r.background = bg
}

// Fog returns the current fog configuration.
func (r *Renderer) Fog() FogConfig {
	return r.fog
}

// SetFog replaces the fog configuration wholesale.
func (r *Renderer) SetFog(cfg FogConfig) {
	r.fog = cfg
}

// ConfigureFog merges a partial fog update: only non-nil option fields
// overwrite the current configuration.
func (r *Renderer) ConfigureFog(opts FogOptions) {
	r.fog.apply(opts)
}

// Bloom returns the current bloom configuration.
func (r *Renderer) Bloom() BloomConfig {
	return r.bloom
}

// SetBloom replaces the bloom configuration wholesale.
func (r *Renderer) SetBloom(cfg BloomConfig) {
	r.bloom = cfg
}

// ConfigureBloom merges a partial bloom update: only non-nil option fields
// overwrite the current configuration.
func (r *Renderer) ConfigureBloom(opts BloomOptions) {
	r.bloom.apply(opts)
}

// SetBloomColor sets the glow stroke override color. Nil restores "reuse
// each edge's own color".
func (r *Renderer) SetBloomColor(c *Color) {
	r.bloom.Color = copyColor(c)
}

// Draw clears dst and draws the given faces. When DepthSort is enabled the
// faces slice is reordered in place (farthest first) before drawing.
func (r *Renderer) Draw(dst *ebiten.Image, faces []ProjectedFace) {
	r.drawBackground(dst)

	if r.DepthSort {
		r.sortFaces(faces)
	}

	var glow *ebiten.Image
	if r.bloom.Enabled && r.bloom.Radius > 0 {
		glow = r.ensureGlow()
		glow.Clear()
	}

	for i := range faces {
		r.drawFace(dst, glow, &faces[i])
	}

	if glow != nil {
		r.compositeGlow(dst)
	}

	if r.ShowFPS {
		r.fps.draw(dst)
	}
}

// drawBackground fills dst with the background color, or a vertical two-stop
// gradient drawn as a single screen quad with per-vertex colors.
func (r *Renderer) drawBackground(dst *ebiten.Image) {
	if r.background.GradientColor == nil {
		dst.Fill(r.background.Color.toRGBA())
		return
	}
	top := r.background.Color
	bottom := *r.background.GradientColor
	w := float64(r.width)
	h := float64(r.height)

	r.resetScratch()
	base := r.appendVertex(Vec2{0, 0}, top)
	r.appendVertex(Vec2{w, 0}, top)
	r.appendVertex(Vec2{w, h}, bottom)
	r.appendVertex(Vec2{0, h}, bottom)
	r.inds = append(r.inds, base, base+1, base+2, base, base+2, base+3)
	r.flush(dst)
}

// backgroundColorAt evaluates the background at screen row y, interpolating
// the vertical gradient when one is configured.
func (r *Renderer) backgroundColorAt(y float64) Color {
	if r.background.GradientColor == nil {
		return r.background.Color
	}
	t := clamp01(y / float64(r.height))
	return r.background.Color.Lerp(*r.background.GradientColor, t)
}

// drawFace draws one projected face: occlusion or explicit fill (when depth
// sorting), then the edge strokes, then the same geometry onto the glow
// surface when bloom is active.
func (r *Renderer) drawFace(dst, glow *ebiten.Image, f *ProjectedFace) {
	if len(f.Points) < 3 {
		return
	}

	if r.DepthSort {
		fill := r.occlusionColor(f)
		r.fillPolygon(dst, f.Points, fill)
		if glow != nil {
			// Opaque fill so nearer faces block the glow of edges behind
			// them; black adds nothing under the additive composite.
			r.fillPolygon(glow, f.Points, ColorBlack)
		}
	}

	edge := r.defaultEdgeColor
	if f.EdgeColor != nil {
		edge = *f.EdgeColor
	}
	gradient := f.GradientColor

	if r.fog.Enabled {
		amount := fogAmount(f.Depth, r.fog.Near, r.fog.Far)
		edge = edge.Lerp(r.fog.Color, amount)
		if gradient != nil {
			g := gradient.Lerp(r.fog.Color, amount)
			gradient = &g
		}
	}

	end := edge
	if gradient != nil {
		end = *gradient
	}

	glowColor := edge
	if glow != nil && r.bloom.Color != nil {
		glowColor = *r.bloom.Color
	}

	for i := range f.Points {
		a := f.Points[i]
		b := f.Points[(i+1)%len(f.Points)]
		r.strokeLine(dst, a, b, edge, end)
		if glow != nil {
			r.strokeLine(glow, a, b, glowColor, glowColor)
		}
	}
}

// occlusionColor resolves the fill for a face: its explicit fill color, or
// the background evaluated at the face's mean screen Y.
func (r *Renderer) occlusionColor(f *ProjectedFace) Color {
	if f.FillColor != nil {
		return *f.FillColor
	}
	meanY := 0.0
	for _, p := range f.Points {
		meanY += p.Y
	}
	meanY /= float64(len(f.Points))
	return r.backgroundColorAt(meanY)
}

// fillPolygon fan-triangulates the outline (convex assumption, vertex 0 as
// the hub) and draws it in the given solid color.
func (r *Renderer) fillPolygon(dst *ebiten.Image, points []Vec2, c Color) {
	r.resetScratch()
	base := r.appendVertex(points[0], c)
	for _, p := range points[1:] {
		r.appendVertex(p, c)
	}
	for i := 0; i < len(points)-2; i++ {
		r.inds = append(r.inds, base, base+uint16(i+1), base+uint16(i+2))
	}
	r.flush(dst)
}

// strokeLine draws the segment a-b as a LineWidth-wide quad. Per-vertex
// colors produce a two-stop linear gradient along the segment: ca at a, cb
// at b.
func (r *Renderer) strokeLine(dst *ebiten.Image, a, b Vec2, ca, cb Color) {
	nx, ny := perpendicular(a, b)
	half := r.LineWidth / 2
	if half <= 0 {
		half = 0.5
	}

	r.resetScratch()
	base := r.appendVertex(Vec2{a.X + nx*half, a.Y + ny*half}, ca)
	r.appendVertex(Vec2{a.X - nx*half, a.Y - ny*half}, ca)
	r.appendVertex(Vec2{b.X + nx*half, b.Y + ny*half}, cb)
	r.appendVertex(Vec2{b.X - nx*half, b.Y - ny*half}, cb)
	r.inds = append(r.inds, base, base+1, base+2, base+1, base+3, base+2)
	r.flush(dst)
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

func (r *Renderer) resetScratch() {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}

func (r *Renderer) appendVertex(p Vec2, c Color) uint16 {
	idx := uint16(len(r.verts))
	r.verts = append(r.verts, ebiten.Vertex{
		DstX: float32(p.X), DstY: float32(p.Y),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: float32(c.R), ColorG: float32(c.G), ColorB: float32(c.B),
		ColorA: float32(c.A),
	})
	return idx
}

func (r *Renderer) flush(dst *ebiten.Image) {
	if len(r.inds) == 0 {
		return
	}
	dst.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), &r.triOp)
}

// ensureGlow returns the bloom accumulation surface, (re)creating both glow
// surfaces to match the current screen size.
func (r *Renderer) ensureGlow() *ebiten.Image {
	if r.glow == nil {
		r.glow = ebiten.NewImage(r.width, r.height)
	}
	if r.glowBlurred == nil {
		r.glowBlurred = ebiten.NewImage(r.width, r.height)
	}
	return r.glow
}

// compositeGlow blurs the glow surface and adds it onto the main surface.
// The glow content is discarded on the next frame's Clear.
func (r *Renderer) compositeGlow(dst *ebiten.Image) {
	r.glowBlurred.Clear()
	r.blur.Radius = r.bloom.Radius
	r.blur.Apply(r.glow, r.glowBlurred)

	r.imgOp.GeoM.Reset()
	r.imgOp.Blend = ebiten.BlendLighter
	dst.DrawImage(r.glowBlurred, &r.imgOp)
	r.imgOp.Blend = ebiten.Blend{}
}

// fogAmount maps a face depth into [0, 1]: 0 at or before near, 1 at or
// beyond far, linear between.
func fogAmount(depth, near, far float64) float64 {
	if depth <= near {
		return 0
	}
	if depth >= far {
		return 1
	}
	return (depth - near) / (far - near)
}

// --- Depth sort ---

// faceFartherOrEqual returns true if a should draw before or at the same
// position as b under the painter's algorithm (farthest first). Using >= for
// equal depths keeps the sort stable.
func faceFartherOrEqual(a, b *ProjectedFace) bool {
	return a.Depth >= b.Depth
}

// sortFaces sorts faces in place by descending depth using a bottom-up merge
// sort with a reused scratch buffer: stable, zero allocations after the
// buffer reaches its high-water mark.
func (r *Renderer) sortFaces(faces []ProjectedFace) {
	n := len(faces)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]ProjectedFace, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := faces
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeFaces(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(faces, r.sortBuf)
	}
}

// mergeFaces merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeFaces(src, dst []ProjectedFace, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if faceFartherOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
