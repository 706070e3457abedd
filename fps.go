package lattice

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay renders a small FPS/TPS readout in the top-left corner.
// The text is redrawn onto an internal image every ~0.5 seconds to keep the
// readout legible rather than flickering every frame.
type fpsOverlay struct {
	img  *ebiten.Image
	op   ebiten.DrawImageOptions
	tick int
}

// draw refreshes the readout if due and composites it onto dst.
func (f *fpsOverlay) draw(dst *ebiten.Image) {
	if f.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0".
		f.img = ebiten.NewImage(100, 32)
		f.tick = -1
	}

	// Refresh every half second of ticks.
	interval := ebiten.TPS() / 2
	if interval < 1 {
		interval = 1
	}
	f.tick++
	if f.tick%interval == 0 || f.tick == 0 {
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}

	f.op.GeoM.Reset()
	dst.DrawImage(f.img, &f.op)
}
