package lattice

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestBlurFilterZeroRadiusCopies(t *testing.T) {
	src := ebiten.NewImage(8, 8)
	src.Fill(Color{R: 1, A: 1}.toRGBA())
	dst := ebiten.NewImage(8, 8)

	f := &BlurFilter{Radius: 0}
	f.Apply(src, dst)

	r, _, _, a := dst.At(4, 4).RGBA()
	if r == 0 || a == 0 {
		t.Error("zero-radius Apply should copy src into dst")
	}
	if len(f.temps) != 0 {
		t.Errorf("zero-radius Apply allocated %d temps, want 0", len(f.temps))
	}
}

func TestBlurFilterTempChainReuse(t *testing.T) {
	src := ebiten.NewImage(64, 64)
	dst := ebiten.NewImage(64, 64)

	f := &BlurFilter{Radius: 8}
	f.Apply(src, dst)
	// log2(8) = 3 downscale levels.
	if len(f.temps) != 3 {
		t.Fatalf("got %d temps, want 3", len(f.temps))
	}
	first := f.temps[0]

	f.Apply(src, dst)
	if f.temps[0] != first {
		t.Error("same-size Apply should reuse the temp chain")
	}

	// A smaller radius shrinks the chain.
	f.Radius = 2
	f.Apply(src, dst)
	if len(f.temps) != 1 {
		t.Errorf("got %d temps after shrinking, want 1", len(f.temps))
	}
}

func TestBlurFilterDispose(t *testing.T) {
	src := ebiten.NewImage(32, 32)
	dst := ebiten.NewImage(32, 32)

	f := &BlurFilter{Radius: 4}
	f.Apply(src, dst)
	f.Dispose()
	if len(f.temps) != 0 {
		t.Errorf("Dispose left %d temps", len(f.temps))
	}

	// Usable again after Dispose.
	f.Apply(src, dst)
	if len(f.temps) == 0 {
		t.Error("Apply after Dispose should rebuild the temp chain")
	}
}
