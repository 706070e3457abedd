package lattice

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

func TestEngineStartStop(t *testing.T) {
	e := NewEngine(800, 600)
	if e.Running() {
		t.Error("new engines should start stopped")
	}
	e.Start()
	if !e.Running() {
		t.Error("Start should set running")
	}
	e.Stop()
	if e.Running() {
		t.Error("Stop should clear running")
	}
}

func TestEngineStepFirstTickIsZero(t *testing.T) {
	e := NewEngine(800, 600)
	e.Start()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assertNear(t, "first dt", e.step(base), 0)
	assertNear(t, "second dt", e.step(base.Add(16*time.Millisecond)), 0.016)
}

func TestEngineStepClampsBackwardClock(t *testing.T) {
	e := NewEngine(800, 600)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e.step(base)
	assertNear(t, "backward dt", e.step(base.Add(-time.Second)), 0)
}

func TestEngineRestartResetsClock(t *testing.T) {
	e := NewEngine(800, 600)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e.Start()
	e.step(base)
	e.Stop()

	// A long pause while stopped must not produce a giant dt on restart.
	e.Start()
	assertNear(t, "dt after restart", e.step(base.Add(time.Hour)), 0)
}

func TestEngineUpdateInvokesFrameFunc(t *testing.T) {
	e := NewEngine(800, 600)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return clock }

	var dts []float64
	e.SetFrameFunc(func(dt float64) { dts = append(dts, dt) })

	// Stopped: the callback must not fire.
	if err := e.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(dts) != 0 {
		t.Fatal("frame func fired while stopped")
	}

	e.Start()
	e.Update()
	clock = clock.Add(20 * time.Millisecond)
	e.Update()

	if len(dts) != 2 {
		t.Fatalf("got %d frame calls, want 2", len(dts))
	}
	assertNear(t, "dts[0]", dts[0], 0)
	assertNear(t, "dts[1]", dts[1], 0.02)
}

func TestEngineSetScreenSizePropagates(t *testing.T) {
	e := NewEngine(800, 600)
	e.SetScreenSize(1024, 768)

	w, h := e.Camera().ScreenSize()
	if w != 1024 || h != 768 {
		t.Errorf("camera size = %dx%d, want 1024x768", w, h)
	}
	w, h = e.Renderer().ScreenSize()
	if w != 1024 || h != 768 {
		t.Errorf("renderer size = %dx%d, want 1024x768", w, h)
	}
	w, h = e.Layout(5000, 5000)
	if w != 1024 || h != 768 {
		t.Errorf("Layout = %dx%d, want 1024x768", w, h)
	}
}

func TestEngineDrawSkipsInvisibleObjects(t *testing.T) {
	e := NewEngine(64, 48)
	visible := NewSceneObject(NewCubeMesh(1), nil)
	visible.Transform().SetPosition(V3(0, 0, 10))
	hidden := NewSceneObject(NewCubeMesh(1), nil)
	hidden.Transform().SetPosition(V3(0, 0, 10))
	hidden.Visible = false
	e.Scene().Add(visible)
	e.Scene().Add(hidden)

	screen := ebiten.NewImage(64, 48)
	e.Draw(screen)

	// Straight ahead only the near face of the visible cube survives
	// culling; the hidden cube contributes nothing.
	if len(e.faces) != 1 {
		t.Errorf("projected %d faces, want 1", len(e.faces))
	}
}

// --- tween scheduling ---

func TestEngineTweensAdvanceAndCompact(t *testing.T) {
	e := NewEngine(800, 600)
	obj := NewSceneObject(NewCubeMesh(1), nil)

	short := TweenPosition(obj, V3(1, 0, 0), 0.1, ease.Linear)
	long := TweenRotation(obj, V3(0, 1, 0), 10, ease.Linear)
	e.AddTween(short)
	e.AddTween(long)

	e.updateTweens(0.5)
	if !short.Done {
		t.Error("short tween should finish")
	}
	if long.Done {
		t.Error("long tween should still run")
	}
	if len(e.tweens) != 1 || e.tweens[0] != long {
		t.Error("finished tweens should be compacted out")
	}
}
