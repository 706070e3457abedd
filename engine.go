package lattice

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameFunc is the per-frame user callback. dt is the time since the
// previous tick in seconds: always >= 0, and 0 on the first tick after
// Start.
type FrameFunc func(dt float64)

// Engine orchestrates the frame loop: it owns the Scene, Camera, and
// Renderer, advances time, invokes the user callback, projects every scene
// object, and renders the sorted result.
//
// Engine implements ebiten.Game; ebiten's game loop is the host scheduling
// primitive. Everything runs on the game loop goroutine: Scene, Camera, and
// Material state may be mutated freely from frame callbacks between ticks,
// but the engine makes no atomicity guarantees against mutation from other
// goroutines.
type Engine struct {
	scene    *Scene
	camera   *Camera
	renderer *Renderer

	width  int
	height int

	running  bool
	lastTick time.Time
	onFrame  FrameFunc

	// now is swappable for tests.
	now func() time.Time

	tweens []*TweenGroup
	faces  []ProjectedFace
	debug  bool

	// ScreenshotDir is where Screenshot writes captured frames.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewEngine creates an engine with a fresh Scene, Camera, and Renderer sized
// to the given screen dimensions. The engine starts stopped; call Start (or
// Run, which does it for you).
func NewEngine(width, height int) *Engine {
	return &Engine{
		scene:    NewScene(),
		camera:   NewCamera(width, height),
		renderer: NewRenderer(width, height),
		width:    width,
		height:   height,
		now:      time.Now,

		ScreenshotDir: "screenshots",
	}
}

// Scene returns the engine's scene.
func (e *Engine) Scene() *Scene {
	return e.scene
}

// Camera returns the engine's camera.
func (e *Engine) Camera() *Camera {
	return e.camera
}

// Renderer returns the engine's renderer.
func (e *Engine) Renderer() *Renderer {
	return e.renderer
}

// SetFrameFunc sets the per-frame user callback, invoked at the start of
// each running tick with the delta time in seconds.
func (e *Engine) SetFrameFunc(fn FrameFunc) {
	e.onFrame = fn
}

// SetDebugMode enables per-frame timing stats on stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// DebugMode reports whether per-frame timing stats are enabled.
func (e *Engine) DebugMode() bool {
	return e.debug
}

// Start marks the engine running. The first tick after Start reports a delta
// time of 0 since there is no prior timestamp.
func (e *Engine) Start() {
	e.running = true
	e.lastTick = time.Time{}
}

// Stop clears the running flag. Cancellation is cooperative: the flag is
// checked at the top of the next tick, and no in-flight tick is interrupted
// mid-draw.
func (e *Engine) Stop() {
	e.running = false
}

// Running reports whether the engine is between Start and Stop.
func (e *Engine) Running() bool {
	return e.running
}

// SetScreenSize resizes both the renderer surfaces and the camera aspect
// ratio. Callable at any time, including while running.
func (e *Engine) SetScreenSize(width, height int) {
	e.width = width
	e.height = height
	e.camera.SetScreenSize(width, height)
	e.renderer.SetScreenSize(width, height)
}

// step advances the clock one tick and returns the delta time in seconds.
// Split from Update so the dt contract is testable without the game loop.
func (e *Engine) step(now time.Time) float64 {
	dt := 0.0
	if !e.lastTick.IsZero() {
		dt = now.Sub(e.lastTick).Seconds()
		if dt < 0 {
			dt = 0
		}
	}
	e.lastTick = now
	return dt
}

// Update implements ebiten.Game. When running it computes the delta time,
// invokes the frame callback, and advances active tween groups. When stopped
// it does nothing, leaving the last drawn frame on screen.
func (e *Engine) Update() error {
	if !e.running {
		return nil
	}
	dt := e.step(e.now())
	if e.onFrame != nil {
		e.onFrame(dt)
	}
	e.updateTweens(dt)
	return nil
}

// Draw implements ebiten.Game: project every scene object in insertion
// order, then clear and redraw via the Renderer.
func (e *Engine) Draw(screen *ebiten.Image) {
	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.faces = e.faces[:0]
	for _, obj := range e.scene.Objects() {
		if !obj.Visible {
			continue
		}
		e.faces = e.camera.Project(obj, e.faces)
	}

	if e.debug {
		stats.projectTime = time.Since(t0)
		stats.objectCount = e.scene.Len()
		stats.faceCount = len(e.faces)
		t0 = time.Now()
	}

	e.renderer.Draw(screen, e.faces)
	e.flushScreenshots(screen)

	if e.debug {
		stats.drawTime = time.Since(t0)
		debugLog(stats)
	}
}

// Layout implements ebiten.Game, reporting the configured logical screen size.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS enables the renderer's FPS overlay.
	ShowFPS bool
}

// Run opens a window, starts the engine, and blocks on ebiten's game loop
// until the window closes or the loop errors.
func (e *Engine) Run(cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		e.SetScreenSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowSize(e.width, e.height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	e.renderer.ShowFPS = cfg.ShowFPS
	e.Start()
	return ebiten.RunGame(e)
}

// AddTween registers a tween group to be advanced each running tick.
// Finished groups are removed automatically.
func (e *Engine) AddTween(g *TweenGroup) {
	e.tweens = append(e.tweens, g)
}

// updateTweens advances registered tween groups and compacts out the
// finished ones.
func (e *Engine) updateTweens(dt float64) {
	if len(e.tweens) == 0 {
		return
	}
	keep := e.tweens[:0]
	for _, g := range e.tweens {
		g.Update(float32(dt))
		if !g.Done {
			keep = append(keep, g)
		}
	}
	// Clear trailing slots so finished groups can be collected.
	for i := len(keep); i < len(e.tweens); i++ {
		e.tweens[i] = nil
	}
	e.tweens = keep
}
