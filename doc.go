// Package lattice is a software 3D wireframe renderer for [Ebitengine].
//
// Lattice projects polygonal meshes through a pinhole-camera model onto a 2D
// drawing surface and rasterizes edges and optionally filled faces with
// painter's-algorithm depth ordering, back-face culling, depth fog, and a
// bloom glow pass. There is no GPU 3D pipeline and no z-buffer: everything
// is drawn as 2D triangles on an *ebiten.Image.
//
// # Quick start
//
// The simplest way to get started is [Engine.Run], which creates a window
// and game loop for you:
//
//	engine := lattice.NewEngine(640, 480)
//
//	cube := lattice.NewSceneObject(lattice.NewCubeMesh(2), nil)
//	cube.Transform().SetPosition(lattice.V3(0, 0, 6))
//	engine.Scene().Add(cube)
//
//	engine.SetFrameFunc(func(dt float64) {
//		cube.Transform().Rotate(lattice.V3(0, dt, 0))
//	})
//
//	log.Fatal(engine.Run(lattice.RunConfig{
//		Title: "Spinning Cube", Width: 640, Height: 480,
//	}))
//
// For full control, implement [ebiten.Game] yourself: Engine satisfies it,
// so you can also embed it and forward Update/Draw/Layout.
//
// # Meshes
//
// Meshes come from the [github.com/phanxgames/lattice/obj] Wavefront loader,
// the [github.com/phanxgames/lattice/gltf] importer, the built-in primitives
// ([NewCubeMesh], [NewPlaneMesh]), or hand-built vertex and face lists via
// [NewMesh]. A Mesh is immutable and may be shared by any number of
// [SceneObject] values.
//
// # Colors
//
// Every color channel that can be "unset" is a *Color: a nil material edge
// color falls back to the renderer default, a nil gradient color produces a
// solid stroke, a nil fill color produces an occlusion fill sampled from the
// background, and a nil bloom override reuses the edge's own color.
//
// [Ebitengine]: https://ebitengine.org
package lattice
