package lattice

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 float64 components of a SceneObject's
// transform simultaneously. Create one via the convenience constructors
// (TweenPosition, TweenRotation, TweenScale) and either call Update(dt)
// yourself each frame or register it with Engine.AddTween.
//
// There is no global animation manager; groups not handed to an Engine are
// driven by the caller.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	fields [3]*float64
	target *Transform
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target
// transform, and marks it dirty so cached world vertices recompute.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// newTransformTween builds a three-component group over one of the
// transform's vectors.
func newTransformTween(t *Transform, v *Vec3, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: t}
	g.tweens[0] = gween.New(float32(v.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(v.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(v.Z), float32(to.Z), duration, fn)
	g.fields[0] = &v.X
	g.fields[1] = &v.Y
	g.fields[2] = &v.Z
	return g
}

// TweenPosition creates a TweenGroup that animates the object's position to
// the given point over duration seconds using the easing function.
func TweenPosition(obj *SceneObject, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	t := obj.Transform()
	return newTransformTween(t, &t.position, to, duration, fn)
}

// TweenRotation creates a TweenGroup that animates the object's Euler
// rotation (radians) to the given angles over duration seconds.
func TweenRotation(obj *SceneObject, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	t := obj.Transform()
	return newTransformTween(t, &t.rotation, to, duration, fn)
}

// TweenScale creates a TweenGroup that animates the object's per-axis scale
// to the given factors over duration seconds.
func TweenScale(obj *SceneObject, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	t := obj.Transform()
	return newTransformTween(t, &t.scale, to, duration, fn)
}
