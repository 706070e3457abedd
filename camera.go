package lattice

import "math"

// nearEpsilon is the camera-space Z below which a vertex cannot be projected
// without numeric blow-up. Any face containing such a vertex is dropped for
// the frame.
const nearEpsilon = 1e-4

// ProjectedFace is the per-frame result of projecting one mesh face. It
// carries the screen-space outline, a sort depth, and the colors resolved
// from the source object's material at projection time. Instances are
// created fresh every frame and carry no identity across frames.
type ProjectedFace struct {
	// Points is the face outline in pixel coordinates, same winding as the
	// source face.
	Points []Vec2
	// Depth is the arithmetic mean of the face's camera-space Z values. It is
	// used purely for painter's-algorithm sorting, not per-pixel depth.
	Depth float64
	// EdgeColor, GradientColor, and FillColor are snapshots of the source
	// material. Nil values keep their documented fallbacks: default edge
	// color, solid stroke, occlusion fill.
	EdgeColor     *Color
	GradientColor *Color
	FillColor     *Color
}

// Camera owns a pose Transform and the projection configuration, and turns
// world-space scene objects into ProjectedFaces.
type Camera struct {
	transform *Transform

	screenWidth  int
	screenHeight int
	aspectRatio  float64
	fovDegrees   float64
	focalLength  float64

	// BackfaceCulling skips faces whose normal points away from the camera.
	// Enabled by default.
	BackfaceCulling bool

	camVerts []Vec3 // per-projection scratch, high-water mark reuse
}

// NewCamera creates a camera at the origin looking down +Z with a 60 degree
// vertical field of view and back-face culling enabled.
func NewCamera(screenWidth, screenHeight int) *Camera {
	c := &Camera{
		transform:       NewTransform(),
		BackfaceCulling: true,
	}
	c.SetScreenSize(screenWidth, screenHeight)
	c.SetFOV(60)
	return c
}

// Transform returns the camera pose transform.
func (c *Camera) Transform() *Transform {
	return c.transform
}

// SetScreenSize updates the projection target dimensions and the aspect
// ratio derived from them. Callable at any time, including mid-run.
func (c *Camera) SetScreenSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.screenWidth = width
	c.screenHeight = height
	c.aspectRatio = float64(width) / float64(height)
}

// ScreenSize returns the projection target dimensions in pixels.
func (c *Camera) ScreenSize() (width, height int) {
	return c.screenWidth, c.screenHeight
}

// FOV returns the vertical field of view in degrees.
func (c *Camera) FOV() float64 {
	return c.fovDegrees
}

// SetFOV sets the vertical field of view in degrees (typical range 30-120)
// and recomputes the cached focal length 1/tan(fov/2).
func (c *Camera) SetFOV(degrees float64) {
	c.fovDegrees = degrees
	c.focalLength = 1 / math.Tan(degrees*math.Pi/180/2)
}

// worldToCamera transforms a world-space point into camera space: translate
// by the negative camera position, then rotate by the negative camera
// rotation in reverse axis order (Z, Y, X). This is the algebraic inverse of
// the forward object transform and is kept as explicit steps rather than a
// generic matrix inverse so the numeric behavior matches the forward path
// exactly.
func (c *Camera) worldToCamera(v Vec3) Vec3 {
	rot := c.transform.Rotation()
	return v.Sub(c.transform.Position()).
		RotatedZ(-rot.Z).
		RotatedY(-rot.Y).
		RotatedX(-rot.X)
}

// project maps a camera-space point to pixel coordinates. The caller must
// ensure v.Z is in front of the near epsilon.
func (c *Camera) project(v Vec3) Vec2 {
	nx := (v.X / v.Z) * c.focalLength / c.aspectRatio
	ny := (v.Y / v.Z) * c.focalLength
	return Vec2{
		X: (nx + 1) / 2 * float64(c.screenWidth),
		// Screen Y grows downward while normalized Y grows upward.
		Y: (1 - (ny+1)/2) * float64(c.screenHeight),
	}
}

// Project appends one ProjectedFace per visible face of obj to dst and
// returns the extended slice. Faces are dropped when back-facing (if culling
// is enabled) or when any vertex sits at or behind the near epsilon; a
// dropped face is recoverable next frame, never an error.
func (c *Camera) Project(obj *SceneObject, dst []ProjectedFace) []ProjectedFace {
	world := obj.WorldVertices()

	if cap(c.camVerts) < len(world) {
		c.camVerts = make([]Vec3, len(world))
	}
	c.camVerts = c.camVerts[:len(world)]
	for i, v := range world {
		c.camVerts[i] = c.worldToCamera(v)
	}

	mat := obj.Material()
	edge := mat.EdgeColor()
	gradient := mat.GradientColor()
	fill := mat.FillColor()

	for _, face := range obj.Mesh().Faces() {
		if c.BackfaceCulling && len(face) >= 3 {
			v0 := c.camVerts[face[0]]
			v1 := c.camVerts[face[1]]
			v2 := c.camVerts[face[2]]
			normal := v1.Sub(v0).Cross(v2.Sub(v0))
			// The camera sits at the camera-space origin, so v0 is the view
			// vector to the face. The sign convention here is load-bearing.
			if normal.Dot(v0) > 0 {
				continue
			}
		}

		visible := true
		depth := 0.0
		for _, idx := range face {
			if c.camVerts[idx].Z <= nearEpsilon {
				visible = false
				break
			}
			depth += c.camVerts[idx].Z
		}
		if !visible {
			continue
		}
		depth /= float64(len(face))

		points := make([]Vec2, len(face))
		for i, idx := range face {
			points[i] = c.project(c.camVerts[idx])
		}

		dst = append(dst, ProjectedFace{
			Points:        points,
			Depth:         depth,
			EdgeColor:     edge,
			GradientColor: gradient,
			FillColor:     fill,
		})
	}
	return dst
}
