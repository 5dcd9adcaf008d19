package scene

import (
	"github.com/chewxy/math32"

	"scenegraph/math"
)

// Camera produces view and projection matrices. Both are rebuilt from
// scratch, lazily, after any setter.
type Camera struct {
	position math.Vec3
	target   math.Vec3
	up       math.Vec3

	fov          float32 // vertical, radians
	aspectRatio  float32
	nearPlane    float32
	farPlane     float32
	orthographic bool
	orthoSize    float32 // half-height of the orthographic volume

	viewMatrix       math.Mat4
	projectionMatrix math.Mat4
	viewProjMatrix   math.Mat4
	dirty            bool
}

// NewCamera creates a perspective camera at the origin looking down -Z.
// fov is the vertical field of view in radians.
func NewCamera(fov, aspectRatio, nearPlane, farPlane float32) *Camera {
	return &Camera{
		position:    math.Vec3Zero,
		target:      math.Vec3{X: 0, Y: 0, Z: -1},
		up:          math.Vec3Up,
		fov:         fov,
		aspectRatio: aspectRatio,
		nearPlane:   nearPlane,
		farPlane:    farPlane,
		orthoSize:   1,
		dirty:       true,
	}
}

func (c *Camera) Position() math.Vec3  { return c.position }
func (c *Camera) Target() math.Vec3    { return c.target }
func (c *Camera) FOV() float32         { return c.fov }
func (c *Camera) IsOrthographic() bool { return c.orthographic }

func (c *Camera) SetPosition(pos math.Vec3) {
	c.position = pos
	c.dirty = true
}

func (c *Camera) LookAt(target, up math.Vec3) {
	c.target = target
	c.up = up
	c.dirty = true
}

func (c *Camera) SetFOV(fov float32) {
	c.fov = fov
	c.dirty = true
}

func (c *Camera) SetClipPlanes(near, far float32) {
	c.nearPlane = near
	c.farPlane = far
	c.dirty = true
}

func (c *Camera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.aspectRatio = width / height
		c.dirty = true
	}
}

// SetOrthographic switches to an orthographic projection halfHeight units
// above and below the view axis.
func (c *Camera) SetOrthographic(halfHeight float32) {
	c.orthographic = true
	c.orthoSize = halfHeight
	c.dirty = true
}

func (c *Camera) SetPerspective() {
	c.orthographic = false
	c.dirty = true
}

func (c *Camera) GetViewMatrix() math.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewMatrix
}

func (c *Camera) GetProjectionMatrix() math.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.projectionMatrix
}

func (c *Camera) GetViewProjectionMatrix() math.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewProjMatrix
}

func (c *Camera) updateMatrices() {
	c.viewMatrix.LookAt(c.position, c.target, c.up)

	if c.orthographic {
		h := c.orthoSize
		w := h * c.aspectRatio
		c.projectionMatrix.Orthographic(-w, w, -h, h, c.nearPlane, c.farPlane)
	} else {
		c.projectionMatrix.Perspective(c.fov, c.aspectRatio, c.nearPlane, c.farPlane)
	}

	c.viewProjMatrix = c.projectionMatrix.Mul(c.viewMatrix)
	c.dirty = false
}

// OrbitCamera circles a target at a fixed distance.
type OrbitCamera struct {
	Camera
	Distance float32
	Yaw      float32 // radians
	Pitch    float32 // radians
}

func NewOrbitCamera(target math.Vec3, distance, fov, aspectRatio float32) *OrbitCamera {
	c := &OrbitCamera{
		Distance: distance,
		Yaw:      0,
		Pitch:    0.3,
	}
	c.Camera = *NewCamera(fov, aspectRatio, 0.1, 1000.0)
	c.target = target
	c.UpdatePosition()
	return c
}

func (c *OrbitCamera) UpdatePosition() {
	if c.Pitch > 1.5 {
		c.Pitch = 1.5
	}
	if c.Pitch < -1.5 {
		c.Pitch = -1.5
	}

	sinPitch, cosPitch := math32.Sincos(c.Pitch)
	sinYaw, cosYaw := math32.Sincos(c.Yaw)

	offset := math.Vec3{
		X: c.Distance * cosPitch * sinYaw,
		Y: c.Distance * sinPitch,
		Z: c.Distance * cosPitch * cosYaw,
	}

	c.SetPosition(c.target.Add(offset))
	c.LookAt(c.target, math.Vec3Up)
}

func (c *OrbitCamera) Orbit(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	c.UpdatePosition()
}

func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance += delta
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}
