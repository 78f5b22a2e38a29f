package scene

import (
	"github.com/chewxy/math32"

	"sceneview/math"
)

// OrbitCamera circles Offset+Center at distance Zoom. XRot is the azimuth
// and YRot the elevation, both in degrees.
type OrbitCamera struct {
	XRot   float32
	YRot   float32
	Zoom   float32
	Offset math.Vector3
	Center math.Vector3
	Up     math.Vector3

	FOV         float32
	Near        float32
	Far         float32
	AspectRatio float32

	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32
}

func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		FOV:         60,
		Near:        0.01,
		Far:         100,
		AspectRatio: 1,
		RotateSpeed: 4,
		ZoomSpeed:   0.2,
		PanSpeed:    0.2,
	}
	c.Reset()
	return c
}

// Reset restores the starting view. Projection settings and speeds are kept.
func (c *OrbitCamera) Reset() {
	c.XRot = 45
	c.YRot = 20
	c.Zoom = 5
	c.Offset = math.Vector3{0, 1, 0}
	c.Center = math.Vector3{}
	c.Up = math.Vector3{0, 1, 0}
}

func (c *OrbitCamera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
	}
}

// Eye returns the camera position relative to Offset.
func (c *OrbitCamera) Eye() math.Vector3 {
	x := math.DegToRad(c.XRot)
	y := math.DegToRad(c.YRot)
	return math.Vector3{
		c.Zoom * math32.Sin(x) * math32.Cos(y),
		c.Zoom * math32.Sin(y),
		c.Zoom * math32.Cos(x) * math32.Cos(y),
	}
}

// Position is the world-space eye point.
func (c *OrbitCamera) Position() math.Vector3 {
	return c.Offset.Add(c.Eye())
}

// Rotate steps the orbit by RotateSpeed degrees per axis in the direction of
// the mouse delta. Azimuth wraps, elevation clamps to [-90, 90].
func (c *OrbitCamera) Rotate(dx, dy float32) {
	c.XRot += -c.RotateSpeed * math.Sign(dx)
	c.YRot += c.RotateSpeed * math.Sign(dy)

	if c.XRot > 360 {
		c.XRot -= 360
	}
	if c.XRot < 0 {
		c.XRot += 360
	}
	c.YRot = min(max(c.YRot, -90), 90)
}

// Dolly moves the eye towards or away from the target by one ZoomSpeed step.
func (c *OrbitCamera) Dolly(dy float32) {
	c.Zoom += c.ZoomSpeed * math.Sign(dy)
}

// Pan slides Offset across the ground plane relative to the current azimuth.
func (c *OrbitCamera) Pan(dx, dy float32) {
	sx, sy := math.Sign(dx), math.Sign(dy)
	s, co := math32.Sincos(math.DegToRad(c.XRot))
	c.Offset[0] += c.PanSpeed * (sx*co + sy*s)
	c.Offset[2] += c.PanSpeed * (-sx*s + sy*co)
}

// Raise moves Offset vertically.
func (c *OrbitCamera) Raise(d float32) {
	c.Offset[1] += d
}

func (c *OrbitCamera) ApplyView(stack *math.Matrix4Stack) {
	stack.LookAt(c.Position(), c.Offset.Add(c.Center), c.Up)
}

func (c *OrbitCamera) ApplyProjection(stack *math.Matrix4Stack, aspect float32) {
	stack.Perspective(c.FOV, aspect, c.Near, c.Far)
}

func (c *OrbitCamera) ViewMatrix() math.Matrix4 {
	m := math.Identity()
	m.LookAt(c.Position(), c.Offset.Add(c.Center), c.Up)
	return m
}

func (c *OrbitCamera) ProjectionMatrix() math.Matrix4 {
	m := math.Identity()
	m.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
	return m
}

// ViewProjectionMatrix returns projection * view.
func (c *OrbitCamera) ViewProjectionMatrix() math.Matrix4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}
