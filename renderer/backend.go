package renderer

import (
	"sceneview/core"
	"sceneview/math"
	"sceneview/scene"
)

// Pass identifies the program and framebuffer entities are drawn into.
type Pass int

const (
	// PassPick writes object ids into the pick framebuffer.
	PassPick Pass = iota
	// PassForward shades entities into the default framebuffer.
	PassForward
	// PassGeometry writes surface attributes into the G-buffer.
	PassGeometry
)

func (p Pass) String() string {
	switch p {
	case PassPick:
		return "pick"
	case PassGeometry:
		return "geometry"
	default:
		return "forward"
	}
}

// Frame holds the uniforms shared by every draw in a frame.
type Frame struct {
	Width, Height int
	ClearColor    core.Color
	Projection    math.Matrix4

	Ambient        math.Vector3
	LightPositions []math.Vector4 // eye space
	LightColors    []math.Vector3
	SelectedID     uint32
}

// DrawCall is one entity with its composed modelview matrix.
type DrawCall struct {
	Entity    *scene.Entity
	ModelView math.Matrix4
}

// Backend executes frames on the GPU. Calls arrive in pass order:
// BeginPass, Draw for each entity, EndPass; then Light or ShowGBuffer.
type Backend interface {
	Resize(width, height int) error
	BeginPass(pass Pass, frame *Frame)
	Draw(pass Pass, frame *Frame, call *DrawCall)
	EndPass(pass Pass)

	// Light runs the fullscreen deferred lighting pass over the G-buffer.
	Light(frame *Frame)
	// ShowGBuffer blits four G-buffer targets into screen quadrants.
	ShowGBuffer(frame *Frame)
}
