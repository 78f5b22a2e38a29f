package opengl

import (
	"errors"
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// ErrFramebufferIncomplete is returned when an offscreen buffer cannot be
// used for rendering.
var ErrFramebufferIncomplete = errors.New("framebuffer incomplete")

// PickBuffer is an R32UI color target holding one object id per pixel,
// with its own depth buffer.
type PickBuffer struct {
	FBO      uint32
	ColorTex uint32
	DepthTex uint32
	Width    int32
	Height   int32
}

// NewPickBuffer creates a width×height id framebuffer.
func NewPickBuffer(width, height int) (*PickBuffer, error) {
	pb := &PickBuffer{Width: int32(width), Height: int32(height)}

	pb.ColorTex = newTarget(gl.R32UI, gl.RED_INTEGER, gl.UNSIGNED_INT, pb.Width, pb.Height)
	pb.DepthTex = newTarget(gl.DEPTH_COMPONENT32F, gl.DEPTH_COMPONENT, gl.FLOAT, pb.Width, pb.Height)

	gl.GenFramebuffers(1, &pb.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, pb.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, pb.ColorTex, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, pb.DepthTex, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		pb.Destroy()
		return nil, fmt.Errorf("pick buffer: status=0x%X: %w", status, ErrFramebufferIncomplete)
	}
	return pb, nil
}

// Bind makes the pick buffer the draw target and clears it to id 0.
func (pb *PickBuffer) Bind() {
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, pb.FBO)
	clear := [4]uint32{0, 0, 0, 0}
	gl.ClearBufferuiv(gl.COLOR, 0, &clear[0])
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

func (pb *PickBuffer) Unbind() {
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
}

// ReadID returns the id at (x, y) with the origin at the bottom-left.
func (pb *PickBuffer) ReadID(x, y int) (uint32, error) {
	x = min(max(x, 0), int(pb.Width)-1)
	y = min(max(y, 0), int(pb.Height)-1)

	var id uint32
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, pb.FBO)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.ReadPixels(int32(x), int32(y), 1, 1, gl.RED_INTEGER, gl.UNSIGNED_INT, gl.Ptr(&id))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return 0, fmt.Errorf("read pixel (%d, %d): gl error 0x%X", x, y, e)
	}
	return id, nil
}

func (pb *PickBuffer) Size() (int, int) { return int(pb.Width), int(pb.Height) }

// Destroy frees GPU resources.
func (pb *PickBuffer) Destroy() {
	if pb.FBO != 0 {
		gl.DeleteFramebuffers(1, &pb.FBO)
		pb.FBO = 0
	}
	if pb.ColorTex != 0 {
		gl.DeleteTextures(1, &pb.ColorTex)
		pb.ColorTex = 0
	}
	if pb.DepthTex != 0 {
		gl.DeleteTextures(1, &pb.DepthTex)
		pb.DepthTex = 0
	}
}
