package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// GBuffer targets, in color attachment order.
const (
	GBufferPosition = iota
	GBufferDiffuse
	GBufferNormal
	GBufferTexCoord
	GBufferDiffuseColor
	GBufferSpecularColor
	gbufferRGBTargets
)

// GBufferShininess is the R32F attachment following the RGB targets.
const GBufferShininess = gbufferRGBTargets

// GBuffer stores per-pixel surface attributes for deferred lighting.
type GBuffer struct {
	FBO      uint32
	Textures [gbufferRGBTargets + 1]uint32
	DepthTex uint32
	Width    int32
	Height   int32
}

func NewGBuffer(width, height int) (*GBuffer, error) {
	g := &GBuffer{Width: int32(width), Height: int32(height)}

	gl.GenFramebuffers(1, &g.FBO)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, g.FBO)

	drawBuffers := make([]uint32, 0, len(g.Textures))
	for i := range g.Textures {
		if i == GBufferShininess {
			g.Textures[i] = newTarget(gl.R32F, gl.RED, gl.FLOAT, g.Width, g.Height)
		} else {
			g.Textures[i] = newTarget(gl.RGB32F, gl.RGB, gl.FLOAT, g.Width, g.Height)
		}
		attachment := uint32(gl.COLOR_ATTACHMENT0 + i)
		gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, attachment, gl.TEXTURE_2D, g.Textures[i], 0)
		drawBuffers = append(drawBuffers, attachment)
	}

	g.DepthTex = newTarget(gl.DEPTH_COMPONENT32F, gl.DEPTH_COMPONENT, gl.FLOAT, g.Width, g.Height)
	gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, g.DepthTex, 0)
	gl.DrawBuffers(int32(len(drawBuffers)), &drawBuffers[0])

	status := gl.CheckFramebufferStatus(gl.DRAW_FRAMEBUFFER)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		g.Destroy()
		return nil, fmt.Errorf("gbuffer: status=0x%X: %w", status, ErrFramebufferIncomplete)
	}
	return g, nil
}

// BindForWriting makes the G-buffer the draw target and clears it.
func (g *GBuffer) BindForWriting() {
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, g.FBO)
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (g *GBuffer) UnbindForWriting() {
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
}

// BindForRender binds target i to texture unit i.
func (g *GBuffer) BindForRender() {
	for i, tex := range g.Textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, tex)
	}
}

func (g *GBuffer) UnbindForRender() {
	for i := range g.Textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

// Blit copies one target into the rectangle (x0, y0)-(x1, y1) of the
// default framebuffer.
func (g *GBuffer) Blit(target int, x0, y0, x1, y1 int32) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, g.FBO)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0 + uint32(target))
	gl.BlitFramebuffer(0, 0, g.Width, g.Height, x0, y0, x1, y1, gl.COLOR_BUFFER_BIT, gl.LINEAR)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
}

func (g *GBuffer) Destroy() {
	if g.FBO != 0 {
		gl.DeleteFramebuffers(1, &g.FBO)
		g.FBO = 0
	}
	for i := range g.Textures {
		if g.Textures[i] != 0 {
			gl.DeleteTextures(1, &g.Textures[i])
			g.Textures[i] = 0
		}
	}
	if g.DepthTex != 0 {
		gl.DeleteTextures(1, &g.DepthTex)
		g.DepthTex = 0
	}
}
