package opengl

import (
	"fmt"
	"log/slog"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"sceneview/core"
	"sceneview/renderer"
	"sceneview/scene"
)

// Backend draws frames composed by renderer.RenderEngine. It also serves the
// pick buffer to the framebuffer picker.
type Backend struct {
	draw     *program
	pick     *program
	geometry *program
	lighting *program

	pickBuffer *PickBuffer
	gbuffer    *GBuffer
	quad       *quad
	white      uint32

	meshes map[*scene.Mesh]*GPUMesh
	width  int32
	height int32
}

// NewBackend initialises OpenGL and compiles the shader programs.
// Must be called after the GLFW window context is made current.
func NewBackend() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Info("opengl", "version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	b := &Backend{meshes: make(map[*scene.Mesh]*GPUMesh)}
	sources := []struct {
		dst        **program
		name       string
		vert, frag string
	}{
		{&b.draw, "draw", meshVertSrc, drawFragSrc},
		{&b.pick, "pick", meshVertSrc, pickFragSrc},
		{&b.geometry, "geometry", meshVertSrc, geometryFragSrc},
		{&b.lighting, "lighting", quadVertSrc, lightingFragSrc},
	}
	for _, s := range sources {
		p, err := newProgram(s.name, s.vert, s.frag)
		if err != nil {
			b.Destroy()
			return nil, err
		}
		*s.dst = p
	}

	b.quad = newQuad()
	b.white = newWhiteTexture()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	return b, nil
}

func newWhiteTexture() uint32 {
	tex := scene.NewSolidTexture("white", 255, 255, 255, 255)
	if err := UploadTexture(tex); err != nil {
		return 0
	}
	return tex.GLID
}

// Resize sets the viewport and recreates the offscreen buffers.
func (b *Backend) Resize(width, height int) error {
	gl.Viewport(0, 0, int32(width), int32(height))

	pb, err := NewPickBuffer(width, height)
	if err != nil {
		return err
	}
	gb, err := NewGBuffer(width, height)
	if err != nil {
		pb.Destroy()
		return err
	}
	if b.pickBuffer != nil {
		b.pickBuffer.Destroy()
	}
	if b.gbuffer != nil {
		b.gbuffer.Destroy()
	}
	b.pickBuffer, b.gbuffer = pb, gb
	b.width, b.height = int32(width), int32(height)
	slog.Debug("offscreen buffers resized", "width", width, "height", height)
	return nil
}

// Upload sends every mesh and texture in the library to the GPU.
func (b *Backend) Upload(assets *scene.Assets) error {
	var firstErr error
	assets.Each(
		func(m *scene.Mesh) {
			if _, ok := b.meshes[m]; !ok {
				if gpu := uploadMesh(m); gpu != nil {
					b.meshes[m] = gpu
				}
			}
		},
		func(t *scene.Texture) {
			if t.GLID != 0 {
				return
			}
			if err := UploadTexture(t); err != nil && firstErr == nil {
				firstErr = err
			}
		},
	)
	return firstErr
}

// Release frees the GPU copies of the library's meshes and textures.
func (b *Backend) Release(assets *scene.Assets) {
	assets.Each(
		func(m *scene.Mesh) {
			if gpu, ok := b.meshes[m]; ok {
				gpu.destroy()
				delete(b.meshes, m)
				m.GPUData = nil
			}
		},
		DeleteTexture,
	)
}

func (b *Backend) programFor(pass renderer.Pass) *program {
	switch pass {
	case renderer.PassPick:
		return b.pick
	case renderer.PassGeometry:
		return b.geometry
	default:
		return b.draw
	}
}

func (b *Backend) BeginPass(pass renderer.Pass, f *renderer.Frame) {
	switch pass {
	case renderer.PassPick:
		b.pickBuffer.Bind()
	case renderer.PassGeometry:
		b.gbuffer.BindForWriting()
	default:
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		c := f.ClearColor
		gl.ClearColor(c.R, c.G, c.B, c.A)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	}

	p := b.programFor(pass)
	p.use()
	p.setMat4("projection", &f.Projection)
	p.setInt("tex", 0)
	setLights(p, f)
}

func setLights(p *program, f *renderer.Frame) {
	p.setVec3("ambientLight", f.Ambient)
	p.setUint("numLights", uint32(len(f.LightPositions)))
	p.setVec4s("lightPositions", f.LightPositions)
	p.setVec3s("lightColors", f.LightColors)
	p.setUint("selectedID", f.SelectedID)
}

func (b *Backend) Draw(pass renderer.Pass, f *renderer.Frame, call *renderer.DrawCall) {
	e := call.Entity
	gpu, ok := b.meshes[e.Mesh]
	if !ok {
		gpu = uploadMesh(e.Mesh)
		if gpu == nil {
			return
		}
		b.meshes[e.Mesh] = gpu
	}

	switch e.Cull {
	case core.CullNone:
		gl.Disable(gl.CULL_FACE)
	case core.CullFront:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}

	p := b.programFor(pass)
	p.setVec3("diffuseColor", e.DiffuseColor)
	p.setVec3("specularColor", e.SpecularColor)
	p.setFloat("shininess", e.Shininess)
	p.setUint("objectID", e.ObjectID)
	p.setMat4("modelview", &call.ModelView)

	tex := b.white
	if e.Texture != nil && e.Texture.GLID != 0 {
		tex = e.Texture.GLID
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gpu.draw()
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (b *Backend) EndPass(pass renderer.Pass) {
	switch pass {
	case renderer.PassPick:
		b.pickBuffer.Unbind()
	case renderer.PassGeometry:
		b.gbuffer.UnbindForWriting()
	}
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	b.checkError(pass.String() + " pass")
}

// Light shades the G-buffer into the default framebuffer.
func (b *Backend) Light(f *renderer.Frame) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	c := f.ClearColor
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	b.gbuffer.BindForRender()
	p := b.lighting
	p.use()
	p.setFloat("screenWidth", float32(f.Width))
	p.setFloat("screenHeight", float32(f.Height))
	p.setInt("texPosition", GBufferPosition)
	p.setInt("texDiffuse", GBufferDiffuse)
	p.setInt("texNormal", GBufferNormal)
	p.setInt("texTexCoord", GBufferTexCoord)
	p.setInt("texDiffuseColor", GBufferDiffuseColor)
	p.setInt("texSpecularColor", GBufferSpecularColor)
	p.setInt("texShininess", GBufferShininess)
	setLights(p, f)

	gl.Disable(gl.DEPTH_TEST)
	b.quad.draw()
	gl.Enable(gl.DEPTH_TEST)

	b.gbuffer.UnbindForRender()
	b.checkError("lighting pass")
}

// ShowGBuffer tiles position, diffuse, normal and specular color across the
// four quadrants of the screen.
func (b *Backend) ShowGBuffer(f *renderer.Frame) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	c := f.ClearColor
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	w, h := b.width, b.height
	hw, hh := w/2, h/2
	b.gbuffer.Blit(GBufferPosition, 0, 0, hw, hh)
	b.gbuffer.Blit(GBufferDiffuse, 0, hh, hw, h)
	b.gbuffer.Blit(GBufferNormal, hw, hh, w, h)
	b.gbuffer.Blit(GBufferSpecularColor, hw, 0, w, hh)
	b.checkError("gbuffer blit")
}

// ReadID and Size let the backend act as the framebuffer picker's source.
func (b *Backend) ReadID(x, y int) (uint32, error) {
	if b.pickBuffer == nil {
		return 0, nil
	}
	return b.pickBuffer.ReadID(x, y)
}

func (b *Backend) Size() (int, int) { return int(b.width), int(b.height) }

func (b *Backend) checkError(where string) {
	if e := gl.GetError(); e != gl.NO_ERROR {
		slog.Debug("gl error", "where", where, "code", fmt.Sprintf("0x%X", e))
	}
}

// Destroy frees every GPU resource owned by the backend.
func (b *Backend) Destroy() {
	for m, gpu := range b.meshes {
		gpu.destroy()
		m.GPUData = nil
	}
	b.meshes = nil
	for _, p := range []*program{b.draw, b.pick, b.geometry, b.lighting} {
		p.destroy()
	}
	if b.pickBuffer != nil {
		b.pickBuffer.Destroy()
	}
	if b.gbuffer != nil {
		b.gbuffer.Destroy()
	}
	if b.quad != nil {
		b.quad.destroy()
	}
	if b.white != 0 {
		gl.DeleteTextures(1, &b.white)
	}
}

var _ renderer.Backend = (*Backend)(nil)
