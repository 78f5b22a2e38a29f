package renderer

import (
	"errors"
	"fmt"
	"log/slog"

	"sceneview/core"
	"sceneview/math"
	"sceneview/scene"
)

// Options configures a RenderEngine.
type Options struct {
	ClearColor     core.Color
	FrustumCulling bool
}

func DefaultOptions() Options {
	return Options{
		ClearColor:     core.Color{R: 0.1, G: 0.1, B: 0.2, A: 1},
		FrustumCulling: true,
	}
}

// Stats describes the last rendered frame.
type Stats struct {
	Entities  int
	Drawn     int
	Culled    int
	Triangles int
}

// RenderEngine composes frames with an OpenGL-style projection and
// modelview stack and hands the result to a Backend.
type RenderEngine struct {
	backend Backend

	Projection math.Matrix4Stack
	ModelView  math.Matrix4Stack

	ClearColor     core.Color
	FrustumCulling bool

	width, height int
	frame         Frame
	calls         []DrawCall
	stats         Stats
}

func NewRenderEngine(backend Backend, opts Options) *RenderEngine {
	return &RenderEngine{
		backend:        backend,
		ClearColor:     opts.ClearColor,
		FrustumCulling: opts.FrustumCulling,
	}
}

// Resize updates the viewport and resizes the offscreen buffers.
func (re *RenderEngine) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil // minimised
	}
	if err := re.backend.Resize(width, height); err != nil {
		return fmt.Errorf("resize %dx%d: %w", width, height, err)
	}
	re.width, re.height = width, height
	return nil
}

func (re *RenderEngine) Size() (int, int) { return re.width, re.height }

func (re *RenderEngine) Stats() Stats { return re.stats }

// Render draws one frame of s through pipeline p.
func (re *RenderEngine) Render(s *scene.Scene, cam *scene.OrbitCamera, p Pipeline, selected uint32) error {
	if s == nil || cam == nil {
		return errors.New("render: no scene or camera")
	}
	if re.width <= 0 || re.height <= 0 {
		return nil
	}

	re.compose(s, cam, selected)

	switch p {
	case PipelineGBuffer:
		re.runPass(PassGeometry)
		re.backend.ShowGBuffer(&re.frame)
	case PipelineDeferred:
		re.runPass(PassPick)
		re.runPass(PassGeometry)
		re.backend.Light(&re.frame)
	default:
		re.runPass(PassPick)
		re.runPass(PassForward)
	}
	return nil
}

// compose fills the frame uniforms and the draw list. The same list feeds
// every pass so picking always matches what is on screen.
func (re *RenderEngine) compose(s *scene.Scene, cam *scene.OrbitCamera, selected uint32) {
	aspect := float32(re.width) / float32(re.height)
	cam.UpdateAspectRatio(float32(re.width), float32(re.height))

	re.Projection.LoadIdentity()
	cam.ApplyProjection(&re.Projection, aspect)

	re.ModelView.LoadIdentity()
	cam.ApplyView(&re.ModelView)

	positions, colors := scene.EyeSpace(s.Lights, re.ModelView.Top())
	re.frame = Frame{
		Width:          re.width,
		Height:         re.height,
		ClearColor:     re.ClearColor,
		Projection:     re.Projection.Top(),
		Ambient:        s.Ambient,
		LightPositions: positions,
		LightColors:    colors,
		SelectedID:     selected,
	}

	drawables := s.Drawables()
	re.calls = re.calls[:0]
	re.stats = Stats{Entities: len(drawables)}

	for _, e := range drawables {
		if e.Mesh == nil {
			continue
		}
		re.ModelView.Push()
		e.ApplyTransform(&re.ModelView)
		mv := re.ModelView.Top()
		re.ModelView.Pop()

		if re.FrustumCulling && !re.visible(e.Mesh, mv) {
			re.stats.Culled++
			continue
		}
		re.calls = append(re.calls, DrawCall{Entity: e, ModelView: mv})
		re.stats.Drawn++
		re.stats.Triangles += e.Mesh.TriangleCount()
	}

	if re.stats.Culled > 0 {
		slog.Debug("frustum culled", "culled", re.stats.Culled, "drawn", re.stats.Drawn)
	}
}

// visible tests the mesh bounds against the frustum in object space.
func (re *RenderEngine) visible(mesh *scene.Mesh, modelView math.Matrix4) bool {
	f := scene.FrustumFromMatrix(re.frame.Projection.Mul(modelView))
	return mesh.LocalAABB.IntersectsFrustum(&f)
}

func (re *RenderEngine) runPass(pass Pass) {
	re.backend.BeginPass(pass, &re.frame)
	for i := range re.calls {
		re.backend.Draw(pass, &re.frame, &re.calls[i])
	}
	re.backend.EndPass(pass)
}
