package renderer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneview/math"
	"sceneview/scene"
)

type fakeBackend struct {
	events    []string
	draws     map[Pass][]DrawCall
	frame     Frame
	resizeErr error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{draws: map[Pass][]DrawCall{}}
}

func (b *fakeBackend) Resize(w, h int) error {
	b.events = append(b.events, fmt.Sprintf("resize %dx%d", w, h))
	return b.resizeErr
}

func (b *fakeBackend) BeginPass(p Pass, f *Frame) {
	b.events = append(b.events, "begin "+p.String())
	b.frame = *f
}

func (b *fakeBackend) Draw(p Pass, f *Frame, c *DrawCall) {
	b.draws[p] = append(b.draws[p], *c)
}

func (b *fakeBackend) EndPass(p Pass) { b.events = append(b.events, "end "+p.String()) }

func (b *fakeBackend) Light(f *Frame) {
	b.events = append(b.events, "light")
	b.frame = *f
}

func (b *fakeBackend) ShowGBuffer(f *Frame) { b.events = append(b.events, "show gbuffer") }

func assertMat4(t *testing.T, want, got math.Matrix4, msgAndArgs ...any) {
	t.Helper()
	w, g := want.Array(), got.Array()
	assert.InDeltaSlice(t, w[:], g[:], 1e-4, msgAndArgs...)
}

func cube(name string, id uint32, at math.Vector3) *scene.Entity {
	e := scene.NewEntity("cube", "", id)
	e.Name = name
	e.Mesh = scene.CreateCube(1)
	e.Translation = at
	return e
}

func newTestEngine(t *testing.T) (*RenderEngine, *fakeBackend) {
	t.Helper()
	b := newFakeBackend()
	re := NewRenderEngine(b, DefaultOptions())
	require.NoError(t, re.Resize(800, 400))
	b.events = nil
	return re, b
}

func testScene() *scene.Scene {
	s := scene.NewScene()
	s.Lights = scene.DefaultLights()
	s.Ambient = scene.DefaultAmbient
	s.Add(cube("a", 2, math.Vector3{0, 1, 0}))
	s.Add(cube("b", 3, math.Vector3{1, 0.5, -1}))
	s.Cursor.Mesh = scene.CreateCube(1)
	return s
}

func TestPassOrder(t *testing.T) {
	tests := []struct {
		pipeline Pipeline
		want     []string
	}{
		{PipelineForward, []string{"begin pick", "end pick", "begin forward", "end forward"}},
		{PipelineGBuffer, []string{"begin geometry", "end geometry", "show gbuffer"}},
		{PipelineDeferred, []string{"begin pick", "end pick", "begin geometry", "end geometry", "light"}},
	}
	for _, tt := range tests {
		t.Run(tt.pipeline.String(), func(t *testing.T) {
			re, b := newTestEngine(t)
			require.NoError(t, re.Render(testScene(), scene.NewOrbitCamera(), tt.pipeline, 0))
			assert.Equal(t, tt.want, b.events)
			assert.Equal(t, tt.pipeline.UsesPickPass(), len(b.draws[PassPick]) > 0)
		})
	}
}

func TestStacksBalanced(t *testing.T) {
	re, _ := newTestEngine(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, re.Render(testScene(), scene.NewOrbitCamera(), PipelineDeferred, 0))
	}
	assert.Equal(t, 1, re.ModelView.Depth())
	assert.Equal(t, 1, re.Projection.Depth())
}

func TestFrameMatrices(t *testing.T) {
	re, b := newTestEngine(t)
	s := testScene()
	cam := scene.NewOrbitCamera()
	require.NoError(t, re.Render(s, cam, PipelineForward, 3))

	assert.Equal(t, float32(2), cam.AspectRatio)
	assertMat4(t, cam.ProjectionMatrix(), b.frame.Projection)
	assertMat4(t, cam.ViewMatrix(), re.ModelView.Top(), "modelview is left at the view matrix")
	assert.Equal(t, uint32(3), b.frame.SelectedID)
	assert.Equal(t, 800, b.frame.Width)
	assert.Equal(t, 400, b.frame.Height)

	draws := b.draws[PassForward]
	require.Len(t, draws, 2)
	for _, d := range draws {
		assertMat4(t, cam.ViewMatrix().Mul(d.Entity.ModelMatrix()), d.ModelView, d.Entity.Name)
	}
	assert.Equal(t, b.draws[PassPick], draws, "pick pass sees the same draws")
}

func TestLightsInEyeSpace(t *testing.T) {
	re, b := newTestEngine(t)
	s := testScene()
	cam := scene.NewOrbitCamera()
	require.NoError(t, re.Render(s, cam, PipelineDeferred, 0))

	view := cam.ViewMatrix()
	require.Len(t, b.frame.LightPositions, len(s.Lights))
	for i, l := range s.Lights {
		want := view.MulVector4(l.Position)
		assert.InDeltaSlice(t, want[:], b.frame.LightPositions[i][:], 1e-4)
		assert.Equal(t, l.Color, b.frame.LightColors[i])
	}
	assert.Equal(t, scene.DefaultAmbient, b.frame.Ambient)
	assert.Equal(t, float32(0), b.frame.LightPositions[0][3], "directional light keeps w=0")
}

func TestCursorDrawnFirst(t *testing.T) {
	re, b := newTestEngine(t)
	s := testScene()
	s.CursorHidden = false
	require.NoError(t, re.Render(s, scene.NewOrbitCamera(), PipelineForward, 0))

	draws := b.draws[PassForward]
	require.Len(t, draws, 3)
	assert.Equal(t, uint32(scene.CursorID), draws[0].Entity.ObjectID)
}

func TestFrustumCulling(t *testing.T) {
	re, b := newTestEngine(t)
	s := testScene()
	s.Add(cube("behind", 4, math.Vector3{20, 1, 20}))

	require.NoError(t, re.Render(s, scene.NewOrbitCamera(), PipelineForward, 0))
	assert.Len(t, b.draws[PassForward], 2)
	assert.Len(t, b.draws[PassPick], 2)
	assert.Equal(t, Stats{Entities: 3, Drawn: 2, Culled: 1, Triangles: 24}, re.Stats())

	re.FrustumCulling = false
	b.draws = map[Pass][]DrawCall{}
	require.NoError(t, re.Render(s, scene.NewOrbitCamera(), PipelineForward, 0))
	assert.Len(t, b.draws[PassForward], 3)
}

func TestSkipsEntitiesWithoutMesh(t *testing.T) {
	re, b := newTestEngine(t)
	s := testScene()
	s.Add(scene.NewEntity("missing", "", 9))
	require.NoError(t, re.Render(s, scene.NewOrbitCamera(), PipelineForward, 0))
	assert.Len(t, b.draws[PassForward], 2)
}

func TestRenderNeedsSize(t *testing.T) {
	b := newFakeBackend()
	re := NewRenderEngine(b, DefaultOptions())
	require.NoError(t, re.Render(testScene(), scene.NewOrbitCamera(), PipelineForward, 0))
	assert.Empty(t, b.events)

	require.NoError(t, re.Resize(0, 0))
	assert.Empty(t, b.events, "minimised windows keep the old buffers")

	assert.Error(t, re.Render(nil, scene.NewOrbitCamera(), PipelineForward, 0))
}

func TestResizeError(t *testing.T) {
	b := newFakeBackend()
	b.resizeErr = errors.New("incomplete")
	re := NewRenderEngine(b, DefaultOptions())

	err := re.Resize(10, 10)
	assert.ErrorIs(t, err, b.resizeErr)
	w, h := re.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestParsePipeline(t *testing.T) {
	for _, p := range []Pipeline{PipelineForward, PipelineGBuffer, PipelineDeferred} {
		got, err := ParsePipeline(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := ParsePipeline("Deferred")
	require.NoError(t, err)
	assert.Equal(t, PipelineDeferred, got)

	_, err = ParsePipeline("raytraced")
	assert.Error(t, err)
}
