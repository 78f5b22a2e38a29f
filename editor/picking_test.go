package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneview/math"
	"sceneview/scene"
)

type fakeIDBuffer struct {
	w, h   int
	id     uint32
	err    error
	gotX   int
	gotY   int
	called bool
}

func (b *fakeIDBuffer) ReadID(x, y int) (uint32, error) {
	b.gotX, b.gotY, b.called = x, y, true
	return b.id, b.err
}

func (b *fakeIDBuffer) Size() (int, int) { return b.w, b.h }

type fixedViewport struct{ w, h int }

func (v fixedViewport) Size() (int, int) { return v.w, v.h }

func TestFramebufferPickerFlipsY(t *testing.T) {
	buf := &fakeIDBuffer{w: 640, h: 480, id: 7}
	p := FramebufferPicker{Buffer: buf}

	id, err := p.Pick(10, 20)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), id)
	assert.Equal(t, 10, buf.gotX)
	assert.Equal(t, 460, buf.gotY)
}

func TestFramebufferPickerOutOfBounds(t *testing.T) {
	buf := &fakeIDBuffer{w: 640, h: 480, id: 7}
	p := FramebufferPicker{Buffer: buf}

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {640, 0}, {0, 480}} {
		id, err := p.Pick(pos[0], pos[1])
		require.NoError(t, err)
		assert.Zero(t, id, "pos %v", pos)
	}
	assert.False(t, buf.called)
}

func TestFramebufferPickerError(t *testing.T) {
	readErr := errors.New("incomplete")
	p := FramebufferPicker{Buffer: &fakeIDBuffer{w: 4, h: 4, err: readErr}}

	_, err := p.Pick(1, 1)
	assert.ErrorIs(t, err, readErr)
}

func cubeEntity(id uint32, at math.Vector3) *scene.Entity {
	e := scene.NewEntity("cube", "", id)
	e.Mesh = scene.CreateCube(1)
	e.Translation = at
	return e
}

func TestRaycastPicker(t *testing.T) {
	s := scene.NewScene()
	s.Add(cubeEntity(42, math.Vector3{0, 1, 0}))
	cam := scene.NewOrbitCamera()

	p := RaycastPicker{
		Scene:    func() *scene.Scene { return s },
		Camera:   cam,
		Viewport: fixedViewport{200, 100},
	}

	id, err := p.Pick(100, 50)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), id)

	id, err = p.Pick(0, 0)
	require.NoError(t, err)
	assert.Zero(t, id)

	assert.Equal(t, float32(1), cam.AspectRatio, "picking leaves the camera alone")
}

func TestSelectionRevalidates(t *testing.T) {
	s := scene.DefaultLayout()
	var sel Selection
	sel.Set(5, s)
	table := sel.Entity(s)
	require.NotNil(t, table)
	idx := sel.Index

	s.Remove(2)
	assert.Same(t, table, sel.Entity(s))
	assert.Equal(t, idx-1, sel.Index)

	s.Remove(5)
	assert.Nil(t, sel.Entity(s))
	assert.True(t, sel.HasSelection())

	sel.Clear()
	assert.False(t, sel.HasSelection())
	assert.Equal(t, -1, sel.Index)
}
