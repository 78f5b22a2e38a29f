package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneview/core"
	"sceneview/math"
)

func TestNewEntityDefaults(t *testing.T) {
	e := NewEntity("table", "wood", 5)
	assert.Equal(t, "table", e.MeshName)
	assert.Equal(t, "wood", e.TextureName)
	assert.Equal(t, uint32(5), e.ObjectID)
	assert.Equal(t, math.Vector3{1, 1, 1}, e.Scale)
	assert.Equal(t, math.Vector3{1, 1, 1}, e.DiffuseColor)
	assert.Equal(t, math.Vector3{}, e.SpecularColor)
	assert.Equal(t, float32(0), e.Shininess)
	assert.Equal(t, core.CullBack, e.Cull)
	assertMat4(t, math.Identity(), e.ModelMatrix())
}

func TestApplyTransformOrder(t *testing.T) {
	e := NewEntity("m", "", 1)
	e.Translation = math.Vector3{1, 2, 3}
	e.Rotation = math.Vector3{10, 20, 30}
	e.Scale = math.Vector3{2, 3, 4}

	want := math.Identity()
	want.Translate(1, 2, 3)
	want.Rotate(20, 0, 1, 0)
	want.Rotate(30, 0, 0, 1)
	want.Rotate(10, 1, 0, 0)
	want.Scale(2, 3, 4)

	assertMat4(t, want, e.ModelMatrix())

	stack := math.NewMatrix4Stack()
	stack.Translate(5, 0, 0)
	e.ApplyTransform(stack)
	parent := math.Identity()
	parent.Translate(5, 0, 0)
	assertMat4(t, parent.Mul(want), stack.Top())
	assert.Equal(t, 1, stack.Depth())
}

func TestModelMatrixYawMovesPoint(t *testing.T) {
	e := NewEntity("m", "", 1)
	e.Rotation = math.Vector3{0, 90, 0}
	assertVec3(t, math.Vector3{0, 0, -1}, e.ModelMatrix().MulPoint(math.Vector3{1, 0, 0}))
}

func TestTransformSnapshot(t *testing.T) {
	e := NewEntity("m", "", 1)
	e.Translation = math.Vector3{1, 0, 0}
	snap := e.Transform()

	e.Translation = math.Vector3{9, 9, 9}
	e.Scale = math.Vector3{2, 2, 2}
	e.SetTransform(snap)

	assert.Equal(t, math.Vector3{1, 0, 0}, e.Translation)
	assert.Equal(t, math.Vector3{1, 1, 1}, e.Scale)
}

func TestEntityBounds(t *testing.T) {
	e := NewEntity("cube", "", 1)
	_, ok := e.Bounds()
	assert.False(t, ok)

	e.Mesh = CreateCube(2)
	e.Translation = math.Vector3{10, 0, 0}
	e.Scale = math.Vector3{0.5, 0.5, 0.5}
	box, ok := e.Bounds()
	require.True(t, ok)
	assertVec3(t, math.Vector3{9.5, -0.5, -0.5}, box.Min)
	assertVec3(t, math.Vector3{10.5, 0.5, 0.5}, box.Max)
}

func TestEyeSpaceLights(t *testing.T) {
	view := math.Identity()
	view.Translate(0, 0, -5)

	lights := []Light{
		{Position: math.Vector4{1, 1, 1, 0}, Color: math.Vector3{1, 0, 0}},
		{Position: math.Vector4{0, 4, 0, 1}, Color: math.Vector3{0, 1, 0}},
	}
	pos, col := EyeSpace(lights, view)
	require.Len(t, pos, 2)
	// directional lights ignore translation
	assert.Equal(t, math.Vector4{1, 1, 1, 0}, pos[0])
	assert.Equal(t, math.Vector4{0, 4, -5, 1}, pos[1])
	assert.Equal(t, math.Vector3{0, 1, 0}, col[1])
	assert.True(t, lights[0].Directional())
	assert.False(t, lights[1].Directional())
}

func TestEyeSpaceCapsLights(t *testing.T) {
	lights := make([]Light, MaxLights+3)
	pos, col := EyeSpace(lights, math.Identity())
	assert.Len(t, pos, MaxLights)
	assert.Len(t, col, MaxLights)
}
