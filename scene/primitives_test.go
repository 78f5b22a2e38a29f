package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sceneview/math"
)

// assertOutwardFaces checks every triangle's winding normal points along the
// vertex normals.
func assertOutwardFaces(t *testing.T, m *Mesh) {
	t.Helper()
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		face := b.Sub(a).Cross(c.Sub(a))
		if face.Length() < 1e-4 {
			continue // degenerate at the poles
		}
		n := m.Vertices[m.Indices[3*i]].Normal
		assert.Greater(t, face.Dot(n), float32(0), "triangle %d", i)
	}
}

func TestCreateSphere(t *testing.T) {
	m := CreateSphere(2, 8, 4)
	assert.Len(t, m.Vertices, 5*9)
	assert.Equal(t, 8*4*2, m.TriangleCount())
	for _, v := range m.Vertices {
		assert.InDelta(t, 2, v.Position.Length(), 1e-4)
	}
	assertVec3(t, math.Vector3{-2, -2, -2}, m.LocalAABB.Min)
	assertVec3(t, math.Vector3{2, 2, 2}, m.LocalAABB.Max)
	assertOutwardFaces(t, m)

	small := CreateSphere(1, 1, 1)
	assert.Equal(t, 3*2*2, small.TriangleCount(), "clamped to 3 segments and 2 rings")
}

func TestCreateQuad(t *testing.T) {
	m := CreateQuad(4)
	assert.Equal(t, 4, m.TriangleCount())
	assertVec3(t, math.Vector3{-2, -2, 0}, m.LocalAABB.Min)
	assertVec3(t, math.Vector3{2, 2, 0}, m.LocalAABB.Max)
	assertOutwardFaces(t, m)
}

func TestPlaceholderMesh(t *testing.T) {
	assert.Equal(t, "sphere", placeholderMesh("sphere").Name)
	assert.Equal(t, 4, placeholderMesh("floor").TriangleCount())
	assert.Equal(t, 4, placeholderMesh("wall").TriangleCount())
	teapot := placeholderMesh("teapot")
	assert.Equal(t, "teapot", teapot.Name)
	assert.Equal(t, 12, teapot.TriangleCount())
}
