package scene

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneview/math"
)

// writeTriangleGLTF writes a .gltf with one triangle mesh under a parent
// node translated by (1,0,0) and a child scaled by 2.
func writeTriangleGLTF(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	positions := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, positions))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []uint16{0, 1, 2}))
	data := base64.StdEncoding.EncodeToString(buf.Bytes())

	doc := fmt.Sprintf(`{
  "asset": {"version": "2.0"},
  "scene": 0,
  "scenes": [{"nodes": [0]}],
  "nodes": [
    {"translation": [1, 0, 0], "children": [1]},
    {"scale": [2, 2, 2], "mesh": 0}
  ],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}, "indices": 1}]}],
  "accessors": [
    {"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 0]},
    {"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
  ],
  "bufferViews": [
    {"buffer": 0, "byteOffset": 0, "byteLength": 36},
    {"buffer": 0, "byteOffset": 36, "byteLength": 6}
  ],
  "buffers": [{"byteLength": 42, "uri": "data:application/octet-stream;base64,%s"}]
}`, data)

	path := filepath.Join(t.TempDir(), "tri.gltf")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestLoadGLTFBakesNodeTransforms(t *testing.T) {
	path := writeTriangleGLTF(t)

	m, err := LoadGLTF(path)
	require.NoError(t, err)
	assert.Equal(t, "tri", m.Name)
	require.Len(t, m.Vertices, 3)
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices)

	assertVec3(t, math.Vector3{1, 0, 0}, m.Vertices[0].Position)
	assertVec3(t, math.Vector3{3, 0, 0}, m.Vertices[1].Position)
	assertVec3(t, math.Vector3{1, 2, 0}, m.Vertices[2].Position)
	for _, v := range m.Vertices {
		assertVec3(t, math.Vector3{0, 0, 1}, v.Normal)
	}

	viaLoadMesh, err := LoadMesh(path)
	require.NoError(t, err)
	assert.Equal(t, m.Vertices, viaLoadMesh.Vertices)
}

func TestNodeMatrixRotation(t *testing.T) {
	// 90 degrees about Y, stored unnormalized
	n := &gltf.Node{
		Translation: [3]float64{1, 2, 3},
		Rotation:    [4]float64{0, 2, 0, 2},
		Scale:       [3]float64{1, 1, 1},
	}
	want := math.Identity()
	want.Translate(1, 2, 3)
	want.Rotate(90, 0, 1, 0)
	assertMat4(t, want, nodeMatrix(n))
}
