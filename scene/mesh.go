package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"sceneview/core"
	"sceneview/math"
)

// ErrNoGeometry is returned by the mesh loaders when a file holds no triangles.
var ErrNoGeometry = errors.New("no geometry")

// Mesh holds CPU-side indexed triangles. GPU upload is managed by the
// renderer backend.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32

	// LocalAABB bounds the vertex positions in model space.
	LocalAABB AABB

	// GPUData is set by the renderer backend (e.g. *opengl.GPUMesh).
	GPUData any
}

// NewMesh builds a Mesh and computes its local-space AABB.
func NewMesh(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
	if len(vertices) > 0 {
		m.LocalAABB = computeLocalAABB(vertices)
	}
	return m
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the model-space corners of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c math.Vector3) {
	return m.Vertices[m.Indices[3*i]].Position,
		m.Vertices[m.Indices[3*i+1]].Position,
		m.Vertices[m.Indices[3*i+2]].Position
}

func computeLocalAABB(vertices []core.Vertex) AABB {
	box := AABB{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		box.Min = box.Min.Min(v.Position)
		box.Max = box.Max.Max(v.Position)
	}
	return box
}

// LoadMesh loads an OBJ or glTF model, choosing the parser from the file
// contents and falling back to the extension.
func LoadMesh(path string) (*Mesh, error) {
	head := make([]byte, 262)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh %q: %w", path, err)
	}
	n, _ := f.Read(head)
	f.Close()

	// Binary glTF carries a magic header; text formats fall through to the
	// extension.
	if kind, _ := filetype.Match(head[:n]); kind == glbType {
		return LoadGLTF(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	}
	return nil, fmt.Errorf("load mesh %q: unsupported model format", path)
}

var glbType = filetype.NewType("glb", "model/gltf-binary")

func init() {
	filetype.AddMatcher(glbType, func(buf []byte) bool {
		return len(buf) >= 4 && string(buf[:4]) == "glTF"
	})
}

// CreateCube returns an axis-aligned cube with per-face normals and UVs.
func CreateCube(size float32) *Mesh {
	s := size / 2
	faces := []struct {
		normal  math.Vector3
		corners [4]math.Vector3
	}{
		{math.Vector3{0, 0, 1}, [4]math.Vector3{{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}}},
		{math.Vector3{0, 0, -1}, [4]math.Vector3{{s, -s, -s}, {-s, -s, -s}, {-s, s, -s}, {s, s, -s}}},
		{math.Vector3{0, 1, 0}, [4]math.Vector3{{-s, s, s}, {s, s, s}, {s, s, -s}, {-s, s, -s}}},
		{math.Vector3{0, -1, 0}, [4]math.Vector3{{-s, -s, -s}, {s, -s, -s}, {s, -s, s}, {-s, -s, s}}},
		{math.Vector3{1, 0, 0}, [4]math.Vector3{{s, -s, s}, {s, -s, -s}, {s, s, -s}, {s, s, s}}},
		{math.Vector3{-1, 0, 0}, [4]math.Vector3{{-s, -s, -s}, {-s, -s, s}, {-s, s, s}, {-s, s, -s}}},
	}
	uvs := [4]math.Vector2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]core.Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, p := range f.corners {
			vertices = append(vertices, core.Vertex{Position: p, UV: uvs[i], Normal: f.normal})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	return NewMesh("cube", vertices, indices)
}
