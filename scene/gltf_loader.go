package scene

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"sceneview/core"
	"sceneview/math"
)

var identityGLTF = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// LoadGLTF opens a .glb or .gltf file and flattens every triangle primitive
// reachable from the default scene into one mesh, with node transforms
// baked into the vertices.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	mesh, err := buildGLTFMesh(name, doc)
	if err != nil {
		return nil, fmt.Errorf("load gltf %q: %w", path, err)
	}
	slog.Debug("loaded gltf", "path", path, "vertices", len(mesh.Vertices), "triangles", mesh.TriangleCount())
	return mesh, nil
}

type gltfBuilder struct {
	doc      *gltf.Document
	stack    math.Matrix4Stack
	vertices []core.Vertex
	indices  []uint32
}

func buildGLTFMesh(name string, doc *gltf.Document) (*Mesh, error) {
	b := &gltfBuilder{doc: doc}
	for _, root := range gltfRoots(doc) {
		if err := b.walk(root, 0); err != nil {
			return nil, err
		}
	}
	if len(b.indices) == 0 {
		return nil, ErrNoGeometry
	}
	return NewMesh(name, b.vertices, b.indices), nil
}

// gltfRoots returns the default scene's nodes, or every parentless node when
// the document names no scene.
func gltfRoots(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	if len(doc.Scenes) > 0 {
		return doc.Scenes[0].Nodes
	}
	hasParent := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

const maxGLTFDepth = 64

func (b *gltfBuilder) walk(index, depth int) error {
	if index < 0 || index >= len(b.doc.Nodes) {
		return fmt.Errorf("node %d out of range", index)
	}
	if depth > maxGLTFDepth {
		return fmt.Errorf("node %d: hierarchy deeper than %d", index, maxGLTFDepth)
	}
	node := b.doc.Nodes[index]

	b.stack.Push()
	defer b.stack.Pop()
	b.stack.MulMatrix(nodeMatrix(node))

	if node.Mesh != nil && *node.Mesh < len(b.doc.Meshes) {
		for pi, prim := range b.doc.Meshes[*node.Mesh].Primitives {
			if err := b.appendPrimitive(prim); err != nil {
				return fmt.Errorf("mesh %d primitive %d: %w", *node.Mesh, pi, err)
			}
		}
	}
	for _, child := range node.Children {
		if err := b.walk(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// nodeMatrix returns the node's local transform: its explicit matrix when
// set, otherwise T * R * S.
func nodeMatrix(n *gltf.Node) math.Matrix4 {
	if m := n.MatrixOrDefault(); m != identityGLTF {
		var out math.Matrix4
		for i, v := range m {
			out[i/4][i%4] = float32(v)
		}
		return out
	}

	t := n.TranslationOrDefault()
	r := n.RotationOrDefault()
	s := n.ScaleOrDefault()

	m := math.Identity()
	m.Translate(float32(t[0]), float32(t[1]), float32(t[2]))
	m.SetMul(math.Quaternion{float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3])}.Normalize().Matrix4())
	m.Scale(float32(s[0]), float32(s[1]), float32(s[2]))
	return m
}

func (b *gltfBuilder) appendPrimitive(prim *gltf.Primitive) error {
	if prim.Mode != gltf.PrimitiveTriangles {
		slog.Debug("skipping non-triangle gltf primitive", "mode", prim.Mode)
		return nil
	}
	doc := b.doc

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("normals: %w", err)
		}
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("texcoords: %w", err)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		if indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil); err != nil {
			return fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	model := b.stack.Top()
	normalMatrix, ok := model.Inverse()
	if ok {
		normalMatrix.Transpose()
	} else {
		normalMatrix = model
	}

	base := uint32(len(b.vertices))
	start := len(b.vertices)
	for i, p := range positions {
		v := core.Vertex{Position: model.MulPoint(math.Vector3(p))}
		if i < len(normals) {
			v.Normal = normalMatrix.MulDirection(math.Vector3(normals[i])).Normalize()
		}
		if i < len(uvs) {
			v.UV = math.Vector2(uvs[i])
		}
		b.vertices = append(b.vertices, v)
	}
	for _, idx := range indices {
		if int(idx) >= len(positions) {
			return fmt.Errorf("index %d out of range", idx)
		}
		b.indices = append(b.indices, base+idx)
	}
	if len(normals) == 0 {
		generateNormals(b.vertices[start:], shiftIndices(b.indices[len(b.indices)-len(indices):], base))
	}
	return nil
}

func shiftIndices(indices []uint32, base uint32) []uint32 {
	out := make([]uint32, len(indices))
	for i, idx := range indices {
		out[i] = idx - base
	}
	return out
}
