package scene

import (
	"sceneview/core"
	"sceneview/math"
)

// Entity is one placed object: a mesh instance with its own transform and
// Blinn-Phong material.
type Entity struct {
	Name string

	Translation math.Vector3
	// Rotation holds Euler angles in degrees, applied Y, Z, then X.
	Rotation math.Vector3
	Scale    math.Vector3

	DiffuseColor  math.Vector3
	SpecularColor math.Vector3
	Shininess     float32

	MeshName    string
	TextureName string
	Mesh        *Mesh    `copier:"-"`
	Texture     *Texture `copier:"-"`

	// ObjectID is written into the pick buffer. Zero means "nothing".
	ObjectID uint32 `copier:"-"`
	Cull     core.CullMode
}

// NewEntity returns an entity with identity transform and a white diffuse
// material. Mesh and Texture stay nil until the asset library binds them.
func NewEntity(mesh, texture string, id uint32) *Entity {
	return &Entity{
		Name:         mesh,
		Scale:        math.Vector3{1, 1, 1},
		DiffuseColor: math.Vector3{1, 1, 1},
		MeshName:     mesh,
		TextureName:  texture,
		ObjectID:     id,
		Cull:         core.CullBack,
	}
}

// ApplyTransform right-multiplies the stack's top by the entity's model
// transform.
func (e *Entity) ApplyTransform(stack *math.Matrix4Stack) {
	stack.TranslateV(e.Translation)
	stack.Rotate(e.Rotation[1], 0, 1, 0)
	stack.Rotate(e.Rotation[2], 0, 0, 1)
	stack.Rotate(e.Rotation[0], 1, 0, 0)
	stack.ScaleV(e.Scale)
}

// ModelMatrix returns the entity transform on its own.
func (e *Entity) ModelMatrix() math.Matrix4 {
	var stack math.Matrix4Stack
	e.ApplyTransform(&stack)
	return stack.Top()
}

// Transform is the editable part of an entity, captured for undo.
type Transform struct {
	Translation math.Vector3
	Rotation    math.Vector3
	Scale       math.Vector3
}

func (e *Entity) Transform() Transform {
	return Transform{Translation: e.Translation, Rotation: e.Rotation, Scale: e.Scale}
}

func (e *Entity) SetTransform(t Transform) {
	e.Translation = t.Translation
	e.Rotation = t.Rotation
	e.Scale = t.Scale
}

// Bounds returns the world-space AABB of the entity's mesh, or false when no
// mesh is bound.
func (e *Entity) Bounds() (AABB, bool) {
	if e.Mesh == nil || len(e.Mesh.Vertices) == 0 {
		return AABB{}, false
	}
	return e.Mesh.LocalAABB.Transform(e.ModelMatrix()), true
}
