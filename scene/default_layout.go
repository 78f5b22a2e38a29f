package scene

import (
	"sceneview/core"
	"sceneview/math"
)

// DefaultLayout builds the furnished room shown when no layout file is given.
func DefaultLayout() *Scene {
	s := NewScene()

	add := func(name, mesh, texture string, id uint32, configure func(e *Entity)) {
		e := NewEntity(mesh, texture, id)
		e.Name = name
		if configure != nil {
			configure(e)
		}
		s.Add(e)
	}
	glossy := func(e *Entity, shininess float32) {
		e.SpecularColor = math.Vector3{0.9, 0.9, 0.9}
		e.Shininess = shininess
	}

	add("floor", "floor", "floor", 2, func(e *Entity) {
		e.Rotation = math.Vector3{90, 0, 0}
	})
	add("wall1", "wall", "wall", 3, func(e *Entity) {
		e.Translation = math.Vector3{0, 0, -5}
	})
	add("wall2", "wall", "wall", 4, func(e *Entity) {
		e.Translation = math.Vector3{-5, 0, 0}
		e.Rotation = math.Vector3{0, 90, 0}
	})
	add("table", "table", "table", 5, func(e *Entity) {
		e.Translation = math.Vector3{0, 0.368736, 0}
		glossy(e, 30)
	})
	add("sphere", "sphere", "sphere", 6, func(e *Entity) {
		e.Translation = math.Vector3{0, 1.3, 0}
		e.Scale = math.Vector3{0.45, 0.45, 0.45}
		glossy(e, 50)
	})

	chair := func(e *Entity) {
		glossy(e, 30)
		e.Cull = core.CullNone
	}
	add("chair1", "chair", "chair", 7, func(e *Entity) {
		e.Translation = math.Vector3{0, 0.555590, -1}
		chair(e)
	})
	add("chair2", "chair", "chair", 8, func(e *Entity) {
		e.Translation = math.Vector3{0, 0.555590, 1}
		e.Rotation = math.Vector3{0, 180, 0}
		chair(e)
	})

	add("skeleton1", "skeleton", "skeleton", 9, func(e *Entity) {
		e.Translation = math.Vector3{1.5, 0, 0}
		e.Scale = math.Vector3{0.2, 0.2, 0.2}
		e.Rotation = math.Vector3{0, -90, 0}
	})
	add("skeleton2", "skeleton", "skeleton", 10, func(e *Entity) {
		e.Translation = math.Vector3{-1.5, 0, 0}
		e.Scale = math.Vector3{0.2, 0.2, 0.2}
		e.Rotation = math.Vector3{0, 90, 0}
	})

	const shelfY = 1.09167975
	shelves := []struct {
		name string
		id   uint32
		x, z float32
		rotY float32
	}{
		{"shelves1", 11, -4.5, 2, -90},
		{"shelves2", 12, -4.5, -2, -90},
		{"shelves3", 13, -2, -4.5, 180},
		{"shelves4", 14, 2, -4.5, 180},
	}
	for _, sh := range shelves {
		add(sh.name, "shelves", "shelves", sh.id, func(e *Entity) {
			e.Translation = math.Vector3{sh.x, shelfY, sh.z}
			e.Scale = math.Vector3{0.75, 0.75, 0.75}
			e.Rotation = math.Vector3{0, sh.rotY, 0}
			glossy(e, 30)
			e.Cull = core.CullNone
		})
	}

	add("chest", "chest", "chest", 15, func(e *Entity) {
		e.Translation = math.Vector3{0, 0.271628, 2.5}
		e.Rotation = math.Vector3{0, 180, 0}
		glossy(e, 30)
	})

	return s
}
