package scene

import (
	"slices"

	"sceneview/math"
)

// CursorID is the pick id of the 3D cursor. It never matches an entity.
const CursorID uint32 = 0xFFFFFF

// Scene is the editable world: placed entities, lights and the 3D cursor.
type Scene struct {
	Entities []*Entity
	Lights   []Light
	Ambient  math.Vector3

	// Cursor marks the camera target; it is drawn and picked like an entity
	// but is not part of Entities.
	Cursor       *Entity
	CursorHidden bool
}

func NewScene() *Scene {
	return &Scene{
		Entities:     make([]*Entity, 0),
		Lights:       DefaultLights(),
		Ambient:      DefaultAmbient,
		Cursor:       NewCursor(),
		CursorHidden: true,
	}
}

// NewCursor returns the small textured cube drawn at the camera target.
func NewCursor() *Entity {
	e := NewEntity("cube", "smile", CursorID)
	e.Name = "cursor"
	e.Scale = math.Vector3{0.05, 0.05, 0.05}
	return e
}

func (s *Scene) Add(e *Entity) {
	s.Entities = append(s.Entities, e)
}

// Insert places e at index i, clamped to the entity list.
func (s *Scene) Insert(i int, e *Entity) {
	i = min(max(i, 0), len(s.Entities))
	s.Entities = slices.Insert(s.Entities, i, e)
}

// Remove deletes the entity with the given id and returns it with its former
// index, or (-1, nil) when absent.
func (s *Scene) Remove(id uint32) (int, *Entity) {
	i, e := s.FindByID(id)
	if e == nil {
		return -1, nil
	}
	s.Entities = slices.Delete(s.Entities, i, i+1)
	return i, e
}

// FindByID returns the index and entity with the given object id, or
// (-1, nil).
func (s *Scene) FindByID(id uint32) (int, *Entity) {
	if id == 0 {
		return -1, nil
	}
	for i, e := range s.Entities {
		if e.ObjectID == id {
			return i, e
		}
	}
	return -1, nil
}

// NextObjectID returns one more than the largest id in use, skipping the
// cursor id.
func (s *Scene) NextObjectID() uint32 {
	var next uint32 = 1
	for _, e := range s.Entities {
		if e.ObjectID >= next && e.ObjectID != CursorID {
			next = e.ObjectID + 1
		}
	}
	if next == CursorID {
		next++
	}
	return next
}

// FollowCamera moves the cursor to the camera target.
func (s *Scene) FollowCamera(c *OrbitCamera) {
	if s.Cursor != nil {
		s.Cursor.Translation = c.Offset
	}
}

func (s *Scene) ToggleCursor() {
	s.CursorHidden = !s.CursorHidden
}

// Drawables returns the entities to render this frame, led by the cursor
// when it is visible.
func (s *Scene) Drawables() []*Entity {
	out := make([]*Entity, 0, len(s.Entities)+1)
	if s.Cursor != nil && !s.CursorHidden {
		out = append(out, s.Cursor)
	}
	return append(out, s.Entities...)
}

// MeshNames lists the distinct mesh names referenced by entities and cursor.
func (s *Scene) MeshNames() []string {
	return s.collectNames(func(e *Entity) string { return e.MeshName })
}

// TextureNames lists the distinct texture names referenced by entities and cursor.
func (s *Scene) TextureNames() []string {
	return s.collectNames(func(e *Entity) string { return e.TextureName })
}

func (s *Scene) collectNames(name func(*Entity) string) []string {
	seen := map[string]bool{}
	var names []string
	all := append(slices.Clone(s.Entities), s.Cursor)
	for _, e := range all {
		if e == nil {
			continue
		}
		n := name(e)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
