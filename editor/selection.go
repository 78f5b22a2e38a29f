package editor

import "sceneview/scene"

// Selection is the picked object id, 0 when nothing is selected. Index
// caches the entity position and is revalidated on every lookup.
type Selection struct {
	ID    uint32
	Index int
}

func (s *Selection) Clear() {
	s.ID = 0
	s.Index = -1
}

// Set selects id. Ids without an entity (the cursor) stay selected but
// resolve to no entity.
func (s *Selection) Set(id uint32, sc *scene.Scene) {
	s.ID = id
	s.Index, _ = sc.FindByID(id)
}

func (s *Selection) HasSelection() bool {
	return s.ID != 0
}

// Entity returns the selected entity, or nil.
func (s *Selection) Entity(sc *scene.Scene) *scene.Entity {
	if s.ID == 0 {
		return nil
	}
	if s.Index >= 0 && s.Index < len(sc.Entities) && sc.Entities[s.Index].ObjectID == s.ID {
		return sc.Entities[s.Index]
	}
	var e *scene.Entity
	s.Index, e = sc.FindByID(s.ID)
	return e
}
