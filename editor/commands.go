package editor

import (
	"fmt"

	"github.com/jinzhu/copier"

	"sceneview/math"
	"sceneview/scene"
)

// Command represents an undoable editor action
type Command interface {
	Execute()
	Undo()
	Description() string
}

// History manages undo/redo stacks
type History struct {
	undoStack []Command
	redoStack []Command
	maxDepth  int
}

// NewHistory creates a new history with the given max undo depth
func NewHistory(maxDepth int) *History {
	return &History{
		undoStack: make([]Command, 0, maxDepth),
		redoStack: make([]Command, 0, maxDepth),
		maxDepth:  maxDepth,
	}
}

// Do executes a command and pushes it to the undo stack
func (h *History) Do(cmd Command) {
	cmd.Execute()
	h.undoStack = append(h.undoStack, cmd)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[1:]
	}
	// Clear redo stack on new action
	h.redoStack = h.redoStack[:0]
}

// Undo reverts the last action and returns it, or nil when there is none.
func (h *History) Undo() Command {
	if len(h.undoStack) == 0 {
		return nil
	}
	cmd := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	cmd.Undo()
	h.redoStack = append(h.redoStack, cmd)
	return cmd
}

// Redo reapplies the last undone action and returns it, or nil.
func (h *History) Redo() Command {
	if len(h.redoStack) == 0 {
		return nil
	}
	cmd := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	cmd.Execute()
	h.undoStack = append(h.undoStack, cmd)
	return cmd
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }

func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// Clear wipes all undo/redo history
func (h *History) Clear() {
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
}

// TransformCommand records a transform change on an entity
type TransformCommand struct {
	Entity *scene.Entity
	Old    scene.Transform
	New    scene.Transform
	desc   string
}

func NewTransformCommand(e *scene.Entity, next scene.Transform, desc string) *TransformCommand {
	return &TransformCommand{Entity: e, Old: e.Transform(), New: next, desc: desc}
}

func (c *TransformCommand) Execute()            { c.Entity.SetTransform(c.New) }
func (c *TransformCommand) Undo()               { c.Entity.SetTransform(c.Old) }
func (c *TransformCommand) Description() string { return c.desc }

// DuplicateCommand adds a copy of an entity next to the original. The copy
// shares mesh and texture and gets a fresh object id.
type DuplicateCommand struct {
	Scene     *scene.Scene
	Original  *scene.Entity
	Duplicate *scene.Entity
}

// duplicateOffset keeps the copy from overlapping the original.
var duplicateOffset = math.Vector3{0.5, 0, 0}

func NewDuplicateCommand(s *scene.Scene, original *scene.Entity) (*DuplicateCommand, error) {
	dup := &scene.Entity{}
	if err := copier.Copy(dup, original); err != nil {
		return nil, fmt.Errorf("duplicate %q: %w", original.Name, err)
	}
	dup.Mesh = original.Mesh
	dup.Texture = original.Texture
	dup.ObjectID = s.NextObjectID()
	dup.Name = original.Name + ".copy"
	dup.Translation = dup.Translation.Add(duplicateOffset)
	return &DuplicateCommand{Scene: s, Original: original, Duplicate: dup}, nil
}

func (c *DuplicateCommand) Execute()            { c.Scene.Add(c.Duplicate) }
func (c *DuplicateCommand) Undo()               { c.Scene.Remove(c.Duplicate.ObjectID) }
func (c *DuplicateCommand) Description() string { return "Duplicate " + c.Original.Name }

// DeleteCommand removes an entity and restores it at the same index on undo.
type DeleteCommand struct {
	Scene  *scene.Scene
	Entity *scene.Entity
	index  int
}

func NewDeleteCommand(s *scene.Scene, e *scene.Entity) *DeleteCommand {
	return &DeleteCommand{Scene: s, Entity: e, index: -1}
}

func (c *DeleteCommand) Execute() {
	c.index, _ = c.Scene.Remove(c.Entity.ObjectID)
}

func (c *DeleteCommand) Undo() {
	if c.index >= 0 {
		c.Scene.Insert(c.index, c.Entity)
	}
}

func (c *DeleteCommand) Description() string { return "Delete " + c.Entity.Name }
