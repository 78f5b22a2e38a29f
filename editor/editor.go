package editor

import (
	"fmt"
	"log/slog"

	"sceneview/core"
	"sceneview/renderer"
	"sceneview/scene"
)

// Options configures a new Editor.
type Options struct {
	Steps        Steps
	HistoryDepth int
	Pipeline     renderer.Pipeline
	RaiseStep    float32
}

func DefaultOptions() Options {
	return Options{
		Steps:        DefaultSteps(),
		HistoryDepth: 100,
		Pipeline:     renderer.PipelineForward,
		RaiseStep:    0.1,
	}
}

// Editor turns polled input into camera moves, selection changes and
// undoable entity edits.
type Editor struct {
	Scene     *scene.Scene
	Camera    *scene.OrbitCamera
	Input     *InputManager
	History   *History
	Picker    Picker
	Selection Selection

	Mode      EditMode
	Steps     Steps
	RaiseStep float32
	Pipeline  renderer.Pipeline

	// OnSave, OnReload and OnQuit are optional host actions.
	OnSave   func() error
	OnReload func() error
	OnQuit   func()

	// StatusText describes the last action.
	StatusText string
}

func NewEditor(s *scene.Scene, camera *scene.OrbitCamera, input *InputManager, picker Picker, opts Options) *Editor {
	e := &Editor{
		Scene:      s,
		Camera:     camera,
		Input:      input,
		History:    NewHistory(opts.HistoryDepth),
		Picker:     picker,
		Mode:       ModeTranslate,
		Steps:      opts.Steps,
		RaiseStep:  opts.RaiseStep,
		Pipeline:   opts.Pipeline,
		StatusText: "Ready",
	}
	e.Selection.Clear()
	return e
}

// Update processes one frame of editor logic
func (e *Editor) Update() {
	e.Input.Update()

	if e.Input.CtrlDown {
		e.handleShortcuts()
	} else {
		e.handleKeys()
	}
	e.handleCameraControls()
	e.Scene.FollowCamera(e.Camera)

	e.Input.EndFrame()
}

// SetScene swaps in a reloaded scene. History is dropped since its commands
// point at the old entities; the selection survives if its id still exists.
func (e *Editor) SetScene(s *scene.Scene) {
	e.Scene = s
	e.History.Clear()
	if e.Selection.ID != 0 {
		e.Selection.Set(e.Selection.ID, s)
	}
}

func (e *Editor) handleShortcuts() {
	in := e.Input
	switch {
	case in.IsShiftShortcut(core.KeyZ), in.IsShortcut(core.KeyY):
		if cmd := e.History.Redo(); cmd != nil {
			e.setStatus("Redo " + cmd.Description())
		}
	case in.IsShortcut(core.KeyZ):
		if cmd := e.History.Undo(); cmd != nil {
			e.setStatus("Undo " + cmd.Description())
		}
	case in.IsShortcut(core.KeyD):
		e.duplicateSelected()
	}
}

func (e *Editor) handleKeys() {
	in := e.Input

	switch {
	case in.IsKeyPressed(core.Key1):
		e.setPipeline(renderer.PipelineForward)
	case in.IsKeyPressed(core.Key2):
		e.setPipeline(renderer.PipelineGBuffer)
	case in.IsKeyPressed(core.Key3):
		e.setPipeline(renderer.PipelineDeferred)
	case in.IsKeyPressed(core.KeyP):
		e.pick()
	case in.IsKeyPressed(core.KeyO):
		e.Selection.Clear()
		e.setStatus("Deselected")
	case in.IsKeyPressed(core.KeyR):
		e.Camera.Reset()
		e.setStatus("Camera reset")
	case in.IsKeyPressed(core.KeyEqual):
		e.Camera.Raise(e.RaiseStep)
	case in.IsKeyPressed(core.KeyMinus):
		e.Camera.Raise(-e.RaiseStep)
	case in.IsKeyPressed(core.KeyH):
		e.Scene.ToggleCursor()
	case in.IsKeyPressed(core.KeyDelete):
		e.deleteSelected()
	case in.IsKeyPressed(core.KeyF5):
		e.runHostAction("Saved layout", e.OnSave)
	case in.IsKeyPressed(core.KeyF9):
		e.runHostAction("Reloaded layout", e.OnReload)
	case in.IsKeyPressed(core.KeyEscape):
		if e.OnQuit != nil {
			e.OnQuit()
		}
	case e.Selection.HasSelection():
		e.handleEditKeys()
	}
}

// editKeys maps the nudge keys to (axis, direction).
var editKeys = []struct {
	key  int
	axis int
	dir  float32
}{
	{core.KeyW, 2, 1},
	{core.KeyS, 2, -1},
	{core.KeyA, 0, 1},
	{core.KeyD, 0, -1},
	{core.KeyQ, 1, 1},
	{core.KeyE, 1, -1},
}

func (e *Editor) handleEditKeys() {
	in := e.Input
	for _, k := range editKeys {
		if in.IsKeyPressed(k.key) {
			e.Nudge(k.axis, k.dir)
			return
		}
	}

	switch {
	case in.IsKeyPressed(core.KeyZ):
		e.SetMode(ModeTranslate)
	case in.IsKeyPressed(core.KeyX):
		e.SetMode(ModeRotate)
	case in.IsKeyPressed(core.KeyC):
		e.SetMode(ModeScale)
	}
}

// Nudge moves the selected entity one step in the current mode. It is a
// no-op when the selection has no entity.
func (e *Editor) Nudge(axis int, dir float32) {
	ent := e.Selection.Entity(e.Scene)
	if ent == nil {
		return
	}
	next := e.Mode.Nudge(ent.Transform(), axis, dir, e.Steps)
	desc := fmt.Sprintf("%s %s", e.Mode, ent.Name)
	e.History.Do(NewTransformCommand(ent, next, desc))
	e.StatusText = desc
}

func (e *Editor) SetMode(m EditMode) {
	e.Mode = m
	slog.Info("edit mode", "mode", m.String())
	e.setStatus(m.String() + " Edit Mode")
}

func (e *Editor) setPipeline(p renderer.Pipeline) {
	e.Pipeline = p
	slog.Info("pipeline", "pipeline", p.String())
	e.setStatus("Pipeline: " + p.String())
}

// pick selects whatever is under the mouse cursor.
func (e *Editor) pick() {
	if e.Picker == nil {
		return
	}
	id, err := e.Picker.Pick(int(e.Input.MouseX), int(e.Input.MouseY))
	if err != nil {
		slog.Warn("pick failed", "err", err)
		return
	}
	e.Select(id)
}

// Select makes id the selection; 0 clears it.
func (e *Editor) Select(id uint32) {
	if id == 0 {
		e.Selection.Clear()
		e.setStatus("Deselected")
		return
	}
	e.Selection.Set(id, e.Scene)
	slog.Debug("picked", "id", id)
	if ent := e.Selection.Entity(e.Scene); ent != nil {
		e.setStatus(fmt.Sprintf("Selected %s (%d)", ent.Name, id))
	} else {
		e.setStatus(fmt.Sprintf("Selected %#x", id))
	}
}

func (e *Editor) duplicateSelected() {
	ent := e.Selection.Entity(e.Scene)
	if ent == nil {
		return
	}
	cmd, err := NewDuplicateCommand(e.Scene, ent)
	if err != nil {
		slog.Warn("duplicate failed", "err", err)
		return
	}
	e.History.Do(cmd)
	e.Selection.Set(cmd.Duplicate.ObjectID, e.Scene)
	e.setStatus(cmd.Description())
}

func (e *Editor) deleteSelected() {
	ent := e.Selection.Entity(e.Scene)
	if ent == nil {
		return
	}
	cmd := NewDeleteCommand(e.Scene, ent)
	e.History.Do(cmd)
	e.Selection.Clear()
	e.setStatus(cmd.Description())
}

func (e *Editor) runHostAction(done string, action func() error) {
	if action == nil {
		return
	}
	if err := action(); err != nil {
		slog.Error(done+" failed", "err", err)
		e.setStatus("Error: " + err.Error())
		return
	}
	e.setStatus(done)
}

// handleCameraControls applies mouse drags: left rotates, right dollies,
// middle pans. The wheel dollies too.
func (e *Editor) handleCameraControls() {
	in := e.Input
	dx, dy := float32(in.MouseDeltaX), float32(in.MouseDeltaY)

	if in.IsMouseDown(core.MouseLeft) && !in.IsMousePressed(core.MouseLeft) {
		e.Camera.Rotate(dx, dy)
	}
	if in.IsMouseDown(core.MouseRight) && !in.IsMousePressed(core.MouseRight) {
		e.Camera.Dolly(dy)
	}
	if in.IsMouseDown(core.MouseMiddle) && !in.IsMousePressed(core.MouseMiddle) {
		e.Camera.Pan(dx, dy)
	}
	if in.ScrollDelta != 0 {
		e.Camera.Dolly(float32(-in.ScrollDelta))
	}
}

func (e *Editor) setStatus(s string) {
	e.StatusText = s
}
