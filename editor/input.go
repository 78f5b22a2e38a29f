package editor

import (
	"sceneview/core"
)

// InputSource is polled once per frame. *core.Window implements it.
type InputSource interface {
	IsKeyPressed(key int) bool
	IsMouseButtonPressed(button int) bool
	GetCursorPos() (float64, float64)
}

// InputManager tracks mouse and keyboard state for the editor
type InputManager struct {
	// Mouse state
	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	lastMouseX, lastMouseY   float64
	ScrollDelta              float64

	mouseButtons     [8]bool
	mouseButtonsPrev [8]bool

	keys     [core.KeyLast + 1]bool
	keysPrev [core.KeyLast + 1]bool

	ShiftDown bool
	CtrlDown  bool

	source     InputSource
	firstFrame bool
}

// polledKeys are the keys the editor reacts to.
var polledKeys = []int{
	core.Key1, core.Key2, core.Key3,
	core.KeyA, core.KeyC, core.KeyD, core.KeyE, core.KeyH, core.KeyO,
	core.KeyP, core.KeyQ, core.KeyR, core.KeyS, core.KeyW, core.KeyX,
	core.KeyY, core.KeyZ,
	core.KeyEqual, core.KeyMinus,
	core.KeyEscape, core.KeyDelete, core.KeyF5, core.KeyF9,
}

func NewInputManager(source InputSource) *InputManager {
	return &InputManager{
		source:     source,
		firstFrame: true,
	}
}

// AddScroll accumulates wheel movement until the next EndFrame. Hook it to
// the window's scroll callback.
func (im *InputManager) AddScroll(yoff float64) {
	im.ScrollDelta += yoff
}

// Update should be called once per frame to compute deltas and poll state
func (im *InputManager) Update() {
	x, y := im.source.GetCursorPos()
	if im.firstFrame {
		im.lastMouseX = x
		im.lastMouseY = y
		im.firstFrame = false
	}
	im.MouseDeltaX = x - im.lastMouseX
	im.MouseDeltaY = y - im.lastMouseY
	im.lastMouseX = x
	im.lastMouseY = y
	im.MouseX = x
	im.MouseY = y

	copy(im.mouseButtonsPrev[:], im.mouseButtons[:])
	copy(im.keysPrev[:], im.keys[:])

	for _, b := range []int{core.MouseLeft, core.MouseRight, core.MouseMiddle} {
		im.mouseButtons[b] = im.source.IsMouseButtonPressed(b)
	}

	im.ShiftDown = im.source.IsKeyPressed(core.KeyLeftShift) || im.source.IsKeyPressed(core.KeyRightShift)
	im.CtrlDown = im.source.IsKeyPressed(core.KeyLeftControl) || im.source.IsKeyPressed(core.KeyRightControl) ||
		im.source.IsKeyPressed(core.KeyLeftSuper) || im.source.IsKeyPressed(core.KeyRightSuper)

	for _, k := range polledKeys {
		im.keys[k] = im.source.IsKeyPressed(k)
	}
}

// EndFrame clears per-frame state
func (im *InputManager) EndFrame() {
	im.ScrollDelta = 0
}

func (im *InputManager) IsMouseDown(button int) bool {
	if button < 0 || button >= len(im.mouseButtons) {
		return false
	}
	return im.mouseButtons[button]
}

func (im *InputManager) IsMousePressed(button int) bool {
	if button < 0 || button >= len(im.mouseButtons) {
		return false
	}
	return im.mouseButtons[button] && !im.mouseButtonsPrev[button]
}

func (im *InputManager) IsKeyDown(key int) bool {
	if key < 0 || key >= len(im.keys) {
		return false
	}
	return im.keys[key]
}

// IsKeyPressed reports a key that went down this frame.
func (im *InputManager) IsKeyPressed(key int) bool {
	if key < 0 || key >= len(im.keys) {
		return false
	}
	return im.keys[key] && !im.keysPrev[key]
}

// IsShortcut checks for a Ctrl+key press
func (im *InputManager) IsShortcut(key int) bool {
	return im.CtrlDown && im.IsKeyPressed(key)
}

// IsShiftShortcut checks for Ctrl+Shift+key press
func (im *InputManager) IsShiftShortcut(key int) bool {
	return im.CtrlDown && im.ShiftDown && im.IsKeyPressed(key)
}
