package editor

import "sceneview/scene"

// EditMode selects which part of the transform the nudge keys change.
type EditMode int

const (
	ModeTranslate EditMode = iota
	ModeRotate
	ModeScale
)

func (m EditMode) String() string {
	switch m {
	case ModeRotate:
		return "Rotate"
	case ModeScale:
		return "Scale"
	default:
		return "Translate"
	}
}

// Steps are the increments applied per key press.
type Steps struct {
	Translate float32
	Rotate    float32 // degrees
	Scale     float32
}

func DefaultSteps() Steps {
	return Steps{Translate: 0.1, Rotate: 2, Scale: 0.1}
}

// Nudge returns t with one component moved by one step along axis in
// direction dir (+1 or -1).
func (m EditMode) Nudge(t scene.Transform, axis int, dir float32, steps Steps) scene.Transform {
	switch m {
	case ModeRotate:
		t.Rotation[axis] += dir * steps.Rotate
	case ModeScale:
		t.Scale[axis] += dir * steps.Scale
	default:
		t.Translation[axis] += dir * steps.Translate
	}
	return t
}
