package core

import "github.com/go-gl/glfw/v3.3/glfw"

// Key codes used by the viewer.
const (
	KeyMinus = int(glfw.KeyMinus)
	KeyEqual = int(glfw.KeyEqual)
	Key1     = int(glfw.Key1)
	Key2     = int(glfw.Key2)
	Key3     = int(glfw.Key3)
	KeyA     = int(glfw.KeyA)
	KeyC     = int(glfw.KeyC)
	KeyD     = int(glfw.KeyD)
	KeyE     = int(glfw.KeyE)
	KeyH     = int(glfw.KeyH)
	KeyO     = int(glfw.KeyO)
	KeyP     = int(glfw.KeyP)
	KeyQ     = int(glfw.KeyQ)
	KeyR     = int(glfw.KeyR)
	KeyS     = int(glfw.KeyS)
	KeyW     = int(glfw.KeyW)
	KeyX     = int(glfw.KeyX)
	KeyY     = int(glfw.KeyY)
	KeyZ     = int(glfw.KeyZ)

	KeyEscape = int(glfw.KeyEscape)
	KeyDelete = int(glfw.KeyDelete)
	KeyF5     = int(glfw.KeyF5)
	KeyF9     = int(glfw.KeyF9)

	KeyLeftShift    = int(glfw.KeyLeftShift)
	KeyLeftControl  = int(glfw.KeyLeftControl)
	KeyRightShift   = int(glfw.KeyRightShift)
	KeyRightControl = int(glfw.KeyRightControl)
	KeyLeftSuper    = int(glfw.KeyLeftSuper)
	KeyRightSuper   = int(glfw.KeyRightSuper)

	// KeyLast bounds the key state arrays.
	KeyLast = int(glfw.KeyLast)
)

// Mouse buttons.
const (
	MouseLeft   = int(glfw.MouseButtonLeft)
	MouseRight  = int(glfw.MouseButtonRight)
	MouseMiddle = int(glfw.MouseButtonMiddle)
)
