package core

import (
	"fmt"

	"sceneview/math"
)

type Color struct {
	R, G, B, A float32
}

// Vector3 returns the RGB channels.
func (c Color) Vector3() math.Vector3 {
	return math.Vector3{c.R, c.G, c.B}
}

// ColorFromVector3 builds an opaque color.
func ColorFromVector3(v math.Vector3) Color {
	return Color{v[0], v[1], v[2], 1}
}

// Vertex is the interleaved per-vertex layout shared by every mesh:
// position at attribute 0, texture coordinate at 1, normal at 2.
type Vertex struct {
	Position math.Vector3
	UV       math.Vector2
	Normal   math.Vector3
}

// CullMode selects which faces are discarded when drawing an entity.
type CullMode int

const (
	CullBack CullMode = iota
	CullFront
	CullNone
)

func (c CullMode) String() string {
	switch c {
	case CullFront:
		return "front"
	case CullNone:
		return "none"
	default:
		return "back"
	}
}

// ParseCullMode accepts "back", "front" or "none"; empty means back.
func ParseCullMode(s string) (CullMode, bool) {
	switch s {
	case "", "back":
		return CullBack, true
	case "front":
		return CullFront, true
	case "none":
		return CullNone, true
	}
	return CullBack, false
}

// MarshalText implements encoding.TextMarshaler for layout files.
func (c CullMode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for layout files.
func (c *CullMode) UnmarshalText(text []byte) error {
	mode, ok := ParseCullMode(string(text))
	if !ok {
		return &UnknownCullModeError{Value: string(text)}
	}
	*c = mode
	return nil
}

// UnknownCullModeError reports an unrecognised cull mode name.
type UnknownCullModeError struct {
	Value string
}

func (e *UnknownCullModeError) Error() string {
	return fmt.Sprintf("unknown cull mode %q", e.Value)
}
