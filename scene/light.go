package scene

import "sceneview/math"

// MaxLights matches the uniform array size in the lighting shaders.
const MaxLights = 8

// Light is a point light (Position.w == 1) or a directional light
// (Position.w == 0, Position.xyz is the direction towards the light).
type Light struct {
	Position math.Vector4
	Color    math.Vector3
}

func (l Light) Directional() bool {
	return l.Position[3] == 0
}

// DefaultAmbient is the ambient term of the built-in room.
var DefaultAmbient = math.Vector3{0.2, 0.2, 0.2}

// DefaultLights returns the four lights of the built-in room.
func DefaultLights() []Light {
	return []Light{
		{Position: math.Vector4{1, 1, 1, 0}, Color: math.Vector3{0.5, 0.5, 1}},
		{Position: math.Vector4{-4.5, 4.5, 0, 1}, Color: math.Vector3{0.5, 0.1, 0.1}},
		{Position: math.Vector4{0, 4.5, -4.5, 1}, Color: math.Vector3{0.1, 0.1, 0.5}},
		{Position: math.Vector4{-4.5, 4.5, -4.5, 1}, Color: math.Vector3{0.1, 0.1, 0.5}},
	}
}

// EyeSpace transforms light positions by view into the arrays uploaded as the
// lightPositions and lightColors uniforms. At most MaxLights are returned.
func EyeSpace(lights []Light, view math.Matrix4) (positions []math.Vector4, colors []math.Vector3) {
	n := min(len(lights), MaxLights)
	positions = make([]math.Vector4, n)
	colors = make([]math.Vector3, n)
	for i := 0; i < n; i++ {
		positions[i] = view.MulVector4(lights[i].Position)
		colors[i] = lights[i].Color
	}
	return positions, colors
}
