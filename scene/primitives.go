package scene

import (
	"github.com/chewxy/math32"

	"sceneview/core"
	"sceneview/math"
)

// CreateSphere generates a UV sphere with counter-clockwise outward faces.
func CreateSphere(radius float32, segments, rings int) *Mesh {
	segments = max(segments, 3)
	rings = max(rings, 2)

	vertices := make([]core.Vertex, 0, (rings+1)*(segments+1))
	indices := make([]uint32, 0, rings*segments*6)

	for ring := 0; ring <= rings; ring++ {
		phi := float32(ring) * math32.Pi / float32(rings)
		sinPhi, cosPhi := math32.Sincos(phi)

		for seg := 0; seg <= segments; seg++ {
			theta := float32(seg) * 2 * math32.Pi / float32(segments)
			sinTheta, cosTheta := math32.Sincos(theta)

			normal := math.Vector3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			vertices = append(vertices, core.Vertex{
				Position: normal.MulScalar(radius),
				Normal:   normal,
				UV:       math.Vector2{float32(seg) / float32(segments), float32(ring) / float32(rings)},
			})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)

			indices = append(indices, current, current+1, next)
			indices = append(indices, current+1, next+1, next)
		}
	}

	return NewMesh("sphere", vertices, indices)
}

// CreateQuad generates a size×size square in the XY plane, visible from
// both sides.
func CreateQuad(size float32) *Mesh {
	s := size / 2
	corners := [4]math.Vector3{{-s, -s, 0}, {s, -s, 0}, {s, s, 0}, {-s, s, 0}}
	uvs := [4]math.Vector2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]core.Vertex, 0, 8)
	for _, n := range []math.Vector3{{0, 0, 1}, {0, 0, -1}} {
		for i, c := range corners {
			vertices = append(vertices, core.Vertex{Position: c, UV: uvs[i], Normal: n})
		}
	}
	indices := []uint32{
		0, 1, 2, 0, 2, 3,
		4, 6, 5, 4, 7, 6,
	}
	return NewMesh("quad", vertices, indices)
}

// roomSize is the extent of the built-in room's floor and walls.
const roomSize = 10

// placeholderMesh stands in for a mesh file that could not be found.
func placeholderMesh(name string) *Mesh {
	var m *Mesh
	switch name {
	case "sphere":
		m = CreateSphere(1, 32, 16)
	case "floor", "wall":
		m = CreateQuad(roomSize)
	default:
		m = CreateCube(1)
	}
	m.Name = name
	return m
}
