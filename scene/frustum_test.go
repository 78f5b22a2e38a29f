package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sceneview/math"
)

func cameraFrustum() Frustum {
	vp := math.Identity()
	vp.Perspective(90, 1, 1, 10)
	vp.LookAt(math.Vector3{0, 0, 0}, math.Vector3{0, 0, -1}, math.Vector3{0, 1, 0})
	return FrustumFromMatrix(vp)
}

func TestFrustumContainsPoint(t *testing.T) {
	f := cameraFrustum()
	assert.True(t, f.ContainsPoint(math.Vector3{0, 0, -5}))
	assert.False(t, f.ContainsPoint(math.Vector3{0, 0, 5}), "behind")
	assert.False(t, f.ContainsPoint(math.Vector3{0, 0, -0.5}), "before near")
	assert.False(t, f.ContainsPoint(math.Vector3{0, 0, -11}), "past far")
	assert.False(t, f.ContainsPoint(math.Vector3{6, 0, -5}), "outside 90 degree fov")

	// planes are normalized: near plane sits one unit in front
	assert.InDelta(t, 1, f.Planes[4].DistanceTo(math.Vector3{0, 0, -2}), eps)
}

func TestAABBIntersectsFrustum(t *testing.T) {
	f := cameraFrustum()
	inside := AABB{Min: math.Vector3{-1, -1, -6}, Max: math.Vector3{1, 1, -4}}
	straddling := AABB{Min: math.Vector3{4, -1, -6}, Max: math.Vector3{8, 1, -4}}
	behind := AABB{Min: math.Vector3{-1, -1, 2}, Max: math.Vector3{1, 1, 4}}

	assert.True(t, inside.IntersectsFrustum(&f))
	assert.True(t, straddling.IntersectsFrustum(&f))
	assert.False(t, behind.IntersectsFrustum(&f))
}

func TestFrustumInObjectSpace(t *testing.T) {
	// an object translated far to the side is culled through its own planes
	mv := math.Identity()
	mv.Translate(50, 0, -5)
	proj := math.Identity()
	proj.Perspective(90, 1, 1, 10)
	f := FrustumFromMatrix(proj.Mul(mv))

	box := CreateCube(1).LocalAABB
	assert.False(t, box.IntersectsFrustum(&f))

	mv = math.Identity()
	mv.Translate(0, 0, -5)
	f = FrustumFromMatrix(proj.Mul(mv))
	assert.True(t, box.IntersectsFrustum(&f))
}

func TestAABBTransform(t *testing.T) {
	box := AABB{Min: math.Vector3{-1, -2, -3}, Max: math.Vector3{1, 2, 3}}
	m := math.Identity()
	m.Rotate(90, 0, 0, 1)
	out := box.Transform(m)
	assertVec3(t, math.Vector3{-2, -1, -3}, out.Min)
	assertVec3(t, math.Vector3{2, 1, 3}, out.Max)
	assertVec3(t, math.Vector3{0, 0, 0}, out.Center())
}
