package editor

import (
	"github.com/chewxy/math32"

	"sceneview/math"
	"sceneview/scene"
)

// Ray represents a ray in 3D space
type Ray struct {
	Origin    math.Vector3
	Direction math.Vector3
}

func (r Ray) At(t float32) math.Vector3 {
	return r.Origin.Add(r.Direction.MulScalar(t))
}

// HitResult stores the result of a ray intersection test
type HitResult struct {
	Hit      bool
	Distance float32
	Point    math.Vector3
	Normal   math.Vector3
	Entity   *scene.Entity
	FaceIdx  int // triangle index in the mesh
}

// ScreenToRay converts a pixel position (origin top-left) to a world-space
// ray from the near plane towards the far plane. ok is false when the
// view-projection cannot be inverted.
func ScreenToRay(x, y float32, width, height int, view, projection math.Matrix4) (Ray, bool) {
	inv, ok := projection.Mul(view).Inverse()
	if !ok || width <= 0 || height <= 0 {
		return Ray{}, false
	}

	ndcX := 2*x/float32(width) - 1
	ndcY := 1 - 2*y/float32(height) // flip Y

	near := inv.MulPoint(math.Vector3{ndcX, ndcY, -1})
	far := inv.MulPoint(math.Vector3{ndcX, ndcY, 1})
	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}, true
}

// RaycastScene tests a ray against the entities and returns the closest hit.
func RaycastScene(ray Ray, entities []*scene.Entity) HitResult {
	closest := HitResult{Distance: math32.MaxFloat32}

	for _, e := range entities {
		box, ok := e.Bounds()
		if !ok {
			continue
		}

		// Broad phase: AABB test
		t, hit := rayAABBIntersect(ray, box)
		if !hit || t > closest.Distance {
			continue
		}

		// Narrow phase: triangle test
		result := rayMeshIntersect(ray, e)
		if result.Hit && result.Distance < closest.Distance {
			closest = result
		}
	}

	return closest
}

// rayAABBIntersect is the slab test. It returns the entry distance.
func rayAABBIntersect(ray Ray, box scene.AABB) (float32, bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)
	for i := 0; i < 3; i++ {
		inv := 1 / ray.Direction[i]
		t1 := (box.Min[i] - ray.Origin[i]) * inv
		t2 := (box.Max[i] - ray.Origin[i]) * inv
		tmin = max(tmin, min(t1, t2))
		tmax = min(tmax, max(t1, t2))
	}

	if tmax < 0 || tmin > tmax {
		return 0, false
	}
	return tmin, true
}

// rayMeshIntersect performs per-triangle intersection in world space.
func rayMeshIntersect(ray Ray, e *scene.Entity) HitResult {
	mesh := e.Mesh
	model := e.ModelMatrix()
	closest := HitResult{Distance: math32.MaxFloat32}

	for i := 0; i < mesh.TriangleCount(); i++ {
		a, b, c := mesh.Triangle(i)
		v0 := model.MulPoint(a)
		v1 := model.MulPoint(b)
		v2 := model.MulPoint(c)

		t, hit := mollerTrumbore(ray, v0, v1, v2)
		if hit && t < closest.Distance {
			closest.Hit = true
			closest.Distance = t
			closest.Point = ray.At(t)
			closest.Normal = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
			closest.Entity = e
			closest.FaceIdx = i
		}
	}

	return closest
}

// mollerTrumbore implements the Möller-Trumbore ray-triangle intersection.
// Both faces count as hits, matching entities drawn without culling.
func mollerTrumbore(ray Ray, v0, v1, v2 math.Vector3) (float32, bool) {
	const epsilon = 0.0000001

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	if a > -epsilon && a < epsilon {
		return 0, false // parallel
	}

	f := 1 / a
	s := ray.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	return t, t > epsilon
}
