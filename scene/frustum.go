package scene

import "sceneview/math"

// Plane represents a half-space: Normal·p + D >= 0 is inside.
type Plane struct {
	Normal math.Vector3
	D      float32
}

// DistanceTo returns the signed distance from a point to the plane.
// Positive means on the "inside" (same side as Normal).
func (p Plane) DistanceTo(pt math.Vector3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes of a view frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumFromMatrix extracts the six planes of the clip volume of m
// (Gribb/Hartmann). For m = projection*view the planes are in world space;
// for projection*modelview they are in the model's own space.
func FrustumFromMatrix(m math.Matrix4) Frustum {
	row := func(i int) math.Vector4 {
		return math.Vector4{m[0][i], m[1][i], m[2][i], m[3][i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	var f Frustum
	f.Planes[0] = planeFrom(r3.Add(r0))
	f.Planes[1] = planeFrom(r3.Sub(r0))
	f.Planes[2] = planeFrom(r3.Add(r1))
	f.Planes[3] = planeFrom(r3.Sub(r1))
	f.Planes[4] = planeFrom(r3.Add(r2))
	f.Planes[5] = planeFrom(r3.Sub(r2))
	return f
}

// planeFrom normalizes (a, b, c, d) so DistanceTo is a true distance.
func planeFrom(v math.Vector4) Plane {
	n := math.Vector3FromVector4(v)
	l := n.Length()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: n.DivScalar(l), D: v[3] / l}
}

// ContainsPoint reports whether pt is inside or on every plane.
func (f *Frustum) ContainsPoint(pt math.Vector3) bool {
	for _, p := range f.Planes {
		if p.DistanceTo(pt) < 0 {
			return false
		}
	}
	return true
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vector3
}

func (box AABB) Center() math.Vector3 {
	return box.Min.Add(box.Max).MulScalar(0.5)
}

// Corners returns the eight box corners.
func (box AABB) Corners() [8]math.Vector3 {
	mn, mx := box.Min, box.Max
	return [8]math.Vector3{
		{mn[0], mn[1], mn[2]},
		{mx[0], mn[1], mn[2]},
		{mn[0], mx[1], mn[2]},
		{mx[0], mx[1], mn[2]},
		{mn[0], mn[1], mx[2]},
		{mx[0], mn[1], mx[2]},
		{mn[0], mx[1], mx[2]},
		{mx[0], mx[1], mx[2]},
	}
}

// Transform returns the AABB enclosing box after transformation by m.
func (box AABB) Transform(m math.Matrix4) AABB {
	corners := box.Corners()
	first := m.MulPoint(corners[0])
	out := AABB{Min: first, Max: first}
	for _, c := range corners[1:] {
		p := m.MulPoint(c)
		out.Min = out.Min.Min(p)
		out.Max = out.Max.Max(p)
	}
	return out
}

// IntersectsFrustum returns false if the AABB is completely outside the frustum.
// For each plane the corner furthest along the normal is tested.
func (box AABB) IntersectsFrustum(f *Frustum) bool {
	for _, p := range f.Planes {
		var v math.Vector3
		for i := 0; i < 3; i++ {
			if p.Normal[i] < 0 {
				v[i] = box.Min[i]
			} else {
				v[i] = box.Max[i]
			}
		}
		if p.DistanceTo(v) < 0 {
			return false
		}
	}
	return true
}
