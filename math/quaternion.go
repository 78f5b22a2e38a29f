package math

import "github.com/chewxy/math32"

// Quaternion is a rotation stored as (x, y, z, w).
type Quaternion [4]float32

func QuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// QuaternionFromAxisAngle builds a rotation of angle degrees about axis.
func QuaternionFromAxisAngle(angle float32, axis Vector3) Quaternion {
	a := axis.Normalize()
	s, c := math32.Sincos(DegToRad(angle) / 2)
	return Quaternion{a[0] * s, a[1] * s, a[2] * s, c}
}

// Mul returns q * other, which applies other first.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		q[3]*other[0] + q[0]*other[3] + q[1]*other[2] - q[2]*other[1],
		q[3]*other[1] - q[0]*other[2] + q[1]*other[3] + q[2]*other[0],
		q[3]*other[2] + q[0]*other[1] - q[1]*other[0] + q[2]*other[3],
		q[3]*other[3] - q[0]*other[0] - q[1]*other[1] - q[2]*other[2],
	}
}

func (q Quaternion) Length() float32 {
	return math32.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
}

// Normalize returns a unit quaternion. A zero quaternion becomes the identity.
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l == 0 {
		return QuaternionIdentity()
	}
	return Quaternion{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q[0], -q[1], -q[2], q[3]}
}

// Rotate applies the rotation to v. q must be a unit quaternion.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	u := Vector3{q[0], q[1], q[2]}
	t := u.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(q[3])).Add(u.Cross(t))
}

// Matrix4 returns the rotation matrix of a unit quaternion.
func (q Quaternion) Matrix4() Matrix4 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	return Matrix4{
		{1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w), 0},
		{2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w), 0},
		{2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y), 0},
		{0, 0, 0, 1},
	}
}
