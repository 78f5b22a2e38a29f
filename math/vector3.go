package math

import "github.com/chewxy/math32"

// Vector3 is a 3-component float32 vector. The zero value is the zero vector.
type Vector3 [3]float32

func NewVector3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Vector3FromVector2 widens v with an explicit z.
func Vector3FromVector2(v Vector2, z float32) Vector3 {
	return Vector3{v[0], v[1], z}
}

// Vector3FromVector4 drops the w component.
func Vector3FromVector4(v Vector4) Vector3 {
	return Vector3{v[0], v[1], v[2]}
}

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// Mul multiplies componentwise.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vector3) DivScalar(s float32) Vector3 {
	return Vector3{v[0] / s, v[1] / s, v[2] / s}
}

// SetMulScalar scales v in place.
func (v *Vector3) SetMulScalar(s float32) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
}

// SetDivScalar divides v in place.
func (v *Vector3) SetDivScalar(s float32) {
	v[0] /= s
	v[1] /= s
	v[2] /= s
}

func (v Vector3) Negate() Vector3 {
	return v.MulScalar(-1)
}

func (v Vector3) Dot(other Vector3) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Cross returns the right-handed cross product v × other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

func (v Vector3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. A zero vector yields NaN components.
func (v Vector3) Normalize() Vector3 {
	return v.DivScalar(v.Length())
}

// Min returns the componentwise minimum.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{math32.Min(v[0], other[0]), math32.Min(v[1], other[1]), math32.Min(v[2], other[2])}
}

// Max returns the componentwise maximum.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{math32.Max(v[0], other[0]), math32.Max(v[1], other[1]), math32.Max(v[2], other[2])}
}

// Ptr returns a pointer to the first component for GL uploads.
func (v *Vector3) Ptr() *float32 {
	return &v[0]
}
