package math

import "github.com/chewxy/math32"

// Vector2 is a 2-component float32 vector.
type Vector2 [2]float32

func NewVector2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2FromVector3 drops the z component.
func Vector2FromVector3(v Vector3) Vector2 {
	return Vector2{v[0], v[1]}
}

// Vector2FromVector4 drops the z and w components.
func Vector2FromVector4(v Vector4) Vector2 {
	return Vector2{v[0], v[1]}
}

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v[0] + other[0], v[1] + other[1]}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v[0] - other[0], v[1] - other[1]}
}

// Mul multiplies componentwise.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v[0] * other[0], v[1] * other[1]}
}

func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v[0] * s, v[1] * s}
}

func (v Vector2) DivScalar(s float32) Vector2 {
	return Vector2{v[0] / s, v[1] / s}
}

// SetMulScalar scales v in place.
func (v *Vector2) SetMulScalar(s float32) {
	v[0] *= s
	v[1] *= s
}

// SetDivScalar divides v in place.
func (v *Vector2) SetDivScalar(s float32) {
	v[0] /= s
	v[1] /= s
}

func (v Vector2) Negate() Vector2 {
	return v.MulScalar(-1)
}

func (v Vector2) Dot(other Vector2) float32 {
	return v[0]*other[0] + v[1]*other[1]
}

func (v Vector2) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

func (v Vector2) Normalize() Vector2 {
	return v.DivScalar(v.Length())
}

// Ptr returns a pointer to the first component for GL uploads.
func (v *Vector2) Ptr() *float32 {
	return &v[0]
}
