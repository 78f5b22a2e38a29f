package math

import "github.com/chewxy/math32"

// Vector4 is a 4-component float32 vector, also used as a Matrix4 column.
type Vector4 [4]float32

func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

// Vector4FromVector2 widens v with explicit z and w.
func Vector4FromVector2(v Vector2, z, w float32) Vector4 {
	return Vector4{v[0], v[1], z, w}
}

// Vector4FromVector3 widens v with an explicit w.
func Vector4FromVector3(v Vector3, w float32) Vector4 {
	return Vector4{v[0], v[1], v[2], w}
}

func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// Mul multiplies componentwise.
func (v Vector4) Mul(other Vector4) Vector4 {
	return Vector4{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func (v Vector4) DivScalar(s float32) Vector4 {
	return Vector4{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

// SetMulScalar scales v in place.
func (v *Vector4) SetMulScalar(s float32) {
	for i := range v {
		v[i] *= s
	}
}

// SetDivScalar divides v in place.
func (v *Vector4) SetDivScalar(s float32) {
	for i := range v {
		v[i] /= s
	}
}

func (v Vector4) Negate() Vector4 {
	return v.MulScalar(-1)
}

func (v Vector4) Dot(other Vector4) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

func (v Vector4) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

func (v Vector4) Normalize() Vector4 {
	return v.DivScalar(v.Length())
}

// MulMatrix4 treats v as a row vector: result[k] = sum_i m[k][i] * v[i].
// This is v dotted with each column of m, which is not the same as m.MulVector4(v).
func (v Vector4) MulMatrix4(m Matrix4) Vector4 {
	var r Vector4
	for k := 0; k < 4; k++ {
		r[k] = m[k].Dot(v)
	}
	return r
}

// Ptr returns a pointer to the first component for GL uploads.
func (v *Vector4) Ptr() *float32 {
	return &v[0]
}
