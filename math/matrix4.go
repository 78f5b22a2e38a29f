package math

import "github.com/chewxy/math32"

// Matrix4 is a column-major 4x4 matrix: m[c][r] is the element in column c, row r.
// The memory layout matches what glUniformMatrix4fv expects with transpose=false.
//
// The zero value is the all-zero matrix; use Identity for the identity.
type Matrix4 [4]Vector4

// Identity returns the 4x4 identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4 builds a matrix from four columns.
func NewMatrix4(c0, c1, c2, c3 Vector4) Matrix4 {
	return Matrix4{c0, c1, c2, c3}
}

// NewMatrix4FromValues builds a matrix from 16 scalars grouped four per column:
// mCR is the element at column C, row R.
func NewMatrix4FromValues(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) Matrix4 {
	return Matrix4{
		{m00, m01, m02, m03},
		{m10, m11, m12, m13},
		{m20, m21, m22, m23},
		{m30, m31, m32, m33},
	}
}

// LoadIdentity resets m to the identity.
func (m *Matrix4) LoadIdentity() {
	*m = Identity()
}

// Mul returns the product m * other: (AB)[col][row] = sum_k A[k][row] * B[col][k].
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k][row] * other[col][k]
			}
			r[col][row] = sum
		}
	}
	return r
}

// SetMul right-multiplies in place (m = m * other), so other is applied to
// vertices before the existing transform.
func (m *Matrix4) SetMul(other Matrix4) {
	*m = m.Mul(other)
}

// MulVector4 treats v as a column vector: result[row] = sum_k m[k][row] * v[k].
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	var r Vector4
	for row := 0; row < 4; row++ {
		r[row] = m[0][row]*v[0] + m[1][row]*v[1] + m[2][row]*v[2] + m[3][row]*v[3]
	}
	return r
}

// MulPoint transforms p with w=1 and divides by the resulting w when it is not 1.
func (m Matrix4) MulPoint(p Vector3) Vector3 {
	r := m.MulVector4(Vector4FromVector3(p, 1))
	if r[3] != 1 && r[3] != 0 {
		return Vector3{r[0] / r[3], r[1] / r[3], r[2] / r[3]}
	}
	return Vector3FromVector4(r)
}

// MulDirection transforms d with w=0, ignoring translation.
func (m Matrix4) MulDirection(d Vector3) Vector3 {
	return Vector3FromVector4(m.MulVector4(Vector4FromVector3(d, 0)))
}

// SetMulScalar scales columns 0-2 in place. Column 3 is left untouched.
func (m *Matrix4) SetMulScalar(s float32) {
	for c := 0; c < 3; c++ {
		m[c].SetMulScalar(s)
	}
}

// SetDivScalar divides columns 0-2 in place. Column 3 is left untouched.
func (m *Matrix4) SetDivScalar(s float32) {
	for c := 0; c < 3; c++ {
		m[c].SetDivScalar(s)
	}
}

// MulScalar returns a copy with columns 0-2 scaled by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	m.SetMulScalar(s)
	return m
}

// DivScalar returns a copy with columns 0-2 divided by s.
func (m Matrix4) DivScalar(s float32) Matrix4 {
	m.SetDivScalar(s)
	return m
}

// Negate returns m.MulScalar(-1); column 3 keeps its sign.
func (m Matrix4) Negate() Matrix4 {
	return m.MulScalar(-1)
}

// Transpose mirrors m across its diagonal in place.
func (m *Matrix4) Transpose() {
	for col := 0; col < 4; col++ {
		for row := 0; row < col; row++ {
			m[col][row], m[row][col] = m[row][col], m[col][row]
		}
	}
}

// Transposed returns a transposed copy of m.
func (m Matrix4) Transposed() Matrix4 {
	m.Transpose()
	return m
}

// Translate right-multiplies m by a translation, recomputing only column 3.
func (m *Matrix4) Translate(x, y, z float32) {
	for i := 0; i < 4; i++ {
		m[3][i] = x*m[0][i] + y*m[1][i] + z*m[2][i] + m[3][i]
	}
}

func (m *Matrix4) TranslateV(v Vector3) {
	m.Translate(v[0], v[1], v[2])
}

// Scale right-multiplies m by a diagonal scale matrix.
func (m *Matrix4) Scale(x, y, z float32) {
	m[0].SetMulScalar(x)
	m[1].SetMulScalar(y)
	m[2].SetMulScalar(z)
}

func (m *Matrix4) ScaleV(v Vector3) {
	m.Scale(v[0], v[1], v[2])
}

// Rotate right-multiplies m by a rotation of angle degrees around the axis
// (x, y, z). The axis is normalized; a zero axis produces NaN.
func (m *Matrix4) Rotate(angle, x, y, z float32) {
	m.SetMul(rotation(angle, Vector3{x, y, z}))
}

func (m *Matrix4) RotateV(angle float32, axis Vector3) {
	m.SetMul(rotation(angle, axis))
}

// rotation builds the Rodrigues axis-angle matrix.
func rotation(angle float32, axis Vector3) Matrix4 {
	a := axis.Normalize()
	x, y, z := a[0], a[1], a[2]
	s, c := math32.Sincos(DegToRad(angle))
	t := 1 - c

	return Matrix4{
		{c + x*x*t, z*s + y*x*t, -y*s + z*x*t, 0},
		{-z*s + x*y*t, c + y*y*t, x*s + z*y*t, 0},
		{y*s + x*z*t, -x*s + y*z*t, c + z*z*t, 0},
		{0, 0, 0, 1},
	}
}

// LookAt right-multiplies m by a view matrix for a camera at eye looking at
// center. The camera looks down its local -Z axis.
func (m *Matrix4) LookAt(eye, center, up Vector3) {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	view := NewMatrix4(
		Vector4FromVector3(s, 0),
		Vector4FromVector3(u, 0),
		Vector4FromVector3(f.Negate(), 0),
		Vector4{0, 0, 0, 1},
	)
	view.Transpose()

	m.SetMul(view)
	m.TranslateV(eye.Negate())
}

// Frustum right-multiplies m by an OpenGL perspective projection for the
// given clip planes. View-space Z in [-near, -far] maps to clip depth [-1, 1].
func (m *Matrix4) Frustum(left, right, bottom, top, near, far float32) {
	var f Matrix4
	f[0][0] = 2 * near / (right - left)
	f[1][1] = 2 * near / (top - bottom)
	f[2][0] = (right + left) / (right - left)
	f[2][1] = (top + bottom) / (top - bottom)
	f[2][2] = -(far + near) / (far - near)
	f[2][3] = -1
	f[3][2] = -2 * far * near / (far - near)
	m.SetMul(f)
}

// Perspective right-multiplies m by a symmetric perspective projection.
// fovY is the vertical field of view in degrees.
func (m *Matrix4) Perspective(fovY, aspect, near, far float32) {
	t := near * math32.Tan(DegToRad(fovY)/2)
	m.Frustum(-aspect*t, aspect*t, -t, t, near, far)
}

// Inverse returns the inverse of m. The second result is false when m is
// singular, in which case the returned matrix is the zero matrix.
func (m Matrix4) Inverse() (Matrix4, bool) {
	// 2x2 sub-determinants of the lower two rows (s) and upper two rows (c).
	s0 := m[0][0]*m[1][1] - m[1][0]*m[0][1]
	s1 := m[0][0]*m[1][2] - m[1][0]*m[0][2]
	s2 := m[0][0]*m[1][3] - m[1][0]*m[0][3]
	s3 := m[0][1]*m[1][2] - m[1][1]*m[0][2]
	s4 := m[0][1]*m[1][3] - m[1][1]*m[0][3]
	s5 := m[0][2]*m[1][3] - m[1][2]*m[0][3]

	c5 := m[2][2]*m[3][3] - m[3][2]*m[2][3]
	c4 := m[2][1]*m[3][3] - m[3][1]*m[2][3]
	c3 := m[2][1]*m[3][2] - m[3][1]*m[2][2]
	c2 := m[2][0]*m[3][3] - m[3][0]*m[2][3]
	c1 := m[2][0]*m[3][2] - m[3][0]*m[2][2]
	c0 := m[2][0]*m[3][1] - m[3][0]*m[2][1]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return Matrix4{}, false
	}
	inv := 1 / det

	var r Matrix4
	r[0][0] = (m[1][1]*c5 - m[1][2]*c4 + m[1][3]*c3) * inv
	r[0][1] = (-m[0][1]*c5 + m[0][2]*c4 - m[0][3]*c3) * inv
	r[0][2] = (m[3][1]*s5 - m[3][2]*s4 + m[3][3]*s3) * inv
	r[0][3] = (-m[2][1]*s5 + m[2][2]*s4 - m[2][3]*s3) * inv

	r[1][0] = (-m[1][0]*c5 + m[1][2]*c2 - m[1][3]*c1) * inv
	r[1][1] = (m[0][0]*c5 - m[0][2]*c2 + m[0][3]*c1) * inv
	r[1][2] = (-m[3][0]*s5 + m[3][2]*s2 - m[3][3]*s1) * inv
	r[1][3] = (m[2][0]*s5 - m[2][2]*s2 + m[2][3]*s1) * inv

	r[2][0] = (m[1][0]*c4 - m[1][1]*c2 + m[1][3]*c0) * inv
	r[2][1] = (-m[0][0]*c4 + m[0][1]*c2 - m[0][3]*c0) * inv
	r[2][2] = (m[3][0]*s4 - m[3][1]*s2 + m[3][3]*s0) * inv
	r[2][3] = (-m[2][0]*s4 + m[2][1]*s2 - m[2][3]*s0) * inv

	r[3][0] = (-m[1][0]*c3 + m[1][1]*c1 - m[1][2]*c0) * inv
	r[3][1] = (m[0][0]*c3 - m[0][1]*c1 + m[0][2]*c0) * inv
	r[3][2] = (-m[3][0]*s3 + m[3][1]*s1 - m[3][2]*s0) * inv
	r[3][3] = (m[2][0]*s3 - m[2][1]*s1 + m[2][2]*s0) * inv

	return r, true
}

// Array returns the 16 elements in column-major order.
func (m Matrix4) Array() [16]float32 {
	var a [16]float32
	for c := 0; c < 4; c++ {
		copy(a[c*4:], m[c][:])
	}
	return a
}

// Ptr returns a pointer to element [0][0]; the 16 floats are contiguous.
func (m *Matrix4) Ptr() *float32 {
	return &m[0][0]
}
