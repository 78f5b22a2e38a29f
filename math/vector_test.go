package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

var testVectors = []Vector3{
	{1, 2, 3},
	{-4, 0.5, 9},
	{0, 0, 1},
	{3.25, -7, 0.125},
	{100, -200, 300},
}

func assertVector3InDelta(t *testing.T, expected, actual Vector3, delta float64, msgAndArgs ...any) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], delta, msgAndArgs...)
	}
}

func TestVectorConstruction(t *testing.T) {
	assert.Equal(t, Vector2{1, 2}, NewVector2(1, 2))
	assert.Equal(t, Vector3{1, 2, 3}, NewVector3(1, 2, 3))
	assert.Equal(t, Vector4{1, 2, 3, 4}, NewVector4(1, 2, 3, 4))

	// widening needs the trailing components spelled out
	assert.Equal(t, Vector3{1, 2, 7}, Vector3FromVector2(Vector2{1, 2}, 7))
	assert.Equal(t, Vector4{1, 2, 7, 8}, Vector4FromVector2(Vector2{1, 2}, 7, 8))
	assert.Equal(t, Vector4{1, 2, 3, 1}, Vector4FromVector3(Vector3{1, 2, 3}, 1))

	// narrowing truncates
	assert.Equal(t, Vector2{1, 2}, Vector2FromVector3(Vector3{1, 2, 3}))
	assert.Equal(t, Vector2{1, 2}, Vector2FromVector4(Vector4{1, 2, 3, 4}))
	assert.Equal(t, Vector3{1, 2, 3}, Vector3FromVector4(Vector4{1, 2, 3, 4}))
}

func TestVectorZeroValue(t *testing.T) {
	var v3 Vector3
	var v4 Vector4
	assert.Equal(t, Vector3{0, 0, 0}, v3)
	assert.Equal(t, Vector4{0, 0, 0, 0}, v4)
}

func TestVector3Arithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	assert.Equal(t, Vector3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vector3{3, 3, 3}, b.Sub(a))
	assert.Equal(t, Vector3{4, 10, 18}, a.Mul(b))
	assert.Equal(t, Vector3{2, 4, 6}, a.MulScalar(2))
	assert.Equal(t, Vector3{0.5, 1, 1.5}, a.DivScalar(2))
	assert.Equal(t, Vector3{-1, -2, -3}, a.Negate())
	assert.Equal(t, a.MulScalar(-1), a.Negate())
	assert.Equal(t, float32(32), a.Dot(b))

	// operands are untouched
	assert.Equal(t, Vector3{1, 2, 3}, a)
	assert.Equal(t, Vector3{4, 5, 6}, b)
}

func TestVectorInPlaceScaling(t *testing.T) {
	v2 := Vector2{2, 4}
	v2.SetMulScalar(3)
	assert.Equal(t, Vector2{6, 12}, v2)
	v2.SetDivScalar(2)
	assert.Equal(t, Vector2{3, 6}, v2)

	v3 := Vector3{2, 4, 8}
	v3.SetMulScalar(0.5)
	assert.Equal(t, Vector3{1, 2, 4}, v3)
	v3.SetDivScalar(4)
	assert.Equal(t, Vector3{0.25, 0.5, 1}, v3)

	v4 := Vector4{1, 2, 3, 4}
	v4.SetMulScalar(2)
	assert.Equal(t, Vector4{2, 4, 6, 8}, v4)
	v4.SetDivScalar(2)
	assert.Equal(t, Vector4{1, 2, 3, 4}, v4)
}

func TestVectorDivideByZero(t *testing.T) {
	v := Vector3{1, -1, 0}.DivScalar(0)
	assert.True(t, math32.IsInf(v[0], 1))
	assert.True(t, math32.IsInf(v[1], -1))
	assert.True(t, math32.IsNaN(v[2]))
}

func TestVectorLength(t *testing.T) {
	assert.Equal(t, float32(5), Vector2{3, 4}.Length())
	assert.Equal(t, float32(3), Vector3{1, 2, 2}.Length())
	assert.Equal(t, float32(2), Vector4{1, 1, 1, 1}.Length())
	assert.True(t, math32.IsNaN(Vector3{math32.NaN(), 0, 0}.Length()))

	n := Vector3{3, 0, 4}.Normalize()
	assert.InDelta(t, 1, n.Length(), 1e-6)
	assertVector3InDelta(t, Vector3{0.6, 0, 0.8}, n, 1e-6)
}

func TestVectorAddNegateIsZero(t *testing.T) {
	for _, v := range testVectors {
		assert.Equal(t, Vector3{}, v.Add(v.Negate()), "v=%v", v)

		v2 := Vector2FromVector3(v)
		assert.Equal(t, Vector2{}, v2.Add(v2.Negate()), "v=%v", v2)

		v4 := Vector4FromVector3(v, v[0]-v[2])
		assert.Equal(t, Vector4{}, v4.Add(v4.Negate()), "v=%v", v4)
	}
}

func TestCrossProduct(t *testing.T) {
	x := Vector3{1, 0, 0}
	y := Vector3{0, 1, 0}
	z := Vector3{0, 0, 1}
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))

	for _, a := range testVectors {
		for _, b := range testVectors {
			c := a.Cross(b)
			scale := float64(a.Length() * b.Length())
			assert.InDelta(t, 0, a.Dot(c), 1e-5*scale*scale, "a=%v b=%v", a, b)
			assert.InDelta(t, 0, b.Dot(c), 1e-5*scale*scale, "a=%v b=%v", a, b)
			assertVector3InDelta(t, b.Cross(a).Negate(), c, 1e-4, "a=%v b=%v", a, b)
		}
	}
}

func TestVector4MulMatrix4DiffersFromMatrixVector(t *testing.T) {
	m := NewMatrix4FromValues(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	v := Vector4{1, 0, 0, 0}

	// row vector picks up row sums against each column
	assert.Equal(t, Vector4{1, 5, 9, 13}, v.MulMatrix4(m))
	// column vector picks column 0
	assert.Equal(t, Vector4{1, 2, 3, 4}, m.MulVector4(v))
}

func TestVectorPtr(t *testing.T) {
	v := Vector3{1, 2, 3}
	p := v.Ptr()
	*p = 9
	assert.Equal(t, Vector3{9, 2, 3}, v)

	v4 := Vector4{1, 2, 3, 4}
	assert.Equal(t, float32(1), *v4.Ptr())
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, math32.Pi, DegToRad(180), 1e-6)
	assert.InDelta(t, 90, RadToDeg(math32.Pi/2), 1e-4)
	assert.Equal(t, float32(1), Sign(3))
	assert.Equal(t, float32(-1), Sign(-0.5))
	assert.Equal(t, float32(0), Sign(0))
}

func BenchmarkVector3Cross(b *testing.B) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	for i := 0; i < b.N; i++ {
		_ = v1.Cross(v2)
	}
}
