package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestQuaternionMatchesRotate(t *testing.T) {
	cases := []struct {
		angle float32
		axis  Vector3
	}{
		{90, Vector3{0, 1, 0}},
		{-45, Vector3{1, 0, 0}},
		{30, Vector3{1, 2, 3}},
	}
	for _, c := range cases {
		q := QuaternionFromAxisAngle(c.angle, c.axis)
		want := Identity()
		want.RotateV(c.angle, c.axis)
		assertMatrixInDelta(t, want, q.Matrix4(), matrixDelta)

		mq := mgl32.QuatRotate(mgl32.DegToRad(c.angle), mgl32.Vec3(c.axis).Normalize())
		assertMatchesMathGL(t, mq.Mat4(), q.Matrix4())

		for _, v := range testVectors {
			assertVector3InDelta(t, want.MulDirection(v), q.Rotate(v), 1e-3)
		}
	}
}

func TestQuaternionMul(t *testing.T) {
	a := QuaternionFromAxisAngle(30, Vector3{0, 0, 1})
	b := QuaternionFromAxisAngle(60, Vector3{0, 0, 1})
	assertMatrixInDelta(t, QuaternionFromAxisAngle(90, Vector3{0, 0, 1}).Matrix4(), a.Mul(b).Matrix4(), matrixDelta)

	x := QuaternionFromAxisAngle(90, Vector3{1, 0, 0})
	y := QuaternionFromAxisAngle(90, Vector3{0, 1, 0})
	// x.Mul(y) applies y first
	assertMatrixInDelta(t, x.Matrix4().Mul(y.Matrix4()), x.Mul(y).Matrix4(), matrixDelta)

	assert.Equal(t, x, x.Mul(QuaternionIdentity()))
}

func TestQuaternionNormalize(t *testing.T) {
	q := Quaternion{0, 2, 0, 2}.Normalize()
	assert.InDelta(t, 1, q.Length(), 1e-6)
	assert.InDelta(t, 0.70710677, q[1], 1e-6)

	assert.Equal(t, QuaternionIdentity(), Quaternion{}.Normalize())

	c := q.Conjugate()
	assert.Equal(t, Quaternion{0, -q[1], 0, q[3]}, c)
	assertMatrixInDelta(t, Identity(), q.Mul(c).Matrix4(), matrixDelta)
}
