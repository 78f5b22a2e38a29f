package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix4StackStartsWithIdentity(t *testing.T) {
	s := NewMatrix4Stack()
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, Identity(), s.Top())

	var zero Matrix4Stack
	assert.Equal(t, Identity(), zero.Top())
	assert.Equal(t, 1, zero.Depth())
}

func TestMatrix4StackPushPopRoundTrip(t *testing.T) {
	s := NewMatrix4Stack()
	s.Rotate(30, 0, 1, 0)
	before := s.Top()

	s.Push()
	assert.Equal(t, 2, s.Depth())
	assert.Equal(t, before, s.Top())

	s.Translate(1, 2, 3)
	assert.NotEqual(t, before, s.Top())

	s.Pop()
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, before, s.Top())
}

func TestMatrix4StackPopReseedsIdentity(t *testing.T) {
	s := NewMatrix4Stack()
	s.Scale(2, 2, 2)
	s.Pop()
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, Identity(), s.Top())

	// repeated pops never empty the stack
	s.Pop()
	s.Pop()
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, Identity(), s.Top())
}

func TestMatrix4StackNested(t *testing.T) {
	s := NewMatrix4Stack()
	s.Translate(0, 0, -10)

	s.Push()
	s.Translate(1, 0, 0)
	s.Push()
	s.Translate(0, 1, 0)
	assert.Equal(t, Vector4{1, 1, -10, 1}, s.Top()[3])
	assert.Equal(t, 3, s.Depth())
	s.Pop()
	assert.Equal(t, Vector4{1, 0, -10, 1}, s.Top()[3])
	s.Pop()
	assert.Equal(t, Vector4{0, 0, -10, 1}, s.Top()[3])
}

func TestMatrix4StackDelegates(t *testing.T) {
	eye := Vector3{1, 2, 3}
	center := Vector3{0, 0, 0}
	up := Vector3{0, 1, 0}

	want := Identity()
	want.Perspective(60, 1.5, 0.1, 10)
	want.Frustum(-1, 1, -1, 1, 1, 5)
	want.LookAt(eye, center, up)
	want.TranslateV(Vector3{1, 2, 3})
	want.Translate(-1, 0, 2)
	want.RotateV(20, Vector3{1, 0, 0})
	want.Rotate(10, 0, 0, 1)
	want.ScaleV(Vector3{2, 2, 2})
	want.Scale(1, 3, 1)
	want.SetMul(sequentialMatrix())

	s := NewMatrix4Stack()
	s.Translate(5, 5, 5)
	s.LoadIdentity()
	s.Perspective(60, 1.5, 0.1, 10)
	s.Frustum(-1, 1, -1, 1, 1, 5)
	s.LookAt(eye, center, up)
	s.TranslateV(Vector3{1, 2, 3})
	s.Translate(-1, 0, 2)
	s.RotateV(20, Vector3{1, 0, 0})
	s.Rotate(10, 0, 0, 1)
	s.ScaleV(Vector3{2, 2, 2})
	s.Scale(1, 3, 1)
	s.MulMatrix(sequentialMatrix())

	assert.Equal(t, want, s.Top())
}

func TestMatrix4StackTopPtr(t *testing.T) {
	s := NewMatrix4Stack()
	s.Translate(7, 8, 9)
	p := s.TopPtr()
	assert.Equal(t, float32(1), *p)

	top := s.Top()
	top.Scale(0, 0, 0)
	// Top returns a copy
	assert.Equal(t, float32(1), s.Top()[0][0])
}
