package math

// Matrix4Stack is an OpenGL-style transform stack. It always holds at least
// one matrix; the top is the current transform mutated by the builder methods.
//
// The zero value is ready to use and behaves like NewMatrix4Stack().
type Matrix4Stack struct {
	stack []Matrix4
}

// NewMatrix4Stack returns a stack holding a single identity matrix.
func NewMatrix4Stack() *Matrix4Stack {
	return &Matrix4Stack{stack: []Matrix4{Identity()}}
}

func (s *Matrix4Stack) top() *Matrix4 {
	if len(s.stack) == 0 {
		s.stack = append(s.stack, Identity())
	}
	return &s.stack[len(s.stack)-1]
}

// Top returns a copy of the current matrix.
func (s *Matrix4Stack) Top() Matrix4 {
	return *s.top()
}

// TopPtr returns a pointer to the first float of the current matrix, valid
// until the next Push or Pop.
func (s *Matrix4Stack) TopPtr() *float32 {
	return s.top().Ptr()
}

// Depth returns the number of matrices on the stack.
func (s *Matrix4Stack) Depth() int {
	s.top()
	return len(s.stack)
}

// Push duplicates the current matrix so later changes can be undone by Pop.
func (s *Matrix4Stack) Push() {
	s.stack = append(s.stack, *s.top())
}

// Pop discards the current matrix. Popping the last matrix leaves a fresh identity.
func (s *Matrix4Stack) Pop() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
	s.top()
}

func (s *Matrix4Stack) LoadIdentity() { s.top().LoadIdentity() }

// MulMatrix right-multiplies the current matrix by m.
func (s *Matrix4Stack) MulMatrix(m Matrix4) { s.top().SetMul(m) }

func (s *Matrix4Stack) Translate(x, y, z float32) { s.top().Translate(x, y, z) }

func (s *Matrix4Stack) TranslateV(v Vector3) { s.top().TranslateV(v) }

func (s *Matrix4Stack) Scale(x, y, z float32) { s.top().Scale(x, y, z) }

func (s *Matrix4Stack) ScaleV(v Vector3) { s.top().ScaleV(v) }

func (s *Matrix4Stack) Rotate(angle, x, y, z float32) { s.top().Rotate(angle, x, y, z) }

func (s *Matrix4Stack) RotateV(angle float32, axis Vector3) { s.top().RotateV(angle, axis) }

func (s *Matrix4Stack) LookAt(eye, center, up Vector3) { s.top().LookAt(eye, center, up) }

func (s *Matrix4Stack) Frustum(left, right, bottom, top, near, far float32) {
	s.top().Frustum(left, right, bottom, top, near, far)
}

func (s *Matrix4Stack) Perspective(fovY, aspect, near, far float32) {
	s.top().Perspective(fovY, aspect, near, far)
}
