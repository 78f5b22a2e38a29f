package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sceneview/math"
)

const eps = 1e-4

func assertVec3(t *testing.T, want, got math.Vector3, msgAndArgs ...any) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], eps, msgAndArgs...)
}

func assertMat4(t *testing.T, want, got math.Matrix4, msgAndArgs ...any) {
	t.Helper()
	w, g := want.Array(), got.Array()
	assert.InDeltaSlice(t, w[:], g[:], eps, msgAndArgs...)
}
