package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sceneview/math"
)

func TestCullModeText(t *testing.T) {
	for _, mode := range []CullMode{CullBack, CullFront, CullNone} {
		text, err := mode.MarshalText()
		require.NoError(t, err)

		var back CullMode
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, mode, back)
	}

	var c CullMode
	err := c.UnmarshalText([]byte("sideways"))
	var unknown *UnknownCullModeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "sideways", unknown.Value)

	mode, ok := ParseCullMode("")
	assert.True(t, ok)
	assert.Equal(t, CullBack, mode)
}

func TestColorConversion(t *testing.T) {
	c := ColorFromVector3(math.Vector3{0.1, 0.2, 0.3})
	assert.Equal(t, Color{0.1, 0.2, 0.3, 1}, c)
	assert.Equal(t, math.Vector3{0.1, 0.2, 0.3}, c.Vector3())
}
