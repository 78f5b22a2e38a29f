package scene

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodePNG returns a w x h image whose top row is red and the rest blue.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{B: 255, A: 255}
			if y == 0 {
				c = color.RGBA{R: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeTexture(t *testing.T) {
	tex, err := DecodeTexture("stripe", encodePNG(t, 4, 2), TextureOptions{})
	require.NoError(t, err)
	assert.Equal(t, 4, tex.Width)
	assert.Equal(t, 2, tex.Height)
	require.Len(t, tex.Pixels, 4*2*4)
	assert.Equal(t, []byte{255, 0, 0, 255}, tex.Pixels[:4], "top row first")
}

func TestDecodeTextureFlip(t *testing.T) {
	tex, err := DecodeTexture("stripe", encodePNG(t, 4, 2), TextureOptions{FlipVertical: true})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 255, 255}, tex.Pixels[:4])
	assert.Equal(t, []byte{255, 0, 0, 255}, tex.Pixels[16:20])
}

func TestDecodeTextureMaxSize(t *testing.T) {
	tex, err := DecodeTexture("big", encodePNG(t, 64, 16), TextureOptions{MaxSize: 32})
	require.NoError(t, err)
	assert.Equal(t, 32, tex.Width)
	assert.Equal(t, 8, tex.Height)
	assert.Len(t, tex.Pixels, 32*8*4)

	tex, err = DecodeTexture("small", encodePNG(t, 8, 8), TextureOptions{MaxSize: 32})
	require.NoError(t, err)
	assert.Equal(t, 8, tex.Width)
}

func TestDecodeTextureRejectsNonImages(t *testing.T) {
	_, err := DecodeTexture("text", []byte("v 0 0 0\n"), TextureOptions{})
	assert.ErrorContains(t, err, "not an image")
}

func TestLoadTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stripe.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, 2, 2), 0o644))

	tex, err := LoadTexture(path, TextureOptions{})
	require.NoError(t, err)
	assert.Equal(t, path, tex.Name)

	_, err = LoadTexture(filepath.Join(t.TempDir(), "none.png"), TextureOptions{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSolidTexture(t *testing.T) {
	tex := NewSolidTexture("white", 255, 255, 255, 255)
	assert.Equal(t, 1, tex.Width)
	assert.Equal(t, []byte{255, 255, 255, 255}, tex.Pixels)
}
