package scene

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture holds CPU-side pixel data for a 2D texture.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format (4 bytes per pixel, row-major, top-to-bottom).
	Pixels []byte
	// GLID is the OpenGL texture object ID, set by opengl.UploadTexture.
	GLID uint32
}

type TextureOptions struct {
	// FlipVertical stores the bottom row first, matching GL texture origin.
	FlipVertical bool
	// MaxSize limits the longer side; larger images are downscaled. Zero
	// disables the limit.
	MaxSize int
}

// LoadTexture reads a PNG, JPEG, BMP, TIFF or WebP file and converts it to RGBA8.
func LoadTexture(path string, opts TextureOptions) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	tex, err := DecodeTexture(path, data, opts)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", path, err)
	}
	return tex, nil
}

// DecodeTexture decodes an in-memory image file.
func DecodeTexture(name string, data []byte, opts TextureOptions) (*Texture, error) {
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("not an image (detected %q)", kind.Extension)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	rgba := clone.AsRGBA(img)
	if opts.MaxSize > 0 {
		rgba = fitWithin(rgba, opts.MaxSize)
	}
	if opts.FlipVertical {
		rgba = transform.FlipV(rgba)
	}

	b := rgba.Bounds()
	return &Texture{
		Name:   name,
		Width:  b.Dx(),
		Height: b.Dy(),
		Pixels: tightPixels(rgba),
	}, nil
}

// fitWithin downscales img so neither side exceeds size, keeping the aspect ratio.
func fitWithin(img *image.RGBA, size int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= size && h <= size {
		return img
	}
	if w >= h {
		h = max(1, h*size/w)
		w = size
	} else {
		w = max(1, w*size/h)
		h = size
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// tightPixels returns the pixel rows without stride padding.
func tightPixels(img *image.RGBA) []byte {
	b := img.Bounds()
	rowLen := b.Dx() * 4
	if img.Stride == rowLen && b.Min == (image.Point{}) {
		return img.Pix
	}
	out := make([]byte, 0, rowLen*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		start := img.PixOffset(b.Min.X, y)
		out = append(out, img.Pix[start:start+rowLen]...)
	}
	return out
}

// NewSolidTexture creates a 1x1 texture with the given RGBA color values (0-255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
	}
}
