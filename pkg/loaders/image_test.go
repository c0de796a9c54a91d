package loaders

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
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-pathtracer/pkg/core"
)

// quadrants is a 2x2 image: white, red / green, blue
func quadrants() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, A: 255})
	img.Set(0, 1, color.RGBA{G: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})
	return img
}

var quadrantPixels = []byte{
	255, 255, 255, 255, 0, 0,
	0, 255, 0, 0, 0, 255,
}

func TestDecodeImage_Formats(t *testing.T) {
	encoders := map[string]func(*bytes.Buffer) error{
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, quadrants()) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, quadrants()) },
		"tiff": func(b *bytes.Buffer) error { return tiff.Encode(b, quadrants(), nil) },
	}

	for name, encode := range encoders {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encode(&buf))

			img, err := DecodeImage(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, 2, img.Width)
			assert.Equal(t, 2, img.Height)
			assert.Equal(t, quadrantPixels, img.Pixels)
		})
	}
}

func TestDecodeImage_OffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	src.Set(2, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src.SubImage(image.Rect(1, 1, 3, 3))))

	img, err := DecodeImage(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, 2, img.Width)
	assert.Equal(t, []byte{10, 20, 30}, img.Pixels[9:12])
}

func TestDecodeImage_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"text", []byte("not an image at all")},
		{"zip archive", []byte{0x50, 0x4B, 0x03, 0x04, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeImage(tt.data)
			assert.ErrorIs(t, err, ErrUnsupportedImage)
		})
	}

	t.Run("truncated png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, quadrants()))
		_, err := DecodeImage(buf.Bytes()[:20])
		assert.Error(t, err)
	})
}

func TestLoadImageTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quadrants.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, quadrants()))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	texture, err := LoadImageTexture(path)
	require.NoError(t, err)

	// v=1 is the top row
	assert.Equal(t, core.NewVec3(1, 1, 1), texture.Value(0, 1, core.Vec3{}))
	assert.Equal(t, core.NewVec3(1, 0, 0), texture.Value(1, 1, core.Vec3{}))
	assert.Equal(t, core.NewVec3(0, 1, 0), texture.Value(0, 0, core.Vec3{}))
	assert.Equal(t, core.NewVec3(0, 0, 1), texture.Value(1, 0, core.Vec3{}))
}

func TestLoadImage_Missing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
