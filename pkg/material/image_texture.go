package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// BytesPerPixel is the channel count of decoded texture data (RGB8)
const BytesPerPixel = 3

// missingImageColor is returned when a texture has no pixel data
var missingImageColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a decoded 8-bit RGB image.
// Row 0 of Data is the top of the image.
type ImageTexture struct {
	Data             []byte
	Width            int
	Height           int
	BytesPerScanline int
}

// NewImageTexture creates a texture over tightly packed RGB8 rows
func NewImageTexture(width, height int, data []byte) *ImageTexture {
	return &ImageTexture{
		Data:             data,
		Width:            width,
		Height:           height,
		BytesPerScanline: BytesPerPixel * width,
	}
}

// Value samples the nearest pixel. Coordinates outside [0,1] are clamped
// and v is flipped so v=1 is the top row. Empty textures return cyan so a
// missing image is obvious in the render.
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	if len(t.Data) == 0 || t.Width <= 0 || t.Height <= 0 {
		return missingImageColor
	}

	u = core.Clamp(u, 0, 1)
	v = 1 - core.Clamp(v, 0, 1)

	i := int(u * float64(t.Width))
	j := int(v * float64(t.Height))

	// u or v of exactly 1 would index one past the edge
	if i >= t.Width {
		i = t.Width - 1
	}
	if j >= t.Height {
		j = t.Height - 1
	}

	offset := j*t.BytesPerScanline + i*BytesPerPixel
	if offset+BytesPerPixel > len(t.Data) {
		return missingImageColor
	}

	return core.NewVec3(
		float64(t.Data[offset])/255,
		float64(t.Data[offset+1])/255,
		float64(t.Data[offset+2])/255,
	)
}
