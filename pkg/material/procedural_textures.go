package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// toByte quantizes a [0,1] channel to 8 bits
func toByte(c float64) byte {
	return byte(core.Clamp(c, 0, 1)*255 + 0.5)
}

// putPixel writes color at (x, y) of a tightly packed RGB8 buffer
func putPixel(data []byte, width, x, y int, color core.Vec3) {
	offset := (y*width + x) * BytesPerPixel
	data[offset] = toByte(color.X)
	data[offset+1] = toByte(color.Y)
	data[offset+2] = toByte(color.Z)
}

// NewCheckerboardTexture creates an image texture holding a checkerboard in
// surface coordinates, unlike CheckerTexture which checks in world space.
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	data := make([]byte, width*height*BytesPerPixel)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			color := color2
			if (x/checkSize+y/checkSize)%2 == 0 {
				color = color1
			}
			putPixel(data, width, x, y, color)
		}
	}

	return NewImageTexture(width, height, data)
}

// NewUVDebugTexture creates a texture showing surface coordinates as colors.
// U maps to red, V maps to green.
func NewUVDebugTexture(width, height int) *ImageTexture {
	data := make([]byte, width*height*BytesPerPixel)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width-1)
			v := 1 - float64(y)/float64(height-1)
			putPixel(data, width, x, y, core.NewVec3(u, v, 0))
		}
	}

	return NewImageTexture(width, height, data)
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *ImageTexture {
	data := make([]byte, width*height*BytesPerPixel)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(height-1)
		color := color1.Multiply(1.0 - t).Add(color2.Multiply(t))

		for x := 0; x < width; x++ {
			putPixel(data, width, x, y, color)
		}
	}

	return NewImageTexture(width, height, data)
}
