package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Frame holds the averaged linear color of every pixel. Row 0 is the top of
// the image.
type Frame struct {
	Width  int
	Height int
	Pixels [][]core.Vec3
	Stats  RenderStats
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	pixels := make([][]core.Vec3, height)
	for y := range pixels {
		pixels[y] = make([]core.Vec3, width)
	}
	return &Frame{Width: width, Height: height, Pixels: pixels}
}

// At returns the linear color at column x, row y
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[y][x]
}

// ToImage gamma corrects, clamps and quantizes the frame to 8 bits per channel
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y, row := range f.Pixels {
		for x, pixel := range row {
			img.SetRGBA(x, y, vec3ToColor(pixel))
		}
	}
	return img
}

// vec3ToColor converts linear color to RGBA with square-root gamma
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = integrator.FinalizeColor(colorVec)
	return color.RGBA{
		R: uint8(256 * colorVec.X),
		G: uint8(256 * colorVec.Y),
		B: uint8(256 * colorVec.Z),
		A: 255,
	}
}
