package loaders

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/golang/glog"
	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"
	_ "golang.org/x/image/bmp"  // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrUnsupportedImage is returned for data that is not an image format
// this package can decode
var ErrUnsupportedImage = errors.New("unsupported image data")

// supportedMIME lists the sniffed types with a registered decoder
var supportedMIME = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/bmp":  true,
	"image/tiff": true,
	"image/webp": true,
}

// ImageData is a decoded image packed as 8-bit RGB, top row first
type ImageData struct {
	Width  int
	Height int
	Pixels []byte
}

// LoadImage reads and decodes an image file. A leading ~ in path is expanded.
func LoadImage(path string) (*ImageData, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("while expanding image path %q: %w", path, err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("while reading image: %w", err)
	}

	img, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("while decoding %s: %w", expanded, err)
	}
	glog.V(1).Infof("Loaded %dx%d image from %s", img.Width, img.Height, expanded)
	return img, nil
}

// DecodeImage sniffs the format of data and decodes it. Alpha is dropped.
func DecodeImage(data []byte) (*ImageData, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if kind == filetype.Unknown || !supportedMIME[kind.MIME.Value] {
		return nil, fmt.Errorf("%w: detected %q", ErrUnsupportedImage, kind.MIME.Value)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("while decoding %s: %w", kind.Extension, err)
	}

	bounds := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 0, width*height*material.BytesPerPixel)
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+4*width]
		for x := 0; x < width; x++ {
			pixels = append(pixels, row[4*x], row[4*x+1], row[4*x+2])
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// Texture wraps the decoded pixels in an image texture
func (d *ImageData) Texture() *material.ImageTexture {
	return material.NewImageTexture(d.Width, d.Height, d.Pixels)
}

// LoadImageTexture loads an image file as a texture
func LoadImageTexture(path string) (*material.ImageTexture, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return img.Texture(), nil
}
