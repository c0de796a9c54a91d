package renderer

import (
	"fmt"
	"runtime"
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Bands           int   // Number of horizontal bands, one job each
	Workers         int   // Bands rendered concurrently
	Seed            int64 // Band i samples from Seed+i
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Bands:           16,
		Workers:         runtime.NumCPU(),
		Seed:            1,
	}
}

// Validate reports the first setting a render cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width < 2 || c.Height < 2:
		return fmt.Errorf("image must be at least 2x2, got %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth < 1:
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	case c.Bands < 1:
		return fmt.Errorf("band count must be positive, got %d", c.Bands)
	case c.Workers < 1:
		return fmt.Errorf("worker count must be positive, got %d", c.Workers)
	}
	return nil
}

// AspectRatio returns width / height
func (c Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}
