package scene

import (
	"fmt"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Options carries the inputs every scene builder accepts
type Options struct {
	TextureDir string // Image texture file names are resolved against this directory
	Seed       int64  // Seeds random scene layout
}

// Description is a scene before its BVH is built: the objects plus the
// camera, background and render settings it was composed for.
type Description struct {
	Objects    []geometry.Hittable
	Camera     renderer.CameraConfig
	Background integrator.Background
	Defaults   renderer.Config
}

// Build freezes the description into a renderable scene. The camera takes
// its aspect ratio from config so that pixels stay square.
func (d *Description) Build(config renderer.Config) (*renderer.Scene, error) {
	cameraConfig := d.Camera
	cameraConfig.AspectRatio = config.AspectRatio()
	return renderer.NewBVHScene(d.Objects, renderer.NewCamera(cameraConfig), d.Background, config.Seed)
}

// loadTexture loads name from the texture directory. A missing or
// undecodable file is an error, never a silent fallback.
func (o Options) loadTexture(name string) (*material.ImageTexture, error) {
	texture, err := loaders.LoadImageTexture(filepath.Join(o.TextureDir, name))
	if err != nil {
		return nil, fmt.Errorf("while loading texture %s: %w", name, err)
	}
	return texture, nil
}

// sampler returns the random stream used for scene layout
func (o Options) sampler() core.Sampler {
	return core.NewSeededSampler(o.Seed)
}

// defaults returns render settings for a scene designed at width x height
func defaults(width, height int) renderer.Config {
	config := renderer.DefaultConfig()
	config.Width = width
	config.Height = height
	config.SamplesPerPixel = 200
	config.MaxDepth = 20
	return config
}

// lookingAt is a pinhole camera over the standard one-second shutter
func lookingAt(from, at core.Vec3, vfov float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      from,
		LookAt:        at,
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          vfov,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

var (
	daylight = core.NewVec3(0.70, 0.80, 1.00)
	darkness = core.NewVec3(0, 0, 0)
)
