package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

var skyBlue = core.NewVec3(0.7, 0.8, 1.0)

// groundAndGlass is a large diffuse ground sphere with a glass ball on it,
// seen from (13,2,3)
func groundAndGlass(t *testing.T, config Config) *Scene {
	t.Helper()

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewDielectric(1.5)),
	}
	camera := NewCamera(CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   config.AspectRatio(),
		Aperture:      0,
		FocusDistance: 10,
	})

	scene, err := NewBVHScene(objects, camera, integrator.NewSolidBackground(skyBlue), 7)
	require.NoError(t, err)
	return scene
}

func smallConfig() Config {
	return Config{
		Width:           64,
		Height:          36,
		SamplesPerPixel: 8,
		MaxDepth:        10,
		Bands:           6,
		Workers:         3,
		Seed:            11,
	}
}

func TestRender_GroundAndGlass(t *testing.T) {
	config := smallConfig()
	frame, err := NewRaytracer(groundAndGlass(t, config), config).Render(context.Background())
	require.NoError(t, err)

	require.Len(t, frame.Pixels, config.Height)
	for _, row := range frame.Pixels {
		require.Len(t, row, config.Width)
	}

	center := frame.At(config.Width/2, config.Height/2)
	assert.False(t, center.ApproxEquals(skyBlue, 1e-3), "center pixel %v should show the glass ball", center)

	// The camera looks down onto the ground, so only the upper corners see sky
	for _, corner := range [][2]int{{0, 0}, {config.Width - 1, 0}} {
		pixel := frame.At(corner[0], corner[1])
		assert.True(t, pixel.ApproxEquals(skyBlue, 1e-9), "corner %v is %v", corner, pixel)
	}
	for _, corner := range [][2]int{{0, config.Height - 1}, {config.Width - 1, config.Height - 1}} {
		pixel := frame.At(corner[0], corner[1])
		assert.False(t, pixel.ApproxEquals(skyBlue, 1e-3), "corner %v should show the ground", corner)
	}

	assert.Equal(t, config.Width*config.Height, frame.Stats.TotalPixels)
	assert.Equal(t, config.Width*config.Height*config.SamplesPerPixel, frame.Stats.TotalSamples)
	assert.Equal(t, config.Bands, frame.Stats.Bands)
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	config := smallConfig()
	config.Width, config.Height = 24, 14
	config.SamplesPerPixel = 4
	scene := groundAndGlass(t, config)

	var frames []*Frame
	for _, workers := range []int{1, 2, 8} {
		config.Workers = workers
		frame, err := NewRaytracer(scene, config).Render(context.Background())
		require.NoError(t, err)
		frames = append(frames, frame)
	}

	for _, frame := range frames[1:] {
		assert.Equal(t, frames[0].Pixels, frame.Pixels)
	}
}

func TestRender_MoreBandsThanRows(t *testing.T) {
	config := smallConfig()
	config.Width, config.Height = 4, 3
	config.Bands = 10
	config.SamplesPerPixel = 1

	frame, err := NewRaytracer(groundAndGlass(t, config), config).Render(context.Background())
	require.NoError(t, err)
	assert.Len(t, frame.Pixels, 3)
	for _, row := range frame.Pixels {
		assert.Len(t, row, 4)
	}
}

// explodingWorld panics on every intersection query
type explodingWorld struct{}

func (explodingWorld) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	panic("numeric fault")
}

func (explodingWorld) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func TestRender_PanickingBandReturnsError(t *testing.T) {
	config := smallConfig()
	scene := &Scene{
		World:      explodingWorld{},
		Background: integrator.NewSolidBackground(skyBlue),
		Camera:     NewCamera(pinholeConfig()),
	}

	frame, err := NewRaytracer(scene, config).Render(context.Background())
	require.Error(t, err)
	assert.Nil(t, frame)
	assert.Contains(t, err.Error(), "numeric fault")
}

func TestRender_Cancelled(t *testing.T) {
	config := smallConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frame, err := NewRaytracer(groundAndGlass(t, config), config).Render(ctx)
	require.Error(t, err)
	assert.Nil(t, frame)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestRender_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"single column", func(c *Config) { c.Width = 1 }},
		{"no samples", func(c *Config) { c.SamplesPerPixel = 0 }},
		{"no depth", func(c *Config) { c.MaxDepth = 0 }},
		{"no bands", func(c *Config) { c.Bands = 0 }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := smallConfig()
			tt.mutate(&config)
			_, err := NewRaytracer(&Scene{}, config).Render(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestNewBVHScene_RejectsUnboundedObjects(t *testing.T) {
	_, err := NewBVHScene([]geometry.Hittable{explodingWorld{}}, NewCamera(pinholeConfig()), integrator.NewSolidBackground(skyBlue), 1)
	assert.ErrorIs(t, err, geometry.ErrNoBoundingBox)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.NoError(t, config.Validate())
	assert.Equal(t, 400, config.Width)
	assert.Equal(t, 225, config.Height)
	assert.Equal(t, 16, config.Bands)
	assert.InDelta(t, 16.0/9.0, config.AspectRatio(), 1e-2)
}
