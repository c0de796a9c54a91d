package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator estimates the radiance carried back along a camera ray
type Integrator interface {
	Radiance(ray core.Ray, world geometry.Hittable, background Background, sampler core.Sampler) core.Vec3
}

// RayGenerator maps normalized image coordinates to camera rays
type RayGenerator interface {
	GetRay(s, t float64, sampler core.Sampler) core.Ray
}

// PixelRequest identifies one pixel of an image for sampling
type PixelRequest struct {
	X, Y          int // Y counts up from the bottom row
	Width, Height int
	Samples       int
}

// SamplePixel averages req.Samples radiance estimates through rays jittered
// inside the pixel footprint. The result is linear color.
func SamplePixel(integrator Integrator, camera RayGenerator, world geometry.Hittable, background Background, req PixelRequest, sampler core.Sampler) core.Vec3 {
	if req.Samples <= 0 {
		return core.Vec3{}
	}

	var sum core.Vec3
	for i := 0; i < req.Samples; i++ {
		s := (float64(req.X) + sampler.Get1D()) / float64(req.Width-1)
		t := (float64(req.Y) + sampler.Get1D()) / float64(req.Height-1)
		ray := camera.GetRay(s, t, sampler)
		sum = sum.Add(integrator.Radiance(ray, world, background, sampler))
	}
	return sum.Divide(float64(req.Samples))
}

// FinalizeColor gamma corrects linear color with a square root and clamps
// it to [0, 0.999] so that scaling by 256 stays below 256.
func FinalizeColor(color core.Vec3) core.Vec3 {
	return color.GammaCorrect(2.0).Clamp(0, 0.999)
}
