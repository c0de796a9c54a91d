package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ShadowEpsilon is the smallest accepted hit distance. It keeps a scattered
// ray from hitting the surface it leaves.
const ShadowEpsilon = 0.001

// PathTracingIntegrator implements recursive unidirectional path tracing
// with a hard depth limit.
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// Radiance traces ray with the integrator's full depth budget
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, world geometry.Hittable, background Background, sampler core.Sampler) core.Vec3 {
	return pt.RayColor(ray, world, background, pt.MaxDepth, sampler)
}

// RayColor returns emitted light at the nearest hit plus the attenuated
// color of the scattered ray. Escaping rays take the background color and
// a depth of zero or less returns black.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, background Background, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, ShadowEpsilon, math.Inf(1), sampler)
	if !isHit {
		return background.Color(ray)
	}

	emitted := material.Emitted(hit.Material, hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return emitted
	}

	incoming := pt.RayColor(scatter.Scattered, world, background, depth-1, sampler)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
