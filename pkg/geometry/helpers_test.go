package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// fixedSampler returns the same values on every call
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64   { return f.value }
func (f fixedSampler) Get2D() core.Vec2 { return core.NewVec2(f.value, f.value) }
func (f fixedSampler) Get3D() core.Vec3 { return core.NewVec3(f.value, f.value, f.value) }

// unbounded is a hittable without a bounding box
type unbounded struct{}

func (unbounded) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return nil, false
}

func (unbounded) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

var testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
