package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect and that can be bounded in
// space-time. Implementations are immutable once the scene is built and are
// shared read-only by every render goroutine.
type Hittable interface {
	// Hit returns the nearest intersection with t in the open interval
	// (tMin, tMax). The sampler is only consumed by participating media.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box containing the object for every time in
	// [time0, time1], or false when the object is unbounded.
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
