package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rotation turns an object about a coordinate axis. Object space maps to
// world space by rotating the (i, j) plane:
//
//	i' = cos·i - sin·j
//	j' = sin·i + cos·j
type rotation struct {
	Object   Hittable
	i, j     int
	sinTheta float64
	cosTheta float64
	box      core.AABB
	hasBox   bool
}

func newRotation(object Hittable, degrees float64, i, j int) rotation {
	radians := core.DegreesToRadians(degrees)
	r := rotation{
		Object:   object,
		i:        i,
		j:        j,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// The box is fixed at construction over the unit shutter interval
	childBox, ok := object.BoundingBox(0, 1)
	if !ok {
		return r
	}

	var corners [8]core.Vec3
	for n, corner := range childBox.Corners() {
		corners[n] = r.toWorld(corner)
	}
	r.box = core.NewAABBFromPoints(corners[:]...)
	r.hasBox = true
	return r
}

// rotate applies a rotation by (sin, cos) in the (i, j) plane
func (r rotation) rotate(v core.Vec3, sin float64) core.Vec3 {
	c := [3]float64{v.X, v.Y, v.Z}
	a, b := c[r.i], c[r.j]
	c[r.i] = r.cosTheta*a - sin*b
	c[r.j] = sin*a + r.cosTheta*b
	return core.NewVec3(c[0], c[1], c[2])
}

func (r rotation) toWorld(v core.Vec3) core.Vec3  { return r.rotate(v, r.sinTheta) }
func (r rotation) toObject(v core.Vec3) core.Vec3 { return r.rotate(v, -r.sinTheta) }

// Hit rotates the ray into object space, delegates, and rotates the hit
// point and normal back to world space.
func (r rotation) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	// Rotation preserves dot products, so the child's face orientation holds
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)

	return hit, true
}

// BoundingBox returns the axis-aligned extents of the rotated child box.
// It is looser than the exact rotated bound.
func (r rotation) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}

// RotateY rotates an object about the Y axis
type RotateY struct {
	rotation
}

// NewRotateY wraps object with a rotation of degrees about Y
func NewRotateY(object Hittable, degrees float64) *RotateY {
	return &RotateY{newRotation(object, degrees, 2, 0)}
}

// RotateZ rotates an object about the Z axis
type RotateZ struct {
	rotation
}

// NewRotateZ wraps object with a rotation of degrees about Z
func NewRotateZ(object Hittable, degrees float64) *RotateZ {
	return &RotateZ{newRotation(object, degrees, 0, 1)}
}
