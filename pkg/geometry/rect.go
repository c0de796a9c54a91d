package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rectThickness pads a rectangle's box along its normal so the box never
// has zero volume.
const rectThickness = 0.0001

// XYRect is an axis-aligned rectangle in the plane z = K
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          material.Material
}

// NewXYRect creates a rectangle spanning [x0,x1] x [y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: mat}
}

// Hit intersects the plane z = K and checks the rectangle bounds
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitAxisRect(ray, tMin, tMax, axisRect{
		a: 0, b: 1, normal: 2,
		a0: r.X0, a1: r.X1, b0: r.Y0, b1: r.Y1, k: r.K,
	}, r.Material)
}

// BoundingBox returns the rectangle padded along z
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-rectThickness),
		core.NewVec3(r.X1, r.Y1, r.K+rectThickness),
	), true
}

// XZRect is an axis-aligned rectangle in the plane y = K
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          material.Material
}

// NewXZRect creates a rectangle spanning [x0,x1] x [z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// Hit intersects the plane y = K and checks the rectangle bounds
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitAxisRect(ray, tMin, tMax, axisRect{
		a: 0, b: 2, normal: 1,
		a0: r.X0, a1: r.X1, b0: r.Z0, b1: r.Z1, k: r.K,
	}, r.Material)
}

// BoundingBox returns the rectangle padded along y
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-rectThickness, r.Z0),
		core.NewVec3(r.X1, r.K+rectThickness, r.Z1),
	), true
}

// YZRect is an axis-aligned rectangle in the plane x = K
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          material.Material
}

// NewYZRect creates a rectangle spanning [y0,y1] x [z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// Hit intersects the plane x = K and checks the rectangle bounds
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitAxisRect(ray, tMin, tMax, axisRect{
		a: 1, b: 2, normal: 0,
		a0: r.Y0, a1: r.Y1, b0: r.Z0, b1: r.Z1, k: r.K,
	}, r.Material)
}

// BoundingBox returns the rectangle padded along x
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-rectThickness, r.Y0, r.Z0),
		core.NewVec3(r.K+rectThickness, r.Y1, r.Z1),
	), true
}

// axisRect describes a rectangle by its two in-plane axes, its normal axis
// and its extents.
type axisRect struct {
	a, b, normal   int
	a0, a1, b0, b1 float64
	k              float64
}

// hitAxisRect intersects a ray with an axis-aligned rectangle. A ray parallel
// to the plane produces an infinite or NaN t, which the negated comparisons
// reject without a special case.
func hitAxisRect(ray core.Ray, tMin, tMax float64, r axisRect, mat material.Material) (*material.HitRecord, bool) {
	t := (r.k - ray.Origin.Axis(r.normal)) / ray.Direction.Axis(r.normal)
	if !(t > tMin && t < tMax) {
		return nil, false
	}

	a := ray.Origin.Axis(r.a) + t*ray.Direction.Axis(r.a)
	b := ray.Origin.Axis(r.b) + t*ray.Direction.Axis(r.b)
	if !(a >= r.a0 && a <= r.a1 && b >= r.b0 && b <= r.b1) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (a - r.a0) / (r.a1 - r.a0),
		V:        (b - r.b0) / (r.b1 - r.b0),
		Material: mat,
	}
	hitRecord.SetFaceNormal(ray, unitAxis(r.normal))

	return hitRecord, true
}

// unitAxis returns the unit vector along axis 0, 1 or 2
func unitAxis(axis int) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(1, 0, 0)
	case 1:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}
