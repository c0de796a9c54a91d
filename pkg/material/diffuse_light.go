package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight is an emissive material. Its texture may return values above
// 1 to represent bright sources.
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a light with a constant emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission follows a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter never scatters; lights terminate the path
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the texture value at the hit
func (d *DiffuseLight) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return d.Emit.Value(u, v, point)
}
