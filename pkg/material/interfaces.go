package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material decides how light scatters at a surface hit.
// Implementations are immutable and shared read-only by every render goroutine.
type Material interface {
	// Scatter returns the attenuation and outgoing ray, or false when the
	// material absorbs the incoming ray.
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light. Materials that do
// not implement it emit nothing.
type Emitter interface {
	Emitted(u, v float64, point core.Vec3) core.Vec3
}

// Emitted returns the light emitted by m at the given surface coordinates,
// or black when m is not an Emitter.
func Emitted(m Material, u, v float64, point core.Vec3) core.Vec3 {
	if emitter, ok := m.(Emitter); ok {
		return emitter.Emitted(u, v, point)
	}
	return core.Vec3{}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// It is scoped to one intersection query and never shared across goroutines.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
