package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background gives the radiance of rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SolidBackground returns one color in every direction
type SolidBackground struct {
	Value core.Vec3
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Value: color}
}

// Color returns the constant color
func (b *SolidBackground) Color(ray core.Ray) core.Vec3 {
	return b.Value
}

// SkyGradient blends from Bottom (looking straight down) to Top (looking
// straight up) by the ray's vertical direction.
type SkyGradient struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewSkyGradient creates the classic white-to-blue sky
func NewSkyGradient() *SkyGradient {
	return &SkyGradient{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color interpolates on the normalized direction's Y component
func (b *SkyGradient) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
