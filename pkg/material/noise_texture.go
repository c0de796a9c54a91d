package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NoiseTexture is a marble-like pattern: a sine of the scaled z coordinate
// phase-shifted by turbulence.
type NoiseTexture struct {
	Noise  *Perlin
	Scale  float64
	Depth  int // turbulence octaves
	Albedo core.Vec3
}

// NewNoiseTexture creates a white marble texture with its own noise tables
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{
		Noise:  NewPerlin(sampler),
		Scale:  scale,
		Depth:  DefaultTurbulenceDepth,
		Albedo: core.NewVec3(1, 1, 1),
	}
}

// Value returns albedo * 0.5 * (1 + sin(scale*z + 10*turb(scale*p)))
func (n *NoiseTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	scaled := point.Multiply(n.Scale)
	phase := n.Scale*point.Z + 10*n.Noise.Turbulence(scaled, n.Depth)
	return n.Albedo.Multiply(0.5 * (1 + math.Sin(phase)))
}
