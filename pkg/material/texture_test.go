package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSolidColor_IgnoresInputs(t *testing.T) {
	color := core.NewVec3(0.2, 0.3, 0.4)
	texture := NewSolidColor(color)

	assert.Equal(t, color, texture.Value(0, 0, core.Vec3{}))
	assert.Equal(t, color, texture.Value(0.7, 0.1, core.NewVec3(100, -3, 8)))
}

func TestCheckerTexture_WorldSpace(t *testing.T) {
	odd := core.NewVec3(1, 0, 0)
	even := core.NewVec3(0, 1, 0)
	checker := NewCheckerColors(odd, even)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Vec3
	}{
		// sin(1)^3 > 0
		{"all positive", core.NewVec3(0.1, 0.1, 0.1), even},
		// sin(-1)*sin(1)*sin(1) < 0
		{"one negative", core.NewVec3(-0.1, 0.1, 0.1), odd},
		{"two negative", core.NewVec3(-0.1, -0.1, 0.1), even},
		// the cell boundary at sin(0) = 0 is even
		{"on boundary", core.NewVec3(0, 0.1, 0.1), even},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, checker.Value(0.5, 0.5, tt.point))
		})
	}
}

func TestCheckerTexture_IgnoresSurfaceCoordinates(t *testing.T) {
	checker := NewCheckerColors(core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	point := core.NewVec3(0.3, -0.2, 0.25)
	expected := checker.Value(0, 0, point)

	for _, uv := range [][2]float64{{0.1, 0.9}, {0.5, 0.5}, {1, 0}} {
		assert.Equal(t, expected, checker.Value(uv[0], uv[1], point))
	}
}

func TestPerlin_Deterministic(t *testing.T) {
	a := NewPerlin(core.NewSeededSampler(11))
	b := NewPerlin(core.NewSeededSampler(11))

	sampler := core.NewSeededSampler(5)
	for i := 0; i < 200; i++ {
		p := core.RandomVec3(sampler, -20, 20)
		assert.Equal(t, a.Noise(p), b.Noise(p))
	}
}

func TestPerlin_PermutationsArePermutations(t *testing.T) {
	p := NewPerlin(core.NewSeededSampler(3))

	for _, perm := range [][perlinPointCount]int{p.permX, p.permY, p.permZ} {
		seen := make(map[int]bool, perlinPointCount)
		for _, v := range perm {
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, perlinPointCount)
			seen[v] = true
		}
		assert.Len(t, seen, perlinPointCount)
	}

	for _, g := range p.gradients {
		assert.InDelta(t, 1.0, g.Length(), 1e-9)
	}
}

func TestPerlin_NoiseRangeAndLattice(t *testing.T) {
	p := NewPerlin(core.NewSeededSampler(21))

	// Every gradient contribution vanishes on lattice points
	assert.Equal(t, 0.0, p.Noise(core.NewVec3(3, -7, 12)))

	sampler := core.NewSeededSampler(8)
	for i := 0; i < 2000; i++ {
		n := p.Noise(core.RandomVec3(sampler, -50, 50))
		assert.False(t, math.IsNaN(n))
		assert.LessOrEqual(t, math.Abs(n), math.Sqrt(3))
	}
}

func TestPerlin_TurbulenceNonNegative(t *testing.T) {
	p := NewPerlin(core.NewSeededSampler(4))
	sampler := core.NewSeededSampler(9)

	for i := 0; i < 500; i++ {
		point := core.RandomVec3(sampler, -10, 10)
		assert.GreaterOrEqual(t, p.Turbulence(point, DefaultTurbulenceDepth), 0.0)
	}
	assert.Equal(t, 0.0, p.Turbulence(core.NewVec3(1.5, 2.5, 3.5), 0))
}

func TestNoiseTexture_Range(t *testing.T) {
	texture := NewNoiseTexture(4, core.NewSeededSampler(1))
	sampler := core.NewSeededSampler(2)

	for i := 0; i < 500; i++ {
		c := texture.Value(0, 0, core.RandomVec3(sampler, -5, 5))
		assert.GreaterOrEqual(t, c.X, 0.0)
		assert.LessOrEqual(t, c.X, 1.0)
		// Gray: every channel identical
		assert.Equal(t, c.X, c.Y)
		assert.Equal(t, c.Y, c.Z)
	}
}
