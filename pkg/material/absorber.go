package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Absorber neither scatters nor emits. Surfaces using it render black and
// block everything behind them.
type Absorber struct{}

// NewAbsorber creates a pure absorber
func NewAbsorber() *Absorber {
	return &Absorber{}
}

// Scatter always absorbs
func (a *Absorber) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}
