package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestHittableList_ClosestHit(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 1, 0))

	// Far sphere first so the scan has to replace it
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, -10), 1, far),
		NewSphere(core.NewVec3(0, 0, -4), 1, near),
	)

	hit, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil)
	require.True(t, isHit)
	assert.InDelta(t, 3.0, hit.T, 1e-9)
	assert.Same(t, near, hit.Material)
}

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()

	_, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1), nil)
	assert.False(t, isHit)

	_, ok := list.BoundingBox(0, 1)
	assert.False(t, ok)
}

func TestHittableList_BoundingBox(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial))
	list.Add(NewSphere(core.NewVec3(5, 5, 5), 1, testMaterial))

	box, ok := list.BoundingBox(0, 1)
	require.True(t, ok)
	assert.Equal(t, core.NewVec3(-1, -1, -1), box.Min)
	assert.Equal(t, core.NewVec3(6, 6, 6), box.Max)

	list.Add(unbounded{})
	_, ok = list.BoundingBox(0, 1)
	assert.False(t, ok, "one unbounded member makes the list unbounded")
}
