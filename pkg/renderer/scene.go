package renderer

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// Scene is everything a render reads: the root of the geometry, the color
// of escaping rays and the camera. It is frozen before rendering starts.
type Scene struct {
	World      geometry.Hittable
	Background integrator.Background
	Camera     *Camera
}

// NewBVHScene builds a BVH over objects and wraps it in a scene. The BVH
// covers the camera's shutter interval and draws split axes from seed.
func NewBVHScene(objects []geometry.Hittable, camera *Camera, background integrator.Background, seed int64) (*Scene, error) {
	bvh, err := geometry.NewBVHNode(objects, camera.time0, camera.time1, core.NewSeededSampler(seed))
	if err != nil {
		return nil, fmt.Errorf("while building scene: %w", err)
	}

	stats := bvh.Stats()
	glog.Infof("Built BVH over %d primitives: %d nodes, depth %d", stats.Primitives, stats.Nodes, stats.MaxDepth)

	return &Scene{
		World:      bvh,
		Background: background,
		Camera:     camera,
	}, nil
}
