package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// FinalScene combines every primitive, wrapper, medium and texture: a field
// of random-height boxes, a moving sphere, glass with fog inside, global
// mist, an image textured globe, marble and a rotated BVH of small spheres.
func FinalScene(opts Options) (*Description, error) {
	sampler := opts.sampler()

	moonmap, err := opts.loadTexture("moonmap.jpg")
	if err != nil {
		return nil, err
	}
	earthmap, err := opts.loadTexture("earthmap.jpg")
	if err != nil {
		return nil, err
	}

	groundMaterial := material.NewTexturedLambertian(moonmap)
	const boxesPerSide = 20
	const boxWidth = 100.0
	ground := make([]geometry.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			x0 := -1000 + float64(i)*boxWidth
			z0 := -1000 + float64(j)*boxWidth
			y1 := core.RandomFloat(sampler, 1, 101)
			ground = append(ground, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+boxWidth, y1, z0+boxWidth),
				groundMaterial,
			))
		}
	}
	groundBVH, err := geometry.NewBVHNode(ground, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("while building ground: %w", err)
	}

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := make([]geometry.Hittable, 1000)
	for i := range cluster {
		cluster[i] = geometry.NewSphere(core.RandomVec3(sampler, 0, 165), 10, white)
	}
	clusterBVH, err := geometry.NewBVHNode(cluster, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("while building sphere cluster: %w", err)
	}

	movingCenter := core.NewVec3(400, 400, 200)
	fogBoundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	mistBoundary := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))

	objects := []geometry.Hittable{
		groundBVH,
		geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7))),
		geometry.NewMovingSphere(movingCenter, movingCenter.Add(core.NewVec3(30, 0, 0)), 0, 1, 50,
			material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1)),
		fogBoundary,
		geometry.NewConstantMedium(fogBoundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)),
		geometry.NewConstantMedium(mistBoundary, 0.0001, core.NewVec3(1, 1, 1)),
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earthmap)),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
			material.NewTexturedLambertian(material.NewNoiseTexture(0.1, sampler))),
		geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)),
	}

	camera := lookingAt(core.NewVec3(478, 278, -600), core.NewVec3(278, 278, 0), 40)
	camera.AspectRatio = 1

	return &Description{
		Objects:    objects,
		Camera:     camera,
		Background: integrator.NewSolidBackground(darkness),
		Defaults:   defaults(800, 800),
	}, nil
}

// Moon hangs a glowing moonmap sphere and a tumbling marble cube over a
// glass planet with a white core
func Moon(opts Options) (*Description, error) {
	moonmap, err := opts.loadTexture("moonmap.jpg")
	if err != nil {
		return nil, err
	}

	moon := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedDiffuseLight(moonmap))
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(0.1, opts.sampler()))
	cube := geometry.NewBox(core.NewVec3(-1.5, -1.5, -1.5), core.NewVec3(1.5, 1.5, 1.5), marble)
	planetCenter := core.NewVec3(0, -1003, 0)

	objects := []geometry.Hittable{
		geometry.NewTranslate(geometry.NewRotateY(moon, 60), core.NewVec3(-2, 0, -1)),
		geometry.NewTranslate(geometry.NewRotateZ(geometry.NewRotateY(cube, 60), 60), core.NewVec3(0, 0, 5)),
		geometry.NewXZRect(-4, 4, -4, 4, 9, material.NewDiffuseLight(core.NewVec3(30, 30, 30))),
		geometry.NewSphere(planetCenter, 1000, material.NewDielectric(1.5)),
		geometry.NewSphere(planetCenter, 999.8, material.NewLambertian(core.NewVec3(1, 1, 1))),
	}

	camera := lookingAt(core.NewVec3(60, 2, 0), core.NewVec3(0, 0, 0), 20)
	camera.AspectRatio = 1

	return &Description{
		Objects:    objects,
		Camera:     camera,
		Background: integrator.NewSolidBackground(darkness),
		Defaults:   defaults(800, 800),
	}, nil
}
