package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RandomSpheres scatters small spheres over a checkered ground around three
// large ones. Diffuse spheres bounce upward during the shutter interval.
func RandomSpheres(opts Options) (*Description, error) {
	sampler := opts.sampler()
	ground := material.NewTexturedLambertian(material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))

	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			choice := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			// Keep clear of the metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case choice < 0.8:
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				center1 := center.Add(core.NewVec3(0, core.RandomFloat(sampler, 0, 0.5), 0))
				objects = append(objects, geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case choice < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomFloat(sampler, 0, 0.5)
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	camera := lookingAt(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20)
	camera.Aperture = 0.1

	return &Description{
		Objects:    objects,
		Camera:     camera,
		Background: integrator.NewSolidBackground(daylight),
		Defaults:   defaults(400, 225),
	}, nil
}

// TwoSpheres stacks two checkered spheres that touch at the origin
func TwoSpheres(opts Options) (*Description, error) {
	checker := material.NewTexturedLambertian(material.NewCheckerColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))

	return &Description{
		Objects: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
			geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
		},
		Camera:     lookingAt(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20),
		Background: integrator.NewSolidBackground(daylight),
		Defaults:   defaults(400, 225),
	}, nil
}

// TwoPerlinSpheres shows the marble noise texture on a ground and a ball
func TwoPerlinSpheres(opts Options) (*Description, error) {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, opts.sampler()))

	return &Description{
		Objects: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
			geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		},
		Camera:     lookingAt(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20),
		Background: integrator.NewSolidBackground(daylight),
		Defaults:   defaults(400, 225),
	}, nil
}

// Earth wraps earthmap.jpg around a sphere
func Earth(opts Options) (*Description, error) {
	earthmap, err := opts.loadTexture("earthmap.jpg")
	if err != nil {
		return nil, err
	}

	return &Description{
		Objects: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earthmap)),
		},
		Camera:     lookingAt(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 20),
		Background: integrator.NewSolidBackground(daylight),
		Defaults:   defaults(400, 225),
	}, nil
}

// SimpleLight lights the marble spheres with a rectangle in a dark world
func SimpleLight(opts Options) (*Description, error) {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, opts.sampler()))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	return &Description{
		Objects: []geometry.Hittable{
			geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
			geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
			geometry.NewXYRect(3, 5, 1, 3, -2, light),
		},
		Camera:     lookingAt(core.NewVec3(26, 3, 6), core.NewVec3(0, 2, 0), 20),
		Background: integrator.NewSolidBackground(darkness),
		Defaults:   defaults(400, 225),
	}, nil
}
