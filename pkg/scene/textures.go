package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ProceduralTextures lays out the generated image textures so their UV
// mapping can be checked without any texture files
func ProceduralTextures(opts Options) (*Description, error) {
	checkerboard := material.NewCheckerboardTexture(256, 256, 32,
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.2, 0.2, 0.8),
	)
	gradient := material.NewGradientTexture(256, 256,
		core.NewVec3(1.0, 0.3, 0.1),
		core.NewVec3(0.1, 0.3, 1.0),
	)

	objects := []geometry.Hittable{
		geometry.NewXZRect(-6, 6, -6, 6, 0, material.NewTexturedLambertian(checkerboard)),
		geometry.NewSphere(core.NewVec3(-2.2, 1, 0), 1, material.NewTexturedLambertian(material.NewUVDebugTexture(256, 256))),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewTexturedLambertian(gradient)),
		geometry.NewTranslate(
			geometry.NewRotateY(geometry.NewBox(core.NewVec3(-0.8, 0, -0.8), core.NewVec3(0.8, 1.6, 0.8),
				material.NewTexturedLambertian(checkerboard)), 30),
			core.NewVec3(2.2, 0, 0),
		),
	}

	return &Description{
		Objects:    objects,
		Camera:     lookingAt(core.NewVec3(0, 3, 10), core.NewVec3(0, 1, 0), 35),
		Background: integrator.NewSkyGradient(),
		Defaults:   defaults(400, 225),
	}, nil
}
