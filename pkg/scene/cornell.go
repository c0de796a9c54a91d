package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// cornellSize is the edge length of the Cornell box
const cornellSize = 555.0

// cornellWalls returns the five walls of the box. Red is at x=0 and green
// at x=555, seen from the open side at negative z.
func cornellWalls() []geometry.Hittable {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []geometry.Hittable{
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green),
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white),
		geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white),
	}
}

// cornellBlock is an axis-aligned box with its corner at the origin, turned
// about y and then moved into place
func cornellBlock(size core.Vec3, degrees float64, offset core.Vec3) geometry.Hittable {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	block := geometry.NewBox(core.NewVec3(0, 0, 0), size, white)
	return geometry.NewTranslate(geometry.NewRotateY(block, degrees), offset)
}

func cornellDescription(objects []geometry.Hittable) *Description {
	camera := lookingAt(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 40)
	camera.AspectRatio = 1

	return &Description{
		Objects:    objects,
		Camera:     camera,
		Background: integrator.NewSolidBackground(darkness),
		Defaults:   defaults(600, 600),
	}
}

// CornellBox is the classic box lit by a small ceiling light
func CornellBox(opts Options) (*Description, error) {
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	objects := append(cornellWalls(),
		geometry.NewXZRect(213, 343, 227, 332, cornellSize-1, light),
		cornellBlock(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295)),
		cornellBlock(core.NewVec3(165, 165, 165), -18, core.NewVec3(130, 0, 65)),
	)
	return cornellDescription(objects), nil
}

// CornellSmoke replaces the blocks with black smoke and white fog under a
// larger, dimmer light
func CornellSmoke(opts Options) (*Description, error) {
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	tall := cornellBlock(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295))
	short := cornellBlock(core.NewVec3(165, 165, 165), -18, core.NewVec3(130, 0, 65))

	objects := append(cornellWalls(),
		geometry.NewXZRect(113, 443, 127, 432, cornellSize-1, light),
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)
	return cornellDescription(objects), nil
}
