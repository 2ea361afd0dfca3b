package scene

import (
	gomath "math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/math"
	"github.com/df07/go-whitted-raytracer/pkg/pattern"
)

// NewShapesScene shows a cube, a capped glass cylinder, an open tube and a
// triangle standing on a checkered floor
func NewShapesScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Width:       160,
		Height:      90,
		FieldOfView: gomath.Pi / 3,
		From:        math.Point(0, 3, -7),
		To:          math.Point(0, 1, 0),
		Up:          math.Vector(0, 1, 0),
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New()
	s.CameraConfig = cameraConfig

	floor := geometry.NewPlane()
	floor.Material().Pattern = pattern.NewChecker(core.NewColor(0.85, 0.85, 0.85), core.NewColor(0.25, 0.25, 0.3))
	floor.Material().Specular = 0
	floor.Material().Reflective = 0.15

	cube := geometry.NewCube()
	cube.Material().Color = core.NewColor(0.8, 0.25, 0.2)
	cube.Material().Diffuse = 0.7
	cube.Material().Specular = 0.4

	glass := geometry.NewTruncatedCylinder(0, 1, true)
	glass.SetMaterial(material.NewGlass())
	glass.Material().Color = core.NewColor(0.1, 0.1, 0.1)
	glass.Material().Diffuse = 0.1
	glass.Material().Reflective = 0.9
	glass.Material().Shininess = 300

	tube := geometry.NewTruncatedCylinder(0, 1, false)
	tube.Material().Color = core.NewColor(0.85, 0.65, 0.2)
	tube.Material().Reflective = 0.3
	tube.Material().Specular = 0.8
	tube.Material().Shininess = 100

	triangle := geometry.NewTriangle(math.Point(-1, 0, 0), math.Point(1, 0, 0), math.Point(0, 1.6, 0))
	triangle.Material().Color = core.NewColor(0.2, 0.6, 0.9)
	triangle.Material().Specular = 0.1

	err := place(
		placement{"cube", cube, math.Chain(math.Scaling(0.75, 0.75, 0.75), math.RotationY(gomath.Pi/6), math.Translation(-2.2, 0.75, 0.5))},
		placement{"glass cylinder", glass, math.Chain(math.Scaling(0.7, 1.6, 0.7), math.Translation(0, 0, -0.5))},
		placement{"tube", tube, math.Chain(math.Scaling(0.6, 1.2, 0.6), math.RotationX(-gomath.Pi/6), math.Translation(2.2, 0.3, 0.5))},
		placement{"triangle", triangle, math.Chain(math.Scaling(1.5, 1.5, 1.5), math.Translation(0, 0, 3))},
	)
	if err != nil {
		return nil, err
	}

	s.AddShape(floor, cube, glass, tube, triangle)
	s.AddLight(lights.NewPointLight(math.Point(-5, 9, -8), core.White))

	return s, nil
}
