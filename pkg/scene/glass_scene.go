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

// NewGlassScene creates a glass ball holding an air bubble over a checkered
// floor, with a colored sphere behind it to show the refraction
func NewGlassScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Width:       160,
		Height:      100,
		FieldOfView: gomath.Pi / 3,
		From:        math.Point(0, 2, -6),
		To:          math.Point(0, 1, 0),
		Up:          math.Vector(0, 1, 0),
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New()
	s.CameraConfig = cameraConfig

	checker := pattern.NewChecker(core.NewColor(0.15, 0.15, 0.15), core.NewColor(0.85, 0.85, 0.85))
	floor := geometry.NewPlane()
	floor.Material().Pattern = checker
	floor.Material().Specular = 0
	floor.Material().Reflective = 0.1

	ball := geometry.NewGlassSphere()
	ball.Material().Color = core.NewColor(0.05, 0.05, 0.05)
	ball.Material().Diffuse = 0.1
	ball.Material().Shininess = 300
	ball.Material().Reflective = 0.9

	bubble := geometry.NewGlassSphere()
	bubble.Material().Color = core.NewColor(0.05, 0.05, 0.05)
	bubble.Material().Diffuse = 0.1
	bubble.Material().Shininess = 300
	bubble.Material().Reflective = 0.9
	bubble.Material().RefractiveIndex = material.Air

	backdrop := geometry.NewSphere()
	backdrop.Material().Color = core.NewColor(0.9, 0.3, 0.2)
	backdrop.Material().Diffuse = 0.8
	backdrop.Material().Specular = 0.4

	err := place(
		placement{"ball", ball, math.Translation(0, 1, 0)},
		placement{"bubble", bubble, math.Chain(math.Scaling(0.5, 0.5, 0.5), math.Translation(0, 1, 0))},
		placement{"backdrop sphere", backdrop, math.Chain(math.Scaling(0.6, 0.6, 0.6), math.Translation(1.2, 0.6, 3))},
	)
	if err != nil {
		return nil, err
	}
	if err := checker.SetTransform(math.Scaling(0.5, 0.5, 0.5)); err != nil {
		return nil, err
	}

	s.AddShape(floor, ball, bubble, backdrop)
	s.AddLight(lights.NewPointLight(math.Point(-5, 8, -6), core.White))

	return s, nil
}
