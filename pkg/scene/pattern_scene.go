package scene

import (
	gomath "math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/math"
	"github.com/df07/go-whitted-raytracer/pkg/pattern"
)

// NewPatternScene shows each procedural pattern on its own surface
func NewPatternScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Width:       160,
		Height:      100,
		FieldOfView: gomath.Pi / 3,
		From:        math.Point(0, 2.5, -6),
		To:          math.Point(0, 1, 0),
		Up:          math.Vector(0, 1, 0),
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New()
	s.CameraConfig = cameraConfig

	checker := pattern.NewChecker(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.3, 0.3, 0.35))
	floor := geometry.NewPlane()
	floor.Material().Pattern = checker
	floor.Material().Specular = 0

	rings := pattern.NewRing(core.NewColor(0.2, 0.4, 0.8), core.NewColor(0.9, 0.9, 0.7))
	wall := geometry.NewPlane()
	wall.Material().Pattern = rings
	wall.Material().Specular = 0

	stripes := pattern.NewStripe(core.NewColor(1, 0.5, 0.1), core.NewColor(0.1, 0.3, 1))
	striped := geometry.NewSphere()
	striped.Material().Pattern = stripes
	striped.Material().Diffuse = 0.7
	striped.Material().Specular = 0.3

	gradient := pattern.NewGradient(core.NewColor(1, 0, 0.2), core.NewColor(0.1, 1, 0.3))
	graded := geometry.NewSphere()
	graded.Material().Pattern = gradient
	graded.Material().Diffuse = 0.7
	graded.Material().Specular = 0.3

	err := place(
		placement{"wall", wall, math.Chain(math.RotationX(gomath.Pi/2), math.Translation(0, 0, 5))},
		placement{"striped sphere", striped, math.Translation(-1.25, 1, 0)},
		placement{"gradient sphere", graded, math.Translation(1.25, 1, 0)},
	)
	if err != nil {
		return nil, err
	}

	patternTransforms := []struct {
		pattern   pattern.Pattern
		transform math.Matrix
	}{
		{rings, math.Scaling(0.4, 0.4, 0.4)},
		{stripes, math.Chain(math.Scaling(0.2, 0.2, 0.2), math.RotationZ(gomath.Pi/4))},
		// Gradients run from x=0 to x=1, so stretch one across the sphere
		{gradient, math.Chain(math.Translation(1, 0, 0), math.Scaling(0.5, 1, 1), math.Translation(-1, 0, 0))},
	}
	for _, pt := range patternTransforms {
		if err := pt.pattern.SetTransform(pt.transform); err != nil {
			return nil, err
		}
	}

	s.AddShape(floor, wall, striped, graded)
	s.AddLight(lights.NewPointLight(math.Point(-6, 8, -8), core.White))

	return s, nil
}
