package scene

import (
	gomath "math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// NewDefaultScene creates three spheres resting above a reflective floor
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Width:       120,
		Height:      60,
		FieldOfView: gomath.Pi / 3,
		From:        math.Point(0, 1.5, -5),
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
	floor.Material().Color = core.NewColor(154.0/255, 184.0/255, 252.0/255)
	floor.Material().Specular = 0
	floor.Material().Reflective = 0.3

	middle := geometry.NewSphere()
	middle.Material().Color = core.NewColor(0.1, 1, 0.5)
	middle.Material().Diffuse = 0.7
	middle.Material().Specular = 0.3
	middle.Material().Reflective = 0.5

	right := geometry.NewSphere()
	right.Material().Color = core.NewColor(0.5, 1, 0.1)
	right.Material().Diffuse = 0.7
	right.Material().Specular = 0.3

	left := geometry.NewSphere()
	left.Material().Color = core.NewColor(1, 0.8, 1)
	left.Material().Diffuse = 0.7
	left.Material().Specular = 0.3

	err := place(
		placement{"floor", floor, math.Translation(0, -0.5, 0)},
		placement{"middle sphere", middle, math.Translation(-0.5, 1, 0.5)},
		placement{"right sphere", right, math.Chain(math.Scaling(0.5, 0.5, 0.5), math.Translation(1.5, 0.5, -0.5))},
		placement{"left sphere", left, math.Chain(math.Scaling(0.33, 0.33, 0.33), math.Translation(-1.5, 1, -0.75))},
	)
	if err != nil {
		return nil, err
	}

	s.AddShape(floor, middle, right, left)
	s.AddLight(lights.NewPointLight(math.Point(-10, 10, -10), core.White))

	return s, nil
}
