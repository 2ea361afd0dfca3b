package scene

import (
	gomath "math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// NewMirrorScene creates a sphere between two parallel mirrors. The
// reflections repeat until the recursion limit runs out.
func NewMirrorScene(cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	defaultCameraConfig := geometry.CameraConfig{
		Width:       160,
		Height:      100,
		FieldOfView: gomath.Pi / 2.5,
		From:        math.Point(-1, 1.5, -2.5),
		To:          math.Point(1, 1, 1),
		Up:          math.Vector(0, 1, 0),
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = geometry.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := New()
	s.CameraConfig = cameraConfig

	floor := geometry.NewPlane()
	floor.Material().Color = core.NewColor(0.4, 0.4, 0.45)
	floor.Material().Specular = 0

	leftMirror := newMirror()
	rightMirror := newMirror()

	ball := geometry.NewSphere()
	ball.Material().Color = core.NewColor(1, 0.2, 0.2)
	ball.Material().Diffuse = 0.7
	ball.Material().Specular = 0.5

	// Planes lie in xz; a quarter turn about z stands them up facing along x
	err := place(
		placement{"left mirror", leftMirror, math.Chain(math.RotationZ(gomath.Pi/2), math.Translation(-3, 0, 0))},
		placement{"right mirror", rightMirror, math.Chain(math.RotationZ(gomath.Pi/2), math.Translation(3, 0, 0))},
		placement{"ball", ball, math.Chain(math.Scaling(0.75, 0.75, 0.75), math.Translation(0, 0.75, 1))},
	)
	if err != nil {
		return nil, err
	}

	s.AddShape(floor, leftMirror, rightMirror, ball)
	s.AddLight(lights.NewPointLight(math.Point(0, 6, -4), core.White))

	return s, nil
}

func newMirror() *geometry.Plane {
	mirror := geometry.NewPlane()
	mirror.Material().Color = core.NewColor(0.05, 0.05, 0.05)
	mirror.Material().Ambient = 0
	mirror.Material().Diffuse = 0.1
	mirror.Material().Specular = 0.9
	mirror.Material().Reflective = 0.9
	return mirror
}
