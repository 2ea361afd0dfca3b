package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// DefaultRecursionLimit is how many reflection and refraction bounces a
// primary ray may spawn before secondary contributions turn black
const DefaultRecursionLimit = 5

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes         []geometry.Shape // Objects in the scene
	Lights         []lights.Light   // Lights in the scene
	RecursionLimit int              // Bounce budget for ColorAt
	CameraConfig   geometry.CameraConfig
}

// New creates an empty scene with the default recursion limit
func New() *Scene {
	return &Scene{
		Shapes:         make([]geometry.Shape, 0),
		Lights:         make([]lights.Light, 0),
		RecursionLimit: DefaultRecursionLimit,
	}
}

// NewDefaultWorld creates the two concentric spheres lit from the upper left
// that shading tests are usually written against
func NewDefaultWorld() *Scene {
	s := New()
	s.AddLight(lights.NewPointLight(math.Point(-10, 10, -10), core.NewColor(1, 1, 1)))

	outer := geometry.NewSphere()
	outer.Material().Color = core.NewColor(0.8, 1.0, 0.6)
	outer.Material().Diffuse = 0.7
	outer.Material().Specular = 0.2

	inner := geometry.NewSphere()
	mustSetTransform(inner, math.Scaling(0.5, 0.5, 0.5))

	s.AddShape(outer, inner)
	return s
}

// AddShape appends shapes to the scene
func (s *Scene) AddShape(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(ls ...lights.Light) {
	s.Lights = append(s.Lights, ls...)
}

// Camera builds the scene's camera
func (s *Scene) Camera() (*geometry.Camera, error) {
	return geometry.NewCamera(s.CameraConfig)
}

// Intersect tests ray against every shape and returns all hits sorted by t
func (s *Scene) Intersect(ray math.Ray) geometry.Intersections {
	xs := geometry.NewIntersections()
	for _, shape := range s.Shapes {
		xs = xs.Merge(geometry.Intersect(shape, ray))
	}
	return xs
}

// IsShadowed reports whether something sits between point and the light
func (s *Scene) IsShadowed(point math.Tuple, light lights.Light) bool {
	toLight := light.Position().Subtract(point)
	distance := toLight.Magnitude()
	ray := math.NewRay(point, toLight.Normalize())

	hit, ok := s.Intersect(ray).Hit()
	return ok && hit.T < distance
}

// mustSetTransform is for transforms built from constants
func mustSetTransform(s geometry.Shape, m math.Matrix) {
	if err := s.SetTransform(m); err != nil {
		panic(err)
	}
}

// placement pairs a shape with the transform it should receive
type placement struct {
	name      string
	shape     geometry.Shape
	transform math.Matrix
}

// place applies each transform in order and stops at the first rejected one
func place(placements ...placement) error {
	for _, p := range placements {
		if err := p.shape.SetTransform(p.transform); err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
	}
	return nil
}
