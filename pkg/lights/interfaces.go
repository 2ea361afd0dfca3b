package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/math"
)

type LightType string

const (
	LightTypePoint LightType = "point"
)

// Light is a source the Phong model can evaluate: a position and an intensity.
// Shadow rays are cast toward Position.
type Light interface {
	Type() LightType
	Position() math.Tuple
	Intensity() core.Color
}
