package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// PointLight is a light with no size, radiating equally in every direction
type PointLight struct {
	position  math.Tuple
	intensity core.Color
}

// NewPointLight creates a point light at position with the given intensity
func NewPointLight(position math.Tuple, intensity core.Color) *PointLight {
	return &PointLight{position: position, intensity: intensity}
}

// Type implements Light
func (pl *PointLight) Type() LightType { return LightTypePoint }

// Position implements Light
func (pl *PointLight) Position() math.Tuple { return pl.position }

// Intensity implements Light
func (pl *PointLight) Intensity() core.Color { return pl.intensity }
