package core

import (
	"fmt"
	"image/color"
	"math"

	rtmath "github.com/df07/go-whitted-raytracer/pkg/math"
)

// Color is an RGB triple. Channels are unbounded while shading;
// only output stages clamp them.
type Color struct {
	R, G, B float64
}

// Black and White are the two colors every stage needs
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns a color with channels clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// ApproxEqual compares two colors channel by channel
func (c Color) ApproxEqual(other Color) bool {
	return rtmath.FloatEqual(c.R, other.R) &&
		rtmath.FloatEqual(c.G, other.G) &&
		rtmath.FloatEqual(c.B, other.B)
}

// Bytes returns the clamped channels scaled to 0-255
func (c Color) Bytes() (r, g, b uint8) {
	clamped := c.Clamp(0, 1)
	return uint8(math.Round(clamped.R * 255)),
		uint8(math.Round(clamped.G * 255)),
		uint8(math.Round(clamped.B * 255))
}

// ToRGBA converts the color to an opaque 8-bit RGBA value
func (c Color) ToRGBA() color.RGBA {
	r, g, b := c.Bytes()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (c Color) String() string {
	return fmt.Sprintf("color(%g, %g, %g)", c.R, c.G, c.B)
}
