package geometry

import (
	"fmt"
	gomath "math"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// CameraConfig describes a pinhole camera. When From and To coincide the
// camera stays at the origin looking down -z.
type CameraConfig struct {
	Width       int        // Horizontal size in pixels
	Height      int        // Vertical size in pixels
	FieldOfView float64    // Horizontal or vertical angle (radians), whichever is larger
	From        math.Tuple // Eye position
	To          math.Tuple // Point looked at
	Up          math.Tuple // Approximate up direction
}

// Camera maps pixels to rays. The canvas sits one unit in front of the eye.
type Camera struct {
	width      int
	height     int
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
	transform  math.Matrix
	inverse    math.Matrix
}

// NewCamera creates a camera from its configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("camera size must be positive, got %dx%d", config.Width, config.Height)
	}
	if config.FieldOfView <= 0 || config.FieldOfView >= gomath.Pi {
		return nil, fmt.Errorf("camera field of view must be in (0, pi), got %f", config.FieldOfView)
	}

	halfView := gomath.Tan(config.FieldOfView / 2)
	aspect := float64(config.Width) / float64(config.Height)

	c := &Camera{
		width:     config.Width,
		height:    config.Height,
		transform: math.Identity(),
		inverse:   math.Identity(),
	}
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(config.Width)

	if !config.From.ApproxEqual(config.To) {
		if err := c.SetTransform(math.ViewTransform(config.From, config.To, config.Up)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Width returns the horizontal size in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the vertical size in pixels
func (c *Camera) Height() int { return c.height }

// PixelSize returns the world-space size of one pixel on the canvas
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the view transform
func (c *Camera) Transform() math.Matrix { return c.transform }

// SetTransform replaces the view transform
func (c *Camera) SetTransform(m math.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// RayForPixel returns the ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) math.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(math.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(math.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return math.NewRay(origin, direction)
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FieldOfView != 0 {
		result.FieldOfView = override.FieldOfView
	}
	if override.From != (math.Tuple{}) {
		result.From = override.From
	}
	if override.To != (math.Tuple{}) {
		result.To = override.To
	}
	if override.Up != (math.Tuple{}) {
		result.Up = override.Up
	}
	return result
}
