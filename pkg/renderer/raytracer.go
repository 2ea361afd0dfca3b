package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders a scene one primary ray per pixel
type Raytracer struct {
	scene  *scene.Scene
	camera *geometry.Camera
	logger core.Logger
}

// NewRaytracer creates a raytracer for s using the scene's camera
func NewRaytracer(s *scene.Scene, logger core.Logger) (*Raytracer, error) {
	camera, err := s.Camera()
	if err != nil {
		return nil, fmt.Errorf("creating camera: %w", err)
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{scene: s, camera: camera, logger: logger}, nil
}

// Camera returns the camera used for primary rays
func (rt *Raytracer) Camera() *geometry.Camera {
	return rt.camera
}

// RenderPixel traces the primary ray through pixel (x, y).
// The second result reports whether that ray struck a shape.
func (rt *Raytracer) RenderPixel(x, y int) (core.Color, bool) {
	ray := rt.camera.RayForPixel(x, y)
	xs := rt.scene.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black, false
	}
	return rt.scene.ShadeHit(hit.Prepare(ray, xs), rt.scene.RecursionLimit), true
}

// Render traces every pixel in row-major order. Cancelling ctx stops the
// render between rows and returns the context's error.
func (rt *Raytracer) Render(ctx context.Context) (*Canvas, RenderStats, error) {
	width, height := rt.camera.Width(), rt.camera.Height()
	canvas := NewCanvas(width, height)
	stats := RenderStats{}

	rt.logger.Printf("Rendering %dx%d with %d shapes, %d lights, recursion limit %d\n",
		width, height, len(rt.scene.Shapes), len(rt.scene.Lights), rt.scene.RecursionLimit)

	start := time.Now()
	progressStep := max(height/10, 1)

	for y := 0; y < height; y++ {
		select {
		case <-ctx.Done():
			stats.Duration = time.Since(start)
			rt.logger.Printf("Rendering cancelled at row %d of %d\n", y, height)
			return nil, stats, ctx.Err()
		default:
		}

		for x := 0; x < width; x++ {
			color, hit := rt.RenderPixel(x, y)
			canvas.Set(x, y, color)
			stats.TotalPixels++
			if hit {
				stats.Hits++
			}
		}

		if (y+1)%progressStep == 0 || y == height-1 {
			rt.logger.Printf("Rendered %d/%d rows (%.0f%%)\n", y+1, height, 100*float64(y+1)/float64(height))
		}
	}

	stats.Duration = time.Since(start)
	rt.logger.Printf("Render completed in %v (%.0f pixels/s, %.1f%% coverage)\n",
		stats.Duration, stats.PixelsPerSecond(), 100*stats.Coverage())

	return canvas, stats, nil
}
