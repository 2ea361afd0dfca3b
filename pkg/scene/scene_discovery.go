package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// ErrUnknownScene is returned by Build for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type sceneBuilder func(cameraOverrides ...geometry.CameraConfig) (*Scene, error)

type registeredScene struct {
	id          string
	description string
	build       sceneBuilder
}

// Listed in display order
var builtInScenes = []registeredScene{
	{"default", "Three spheres above a reflective floor", NewDefaultScene},
	{"glass", "Glass ball with an air bubble over a checkered floor", NewGlassScene},
	{"mirrors", "Sphere between two parallel mirrors", NewMirrorScene},
	{"patterns", "Stripe, gradient, ring and checker patterns", NewPatternScene},
	{"shapes", "Cube, cylinders and a triangle on a checkered floor", NewShapesScene},
}

// Available lists the built-in scenes
func Available() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, s := range builtInScenes {
		scenes = append(scenes, SceneInfo{
			ID:          s.id,
			DisplayName: titleCase(s.id),
			Description: s.description,
		})
	}
	return scenes
}

// Build constructs the named scene, applying any camera overrides
func Build(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	for _, s := range builtInScenes {
		if s.id == id {
			built, err := s.build(cameraOverrides...)
			if err != nil {
				return nil, fmt.Errorf("building scene %q: %w", id, err)
			}
			return built, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// titleCase converts an identifier to title case
// e.g., "parallel-mirrors" -> "Parallel Mirrors"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
