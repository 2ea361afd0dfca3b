package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/math"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType,omitempty"`
	ShapeID      string                 `json:"shapeId,omitempty"`
	Distance     float64                `json:"distance"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Eye          [3]float64             `json:"eye"`
	Reflect      [3]float64             `json:"reflect"`
	Inside       bool                   `json:"inside"`
	N1           float64                `json:"n1"`
	N2           float64                `json:"n2"`
	Reflectance  float64                `json:"reflectance"`
	Color        [3]float64             `json:"color"`
	Material     map[string]interface{} `json:"material,omitempty"`
}

// InspectResult contains the shading frame of the first object hit by an inspection ray
type InspectResult struct {
	Hit   bool
	Comps geometry.Computations
	Color core.Color
}

// inspectPixel casts the primary ray through a pixel and shades the first hit
func inspectPixel(sceneObj *scene.Scene, camera *geometry.Camera, pixelX, pixelY int) InspectResult {
	ray := camera.RayForPixel(pixelX, pixelY)
	xs := sceneObj.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return InspectResult{Hit: false}
	}

	comps := hit.Prepare(ray, xs)
	return InspectResult{
		Hit:   true,
		Comps: comps,
		Color: sceneObj.ShadeHit(comps, sceneObj.RecursionLimit),
	}
}

// extractMaterialInfo lists the Phong coefficients of a material
func extractMaterialInfo(m *material.Material) map[string]interface{} {
	properties := map[string]interface{}{
		"color":           colorArray(m.Color),
		"ambient":         m.Ambient,
		"diffuse":         m.Diffuse,
		"specular":        m.Specular,
		"shininess":       m.Shininess,
		"reflective":      m.Reflective,
		"transparency":    m.Transparency,
		"refractiveIndex": m.RefractiveIndex,
		"patterned":       m.Pattern != nil,
	}
	return properties
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	inspectReq, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		sceneError(w, err)
		return
	}
	camera, err := sceneObj.Camera()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if pixelX < 0 || pixelX >= camera.Width() || pixelY < 0 || pixelY >= camera.Height() {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, camera, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	comps := result.Comps
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: comps.Object.Kind(),
		ShapeID:      comps.Object.ID().String(),
		Distance:     comps.T,
		Point:        tupleArray(comps.Point),
		Normal:       tupleArray(comps.NormalV),
		Eye:          tupleArray(comps.EyeV),
		Reflect:      tupleArray(comps.ReflectV),
		Inside:       comps.Inside,
		N1:           comps.N1,
		N2:           comps.N2,
		Reflectance:  comps.Schlick(),
		Color:        colorArray(result.Color),
		Material:     extractMaterialInfo(comps.Object.Material()),
	})
}

func tupleArray(t math.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

func colorArray(c core.Color) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}
