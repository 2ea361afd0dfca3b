package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/df07/go-whitted-raytracer/pkg/export"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// handleRender renders a scene and returns the encoded image. The render
// stops if the client goes away.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	format, err := export.NormalizeFormat(req.Format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		sceneError(w, err)
		return
	}

	renderID := uuid.NewString()
	logger := NewWebLogger(renderID, s.console.Channel())

	raytracer, err := renderer.NewRaytracer(sceneObj, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	canvas, stats, err := raytracer.Render(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client disconnected; nobody is listening for a response
			return
		}
		writeError(w, http.StatusInternalServerError, "Render error: "+err.Error())
		return
	}

	var buf bytes.Buffer
	if err := export.Encode(&buf, canvas, format); err != nil {
		writeError(w, http.StatusInternalServerError, "Encoding error: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("X-Render-ID", renderID)
	w.Header().Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	w.Header().Set("X-Render-Coverage", strconv.FormatFloat(stats.Coverage(), 'f', 4, 64))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
