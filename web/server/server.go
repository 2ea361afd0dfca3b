package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request limits
const (
	minImageSize = 1
	maxImageSize = 2000
	maxDepth     = 20
)

// Server handles web requests for the raytracer
type Server struct {
	port    int
	config  config.Config
	console *Console
}

// NewServer creates a new web server
func NewServer(cfg config.Config) *Server {
	return &Server{
		port:    cfg.Port,
		config:  cfg,
		console: NewConsole(defaultConsoleSize),
	}
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene  string `json:"scene"`  // Scene name (e.g., "default")
	Width  int    `json:"width"`  // Image width, 0 keeps the scene's
	Height int    `json:"height"` // Image height, 0 keeps the scene's
	Depth  int    `json:"depth"`  // Recursion limit
	Format string `json:"format"` // Output format
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/console", s.handleConsole)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": scene.Available()})
}

// parseRenderRequest parses the parameters shared by render and inspect
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}
	query := r.URL.Query()

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	} else {
		req.Scene = "default" // Default scene
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", s.config.RecursionLimit, 0, maxDepth); err != nil {
		return nil, err
	}

	req.Format = query.Get("format")
	if req.Format == "" {
		req.Format = "png"
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene with its size and depth overrides
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.Build(req.Scene, geometry.CameraConfig{Width: req.Width, Height: req.Height})
	if err != nil {
		return nil, err
	}
	sceneObj.RecursionLimit = req.Depth
	return sceneObj, nil
}

// sceneError maps a scene construction error to a status code
func sceneError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, scene.ErrUnknownScene) {
		status = http.StatusBadRequest
	}
	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
