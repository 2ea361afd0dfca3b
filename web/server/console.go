package server

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

const defaultConsoleSize = 200

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Print(message)

	// Send to web console if channel is available (non-blocking)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			RenderID:  wl.renderID,
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}

// Console keeps the most recent messages sent by web loggers
type Console struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	limit    int
	incoming chan ConsoleMessage
}

// NewConsole creates a console holding up to limit messages and starts
// collecting from its channel
func NewConsole(limit int) *Console {
	c := &Console{
		limit:    limit,
		incoming: make(chan ConsoleMessage, limit),
	}
	go c.collect()
	return c
}

// Channel returns the channel web loggers write to
func (c *Console) Channel() chan<- ConsoleMessage {
	return c.incoming
}

func (c *Console) collect() {
	for msg := range c.incoming {
		c.record(msg)
	}
}

func (c *Console) record(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	if len(c.messages) > c.limit {
		c.messages = c.messages[len(c.messages)-c.limit:]
	}
}

// Messages returns the retained messages, oldest first. An empty renderID
// returns every message.
func (c *Console) Messages(renderID string) []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]ConsoleMessage, 0, len(c.messages))
	for _, msg := range c.messages {
		if renderID == "" || msg.RenderID == renderID {
			result = append(result, msg)
		}
	}
	return result
}

// handleConsole returns recent render log lines, optionally for one render
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	messages := s.console.Messages(r.URL.Query().Get("render"))
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}
