package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/portfolio-terminal/internal/boot"
)

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// handleBootStream plays the boot sequence as a stream of "frame" events
// followed by one "complete" event.
func (s *Server) handleBootStream(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	var writeErr error
	err = boot.Run(r.Context(), s.config.BootDuration, s.config.BootInterval, func(f boot.Frame) {
		if writeErr == nil {
			writeErr = sse.WriteEvent("frame", f)
		}
	})
	if err != nil || writeErr != nil {
		// Client went away.
		return
	}

	steps := boot.Steps(s.config.BootDuration, s.config.BootInterval)
	if err := sse.WriteEvent("complete", map[string]int{"steps": steps}); err != nil {
		s.logger.Debug("failed to send boot completion", "error", err)
	}
}
