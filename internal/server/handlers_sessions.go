package server

import (
	"net/http"

	"github.com/jonathan/portfolio-terminal/internal/terminal"
)

// SessionResponse represents a terminal session and its transcript
type SessionResponse struct {
	SessionID  string              `json:"session_id"`
	Transcript terminal.Transcript `json:"transcript"`
}

// InputRequest represents the request body for submitting a line.
// An empty line is valid and leaves the transcript unchanged.
type InputRequest struct {
	Line *string `json:"line" validate:"required,max=1024"`
}

// InputResponse represents the outcome of submitting a line
type InputResponse struct {
	SessionID  string              `json:"session_id"`
	Transcript terminal.Transcript `json:"transcript"`
	Effect     terminal.Effect     `json:"effect"`
	Closed     bool                `json:"closed"`
}

// handleCreateSession opens a new terminal session
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	state := s.sessions.Create()
	s.logger.Info("terminal session opened", "session_id", state.ID)
	s.jsonResponse(w, http.StatusCreated, SessionResponse{
		SessionID:  state.ID,
		Transcript: state.Transcript,
	})
}

// handleGetSession returns a session transcript
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	state, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, SessionResponse{
		SessionID:  state.ID,
		Transcript: state.Transcript,
	})
}

// handleSessionInput submits one line to a session
func (s *Server) handleSessionInput(w http.ResponseWriter, r *http.Request) {
	var req InputRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		s.errorFromErr(w, err)
		return
	}

	state, err := s.sessions.Submit(r.PathValue("id"), *req.Line)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	if state.Closed {
		s.logger.Info("terminal session closed", "session_id", state.ID)
	}

	s.jsonResponse(w, http.StatusOK, InputResponse{
		SessionID:  state.ID,
		Transcript: state.Transcript,
		Effect:     state.Effect,
		Closed:     state.Closed,
	})
}

// handleDeleteSession discards a session
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.PathValue("id")); err != nil {
		s.errorFromErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
