package terminal

import "errors"

// ErrSessionClosed is returned when a line is submitted after exit.
var ErrSessionClosed = errors.New("terminal session is closed")

// Session is the host-owned state of one open terminal: its transcript and
// whether it is still open. A Session is not safe for concurrent use; hosts
// serialize submissions per session.
type Session struct {
	interp     *Interpreter
	transcript Transcript
	open       bool
}

// NewSession opens a session seeded with the welcome lines.
func NewSession(interp *Interpreter) *Session {
	return &Session{
		interp:     interp,
		transcript: InitialTranscript(),
		open:       true,
	}
}

// Submit applies one submitted line. After an exit the session is closed and
// further submissions fail with ErrSessionClosed.
func (s *Session) Submit(raw string) (Effect, error) {
	if !s.open {
		return EffectNone, ErrSessionClosed
	}

	next, effect := s.interp.Apply(s.transcript, raw)
	s.transcript = next
	if effect == EffectClose {
		s.open = false
	}
	return effect, nil
}

// Transcript returns a copy of the current transcript.
func (s *Session) Transcript() Transcript {
	return s.transcript.Clone()
}

// Len returns the number of transcript lines.
func (s *Session) Len() int {
	return len(s.transcript)
}

// Open reports whether the session accepts input.
func (s *Session) Open() bool {
	return s.open
}
