package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/portfolio-terminal/internal/terminal"
)

// sessionEntry serializes submissions to one session.
type sessionEntry struct {
	mu       sync.Mutex
	session  *terminal.Session
	lastSeen time.Time
}

// SessionRegistry holds the open terminal sessions of HTTP clients, keyed by
// a random ID. Idle sessions are dropped by Sweep.
type SessionRegistry struct {
	interp *terminal.Interpreter
	ttl    time.Duration
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// NewSessionRegistry creates a registry whose sessions expire after ttl idle.
func NewSessionRegistry(interp *terminal.Interpreter, ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{
		interp:   interp,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
	}
}

// SessionState is a snapshot of one session after an operation.
type SessionState struct {
	ID         string
	Transcript terminal.Transcript
	Effect     terminal.Effect
	Closed     bool
}

// Create opens a new session seeded with the welcome lines.
func (r *SessionRegistry) Create() SessionState {
	id := uuid.NewString()
	entry := &sessionEntry{
		session:  terminal.NewSession(r.interp),
		lastSeen: r.now(),
	}

	r.mu.Lock()
	r.sessions[id] = entry
	r.mu.Unlock()

	return SessionState{ID: id, Transcript: entry.session.Transcript()}
}

// Get returns the current transcript of a session.
func (r *SessionRegistry) Get(id string) (SessionState, error) {
	entry, err := r.lookup(id)
	if err != nil {
		return SessionState{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.lastSeen = r.now()
	return SessionState{ID: id, Transcript: entry.session.Transcript()}, nil
}

// Submit applies one line to a session. A session that exits is removed from
// the registry; its final transcript is still returned.
func (r *SessionRegistry) Submit(id, line string) (SessionState, error) {
	entry, err := r.lookup(id)
	if err != nil {
		return SessionState{}, err
	}

	entry.mu.Lock()
	effect, err := entry.session.Submit(line)
	entry.lastSeen = r.now()
	state := SessionState{
		ID:         id,
		Transcript: entry.session.Transcript(),
		Effect:     effect,
		Closed:     !entry.session.Open(),
	}
	entry.mu.Unlock()

	if err != nil {
		return SessionState{}, err
	}
	if state.Closed {
		r.remove(id)
	}
	return state, nil
}

// Delete discards a session and its transcript.
func (r *SessionRegistry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return &ErrSessionNotFound{ID: id}
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of open sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed.
func (r *SessionRegistry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entry := range r.sessions {
		entry.mu.Lock()
		idle := entry.lastSeen.Before(cutoff)
		entry.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every interval until ctx is cancelled.
func (r *SessionRegistry) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}

func (r *SessionRegistry) lookup(id string) (*sessionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.sessions[id]
	if !ok {
		return nil, &ErrSessionNotFound{ID: id}
	}
	return entry, nil
}

func (r *SessionRegistry) remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
