package storage

import (
	"sync"
	"time"

	"github.com/mmynk/tipcalc/internal/tipform"
)

// Session is one live tip calculator screen.
type Session struct {
	// ID is the unique identifier for the session (UUID format).
	ID string

	// CreatedAt is when the session was registered.
	CreatedAt time.Time

	mu         sync.Mutex
	form       *tipform.Form
	lastActive time.Time
	done       chan struct{}
	closeOnce  sync.Once
}

// NewSession wraps form in a session. The store assigns its ID.
func NewSession(form *tipform.Form) *Session {
	return &Session{
		form:       form,
		lastActive: time.Now(),
		done:       make(chan struct{}),
	}
}

// Do runs fn with exclusive access to the session's form and marks the
// session active.
func (s *Session) Do(fn func(form *tipform.Form)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	fn(s.form)
}

// LastActive returns the time of the most recent Do call.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Done is closed when the session is deleted from its store.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close marks the session as finished. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}
