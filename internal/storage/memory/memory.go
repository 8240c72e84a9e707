// Package memory provides an in-process implementation of storage.SessionStore.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tipcalc/internal/storage"
)

// Ensure Store implements storage.SessionStore
var _ storage.SessionStore = (*Store)(nil)

// Store keeps sessions in a map guarded by a read/write mutex.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*storage.Session
}

// New creates an empty Store.
func New() *Store {
	return &Store{sessions: make(map[string]*storage.Session)}
}

// Create registers session under a freshly generated ID.
func (s *Store) Create(ctx context.Context, session *storage.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.sessions[session.ID]; exists {
		return fmt.Errorf("session already exists: %s", session.ID)
	}
	s.sessions[session.ID] = session
	return nil
}

// Get returns the session with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*storage.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	return session, nil
}

// Delete removes the session and closes it.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	session.Close()
	return nil
}

// Count returns the number of live sessions.
func (s *Store) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ExpireIdle deletes sessions last active before the given time.
func (s *Store) ExpireIdle(ctx context.Context, before time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	var expired []*storage.Session
	for id, session := range s.sessions {
		if session.LastActive().Before(before) {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}
	return len(expired), nil
}

// Close deletes and closes every session.
func (s *Store) Close() error {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*storage.Session)
	s.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
	return nil
}
