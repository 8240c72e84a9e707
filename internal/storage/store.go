// Package storage holds live tip calculator sessions.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned for session IDs the store does not know.
var ErrNotFound = errors.New("session not found")

// SessionStore defines the operations on the set of live sessions.
// Sessions are transient; implementations keep them only as long as the
// process runs.
type SessionStore interface {
	// Create registers a new session.
	// The session.ID and CreatedAt fields will be populated by the store.
	Create(ctx context.Context, session *Session) error

	// Get returns the session with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session and closes it. Returns ErrNotFound if the
	// session does not exist.
	Delete(ctx context.Context, id string) error

	// Count returns the number of live sessions.
	Count(ctx context.Context) int

	// ExpireIdle deletes every session whose last activity is before the
	// given time and returns how many were removed.
	ExpireIdle(ctx context.Context, before time.Time) (int, error)

	// Close releases every session held by the store.
	Close() error
}
