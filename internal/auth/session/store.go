// Package session holds explicit login sessions. There is no process-wide
// login flag; every authenticated request resolves a session object.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one authenticated login.
type Session struct {
	Token     string    `json:"-"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store keeps sessions in memory. Sessions do not survive a restart, which
// matches the single-session scope of the tool.
type Store struct {
	ttl time.Duration

	mu       sync.RWMutex
	sessions map[string]Session
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Issue creates a session for the username and returns it with a fresh token.
func (s *Store) Issue(username string) Session {
	now := time.Now().UTC()
	sess := Session{
		Token:     uuid.NewString(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.Token] = sess
	s.mu.Unlock()

	return sess
}

// Resolve returns the live session for a token. Expired sessions are dropped.
func (s *Store) Resolve(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}

	if time.Now().UTC().After(sess.ExpiresAt) {
		s.Revoke(token)
		return Session{}, false
	}
	return sess, true
}

// Revoke removes a session. Revoking an unknown token is a no-op.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
