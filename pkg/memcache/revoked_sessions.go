// pkg/memcache/revoked_sessions.go
package mem

import (
	"sync"
	"time"
)

type RevokedSessionStore interface {
	// Revoke marks a session id as logged out until the token would have
	// expired anyway.
	Revoke(sessionID string, until time.Time)

	IsRevoked(sessionID string) bool

	// Sweep drops entries whose tokens have expired and returns how many
	// were removed.
	Sweep(now time.Time) int
}

type RevokedSessions struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedSessions() *RevokedSessions {
	return &RevokedSessions{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedSessions) Revoke(sessionID string, until time.Time) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = until
}

func (s *RevokedSessions) IsRevoked(sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	until, ok := s.data[sessionID]
	if !ok {
		return false
	}
	// past expiry the token is rejected on its own
	return s.now().Before(until)
}

func (s *RevokedSessions) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, until := range s.data {
		if !now.Before(until) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}
