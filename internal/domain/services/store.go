package services

import (
	"sync"
	"time"

	"scambait-lab/internal/domain/models"
)

// SessionStore owns all conversation state for the process lifetime.
// The store-level RWMutex only guards bucket resolution; each session
// carries its own lock, so concurrent requests for distinct session ids
// never serialize behind one another.
//
// Sessions are created lazily and never evicted. A long-running process
// accumulates sessions without bound; state is lost on restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// StoreStats summarizes the store for the stats endpoint.
type StoreStats struct {
	Sessions     int `json:"sessions"`
	ScamDetected int `json:"scam_detected"`
	Reported     int `json:"reported"`
	Messages     int `json:"messages"`
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.Session),
	}
}

// GetOrCreate resolves the session for the given id, creating it on first
// use. The returned handle must be locked by the caller before any read or
// mutation of its fields.
func (s *SessionStore) GetOrCreate(id string) *models.Session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-check: another request may have created it between the locks
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	now := time.Now()
	sess = &models.Session{
		ID:           id,
		Messages:     []string{},
		Intelligence: models.NewIntelligence(),
		CreatedAt:    now,
		LastSeenAt:   now,
	}
	s.sessions[id] = sess
	return sess
}

// Get returns the session for the given id, or nil when it does not exist.
func (s *SessionStore) Get(id string) *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Len returns the number of sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Stats walks all sessions and aggregates counters. Each session is locked
// briefly, so an in-flight request for one session does not distort another's
// counts.
func (s *SessionStore) Stats() StoreStats {
	s.mu.RLock()
	handles := make([]*models.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		handles = append(handles, sess)
	}
	s.mu.RUnlock()

	stats := StoreStats{Sessions: len(handles)}
	for _, sess := range handles {
		sess.Lock()
		stats.Messages += len(sess.Messages)
		if sess.ScamDetected {
			stats.ScamDetected++
		}
		if sess.FinalReported {
			stats.Reported++
		}
		sess.Unlock()
	}
	return stats
}
