package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultSessionTTL is how long an idle session is kept.
	DefaultSessionTTL = 24 * time.Hour
	// DefaultMaxSessions caps the store; the least recently seen session is
	// evicted to make room.
	DefaultMaxSessions = 10000

	sweepInterval = time.Minute
)

type session struct {
	state    *ViewState
	lastSeen time.Time
}

// SessionStore keeps one ViewState per browser session in memory.
// Update runs callbacks one at a time, so each session sees its transitions
// in order the way a single UI event loop would. Sessions idle for longer
// than the TTL are dropped.
type SessionStore struct {
	mu        sync.Mutex
	sessions  map[string]*session
	ttl       time.Duration
	limit     int
	now       func() time.Time
	lastSweep time.Time
}

// NewSessionStore returns an empty store with the default TTL and cap.
func NewSessionStore() *SessionStore {
	return NewSessionStoreWith(DefaultSessionTTL, DefaultMaxSessions, time.Now)
}

// NewSessionStoreWith returns an empty store. A zero limit disables the cap.
func NewSessionStoreWith(ttl time.Duration, limit int, now func() time.Time) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		limit:    limit,
		now:      now,
	}
}

// Ensure returns id if it names a live session, otherwise it creates a new
// session and returns its id. Creating a session first sweeps idle ones, at
// most once per minute.
func (s *SessionStore) Ensure(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if id != "" {
		if sess, ok := s.sessions[id]; ok && !s.expired(sess, now) {
			sess.lastSeen = now
			return id
		}
	}

	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweep(now)
	}
	if s.limit > 0 && len(s.sessions) >= s.limit {
		s.evictOldest()
	}
	id = uuid.NewString()
	s.sessions[id] = &session{state: NewViewState(), lastSeen: now}
	return id
}

// Update runs fn with the session's state while holding the store lock.
// Unknown ids get a fresh state.
func (s *SessionStore) Update(id string, fn func(*ViewState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess, now) {
		sess = &session{state: NewViewState()}
		s.sessions[id] = sess
	}
	sess.lastSeen = now
	fn(sess.state)
}

// Sweep drops every session idle for longer than the TTL and returns how
// many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweep(s.now())
}

// Len returns the number of sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}

func (s *SessionStore) sweep(now time.Time) int {
	s.lastSweep = now
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *SessionStore) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastSeen.Before(oldest) {
			oldestID, oldest = id, sess.lastSeen
		}
	}
	delete(s.sessions, oldestID)
}
