package storage

import (
	"sync"
	"time"
)

type sessionEntry[T any] struct {
	value      T
	messageID  int // Telegram message that shows the session, 0 if unknown
	lastActive time.Time
}

// SessionStorage provides in-memory storage of live quiz sessions keyed by user ID.
// At most one session is kept per user.
type SessionStorage[T any] struct {
	mu       sync.RWMutex
	sessions map[int64]*sessionEntry[T]
	now      func() time.Time
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage[T any]() *SessionStorage[T] {
	return &SessionStorage[T]{
		sessions: make(map[int64]*sessionEntry[T]),
		now:      time.Now,
	}
}

// Store saves a session for the user, replacing any previous one.
func (s *SessionStorage[T]) Store(userID int64, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &sessionEntry[T]{value: value, lastActive: s.now()}
}

// Get retrieves the user's session and marks it as active.
func (s *SessionStorage[T]) Get(userID int64) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[userID]
	if !ok {
		var zero T
		return zero, false
	}
	e.lastActive = s.now()
	return e.value, true
}

// SetMessageID remembers the message that renders the user's session.
func (s *SessionStorage[T]) SetMessageID(userID int64, messageID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions[userID]; ok {
		e.messageID = messageID
	}
}

// MessageID returns the message that renders the user's session.
func (s *SessionStorage[T]) MessageID(userID int64) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[userID]
	if !ok || e.messageID == 0 {
		return 0, false
	}
	return e.messageID, true
}

// Delete removes the user's session.
func (s *SessionStorage[T]) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// EvictIdle removes sessions that were not accessed for longer than ttl and
// returns the affected user IDs.
func (s *SessionStorage[T]) EvictIdle(ttl time.Duration) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := s.now().Add(-ttl)
	var evicted []int64
	for userID, e := range s.sessions {
		if e.lastActive.Before(deadline) {
			delete(s.sessions, userID)
			evicted = append(evicted, userID)
		}
	}
	return evicted
}

// Len returns the number of live sessions.
func (s *SessionStorage[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
