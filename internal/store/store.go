package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"inventory-game/internal/demand"
	"inventory-game/internal/model"
)

const cleanupInterval = 5 * time.Minute

// RunStore holds live game sessions in memory, keyed by id. Abandoned
// sessions are evicted after sitting idle for the configured TTL; there is
// no persistence beyond the life of the process.
type RunStore struct {
	mu    sync.RWMutex
	store map[string]*Session
	ttl   time.Duration
}

// NewRunStore creates a store and starts its eviction goroutine.
// ttl <= 0 disables eviction.
func NewRunStore(ttl time.Duration) *RunStore {
	s := &RunStore{
		store: make(map[string]*Session),
		ttl:   ttl,
	}
	if ttl > 0 {
		go s.cleanup()
	}
	return s
}

// Create builds a session around a fresh engine and registers it under a
// new uuid.
func (s *RunStore) Create(params model.GameParams, src demand.Source) (*Session, error) {
	sess, err := newSession(uuid.NewString(), params, src)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[sess.ID] = sess
	return sess, nil
}

func (s *RunStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.store[id]
	return sess, ok
}

func (s *RunStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.store[id]
	delete(s.store, id)
	return ok
}

func (s *RunStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.store)
}

// cleanup periodically removes sessions idle past the TTL.
func (s *RunStore) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.evictIdle(time.Now())
	}
}

func (s *RunStore) evictIdle(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.store {
		if sess.idleSince(now) > s.ttl {
			delete(s.store, id)
		}
	}
}
