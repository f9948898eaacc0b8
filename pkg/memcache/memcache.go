package memcache

import (
	"sync"
	"time"
)

// Store is a small in-process TTL cache for values that are expensive to
// rebuild but safe to serve slightly stale.
type Store interface {
	Set(key string, value any, ttl time.Duration)
	Get(key string) (any, bool)
}

type entry struct {
	value     any
	expiresAt time.Time
}

type TTLStore struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewTTLStore() *TTLStore {
	return &TTLStore{data: make(map[string]entry)}
}

func (s *TTLStore) Set(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
}

func (s *TTLStore) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, key) // cleanup expired
		return nil, false
	}
	return e.value, true
}
