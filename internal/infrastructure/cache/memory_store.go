package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store with in-process maps. It exists as the
// degraded mode behind FailoverStore: same key/TTL contract as Redis but not
// shared across process instances. Entries expire lazily on read and are
// also swept by a janitor goroutine.
type MemoryStore struct {
	mu      sync.Mutex
	values  map[string]memoryEntry
	sets    map[string]memorySetEntry
	stop    chan struct{}
	stopped sync.Once
	now     func() time.Time
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memorySetEntry struct {
	members   map[string]struct{}
	expiresAt time.Time
}

const janitorInterval = 30 * time.Second

// NewMemoryStore creates an in-process store and starts its janitor.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		values: make(map[string]memoryEntry),
		sets:   make(map[string]memorySetEntry),
		stop:   make(chan struct{}),
		now:    time.Now,
	}
	go s.janitor()
	return s
}

// Close stops the janitor. Safe to call more than once.
func (s *MemoryStore) Close() {
	s.stopped.Do(func() { close(s.stop) })
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryStore) sweep() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.values {
		if now.After(e.expiresAt) {
			delete(s.values, k)
		}
	}
	for k, e := range s.sets {
		if now.After(e.expiresAt) {
			delete(s.sets, k)
		}
	}
}

// Set implements Store.
func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = memoryEntry{value: value, expiresAt: s.now().Add(ttl)}
	return nil
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.values[key]
	if !ok {
		return "", false, nil
	}
	if s.now().After(e.expiresAt) {
		delete(s.values, key)
		return "", false, nil
	}
	return e.value, true, nil
}

// GetDel implements Store. Read and delete happen under one lock, so the
// one-time consume is atomic within the process.
func (s *MemoryStore) GetDel(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.values[key]
	if !ok {
		return "", false, nil
	}
	delete(s.values, key)
	if s.now().After(e.expiresAt) {
		return "", false, nil
	}
	return e.value, true, nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// AddMember implements Store.
func (s *MemoryStore) AddMember(_ context.Context, key, member string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	e, ok := s.sets[key]
	if !ok || now.After(e.expiresAt) {
		e = memorySetEntry{members: make(map[string]struct{})}
	}
	e.members[member] = struct{}{}
	e.expiresAt = now.Add(ttl)
	s.sets[key] = e
	return nil
}

// ReplaceMembers implements Store.
func (s *MemoryStore) ReplaceMembers(_ context.Context, key, member string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets[key] = memorySetEntry{
		members:   map[string]struct{}{member: {}},
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// ListMembers implements Store.
func (s *MemoryStore) ListMembers(_ context.Context, key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sets[key]
	if !ok {
		return nil, nil
	}
	if s.now().After(e.expiresAt) {
		delete(s.sets, key)
		return nil, nil
	}
	members := make([]string, 0, len(e.members))
	for m := range e.members {
		members = append(members, m)
	}
	return members, nil
}

// RemoveAll implements Store.
func (s *MemoryStore) RemoveAll(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, key)
	return nil
}

// Ping implements Store. The in-process store is always reachable.
func (s *MemoryStore) Ping(_ context.Context) error { return nil }
