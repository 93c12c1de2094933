package sessioncache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry struct {
	data    []byte
	expires time.Time
}

// Memory is a process-local Store with a sliding TTL.
type Memory[T any] struct {
	kind  string
	ttl   time.Duration
	clock func() time.Time

	mu      sync.Mutex
	entries map[uuid.UUID]entry
}

// NewMemory creates an in-memory store. A non-positive ttl never expires.
func NewMemory[T any](kind string, ttl time.Duration) *Memory[T] {
	return &Memory[T]{
		kind:    kind,
		ttl:     ttl,
		clock:   time.Now,
		entries: make(map[uuid.UUID]entry),
	}
}

func (m *Memory[T]) Put(_ context.Context, id uuid.UUID, session *T) error {
	data, err := encode(session)
	if err != nil {
		return err
	}

	now := m.clock()
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked(now)
	m.entries[id] = entry{data: data, expires: m.expiry(now)}
	return nil
}

func (m *Memory[T]) Get(_ context.Context, id uuid.UUID) (*T, error) {
	now := m.clock()
	m.mu.Lock()
	e, ok := m.entries[id]
	if ok && m.expired(e, now) {
		delete(m.entries, id)
		ok = false
	}
	if ok {
		e.expires = m.expiry(now)
		m.entries[id] = e
	}
	m.mu.Unlock()

	if !ok {
		return nil, notFound(m.kind, id)
	}
	return decode[T](e.data)
}

func (m *Memory[T]) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

// Len returns the number of live sessions.
func (m *Memory[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked(m.clock())
	return len(m.entries)
}

func (m *Memory[T]) expiry(now time.Time) time.Time {
	if m.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(m.ttl)
}

func (m *Memory[T]) expired(e entry, now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

func (m *Memory[T]) pruneLocked(now time.Time) {
	for id, e := range m.entries {
		if m.expired(e, now) {
			delete(m.entries, id)
		}
	}
}
