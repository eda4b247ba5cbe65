package storage

import (
	"sync"
	"time"
)

// MemoryKV is an in-process KV, used by tests and throwaway sessions
type MemoryKV struct {
	mu    sync.RWMutex
	keys  map[string][]byte
	lists map[string][]Entry
	now   func() time.Time
}

// NewMemoryKV creates an empty in-memory store
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		keys:  map[string][]byte{},
		lists: map[string][]Entry{},
		now:   time.Now,
	}
}

func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.keys[key]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(value), nil
}

func (m *MemoryKV) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.keys[key] = clone(value)
	return nil
}

func (m *MemoryKV) Append(list string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lists[list] = append(m.lists[list], Entry{Value: clone(value), CreatedAt: m.now().UTC()})
	return nil
}

func (m *MemoryKV) List(list string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Entry, len(m.lists[list]))
	for i, e := range m.lists[list] {
		out[i] = Entry{Value: clone(e.Value), CreatedAt: e.CreatedAt}
	}
	return out, nil
}

func (m *MemoryKV) Record(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.keys[key] = clone(value)
	m.lists[key] = append(m.lists[key], Entry{Value: clone(value), CreatedAt: m.now().UTC()})
	return nil
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
