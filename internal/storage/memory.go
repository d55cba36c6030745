package storage

import (
	"sync"

	"github.com/mmcdole/cineflix/internal/domain"
)

// MemoryStore keeps values in process memory. A non-zero quota caps the
// total stored bytes, mirroring a browser storage quota.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string][]byte
	quota int
	used  int
}

// MemoryOption configures a MemoryStore
type MemoryOption func(*MemoryStore)

// WithQuota limits the total bytes the store accepts
func WithQuota(bytes int) MemoryOption {
	return func(m *MemoryStore) {
		m.quota = bytes
	}
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	m := &MemoryStore{data: make(map[string][]byte)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MemoryStore) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	used := m.used - len(m.data[key]) + len(value)
	if m.quota > 0 && used > m.quota {
		return domain.ErrQuotaExceeded
	}

	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	m.used = used
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.used -= len(m.data[key])
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) Close() error { return nil }
