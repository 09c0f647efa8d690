package storage

import "sync"

// MemoryKV is an in-process KV medium. Used in tests and as a volatile
// fallback when no durable medium is configured.
type MemoryKV struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryKV creates an empty in-memory KV medium.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{slots: make(map[string][]byte)}
}

// Get returns the stored value for key.
func (m *MemoryKV) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.slots[key]
	return value, ok
}

// Put replaces the value for key.
func (m *MemoryKV) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.slots[key] = stored
	return nil
}
