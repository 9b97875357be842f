package tokens

import "sync"

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	token string
	mu    sync.RWMutex
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(token string) {
	if token == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *MemoryStore) Get() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}

func (m *MemoryStore) Has() bool {
	return m.Get() != ""
}
