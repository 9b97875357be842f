package sessioncache

import (
	"sync"
	"time"

	"github.com/krancour/dashboard"
)

// MemoryCache is a process-local Cache.
type MemoryCache struct {
	entries map[string]Entry
	mu      sync.Mutex
	now     func() time.Time
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: map[string]Entry{},
		now:     time.Now,
	}
}

func (m *MemoryCache) Get(key string) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[key]
	if !ok {
		return Entry{}, false
	}
	if entry.Expired(m.now()) {
		delete(m.entries, key)
		return Entry{}, false
	}
	return entry, true
}

func (m *MemoryCache) Set(
	key string,
	state dashboard.SessionState,
	policy Policy,
) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = Entry{
		State:     state,
		FetchedAt: m.now(),
		Policy:    policy,
	}
}

func (m *MemoryCache) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}
