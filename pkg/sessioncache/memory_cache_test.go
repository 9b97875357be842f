package sessioncache

import (
	"testing"
	"time"

	"github.com/krancour/dashboard"
	"github.com/stretchr/testify/require"
)

var testState = dashboard.SessionState{
	Authenticated: true,
	User:          &dashboard.User{ID: "u1", Name: "Tony"},
}

type testClock struct {
	now time.Time
}

func (t *testClock) Now() time.Time {
	return t.now
}

func (t *testClock) advance(d time.Duration) {
	t.now = t.now.Add(d)
}

func TestEntryStaleAndExpired(t *testing.T) {
	fetchedAt := time.Now()
	entry := Entry{FetchedAt: fetchedAt, Policy: DefaultPolicy}
	require.False(t, entry.Stale(fetchedAt.Add(time.Minute)))
	require.True(t, entry.Stale(fetchedAt.Add(5*time.Minute)))
	require.False(t, entry.Expired(fetchedAt.Add(29*time.Minute)))
	require.True(t, entry.Expired(fetchedAt.Add(30*time.Minute)))
}

func TestMemoryCache(t *testing.T) {
	clock := &testClock{now: time.Now()}
	cache := NewMemoryCache()
	cache.now = clock.Now

	_, ok := cache.Get("auth:session")
	require.False(t, ok)

	cache.Set("auth:session", testState, DefaultPolicy)
	entry, ok := cache.Get("auth:session")
	require.True(t, ok)
	require.Equal(t, testState, entry.State)
	require.False(t, entry.Stale(clock.Now()))

	clock.advance(10 * time.Minute)
	entry, ok = cache.Get("auth:session")
	require.True(t, ok)
	require.True(t, entry.Stale(clock.Now()))

	clock.advance(20 * time.Minute)
	_, ok = cache.Get("auth:session")
	require.False(t, ok)
}

func TestMemoryCacheDelete(t *testing.T) {
	cache := NewMemoryCache()
	cache.Set("auth:session", testState, DefaultPolicy)
	cache.Delete("auth:session")
	_, ok := cache.Get("auth:session")
	require.False(t, ok)
	// Deleting a missing key is fine
	cache.Delete("auth:session")
}
