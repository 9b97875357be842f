// Package sessioncache keeps a client-side copy of session state with a
// freshness window and a longer retention window.
package sessioncache

import (
	"time"

	"github.com/krancour/dashboard"
)

// Policy says how long a cached entry counts as fresh and how long it is kept
// at all.
type Policy struct {
	Fresh  time.Duration `json:"fresh"`
	Retain time.Duration `json:"retain"`
}

// DefaultPolicy treats session state as fresh for five minutes and retains it
// for thirty.
var DefaultPolicy = Policy{
	Fresh:  5 * time.Minute,
	Retain: 30 * time.Minute,
}

// Entry is one cached session state.
type Entry struct {
	State     dashboard.SessionState `json:"state"`
	FetchedAt time.Time              `json:"fetchedAt"`
	Policy    Policy                 `json:"policy"`
}

// Stale reports whether the entry is past its freshness window.
func (e Entry) Stale(now time.Time) bool {
	return now.Sub(e.FetchedAt) >= e.Policy.Fresh
}

// Expired reports whether the entry is past its retention window.
func (e Entry) Expired(now time.Time) bool {
	return now.Sub(e.FetchedAt) >= e.Policy.Retain
}

// Cache is a store of session state shared by everything that asks "am I
// logged in".
type Cache interface {
	// Get returns the entry under key unless it is missing or expired.
	Get(key string) (Entry, bool)
	// Set replaces the entry under key.
	Set(key string, state dashboard.SessionState, policy Policy)
	// Delete drops the entry under key.
	Delete(key string)
}
