package auth

import (
	"sync"

	"github.com/golang/glog"
	"github.com/krancour/dashboard"
)

// AuthStateSink receives auth state changes. Whatever renders "am I logged
// in" implements it and is handed to NewService, so this package never needs
// to import it.
type AuthStateSink interface {
	SetAuthenticated(bool)
	SetUser(*dashboard.User)
}

// SinkFuncs adapts a pair of functions to AuthStateSink. Either may be nil.
type SinkFuncs struct {
	SetAuthenticatedFn func(bool)
	SetUserFn          func(*dashboard.User)
}

func (s SinkFuncs) SetAuthenticated(isAuthenticated bool) {
	if s.SetAuthenticatedFn != nil {
		s.SetAuthenticatedFn(isAuthenticated)
	}
}

func (s SinkFuncs) SetUser(user *dashboard.User) {
	if s.SetUserFn != nil {
		s.SetUserFn(user)
	}
}

func pushAuthState(
	sink AuthStateSink,
	isAuthenticated bool,
	user *dashboard.User,
) {
	if sink == nil {
		glog.Warning("no auth state sink registered; dropping auth state update")
		return
	}
	sink.SetAuthenticated(isAuthenticated)
	sink.SetUser(user)
}

// State is an AuthStateSink that remembers the last update. It is a
// projection of session state, never an authority on it.
type State struct {
	authenticated bool
	user          *dashboard.User
	mu            sync.RWMutex
}

// NewState returns an unauthenticated State.
func NewState() *State {
	return &State{}
}

func (s *State) SetAuthenticated(isAuthenticated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = isAuthenticated
}

func (s *State) SetUser(user *dashboard.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// IsAuthenticated returns the last authentication flag pushed.
func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// User returns the last user pushed.
func (s *State) User() *dashboard.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}
