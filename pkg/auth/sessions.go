package auth

import (
	"context"

	"github.com/golang/glog"
	"github.com/krancour/dashboard"
)

// FetchSession asks the server for the session behind the stored token. Any
// failure yields an unauthenticated state.
func (s *Service) FetchSession(ctx context.Context) dashboard.SessionState {
	return s.fetchSession(ctx, s.tokens.Get())
}

// CachedSession returns the cached session state for the stored token if
// there is one, otherwise fetches it and caches the result. Without a cache,
// or without a token, it always fetches.
func (s *Service) CachedSession(ctx context.Context) dashboard.SessionState {
	if s.cache == nil {
		glog.Warning("session cache not configured, session caching disabled")
		return s.FetchSession(ctx)
	}
	token := s.tokens.Get()
	if token == "" {
		return s.fetchSession(ctx, token)
	}
	if entry, ok := s.cache.Get(sessionCacheKey(token)); ok {
		return entry.State
	}
	state := s.fetchSession(ctx, token)
	s.storeSession(token, state)
	return state
}

// RefreshSession fetches session state from the server and caches it,
// whatever is already cached.
func (s *Service) RefreshSession(ctx context.Context) dashboard.SessionState {
	token := s.tokens.Get()
	state := s.fetchSession(ctx, token)
	s.storeSession(token, state)
	return state
}

func (s *Service) fetchSession(
	ctx context.Context,
	token string,
) dashboard.SessionState {
	state, err := s.client.Sessions().Get(ctx, token)
	if err != nil {
		glog.Errorf("get session error: %s", err)
		return dashboard.Unauthenticated()
	}
	return state
}

// storeSession caches state under token. Nothing is cached for an empty
// token.
func (s *Service) storeSession(token string, state dashboard.SessionState) {
	if s.cache != nil && token != "" {
		s.cache.Set(sessionCacheKey(token), state, s.policy)
	}
}

func (s *Service) dropSession(token string) {
	if s.cache != nil && token != "" {
		s.cache.Delete(sessionCacheKey(token))
	}
}

func (s *Service) forgetSession(token string) {
	s.dropSession(token)
	pushAuthState(s.sink, false, nil)
}
