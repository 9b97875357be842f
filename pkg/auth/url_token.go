package auth

import (
	"context"
	"net/url"

	"github.com/golang/glog"
	"github.com/krancour/dashboard"
)

// TokenQueryParam is the query parameter an OAuth redirect uses to deliver a
// bearer token.
const TokenQueryParam = "token"

// HandleTokenFromURL completes a redirect-based sign-in. If u carries a token
// query parameter, the token is saved and removed from u, a placeholder
// session is cached, and the real session is fetched in the background. The
// returned channel is closed once the background fetch is over. It is nil
// when u carries no token.
func (s *Service) HandleTokenFromURL(
	ctx context.Context,
	u *url.URL,
) <-chan struct{} {
	if u == nil {
		return nil
	}
	query := u.Query()
	token := query.Get(TokenQueryParam)
	if token == "" {
		return nil
	}

	s.tokens.Save(token)

	query.Del(TokenQueryParam)
	u.RawQuery = query.Encode()

	s.storeSession(
		token,
		dashboard.SessionState{
			Authenticated: true,
			Loading:       true,
		},
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		state, err := s.client.Sessions().Get(ctx, token)
		if err != nil {
			glog.Errorf(
				"error fetching session after token URL extraction: %s",
				err,
			)
			s.dropSession(token)
			return
		}
		if !state.Authenticated {
			glog.Warning("token from URL did not yield an authenticated session")
			s.dropSession(token)
			return
		}
		s.storeSession(token, state)
		pushAuthState(s.sink, true, state.User)
	}()
	return done
}
