package auth

import (
	"context"

	"github.com/golang/glog"
	"github.com/krancour/dashboard"
	"github.com/pkg/errors"
)

// defaultCallbackURL is where social sign-in sends the user when the caller
// names no callback.
const defaultCallbackURL = "/dashboard"

// Login signs in with email and password.
func (s *Service) Login(
	ctx context.Context,
	email string,
	password string,
) dashboard.AuthResult {
	resp, err := s.client.Auth().SignInEmail(ctx, email, password)
	if err != nil {
		glog.Errorf("login error: %s", err)
		return dashboard.AuthResult{Error: dashboard.NewAPIError(err.Error())}
	}
	result, ok := s.finishAuth(ctx, resp)
	if !ok {
		return dashboard.AuthResult{
			Error: dashboard.NewAPIError("Login failed - no token received"),
		}
	}
	return result
}

// Signup registers a new account. When the server accepts the registration
// without handing back a token, Signup logs in with the same credentials.
func (s *Service) Signup(
	ctx context.Context,
	email string,
	password string,
	name string,
) dashboard.AuthResult {
	resp, err := s.client.Auth().SignUpEmail(ctx, email, password, name)
	if err != nil {
		glog.Errorf("signup error: %s", err)
		return dashboard.AuthResult{Error: dashboard.NewAPIError(err.Error())}
	}
	result, ok := s.finishAuth(ctx, resp)
	if !ok {
		glog.V(1).Info("signup returned no token; logging in")
		return s.Login(ctx, email, password)
	}
	return result
}

// Logout ends the session. It always succeeds locally: the stored token is
// cleared whether or not the server could be told.
func (s *Service) Logout(ctx context.Context) dashboard.LogoutResult {
	token := s.tokens.Get()
	defer s.forgetSession(token)

	if token == "" {
		s.tokens.Clear()
		return dashboard.LogoutResult{Success: true}
	}

	err := s.client.Sessions().DeleteCurrent(ctx, token)
	if err == nil {
		s.tokens.Clear()
		return dashboard.LogoutResult{Success: true}
	}
	glog.Errorf(
		"direct session deletion failed, trying standard sign-out: %s",
		err,
	)

	if err := s.signOut(ctx, token); err != nil {
		glog.Errorf("sign-out error, clearing local state anyway: %s", err)
	}

	s.tokens.Clear()
	return dashboard.LogoutResult{Success: true}
}

// SocialLogin starts an OAuth sign-in with the named provider and returns the
// URL the user must visit to complete it.
func (s *Service) SocialLogin(
	ctx context.Context,
	provider string,
	callbackURL string,
) (string, error) {
	if callbackURL == "" {
		callbackURL = defaultCallbackURL
	}
	authURL, err := s.client.Auth().SignInSocial(ctx, provider, callbackURL)
	if err != nil {
		glog.Errorf("%s login error: %s", provider, err)
		return "", errors.Wrapf(err, "error starting %s login", provider)
	}
	return authURL, nil
}

// finishAuth saves the token carried by resp and resolves the session that
// goes with it. ok is false when resp carried neither a token nor an error.
func (s *Service) finishAuth(
	ctx context.Context,
	resp *dashboard.AuthResponse,
) (result dashboard.AuthResult, ok bool) {
	token := extractToken(resp)
	if token.source != tokenSourceNone {
		glog.V(2).Infof("token received in response %s", token.source)
		s.tokens.Save(token.value)
		return s.resolveSession(ctx, token.value), true
	}
	if resp != nil && resp.Error != nil {
		return dashboard.AuthResult{Error: resp.Error}, true
	}
	return dashboard.AuthResult{}, false
}

// resolveSession fetches the session for a freshly obtained token. The token
// has already been saved, so failing to fetch the session is not an error.
func (s *Service) resolveSession(
	ctx context.Context,
	token string,
) dashboard.AuthResult {
	state, err := s.client.Sessions().Get(ctx, token)
	if err != nil {
		glog.Errorf("error fetching session after authentication: %s", err)
		return dashboard.AuthResult{}
	}
	if !state.Authenticated {
		return dashboard.AuthResult{}
	}
	s.storeSession(token, state)
	pushAuthState(s.sink, true, state.User)
	return dashboard.AuthResult{
		User:          state.User,
		Session:       state.Session,
		Authenticated: true,
	}
}

// signOut calls the auth endpoints' sign-out, converting a panic into an
// error.
func (s *Service) signOut(ctx context.Context, token string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("sign-out panicked: %v", r)
		}
	}()
	return s.client.Sessions().SignOut(ctx, token)
}
