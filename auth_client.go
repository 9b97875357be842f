package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"
)

// AuthClient performs the credential exchanges that produce a bearer token.
type AuthClient interface {
	SignInEmail(ctx context.Context, email, password string) (*AuthResponse, error)
	SignUpEmail(
		ctx context.Context,
		email string,
		password string,
		name string,
	) (*AuthResponse, error)
	// SignInSocial asks the server to start an OAuth flow with the named
	// provider and returns the URL the user must visit. When the flow completes,
	// the server redirects to callbackURL with a token query parameter.
	SignInSocial(ctx context.Context, provider, callbackURL string) (string, error)
}

type authClient struct {
	*baseClient
}

// NewAuthClient returns a stand-alone AuthClient.
func NewAuthClient(apiAddress string, opts *ClientOptions) AuthClient {
	return &authClient{
		baseClient: newBaseClient(apiAddress, opts),
	}
}

type emailCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type socialSignIn struct {
	Provider         string `json:"provider"`
	CallbackURL      string `json:"callbackURL"`
	ErrorCallbackURL string `json:"errorCallbackURL"`
}

type authResponseBody struct {
	Token string    `json:"token"`
	Error *APIError `json:"error"`
	URL   string    `json:"url"`
}

func (a *authClient) SignInEmail(
	ctx context.Context,
	email string,
	password string,
) (*AuthResponse, error) {
	return a.authenticate(
		ctx,
		"api/auth/sign-in/email",
		emailCredentials{
			Email:    email,
			Password: password,
		},
	)
}

func (a *authClient) SignUpEmail(
	ctx context.Context,
	email string,
	password string,
	name string,
) (*AuthResponse, error) {
	return a.authenticate(
		ctx,
		"api/auth/sign-up/email",
		emailCredentials{
			Email:    email,
			Password: password,
			Name:     name,
		},
	)
}

func (a *authClient) SignInSocial(
	ctx context.Context,
	provider string,
	callbackURL string,
) (string, error) {
	resp, err := a.authenticate(
		ctx,
		"api/auth/sign-in/social",
		socialSignIn{
			Provider:         provider,
			CallbackURL:      callbackURL,
			ErrorCallbackURL: callbackURL,
		},
	)
	if err != nil {
		return "", err
	}
	if resp.URL != "" {
		return resp.URL, nil
	}
	if resp.Error != nil {
		return "", resp.Error
	}
	return "", errors.Errorf(
		"no %s sign-in URL received (status %d)",
		provider,
		resp.StatusCode,
	)
}

// authenticate posts to an auth endpoint and collects every place a token or
// error may have been put, whatever the status code. The body is only
// required to be well-formed JSON when no header token was sent.
func (a *authClient) authenticate(
	ctx context.Context,
	path string,
	reqBodyObj interface{},
) (*AuthResponse, error) {
	resp, err := a.submitAPIRequest(
		ctx,
		apiRequest{
			method: http.MethodPost,
			path:   path,
			headers: map[string]string{
				"Content-Type": "application/json",
			},
			reqBodyObj: reqBodyObj,
			anyStatus:  true,
		},
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	authResp := &AuthResponse{
		StatusCode:  resp.StatusCode,
		HeaderToken: AuthTokenFromHeader(resp.Header),
	}

	bodyBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		if authResp.HeaderToken != "" {
			return authResp, nil
		}
		return nil, errors.Wrap(err, "error reading response body")
	}
	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return authResp, nil
	}
	respBody := authResponseBody{}
	if err := json.Unmarshal(bodyBytes, &respBody); err != nil {
		if authResp.HeaderToken != "" {
			return authResp, nil
		}
		return nil, errors.Wrap(err, "error unmarshaling response body")
	}
	authResp.BodyToken = respBody.Token
	authResp.Error = respBody.Error
	authResp.URL = respBody.URL
	return authResp, nil
}
