package dashboard

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// SessionsClient reads and ends server-side sessions.
type SessionsClient interface {
	// Get returns the session the server associates with the given token, or
	// with the configured token source when token is empty.
	Get(ctx context.Context, token string) (SessionState, error)
	// DeleteCurrent removes the server-side session behind the token.
	DeleteCurrent(ctx context.Context, token string) error
	// SignOut ends the session through the auth endpoints.
	SignOut(ctx context.Context, token string) error
}

type sessionsClient struct {
	*baseClient
}

// NewSessionsClient returns a stand-alone SessionsClient.
func NewSessionsClient(apiAddress string, opts *ClientOptions) SessionsClient {
	return &sessionsClient{
		baseClient: newBaseClient(apiAddress, opts),
	}
}

func (s *sessionsClient) Get(
	ctx context.Context,
	token string,
) (SessionState, error) {
	state := Unauthenticated()
	resp, err := s.submitAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodGet,
			path:        "session",
			authHeaders: s.bearerTokenAuthHeaders(token),
		},
	)
	if err != nil {
		return state, err
	}
	defer resp.Body.Close()

	bodyBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return state, errors.Wrap(err, "error reading response body")
	}
	if err := validateSessionState(bodyBytes); err != nil {
		return state, err
	}
	if err := json.Unmarshal(bodyBytes, &state); err != nil {
		return Unauthenticated(),
			errors.Wrap(err, "error unmarshaling response body")
	}
	return state.Normalize(), nil
}

func (s *sessionsClient) DeleteCurrent(
	ctx context.Context,
	token string,
) error {
	return s.executeAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodDelete,
			path:        "api/protected/sessions/current",
			authHeaders: s.bearerTokenAuthHeaders(token),
			headers: map[string]string{
				"Content-Type": "application/json",
			},
		},
	)
}

func (s *sessionsClient) SignOut(ctx context.Context, token string) error {
	return s.executeAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodPost,
			path:        "api/auth/sign-out",
			authHeaders: s.bearerTokenAuthHeaders(token),
			headers: map[string]string{
				"Content-Type": "application/json",
			},
			reqBodyObj: struct{}{},
		},
	)
}

var sessionStateSchemaLoader = gojsonschema.NewStringLoader(`{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["authenticated"],
	"properties": {
		"authenticated": { "type": "boolean" },
		"user": {
			"type": ["object", "null"],
			"properties": {
				"id": { "type": "string" },
				"name": { "type": ["string", "null"] },
				"email": { "type": ["string", "null"] }
			}
		},
		"session": { "type": ["object", "null"] }
	},
	"if": {
		"properties": { "authenticated": { "const": true } }
	},
	"then": {
		"required": ["user"],
		"properties": { "user": { "type": "object" } }
	}
}`)

func validateSessionState(bodyBytes []byte) error {
	result, err := gojsonschema.Validate(
		sessionStateSchemaLoader,
		gojsonschema.NewBytesLoader(bodyBytes),
	)
	if err != nil {
		return errors.Wrap(err, "error validating session response")
	}
	if !result.Valid() {
		verrStrs := make([]string, len(result.Errors()))
		for i, verr := range result.Errors() {
			verrStrs[i] = verr.String()
		}
		return errors.Errorf(
			"session response failed JSON validation: %s",
			strings.Join(verrStrs, "; "),
		)
	}
	return nil
}
