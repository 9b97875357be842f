package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	c := NewClient("http://localhost:8080", nil)
	require.IsType(t, &client{}, c)
	// Both clients share one base client and therefore one cookie jar
	require.Same(
		t,
		c.Auth().(*authClient).baseClient,
		c.Sessions().(*sessionsClient).baseClient,
	)
}

func TestSessionsClientGet(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
		assertions func(*testing.T, SessionState, error)
	}{
		{
			name:       "authenticated",
			statusCode: http.StatusOK,
			body: `{"authenticated":true,` +
				`"user":{"id":"u1","name":"Tony","email":"tony@stark.com"},` +
				`"session":{"id":"s1","userId":"u1"}}`,
			assertions: func(t *testing.T, state SessionState, err error) {
				require.NoError(t, err)
				require.True(t, state.Authenticated)
				require.Equal(t, "u1", state.User.ID)
				require.Equal(t, "s1", state.Session.ID)
			},
		},
		{
			name:       "unauthenticated payload with leftovers",
			statusCode: http.StatusOK,
			body:       `{"authenticated":false,"user":{"id":"u1"}}`,
			assertions: func(t *testing.T, state SessionState, err error) {
				require.NoError(t, err)
				require.False(t, state.Authenticated)
				require.Nil(t, state.User)
				require.Nil(t, state.Session)
			},
		},
		{
			name:       "authenticated without user",
			statusCode: http.StatusOK,
			body:       `{"authenticated":true}`,
			assertions: func(t *testing.T, state SessionState, err error) {
				require.Error(t, err)
				require.Contains(t, err.Error(), "failed JSON validation")
				require.False(t, state.Authenticated)
			},
		},
		{
			name:       "not json",
			statusCode: http.StatusOK,
			body:       `<html></html>`,
			assertions: func(t *testing.T, state SessionState, err error) {
				require.Error(t, err)
				require.False(t, state.Authenticated)
			},
		},
		{
			name:       "unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       `{"message":"expired"}`,
			assertions: func(t *testing.T, state SessionState, err error) {
				require.IsType(t, &ErrAuthentication{}, err)
				require.False(t, state.Authenticated)
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(
				http.HandlerFunc(
					func(w http.ResponseWriter, r *http.Request) {
						require.Equal(t, http.MethodGet, r.Method)
						require.Equal(t, "/session", r.URL.Path)
						require.Equal(
							t,
							fmt.Sprintf("Bearer %s", testAPIToken),
							r.Header.Get("Authorization"),
						)
						w.WriteHeader(testCase.statusCode)
						fmt.Fprint(w, testCase.body)
					},
				),
			)
			defer server.Close()
			client := NewSessionsClient(server.URL, nil)
			state, err := client.Get(context.Background(), testAPIToken)
			testCase.assertions(t, state, err)
		})
	}
}

func TestSessionsClientGetUsesTokenSource(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "Bearer stored", r.Header.Get("Authorization"))
				fmt.Fprint(w, `{"authenticated":false}`)
			},
		),
	)
	defer server.Close()
	client := NewSessionsClient(
		server.URL,
		&ClientOptions{Token: func() string { return "stored" }},
	)
	_, err := client.Get(context.Background(), "")
	require.NoError(t, err)
}

func TestSessionsClientDeleteCurrent(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodDelete, r.Method)
				require.Equal(t, "/api/protected/sessions/current", r.URL.Path)
				require.Equal(
					t,
					fmt.Sprintf("Bearer %s", testAPIToken),
					r.Header.Get("Authorization"),
				)
				w.WriteHeader(http.StatusNoContent)
			},
		),
	)
	defer server.Close()
	client := NewSessionsClient(server.URL, nil)
	err := client.DeleteCurrent(context.Background(), testAPIToken)
	require.NoError(t, err)
}

func TestSessionsClientSignOut(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/auth/sign-out", r.URL.Path)
				require.Contains(t, r.Header.Get("Authorization"), "Bearer")
				w.WriteHeader(http.StatusInternalServerError)
			},
		),
	)
	defer server.Close()
	client := NewSessionsClient(server.URL, nil)
	err := client.SignOut(context.Background(), testAPIToken)
	require.IsType(t, &ErrInternalServer{}, err)
}
