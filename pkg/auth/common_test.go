package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/krancour/dashboard"
	"github.com/krancour/dashboard/pkg/sessioncache"
	"github.com/krancour/dashboard/pkg/tokens"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "tony@starkindustries.com"
	testPassword = "iamironman"
	testName     = "Tony Stark"
	testToken    = "T"
	testUserID   = "u1"
)

const (
	pathSignIn        = "/api/auth/sign-in/email"
	pathSignUp        = "/api/auth/sign-up/email"
	pathSignOut       = "/api/auth/sign-out"
	pathSession       = "/session"
	pathDeleteSession = "/api/protected/sessions/current"
)

// testAPI is a stand-in for the API server. Any route without a handler
// answers 404.
type testAPI struct {
	handlers map[string]http.HandlerFunc
	calls    map[string]int
	mu       sync.Mutex
}

func newTestAPI(handlers map[string]http.HandlerFunc) *testAPI {
	return &testAPI{
		handlers: handlers,
		calls:    map[string]int{},
	}
}

func (a *testAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.calls[r.URL.Path]++
	handler, ok := a.handlers[r.URL.Path]
	a.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	handler(w, r)
}

func (a *testAPI) callCount(path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[path]
}

func (a *testAPI) totalCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	var total int
	for _, count := range a.calls {
		total += count
	}
	return total
}

// authenticatedSession answers with a session for whoever presents the
// expected token and an unauthenticated state for anyone else.
func authenticatedSession(
	t *testing.T,
	expectedToken string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		if r.Header.Get("Authorization") !=
			fmt.Sprintf("Bearer %s", expectedToken) {
			fmt.Fprint(w, `{"authenticated":false}`)
			return
		}
		fmt.Fprintf(
			w,
			`{"authenticated":true,"user":{"id":%q,"name":%q,"email":%q},`+
				`"session":{"id":"s1","userId":%q}}`,
			testUserID,
			testName,
			testEmail,
			testUserID,
		)
	}
}

type testHarness struct {
	api     *testAPI
	server  *httptest.Server
	service *Service
	tokens  *tokens.MemoryStore
	cache   *sessioncache.MemoryCache
	state   *State
}

func newTestHarness(
	t *testing.T,
	handlers map[string]http.HandlerFunc,
) *testHarness {
	api := newTestAPI(handlers)
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)
	tokenStore := tokens.NewMemoryStore()
	cache := sessioncache.NewMemoryCache()
	state := NewState()
	return &testHarness{
		api:    api,
		server: server,
		service: NewService(
			dashboard.NewClient(server.URL, ClientOptions(tokenStore, false)),
			tokenStore,
			cache,
			state,
		),
		tokens: tokenStore,
		cache:  cache,
		state:  state,
	}
}
