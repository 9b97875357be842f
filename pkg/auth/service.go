// Package auth implements the client side of signing in and out: finding the
// bearer token in a server response, persisting it, resolving the session
// that goes with it and publishing the result to whoever renders auth state.
//
// Nothing in this package returns transport failures to its callers. Every
// failure is logged and turned into data (an AuthResult error, an
// unauthenticated SessionState) so that a session check can never take the
// caller down with it.
package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/krancour/dashboard"
	"github.com/krancour/dashboard/pkg/sessioncache"
	"github.com/krancour/dashboard/pkg/tokens"
)

const sessionCacheKeyPrefix = "auth:session:"

// sessionCacheKey returns the cache key for the session behind token. The
// cache may be shared by many clients, so entries are keyed by a digest of
// the token rather than by the token itself.
func sessionCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return sessionCacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Service coordinates the token store, the API client, the session cache and
// the auth state sink.
type Service struct {
	client dashboard.Client
	tokens tokens.Store
	cache  sessioncache.Cache
	sink   AuthStateSink
	policy sessioncache.Policy
}

// NewService returns a Service. cache and sink may be nil; without a cache
// every session read goes to the server, and without a sink auth state
// updates are dropped.
func NewService(
	client dashboard.Client,
	tokenStore tokens.Store,
	cache sessioncache.Cache,
	sink AuthStateSink,
) *Service {
	return &Service{
		client: client,
		tokens: tokenStore,
		cache:  cache,
		sink:   sink,
		policy: sessioncache.DefaultPolicy,
	}
}

// ClientOptions returns API client options that read the bearer token from
// the store and save any token the server hands back on any response.
func ClientOptions(
	tokenStore tokens.Store,
	allowInsecure bool,
) *dashboard.ClientOptions {
	return &dashboard.ClientOptions{
		AllowInsecure: allowInsecure,
		Token:         tokenStore.Get,
		OnToken:       tokenStore.Save,
	}
}
