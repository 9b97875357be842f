// Package tokens persists the single bearer token a client holds.
//
// Stores never report errors. A token that cannot be written is simply not
// there on the next read, and the server remains the only authority on
// whether a token is still good.
package tokens

// Store holds at most one bearer token.
type Store interface {
	// Save persists the token. Empty tokens are ignored.
	Save(token string)
	// Get returns the persisted token, or an empty string if there is none.
	Get() string
	// Clear removes the persisted token.
	Clear()
	// Has reports whether a token is persisted.
	Has() bool
}
