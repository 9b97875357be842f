package dashboard

// AuthResult is what login and signup report back to callers. A nil Error
// means the token was obtained and saved. Authenticated, User and Session are
// only populated when the follow-up session fetch succeeded.
type AuthResult struct {
	Error         *APIError `json:"error"`
	User          *User     `json:"user,omitempty"`
	Session       *Session  `json:"session,omitempty"`
	Authenticated bool      `json:"authenticated,omitempty"`
}

// LogoutResult is what logout reports back to callers. Logout clears local
// state no matter what the server says, so Success is always true today.
type LogoutResult struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error,omitempty"`
}

// AuthResponse is the raw outcome of a sign-in or sign-up call. Tokens may
// arrive in a response header, in the response body, or not at all.
type AuthResponse struct {
	StatusCode  int
	HeaderToken string
	BodyToken   string
	Error       *APIError
	// URL is the provider URL returned by a social sign-in.
	URL string
}
