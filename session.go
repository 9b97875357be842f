package dashboard

import "time"

// Session is the server's record of a signed-in session.
type Session struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	IPAddress string     `json:"ipAddress,omitempty"`
	UserAgent string     `json:"userAgent,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// SessionState is the client's copy of what the server asserts about the
// caller. When Authenticated is false, User and Session are always nil.
type SessionState struct {
	Authenticated bool     `json:"authenticated"`
	User          *User    `json:"user,omitempty"`
	Session       *Session `json:"session,omitempty"`
	// Loading marks an optimistic placeholder written before the server has
	// answered.
	Loading bool `json:"isLoading,omitempty"`
}

// Unauthenticated returns the state used whenever a session cannot be
// established.
func Unauthenticated() SessionState {
	return SessionState{}
}

// Normalize drops the user and session of an unauthenticated state.
func (s SessionState) Normalize() SessionState {
	if !s.Authenticated {
		s.User = nil
		s.Session = nil
	}
	return s
}
