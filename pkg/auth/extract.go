package auth

import "github.com/krancour/dashboard"

type tokenSource int

const (
	tokenSourceNone tokenSource = iota
	tokenSourceHeader
	tokenSourceBody
)

func (t tokenSource) String() string {
	switch t {
	case tokenSourceHeader:
		return "header"
	case tokenSourceBody:
		return "body"
	default:
		return "none"
	}
}

type extractedToken struct {
	source tokenSource
	value  string
}

// extractToken prefers the header token over the body token.
func extractToken(resp *dashboard.AuthResponse) extractedToken {
	switch {
	case resp == nil:
		return extractedToken{source: tokenSourceNone}
	case resp.HeaderToken != "":
		return extractedToken{source: tokenSourceHeader, value: resp.HeaderToken}
	case resp.BodyToken != "":
		return extractedToken{source: tokenSourceBody, value: resp.BodyToken}
	default:
		return extractedToken{source: tokenSourceNone}
	}
}
