package dashboard

// Client is the root of the API client tree.
type Client interface {
	Auth() AuthClient
	Sessions() SessionsClient
}

type client struct {
	authClient     AuthClient
	sessionsClient SessionsClient
}

// NewClient returns a Client whose sub-clients share one HTTP client, and
// therefore one cookie jar.
func NewClient(apiAddress string, opts *ClientOptions) Client {
	b := newBaseClient(apiAddress, opts)
	return &client{
		authClient:     &authClient{baseClient: b},
		sessionsClient: &sessionsClient{baseClient: b},
	}
}

func (c *client) Auth() AuthClient {
	return c.authClient
}

func (c *client) Sessions() SessionsClient {
	return c.sessionsClient
}
