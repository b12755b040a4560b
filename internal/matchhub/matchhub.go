// Package matchhub is the API client for the jobmatch backend. It is the
// only place in the program that performs backend I/O: every outgoing
// request goes through a single chokepoint that attaches the current
// credential and every response is normalized into an *Error.
package matchhub

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultAPIURL = "http://localhost:3002/api"

	// The backend expects the raw token in a custom header, not a
	// standard bearer scheme.
	authHeader      = "x-auth-token"
	requestIDHeader = "X-Request-Id"
)

// CredentialSource yields the bearer token attached to outgoing requests.
// It is read at call time, so a token saved or cleared between calls takes
// effect immediately. An empty string means the call is made anonymously.
type CredentialSource interface {
	Token() string
}

type Client struct {
	creds      CredentialSource
	logger     *zap.Logger
	HTTPClient *http.Client
	APIURL     string
}

// New creates a client against the given base URL. An empty url selects
// the built-in default.
func New(logger *zap.Logger, creds CredentialSource, apiURL string) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &Client{
		creds:  creds,
		logger: logger,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) token() string {
	if c.creds == nil {
		return ""
	}
	return c.creds.Token()
}
