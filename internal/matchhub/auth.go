package matchhub

import (
	"context"
)

const (
	registerPath    = "/auth/register"
	loginPath       = "/auth/login"
	currentUserPath = "/auth/me"
)

// User is the backend's view of the authenticated account. The client
// stores and displays it but never interprets it beyond the email.
type User struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type authPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates a new account and returns the issued token.
func (c *Client) Register(ctx context.Context, email, password string) (string, error) {
	return c.requestToken(ctx, registerPath, email, password)
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	return c.requestToken(ctx, loginPath, email, password)
}

func (c *Client) requestToken(ctx context.Context, path, email, password string) (string, error) {
	var resp tokenResponse
	if err := c.postJSON(ctx, path, authPayload{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}

	return resp.Token, nil
}

// CurrentUser resolves the account behind the attached credential. It
// fails with an auth-rejected kind when the credential is missing,
// malformed or expired.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, currentUserPath, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
