package api

import (
	"context"

	"github.com/dreamcatcher/dreamcatcher-go/internal/client/models"
)

// AuthAPI wraps the /auth resource. Register and Login skip the
// Authorization header since no token exists yet.
type AuthAPI struct {
	c *Client
}

func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

// Register creates an account. The caller still has to log in afterwards;
// registration returns the user record, not a token.
func (a *AuthAPI) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	body := models.RegisterRequest{Email: email, Password: password, Name: name}
	var user models.User
	if err := a.c.Post(ctx, "/auth/register", body, &user, SkipAuth()); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for a bearer token and stores it on the
// Client for subsequent calls.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*models.Token, error) {
	body := models.LoginRequest{Email: email, Password: password}
	var token models.Token
	if err := a.c.Post(ctx, "/auth/login/json", body, &token, SkipAuth()); err != nil {
		return nil, err
	}
	a.c.SetToken(ctx, token.AccessToken)
	return &token, nil
}

// Me fetches the account behind the held token.
func (a *AuthAPI) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.c.Get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout drops the held token. Purely local; the backend keeps no session.
func (a *AuthAPI) Logout(ctx context.Context) {
	a.c.ClearToken(ctx)
}
