package client

import (
	"context"
	"net/http"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// AuthService handles login, registration and session management. Login
// and register are the two endpoints on the no-auth allowlist.
type AuthService struct {
	c *Client
}

// Auth returns the auth service.
func (c *Client) Auth() *AuthService {
	return &AuthService{c: c}
}

// Login authenticates by phone and password. On success the token and
// user identity are persisted in the credential store so subsequent
// calls are authorized.
func (s *AuthService) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	res, err := request[api.LoginResponse](ctx, s.c, http.MethodPost, "/auth/login", nil, req)
	if err != nil {
		return nil, err
	}
	if err := s.c.creds.SetToken(res.AccessToken); err != nil {
		return nil, err
	}
	if res.User != nil {
		if err := s.c.creds.SetUser(res.User); err != nil {
			return nil, err
		}
	}
	if s.c.bus != nil {
		s.c.bus.PublishLoggedIn(req.Phone)
	}
	return &res, nil
}

// Register creates an institution with its manager account. It does not
// log the new user in.
func (s *AuthService) Register(ctx context.Context, req api.RegisterRequest) error {
	return s.c.exec(ctx, http.MethodPost, "/auth/register", nil, req)
}

// Logout tells the server to drop the session, then clears the local
// credentials. Local state is cleared even when the server call fails.
func (s *AuthService) Logout(ctx context.Context) error {
	reqErr := s.c.exec(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if err := s.c.creds.Clear(); err != nil {
		return err
	}
	if s.c.bus != nil {
		s.c.bus.PublishLoggedOut()
	}
	return reqErr
}

// Refresh exchanges the current token for a fresh one and persists it.
func (s *AuthService) Refresh(ctx context.Context) error {
	res, err := request[api.LoginResponse](ctx, s.c, http.MethodPost, "/auth/refresh", nil, nil)
	if err != nil {
		return err
	}
	if res.AccessToken == "" {
		return api.NewError(api.CodeNetwork, "refresh returned no token")
	}
	return s.c.creds.SetToken(res.AccessToken)
}
