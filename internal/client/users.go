package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// UserService manages system user accounts.
type UserService struct {
	c *Client
}

// Users returns the user service.
func (c *Client) Users() *UserService {
	return &UserService{c: c}
}

// List returns one page of system users.
func (s *UserService) List(ctx context.Context, p api.UserListParams) (api.Page[api.User], error) {
	q := pageQuery(p.PageParams)
	setInt64(q, "campusId", p.CampusID)
	setString(q, "keyword", p.Keyword)
	setString(q, "role", p.Role)
	setString(q, "status", p.Status)
	return request[api.Page[api.User]](ctx, s.c, http.MethodGet, "/user/list", q, nil)
}

// Current returns the logged-in user's profile from the server.
func (s *UserService) Current(ctx context.Context) (*api.UserInfo, error) {
	info, err := request[api.UserInfo](ctx, s.c, http.MethodGet, "/user/current", nil, nil)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Create adds a system user.
func (s *UserService) Create(ctx context.Context, req api.UserRequest) (*api.User, error) {
	user, err := request[api.User](ctx, s.c, http.MethodPost, "/user/create", nil, req)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update replaces a user record.
func (s *UserService) Update(ctx context.Context, req api.UserRequest) error {
	return s.c.exec(ctx, http.MethodPost, "/user/update", nil, req)
}

// UpdateStatus enables or disables an account.
func (s *UserService) UpdateStatus(ctx context.Context, id int64, status string) error {
	return s.c.exec(ctx, http.MethodPost, "/user/updateStatus", nil, map[string]any{
		"id":     id,
		"status": status,
	})
}

// ResetPassword sets a new password for an account.
func (s *UserService) ResetPassword(ctx context.Context, id int64, password string) error {
	return s.c.exec(ctx, http.MethodPost, "/user/resetPassword", nil, map[string]any{
		"id":       id,
		"password": password,
	})
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	q := url.Values{}
	setInt64(q, "id", id)
	return s.c.exec(ctx, http.MethodPost, "/user/delete", q, nil)
}
