package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// CoachService manages the coach roster and payroll fields.
type CoachService struct {
	c *Client
}

// Coaches returns the coach service.
func (c *Client) Coaches() *CoachService {
	return &CoachService{c: c}
}

// List returns one page of coaches matching the filters.
func (s *CoachService) List(ctx context.Context, p api.CoachListParams) (api.Page[api.Coach], error) {
	q := pageQuery(p.PageParams)
	setInt64(q, "campusId", p.CampusID)
	setString(q, "keyword", p.Keyword)
	setString(q, "status", p.Status)
	setString(q, "jobTitle", p.JobTitle)
	return request[api.Page[api.Coach]](ctx, s.c, http.MethodGet, "/coach/list", q, nil)
}

// SimpleList returns coaches of a campus as id/name pairs.
func (s *CoachService) SimpleList(ctx context.Context, campusID int64) ([]api.SimpleItem, error) {
	q := url.Values{}
	setInt64(q, "campusId", campusID)
	return request[[]api.SimpleItem](ctx, s.c, http.MethodGet, "/coach/simple/list", q, nil)
}

// Get returns one coach by id.
func (s *CoachService) Get(ctx context.Context, id int64) (*api.Coach, error) {
	q := url.Values{}
	setInt64(q, "id", id)
	coach, err := request[api.Coach](ctx, s.c, http.MethodGet, "/coach/detail", q, nil)
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

// Create adds a coach.
func (s *CoachService) Create(ctx context.Context, req api.CoachRequest) (*api.Coach, error) {
	coach, err := request[api.Coach](ctx, s.c, http.MethodPost, "/coach/create", nil, req)
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

// Update replaces a coach record.
func (s *CoachService) Update(ctx context.Context, req api.CoachRequest) error {
	return s.c.exec(ctx, http.MethodPost, "/coach/update", nil, req)
}

// UpdateStatus changes a coach's employment status.
func (s *CoachService) UpdateStatus(ctx context.Context, id int64, status string) error {
	return s.c.exec(ctx, http.MethodPost, "/coach/updateStatus", nil, map[string]any{
		"id":     id,
		"status": status,
	})
}

// Delete removes a coach.
func (s *CoachService) Delete(ctx context.Context, id int64) error {
	q := url.Values{}
	setInt64(q, "id", id)
	return s.c.exec(ctx, http.MethodPost, "/coach/delete", q, nil)
}
