package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// CampusService manages the institution's campuses. It is the template
// every other resource service follows: typed params in, query/body out,
// data unwrapped from the envelope, errors propagated unchanged.
type CampusService struct {
	c *Client
}

// Campuses returns the campus service.
func (c *Client) Campuses() *CampusService {
	return &CampusService{c: c}
}

// List returns one page of campuses.
func (s *CampusService) List(ctx context.Context, p api.CampusListParams) (api.Page[api.Campus], error) {
	q := pageQuery(p.PageParams)
	setString(q, "keyword", p.Keyword)
	setString(q, "status", p.Status)
	return request[api.Page[api.Campus]](ctx, s.c, http.MethodGet, "/campus/list", q, nil)
}

// SimpleList returns every campus as id/name pairs for selectors.
func (s *CampusService) SimpleList(ctx context.Context) ([]api.SimpleItem, error) {
	return request[[]api.SimpleItem](ctx, s.c, http.MethodGet, "/campus/simple/list", nil, nil)
}

// Get returns one campus by id.
func (s *CampusService) Get(ctx context.Context, id int64) (*api.Campus, error) {
	q := url.Values{}
	setInt64(q, "id", id)
	campus, err := request[api.Campus](ctx, s.c, http.MethodGet, "/campus/detail", q, nil)
	if err != nil {
		return nil, err
	}
	return &campus, nil
}

// Create adds a campus and returns the created record.
func (s *CampusService) Create(ctx context.Context, req api.CampusRequest) (*api.Campus, error) {
	campus, err := request[api.Campus](ctx, s.c, http.MethodPost, "/campus/create", nil, req)
	if err != nil {
		return nil, err
	}
	return &campus, nil
}

// Update replaces a campus record.
func (s *CampusService) Update(ctx context.Context, req api.CampusRequest) error {
	return s.c.exec(ctx, http.MethodPost, "/campus/update", nil, req)
}

// UpdateStatus toggles a campus between OPERATING and CLOSED.
func (s *CampusService) UpdateStatus(ctx context.Context, id int64, status string) error {
	return s.c.exec(ctx, http.MethodPost, "/campus/updateStatus", nil, map[string]any{
		"id":     id,
		"status": status,
	})
}

// Delete removes a campus.
func (s *CampusService) Delete(ctx context.Context, id int64) error {
	q := url.Values{}
	setInt64(q, "id", id)
	return s.c.exec(ctx, http.MethodPost, "/campus/delete", q, nil)
}
