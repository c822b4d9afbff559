package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// ConstantService manages the system lookup values (course types, expense
// categories, payment methods and similar) edited on the settings pages.
type ConstantService struct {
	c *Client
}

// Constants returns the lookup-value service.
func (c *Client) Constants() *ConstantService {
	return &ConstantService{c: c}
}

// List returns the lookup values of one type; an empty type returns all.
func (s *ConstantService) List(ctx context.Context, typ string) ([]api.ConstantItem, error) {
	q := url.Values{}
	setString(q, "type", typ)
	return request[[]api.ConstantItem](ctx, s.c, http.MethodGet, "/constants/list", q, nil)
}

// Create adds a lookup value.
func (s *ConstantService) Create(ctx context.Context, item api.ConstantItem) (*api.ConstantItem, error) {
	created, err := request[api.ConstantItem](ctx, s.c, http.MethodPost, "/constants/create", nil, item)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a lookup value.
func (s *ConstantService) Update(ctx context.Context, item api.ConstantItem) error {
	return s.c.exec(ctx, http.MethodPost, "/constants/update", nil, item)
}

// Delete removes a lookup value.
func (s *ConstantService) Delete(ctx context.Context, id int64) error {
	q := url.Values{}
	setInt64(q, "id", id)
	return s.c.exec(ctx, http.MethodPost, "/constants/delete", q, nil)
}
