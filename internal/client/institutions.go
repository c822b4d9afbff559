package client

import (
	"context"
	"net/http"

	"github.com/sgzs6721/lessonctl/pkg/api"
)

// InstitutionService manages the top-level organization record.
type InstitutionService struct {
	c *Client
}

// Institution returns the institution service.
func (c *Client) Institution() *InstitutionService {
	return &InstitutionService{c: c}
}

// Get returns the current user's institution.
func (s *InstitutionService) Get(ctx context.Context) (*api.Institution, error) {
	inst, err := request[api.Institution](ctx, s.c, http.MethodGet, "/institution/detail", nil, nil)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

// Update replaces the institution profile.
func (s *InstitutionService) Update(ctx context.Context, req api.Institution) error {
	return s.c.exec(ctx, http.MethodPost, "/institution/update", nil, req)
}
